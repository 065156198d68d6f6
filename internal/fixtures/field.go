// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package fixtures

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ManuGH/spielplan/internal/normalize"
)

// pitchRe finds the pitch number, e.g. "Platz 2" or "Sportplatz2".
var pitchRe = regexp.MustCompile(`platz\s*(\d+)`)

// suggest maps venue text to a field. Away fixtures never get one:
// the club does not assign pitches on an opponent's ground.
func (p *profile) suggest(venue string, isHome bool) Field {
	if !isHome || venue == "" {
		return NoField
	}
	v := normalize.Fold(venue)

	for _, r := range p.rules {
		if containsAll(v, r.All) {
			return r.Field
		}
	}

	for _, g := range p.homeGrounds {
		if !strings.Contains(v, g) {
			continue
		}
		if m := pitchRe.FindStringSubmatch(v); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				if f, ok := p.pitches[n]; ok {
					return f
				}
			}
		}
		return p.defaultPitch
	}
	return NoField
}

func containsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
