// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package fixtures

import "strings"

// split divides a pairing into home and away team using the club's name
// variants. The source text has no separator between the two teams, so the
// only reliable anchor is a known spelling of our own club.
//
// Variants are tried longest first: a left-anchored hit means we are the
// home side; otherwise a right-anchored or embedded hit makes us the away
// side. Without any hit the whole text becomes the home team.
func (p *profile) split(pairing string) (home, away string, isHome bool) {
	for _, v := range p.variants {
		if pairing == v {
			return v, "", true
		}
		if strings.HasPrefix(pairing, v+" ") {
			return v, strings.TrimSpace(pairing[len(v)+1:]), true
		}
	}

	for _, v := range p.variants {
		if strings.HasSuffix(pairing, " "+v) {
			return strings.TrimSpace(pairing[:len(pairing)-len(v)-1]), v, false
		}
		if idx := strings.Index(pairing, " "+v); idx >= 0 {
			return strings.TrimSpace(pairing[:idx]), v, false
		}
	}

	return pairing, "", false
}
