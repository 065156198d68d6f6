// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package fixtures

import "github.com/ManuGH/spielplan/internal/normalize"

type lineKind int

const (
	kindContinuation lineKind = iota
	kindRowStart
	kindSection
)

// classify expects a line from normalize.Lines. Row starts win over headers,
// so a competition label naming an age group never opens a section.
func (p *profile) classify(line string) lineKind {
	switch {
	case p.isRowStart(line):
		return kindRowStart
	case p.isSection(line):
		return kindSection
	default:
		return kindContinuation
	}
}

func (p *profile) isRowStart(line string) bool {
	return p.rowStartRe.MatchString(line)
}

func (p *profile) isSection(line string) bool {
	if p.policy == PolicyKeyword {
		return p.keywordRe.MatchString(line)
	}
	_, ok := p.sections[normalize.Fold(line)]
	return ok
}

func (p *profile) isBoilerplate(line string) bool {
	for _, re := range p.skip {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
