// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package fixtures

import (
	"strings"

	"github.com/ManuGH/spielplan/internal/normalize"
)

// rawRow is a fixture row split into its textual parts, before any
// interpretation of teams, dates or venues.
type rawRow struct {
	matchType   string
	competition string
	date        string // DD.MM.YYYY
	kickoff     string // H:MM, HH:MM or the no-fixture sentinel
	pairing     string
	venue       string
	section     string
}

// scannedRow is one row-start line and what the tokenizer made of it.
type scannedRow struct {
	line   int
	text   string
	row    rawRow
	reason Reason // ReasonMalformed when row is unusable
}

type scanStats struct {
	sections int
	orphans  int
	ignored  int
}

// scan walks normalized lines once, attributing each row to the latest
// section header and collecting its venue continuation lines.
func (p *profile) scan(lines []string) ([]scannedRow, scanStats) {
	var (
		rows    []scannedRow
		st      scanStats
		section string
	)

	for i := 0; i < len(lines); {
		line := lines[i]
		switch p.classify(line) {
		case kindSection:
			section = line
			st.sections++
			i++
			continue
		case kindContinuation:
			if p.isBoilerplate(line) {
				st.ignored++
			} else {
				st.orphans++
			}
			i++
			continue
		}

		sr := scannedRow{line: i + 1, text: line}
		row, ok := p.tokenize(line)
		if !ok {
			sr.reason = ReasonMalformed
		}
		row.section = section

		// Venue lines belong to the row even when the row itself is unusable,
		// otherwise they would be miscounted as orphans.
		var venue []string
		j := i + 1
		for ; j < len(lines) && p.classify(lines[j]) == kindContinuation; j++ {
			if p.isBoilerplate(lines[j]) {
				st.ignored++
				continue
			}
			venue = append(venue, lines[j])
		}
		row.venue = strings.Join(venue, " ")
		sr.row = row
		rows = append(rows, sr)
		i = j
	}
	return rows, st
}

// tokenize splits a row-start line into type code, competition, date,
// kickoff and pairing.
func (p *profile) tokenize(line string) (rawRow, bool) {
	m := p.rowStartRe.FindStringSubmatch(line)
	if m == nil {
		return rawRow{}, false
	}
	row := rawRow{matchType: m[1]}
	rest := strings.TrimSpace(line[len(m[0]):])

	if f := p.rowRe.FindStringSubmatch(rest); f != nil {
		row.competition = f[1]
		row.date = f[2]
		row.kickoff = f[3]
		row.pairing = f[4]
		return row, true
	}

	// Bye rows are printed as "<label> <date> <team> SPIELFREI", without a kickoff.
	d := p.datedRe.FindStringSubmatch(rest)
	if d == nil {
		return row, false
	}
	tail := strings.Fields(d[3])
	kept := tail[:0]
	bye := false
	for _, tok := range tail {
		if normalize.Token(tok) == p.noFixtureKey {
			bye = true
			continue
		}
		kept = append(kept, tok)
	}
	if !bye {
		return row, false
	}
	row.competition = d[1]
	row.date = d[2]
	row.kickoff = p.noFixture
	row.pairing = strings.Join(kept, " ")
	return row, true
}
