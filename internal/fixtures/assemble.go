// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package fixtures

import (
	"sort"
	"strings"
	"time"

	"github.com/ManuGH/spielplan/internal/normalize"
)

const (
	sourceDateLayout = "02.01.2006"
	dateLayout       = "2006-01-02"
	clockLayout      = "15:04"
)

// assemble turns a raw row into a record without ID. Bye rows and rows
// whose date or time do not exist on a calendar are reported, not recorded.
func (p *profile) assemble(row rawRow) (MatchRecord, Reason) {
	if normalize.Token(row.kickoff) == p.noFixtureKey {
		return MatchRecord{}, ReasonSpielfrei
	}

	day, err := time.Parse(sourceDateLayout, row.date)
	if err != nil {
		return MatchRecord{}, ReasonInvalidDate
	}
	clock, err := time.Parse(clockLayout, row.kickoff)
	if err != nil {
		return MatchRecord{}, ReasonInvalidTime
	}

	home, away, isHome := p.split(row.pairing)
	suggested := p.suggest(row.venue, isHome)

	rec := MatchRecord{
		Date:           day.Format(dateLayout),
		Time:           clock.Format(clockLayout),
		Section:        row.section,
		Competition:    strings.TrimSpace(row.matchType + " " + row.competition),
		MatchType:      row.matchType,
		HomeTeam:       home,
		AwayTeam:       away,
		IsHomeFixture:  isHome,
		Venue:          row.venue,
		SuggestedField: suggested,
		AssignedField:  suggested,
	}
	rec.SortKey = rec.Date + " " + rec.Time
	return rec, ReasonNone
}

// sortRecords orders chronologically; rows at the same minute keep input order.
func sortRecords(records []MatchRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SortKey < records[j].SortKey
	})
}
