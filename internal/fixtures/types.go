// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package fixtures

// Field names one physical playing surface.
type Field string

// NoField means no field is suggested or assigned.
const NoField Field = ""

// MatchRecord is one fixture as recognized in a schedule export.
type MatchRecord struct {
	ID             string `json:"id"`
	Date           string `json:"date"`    // YYYY-MM-DD
	Time           string `json:"time"`    // HH:MM
	SortKey        string `json:"sortKey"` // "YYYY-MM-DD HH:MM"
	Section        string `json:"section"`
	Competition    string `json:"competition"`
	MatchType      string `json:"matchType"`
	HomeTeam       string `json:"homeTeam"`
	AwayTeam       string `json:"awayTeam"`
	IsHomeFixture  bool   `json:"isHomeFixture"`
	Venue          string `json:"venue"`
	SuggestedField Field  `json:"suggestedField,omitempty"`
	AssignedField  Field  `json:"assignedField,omitempty"`
}

// Status tells whether a row produced a record.
type Status string

const (
	StatusRecorded Status = "recorded"
	StatusSkipped  Status = "skipped"
)

// Reason explains why a row was skipped.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonMalformed   Reason = "malformed"
	ReasonSpielfrei   Reason = "spielfrei"
	ReasonInvalidDate Reason = "invalid_date"
	ReasonInvalidTime Reason = "invalid_time"
)

// RowResult is the outcome for one row-start line.
type RowResult struct {
	Line     int    `json:"line"` // 1-based index into the normalized lines
	Text     string `json:"text"`
	Status   Status `json:"status"`
	Reason   Reason `json:"reason,omitempty"`
	RecordID string `json:"recordId,omitempty"`
}

// Stats summarizes one parse run.
type Stats struct {
	Lines        int            `json:"lines"`
	Sections     int            `json:"sections"`
	Rows         int            `json:"rows"`
	Recorded     int            `json:"recorded"`
	Skipped      map[Reason]int `json:"skipped,omitempty"`
	Orphans      int            `json:"orphans"` // continuation lines seen before the first row
	Ignored      int            `json:"ignored"` // boilerplate lines dropped by the skip list
	HomeFixtures int            `json:"homeFixtures"`
	Suggested    map[Field]int  `json:"suggested,omitempty"`
}

// SkippedTotal sums skipped rows over all reasons.
func (s Stats) SkippedTotal() int {
	n := 0
	for _, c := range s.Skipped {
		n += c
	}
	return n
}

// Report carries the records of one parse plus what was dropped on the way.
type Report struct {
	Records []MatchRecord `json:"records"`
	Rows    []RowResult   `json:"rows"`
	Stats   Stats         `json:"stats"`
}
