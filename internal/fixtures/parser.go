// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package fixtures turns fixture-list text copied from an association's
// schedule PDF into match records with home/away status and a suggested field.
//
// Parsing is best effort and never fails: rows that cannot be read are
// dropped and listed in the Report, not returned as errors.
package fixtures

import (
	"github.com/rs/zerolog"

	xglog "github.com/ManuGH/spielplan/internal/log"
	"github.com/ManuGH/spielplan/internal/normalize"
)

// Parser is immutable after NewParser and safe for concurrent use.
type Parser struct {
	p      *profile
	logger zerolog.Logger
}

// NewParser compiles opts into a Parser.
func NewParser(opts Options) (*Parser, error) {
	p, err := compile(opts)
	if err != nil {
		return nil, err
	}
	return &Parser{p: p, logger: xglog.WithComponent("fixtures")}, nil
}

// WithLogger returns a copy of ps that logs to l.
func (ps *Parser) WithLogger(l zerolog.Logger) *Parser {
	cp := *ps
	cp.logger = l
	return &cp
}

// Parse returns the fixtures found in text, sorted chronologically.
func (ps *Parser) Parse(text string) []MatchRecord {
	return ps.ParseReport(text).Records
}

// ParseReport parses text and also reports every row that was skipped.
func (ps *Parser) ParseReport(text string) Report {
	lines := normalize.Lines(text)
	scanned, st := ps.p.scan(lines)

	rep := Report{
		Records: make([]MatchRecord, 0, len(scanned)),
		Rows:    make([]RowResult, 0, len(scanned)),
		Stats: Stats{
			Lines:    len(lines),
			Sections: st.sections,
			Rows:     len(scanned),
			Orphans:  st.orphans,
			Ignored:  st.ignored,
		},
	}
	ids := newIDAllocator()

	for _, sr := range scanned {
		res := RowResult{Line: sr.line, Text: sr.text, Status: StatusSkipped, Reason: sr.reason}
		if sr.reason == ReasonNone {
			rec, reason := ps.p.assemble(sr.row)
			if reason == ReasonNone {
				rec.ID = ids.next(baseID(rec.Date, rec.Time, sr.row.pairing, ps.p.fragmentLen))
				rep.Records = append(rep.Records, rec)
				res.Status = StatusRecorded
				res.RecordID = rec.ID
				rep.Stats.count(rec)
			}
			res.Reason = reason
		}

		if res.Status == StatusSkipped {
			rep.Stats.skip(res.Reason)
			ps.logger.Debug().
				Str(xglog.FieldEvent, "fixtures.row_skipped").
				Int(xglog.FieldLine, res.Line).
				Str(xglog.FieldReason, string(res.Reason)).
				Str(xglog.FieldSection, sr.row.section).
				Str("text", res.Text).
				Msg("row skipped")
		}
		rep.Rows = append(rep.Rows, res)
	}

	sortRecords(rep.Records)
	rep.Stats.Recorded = len(rep.Records)

	ps.logger.Info().
		Str(xglog.FieldEvent, "fixtures.parsed").
		Int(xglog.FieldRows, rep.Stats.Rows).
		Int(xglog.FieldRecorded, rep.Stats.Recorded).
		Int(xglog.FieldSkipped, rep.Stats.SkippedTotal()).
		Msg("fixture list parsed")
	return rep
}

// Fields returns the configured field set in order.
func (ps *Parser) Fields() []Field {
	return append([]Field(nil), ps.p.fields...)
}

// Variants returns the home club spellings in matching order (longest first).
func (ps *Parser) Variants() []string {
	return append([]string(nil), ps.p.variants...)
}

// Split exposes the home/away splitter for a single pairing text.
func (ps *Parser) Split(pairing string) (home, away string, isHome bool) {
	return ps.p.split(normalize.Space(pairing))
}

// SuggestField exposes the field suggester for a single venue text.
func (ps *Parser) SuggestField(venue string, isHome bool) Field {
	return ps.p.suggest(normalize.Space(venue), isHome)
}

func (s *Stats) count(rec MatchRecord) {
	if rec.IsHomeFixture {
		s.HomeFixtures++
	}
	if rec.SuggestedField != NoField {
		if s.Suggested == nil {
			s.Suggested = make(map[Field]int)
		}
		s.Suggested[rec.SuggestedField]++
	}
}

func (s *Stats) skip(r Reason) {
	if s.Skipped == nil {
		s.Skipped = make(map[Reason]int)
	}
	s.Skipped[r]++
}
