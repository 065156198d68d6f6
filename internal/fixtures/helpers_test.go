// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// lonnerstadt is the club profile the tests are written against.
func lonnerstadt() Options {
	return Options{
		Variants: []string{
			"TSV Lonnerstadt",
			"TSV Lonnerstadt 2",
			"(SG) TSV Lonnerstadt",
			"SG Lonnerstadt/Höchstadt",
		},
		Fields:      []Field{"A", "B", "C", "Frimmersdorf", "Vestenbergsgreuth", "ASV Weisendorf Kunstrasen"},
		HomeGrounds: []string{"Am Sonnenhügel", "Sportgelände Lonnerstadt"},
		Pitches:     map[int]Field{1: "A", 2: "B", 3: "C"},
		FieldRules: []FieldRule{
			{Field: "Frimmersdorf", All: []string{"frimmersdorf"}},
			{Field: "Vestenbergsgreuth", All: []string{"vestenbergsgreuth"}},
			{Field: "ASV Weisendorf Kunstrasen", All: []string{"weisendorf", "kunstrasen"}},
		},
		SectionPolicy:   PolicyStrict,
		Sections:        []string{"Herren", "Damen", "A-Junioren", "B-Junioren", "C-Junioren"},
		SectionKeywords: []string{"herren", "damen", "[a-g]-junior(?:en|innen)", "u\\d{1,2}"},
		MatchTypes:      []string{"ME", "FS", "PO"},
		SkipPatterns: []string{
			`^spielplan\b`,
			`^stand:`,
			`^art\s+wettbewerb`,
			`^seite \d+`,
			`©`,
			`https?://|www\.`,
		},
	}
}

func newTestParser(t *testing.T, mutate ...func(*Options)) *Parser {
	t.Helper()
	opts := lonnerstadt()
	for _, m := range mutate {
		m(&opts)
	}
	ps, err := NewParser(opts)
	require.NoError(t, err)
	return ps
}

func readTestdata(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(b)
}
