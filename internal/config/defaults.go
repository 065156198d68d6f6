// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import "github.com/ManuGH/spielplan/internal/fixtures"

// setDefaults fills cfg with the TSV Lonnerstadt profile.
func (l *Loader) setDefaults(cfg *AppConfig) {
	cfg.Version = l.version
	cfg.LogLevel = "info"

	cfg.ClubName = "TSV Lonnerstadt"
	cfg.Variants = []string{
		"TSV Lonnerstadt",
		"TSV Lonnerstadt 2",
		"(SG) TSV Lonnerstadt",
		"SG Lonnerstadt/Höchstadt",
	}
	cfg.HomeGrounds = []string{"Am Sonnenhügel", "Sportgelände Lonnerstadt"}

	cfg.Fields = []string{"A", "B", "C", "Frimmersdorf", "Vestenbergsgreuth", "ASV Weisendorf Kunstrasen"}
	cfg.FieldRules = []fixtures.FieldRule{
		{Field: "Frimmersdorf", All: []string{"frimmersdorf"}},
		{Field: "Vestenbergsgreuth", All: []string{"vestenbergsgreuth"}},
		{Field: "ASV Weisendorf Kunstrasen", All: []string{"weisendorf", "kunstrasen"}},
	}
	cfg.Pitches = map[int]string{1: "A", 2: "B", 3: "C"}
	cfg.DefaultPitch = "A"

	cfg.SectionPolicy = string(fixtures.PolicyStrict)
	cfg.Sections = []string{"Herren", "Damen", "A-Junioren", "B-Junioren", "C-Junioren", "D-Junioren", "E-Junioren", "F-Junioren", "G-Junioren"}
	cfg.SectionKeywords = []string{"herren", "damen", "[a-g]-junior(?:en|innen)", `u\d{1,2}`}

	cfg.MatchTypes = []string{"ME", "FS", "PO"}
	cfg.SkipPatterns = []string{
		`^spielplan\b`,
		`^stand:`,
		`^art\s+wettbewerb`,
		`^seite \d+`,
		`©`,
		`https?://|www\.`,
	}
	cfg.NoFixture = fixtures.DefaultNoFixture
	cfg.IDFragmentLength = fixtures.DefaultFragmentLen
}
