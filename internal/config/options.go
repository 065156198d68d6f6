// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import "github.com/ManuGH/spielplan/internal/fixtures"

// ParserOptions converts the effective configuration into parser options.
// The returned value shares no slices or maps with cfg.
func (cfg AppConfig) ParserOptions() fixtures.Options {
	opts := fixtures.Options{
		Variants:        append([]string(nil), cfg.Variants...),
		HomeGrounds:     append([]string(nil), cfg.HomeGrounds...),
		DefaultPitch:    fixtures.Field(cfg.DefaultPitch),
		SectionPolicy:   fixtures.SectionPolicy(cfg.SectionPolicy),
		Sections:        append([]string(nil), cfg.Sections...),
		SectionKeywords: append([]string(nil), cfg.SectionKeywords...),
		MatchTypes:      append([]string(nil), cfg.MatchTypes...),
		SkipPatterns:    append([]string(nil), cfg.SkipPatterns...),
		NoFixture:       cfg.NoFixture,
		FragmentLen:     cfg.IDFragmentLength,
	}
	for _, f := range cfg.Fields {
		opts.Fields = append(opts.Fields, fixtures.Field(f))
	}
	for _, r := range cfg.FieldRules {
		opts.FieldRules = append(opts.FieldRules, fixtures.FieldRule{
			Field: r.Field,
			All:   append([]string(nil), r.All...),
		})
	}
	if len(cfg.Pitches) > 0 {
		opts.Pitches = make(map[int]fixtures.Field, len(cfg.Pitches))
		for n, f := range cfg.Pitches {
			opts.Pitches[n] = fixtures.Field(f)
		}
	}
	return opts
}
