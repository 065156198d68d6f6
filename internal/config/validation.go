// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ManuGH/spielplan/internal/fixtures"
	"github.com/ManuGH/spielplan/internal/metrics"
	"github.com/ManuGH/spielplan/internal/validate"
	"github.com/rs/zerolog"
)

// Validate checks the effective configuration and reports every problem at once.
func Validate(cfg AppConfig) error {
	v := validate.New()

	v.NotEmpty("ClubName", cfg.ClubName)
	v.NotEmptyList("Variants", cfg.Variants)
	v.NotEmptyList("Fields", cfg.Fields)
	v.NotEmptyList("MatchTypes", cfg.MatchTypes)

	fields := make(map[string]struct{}, len(cfg.Fields))
	for _, f := range cfg.Fields {
		fields[f] = struct{}{}
	}
	if cfg.DefaultPitch != "" {
		v.Member("DefaultPitch", cfg.DefaultPitch, fields)
	}
	for n, f := range cfg.Pitches {
		v.Range(fmt.Sprintf("Pitches[%d]", n), n, 1, 99)
		v.Member(fmt.Sprintf("Pitches[%d]", n), f, fields)
	}
	for i, r := range cfg.FieldRules {
		name := fmt.Sprintf("FieldRules[%d]", i)
		v.Member(name+".Field", string(r.Field), fields)
		v.NotEmptyList(name+".All", r.All)
	}

	v.OneOf("SectionPolicy", cfg.SectionPolicy,
		[]string{string(fixtures.PolicyStrict), string(fixtures.PolicyKeyword)})
	switch fixtures.SectionPolicy(cfg.SectionPolicy) {
	case fixtures.PolicyStrict:
		v.NotEmptyList("Sections", cfg.Sections)
	case fixtures.PolicyKeyword:
		v.NotEmptyList("SectionKeywords", cfg.SectionKeywords)
	}
	for i, kw := range cfg.SectionKeywords {
		v.Pattern(fmt.Sprintf("SectionKeywords[%d]", i), kw)
	}
	for i, pat := range cfg.SkipPatterns {
		v.Pattern(fmt.Sprintf("SkipPatterns[%d]", i), pat)
	}
	for i, code := range cfg.MatchTypes {
		v.Custom(fmt.Sprintf("MatchTypes[%d]", i), code, matchTypeCode)
	}

	v.NotEmpty("NoFixture", cfg.NoFixture)
	v.Range("IDFragmentLength", cfg.IDFragmentLength, 1, 200)
	if cfg.LogLevel != "" {
		v.Custom("LogLevel", cfg.LogLevel, func(val interface{}) error {
			_, err := zerolog.ParseLevel(val.(string))
			return err
		})
	}

	// The parser compiles the profile on its own terms; anything it rejects
	// that the checks above missed is reported as well.
	if v.IsValid() {
		if _, err := fixtures.NewParser(cfg.ParserOptions()); err != nil {
			v.AddError("Profile", err.Error(), nil)
		}
	}

	if err := v.Err(); err != nil {
		metrics.IncConfigValidationError()
		return err
	}
	return nil
}

func matchTypeCode(val interface{}) error {
	if s := val.(string); strings.ContainsFunc(s, unicode.IsSpace) {
		return fmt.Errorf("match type %q must be a single token", s)
	}
	return nil
}
