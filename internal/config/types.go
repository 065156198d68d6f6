// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import "github.com/ManuGH/spielplan/internal/fixtures"

// FileConfig mirrors the YAML layout of a club profile file.
// Zero values mean "keep the default".
type FileConfig struct {
	Club             ClubConfig           `yaml:"club"`
	Fields           []string             `yaml:"fields,omitempty"`
	FieldRules       []fixtures.FieldRule `yaml:"field_rules,omitempty"`
	Pitches          map[int]string       `yaml:"pitches,omitempty"`
	DefaultPitch     string               `yaml:"default_pitch,omitempty"`
	Sections         SectionsConfig       `yaml:"sections"`
	MatchTypes       []string             `yaml:"match_types,omitempty"`
	SkipPatterns     []string             `yaml:"skip_patterns,omitempty"`
	NoFixture        string               `yaml:"no_fixture,omitempty"`
	IDFragmentLength int                  `yaml:"id_fragment_length,omitempty"`
	Log              LogConfig            `yaml:"log"`
}

// ClubConfig names the home club and its ground.
type ClubConfig struct {
	Name        string   `yaml:"name,omitempty"`
	Variants    []string `yaml:"variants,omitempty"`
	HomeGrounds []string `yaml:"home_grounds,omitempty"`
}

// SectionsConfig controls section header recognition.
type SectionsConfig struct {
	Policy   string   `yaml:"policy,omitempty"`
	Names    []string `yaml:"names,omitempty"`
	Keywords []string `yaml:"keywords,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// AppConfig is the effective, flattened configuration after defaults,
// file and environment have been merged.
type AppConfig struct {
	Version    string
	ConfigPath string
	LogLevel   string

	ClubName    string
	Variants    []string
	HomeGrounds []string

	Fields       []string
	FieldRules   []fixtures.FieldRule
	Pitches      map[int]string
	DefaultPitch string

	SectionPolicy   string
	Sections        []string
	SectionKeywords []string

	MatchTypes       []string
	SkipPatterns     []string
	NoFixture        string
	IDFragmentLength int
}
