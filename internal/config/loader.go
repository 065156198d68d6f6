// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment keys read by Load.
const (
	EnvSectionPolicy = "SPIELPLAN_SECTION_POLICY"
	EnvClubVariants  = "SPIELPLAN_CLUB_VARIANTS"
	EnvLogLevel      = "SPIELPLAN_LOG_LEVEL"
	EnvNoFixture     = "SPIELPLAN_SPIELFREI"
)

// Loader handles configuration loading with precedence
type Loader struct {
	configPath      string
	version         string
	ConsumedEnvKeys map[string]struct{} // Mechanical tracking of consumed keys
}

// NewLoader creates a new configuration loader
func NewLoader(configPath, version string) *Loader {
	return &Loader{
		configPath:      configPath,
		version:         version,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
}

func (l *Loader) envString(key, defaultVal string) string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseString(key, defaultVal)
}

func (l *Loader) envList(key string, defaultVal []string) []string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseList(key, defaultVal)
}

// Load loads configuration with precedence: ENV > File > Defaults
// It enforces Strict Validated Order: Parse File (Strict) -> Apply Env -> Validate
func (l *Loader) Load() (AppConfig, error) {
	cfg := AppConfig{}

	// 1. Set defaults
	l.setDefaults(&cfg)

	// 2. Load from file (if provided)
	if l.configPath != "" {
		fileCfg, err := l.loadFile(l.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		mergeFileConfig(&cfg, fileCfg)
		cfg.ConfigPath = filepath.Clean(l.configPath)
	}

	// 3. Override with environment variables (highest priority)
	l.mergeEnvConfig(&cfg)

	// 4. Validate
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (l *Loader) loadFile(path string) (*FileConfig, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("%w: %s (only YAML supported)", ErrUnsupportedFormat, ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	// Parse YAML with strict mode (unknown fields cause errors)
	var fileCfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &FileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("strict config parse error: %w: %w", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return &fileCfg, nil
}

// mergeFileConfig overlays the non-zero parts of src onto dst.
// Lists replace the default list rather than extending it.
func mergeFileConfig(dst *AppConfig, src *FileConfig) {
	if src.Log.Level != "" {
		dst.LogLevel = src.Log.Level
	}

	if src.Club.Name != "" {
		dst.ClubName = src.Club.Name
	}
	if len(src.Club.Variants) > 0 {
		dst.Variants = src.Club.Variants
	}
	if len(src.Club.HomeGrounds) > 0 {
		dst.HomeGrounds = src.Club.HomeGrounds
	}

	// A new field set invalidates the default rules and pitch map built on the old one.
	if len(src.Fields) > 0 {
		dst.Fields = src.Fields
		dst.FieldRules = nil
		dst.Pitches = nil
		dst.DefaultPitch = ""
	}
	if src.FieldRules != nil {
		dst.FieldRules = src.FieldRules
	}
	if src.Pitches != nil {
		dst.Pitches = src.Pitches
	}
	if src.DefaultPitch != "" {
		dst.DefaultPitch = src.DefaultPitch
	}

	if src.Sections.Policy != "" {
		dst.SectionPolicy = src.Sections.Policy
	}
	if len(src.Sections.Names) > 0 {
		dst.Sections = src.Sections.Names
	}
	if len(src.Sections.Keywords) > 0 {
		dst.SectionKeywords = src.Sections.Keywords
	}

	if len(src.MatchTypes) > 0 {
		dst.MatchTypes = src.MatchTypes
	}
	if src.SkipPatterns != nil {
		dst.SkipPatterns = src.SkipPatterns
	}
	if src.NoFixture != "" {
		dst.NoFixture = src.NoFixture
	}
	if src.IDFragmentLength != 0 {
		dst.IDFragmentLength = src.IDFragmentLength
	}
}

func (l *Loader) mergeEnvConfig(cfg *AppConfig) {
	cfg.LogLevel = l.envString(EnvLogLevel, cfg.LogLevel)
	cfg.SectionPolicy = strings.ToLower(l.envString(EnvSectionPolicy, cfg.SectionPolicy))
	cfg.Variants = l.envList(EnvClubVariants, cfg.Variants)
	cfg.NoFixture = l.envString(EnvNoFixture, cfg.NoFixture)
}
