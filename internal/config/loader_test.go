// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ManuGH/spielplan/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	loader := NewLoader("", "test")
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Version)
	assert.Equal(t, "TSV Lonnerstadt", cfg.ClubName)
	assert.Len(t, cfg.Variants, 4)
	assert.Equal(t, string(fixtures.PolicyStrict), cfg.SectionPolicy)
	assert.Equal(t, "A", cfg.DefaultPitch)
	assert.Equal(t, fixtures.DefaultNoFixture, cfg.NoFixture)
	assert.Equal(t, fixtures.DefaultFragmentLen, cfg.IDFragmentLength)
	assert.Empty(t, cfg.ConfigPath)

	for _, key := range []string{EnvSectionPolicy, EnvClubVariants, EnvLogLevel, EnvNoFixture} {
		assert.Contains(t, loader.ConsumedEnvKeys, key)
	}
}

// TestLoad_ValidMinimal tests loading a valid minimal configuration.
func TestLoad_ValidMinimal(t *testing.T) {
	path := filepath.Join("testdata", "valid-minimal.yaml")
	cfg, err := NewLoader(path, "test").Load()
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigPath)
	assert.Equal(t, "SV Musterdorf", cfg.ClubName)
	assert.Equal(t, []string{"SV Musterdorf", "SG Musterdorf/Beispielstadt"}, cfg.Variants)
	assert.Equal(t, []string{"Haupt", "Neben"}, cfg.Fields)
	assert.Nil(t, cfg.FieldRules, "default rules belong to the default field set")
	assert.Empty(t, cfg.DefaultPitch)
	assert.Equal(t, map[int]string{1: "Haupt", 2: "Neben"}, cfg.Pitches)
	assert.Equal(t, "keyword", cfg.SectionPolicy)
	assert.Equal(t, "debug", cfg.LogLevel)
	// untouched keys keep their defaults
	assert.Equal(t, []string{"ME", "FS", "PO"}, cfg.MatchTypes)

	ps, err := fixtures.NewParser(cfg.ParserOptions())
	require.NoError(t, err)
	rep := ps.ParseReport("U17 Junioren\nME Kreisliga 07.09.2025 15:00 SV Musterdorf FC Gast\nSportplatz Musterdorf, Platz 2\n")
	require.Len(t, rep.Records, 1)
	rec := rep.Records[0]
	assert.True(t, rec.IsHomeFixture)
	assert.Equal(t, fixtures.Field("Neben"), rec.SuggestedField)
	assert.Equal(t, "U17 Junioren", rec.Section)
}

// TestLoad_UnknownKeyFails tests that strict parsing rejects unknown fields.
func TestLoad_UnknownKeyFails(t *testing.T) {
	_, err := NewLoader(filepath.Join("testdata", "invalid-unknown-key.yaml"), "test").Load()
	require.Error(t, err)
	if !errors.Is(err, ErrUnknownConfigField) {
		t.Fatalf("expected ErrUnknownConfigField, got: %v", err)
	}
	assert.Contains(t, err.Error(), "nickname")
}

// TestLoad_InvalidTypeFails tests that type mismatches are caught.
func TestLoad_InvalidTypeFails(t *testing.T) {
	_, err := NewLoader(filepath.Join("testdata", "invalid-type.yaml"), "test").Load()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnknownConfigField))
	assert.Contains(t, err.Error(), "strict config parse error")
}

func TestLoad_MultipleDocumentsFail(t *testing.T) {
	_, err := NewLoader(filepath.Join("testdata", "multi-doc.yaml"), "test").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple documents")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "club.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	_, err := NewLoader(path, "test").Load()
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	cfg, err := NewLoader(path, "test").Load()
	require.NoError(t, err)
	assert.Equal(t, "TSV Lonnerstadt", cfg.ClubName)
	assert.Len(t, cfg.FieldRules, 3)
}

func TestLoad_InvalidReferencesReportAll(t *testing.T) {
	_, err := NewLoader(filepath.Join("testdata", "invalid-rule.yaml"), "test").Load()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "FieldRules[0].Field")
	assert.Contains(t, msg, "SkipPatterns[0]")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv(EnvSectionPolicy, "STRICT")
	t.Setenv(EnvClubVariants, " SV Musterdorf , , SG Musterdorf ")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvNoFixture, "frei")

	cfg, err := NewLoader(filepath.Join("testdata", "valid-minimal.yaml"), "test").Load()
	require.NoError(t, err)

	assert.Equal(t, "strict", cfg.SectionPolicy)
	assert.Equal(t, []string{"SV Musterdorf", "SG Musterdorf"}, cfg.Variants)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "frei", cfg.NoFixture)
}

func TestLoad_EnvInvalidPolicyFails(t *testing.T) {
	t.Setenv(EnvSectionPolicy, "fuzzy")

	_, err := NewLoader("", "test").Load()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "SectionPolicy"), err.Error())
}

func TestLoadFileConfig_NoDefaults(t *testing.T) {
	fc, err := LoadFileConfig(filepath.Join("testdata", "valid-minimal.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "SV Musterdorf", fc.Club.Name)
	assert.Empty(t, fc.MatchTypes)
	assert.Zero(t, fc.IDFragmentLength)

	assert.Equal(t, []string{
		"club.name", "club.variants", "club.home_grounds",
		"fields", "pitches",
		"sections.policy", "sections.keywords",
		"log.level",
	}, fc.Overrides())
}

func TestFileConfigOverrides_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	fc, err := LoadFileConfig(path)
	require.NoError(t, err)
	assert.Empty(t, fc.Overrides())
}
