// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

// LoadFileConfig parses a club profile file strictly, without defaults or env overrides.
func LoadFileConfig(path string) (*FileConfig, error) {
	return NewLoader(path, "").loadFile(path)
}

// Overrides lists the YAML keys the file sets, in file layout order.
// These are exactly the keys mergeFileConfig takes over from the file.
func (fc *FileConfig) Overrides() []string {
	var keys []string
	set := func(key string, ok bool) {
		if ok {
			keys = append(keys, key)
		}
	}

	set("club.name", fc.Club.Name != "")
	set("club.variants", len(fc.Club.Variants) > 0)
	set("club.home_grounds", len(fc.Club.HomeGrounds) > 0)
	set("fields", len(fc.Fields) > 0)
	set("field_rules", fc.FieldRules != nil)
	set("pitches", fc.Pitches != nil)
	set("default_pitch", fc.DefaultPitch != "")
	set("sections.policy", fc.Sections.Policy != "")
	set("sections.names", len(fc.Sections.Names) > 0)
	set("sections.keywords", len(fc.Sections.Keywords) > 0)
	set("match_types", len(fc.MatchTypes) > 0)
	set("skip_patterns", fc.SkipPatterns != nil)
	set("no_fixture", fc.NoFixture != "")
	set("id_fragment_length", fc.IDFragmentLength != 0)
	set("log.level", fc.Log.Level != "")
	return keys
}
