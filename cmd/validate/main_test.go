// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestValidateCLI runs the validate command against the config testdata.
func TestValidateCLI(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantExit   int
		wantStdout string // substring expected in stdout
		wantStderr string // substring expected in stderr
	}{
		{
			name:       "valid minimal config",
			args:       []string{"-f", "../../internal/config/testdata/valid-minimal.yaml"},
			wantExit:   0,
			wantStdout: "is valid",
		},
		{
			name:       "long flag",
			args:       []string{"--file", "../../internal/config/testdata/valid-minimal.yaml"},
			wantExit:   0,
			wantStdout: "SV Musterdorf (2 name variants)",
		},
		{
			name:       "reports overridden keys",
			args:       []string{"-f", "../../internal/config/testdata/valid-minimal.yaml"},
			wantExit:   0,
			wantStdout: "overrides: club.name, club.variants, club.home_grounds, fields, pitches, sections.policy, sections.keywords, log.level",
		},
		{
			name:       "invalid unknown key",
			args:       []string{"-f", "../../internal/config/testdata/invalid-unknown-key.yaml"},
			wantExit:   1,
			wantStderr: "Configuration error",
		},
		{
			name:       "invalid type mismatch",
			args:       []string{"-f", "../../internal/config/testdata/invalid-type.yaml"},
			wantExit:   1,
			wantStderr: "Configuration error",
		},
		{
			name:       "invalid references",
			args:       []string{"-f", "../../internal/config/testdata/invalid-rule.yaml"},
			wantExit:   1,
			wantStderr: "FieldRules[0].Field",
		},
		{
			name:       "no file flag provided",
			wantExit:   2,
			wantStderr: "--file is required",
		},
		{
			name:       "non-existent file",
			args:       []string{"-f", "does-not-exist.yaml"},
			wantExit:   1,
			wantStderr: "Configuration error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			if code != tt.wantExit {
				t.Errorf("exit code = %d, want %d\nstdout: %s\nstderr: %s",
					code, tt.wantExit, stdout.String(), stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout missing %q\nGot: %s", tt.wantStdout, stdout.String())
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr missing %q\nGot: %s", tt.wantStderr, stderr.String())
			}
		})
	}
}

func TestValidateCLI_EmptyProfileUsesBuiltIn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "club.yaml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-f", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "overrides: none (built-in profile)") {
		t.Errorf("stdout missing built-in notice\nGot: %s", stdout.String())
	}
}
