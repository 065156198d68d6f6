// SPDX-License-Identifier: MIT
package validate

import (
	"errors"
	"strings"
	"testing"
)

func TestValidator_Range(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"lower bound", 1, false},
		{"upper bound", 200, false},
		{"below", 0, true},
		{"above", 201, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Range("FragmentLen", tt.value, 1, 200)
			if tt.wantErr && v.IsValid() {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && !v.IsValid() {
				t.Errorf("unexpected error: %v", v.Err())
			}
		})
	}
}

func TestValidator_NotEmptyList(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		wantErrs int
	}{
		{"valid", []string{"TSV Lonnerstadt"}, 0},
		{"nil", nil, 1},
		{"blank entries", []string{"TSV Lonnerstadt", " ", ""}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.NotEmptyList("Variants", tt.values)
			if got := len(v.Errors()); got != tt.wantErrs {
				t.Errorf("expected %d errors, got %d: %v", tt.wantErrs, got, v.Err())
			}
		})
	}
}

func TestValidator_OneOfAndPattern(t *testing.T) {
	v := New()
	v.OneOf("SectionPolicy", "strict", []string{"strict", "keyword"})
	v.Pattern("SkipPatterns[0]", `^seite \d+`)
	v.Member("DefaultPitch", "A", map[string]struct{}{"A": {}})
	v.NotEmpty("ClubName", "TSV Lonnerstadt")
	if !v.IsValid() {
		t.Fatalf("unexpected error: %v", v.Err())
	}

	v.OneOf("SectionPolicy", "fuzzy", []string{"strict", "keyword"})
	v.Pattern("SkipPatterns[1]", `[a-`)
	v.Member("DefaultPitch", "D", map[string]struct{}{"A": {}})
	v.NotEmpty("ClubName", "  ")
	if got := len(v.Errors()); got != 4 {
		t.Fatalf("expected 4 errors, got %d", got)
	}
}

func TestValidationError_Message(t *testing.T) {
	v := New()
	if v.Err() != nil {
		t.Fatal("empty validator must return nil error")
	}

	v.AddError("A", "first", nil)
	single := v.Err()
	if single.Error() != "validation failed for A: first" {
		t.Errorf("unexpected message: %s", single)
	}

	v.AddError("B", "second", nil)
	err := v.Err()
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("expected joined messages, got %s", err)
	}

	var ve ValidationError
	if !errors.As(err, &ve) || len(ve.Errors()) != 2 {
		t.Errorf("expected ValidationError with 2 entries, got %#v", err)
	}
}

func TestValidator_Custom(t *testing.T) {
	v := New()
	v.Custom("MatchTypes", "MEX", func(val interface{}) error {
		if len(val.(string)) != 2 {
			return errors.New("must be two letters")
		}
		return nil
	})
	if v.IsValid() {
		t.Error("expected error for three letter code")
	}
}
