// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package normalize cleans text copied out of schedule PDFs before it is parsed.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// invisible reports runes that PDF viewers leave behind in copied text
// and that carry no meaning for matching.
func invisible(r rune) bool {
	return r == '\u200B' || // Zero Width Space
		r == '\u200C' || // Zero Width Non-Joiner
		r == '\u200D' || // Zero Width Joiner
		r == '\uFEFF' || // Zero Width Non-Breaking Space (BOM)
		r == '\u00AD' // Soft hyphen
}

// Token normalizes a string token for matching:
// - trims Unicode whitespace + invisible edge characters
// - lowercases for case-insensitive comparisons
func Token(s string) string {
	return Fold(strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || invisible(r)
	}))
}

// Space composes s to NFC, turns every Unicode space (including NBSP and
// narrow NBSP) into a single ASCII space, drops invisible characters and trims.
func Space(s string) string {
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		switch {
		case invisible(r):
			continue
		case unicode.IsSpace(r):
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte(' ')
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Lines splits raw text into trimmed, whitespace-collapsed, non-empty lines.
// CRLF and bare CR line endings are accepted.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if line = Space(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Fold lower-cases s using German casing rules, the locale every schedule
// export is written in.
func Fold(s string) string {
	return cases.Lower(language.German).String(s)
}
