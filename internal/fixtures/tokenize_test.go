// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuGH/spielplan/internal/normalize"
)

func TestClassifyStrict(t *testing.T) {
	ps := newTestParser(t)

	tests := []struct {
		line string
		want lineKind
	}{
		{line: "ME Kreisliga 21.09.2025 15:00 TSV Lonnerstadt SpVgg Reuth", want: kindRowStart},
		{line: "FS Test 21.09.2025 15:00 A B", want: kindRowStart},
		{line: "MEKreisliga 21.09.2025", want: kindContinuation},
		{line: "XY Kreisliga 21.09.2025 15:00 A B", want: kindContinuation},
		{line: "Herren", want: kindSection},
		{line: "herren", want: kindSection},
		{line: "C-Junioren", want: kindSection},
		{line: "D-Junioren", want: kindContinuation},
		{line: "Sportplatz Herrenau", want: kindContinuation},
		{line: "ME Herren 21.09.2025 15:00 A B", want: kindRowStart},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, ps.p.classify(tt.line))
		})
	}
}

func TestClassifyKeyword(t *testing.T) {
	ps := newTestParser(t, func(o *Options) { o.SectionPolicy = PolicyKeyword })

	tests := []struct {
		line string
		want lineKind
	}{
		{line: "Herren", want: kindSection},
		{line: "D-Junioren Kreisgruppe Süd", want: kindSection},
		{line: "U17 Mädchen", want: kindSection},
		{line: "Sportplatz Herrenau", want: kindContinuation},
		{line: "Lonnerstadt, Am Sonnenhügel, Platz 1", want: kindContinuation},
		{line: "ME Herren 21.09.2025 15:00 A B", want: kindRowStart},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, ps.p.classify(tt.line))
		})
	}
}

// An unseen category header is venue text under the strict policy but
// opens a section under the keyword policy.
func TestSectionPolicyChangesAttribution(t *testing.T) {
	text := "Herren\n" +
		"ME Kreisliga 21.09.2025 15:00 TSV Lonnerstadt SpVgg Reuth\n" +
		"Am Sonnenhügel, Platz 1\n" +
		"D-Junioren\n" +
		"ME Kreisgruppe 27.09.2025 10:00 TSV Lonnerstadt FC Vorra\n"

	strict := newTestParser(t).Parse(text)
	require.Len(t, strict, 2)
	assert.Equal(t, "Am Sonnenhügel, Platz 1 D-Junioren", strict[0].Venue)
	assert.Equal(t, "Herren", strict[1].Section)

	keyword := newTestParser(t, func(o *Options) { o.SectionPolicy = PolicyKeyword }).Parse(text)
	require.Len(t, keyword, 2)
	assert.Equal(t, "Am Sonnenhügel, Platz 1", keyword[0].Venue)
	assert.Equal(t, "D-Junioren", keyword[1].Section)
}

func TestScanVenueStopsAtBoundaries(t *testing.T) {
	ps := newTestParser(t)
	lines := normalize.Lines(`Vorwort ohne Zeile
Herren
ME Kreisliga 21.09.2025 15:00 TSV Lonnerstadt SpVgg Reuth
Lonnerstadt,
Seite 2 von 5
Am Sonnenhügel,
Platz 1
Damen
ME Kreisliga 22.09.2025 15:00 TSV Lonnerstadt FC Vorra
ME Kreisliga 23.09.2025 15:00 TSV Lonnerstadt FC Uehlfeld
Uehlfeld`)

	rows, st := ps.p.scan(lines)
	require.Len(t, rows, 3)

	assert.Equal(t, "Lonnerstadt, Am Sonnenhügel, Platz 1", rows[0].row.venue)
	assert.Equal(t, "Herren", rows[0].row.section)
	assert.Equal(t, 3, rows[0].line)

	assert.Empty(t, rows[1].row.venue)
	assert.Equal(t, "Damen", rows[1].row.section)

	assert.Equal(t, "Uehlfeld", rows[2].row.venue)

	assert.Equal(t, 2, st.sections)
	assert.Equal(t, 1, st.orphans)
	assert.Equal(t, 1, st.ignored)
}

func TestTokenize(t *testing.T) {
	ps := newTestParser(t)

	tests := []struct {
		name string
		line string
		ok   bool
		want rawRow
	}{
		{
			name: "regular",
			line: "ME Kreisliga Nord 21.09.2025 15:00 TSV Lonnerstadt SpVgg Reuth",
			ok:   true,
			want: rawRow{matchType: "ME", competition: "Kreisliga Nord", date: "21.09.2025", kickoff: "15:00", pairing: "TSV Lonnerstadt SpVgg Reuth"},
		},
		{
			name: "sentinel in kickoff slot",
			line: "PO Pokal 21.09.2025 SPIELFREI TSV Lonnerstadt",
			ok:   true,
			want: rawRow{matchType: "PO", competition: "Pokal", date: "21.09.2025", kickoff: "SPIELFREI", pairing: "TSV Lonnerstadt"},
		},
		{
			name: "sentinel after team",
			line: "ME Gruppe 23.09.2025 (SG) TSV Lonnerstadt SPIELFREI",
			ok:   true,
			want: rawRow{matchType: "ME", competition: "Gruppe", date: "23.09.2025", kickoff: "SPIELFREI", pairing: "(SG) TSV Lonnerstadt"},
		},
		{
			name: "short date",
			line: "ME Kreisliga 1.9.2025 15:00 TSV Lonnerstadt SpVgg Reuth",
			ok:   false,
			want: rawRow{matchType: "ME"},
		},
		{
			name: "missing kickoff",
			line: "ME Kreisliga 21.09.2025 TSV Lonnerstadt SpVgg Reuth",
			ok:   false,
			want: rawRow{matchType: "ME"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ps.p.tokenize(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
