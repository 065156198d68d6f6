// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package fixtures

import (
	"fmt"
	"sync"
)

// Plan holds the record list handed to collaborators and is the only place
// where AssignedField changes after a parse. Writes are last-write-wins.
type Plan struct {
	mu      sync.RWMutex
	records []MatchRecord
	index   map[string]int
	fields  map[Field]struct{}
}

// NewPlan copies records and accepts assignments to any of fields.
func NewPlan(records []MatchRecord, fields []Field) *Plan {
	pl := &Plan{fields: make(map[Field]struct{}, len(fields))}
	for _, f := range fields {
		pl.fields[f] = struct{}{}
	}
	pl.Replace(records)
	return pl
}

// Replace swaps in the result of a new parse. Earlier assignments are dropped.
func (pl *Plan) Replace(records []MatchRecord) {
	cp := append([]MatchRecord(nil), records...)
	index := make(map[string]int, len(cp))
	for i, r := range cp {
		index[r.ID] = i
	}

	pl.mu.Lock()
	defer pl.mu.Unlock()
	pl.records = cp
	pl.index = index
}

// Records returns a copy of the current list in order.
func (pl *Plan) Records() []MatchRecord {
	pl.mu.RLock()
	defer pl.mu.RUnlock()
	return append([]MatchRecord(nil), pl.records...)
}

// Len returns the number of records.
func (pl *Plan) Len() int {
	pl.mu.RLock()
	defer pl.mu.RUnlock()
	return len(pl.records)
}

// Get returns the record with the given ID.
func (pl *Plan) Get(id string) (MatchRecord, bool) {
	pl.mu.RLock()
	defer pl.mu.RUnlock()
	i, ok := pl.index[id]
	if !ok {
		return MatchRecord{}, false
	}
	return pl.records[i], true
}

// Assign sets the field for one record. NoField clears the assignment.
func (pl *Plan) Assign(id string, f Field) error {
	if f != NoField {
		if _, ok := pl.fields[f]; !ok {
			return fmt.Errorf("assign %s: %w: %q", id, ErrUnknownField, f)
		}
	}

	pl.mu.Lock()
	defer pl.mu.Unlock()
	i, ok := pl.index[id]
	if !ok {
		return fmt.Errorf("assign %q: %w", id, ErrUnknownRecord)
	}
	pl.records[i].AssignedField = f
	return nil
}

// Reset restores the suggested field for one record.
func (pl *Plan) Reset(id string) error {
	pl.mu.Lock()
	defer pl.mu.Unlock()
	i, ok := pl.index[id]
	if !ok {
		return fmt.Errorf("reset %q: %w", id, ErrUnknownRecord)
	}
	pl.records[i].AssignedField = pl.records[i].SuggestedField
	return nil
}
