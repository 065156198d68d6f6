// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRunID    = "run_id"
	FieldRecordID = "record_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Parse fields
	FieldLine     = "line"
	FieldSection  = "section"
	FieldReason   = "reason"
	FieldRows     = "rows"
	FieldRecorded = "recorded"
	FieldSkipped  = "skipped"
	FieldField    = "field"

	// Path fields
	FieldPath       = "path"
	FieldConfigPath = "config_path"
	FieldOutputPath = "output_path"
)
