// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package fixtures

import "errors"

var (
	// ErrNoVariants is returned when a profile names no home-club spelling.
	ErrNoVariants = errors.New("no home club name variants configured")
	// ErrNoFields is returned when a profile names no playing field.
	ErrNoFields = errors.New("no fields configured")
	// ErrNoMatchTypes is returned when a profile names no match-type code.
	ErrNoMatchTypes = errors.New("no match type codes configured")
	// ErrInvalidPolicy classifies an unknown section policy.
	ErrInvalidPolicy = errors.New("invalid section policy")
	// ErrBadPattern classifies a skip or keyword pattern that does not compile.
	ErrBadPattern = errors.New("bad pattern")
	// ErrUnknownField classifies a field name outside the configured field set.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnknownRecord is returned by Plan when no record carries the given ID.
	ErrUnknownRecord = errors.New("unknown record")
)
