package header

import "errors"

var (
	// ErrMissingPartyID is returned by New when any of the four
	// mandatory party identifier values is empty. No partial Builder
	// is returned alongside it.
	ErrMissingPartyID = errors.New("missing mandatory party identifier")

	// ErrMissingField is returned when a payload descriptor lacks a
	// required field (href or mimetype).
	ErrMissingField = errors.New("payload descriptor missing required field")
)
