package domain

import "errors"

// Every error in the pipeline is fatal for the whole run; these sentinels
// only let callers distinguish data-integrity violations from plain I/O
// failures.
var (
	// ErrMissingSpecFile indicates an index descriptor or a declared
	// sub-spec file is absent from the source tree.
	ErrMissingSpecFile = errors.New("spec file not found")

	// ErrMalformedSpec indicates a source file exists but could not be
	// parsed.
	ErrMalformedSpec = errors.New("malformed spec file")

	// ErrScheduleNotFound indicates a non-lightning event has no matching
	// schedule record.
	ErrScheduleNotFound = errors.New("schedule not found")
)
