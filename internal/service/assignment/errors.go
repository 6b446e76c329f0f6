package assignment

import "errors"

var (
	ErrNotFound = errors.New("assignment not found")

	// ErrAccessDenied means the assignment exists but belongs to a patient
	// the caller does not own. Unlike patients, this is surfaced as a
	// permission failure, not a miss.
	ErrAccessDenied = errors.New("access to assignment denied")
)
