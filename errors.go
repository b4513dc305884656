package walstat

import "errors"

// Sentinel errors returned by the store and the parsers. They are always
// wrapped with context (the missing key, the offending line or field), so
// callers match them with errors.Is.
var (
	// ErrNotFound is returned by lookups for an absent area, measure,
	// language code or year.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned for malformed caller-supplied input,
	// such as a bad language code or a column mapping of the wrong size.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedInput is returned when source data violates the expected
	// shape: wrong column count, missing fields, unparseable years.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidInput is returned when a stream is not usable before
	// parsing even begins.
	ErrInvalidInput = errors.New("invalid input")
)
