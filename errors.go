package redisql

import "errors"

// ============================================================================
// ERRORS
// ============================================================================

var (
	// ErrParse wraps failures from the SQL parser. The input never
	// reached the matching layer.
	ErrParse = errors.New("failed to parse query")

	// ErrNoMatch reports that no rule matched and the direct command
	// generator found nothing either. The wrapped message carries the
	// original input for diagnostics.
	ErrNoMatch = errors.New("no matching pattern")

	// ErrTemplate reports a missing or malformed template for a rule
	// that matched and built its context. This is an internal
	// registry/template inconsistency, not a user input error.
	ErrTemplate = errors.New("template rendering failed")

	// ErrInit reports that the template catalogue failed to load, so
	// no transformer could be constructed.
	ErrInit = errors.New("transformer initialization failed")
)
