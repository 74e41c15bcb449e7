// Package validator checks statement syntax against the SQL dialects
// the engine cares about: PostgreSQL, the dialect the transformer
// parses, and MySQL, as a portability signal. The key/index/value
// column vocabulary is unreserved in PostgreSQL but reserved in MySQL
// grammars, so a portability failure here is expected for most scheme
// statements and is reported, not fatal.
package validator

import "fmt"

// ValidationResult carries the outcome of one dialect check.
type ValidationResult struct {
	Valid bool
	Error string
}

// Validate checks a statement against a named dialect.
func Validate(query string, dialect string) error {
	switch dialect {
	case "PostgreSQL":
		return ValidatePostgreSQL(query)
	case "MySQL":
		return ValidateMySQL(query)
	default:
		return fmt.Errorf("unsupported dialect: %s", dialect)
	}
}

// Dialects lists the supported dialect names.
var Dialects = []string{"PostgreSQL", "MySQL"}
