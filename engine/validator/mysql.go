package validator

import (
	"github.com/xwb1989/sqlparser"
)

// ValidateMySQL validates MySQL syntax. Used as a portability check
// only; the transformer never consumes MySQL parse trees.
func ValidateMySQL(query string) error {
	_, err := sqlparser.Parse(query)
	return err
}

// ValidateMySQLWithDetails returns a detailed validation result.
func ValidateMySQLWithDetails(query string) (*ValidationResult, error) {
	if err := ValidateMySQL(query); err != nil {
		return &ValidationResult{Valid: false, Error: err.Error()}, nil
	}
	return &ValidationResult{Valid: true}, nil
}
