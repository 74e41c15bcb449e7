package validator

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"
)

// ValidatePostgreSQL validates PostgreSQL syntax. This is the dialect
// the transformer itself parses, so failure here means the statement
// cannot be translated at all.
func ValidatePostgreSQL(query string) error {
	_, err := pg_query.Parse(query)
	return err
}

// ValidatePostgreSQLWithDetails returns a detailed validation result.
func ValidatePostgreSQLWithDetails(query string) (*ValidationResult, error) {
	if err := ValidatePostgreSQL(query); err != nil {
		return &ValidationResult{Valid: false, Error: err.Error()}, nil
	}
	return &ValidationResult{Valid: true}, nil
}
