// Package contexts builds the flat variable maps that feed named
// output templates. Every builder is all-or-nothing: it returns the
// complete variable set its template needs, or reports no match when
// any required piece is absent. Builders never guess defaults except
// where the output shape defines one.
package contexts

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"
)

// Context maps template variable names to pre-stringified values.
// Iteration order is irrelevant; templates address variables by name.
type Context map[string]string

// Builder derives a template context from a parsed statement.
type Builder func(stmt *pg_query.Node) (Context, bool)
