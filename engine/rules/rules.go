// Package rules defines the ordered registry that maps statement
// shapes to named command templates. The registry is assembled once
// per transformer, never mutated afterwards, and evaluated strictly in
// order: the first rule whose matcher and context builder both succeed
// wins, regardless of how specific any later rule is. Rule sets are
// concatenated in the fixed kind order SELECT, INSERT, UPDATE, DELETE.
package rules

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/contexts"
)

// Rule binds a statement predicate to a context builder and the name
// of the template that renders the final command. The metadata fields
// feed pattern listings only; dispatch never reads them.
type Rule struct {
	// Name identifies the matcher in listings and logs.
	Name string
	// Template is the catalogue name rendered on a match.
	Template string
	// SQLPattern and RedisPattern document the shape for listings.
	SQLPattern   string
	RedisPattern string

	Match   func(stmt *pg_query.Node) bool
	Context contexts.Builder
}

// All returns the full registry in evaluation order. Callers must not
// reorder or mutate the returned slice.
func All() []Rule {
	var all []Rule
	all = append(all, selectRules()...)
	all = append(all, insertRules()...)
	all = append(all, updateRules()...)
	all = append(all, deleteRules()...)
	return all
}
