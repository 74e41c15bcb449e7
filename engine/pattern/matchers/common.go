// Package matchers holds the statement-shape classifiers the rule
// registry dispatches on. Each predicate answers one question about
// one statement kind; rules combine them. Predicates are pure and
// cheap, so rule evaluation can probe many of them per statement.
package matchers

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/pattern/extractors"
	"github.com/redisql-engine/redisql/mapping"
)

// IsStringTable reports the none-of-the-above default kind.
func IsStringTable(table string) bool { return mapping.Kind(table) == mapping.String }

// IsHashTable reports the __hash suffix.
func IsHashTable(table string) bool { return mapping.Kind(table) == mapping.Hash }

// IsListTable reports the __list suffix.
func IsListTable(table string) bool { return mapping.Kind(table) == mapping.List }

// IsSetTable reports the __set suffix.
func IsSetTable(table string) bool { return mapping.Kind(table) == mapping.Set }

// IsZSetTable reports the __zset suffix.
func IsZSetTable(table string) bool { return mapping.Kind(table) == mapping.SortedSet }

// HasKeyEquals reports a `key = constant` equality anywhere in the
// conjunction chain of the WHERE tree.
func HasKeyEquals(where *pg_query.Node) bool {
	_, ok := extractors.KeyFromCondition(where)
	return ok
}

// HasFieldEquals reports an `ident = constant` equality on the named
// column anywhere in the conjunction chain.
func HasFieldEquals(where *pg_query.Node, column string) bool {
	_, ok := extractors.FieldCondition(where, column)
	return ok
}

// HasScoreCondition reports any score comparison in the WHERE tree.
func HasScoreCondition(where *pg_query.Node) bool {
	return extractors.HasScoreCondition(where)
}
