package matchers

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
)

// HasAssignment reports a SET clause on the named column.
func HasAssignment(upd *pg_query.UpdateStmt, column string) bool {
	_, ok := ast.UpdateAssignmentValue(upd, column)
	return ok
}

// updateOn guards the shared UPDATE preconditions: table of the wanted
// kind and a key condition.
func updateOn(upd *pg_query.UpdateStmt, kindTest func(string) bool) bool {
	table, ok := ast.UpdateTableName(upd)
	return ok && kindTest(table) && HasKeyEquals(upd.WhereClause)
}

// IsStringUpdate matches `UPDATE <string> SET value = ... WHERE key = ...`.
func IsStringUpdate(upd *pg_query.UpdateStmt) bool {
	return updateOn(upd, IsStringTable) && HasAssignment(upd, "value")
}

// IsHashUpdate matches a keyed UPDATE of a hash table with at least
// one constant assignment.
func IsHashUpdate(upd *pg_query.UpdateStmt) bool {
	if !updateOn(upd, IsHashTable) {
		return false
	}
	assignments, ok := ast.UpdateAssignments(upd)
	return ok && len(assignments) > 0
}

// IsListUpdate matches `UPDATE <list> SET value = ... WHERE key = ...
// AND index = ...`.
func IsListUpdate(upd *pg_query.UpdateStmt) bool {
	return updateOn(upd, IsListTable) &&
		HasFieldEquals(upd.WhereClause, "index") &&
		HasAssignment(upd, "value")
}

// IsZSetUpdate matches `UPDATE <zset> SET score = ... WHERE key = ...
// AND member = ...`.
func IsZSetUpdate(upd *pg_query.UpdateStmt) bool {
	return updateOn(upd, IsZSetTable) &&
		HasFieldEquals(upd.WhereClause, "member") &&
		HasAssignment(upd, "score")
}
