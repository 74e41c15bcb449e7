package matchers

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
)

// selectOn guards the shared SELECT preconditions: single table of the
// wanted kind and a key condition.
func selectOn(sel *pg_query.SelectStmt, kindTest func(string) bool) bool {
	table, ok := ast.SelectTableName(sel)
	return ok && kindTest(table) && HasKeyEquals(sel.WhereClause)
}

// IsWildcardSelect reports a `SELECT *` projection.
func IsWildcardSelect(sel *pg_query.SelectStmt) bool {
	return ast.IsWildcardSelect(sel)
}

// IsSingleFieldSelect reports a projection of exactly one bare column.
func IsSingleFieldSelect(sel *pg_query.SelectStmt) bool {
	fields, ok := ast.SelectFieldNames(sel)
	return ok && len(fields) == 1
}

// IsMultiFieldSelect reports a projection of two or more columns where
// every item is a bare identifier. One non-identifier item fails the
// predicate entirely.
func IsMultiFieldSelect(sel *pg_query.SelectStmt) bool {
	fields, ok := ast.SelectFieldNames(sel)
	return ok && len(fields) >= 2
}

// HasLimit reports an integer LIMIT clause, including LIMIT 0.
func HasLimit(sel *pg_query.SelectStmt) bool {
	_, ok := ast.SelectLimit(sel)
	return ok
}

// HasOrderByScoreDesc reports an explicit descending sort on score as
// the first ORDER BY term.
func HasOrderByScoreDesc(sel *pg_query.SelectStmt) bool {
	return ast.IsOrderByScoreDesc(sel)
}

// IsStringGet matches `SELECT * FROM <string> WHERE key = ...`.
func IsStringGet(sel *pg_query.SelectStmt) bool {
	return selectOn(sel, IsStringTable) && IsWildcardSelect(sel)
}

// IsStringGetValue matches the `value`-only projection of a keyed
// string read.
func IsStringGetValue(sel *pg_query.SelectStmt) bool {
	if !selectOn(sel, IsStringTable) {
		return false
	}
	fields, ok := ast.SelectFieldNames(sel)
	return ok && len(fields) == 1 && fields[0] == "value"
}

// IsHashGetAll matches `SELECT *` over a keyed hash table.
func IsHashGetAll(sel *pg_query.SelectStmt) bool {
	return selectOn(sel, IsHashTable) && IsWildcardSelect(sel)
}

// IsHashGet matches a single-field projection over a keyed hash table.
func IsHashGet(sel *pg_query.SelectStmt) bool {
	return selectOn(sel, IsHashTable) && IsSingleFieldSelect(sel)
}

// IsHashMultiGet matches a multi-field projection over a keyed hash
// table.
func IsHashMultiGet(sel *pg_query.SelectStmt) bool {
	return selectOn(sel, IsHashTable) && IsMultiFieldSelect(sel)
}

// IsListGetAll matches a keyed whole-list read. An index condition or
// a LIMIT selects a narrower list shape, so both exclude this one.
func IsListGetAll(sel *pg_query.SelectStmt) bool {
	return selectOn(sel, IsListTable) &&
		IsWildcardSelect(sel) &&
		!HasLimit(sel) &&
		!HasFieldEquals(sel.WhereClause, "index")
}

// IsListGetIndex matches a keyed list read selected by `index =`.
func IsListGetIndex(sel *pg_query.SelectStmt) bool {
	return selectOn(sel, IsListTable) && HasFieldEquals(sel.WhereClause, "index")
}

// IsListGetRange matches a keyed list read bounded by LIMIT.
func IsListGetRange(sel *pg_query.SelectStmt) bool {
	return selectOn(sel, IsListTable) && HasLimit(sel)
}

// IsSetGetAll matches a keyed whole-set read. A member condition
// selects the membership test instead.
func IsSetGetAll(sel *pg_query.SelectStmt) bool {
	return selectOn(sel, IsSetTable) &&
		IsWildcardSelect(sel) &&
		!HasFieldEquals(sel.WhereClause, "member")
}

// IsSetIsMember matches a keyed set membership test.
func IsSetIsMember(sel *pg_query.SelectStmt) bool {
	return selectOn(sel, IsSetTable) && HasFieldEquals(sel.WhereClause, "member")
}

// IsZSetGetAll matches a keyed whole-sorted-set read. Score filters
// and descending score order select narrower shapes.
func IsZSetGetAll(sel *pg_query.SelectStmt) bool {
	return selectOn(sel, IsZSetTable) &&
		IsWildcardSelect(sel) &&
		!HasScoreCondition(sel.WhereClause) &&
		!HasOrderByScoreDesc(sel)
}

// IsZSetScoreRange matches a keyed sorted-set read with score bounds.
func IsZSetScoreRange(sel *pg_query.SelectStmt) bool {
	return selectOn(sel, IsZSetTable) &&
		HasScoreCondition(sel.WhereClause) &&
		!HasOrderByScoreDesc(sel)
}

// IsZSetGetReversed matches a keyed sorted-set read ordered by score
// descending.
func IsZSetGetReversed(sel *pg_query.SelectStmt) bool {
	return selectOn(sel, IsZSetTable) && HasOrderByScoreDesc(sel)
}
