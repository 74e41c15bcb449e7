package matchers

import (
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
)

// HasColumns reports whether the INSERT declares every named column,
// case-insensitively. Extra columns are allowed.
func HasColumns(ins *pg_query.InsertStmt, names ...string) bool {
	cols, ok := ast.InsertColumnNames(ins)
	if !ok {
		return false
	}
	declared := make(map[string]bool, len(cols))
	for _, c := range cols {
		declared[c] = true
	}
	for _, name := range names {
		if !declared[strings.ToLower(name)] {
			return false
		}
	}
	return true
}

// HasExactColumns reports whether the INSERT declares exactly the
// named columns, in any order, case-insensitively.
func HasExactColumns(ins *pg_query.InsertStmt, names ...string) bool {
	cols, ok := ast.InsertColumnNames(ins)
	if !ok || len(cols) != len(names) {
		return false
	}
	return HasColumns(ins, names...)
}

// HasValues reports whether the INSERT carries at least one VALUES row.
func HasValues(ins *pg_query.InsertStmt) bool {
	rows, ok := ast.InsertValueRows(ins)
	return ok && len(rows) > 0
}

// insertOn guards the shared INSERT preconditions: named table of the
// wanted kind with a VALUES body.
func insertOn(ins *pg_query.InsertStmt, kindTest func(string) bool) bool {
	table, ok := ast.InsertTableName(ins)
	return ok && kindTest(table) && HasValues(ins)
}

// IsStringSet matches `INSERT INTO <string> (key, value) VALUES ...`.
func IsStringSet(ins *pg_query.InsertStmt) bool {
	return insertOn(ins, IsStringTable) && HasExactColumns(ins, "key", "value")
}

// IsHashSet matches an INSERT into a hash table carrying a key column
// plus any field columns.
func IsHashSet(ins *pg_query.InsertStmt) bool {
	return insertOn(ins, IsHashTable) && HasColumns(ins, "key")
}

// IsListPush matches `INSERT INTO <list> (key, value) VALUES ...`.
func IsListPush(ins *pg_query.InsertStmt) bool {
	return insertOn(ins, IsListTable) && HasExactColumns(ins, "key", "value")
}

// IsSetAdd matches `INSERT INTO <set> (key, member) VALUES ...`.
func IsSetAdd(ins *pg_query.InsertStmt) bool {
	return insertOn(ins, IsSetTable) && HasExactColumns(ins, "key", "member")
}

// IsZSetAdd matches `INSERT INTO <zset> (key, member, score) VALUES ...`.
func IsZSetAdd(ins *pg_query.InsertStmt) bool {
	return insertOn(ins, IsZSetTable) && HasExactColumns(ins, "key", "member", "score")
}
