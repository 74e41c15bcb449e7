package matchers

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
	"github.com/redisql-engine/redisql/engine/pattern/extractors"
)

// deleteOn guards the shared DELETE preconditions: table of the wanted
// kind and a key condition.
func deleteOn(del *pg_query.DeleteStmt, kindTest func(string) bool) bool {
	table, ok := ast.DeleteTableName(del)
	return ok && kindTest(table) && HasKeyEquals(del.WhereClause)
}

// hasOnlyKeyFilter reports a WHERE clause that selects the whole key:
// a key equality and no narrowing condition on any selector column.
func hasOnlyKeyFilter(del *pg_query.DeleteStmt) bool {
	conditions := extractors.ExtractConditions(del.WhereClause)
	if _, ok := conditions["key"]; !ok {
		return false
	}
	for _, col := range []string{"member", "field", "value", "index"} {
		if _, ok := conditions[col]; ok {
			return false
		}
	}
	return true
}

// IsDelete matches whole-key removal from a string table.
func IsDelete(del *pg_query.DeleteStmt) bool {
	return deleteOn(del, IsStringTable) && hasOnlyKeyFilter(del)
}

// IsHashDelete matches whole-key removal from a hash table.
func IsHashDelete(del *pg_query.DeleteStmt) bool {
	return deleteOn(del, IsHashTable) && hasOnlyKeyFilter(del)
}

// IsHashDeleteField matches removal of one hash field.
func IsHashDeleteField(del *pg_query.DeleteStmt) bool {
	return deleteOn(del, IsHashTable) && HasFieldEquals(del.WhereClause, "field")
}

// IsListDelete matches whole-key removal from a list table.
func IsListDelete(del *pg_query.DeleteStmt) bool {
	return deleteOn(del, IsListTable) && hasOnlyKeyFilter(del)
}

// IsListDeleteValue matches removal of matching list elements.
func IsListDeleteValue(del *pg_query.DeleteStmt) bool {
	return deleteOn(del, IsListTable) && HasFieldEquals(del.WhereClause, "value")
}

// IsSetDelete matches whole-key removal from a set table.
func IsSetDelete(del *pg_query.DeleteStmt) bool {
	return deleteOn(del, IsSetTable) && hasOnlyKeyFilter(del)
}

// IsSetDeleteMember matches removal of one set member.
func IsSetDeleteMember(del *pg_query.DeleteStmt) bool {
	return deleteOn(del, IsSetTable) && HasFieldEquals(del.WhereClause, "member")
}

// IsZSetDelete matches whole-key removal from a sorted-set table.
func IsZSetDelete(del *pg_query.DeleteStmt) bool {
	return deleteOn(del, IsZSetTable) && hasOnlyKeyFilter(del)
}

// IsZSetDeleteMember matches removal of one sorted-set member.
func IsZSetDeleteMember(del *pg_query.DeleteStmt) bool {
	return deleteOn(del, IsZSetTable) && HasFieldEquals(del.WhereClause, "member")
}
