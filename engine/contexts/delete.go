package contexts

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
	"github.com/redisql-engine/redisql/engine/pattern/extractors"
)

// deleteKey unwraps a DELETE and resolves its key condition.
func deleteKey(stmt *pg_query.Node) (*pg_query.DeleteStmt, string, bool) {
	del, ok := ast.Delete(stmt)
	if !ok {
		return nil, "", false
	}
	key, ok := extractors.KeyFromCondition(del.WhereClause)
	if !ok {
		return nil, "", false
	}
	return del, key, true
}

// DeleteKey supplies the key for whole-key removal, shared by every
// table kind.
func DeleteKey(stmt *pg_query.Node) (Context, bool) {
	_, key, ok := deleteKey(stmt)
	if !ok {
		return nil, false
	}
	return Context{"key": key}, true
}

// deleteSelector builds the key plus one selector column, used by the
// narrowing delete shapes.
func deleteSelector(column, variable string) Builder {
	return func(stmt *pg_query.Node) (Context, bool) {
		del, key, ok := deleteKey(stmt)
		if !ok {
			return nil, false
		}
		value, ok := extractors.FieldCondition(del.WhereClause, column)
		if !ok {
			return nil, false
		}
		return Context{"key": key, variable: value}, true
	}
}

// HashDeleteField supplies key and the removed hash field.
var HashDeleteField = deleteSelector("field", "field")

// ListDeleteValue supplies key and the removed list value.
var ListDeleteValue = deleteSelector("value", "value")

// SetDeleteMember supplies key and the removed set member.
var SetDeleteMember = deleteSelector("member", "member")

// ZSetDeleteMember supplies key and the removed sorted-set member.
var ZSetDeleteMember = deleteSelector("member", "member")
