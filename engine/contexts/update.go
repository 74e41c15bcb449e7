package contexts

import (
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
	"github.com/redisql-engine/redisql/engine/pattern/extractors"
)

// updateKey unwraps an UPDATE and resolves its key condition.
func updateKey(stmt *pg_query.Node) (*pg_query.UpdateStmt, string, bool) {
	upd, ok := ast.Update(stmt)
	if !ok {
		return nil, "", false
	}
	key, ok := extractors.KeyFromCondition(upd.WhereClause)
	if !ok {
		return nil, "", false
	}
	return upd, key, true
}

// StringUpdate supplies key and the new value.
func StringUpdate(stmt *pg_query.Node) (Context, bool) {
	upd, key, ok := updateKey(stmt)
	if !ok {
		return nil, false
	}
	value, ok := ast.UpdateAssignmentValue(upd, "value")
	if !ok {
		return nil, false
	}
	return Context{"key": key, "value": value}, true
}

// HashUpdate supplies key and the space-joined field/value pairs in
// SET clause order.
func HashUpdate(stmt *pg_query.Node) (Context, bool) {
	upd, key, ok := updateKey(stmt)
	if !ok {
		return nil, false
	}
	assignments, ok := ast.UpdateAssignments(upd)
	if !ok || len(assignments) == 0 {
		return nil, false
	}
	pairs := make([]string, 0, len(assignments)*2)
	for _, a := range assignments {
		pairs = append(pairs, a.Column, a.Value)
	}
	return Context{"key": key, "field_values": strings.Join(pairs, " ")}, true
}

// ListUpdate supplies key, element index and the new value.
func ListUpdate(stmt *pg_query.Node) (Context, bool) {
	upd, key, ok := updateKey(stmt)
	if !ok {
		return nil, false
	}
	index, ok := extractors.FieldCondition(upd.WhereClause, "index")
	if !ok {
		return nil, false
	}
	value, ok := ast.UpdateAssignmentValue(upd, "value")
	if !ok {
		return nil, false
	}
	return Context{"key": key, "index": index, "value": value}, true
}

// ZSetUpdate supplies key, member and the new score.
func ZSetUpdate(stmt *pg_query.Node) (Context, bool) {
	upd, key, ok := updateKey(stmt)
	if !ok {
		return nil, false
	}
	member, ok := extractors.FieldCondition(upd.WhereClause, "member")
	if !ok {
		return nil, false
	}
	score, ok := ast.UpdateAssignmentValue(upd, "score")
	if !ok {
		return nil, false
	}
	return Context{"key": key, "member": member, "score": score}, true
}
