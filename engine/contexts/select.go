package contexts

import (
	"strconv"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
	"github.com/redisql-engine/redisql/engine/pattern/extractors"
)

// selectKey unwraps a SELECT and resolves its key condition.
func selectKey(stmt *pg_query.Node) (*pg_query.SelectStmt, string, bool) {
	sel, ok := ast.Select(stmt)
	if !ok {
		return nil, "", false
	}
	key, ok := extractors.KeyFromCondition(sel.WhereClause)
	if !ok {
		return nil, "", false
	}
	return sel, key, true
}

// KeyOnly builds the single-variable context shared by the plain read
// shapes (GET, HGETALL, SMEMBERS and friends).
func KeyOnly(stmt *pg_query.Node) (Context, bool) {
	_, key, ok := selectKey(stmt)
	if !ok {
		return nil, false
	}
	return Context{"key": key}, true
}

// HashGet supplies key and the single projected field.
func HashGet(stmt *pg_query.Node) (Context, bool) {
	sel, key, ok := selectKey(stmt)
	if !ok {
		return nil, false
	}
	fields, ok := ast.SelectFieldNames(sel)
	if !ok || len(fields) != 1 {
		return nil, false
	}
	return Context{"key": key, "field": fields[0]}, true
}

// HashMultiGet supplies key and the projected fields, space-joined in
// projection order.
func HashMultiGet(stmt *pg_query.Node) (Context, bool) {
	sel, key, ok := selectKey(stmt)
	if !ok {
		return nil, false
	}
	fields, ok := ast.SelectFieldNames(sel)
	if !ok || len(fields) < 2 {
		return nil, false
	}
	return Context{"key": key, "fields": strings.Join(fields, " ")}, true
}

// ListGetIndex supplies key and the element index.
func ListGetIndex(stmt *pg_query.Node) (Context, bool) {
	sel, key, ok := selectKey(stmt)
	if !ok {
		return nil, false
	}
	index, ok := extractors.FieldCondition(sel.WhereClause, "index")
	if !ok {
		return nil, false
	}
	return Context{"key": key, "index": index}, true
}

// ListGetRange supplies key and the 0-based range derived from LIMIT.
// The stop index is limit-1, so LIMIT 0 produces stop -1.
func ListGetRange(stmt *pg_query.Node) (Context, bool) {
	sel, key, ok := selectKey(stmt)
	if !ok {
		return nil, false
	}
	limit, ok := ast.SelectLimit(sel)
	if !ok {
		return nil, false
	}
	return Context{
		"key":   key,
		"start": "0",
		"stop":  strconv.FormatInt(limit-1, 10),
	}, true
}

// SetIsMember supplies key and the tested member.
func SetIsMember(stmt *pg_query.Node) (Context, bool) {
	sel, key, ok := selectKey(stmt)
	if !ok {
		return nil, false
	}
	member, ok := extractors.FieldCondition(sel.WhereClause, "member")
	if !ok {
		return nil, false
	}
	return Context{"key": key, "member": member}, true
}

// ZSetGetAll supplies key and the full score range. The bounds are
// part of the shape's definition: absence of a score filter is the
// match criterion, so min and max are always -inf and +inf.
func ZSetGetAll(stmt *pg_query.Node) (Context, bool) {
	_, key, ok := selectKey(stmt)
	if !ok {
		return nil, false
	}
	r := extractors.FullScoreRange()
	return Context{"key": key, "min": r.Min, "max": r.Max}, true
}

// ZSetScoreRange supplies key and the encoded score bounds.
func ZSetScoreRange(stmt *pg_query.Node) (Context, bool) {
	sel, key, ok := selectKey(stmt)
	if !ok {
		return nil, false
	}
	r, ok := extractors.ExtractScoreRange(sel.WhereClause)
	if !ok {
		return nil, false
	}
	return Context{"key": key, "min": r.Min, "max": r.Max}, true
}

// ZSetGetReversed supplies key and score bounds for the descending
// read, defaulting to the full range when no score filter narrows it.
func ZSetGetReversed(stmt *pg_query.Node) (Context, bool) {
	sel, key, ok := selectKey(stmt)
	if !ok {
		return nil, false
	}
	r, ok := extractors.ExtractScoreRange(sel.WhereClause)
	if !ok {
		r = extractors.FullScoreRange()
	}
	return Context{"key": key, "min": r.Min, "max": r.Max}, true
}
