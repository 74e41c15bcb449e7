package extractors

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
	"github.com/redisql-engine/redisql/engine/pattern"
	"github.com/redisql-engine/redisql/mapping"
)

// keyedSelect matches a single-table SELECT over the wanted table kind
// with a `key =` condition, producing (table, key).
func keyedSelect(kind mapping.TableKind) pattern.Pattern[*pg_query.SelectStmt, pattern.Pair[string, string]] {
	table := pattern.Extract(func(sel *pg_query.SelectStmt) (string, bool) {
		name, ok := ast.SelectTableName(sel)
		if !ok || mapping.Kind(name) != kind {
			return "", false
		}
		return name, true
	})
	key := pattern.Extract(func(sel *pg_query.SelectStmt) (string, bool) {
		return KeyFromCondition(sel.WhereClause)
	})
	return pattern.Both(table, key)
}

// ExtractStringGet matches a keyed read of a string table, either
// `SELECT *` or the `value`-only projection.
func ExtractStringGet(sel *pg_query.SelectStmt) (StringGetInfo, bool) {
	p := pattern.Map(
		pattern.Guard(keyedSelect(mapping.String), func(s *pg_query.SelectStmt) bool {
			if ast.IsWildcardSelect(s) {
				return true
			}
			fields, ok := ast.SelectFieldNames(s)
			return ok && len(fields) == 1 && fields[0] == "value"
		}),
		func(tk pattern.Pair[string, string]) StringGetInfo {
			return StringGetInfo{Key: tk.Second}
		},
	)
	return p(sel)
}

// ExtractHashGetAll matches `SELECT *` over a keyed hash table.
func ExtractHashGetAll(sel *pg_query.SelectStmt) (HashGetAllInfo, bool) {
	p := pattern.Map(
		pattern.Guard(keyedSelect(mapping.Hash), ast.IsWildcardSelect),
		func(tk pattern.Pair[string, string]) HashGetAllInfo {
			return HashGetAllInfo{Key: tk.Second}
		},
	)
	return p(sel)
}

// ExtractHashGet matches a single-field projection over a keyed hash
// table.
func ExtractHashGet(sel *pg_query.SelectStmt) (HashGetInfo, bool) {
	tk, ok := keyedSelect(mapping.Hash)(sel)
	if !ok {
		return HashGetInfo{}, false
	}
	fields, ok := ast.SelectFieldNames(sel)
	if !ok || len(fields) != 1 {
		return HashGetInfo{}, false
	}
	return HashGetInfo{Key: tk.Second, Field: fields[0]}, true
}

// ExtractHashMultiGet matches a two-or-more-field projection over a
// keyed hash table. Field order follows the projection.
func ExtractHashMultiGet(sel *pg_query.SelectStmt) (HashMultiGetInfo, bool) {
	tk, ok := keyedSelect(mapping.Hash)(sel)
	if !ok {
		return HashMultiGetInfo{}, false
	}
	fields, ok := ast.SelectFieldNames(sel)
	if !ok || len(fields) < 2 {
		return HashMultiGetInfo{}, false
	}
	return HashMultiGetInfo{Key: tk.Second, Fields: fields}, true
}

// ExtractListGetAll matches a keyed whole-list read: no index
// condition and no LIMIT, both of which select narrower shapes.
func ExtractListGetAll(sel *pg_query.SelectStmt) (ListGetAllInfo, bool) {
	tk, ok := keyedSelect(mapping.List)(sel)
	if !ok {
		return ListGetAllInfo{}, false
	}
	if _, hasIndex := FieldCondition(sel.WhereClause, "index"); hasIndex {
		return ListGetAllInfo{}, false
	}
	if _, hasLimit := ast.SelectLimit(sel); hasLimit {
		return ListGetAllInfo{}, false
	}
	return ListGetAllInfo{Key: tk.Second}, true
}

// ExtractListIndex matches a keyed single-element list read selected
// by an `index =` condition.
func ExtractListIndex(sel *pg_query.SelectStmt) (ListIndexInfo, bool) {
	tk, ok := keyedSelect(mapping.List)(sel)
	if !ok {
		return ListIndexInfo{}, false
	}
	index, ok := IntFieldCondition(sel.WhereClause, "index")
	if !ok {
		return ListIndexInfo{}, false
	}
	return ListIndexInfo{Key: tk.Second, Index: index}, true
}

// ExtractListGetRange matches a keyed list prefix read selected by
// LIMIT.
func ExtractListGetRange(sel *pg_query.SelectStmt) (ListGetRangeInfo, bool) {
	tk, ok := keyedSelect(mapping.List)(sel)
	if !ok {
		return ListGetRangeInfo{}, false
	}
	limit, ok := ast.SelectLimit(sel)
	if !ok {
		return ListGetRangeInfo{}, false
	}
	return ListGetRangeInfo{Key: tk.Second, Limit: limit}, true
}

// ExtractSetGetAll matches a keyed whole-set read: a `member =`
// condition selects the membership-test shape instead.
func ExtractSetGetAll(sel *pg_query.SelectStmt) (SetGetAllInfo, bool) {
	tk, ok := keyedSelect(mapping.Set)(sel)
	if !ok {
		return SetGetAllInfo{}, false
	}
	if _, hasMember := FieldCondition(sel.WhereClause, "member"); hasMember {
		return SetGetAllInfo{}, false
	}
	return SetGetAllInfo{Key: tk.Second}, true
}

// ExtractSetMember matches a keyed set membership test.
func ExtractSetMember(sel *pg_query.SelectStmt) (SetMemberInfo, bool) {
	tk, ok := keyedSelect(mapping.Set)(sel)
	if !ok {
		return SetMemberInfo{}, false
	}
	member, ok := FieldCondition(sel.WhereClause, "member")
	if !ok {
		return SetMemberInfo{}, false
	}
	return SetMemberInfo{Key: tk.Second, Member: member}, true
}

// ExtractZSetGetAll matches a keyed whole-sorted-set read. Absence of
// a score condition and of a descending score order is the match
// criterion.
func ExtractZSetGetAll(sel *pg_query.SelectStmt) (ZSetGetAllInfo, bool) {
	tk, ok := keyedSelect(mapping.SortedSet)(sel)
	if !ok {
		return ZSetGetAllInfo{}, false
	}
	if HasScoreCondition(sel.WhereClause) || ast.IsOrderByScoreDesc(sel) {
		return ZSetGetAllInfo{}, false
	}
	return ZSetGetAllInfo{Key: tk.Second}, true
}

// ExtractZSetScoreRange matches a keyed sorted-set read bounded by
// score comparisons.
func ExtractZSetScoreRange(sel *pg_query.SelectStmt) (ZSetScoreRangeInfo, bool) {
	tk, ok := keyedSelect(mapping.SortedSet)(sel)
	if !ok {
		return ZSetScoreRangeInfo{}, false
	}
	r, ok := ExtractScoreRange(sel.WhereClause)
	if !ok {
		return ZSetScoreRangeInfo{}, false
	}
	return ZSetScoreRangeInfo{Key: tk.Second, Range: r}, true
}

// ExtractZSetGetReversed matches a keyed sorted-set read ordered by
// score descending; score bounds narrow the range when present.
func ExtractZSetGetReversed(sel *pg_query.SelectStmt) (ZSetGetReversedInfo, bool) {
	tk, ok := keyedSelect(mapping.SortedSet)(sel)
	if !ok || !ast.IsOrderByScoreDesc(sel) {
		return ZSetGetReversedInfo{}, false
	}
	r, ok := ExtractScoreRange(sel.WhereClause)
	if !ok {
		r = FullScoreRange()
	}
	return ZSetGetReversedInfo{Key: tk.Second, Range: r}, true
}
