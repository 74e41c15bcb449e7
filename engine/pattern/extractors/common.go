// Package extractors recovers structured values (keys, fields,
// members, score ranges) from WHERE clauses and whole statements.
// Extraction failure is control flow for the dispatch layer, not an
// error: a shape that does not fit simply reports no match.
package extractors

import (
	"strconv"

	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
	"github.com/redisql-engine/redisql/engine/pattern"
)

// ScoreRange carries the textual min/max bounds of a sorted-set range
// query, already encoded in store syntax: `(` prefixes an exclusive
// bound, absent bounds default to -inf / +inf.
type ScoreRange struct {
	Min string
	Max string
}

// FullScoreRange is the bound pair meaning "everything".
func FullScoreRange() ScoreRange {
	return ScoreRange{Min: "-inf", Max: "+inf"}
}

// fieldEquals matches an `ident = constant` term for one column name.
func fieldEquals(name string) pattern.Pattern[*pg_query.Node, string] {
	return pattern.Extract(func(node *pg_query.Node) (string, bool) {
		col, val, ok := ast.Equality(node)
		if !ok || col != name {
			return "", false
		}
		return val, true
	})
}

// scoreBound matches a single `score <op> N` comparison and encodes it
// as a half-open range. > and < produce exclusive bounds.
var scoreBound = pattern.Extract(func(node *pg_query.Node) (ScoreRange, bool) {
	col, op, val, ok := ast.Comparison(node)
	if !ok || col != "score" {
		return ScoreRange{}, false
	}
	switch op {
	case ">":
		return ScoreRange{Min: "(" + val, Max: "+inf"}, true
	case ">=":
		return ScoreRange{Min: val, Max: "+inf"}, true
	case "<":
		return ScoreRange{Min: "-inf", Max: "(" + val}, true
	case "<=":
		return ScoreRange{Min: "-inf", Max: val}, true
	default:
		return ScoreRange{}, false
	}
})

// FieldCondition finds the value of an `ident = constant` equality for
// the given column anywhere in a conjunction chain. Terms are searched
// in statement order and the leftmost match wins; duplicate conditions
// on the same column are not detected.
func FieldCondition(where *pg_query.Node, column string) (string, bool) {
	match := fieldEquals(column)
	for _, term := range ast.Conjuncts(where) {
		if val, ok := match(term); ok {
			return val, true
		}
	}
	return "", false
}

// KeyFromCondition finds the row key: the value of `key = constant`.
func KeyFromCondition(where *pg_query.Node) (string, bool) {
	return FieldCondition(where, "key")
}

// IntFieldCondition is FieldCondition for integer-valued columns.
func IntFieldCondition(where *pg_query.Node, column string) (int64, bool) {
	raw, ok := FieldCondition(where, column)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractScoreRange combines every score comparison in a conjunction
// into one range. Two bounds merge by keeping the minimum from the
// earlier term and the maximum from the later one. That is a heuristic
// join, not interval intersection: `score > 10 AND score > 20` keeps
// the looser (10 lower bound, an artifact reproduced deliberately.
func ExtractScoreRange(where *pg_query.Node) (ScoreRange, bool) {
	var merged ScoreRange
	found := false
	for _, term := range ast.Conjuncts(where) {
		r, ok := scoreBound(term)
		if !ok {
			continue
		}
		if !found {
			merged = r
			found = true
			continue
		}
		merged = ScoreRange{Min: merged.Min, Max: r.Max}
	}
	return merged, found
}

// HasScoreCondition reports whether any conjunct compares the score
// column. Used by the get-all shapes, whose match criterion is the
// absence of a score filter.
func HasScoreCondition(where *pg_query.Node) bool {
	_, ok := ExtractScoreRange(where)
	return ok
}

// ExtractConditions flattens the WHERE tree into a column→value map of
// its equality terms, ignoring everything else.
func ExtractConditions(where *pg_query.Node) map[string]string {
	return ast.Conditions(where)
}
