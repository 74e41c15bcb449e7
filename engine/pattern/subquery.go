package pattern

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"
)

// SubqueryContext names where a nested SELECT appears.
type SubqueryContext int

const (
	SubqueryFromClause SubqueryContext = iota
	SubqueryWhereClause
	SubquerySelectList
	SubqueryExists
	SubqueryIn
	SubqueryQuantified
)

// SubqueryInfo describes one nested SELECT. Query points into the
// parse tree; callers must treat it as read-only.
type SubqueryInfo struct {
	Context SubqueryContext
	// Alias names a derived table (FROM context only).
	Alias string
	// Column is the tested column for IN and quantified predicates.
	Column string
	// Operator is the comparison of a quantified predicate.
	Operator string
	Negated  bool
	Query    *pg_query.Node
}

// ExtractSubqueries collects nested SELECTs from the FROM clause,
// projection and WHERE tree of a statement, in that order.
func ExtractSubqueries(stmt *pg_query.Node) []SubqueryInfo {
	sel := stmt.GetSelectStmt()
	if sel == nil {
		return nil
	}
	var subs []SubqueryInfo
	for _, from := range sel.FromClause {
		subs = appendFromSubqueries(subs, from)
	}
	for _, item := range sel.TargetList {
		target := item.GetResTarget()
		if target == nil || target.Val == nil {
			continue
		}
		if link := target.Val.GetSubLink(); link != nil {
			subs = append(subs, SubqueryInfo{
				Context: SubquerySelectList,
				Query:   link.Subselect,
			})
		}
	}
	subs = appendWhereSubqueries(subs, sel.WhereClause, false)
	subs = appendWhereSubqueries(subs, sel.HavingClause, false)
	return subs
}

func appendFromSubqueries(out []SubqueryInfo, node *pg_query.Node) []SubqueryInfo {
	if node == nil {
		return out
	}
	if sub := node.GetRangeSubselect(); sub != nil {
		info := SubqueryInfo{Context: SubqueryFromClause, Query: sub.Subquery}
		if sub.Alias != nil {
			info.Alias = sub.Alias.Aliasname
		}
		return append(out, info)
	}
	if join := node.GetJoinExpr(); join != nil {
		out = appendFromSubqueries(out, join.Larg)
		out = appendFromSubqueries(out, join.Rarg)
	}
	return out
}

func appendWhereSubqueries(out []SubqueryInfo, node *pg_query.Node, negated bool) []SubqueryInfo {
	if node == nil {
		return out
	}
	if be := node.GetBoolExpr(); be != nil {
		childNegated := negated
		if be.Boolop == pg_query.BoolExprType_NOT_EXPR {
			childNegated = !negated
		}
		for _, arg := range be.Args {
			out = appendWhereSubqueries(out, arg, childNegated)
		}
		return out
	}
	link := node.GetSubLink()
	if link == nil {
		return out
	}

	info := SubqueryInfo{Query: link.Subselect, Negated: negated}
	switch link.SubLinkType {
	case pg_query.SubLinkType_EXISTS_SUBLINK:
		info.Context = SubqueryExists
	case pg_query.SubLinkType_ANY_SUBLINK:
		if len(link.OperName) == 0 {
			// Plain IN parses as ANY with an implicit equality.
			info.Context = SubqueryIn
		} else {
			info.Context = SubqueryQuantified
			if s := link.OperName[0].GetString_(); s != nil {
				info.Operator = s.Sval
			}
		}
		if col, ok := columnOf(link.Testexpr); ok {
			info.Column = col
		}
	case pg_query.SubLinkType_ALL_SUBLINK:
		info.Context = SubqueryQuantified
		if len(link.OperName) > 0 {
			if s := link.OperName[0].GetString_(); s != nil {
				info.Operator = s.Sval
			}
		}
		if col, ok := columnOf(link.Testexpr); ok {
			info.Column = col
		}
	default:
		info.Context = SubqueryWhereClause
	}
	return append(out, info)
}

func columnOf(node *pg_query.Node) (string, bool) {
	if node == nil {
		return "", false
	}
	ref := node.GetColumnRef()
	if ref == nil || len(ref.Fields) == 0 {
		return "", false
	}
	s := ref.Fields[len(ref.Fields)-1].GetString_()
	if s == nil {
		return "", false
	}
	return s.Sval, true
}
