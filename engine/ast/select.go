package ast

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"
)

// Select unwraps a statement node into a plain SELECT: no set
// operation, no VALUES list. Compound selects report no match so the
// matching layer skips them instead of misreading one arm.
func Select(stmt *pg_query.Node) (*pg_query.SelectStmt, bool) {
	if stmt == nil {
		return nil, false
	}
	sel := stmt.GetSelectStmt()
	if sel == nil || sel.Op != pg_query.SetOperation_SETOP_NONE || len(sel.ValuesLists) != 0 {
		return nil, false
	}
	return sel, true
}

// SelectTableName returns the table of a single-table FROM clause.
func SelectTableName(sel *pg_query.SelectStmt) (string, bool) {
	if sel == nil || len(sel.FromClause) != 1 {
		return "", false
	}
	rv := sel.FromClause[0].GetRangeVar()
	if rv == nil {
		return "", false
	}
	return rv.Relname, true
}

// IsWildcardSelect reports whether the projection is exactly `*`.
func IsWildcardSelect(sel *pg_query.SelectStmt) bool {
	if sel == nil || len(sel.TargetList) != 1 {
		return false
	}
	target := sel.TargetList[0].GetResTarget()
	if target == nil || target.Val == nil {
		return false
	}
	ref := target.Val.GetColumnRef()
	return ref != nil && len(ref.Fields) == 1 && ref.Fields[0].GetAStar() != nil
}

// SelectFieldNames returns the projected column names, lower-cased.
// Every projected item must be a bare identifier; a star, expression
// or qualified name anywhere fails the whole projection, not part of it.
func SelectFieldNames(sel *pg_query.SelectStmt) ([]string, bool) {
	if sel == nil || len(sel.TargetList) == 0 {
		return nil, false
	}
	names := make([]string, 0, len(sel.TargetList))
	for _, item := range sel.TargetList {
		target := item.GetResTarget()
		if target == nil {
			return nil, false
		}
		name, ok := ColumnName(target.Val)
		if !ok {
			return nil, false
		}
		names = append(names, name)
	}
	return names, true
}

// SelectLimit returns the LIMIT count when it is a plain integer
// constant. LIMIT 0 is a valid value and reported as such.
func SelectLimit(sel *pg_query.SelectStmt) (int64, bool) {
	if sel == nil || sel.LimitCount == nil {
		return 0, false
	}
	c := sel.LimitCount.GetAConst()
	if c == nil || c.GetIval() == nil {
		return 0, false
	}
	return int64(c.GetIval().Ival), true
}

// IsOrderByScoreDesc reports whether the first ORDER BY term is the
// `score` column sorted explicitly descending. Ascending or
// direction-unspecified sorts do not count.
func IsOrderByScoreDesc(sel *pg_query.SelectStmt) bool {
	if sel == nil || len(sel.SortClause) == 0 {
		return false
	}
	sortBy := sel.SortClause[0].GetSortBy()
	if sortBy == nil || sortBy.SortbyDir != pg_query.SortByDir_SORTBY_DESC {
		return false
	}
	col, ok := ColumnName(sortBy.Node)
	return ok && col == "score"
}
