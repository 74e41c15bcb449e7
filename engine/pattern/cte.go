package pattern

import (
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v5"
)

// CteInfo describes one common table expression in a WITH clause.
type CteInfo struct {
	Name      string
	Columns   []string
	Recursive bool
	Query     *pg_query.Node
}

// ExtractCtes collects the WITH clause entries of a statement, in
// declaration order. Recursive reflects the WITH RECURSIVE keyword on
// the clause, as PostgreSQL applies it, not per-entry self-reference
// analysis.
func ExtractCtes(stmt *pg_query.Node) []CteInfo {
	with := withClause(stmt)
	if with == nil {
		return nil
	}
	ctes := make([]CteInfo, 0, len(with.Ctes))
	for _, node := range with.Ctes {
		cte := node.GetCommonTableExpr()
		if cte == nil {
			continue
		}
		info := CteInfo{
			Name:      cte.Ctename,
			Recursive: with.Recursive,
			Query:     cte.Ctequery,
		}
		for _, col := range cte.Aliascolnames {
			if s := col.GetString_(); s != nil {
				info.Columns = append(info.Columns, strings.ToLower(s.Sval))
			}
		}
		ctes = append(ctes, info)
	}
	return ctes
}

// CteReferences counts how many times the main query's FROM clauses
// name the given CTE.
func CteReferences(stmt *pg_query.Node, name string) int {
	sel := stmt.GetSelectStmt()
	if sel == nil {
		return 0
	}
	count := 0
	for _, from := range sel.FromClause {
		count += countRangeVars(from, name)
	}
	return count
}

func countRangeVars(node *pg_query.Node, name string) int {
	if node == nil {
		return 0
	}
	if rv := node.GetRangeVar(); rv != nil {
		if rv.Relname == name {
			return 1
		}
		return 0
	}
	if join := node.GetJoinExpr(); join != nil {
		return countRangeVars(join.Larg, name) + countRangeVars(join.Rarg, name)
	}
	return 0
}

func withClause(stmt *pg_query.Node) *pg_query.WithClause {
	if stmt == nil {
		return nil
	}
	if sel := stmt.GetSelectStmt(); sel != nil {
		return sel.WithClause
	}
	if ins := stmt.GetInsertStmt(); ins != nil {
		return ins.WithClause
	}
	if upd := stmt.GetUpdateStmt(); upd != nil {
		return upd.WithClause
	}
	if del := stmt.GetDeleteStmt(); del != nil {
		return del.WithClause
	}
	return nil
}
