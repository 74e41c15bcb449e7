package pattern

import (
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v5"
)

// Join analysis captures structural facts about FROM clauses. Nothing
// here feeds command generation; the transformer's dispatch never
// consults joins. The CLI analyze surface is the only consumer.

// JoinConditionKind distinguishes how a join is constrained.
type JoinConditionKind int

const (
	JoinOn JoinConditionKind = iota
	JoinUsing
	JoinNatural
	JoinUnconstrained
)

// TableInfo names one side of a join.
type TableInfo struct {
	Name      string
	Alias     string
	IsDerived bool
}

// JoinInfo describes one join node in a FROM clause.
type JoinInfo struct {
	Type          string
	Left          TableInfo
	Right         TableInfo
	ConditionKind JoinConditionKind
	On            *pg_query.Node
	Using         []string
}

// IsEquiJoin reports an ON condition of the form t1.c1 = t2.c2.
func (j JoinInfo) IsEquiJoin() bool {
	if j.ConditionKind == JoinUsing {
		return true
	}
	if j.ConditionKind != JoinOn || j.On == nil {
		return false
	}
	expr := j.On.GetAExpr()
	if expr == nil || expr.Kind != pg_query.A_Expr_Kind_AEXPR_OP || len(expr.Name) != 1 {
		return false
	}
	op := expr.Name[0].GetString_()
	return op != nil && op.Sval == "=" &&
		isQualifiedColumn(expr.Lexpr) && isQualifiedColumn(expr.Rexpr)
}

func isQualifiedColumn(node *pg_query.Node) bool {
	if node == nil {
		return false
	}
	ref := node.GetColumnRef()
	return ref != nil && len(ref.Fields) == 2 &&
		ref.Fields[0].GetString_() != nil && ref.Fields[1].GetString_() != nil
}

// ExtractJoins collects every join in a statement's FROM clause, outer
// joins before the inner joins nested beneath them.
func ExtractJoins(stmt *pg_query.Node) []JoinInfo {
	sel := stmt.GetSelectStmt()
	if sel == nil {
		return nil
	}
	var joins []JoinInfo
	for _, from := range sel.FromClause {
		joins = appendJoins(joins, from)
	}
	return joins
}

func appendJoins(out []JoinInfo, node *pg_query.Node) []JoinInfo {
	if node == nil {
		return out
	}
	join := node.GetJoinExpr()
	if join == nil {
		return out
	}

	info := JoinInfo{
		Type:  joinTypeName(join.Jointype),
		Left:  tableInfo(join.Larg),
		Right: tableInfo(join.Rarg),
	}
	switch {
	case join.IsNatural:
		info.ConditionKind = JoinNatural
	case len(join.UsingClause) > 0:
		info.ConditionKind = JoinUsing
		for _, u := range join.UsingClause {
			if s := u.GetString_(); s != nil {
				info.Using = append(info.Using, strings.ToLower(s.Sval))
			}
		}
	case join.Quals != nil:
		info.ConditionKind = JoinOn
		info.On = join.Quals
	default:
		info.ConditionKind = JoinUnconstrained
	}
	out = append(out, info)

	// Nested joins appear as arguments of the outer one.
	out = appendJoins(out, join.Larg)
	out = appendJoins(out, join.Rarg)
	return out
}

func joinTypeName(t pg_query.JoinType) string {
	switch t {
	case pg_query.JoinType_JOIN_LEFT:
		return "LEFT"
	case pg_query.JoinType_JOIN_RIGHT:
		return "RIGHT"
	case pg_query.JoinType_JOIN_FULL:
		return "FULL"
	default:
		return "INNER"
	}
}

func tableInfo(node *pg_query.Node) TableInfo {
	if node == nil {
		return TableInfo{}
	}
	if rv := node.GetRangeVar(); rv != nil {
		info := TableInfo{Name: rv.Relname}
		if rv.Alias != nil {
			info.Alias = rv.Alias.Aliasname
		}
		return info
	}
	if sub := node.GetRangeSubselect(); sub != nil {
		info := TableInfo{IsDerived: true}
		if sub.Alias != nil {
			info.Alias = sub.Alias.Aliasname
		}
		return info
	}
	if join := node.GetJoinExpr(); join != nil {
		// A nested join contributes its own entries; name the slot
		// after its left leaf for readability.
		return tableInfo(join.Larg)
	}
	return TableInfo{}
}
