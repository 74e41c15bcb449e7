// Package ast provides read-only accessors over PostgreSQL parse trees.
// Every function is pure: it inspects the supplied nodes and never
// mutates them. Callers hand in subtrees obtained from pg_query.Parse.
package ast

import (
	"strconv"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v5"
)

// maxConditionDepth bounds recursion over WHERE/SET expression trees.
// Statements are author-controlled input; a parenthesized conjunction
// nested deeper than this is rejected rather than risking the stack.
const maxConditionDepth = 32

// ConstValue collapses a constant node to its raw text. Numeric and
// string constants are equivalent value sources; booleans, nulls and
// every other literal kind are unsupported and report no value.
func ConstValue(node *pg_query.Node) (string, bool) {
	if node == nil {
		return "", false
	}
	c := node.GetAConst()
	if c == nil || c.Isnull {
		return "", false
	}
	switch {
	case c.GetSval() != nil:
		return c.GetSval().Sval, true
	case c.GetIval() != nil:
		return strconv.FormatInt(int64(c.GetIval().Ival), 10), true
	case c.GetFval() != nil:
		return c.GetFval().Fval, true
	default:
		return "", false
	}
}

// ColumnName returns the lower-cased name of a bare column reference.
// Qualified references (t.col) and stars report no name.
func ColumnName(node *pg_query.Node) (string, bool) {
	if node == nil {
		return "", false
	}
	ref := node.GetColumnRef()
	if ref == nil || len(ref.Fields) != 1 {
		return "", false
	}
	s := ref.Fields[0].GetString_()
	if s == nil {
		return "", false
	}
	return strings.ToLower(s.Sval), true
}

// operatorName returns the operator symbol of an A_Expr ("=", ">", ...).
func operatorName(expr *pg_query.A_Expr) (string, bool) {
	if expr == nil || expr.Kind != pg_query.A_Expr_Kind_AEXPR_OP || len(expr.Name) != 1 {
		return "", false
	}
	s := expr.Name[0].GetString_()
	if s == nil {
		return "", false
	}
	return s.Sval, true
}

// Equality decomposes a `column = constant` node. Anything else,
// including flipped operand order, reports no match.
func Equality(node *pg_query.Node) (column, value string, ok bool) {
	col, op, val, ok := Comparison(node)
	if !ok || op != "=" {
		return "", "", false
	}
	return col, val, true
}

// Comparison decomposes a `column <op> constant` node for the
// operators the engine understands: = > >= < <=.
func Comparison(node *pg_query.Node) (column, op, value string, ok bool) {
	if node == nil {
		return "", "", "", false
	}
	expr := node.GetAExpr()
	if expr == nil {
		return "", "", "", false
	}
	name, ok := operatorName(expr)
	if !ok {
		return "", "", "", false
	}
	switch name {
	case "=", ">", ">=", "<", "<=":
	default:
		return "", "", "", false
	}
	col, ok := ColumnName(expr.Lexpr)
	if !ok {
		return "", "", "", false
	}
	val, ok := ConstValue(expr.Rexpr)
	if !ok {
		return "", "", "", false
	}
	return col, name, val, true
}

// Conjuncts flattens a conjunction into its ordered terms. A non-AND
// node is its own single term. PostgreSQL already flattens unbroken
// AND chains into one node; parenthesized nesting is flattened here,
// left to right, down to maxConditionDepth.
func Conjuncts(where *pg_query.Node) []*pg_query.Node {
	return appendConjuncts(nil, where, 0)
}

func appendConjuncts(out []*pg_query.Node, node *pg_query.Node, depth int) []*pg_query.Node {
	if node == nil || depth > maxConditionDepth {
		return out
	}
	be := node.GetBoolExpr()
	if be == nil || be.Boolop != pg_query.BoolExprType_AND_EXPR {
		return append(out, node)
	}
	for _, arg := range be.Args {
		out = appendConjuncts(out, arg, depth+1)
	}
	return out
}

// Conditions flattens a WHERE tree into a column→value map of its
// equality terms. Non-equality and non-conjunction terms are silently
// ignored; the result may be empty but is never an error. On duplicate
// columns the first (leftmost) value wins.
func Conditions(where *pg_query.Node) map[string]string {
	conditions := make(map[string]string)
	for _, term := range Conjuncts(where) {
		col, val, ok := Equality(term)
		if !ok {
			continue
		}
		if _, seen := conditions[col]; !seen {
			conditions[col] = val
		}
	}
	return conditions
}
