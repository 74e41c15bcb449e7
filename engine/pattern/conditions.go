package pattern

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
)

// ConditionKind classifies one WHERE condition for analysis output.
type ConditionKind int

const (
	ConditionString ConditionKind = iota
	ConditionNumber
	ConditionComparison
	ConditionOr
	ConditionUnknown
)

// ConditionValue is the analyzed shape of one column's condition.
type ConditionValue struct {
	Kind ConditionKind
	// Text is the literal for String/Number, the right-hand literal
	// for Comparison.
	Text string
	// Op is the Comparison operator.
	Op string
	// Left and Right are the alternatives of an Or condition.
	Left  *ConditionValue
	Right *ConditionValue
}

// ClassifyConditions maps each conditioned column to the shape of its
// condition. Conjuncts are visited in statement order; on duplicate
// columns the first entry wins. Conditions the analyzer cannot name a
// column for are dropped, matching the extractors' silent-skip policy.
func ClassifyConditions(where *pg_query.Node) map[string]ConditionValue {
	out := make(map[string]ConditionValue)
	for _, term := range ast.Conjuncts(where) {
		col, cv, ok := classifyTerm(term)
		if !ok {
			continue
		}
		if _, seen := out[col]; !seen {
			out[col] = cv
		}
	}
	return out
}

func classifyTerm(node *pg_query.Node) (string, ConditionValue, bool) {
	if node == nil {
		return "", ConditionValue{}, false
	}

	if be := node.GetBoolExpr(); be != nil && be.Boolop == pg_query.BoolExprType_OR_EXPR && len(be.Args) == 2 {
		lcol, lcv, lok := classifyTerm(be.Args[0])
		rcol, rcv, rok := classifyTerm(be.Args[1])
		if lok && rok && lcol == rcol {
			return lcol, ConditionValue{Kind: ConditionOr, Left: &lcv, Right: &rcv}, true
		}
		return "", ConditionValue{}, false
	}

	col, op, val, ok := ast.Comparison(node)
	if !ok {
		// A recognizable column with an unsupported shape still gets
		// an Unknown entry.
		if expr := node.GetAExpr(); expr != nil {
			if c, ok := ast.ColumnName(expr.Lexpr); ok {
				return c, ConditionValue{Kind: ConditionUnknown}, true
			}
		}
		return "", ConditionValue{}, false
	}
	if op == "=" {
		if isNumericConst(node.GetAExpr().Rexpr) {
			return col, ConditionValue{Kind: ConditionNumber, Text: val}, true
		}
		return col, ConditionValue{Kind: ConditionString, Text: val}, true
	}
	return col, ConditionValue{Kind: ConditionComparison, Op: op, Text: val}, true
}

func isNumericConst(node *pg_query.Node) bool {
	if node == nil {
		return false
	}
	c := node.GetAConst()
	return c != nil && (c.GetIval() != nil || c.GetFval() != nil)
}
