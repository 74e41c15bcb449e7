package cli

import (
	"fmt"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v5"
	"github.com/spf13/cobra"

	"github.com/redisql-engine/redisql/engine/pattern"
)

func newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <sql>",
		Short: "Report joins, subqueries and CTEs in a statement",
		Long: "Analyze prints structural facts about a statement. These are\n" +
			"informational only; they never influence translation.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql := strings.Join(args, " ")
			result, err := pg_query.Parse(sql)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			if len(result.Stmts) == 0 || result.Stmts[0].Stmt == nil {
				return fmt.Errorf("empty statement")
			}
			stmt := result.Stmts[0].Stmt
			out := cmd.OutOrStdout()

			joins := pattern.ExtractJoins(stmt)
			fmt.Fprintf(out, "joins: %d\n", len(joins))
			for _, j := range joins {
				fmt.Fprintf(out, "  %s %s x %s equi=%v\n",
					j.Type, describeTable(j.Left), describeTable(j.Right), j.IsEquiJoin())
			}

			subs := pattern.ExtractSubqueries(stmt)
			fmt.Fprintf(out, "subqueries: %d\n", len(subs))
			for _, s := range subs {
				fmt.Fprintf(out, "  %s", describeSubqueryContext(s.Context))
				if s.Column != "" {
					fmt.Fprintf(out, " column=%s", s.Column)
				}
				if s.Negated {
					fmt.Fprint(out, " negated")
				}
				fmt.Fprintln(out)
			}

			ctes := pattern.ExtractCtes(stmt)
			fmt.Fprintf(out, "ctes: %d\n", len(ctes))
			for _, c := range ctes {
				fmt.Fprintf(out, "  %s recursive=%v references=%d\n",
					c.Name, c.Recursive, pattern.CteReferences(stmt, c.Name))
			}

			if sel := stmt.GetSelectStmt(); sel != nil && sel.WhereClause != nil {
				conditions := pattern.ClassifyConditions(sel.WhereClause)
				fmt.Fprintf(out, "conditions: %d\n", len(conditions))
				for col, cv := range conditions {
					fmt.Fprintf(out, "  %s %s\n", col, describeCondition(cv))
				}
			}
			return nil
		},
	}
}

func describeTable(t pattern.TableInfo) string {
	name := t.Name
	if t.IsDerived {
		name = "(subquery)"
	}
	if t.Alias != "" {
		return name + " AS " + t.Alias
	}
	return name
}

func describeSubqueryContext(c pattern.SubqueryContext) string {
	switch c {
	case pattern.SubqueryFromClause:
		return "from-clause"
	case pattern.SubquerySelectList:
		return "select-list"
	case pattern.SubqueryExists:
		return "exists"
	case pattern.SubqueryIn:
		return "in"
	case pattern.SubqueryQuantified:
		return "quantified"
	default:
		return "where-clause"
	}
}

func describeCondition(cv pattern.ConditionValue) string {
	switch cv.Kind {
	case pattern.ConditionString:
		return fmt.Sprintf("= %q", cv.Text)
	case pattern.ConditionNumber:
		return "= " + cv.Text
	case pattern.ConditionComparison:
		return cv.Op + " " + cv.Text
	case pattern.ConditionOr:
		return describeCondition(*cv.Left) + " OR " + describeCondition(*cv.Right)
	default:
		return "(unsupported)"
	}
}
