package ast

import (
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v5"
)

// Assignment is one SET clause entry, in statement order.
type Assignment struct {
	Column string
	Value  string
}

// Update unwraps a statement node into an UPDATE.
func Update(stmt *pg_query.Node) (*pg_query.UpdateStmt, bool) {
	if stmt == nil {
		return nil, false
	}
	upd := stmt.GetUpdateStmt()
	if upd == nil {
		return nil, false
	}
	return upd, true
}

// UpdateTableName returns the target table name.
func UpdateTableName(upd *pg_query.UpdateStmt) (string, bool) {
	if upd == nil || upd.Relation == nil {
		return "", false
	}
	return upd.Relation.Relname, true
}

// UpdateAssignments returns the SET clauses in statement order.
// Assignment order feeds positional command arguments downstream, so
// the slice deliberately preserves what the author wrote. A SET whose
// right side is not a plain constant fails the whole list.
func UpdateAssignments(upd *pg_query.UpdateStmt) ([]Assignment, bool) {
	if upd == nil || len(upd.TargetList) == 0 {
		return nil, false
	}
	assignments := make([]Assignment, 0, len(upd.TargetList))
	for _, item := range upd.TargetList {
		target := item.GetResTarget()
		if target == nil || target.Name == "" {
			return nil, false
		}
		value, ok := ConstValue(target.Val)
		if !ok {
			return nil, false
		}
		assignments = append(assignments, Assignment{
			Column: strings.ToLower(target.Name),
			Value:  value,
		})
	}
	return assignments, true
}

// UpdateAssignmentValue returns the value assigned to a named column.
func UpdateAssignmentValue(upd *pg_query.UpdateStmt, column string) (string, bool) {
	assignments, ok := UpdateAssignments(upd)
	if !ok {
		return "", false
	}
	column = strings.ToLower(column)
	for _, a := range assignments {
		if a.Column == column {
			return a.Value, true
		}
	}
	return "", false
}
