package ast

import (
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v5"
)

// Insert unwraps a statement node into an INSERT.
func Insert(stmt *pg_query.Node) (*pg_query.InsertStmt, bool) {
	if stmt == nil {
		return nil, false
	}
	ins := stmt.GetInsertStmt()
	if ins == nil {
		return nil, false
	}
	return ins, true
}

// InsertTableName returns the target table name.
func InsertTableName(ins *pg_query.InsertStmt) (string, bool) {
	if ins == nil || ins.Relation == nil {
		return "", false
	}
	return ins.Relation.Relname, true
}

// InsertColumnNames returns the declared column list, lower-cased and
// in statement order. INSERTs without an explicit column list report
// no match; the scheme requires named columns.
func InsertColumnNames(ins *pg_query.InsertStmt) ([]string, bool) {
	if ins == nil || len(ins.Cols) == 0 {
		return nil, false
	}
	names := make([]string, 0, len(ins.Cols))
	for _, col := range ins.Cols {
		target := col.GetResTarget()
		if target == nil || target.Name == "" {
			return nil, false
		}
		names = append(names, strings.ToLower(target.Name))
	}
	return names, true
}

// InsertValueRows returns the VALUES rows as ordered expression lists.
// INSERT ... SELECT and DEFAULT VALUES forms report no rows.
func InsertValueRows(ins *pg_query.InsertStmt) ([][]*pg_query.Node, bool) {
	if ins == nil || ins.SelectStmt == nil {
		return nil, false
	}
	sel := ins.SelectStmt.GetSelectStmt()
	if sel == nil || len(sel.ValuesLists) == 0 {
		return nil, false
	}
	rows := make([][]*pg_query.Node, 0, len(sel.ValuesLists))
	for _, rowNode := range sel.ValuesLists {
		list := rowNode.GetList()
		if list == nil {
			return nil, false
		}
		rows = append(rows, list.Items)
	}
	return rows, true
}

// InsertRowValues stringifies one VALUES row. Any non-constant item
// fails the whole row.
func InsertRowValues(row []*pg_query.Node) ([]string, bool) {
	values := make([]string, 0, len(row))
	for _, item := range row {
		v, ok := ConstValue(item)
		if !ok {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

// InsertColumnValue returns the value bound to a named column in the
// first VALUES row, matching the column case-insensitively.
func InsertColumnValue(ins *pg_query.InsertStmt, column string) (string, bool) {
	cols, ok := InsertColumnNames(ins)
	if !ok {
		return "", false
	}
	rows, ok := InsertValueRows(ins)
	if !ok || len(rows[0]) != len(cols) {
		return "", false
	}
	column = strings.ToLower(column)
	for i, col := range cols {
		if col == column {
			return ConstValue(rows[0][i])
		}
	}
	return "", false
}
