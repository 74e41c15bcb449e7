package extractors

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
)

// ExtractInsertCommand reduces an INSERT to its table, key and the
// remaining column/value pairs in statement order. Requirements:
// exactly one VALUES row, column and value counts equal, every value a
// plain constant, and a `key` column present.
func ExtractInsertCommand(ins *pg_query.InsertStmt) (InsertCommandInfo, bool) {
	table, ok := ast.InsertTableName(ins)
	if !ok {
		return InsertCommandInfo{}, false
	}
	cols, ok := ast.InsertColumnNames(ins)
	if !ok {
		return InsertCommandInfo{}, false
	}
	rows, ok := ast.InsertValueRows(ins)
	if !ok || len(rows) != 1 || len(rows[0]) != len(cols) {
		return InsertCommandInfo{}, false
	}
	values, ok := ast.InsertRowValues(rows[0])
	if !ok {
		return InsertCommandInfo{}, false
	}

	info := InsertCommandInfo{Table: table}
	for i, col := range cols {
		if col == "key" && info.Key == "" {
			info.Key = values[i]
			continue
		}
		info.Fields = append(info.Fields, FieldValue{Name: col, Value: values[i]})
	}
	if info.Key == "" {
		return InsertCommandInfo{}, false
	}
	return info, true
}
