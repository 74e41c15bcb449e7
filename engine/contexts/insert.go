package contexts

import (
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
	"github.com/redisql-engine/redisql/engine/pattern/extractors"
)

// insertInfo unwraps an INSERT into its ordered key/field reduction.
func insertInfo(stmt *pg_query.Node) (extractors.InsertCommandInfo, bool) {
	ins, ok := ast.Insert(stmt)
	if !ok {
		return extractors.InsertCommandInfo{}, false
	}
	return extractors.ExtractInsertCommand(ins)
}

// insertFieldValue returns the value of one named non-key field.
func insertFieldValue(info extractors.InsertCommandInfo, name string) (string, bool) {
	for _, fv := range info.Fields {
		if fv.Name == name {
			return fv.Value, true
		}
	}
	return "", false
}

// StringSet supplies key and value for a string write.
func StringSet(stmt *pg_query.Node) (Context, bool) {
	info, ok := insertInfo(stmt)
	if !ok {
		return nil, false
	}
	value, ok := insertFieldValue(info, "value")
	if !ok {
		return nil, false
	}
	return Context{"key": info.Key, "value": value}, true
}

// HashSet supplies key and the space-joined field/value pairs in
// statement column order. An INSERT with no field beyond the key has
// nothing to write and reports no match.
func HashSet(stmt *pg_query.Node) (Context, bool) {
	info, ok := insertInfo(stmt)
	if !ok || len(info.Fields) == 0 {
		return nil, false
	}
	pairs := make([]string, 0, len(info.Fields)*2)
	for _, fv := range info.Fields {
		pairs = append(pairs, fv.Name, fv.Value)
	}
	return Context{"key": info.Key, "field_values": strings.Join(pairs, " ")}, true
}

// ListPush supplies key and the pushed value.
func ListPush(stmt *pg_query.Node) (Context, bool) {
	info, ok := insertInfo(stmt)
	if !ok {
		return nil, false
	}
	value, ok := insertFieldValue(info, "value")
	if !ok {
		return nil, false
	}
	return Context{"key": info.Key, "value": value}, true
}

// SetAdd supplies key and members. A multi-row INSERT contributes
// every member whose row shares the first row's key, in row order.
func SetAdd(stmt *pg_query.Node) (Context, bool) {
	ins, ok := ast.Insert(stmt)
	if !ok {
		return nil, false
	}
	cols, ok := ast.InsertColumnNames(ins)
	if !ok {
		return nil, false
	}
	keyIdx, memberIdx := -1, -1
	for i, col := range cols {
		switch col {
		case "key":
			keyIdx = i
		case "member":
			memberIdx = i
		}
	}
	if keyIdx < 0 || memberIdx < 0 {
		return nil, false
	}
	rows, ok := ast.InsertValueRows(ins)
	if !ok {
		return nil, false
	}

	var key string
	var members []string
	for _, row := range rows {
		if len(row) != len(cols) {
			return nil, false
		}
		values, ok := ast.InsertRowValues(row)
		if !ok {
			return nil, false
		}
		if key == "" {
			key = values[keyIdx]
		}
		if values[keyIdx] == key {
			members = append(members, values[memberIdx])
		}
	}
	if key == "" || len(members) == 0 {
		return nil, false
	}
	return Context{"key": key, "members": strings.Join(members, " ")}, true
}

// ZSetAdd supplies key, score and member for a sorted-set write.
func ZSetAdd(stmt *pg_query.Node) (Context, bool) {
	info, ok := insertInfo(stmt)
	if !ok {
		return nil, false
	}
	member, ok := insertFieldValue(info, "member")
	if !ok {
		return nil, false
	}
	score, ok := insertFieldValue(info, "score")
	if !ok {
		return nil, false
	}
	return Context{"key": info.Key, "member": member, "score": score}, true
}
