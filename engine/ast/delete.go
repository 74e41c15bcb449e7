package ast

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"
)

// Delete unwraps a statement node into a DELETE.
func Delete(stmt *pg_query.Node) (*pg_query.DeleteStmt, bool) {
	if stmt == nil {
		return nil, false
	}
	del := stmt.GetDeleteStmt()
	if del == nil {
		return nil, false
	}
	return del, true
}

// DeleteTableName returns the target table name.
func DeleteTableName(del *pg_query.DeleteStmt) (string, bool) {
	if del == nil || del.Relation == nil {
		return "", false
	}
	return del.Relation.Relname, true
}
