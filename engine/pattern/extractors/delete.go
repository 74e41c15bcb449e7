package extractors

import (
	"strconv"

	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
)

// memberColumns are the condition columns, in precedence order, that
// narrow a DELETE below whole-key removal.
var memberColumns = []string{"member", "field", "value"}

// ExtractDeleteCommand reduces a DELETE to its table, key and optional
// member/index selectors. A missing key fails extraction; everything
// else is optional.
func ExtractDeleteCommand(del *pg_query.DeleteStmt) (DeleteCommandInfo, bool) {
	table, ok := ast.DeleteTableName(del)
	if !ok {
		return DeleteCommandInfo{}, false
	}
	conditions := ExtractConditions(del.WhereClause)
	key, ok := conditions["key"]
	if !ok {
		return DeleteCommandInfo{}, false
	}

	info := DeleteCommandInfo{Table: table, Key: key}
	for _, col := range memberColumns {
		if v, ok := conditions[col]; ok {
			info.Member = v
			info.HasMember = true
			break
		}
	}
	if raw, ok := conditions["index"]; ok {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			info.Index = n
			info.HasIndex = true
		}
	}
	return info, true
}
