package rules

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
	"github.com/redisql-engine/redisql/engine/contexts"
	"github.com/redisql-engine/redisql/engine/pattern/matchers"
)

// onUpdate adapts an UPDATE classifier to a whole-statement matcher.
func onUpdate(test func(*pg_query.UpdateStmt) bool) func(*pg_query.Node) bool {
	return func(stmt *pg_query.Node) bool {
		upd, ok := ast.Update(stmt)
		return ok && test(upd)
	}
}

// updateRules lists the in-place write shapes.
func updateRules() []Rule {
	return []Rule{
		{
			Name:         "string_update",
			Template:     "string_update",
			SQLPattern:   "UPDATE <table> SET value = '<value>' WHERE key = '<key>'",
			RedisPattern: "SET <key> <value>",
			Match:        onUpdate(matchers.IsStringUpdate),
			Context:      contexts.StringUpdate,
		},
		{
			Name:         "hash_update",
			Template:     "hash_update",
			SQLPattern:   "UPDATE <table>__hash SET <f1> = '<v1>', ... WHERE key = '<key>'",
			RedisPattern: "HSET <key> <f1> <v1> ...",
			Match:        onUpdate(matchers.IsHashUpdate),
			Context:      contexts.HashUpdate,
		},
		{
			Name:         "list_update",
			Template:     "list_update",
			SQLPattern:   "UPDATE <table>__list SET value = '<value>' WHERE key = '<key>' AND index = <n>",
			RedisPattern: "LSET <key> <n> <value>",
			Match:        onUpdate(matchers.IsListUpdate),
			Context:      contexts.ListUpdate,
		},
		{
			Name:         "zset_update",
			Template:     "zset_update",
			SQLPattern:   "UPDATE <table>__zset SET score = <score> WHERE key = '<key>' AND member = '<member>'",
			RedisPattern: "ZADD <key> <score> <member>",
			Match:        onUpdate(matchers.IsZSetUpdate),
			Context:      contexts.ZSetUpdate,
		},
	}
}
