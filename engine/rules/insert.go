package rules

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
	"github.com/redisql-engine/redisql/engine/contexts"
	"github.com/redisql-engine/redisql/engine/pattern/matchers"
)

// onInsert adapts an INSERT classifier to a whole-statement matcher.
func onInsert(test func(*pg_query.InsertStmt) bool) func(*pg_query.Node) bool {
	return func(stmt *pg_query.Node) bool {
		ins, ok := ast.Insert(stmt)
		return ok && test(ins)
	}
}

// insertRules lists the write shapes, one per table kind.
func insertRules() []Rule {
	return []Rule{
		{
			Name:         "string_set",
			Template:     "string_set",
			SQLPattern:   "INSERT INTO <table> (key, value) VALUES ('<key>', '<value>')",
			RedisPattern: "SET <key> <value>",
			Match:        onInsert(matchers.IsStringSet),
			Context:      contexts.StringSet,
		},
		{
			Name:         "hash_set",
			Template:     "hash_set",
			SQLPattern:   "INSERT INTO <table>__hash (key, <f1>, <f2>, ...) VALUES ('<key>', '<v1>', '<v2>', ...)",
			RedisPattern: "HSET <key> <f1> <v1> <f2> <v2> ...",
			Match:        onInsert(matchers.IsHashSet),
			Context:      contexts.HashSet,
		},
		{
			Name:         "list_push",
			Template:     "list_push",
			SQLPattern:   "INSERT INTO <table>__list (key, value) VALUES ('<key>', '<value>')",
			RedisPattern: "RPUSH <key> <value>",
			Match:        onInsert(matchers.IsListPush),
			Context:      contexts.ListPush,
		},
		{
			Name:         "set_add",
			Template:     "set_add",
			SQLPattern:   "INSERT INTO <table>__set (key, member) VALUES ('<key>', '<member>')",
			RedisPattern: "SADD <key> <member>",
			Match:        onInsert(matchers.IsSetAdd),
			Context:      contexts.SetAdd,
		},
		{
			Name:         "zset_add",
			Template:     "zset_add",
			SQLPattern:   "INSERT INTO <table>__zset (key, member, score) VALUES ('<key>', '<member>', <score>)",
			RedisPattern: "ZADD <key> <score> <member>",
			Match:        onInsert(matchers.IsZSetAdd),
			Context:      contexts.ZSetAdd,
		},
	}
}
