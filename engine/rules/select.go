package rules

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
	"github.com/redisql-engine/redisql/engine/contexts"
	"github.com/redisql-engine/redisql/engine/pattern/matchers"
)

// onSelect adapts a SELECT classifier to a whole-statement matcher.
func onSelect(test func(*pg_query.SelectStmt) bool) func(*pg_query.Node) bool {
	return func(stmt *pg_query.Node) bool {
		sel, ok := ast.Select(stmt)
		return ok && test(sel)
	}
}

// selectRules lists the read shapes. Within a table kind the general
// shape precedes the narrower ones; the matchers keep them disjoint,
// so the listed order is also the only order that ever fires.
func selectRules() []Rule {
	return []Rule{
		{
			Name:         "string_get",
			Template:     "string_get",
			SQLPattern:   "SELECT * FROM <table> WHERE key = '<key>'",
			RedisPattern: "GET <key>",
			Match:        onSelect(matchers.IsStringGet),
			Context:      contexts.KeyOnly,
		},
		{
			Name:         "string_get_value",
			Template:     "string_get",
			SQLPattern:   "SELECT value FROM <table> WHERE key = '<key>'",
			RedisPattern: "GET <key>",
			Match:        onSelect(matchers.IsStringGetValue),
			Context:      contexts.KeyOnly,
		},
		{
			Name:         "hash_getall",
			Template:     "hash_getall",
			SQLPattern:   "SELECT * FROM <table>__hash WHERE key = '<key>'",
			RedisPattern: "HGETALL <key>",
			Match:        onSelect(matchers.IsHashGetAll),
			Context:      contexts.KeyOnly,
		},
		{
			Name:         "hash_get",
			Template:     "hash_get",
			SQLPattern:   "SELECT <field> FROM <table>__hash WHERE key = '<key>'",
			RedisPattern: "HGET <key> <field>",
			Match:        onSelect(matchers.IsHashGet),
			Context:      contexts.HashGet,
		},
		{
			Name:         "hash_hmget",
			Template:     "hash_hmget",
			SQLPattern:   "SELECT <f1>, <f2>, ... FROM <table>__hash WHERE key = '<key>'",
			RedisPattern: "HMGET <key> <f1> <f2> ...",
			Match:        onSelect(matchers.IsHashMultiGet),
			Context:      contexts.HashMultiGet,
		},
		{
			Name:         "list_getall",
			Template:     "list_getall",
			SQLPattern:   "SELECT * FROM <table>__list WHERE key = '<key>'",
			RedisPattern: "LRANGE <key> 0 -1",
			Match:        onSelect(matchers.IsListGetAll),
			Context:      contexts.KeyOnly,
		},
		{
			Name:         "list_get_index",
			Template:     "list_get_index",
			SQLPattern:   "SELECT * FROM <table>__list WHERE key = '<key>' AND index = <n>",
			RedisPattern: "LINDEX <key> <n>",
			Match:        onSelect(matchers.IsListGetIndex),
			Context:      contexts.ListGetIndex,
		},
		{
			Name:         "list_get_range",
			Template:     "list_get_range",
			SQLPattern:   "SELECT * FROM <table>__list WHERE key = '<key>' LIMIT <n>",
			RedisPattern: "LRANGE <key> 0 <n-1>",
			Match:        onSelect(matchers.IsListGetRange),
			Context:      contexts.ListGetRange,
		},
		{
			Name:         "set_getall",
			Template:     "set_getall",
			SQLPattern:   "SELECT * FROM <table>__set WHERE key = '<key>'",
			RedisPattern: "SMEMBERS <key>",
			Match:        onSelect(matchers.IsSetGetAll),
			Context:      contexts.KeyOnly,
		},
		{
			Name:         "set_ismember",
			Template:     "set_ismember",
			SQLPattern:   "SELECT * FROM <table>__set WHERE key = '<key>' AND member = '<m>'",
			RedisPattern: "SISMEMBER <key> <m>",
			Match:        onSelect(matchers.IsSetIsMember),
			Context:      contexts.SetIsMember,
		},
		{
			Name:         "zset_getall",
			Template:     "zset_getall",
			SQLPattern:   "SELECT * FROM <table>__zset WHERE key = '<key>'",
			RedisPattern: "ZRANGEBYSCORE <key> -inf +inf",
			Match:        onSelect(matchers.IsZSetGetAll),
			Context:      contexts.ZSetGetAll,
		},
		{
			Name:         "zset_get_score_range",
			Template:     "zset_get_score_range",
			SQLPattern:   "SELECT * FROM <table>__zset WHERE key = '<key>' AND score > <n>",
			RedisPattern: "ZRANGEBYSCORE <key> (<n> +inf",
			Match:        onSelect(matchers.IsZSetScoreRange),
			Context:      contexts.ZSetScoreRange,
		},
		{
			Name:         "zset_get_reversed",
			Template:     "zset_get_reversed",
			SQLPattern:   "SELECT * FROM <table>__zset WHERE key = '<key>' ORDER BY score DESC",
			RedisPattern: "ZREVRANGEBYSCORE <key> +inf -inf",
			Match:        onSelect(matchers.IsZSetGetReversed),
			Context:      contexts.ZSetGetReversed,
		},
	}
}
