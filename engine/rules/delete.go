package rules

import (
	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
	"github.com/redisql-engine/redisql/engine/contexts"
	"github.com/redisql-engine/redisql/engine/pattern/matchers"
)

// onDelete adapts a DELETE classifier to a whole-statement matcher.
func onDelete(test func(*pg_query.DeleteStmt) bool) func(*pg_query.Node) bool {
	return func(stmt *pg_query.Node) bool {
		del, ok := ast.Delete(stmt)
		return ok && test(del)
	}
}

// deleteRules lists the removal shapes. Whole-key removal for each
// kind precedes its narrowing variant; the whole-key matchers require
// the absence of any selector column, keeping the pairs disjoint.
func deleteRules() []Rule {
	return []Rule{
		{
			Name:         "del",
			Template:     "del",
			SQLPattern:   "DELETE FROM <table> WHERE key = '<key>'",
			RedisPattern: "DEL <key>",
			Match:        onDelete(matchers.IsDelete),
			Context:      contexts.DeleteKey,
		},
		{
			Name:         "hash_delete",
			Template:     "hash_delete",
			SQLPattern:   "DELETE FROM <table>__hash WHERE key = '<key>'",
			RedisPattern: "DEL <key>",
			Match:        onDelete(matchers.IsHashDelete),
			Context:      contexts.DeleteKey,
		},
		{
			Name:         "hash_delete_field",
			Template:     "hash_delete_field",
			SQLPattern:   "DELETE FROM <table>__hash WHERE key = '<key>' AND field = '<field>'",
			RedisPattern: "HDEL <key> <field>",
			Match:        onDelete(matchers.IsHashDeleteField),
			Context:      contexts.HashDeleteField,
		},
		{
			Name:         "list_delete",
			Template:     "list_delete",
			SQLPattern:   "DELETE FROM <table>__list WHERE key = '<key>'",
			RedisPattern: "DEL <key>",
			Match:        onDelete(matchers.IsListDelete),
			Context:      contexts.DeleteKey,
		},
		{
			Name:         "list_delete_value",
			Template:     "list_delete_value",
			SQLPattern:   "DELETE FROM <table>__list WHERE key = '<key>' AND value = '<value>'",
			RedisPattern: "LREM <key> 0 <value>",
			Match:        onDelete(matchers.IsListDeleteValue),
			Context:      contexts.ListDeleteValue,
		},
		{
			Name:         "set_delete",
			Template:     "set_delete",
			SQLPattern:   "DELETE FROM <table>__set WHERE key = '<key>'",
			RedisPattern: "DEL <key>",
			Match:        onDelete(matchers.IsSetDelete),
			Context:      contexts.DeleteKey,
		},
		{
			Name:         "set_delete_member",
			Template:     "set_delete_member",
			SQLPattern:   "DELETE FROM <table>__set WHERE key = '<key>' AND member = '<member>'",
			RedisPattern: "SREM <key> <member>",
			Match:        onDelete(matchers.IsSetDeleteMember),
			Context:      contexts.SetDeleteMember,
		},
		{
			Name:         "zset_delete",
			Template:     "zset_delete",
			SQLPattern:   "DELETE FROM <table>__zset WHERE key = '<key>'",
			RedisPattern: "DEL <key>",
			Match:        onDelete(matchers.IsZSetDelete),
			Context:      contexts.DeleteKey,
		},
		{
			Name:         "zset_delete_member",
			Template:     "zset_delete_member",
			SQLPattern:   "DELETE FROM <table>__zset WHERE key = '<key>' AND member = '<member>'",
			RedisPattern: "ZREM <key> <member>",
			Match:        onDelete(matchers.IsZSetDeleteMember),
			Context:      contexts.ZSetDeleteMember,
		},
	}
}
