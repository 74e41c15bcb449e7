// Package commands builds Redis command values directly from parsed
// statements, without going through named templates. It is the second
// dispatch strategy: the transformer consults it only after the rule
// registry finds no match. Its output may differ textually from the
// template path for overlapping shapes (HMSET here versus HSET there);
// that duplication is part of the design, not drift to be reconciled.
package commands

import (
	"strconv"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/ast"
	"github.com/redisql-engine/redisql/engine/pattern/extractors"
	"github.com/redisql-engine/redisql/mapping"
)

// RedisCommand is a command name plus its ordered arguments. Argument
// order is semantically significant (ZADD takes score before member),
// so builders append in exactly the order the command requires.
type RedisCommand struct {
	Name string
	Args []string
}

// String renders the single-line wire form: name and arguments,
// space-joined.
func (c RedisCommand) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Generate assembles a command for any statement shape it recognizes.
// It re-derives the table kind from the table name and switches on it.
func Generate(stmt *pg_query.Node) (RedisCommand, bool) {
	if sel, ok := ast.Select(stmt); ok {
		return generateSelect(sel)
	}
	if ins, ok := ast.Insert(stmt); ok {
		return generateInsert(ins)
	}
	if del, ok := ast.Delete(stmt); ok {
		return generateDelete(del)
	}
	return RedisCommand{}, false
}

// generateSelect probes the read extractors, most specific first, so
// an indexed or bounded read is never misread as a whole-value read.
func generateSelect(sel *pg_query.SelectStmt) (RedisCommand, bool) {
	if info, ok := extractors.ExtractStringGet(sel); ok {
		return RedisCommand{Name: "GET", Args: []string{info.Key}}, true
	}
	if info, ok := extractors.ExtractHashGetAll(sel); ok {
		return RedisCommand{Name: "HGETALL", Args: []string{info.Key}}, true
	}
	if info, ok := extractors.ExtractHashGet(sel); ok {
		return RedisCommand{Name: "HGET", Args: []string{info.Key, info.Field}}, true
	}
	if info, ok := extractors.ExtractHashMultiGet(sel); ok {
		return RedisCommand{Name: "HMGET", Args: append([]string{info.Key}, info.Fields...)}, true
	}
	if info, ok := extractors.ExtractListIndex(sel); ok {
		return RedisCommand{Name: "LINDEX", Args: []string{info.Key, formatInt(info.Index)}}, true
	}
	if info, ok := extractors.ExtractListGetRange(sel); ok {
		return RedisCommand{Name: "LRANGE", Args: []string{info.Key, "0", formatInt(info.Limit - 1)}}, true
	}
	if info, ok := extractors.ExtractListGetAll(sel); ok {
		return RedisCommand{Name: "LRANGE", Args: []string{info.Key, "0", "-1"}}, true
	}
	if info, ok := extractors.ExtractSetMember(sel); ok {
		return RedisCommand{Name: "SISMEMBER", Args: []string{info.Key, info.Member}}, true
	}
	if info, ok := extractors.ExtractSetGetAll(sel); ok {
		return RedisCommand{Name: "SMEMBERS", Args: []string{info.Key}}, true
	}
	if info, ok := extractors.ExtractZSetGetReversed(sel); ok {
		return RedisCommand{Name: "ZREVRANGEBYSCORE", Args: []string{info.Key, info.Range.Max, info.Range.Min}}, true
	}
	if info, ok := extractors.ExtractZSetScoreRange(sel); ok {
		return RedisCommand{Name: "ZRANGEBYSCORE", Args: []string{info.Key, info.Range.Min, info.Range.Max}}, true
	}
	if info, ok := extractors.ExtractZSetGetAll(sel); ok {
		return RedisCommand{Name: "ZRANGEBYSCORE", Args: []string{info.Key, "-inf", "+inf"}}, true
	}
	return RedisCommand{}, false
}

// generateInsert switches on the table kind of the reduced INSERT.
func generateInsert(ins *pg_query.InsertStmt) (RedisCommand, bool) {
	info, ok := extractors.ExtractInsertCommand(ins)
	if !ok {
		return RedisCommand{}, false
	}
	switch mapping.Kind(info.Table) {
	case mapping.String:
		if value, ok := fieldValue(info, "value"); ok {
			return RedisCommand{Name: "SET", Args: []string{info.Key, value}}, true
		}

	case mapping.Hash:
		if len(info.Fields) == 0 {
			return RedisCommand{}, false
		}
		args := []string{info.Key}
		for _, fv := range info.Fields {
			args = append(args, fv.Name, fv.Value)
		}
		return RedisCommand{Name: "HMSET", Args: args}, true

	case mapping.List:
		if index, ok := fieldValue(info, "index"); ok {
			if value, ok := fieldValue(info, "value"); ok {
				return RedisCommand{Name: "LSET", Args: []string{info.Key, index, value}}, true
			}
			return RedisCommand{}, false
		}
		if value, ok := fieldValue(info, "value"); ok {
			return RedisCommand{Name: "RPUSH", Args: []string{info.Key, value}}, true
		}

	case mapping.Set:
		if member, ok := fieldValue(info, "member"); ok {
			return RedisCommand{Name: "SADD", Args: []string{info.Key, member}}, true
		}

	case mapping.SortedSet:
		if member, ok := fieldValue(info, "member"); ok {
			if score, ok := fieldValue(info, "score"); ok {
				return RedisCommand{Name: "ZADD", Args: []string{info.Key, score, member}}, true
			}
		}
	}
	return RedisCommand{}, false
}

// generateDelete switches on the table kind of the reduced DELETE.
// Without a member or index selector every kind collapses to DEL.
func generateDelete(del *pg_query.DeleteStmt) (RedisCommand, bool) {
	info, ok := extractors.ExtractDeleteCommand(del)
	if !ok {
		return RedisCommand{}, false
	}
	if !info.HasMember && !info.HasIndex {
		return RedisCommand{Name: "DEL", Args: []string{info.Key}}, true
	}
	switch mapping.Kind(info.Table) {
	case mapping.Hash:
		if info.HasMember {
			return RedisCommand{Name: "HDEL", Args: []string{info.Key, info.Member}}, true
		}
	case mapping.List:
		if info.HasMember {
			return RedisCommand{Name: "LREM", Args: []string{info.Key, "0", info.Member}}, true
		}
	case mapping.Set:
		if info.HasMember {
			return RedisCommand{Name: "SREM", Args: []string{info.Key, info.Member}}, true
		}
	case mapping.SortedSet:
		if info.HasMember {
			return RedisCommand{Name: "ZREM", Args: []string{info.Key, info.Member}}, true
		}
	}
	return RedisCommand{}, false
}

func fieldValue(info extractors.InsertCommandInfo, name string) (string, bool) {
	for _, fv := range info.Fields {
		if fv.Name == name {
			return fv.Value, true
		}
	}
	return "", false
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
