package extractors

import (
	"testing"

	pg_query "github.com/pganalyze/pg_query_go/v5"
	"github.com/stretchr/testify/require"

	"github.com/redisql-engine/redisql/engine/ast"
)

func parseWhere(t *testing.T, where string) *pg_query.Node {
	t.Helper()
	result, err := pg_query.Parse("SELECT * FROM t WHERE " + where)
	require.NoError(t, err)
	sel, ok := ast.Select(result.Stmts[0].Stmt)
	require.True(t, ok)
	return sel.WhereClause
}

func parseSelect(t *testing.T, sql string) *pg_query.SelectStmt {
	t.Helper()
	result, err := pg_query.Parse(sql)
	require.NoError(t, err)
	sel, ok := ast.Select(result.Stmts[0].Stmt)
	require.True(t, ok)
	return sel
}

func TestKeyFromCondition(t *testing.T) {
	key, ok := KeyFromCondition(parseWhere(t, "key = 'user:1001'"))
	require.True(t, ok)
	require.Equal(t, "user:1001", key)

	key, ok = KeyFromCondition(parseWhere(t, "score > 10 AND key = 'k'"))
	require.True(t, ok, "key found anywhere in the conjunction")
	require.Equal(t, "k", key)

	key, ok = KeyFromCondition(parseWhere(t, "key = 'left' AND key = 'right'"))
	require.True(t, ok)
	require.Equal(t, "left", key, "leftmost match wins")

	_, ok = KeyFromCondition(parseWhere(t, "member = 'm'"))
	require.False(t, ok)

	_, ok = KeyFromCondition(nil)
	require.False(t, ok)
}

func TestFieldCondition(t *testing.T) {
	val, ok := FieldCondition(parseWhere(t, "key = 'k' AND index = 3"), "index")
	require.True(t, ok)
	require.Equal(t, "3", val)

	_, ok = FieldCondition(parseWhere(t, "key = 'k'"), "index")
	require.False(t, ok)

	n, ok := IntFieldCondition(parseWhere(t, "index = 7"), "index")
	require.True(t, ok)
	require.Equal(t, int64(7), n)

	_, ok = IntFieldCondition(parseWhere(t, "index = 'three'"), "index")
	require.False(t, ok)
}

func TestExtractScoreRangeEncodings(t *testing.T) {
	cases := []struct {
		where string
		want  ScoreRange
	}{
		{"score > 1000", ScoreRange{Min: "(1000", Max: "+inf"}},
		{"score >= 1000", ScoreRange{Min: "1000", Max: "+inf"}},
		{"score < 1000", ScoreRange{Min: "-inf", Max: "(1000"}},
		{"score <= 1000", ScoreRange{Min: "-inf", Max: "1000"}},
		{"score > 12.5", ScoreRange{Min: "(12.5", Max: "+inf"}},
	}
	for _, tc := range cases {
		r, ok := ExtractScoreRange(parseWhere(t, tc.where))
		require.True(t, ok, tc.where)
		require.Equal(t, tc.want, r, tc.where)
	}
}

func TestExtractScoreRangeConjunctionMerge(t *testing.T) {
	// Min comes from the earlier term, max from the later one.
	r, ok := ExtractScoreRange(parseWhere(t, "score >= 100 AND score <= 200"))
	require.True(t, ok)
	require.Equal(t, ScoreRange{Min: "100", Max: "200"}, r)

	r, ok = ExtractScoreRange(parseWhere(t, "score > 100 AND score < 200"))
	require.True(t, ok)
	require.Equal(t, ScoreRange{Min: "(100", Max: "(200"}, r)

	// The merge is a heuristic, not interval intersection: two lower
	// bounds keep the earlier minimum and the later maximum.
	r, ok = ExtractScoreRange(parseWhere(t, "score > 10 AND score > 20"))
	require.True(t, ok)
	require.Equal(t, ScoreRange{Min: "(10", Max: "+inf"}, r)

	r, ok = ExtractScoreRange(parseWhere(t, "key = 'k' AND score > 50"))
	require.True(t, ok, "non-score terms are skipped")
	require.Equal(t, ScoreRange{Min: "(50", Max: "+inf"}, r)

	_, ok = ExtractScoreRange(parseWhere(t, "key = 'k'"))
	require.False(t, ok)
}

func TestExtractStringGet(t *testing.T) {
	info, ok := ExtractStringGet(parseSelect(t, "SELECT * FROM users WHERE key = 'u:1'"))
	require.True(t, ok)
	require.Equal(t, StringGetInfo{Key: "u:1"}, info)

	info, ok = ExtractStringGet(parseSelect(t, "SELECT value FROM users WHERE key = 'u:1'"))
	require.True(t, ok, "value-only projection also reads the string")
	require.Equal(t, StringGetInfo{Key: "u:1"}, info)

	_, ok = ExtractStringGet(parseSelect(t, "SELECT name FROM users WHERE key = 'u:1'"))
	require.False(t, ok)

	_, ok = ExtractStringGet(parseSelect(t, "SELECT * FROM profiles__hash WHERE key = 'u:1'"))
	require.False(t, ok, "wrong table kind")
}

func TestExtractHashShapes(t *testing.T) {
	all, ok := ExtractHashGetAll(parseSelect(t, "SELECT * FROM profiles__hash WHERE key = 'u:1'"))
	require.True(t, ok)
	require.Equal(t, "u:1", all.Key)

	get, ok := ExtractHashGet(parseSelect(t, "SELECT name FROM profiles__hash WHERE key = 'u:1'"))
	require.True(t, ok)
	require.Equal(t, HashGetInfo{Key: "u:1", Field: "name"}, get)

	multi, ok := ExtractHashMultiGet(parseSelect(t, "SELECT name, email, age FROM profiles__hash WHERE key = 'u:1'"))
	require.True(t, ok)
	require.Equal(t, []string{"name", "email", "age"}, multi.Fields)

	_, ok = ExtractHashMultiGet(parseSelect(t, "SELECT name FROM profiles__hash WHERE key = 'u:1'"))
	require.False(t, ok, "single field is not a multi get")
}

func TestExtractListShapesAreDisjoint(t *testing.T) {
	all, ok := ExtractListGetAll(parseSelect(t, "SELECT * FROM tweets__list WHERE key = 'k'"))
	require.True(t, ok)
	require.Equal(t, "k", all.Key)

	_, ok = ExtractListGetAll(parseSelect(t, "SELECT * FROM tweets__list WHERE key = 'k' AND index = 1"))
	require.False(t, ok, "index condition selects the narrower shape")
	_, ok = ExtractListGetAll(parseSelect(t, "SELECT * FROM tweets__list WHERE key = 'k' LIMIT 5"))
	require.False(t, ok, "limit selects the range shape")

	idx, ok := ExtractListIndex(parseSelect(t, "SELECT * FROM tweets__list WHERE key = 'k' AND index = 3"))
	require.True(t, ok)
	require.Equal(t, ListIndexInfo{Key: "k", Index: 3}, idx)

	rng, ok := ExtractListGetRange(parseSelect(t, "SELECT * FROM tweets__list WHERE key = 'k' LIMIT 10"))
	require.True(t, ok)
	require.Equal(t, ListGetRangeInfo{Key: "k", Limit: 10}, rng)

	rng, ok = ExtractListGetRange(parseSelect(t, "SELECT * FROM tweets__list WHERE key = 'k' LIMIT 0"))
	require.True(t, ok)
	require.Equal(t, int64(0), rng.Limit)
}

func TestExtractSetShapes(t *testing.T) {
	all, ok := ExtractSetGetAll(parseSelect(t, "SELECT * FROM followers__set WHERE key = 'k'"))
	require.True(t, ok)
	require.Equal(t, "k", all.Key)

	_, ok = ExtractSetGetAll(parseSelect(t, "SELECT * FROM followers__set WHERE key = 'k' AND member = 'm'"))
	require.False(t, ok, "member condition selects the membership test")

	member, ok := ExtractSetMember(parseSelect(t, "SELECT * FROM followers__set WHERE key = 'k' AND member = 'm'"))
	require.True(t, ok)
	require.Equal(t, SetMemberInfo{Key: "k", Member: "m"}, member)
}

func TestExtractZSetShapes(t *testing.T) {
	all, ok := ExtractZSetGetAll(parseSelect(t, "SELECT * FROM lb__zset WHERE key = 'k'"))
	require.True(t, ok)
	require.Equal(t, "k", all.Key)

	_, ok = ExtractZSetGetAll(parseSelect(t, "SELECT * FROM lb__zset WHERE key = 'k' AND score > 10"))
	require.False(t, ok, "score filter selects the range shape")
	_, ok = ExtractZSetGetAll(parseSelect(t, "SELECT * FROM lb__zset WHERE key = 'k' ORDER BY score DESC"))
	require.False(t, ok, "descending order selects the reversed shape")

	rng, ok := ExtractZSetScoreRange(parseSelect(t, "SELECT * FROM lb__zset WHERE key = 'k' AND score > 1000"))
	require.True(t, ok)
	require.Equal(t, ScoreRange{Min: "(1000", Max: "+inf"}, rng.Range)

	rev, ok := ExtractZSetGetReversed(parseSelect(t, "SELECT * FROM lb__zset WHERE key = 'k' ORDER BY score DESC"))
	require.True(t, ok)
	require.Equal(t, FullScoreRange(), rev.Range)

	rev, ok = ExtractZSetGetReversed(parseSelect(t, "SELECT * FROM lb__zset WHERE key = 'k' AND score > 5 ORDER BY score DESC"))
	require.True(t, ok)
	require.Equal(t, ScoreRange{Min: "(5", Max: "+inf"}, rev.Range)
}

func TestExtractInsertCommand(t *testing.T) {
	parse := func(sql string) *pg_query.InsertStmt {
		result, err := pg_query.Parse(sql)
		require.NoError(t, err)
		ins, ok := ast.Insert(result.Stmts[0].Stmt)
		require.True(t, ok)
		return ins
	}

	info, ok := ExtractInsertCommand(parse(
		"INSERT INTO profiles__hash (key, name, email) VALUES ('u:1', 'Alice', 'a@example.com')"))
	require.True(t, ok)
	require.Equal(t, "profiles__hash", info.Table)
	require.Equal(t, "u:1", info.Key)
	require.Equal(t, []FieldValue{
		{Name: "name", Value: "Alice"},
		{Name: "email", Value: "a@example.com"},
	}, info.Fields, "field order follows the column list")

	_, ok = ExtractInsertCommand(parse("INSERT INTO t (name) VALUES ('x')"))
	require.False(t, ok, "key column is required")

	_, ok = ExtractInsertCommand(parse("INSERT INTO t (key, name) VALUES ('a', 'b'), ('c', 'd')"))
	require.False(t, ok, "exactly one row is required")
}

func TestExtractDeleteCommand(t *testing.T) {
	parse := func(sql string) *pg_query.DeleteStmt {
		result, err := pg_query.Parse(sql)
		require.NoError(t, err)
		del, ok := ast.Delete(result.Stmts[0].Stmt)
		require.True(t, ok)
		return del
	}

	info, ok := ExtractDeleteCommand(parse("DELETE FROM users WHERE key = 'k'"))
	require.True(t, ok)
	require.Equal(t, "k", info.Key)
	require.False(t, info.HasMember)
	require.False(t, info.HasIndex)

	info, ok = ExtractDeleteCommand(parse("DELETE FROM s__set WHERE key = 'k' AND member = 'm'"))
	require.True(t, ok)
	require.True(t, info.HasMember)
	require.Equal(t, "m", info.Member)

	// member outranks field outranks value.
	info, ok = ExtractDeleteCommand(parse("DELETE FROM h__hash WHERE key = 'k' AND field = 'f' AND value = 'v'"))
	require.True(t, ok)
	require.Equal(t, "f", info.Member)

	info, ok = ExtractDeleteCommand(parse("DELETE FROM l__list WHERE key = 'k' AND index = 2"))
	require.True(t, ok)
	require.True(t, info.HasIndex)
	require.Equal(t, int64(2), info.Index)

	_, ok = ExtractDeleteCommand(parse("DELETE FROM users WHERE member = 'm'"))
	require.False(t, ok, "key is required")
}
