package matchers

import (
	"testing"

	pg_query "github.com/pganalyze/pg_query_go/v5"
	"github.com/stretchr/testify/require"

	"github.com/redisql-engine/redisql/engine/ast"
)

func parseSelect(t *testing.T, sql string) *pg_query.SelectStmt {
	t.Helper()
	result, err := pg_query.Parse(sql)
	require.NoError(t, err)
	sel, ok := ast.Select(result.Stmts[0].Stmt)
	require.True(t, ok)
	return sel
}

func parseInsert(t *testing.T, sql string) *pg_query.InsertStmt {
	t.Helper()
	result, err := pg_query.Parse(sql)
	require.NoError(t, err)
	ins, ok := ast.Insert(result.Stmts[0].Stmt)
	require.True(t, ok)
	return ins
}

func parseUpdate(t *testing.T, sql string) *pg_query.UpdateStmt {
	t.Helper()
	result, err := pg_query.Parse(sql)
	require.NoError(t, err)
	upd, ok := ast.Update(result.Stmts[0].Stmt)
	require.True(t, ok)
	return upd
}

func parseDelete(t *testing.T, sql string) *pg_query.DeleteStmt {
	t.Helper()
	result, err := pg_query.Parse(sql)
	require.NoError(t, err)
	del, ok := ast.Delete(result.Stmts[0].Stmt)
	require.True(t, ok)
	return del
}

func TestTableKindPredicates(t *testing.T) {
	require.True(t, IsStringTable("users"))
	require.True(t, IsHashTable("p__hash"))
	require.True(t, IsListTable("p__list"))
	require.True(t, IsSetTable("p__set"))
	require.True(t, IsZSetTable("p__zset"))
	require.False(t, IsStringTable("p__zset"))
}

func TestHasKeyEqualsIsRecursive(t *testing.T) {
	sel := parseSelect(t, "SELECT * FROM t WHERE score > 10 AND key = 'k'")
	require.True(t, HasKeyEquals(sel.WhereClause))

	sel = parseSelect(t, "SELECT * FROM t WHERE score > 10")
	require.False(t, HasKeyEquals(sel.WhereClause))
}

func TestSelectClassifiers(t *testing.T) {
	require.True(t, IsStringGet(parseSelect(t, "SELECT * FROM users WHERE key = 'k'")))
	require.False(t, IsStringGet(parseSelect(t, "SELECT * FROM users")), "key is required")
	require.False(t, IsStringGet(parseSelect(t, "SELECT * FROM p__hash WHERE key = 'k'")))

	require.True(t, IsStringGetValue(parseSelect(t, "SELECT value FROM users WHERE key = 'k'")))
	require.False(t, IsStringGetValue(parseSelect(t, "SELECT name FROM users WHERE key = 'k'")))

	require.True(t, IsHashGetAll(parseSelect(t, "SELECT * FROM p__hash WHERE key = 'k'")))
	require.True(t, IsHashGet(parseSelect(t, "SELECT name FROM p__hash WHERE key = 'k'")))
	require.True(t, IsHashMultiGet(parseSelect(t, "SELECT name, email FROM p__hash WHERE key = 'k'")))
	require.False(t, IsHashMultiGet(parseSelect(t, "SELECT name, count(*) FROM p__hash WHERE key = 'k'")),
		"every projected item must be a bare identifier")
}

func TestListClassifiersAreDisjoint(t *testing.T) {
	getall := parseSelect(t, "SELECT * FROM l__list WHERE key = 'k'")
	byIndex := parseSelect(t, "SELECT * FROM l__list WHERE key = 'k' AND index = 2")
	byLimit := parseSelect(t, "SELECT * FROM l__list WHERE key = 'k' LIMIT 10")

	require.True(t, IsListGetAll(getall))
	require.False(t, IsListGetIndex(getall))
	require.False(t, IsListGetRange(getall))

	require.False(t, IsListGetAll(byIndex))
	require.True(t, IsListGetIndex(byIndex))

	require.False(t, IsListGetAll(byLimit))
	require.True(t, IsListGetRange(byLimit))
}

func TestSetClassifiersAreDisjoint(t *testing.T) {
	getall := parseSelect(t, "SELECT * FROM s__set WHERE key = 'k'")
	ismember := parseSelect(t, "SELECT * FROM s__set WHERE key = 'k' AND member = 'm'")

	require.True(t, IsSetGetAll(getall))
	require.False(t, IsSetIsMember(getall))

	require.False(t, IsSetGetAll(ismember))
	require.True(t, IsSetIsMember(ismember))
}

func TestZSetClassifiersAreDisjoint(t *testing.T) {
	getall := parseSelect(t, "SELECT * FROM z__zset WHERE key = 'k'")
	ranged := parseSelect(t, "SELECT * FROM z__zset WHERE key = 'k' AND score > 100")
	reversed := parseSelect(t, "SELECT * FROM z__zset WHERE key = 'k' ORDER BY score DESC")
	rangedReversed := parseSelect(t, "SELECT * FROM z__zset WHERE key = 'k' AND score > 100 ORDER BY score DESC")

	require.True(t, IsZSetGetAll(getall))
	require.False(t, IsZSetScoreRange(getall))
	require.False(t, IsZSetGetReversed(getall))

	require.False(t, IsZSetGetAll(ranged))
	require.True(t, IsZSetScoreRange(ranged))

	require.False(t, IsZSetGetAll(reversed))
	require.True(t, IsZSetGetReversed(reversed))

	require.False(t, IsZSetScoreRange(rangedReversed), "descending order takes the reversed shape")
	require.True(t, IsZSetGetReversed(rangedReversed))
}

func TestInsertClassifiers(t *testing.T) {
	require.True(t, IsStringSet(parseInsert(t, "INSERT INTO users (key, value) VALUES ('k', 'v')")))
	require.False(t, IsStringSet(parseInsert(t, "INSERT INTO users (key, value, extra) VALUES ('k', 'v', 'x')")),
		"exact column set required")

	require.True(t, IsHashSet(parseInsert(t, "INSERT INTO p__hash (key, name) VALUES ('k', 'n')")))
	require.False(t, IsHashSet(parseInsert(t, "INSERT INTO p__hash (name) VALUES ('n')")))

	require.True(t, IsListPush(parseInsert(t, "INSERT INTO l__list (key, value) VALUES ('k', 'v')")))
	require.True(t, IsSetAdd(parseInsert(t, "INSERT INTO s__set (key, member) VALUES ('k', 'm')")))
	require.True(t, IsZSetAdd(parseInsert(t, "INSERT INTO z__zset (key, member, score) VALUES ('k', 'm', 1)")))
	require.False(t, IsZSetAdd(parseInsert(t, "INSERT INTO z__zset (key, member) VALUES ('k', 'm')")),
		"score column is required")
}

func TestInsertColumnMatchingIsCaseInsensitive(t *testing.T) {
	ins := parseInsert(t, "INSERT INTO users (KEY, VALUE) VALUES ('k', 'v')")
	require.True(t, HasExactColumns(ins, "key", "value"))
	require.True(t, IsStringSet(ins))
}

func TestUpdateClassifiers(t *testing.T) {
	require.True(t, IsStringUpdate(parseUpdate(t, "UPDATE users SET value = 'v' WHERE key = 'k'")))
	require.False(t, IsStringUpdate(parseUpdate(t, "UPDATE users SET name = 'v' WHERE key = 'k'")),
		"value assignment required")

	require.True(t, IsHashUpdate(parseUpdate(t, "UPDATE p__hash SET name = 'n' WHERE key = 'k'")))

	require.True(t, IsListUpdate(parseUpdate(t, "UPDATE l__list SET value = 'v' WHERE key = 'k' AND index = 0")))
	require.False(t, IsListUpdate(parseUpdate(t, "UPDATE l__list SET value = 'v' WHERE key = 'k'")),
		"index condition required")

	require.True(t, IsZSetUpdate(parseUpdate(t, "UPDATE z__zset SET score = 10 WHERE key = 'k' AND member = 'm'")))
	require.False(t, IsZSetUpdate(parseUpdate(t, "UPDATE z__zset SET score = 10 WHERE key = 'k'")),
		"member condition required")
}

func TestDeleteClassifiers(t *testing.T) {
	require.True(t, IsDelete(parseDelete(t, "DELETE FROM users WHERE key = 'k'")))
	require.False(t, IsDelete(parseDelete(t, "DELETE FROM users WHERE key = 'k' AND value = 'v'")),
		"selector column excludes whole-key removal")

	wholeHash := parseDelete(t, "DELETE FROM p__hash WHERE key = 'k'")
	fieldHash := parseDelete(t, "DELETE FROM p__hash WHERE key = 'k' AND field = 'email'")
	require.True(t, IsHashDelete(wholeHash))
	require.False(t, IsHashDeleteField(wholeHash))
	require.False(t, IsHashDelete(fieldHash))
	require.True(t, IsHashDeleteField(fieldHash))

	require.True(t, IsListDeleteValue(parseDelete(t, "DELETE FROM l__list WHERE key = 'k' AND value = 'v'")))
	require.True(t, IsSetDeleteMember(parseDelete(t, "DELETE FROM s__set WHERE key = 'k' AND member = 'm'")))
	require.True(t, IsZSetDeleteMember(parseDelete(t, "DELETE FROM z__zset WHERE key = 'k' AND member = 'm'")))
	require.True(t, IsZSetDelete(parseDelete(t, "DELETE FROM z__zset WHERE key = 'k'")))
}
