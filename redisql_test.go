package redisql

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func newTransformer(t *testing.T) *Transformer {
	t.Helper()
	tr, err := New()
	require.NoError(t, err)
	return tr
}

func TestTransformRoundTrips(t *testing.T) {
	tr := newTransformer(t)

	cases := []struct {
		sql  string
		want string
	}{
		{"SELECT * FROM users WHERE key = 'user:1001'", "GET user:1001"},
		{"INSERT INTO users (key, value) VALUES ('user:1001', 'Alice')", "SET user:1001 Alice"},
		{"SELECT name FROM profiles__hash WHERE key = 'user:1001'", "HGET user:1001 name"},
		{"SELECT * FROM tweets__list WHERE key = 'user:1001:tweets' LIMIT 10", "LRANGE user:1001:tweets 0 9"},
		{"SELECT * FROM followers__set WHERE key = 'user:1003:followers' AND member = 'user:1001'", "SISMEMBER user:1003:followers user:1001"},
		{"SELECT * FROM leaderboard__zset WHERE key = 'games:global' AND score > 1000", "ZRANGEBYSCORE games:global (1000 +inf"},
	}
	for _, tc := range cases {
		out, err := tr.Transform(tc.sql)
		require.NoError(t, err, tc.sql)
		require.Equal(t, tc.want, out, tc.sql)
	}
}

func TestTransformLimitZero(t *testing.T) {
	tr := newTransformer(t)

	// LIMIT 0 translates to stop index -1, which LRANGE reads as "to
	// the end". Intentionally literal.
	out, err := tr.Transform("SELECT * FROM tweets__list WHERE key = 'k' LIMIT 0")
	require.NoError(t, err)
	require.Equal(t, "LRANGE k 0 -1", out)
}

func TestTransformIsDeterministic(t *testing.T) {
	tr := newTransformer(t)

	sql := "INSERT INTO profiles__hash (key, name, email, city) VALUES ('k', 'a', 'b', 'c')"
	first, err := tr.Transform(sql)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := tr.Transform(sql)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestTransformParseError(t *testing.T) {
	tr := newTransformer(t)

	_, err := tr.Transform("this is not sql")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrParse))

	_, err = tr.Transform("")
	require.True(t, errors.Is(err, ErrParse))
}

func TestTransformNoMatchCarriesInput(t *testing.T) {
	tr := newTransformer(t)

	sql := "SELECT * FROM users"
	_, err := tr.Transform(sql)
	require.True(t, errors.Is(err, ErrNoMatch))
	require.Contains(t, err.Error(), sql)

	_, err = tr.Transform("SELECT * FROM a JOIN b ON a.id = b.id WHERE key = 'k'")
	require.True(t, errors.Is(err, ErrNoMatch))
}

func TestTransformAll(t *testing.T) {
	tr := newTransformer(t)

	results := tr.TransformAll([]string{
		"SELECT * FROM users WHERE key = 'k'",
		"SELECT * FROM users",
		"DELETE FROM users WHERE key = 'k'",
	})
	require.Len(t, results, 3)

	require.Equal(t, "GET k", results[0].Command)
	require.NoError(t, results[0].Err)

	require.True(t, errors.Is(results[1].Err, ErrNoMatch),
		"one failure must not abort the batch")

	require.Equal(t, "DEL k", results[2].Command)
	require.NoError(t, results[2].Err)
}

func TestPatterns(t *testing.T) {
	tr := newTransformer(t)

	infos := tr.Patterns()
	require.NotEmpty(t, infos)
	require.Equal(t, "string_get", infos[0].Name)
	require.Equal(t, "is_string_get", infos[0].Matcher)

	info, ok := tr.Pattern("zset_get_reversed")
	require.True(t, ok)
	require.Equal(t, "is_zset_get_reversed", info.Matcher)
	require.NotEmpty(t, info.SQLPattern)
	require.NotEmpty(t, info.RedisPattern)

	_, ok = tr.Pattern("no_such_rule")
	require.False(t, ok)
}

func TestTransformGolden(t *testing.T) {
	tr := newTransformer(t)

	statements := []string{
		"SELECT * FROM users WHERE key = 'user:1001'",
		"SELECT value FROM users WHERE key = 'user:1001'",
		"SELECT * FROM profiles__hash WHERE key = 'user:1001'",
		"SELECT name FROM profiles__hash WHERE key = 'user:1001'",
		"SELECT name, email FROM profiles__hash WHERE key = 'user:1001'",
		"SELECT * FROM tweets__list WHERE key = 'user:1001:tweets'",
		"SELECT * FROM tweets__list WHERE key = 'user:1001:tweets' AND index = 3",
		"SELECT * FROM tweets__list WHERE key = 'user:1001:tweets' LIMIT 10",
		"SELECT * FROM followers__set WHERE key = 'user:1003:followers'",
		"SELECT * FROM followers__set WHERE key = 'user:1003:followers' AND member = 'user:1001'",
		"SELECT * FROM leaderboard__zset WHERE key = 'games:global'",
		"SELECT * FROM leaderboard__zset WHERE key = 'games:global' AND score > 1000",
		"SELECT * FROM leaderboard__zset WHERE key = 'games:global' AND score >= 100 AND score <= 200",
		"SELECT * FROM leaderboard__zset WHERE key = 'games:global' ORDER BY score DESC",
		"INSERT INTO users (key, value) VALUES ('user:1001', 'Alice')",
		"INSERT INTO profiles__hash (key, name, email) VALUES ('user:1001', 'Alice', 'alice@example.com')",
		"INSERT INTO tweets__list (key, value) VALUES ('user:1001:tweets', 'first post')",
		"INSERT INTO followers__set (key, member) VALUES ('user:1003:followers', 'user:1001')",
		"INSERT INTO leaderboard__zset (key, member, score) VALUES ('games:global', 'user:1001', 1500)",
		"UPDATE users SET value = 'Bob' WHERE key = 'user:1001'",
		"UPDATE profiles__hash SET name = 'Bob', email = 'bob@example.com' WHERE key = 'user:1001'",
		"UPDATE tweets__list SET value = 'edited' WHERE key = 'user:1001:tweets' AND index = 0",
		"UPDATE leaderboard__zset SET score = 2000 WHERE key = 'games:global' AND member = 'user:1001'",
		"DELETE FROM users WHERE key = 'user:1001'",
		"DELETE FROM profiles__hash WHERE key = 'user:1001'",
		"DELETE FROM profiles__hash WHERE key = 'user:1001' AND field = 'email'",
		"DELETE FROM tweets__list WHERE key = 'user:1001:tweets' AND value = 'first post'",
		"DELETE FROM followers__set WHERE key = 'user:1003:followers' AND member = 'user:1001'",
		"DELETE FROM leaderboard__zset WHERE key = 'games:global' AND member = 'user:1001'",
		"SELECT * FROM tweets__list WHERE key = 'user:1001:tweets' LIMIT 0",
	}

	var buf bytes.Buffer
	for _, sql := range statements {
		out, err := tr.Transform(sql)
		require.NoError(t, err, sql)
		fmt.Fprintf(&buf, "%s => %s\n", sql, out)
	}

	g := goldie.New(t)
	g.Assert(t, "transform", buf.Bytes())
}
