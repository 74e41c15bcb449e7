package templates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/redisql-engine/redisql/engine/contexts"
)

func TestRender(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	out, err := engine.Render("string_get", contexts.Context{"key": "user:1001"})
	require.NoError(t, err)
	require.Equal(t, "GET user:1001", out)

	out, err = engine.Render("hash_set", contexts.Context{"key": "u:1", "field_values": "name Alice"})
	require.NoError(t, err)
	require.Equal(t, "HSET u:1 name Alice", out)

	out, err = engine.Render("list_get_range", contexts.Context{"key": "k", "start": "0", "stop": "9"})
	require.NoError(t, err)
	require.Equal(t, "LRANGE k 0 9", out)
}

func TestRenderReversedPutsMaxFirst(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	out, err := engine.Render("zset_get_reversed", contexts.Context{"key": "k", "min": "-inf", "max": "+inf"})
	require.NoError(t, err)
	require.Equal(t, "ZREVRANGEBYSCORE k +inf -inf", out)
}

func TestRenderUnknownTemplate(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	_, err = engine.Render("no_such_template", contexts.Context{})
	require.Error(t, err)
}

func TestDeleteAliasesShareOneBody(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	for _, name := range []string{"del", "hash_delete", "list_delete", "set_delete", "zset_delete"} {
		out, err := engine.Render(name, contexts.Context{"key": "k"})
		require.NoError(t, err)
		require.Equal(t, "DEL k", out)
	}
}

func TestNamesCoversCatalogue(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	names := engine.Names()
	require.Contains(t, names, "string_get")
	require.Contains(t, names, "zset_get_score_range")
	require.Len(t, names, len(catalogue))
}
