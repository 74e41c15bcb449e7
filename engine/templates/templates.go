// Package templates renders named Redis command templates. The
// catalogue is compiled once at construction; a name miss at render
// time signals a registry/template inconsistency, not bad user input.
package templates

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/redisql-engine/redisql/engine/contexts"
)

// catalogue holds every built-in command template. Variables are the
// names the context builders emit; rendering is plain substitution.
var catalogue = map[string]string{
	// string
	"string_get":    "GET {{.key}}",
	"string_set":    "SET {{.key}} {{.value}}",
	"string_update": "SET {{.key}} {{.value}}",

	// hash
	"hash_getall":       "HGETALL {{.key}}",
	"hash_get":          "HGET {{.key}} {{.field}}",
	"hash_hmget":        "HMGET {{.key}} {{.fields}}",
	"hash_set":          "HSET {{.key}} {{.field_values}}",
	"hash_update":       "HSET {{.key}} {{.field_values}}",
	"hash_delete_field": "HDEL {{.key}} {{.field}}",

	// list
	"list_getall":       "LRANGE {{.key}} 0 -1",
	"list_get_index":    "LINDEX {{.key}} {{.index}}",
	"list_get_range":    "LRANGE {{.key}} {{.start}} {{.stop}}",
	"list_push":         "RPUSH {{.key}} {{.value}}",
	"list_update":       "LSET {{.key}} {{.index}} {{.value}}",
	"list_delete_value": "LREM {{.key}} 0 {{.value}}",

	// set
	"set_getall":        "SMEMBERS {{.key}}",
	"set_ismember":      "SISMEMBER {{.key}} {{.member}}",
	"set_add":           "SADD {{.key}} {{.members}}",
	"set_delete_member": "SREM {{.key}} {{.member}}",

	// sorted set
	"zset_getall":          "ZRANGEBYSCORE {{.key}} -inf +inf",
	"zset_get_score_range": "ZRANGEBYSCORE {{.key}} {{.min}} {{.max}}",
	"zset_get_reversed":    "ZREVRANGEBYSCORE {{.key}} {{.max}} {{.min}}",
	"zset_add":             "ZADD {{.key}} {{.score}} {{.member}}",
	"zset_update":          "ZADD {{.key}} {{.score}} {{.member}}",
	"zset_delete_member":   "ZREM {{.key}} {{.member}}",

	// whole-key deletes share one body under distinct names
	"del":         "DEL {{.key}}",
	"hash_delete": "DEL {{.key}}",
	"list_delete": "DEL {{.key}}",
	"set_delete":  "DEL {{.key}}",
	"zset_delete": "DEL {{.key}}",
}

// Engine renders the built-in catalogue. Immutable after New, safe for
// concurrent use.
type Engine struct {
	root *template.Template
}

// New compiles the catalogue. A malformed built-in template surfaces
// here so a broken build fails at construction, not mid-request.
func New() (*Engine, error) {
	root := template.New("redis")
	for name, body := range catalogue {
		if _, err := root.New(name).Parse(body); err != nil {
			return nil, fmt.Errorf("template %s: %w", name, err)
		}
	}
	return &Engine{root: root}, nil
}

// Render executes the named template against the supplied context.
func (e *Engine) Render(name string, ctx contexts.Context) (string, error) {
	tmpl := e.root.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("unknown template %q", name)
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, ctx); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return out.String(), nil
}

// Names lists the catalogue in no particular order.
func (e *Engine) Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	return names
}
