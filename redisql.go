// Package redisql translates SQL statements into Redis commands. A
// Transformer parses one statement per call, dispatches it through an
// ordered rule registry (first match wins) and falls back to a direct
// command generator for shapes no template covers. Each call yields
// exactly one command string or exactly one error.
package redisql

import (
	"fmt"
	"log/slog"

	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/redisql-engine/redisql/engine/commands"
	"github.com/redisql-engine/redisql/engine/rules"
	"github.com/redisql-engine/redisql/engine/templates"
)

// PatternInfo describes one registered rule for listings and docs.
type PatternInfo struct {
	Name         string
	Matcher      string
	SQLPattern   string
	RedisPattern string
}

// Transformer is the translation engine. Immutable after New and safe
// for concurrent use: dispatch reads the registry, never writes it.
type Transformer struct {
	rules     []rules.Rule
	templates *templates.Engine
	log       *slog.Logger
}

// Option configures a Transformer during construction.
type Option func(*Transformer)

// WithLogger routes dispatch diagnostics to the given logger. The
// default discards nothing but logs at debug level only.
func WithLogger(log *slog.Logger) Option {
	return func(t *Transformer) {
		if log != nil {
			t.log = log
		}
	}
}

// New builds a transformer with the full rule registry and the
// built-in template catalogue.
func New(opts ...Option) (*Transformer, error) {
	engine, err := templates.New()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}
	t := &Transformer{
		rules:     rules.All(),
		templates: engine,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Transform translates one SQL statement into one Redis command line.
func (t *Transformer) Transform(sql string) (string, error) {
	result, err := pg_query.Parse(sql)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(result.Stmts) == 0 || result.Stmts[0].Stmt == nil {
		return "", fmt.Errorf("%w: empty statement", ErrParse)
	}
	stmt := result.Stmts[0].Stmt

	for _, rule := range t.rules {
		if !rule.Match(stmt) {
			continue
		}
		ctx, ok := rule.Context(stmt)
		if !ok {
			// Matched shape but incomplete variables: control
			// flow, keep trying later rules.
			continue
		}
		out, err := t.templates.Render(rule.Template, ctx)
		if err != nil {
			return "", fmt.Errorf("%w: rule %s: %v", ErrTemplate, rule.Name, err)
		}
		t.log.Debug("rule matched", "rule", rule.Name, "template", rule.Template)
		return out, nil
	}

	if cmd, ok := commands.Generate(stmt); ok {
		t.log.Debug("direct generator matched", "command", cmd.Name)
		return cmd.String(), nil
	}
	return "", fmt.Errorf("%w: %s", ErrNoMatch, sql)
}

// Result pairs one input statement with its outcome.
type Result struct {
	SQL     string
	Command string
	Err     error
}

// TransformAll translates a batch of statements, preserving input
// order. Failures are recorded per statement, never aborting the rest.
func (t *Transformer) TransformAll(sqls []string) []Result {
	results := make([]Result, len(sqls))
	for i, sql := range sqls {
		cmd, err := t.Transform(sql)
		results[i] = Result{SQL: sql, Command: cmd, Err: err}
	}
	return results
}

// Patterns lists every registered rule in evaluation order.
func (t *Transformer) Patterns() []PatternInfo {
	infos := make([]PatternInfo, len(t.rules))
	for i, rule := range t.rules {
		infos[i] = PatternInfo{
			Name:         rule.Name,
			Matcher:      "is_" + rule.Name,
			SQLPattern:   rule.SQLPattern,
			RedisPattern: rule.RedisPattern,
		}
	}
	return infos
}

// Pattern looks up one rule's listing entry by name.
func (t *Transformer) Pattern(name string) (PatternInfo, bool) {
	for _, info := range t.Patterns() {
		if info.Name == name {
			return info, true
		}
	}
	return PatternInfo{}, false
}
