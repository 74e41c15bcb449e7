package redisql

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v5"
	"github.com/redis/go-redis/v9"

	"github.com/redisql-engine/redisql/engine/commands"
)

// Client executes translated SQL against a live Redis server. It owns
// a Transformer and delegates command execution to go-redis.
type Client struct {
	rdb         *redis.Client
	transformer *Transformer
	log         *slog.Logger
}

// WrapRedis builds a Client around an existing go-redis client. The
// caller keeps ownership of rdb's lifecycle unless Close is used.
func WrapRedis(rdb *redis.Client, opts ...Option) (*Client, error) {
	transformer, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return &Client{
		rdb:         rdb,
		transformer: transformer,
		log:         transformer.log,
	}, nil
}

// NewClient connects to the given address and wraps the connection.
func NewClient(addr string, opts ...Option) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	return WrapRedis(rdb, opts...)
}

// Transformer exposes the underlying translation engine.
func (c *Client) Transformer() *Transformer { return c.transformer }

// Exec translates one SQL statement and runs the resulting command.
// The direct generator's structured form is preferred when it applies,
// because its argument list survives values containing spaces; shapes
// only the template path covers fall back to splitting the rendered
// line on whitespace.
func (c *Client) Exec(ctx context.Context, sql string) (interface{}, error) {
	parsed, err := pg_query.Parse(sql)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(parsed.Stmts) == 0 || parsed.Stmts[0].Stmt == nil {
		return nil, fmt.Errorf("%w: empty statement", ErrParse)
	}

	var args []interface{}
	if cmd, ok := commands.Generate(parsed.Stmts[0].Stmt); ok {
		args = append(args, cmd.Name)
		for _, a := range cmd.Args {
			args = append(args, a)
		}
	} else {
		line, err := c.transformer.Transform(sql)
		if err != nil {
			return nil, err
		}
		for _, a := range strings.Fields(line) {
			args = append(args, a)
		}
	}

	c.log.Debug("executing", "args", args)
	return c.rdb.Do(ctx, args...).Result()
}

// Ping verifies the connection.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
