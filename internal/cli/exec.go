package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	redisql "github.com/redisql-engine/redisql"
)

func newExecCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "exec <sql>",
		Short: "Translate a statement and run it against Redis",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql := strings.Join(args, " ")

			client, err := redisql.NewClient(addr)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx := cmd.Context()
			if err := client.Ping(ctx); err != nil {
				return fmt.Errorf("redis at %s: %w", addr, err)
			}

			result, err := client.Exec(ctx, sql)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", result)
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:6379", "redis server address")
	return cmd
}
