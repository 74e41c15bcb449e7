package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	redisql "github.com/redisql-engine/redisql"
)

func newPatternsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List supported SQL patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			transformer, err := redisql.New()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			section := ""
			for _, info := range transformer.Patterns() {
				kind := statementKind(info.SQLPattern)
				if kind != section {
					if section != "" {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "%s patterns:\n", kind)
					section = kind
				}
				fmt.Fprintf(out, "  %-22s %s\n", info.Name, info.SQLPattern)
				fmt.Fprintf(out, "  %-22s -> %s\n", "", info.RedisPattern)
			}
			return nil
		},
	}
}

func statementKind(sqlPattern string) string {
	switch {
	case strings.HasPrefix(sqlPattern, "INSERT"):
		return "INSERT"
	case strings.HasPrefix(sqlPattern, "UPDATE"):
		return "UPDATE"
	case strings.HasPrefix(sqlPattern, "DELETE"):
		return "DELETE"
	default:
		return "SELECT"
	}
}
