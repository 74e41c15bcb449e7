package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/redisql-engine/redisql/engine/validator"
)

func newLintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <sql>",
		Short: "Check a statement against SQL dialects",
		Long: "Lint parses the statement with the PostgreSQL grammar the\n" +
			"transformer uses, then with MySQL as a portability signal.\n" +
			"The key/index/value columns are reserved words in MySQL, so a\n" +
			"MySQL failure is common and only reported.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql := strings.Join(args, " ")
			out := cmd.OutOrStdout()

			pg, err := validator.ValidatePostgreSQLWithDetails(sql)
			if err != nil {
				return err
			}
			if pg.Valid {
				fmt.Fprintln(out, "PostgreSQL: ok")
			} else {
				fmt.Fprintf(out, "PostgreSQL: %s\n", pg.Error)
			}

			my, err := validator.ValidateMySQLWithDetails(sql)
			if err != nil {
				return err
			}
			if my.Valid {
				fmt.Fprintln(out, "MySQL:      ok")
			} else {
				fmt.Fprintf(out, "MySQL:      %s\n", my.Error)
			}

			if !pg.Valid {
				return fmt.Errorf("statement is not translatable")
			}
			return nil
		},
	}
}
