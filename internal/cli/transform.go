package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	redisql "github.com/redisql-engine/redisql"
)

func newTransformCommand() *cobra.Command {
	var (
		query string
		file  string
	)

	cmd := &cobra.Command{
		Use:   "transform [sql]",
		Short: "Translate SQL into Redis commands",
		Long: "Translate one statement given as an argument or with --query,\n" +
			"a file of statements (one per line) with --file, or statements\n" +
			"read line by line from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			transformer, err := redisql.New()
			if err != nil {
				return err
			}

			if len(args) > 0 {
				query = strings.Join(args, " ")
			}
			if query != "" {
				out, err := transformer.Transform(query)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			var src io.Reader = cmd.InOrStdin()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}
			return transformLines(cmd, transformer, src)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "SQL statement to translate")
	cmd.Flags().StringVarP(&file, "file", "f", "", "file with one SQL statement per line")
	return cmd
}

// transformLines translates statements one per line, skipping blanks
// and `--` comment lines. Failures are reported per line and do not
// stop the batch; the command fails if any line failed.
func transformLines(cmd *cobra.Command, transformer *redisql.Transformer, src io.Reader) error {
	var statements []string
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		statements = append(statements, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	failed := 0
	for _, result := range transformer.TransformAll(statements) {
		if result.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", result.Err)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Command)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d statements failed", failed, len(statements))
	}
	return nil
}
