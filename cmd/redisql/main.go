package main

import (
	"fmt"
	"os"

	"github.com/redisql-engine/redisql/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "redisql: %v\n", err)
		os.Exit(1)
	}
}
