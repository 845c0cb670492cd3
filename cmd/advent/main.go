// Command advent tests and solves Advent of Code style exercises.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/advent/internal/cli"

	// Exercise packages register their parts from init.
	_ "github.com/roach88/advent/internal/solutions/y2025"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
