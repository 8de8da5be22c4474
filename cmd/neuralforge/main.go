/*
PURPOSE:
  Entry point for the NeuralForge launcher.
  Runs the root command once and turns its result into the exit status.

REQUIREMENTS:
  User-specified:
  - Must serve as the single binary entry point.
  - On failure, print the error to stderr and exit 1.

  Implementation-discovered:
  - The exit status is computed by run() and applied only here, so tests
    can exercise the whole path without exiting.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()
  - Depends on: internal/cli, internal/forge

ERROR HANDLING:
  - Explicit error check on Execute(); exit code 1 on failure.

IMPLEMENTATION RULES:
  - Critical: Keep main() minimal. All logic belongs in internal/ packages.

USAGE:
  go build -o neuralforge ./cmd/neuralforge
  ./neuralforge [-v] [-i input] [-o output]

RELATED FILES:
  - internal/cli/root.go - The actual root command definition.
*/

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/daryltucker/neuralforge/internal/cli"
	"github.com/daryltucker/neuralforge/internal/forge"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, forge.NewApplication))
}

func run(args []string, stdout, stderr io.Writer, newApp forge.Constructor) int {
	if err := cli.Execute(context.Background(), args, stdout, newApp); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
