package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/hayeah/tree"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(argv []string, stdout, stderr io.Writer) int {
	args, parser, err := tree.ParseArgs(argv)
	switch {
	case errors.Is(err, arg.ErrHelp):
		parser.WriteHelp(stdout)
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "tree: %v\n", err)
		if parser != nil {
			parser.WriteUsage(stderr)
		}
		return 1
	}

	app, err := tree.InitTreeCLI(args, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "tree: %v\n", err)
		return 1
	}

	if err := app.Run(); err != nil {
		fmt.Fprintf(stderr, "tree: %v\n", err)
		return 1
	}
	return 0
}
