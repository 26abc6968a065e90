package main

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		printErr(stderr, err)
		return 1
	}
	return 0
}

func printErr(stderr io.Writer, err error) {
	color.New(color.FgRed).Fprintf(stderr, "Error: %v\n", err)
}
