// Package main provides the agent-run CLI.
package main

import (
	"os"
)

// main is the program entry point.
func main() {
	root := newRootCmd(cliEnv{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	})
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
