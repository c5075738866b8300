package main

import (
	"fmt"
	"os"

	"github.com/baditaflorin/go_palindrome/internal/adapters/cli"
	"github.com/baditaflorin/go_palindrome/internal/adapters/logger"
	"github.com/baditaflorin/l"
)

func main() {
	// Diagnostics go to stderr; stdout carries only the prompt and the verdict.
	log, err := l.NewStandardFactory().CreateLogger(logger.DefaultConfig(os.Stderr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}

	err = cli.NewRootCommand(log).Execute()
	_ = log.Close()
	if err != nil {
		os.Exit(1)
	}
}
