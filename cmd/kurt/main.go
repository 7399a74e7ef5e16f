// Kurt acquires content from the web, filesystems, and CMS platforms, and
// distills it into a queryable knowledge base of entities and claims.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Exit codes reported to the shell.
const (
	exitOK       = 0
	exitStepFail = 1
	exitCanceled = 2
	exitInternal = 3
)

// exitError carries a specific exit code out of a command's RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit code %d", e.code)
}

var configPath string

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Debug("Loaded environment from .env")
	}

	root := &cobra.Command{
		Use:           "kurt",
		Short:         "Content acquisition and knowledge extraction",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", envOr("KURT_CONFIG", "kurt.toml"), "Path to kurt.toml")

	root.AddCommand(
		newServeCmd(),
		newMapCmd(),
		newFetchCmd(),
		newResearchCmd(),
		newWorkflowCmd(),
	)

	if err := root.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.err != nil {
				fmt.Fprintln(os.Stderr, "Error:", ee.err)
			}
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitInternal)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
