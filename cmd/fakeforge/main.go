// Package main provides the fakeforge CLI: run YAML scenario files over
// the demo domain and inspect the selector registry.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "fakeforge",
	Short: "fakeforge - fake object generator",
	Long: `fakeforge populates fake objects: every writable field is filled from a
priority-ordered selector registry, nested objects and collections are
constructed recursively, and a seed makes whole runs reproducible.

Available commands:
  generate  - Run a YAML scenario file and emit the generated objects
  selectors - List registered selectors and scenario generators
  init      - Write a starter scenario file

Examples:
  fakeforge init -o scenario.yaml
  fakeforge generate -f scenario.yaml --seed 42
  fakeforge generate -f scenario.yaml -o out.json
  fakeforge selectors`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Emit population traces")
	rootCmd.AddCommand(generateCmd, selectorsCmd, initCmd)
}

// newLogger builds the CLI logger: population traces under -v, silence
// otherwise.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
		return zap.NewNop()
	}

	return log
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
