package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fakeforge/internal/scenario"
)

var initOut string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter scenario file",
	Long: `Init writes a small scenario covering the demo domain: a customer block
and an order block with a field override. Edit it and run it with
fakeforge generate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit()
	},
}

func init() {
	initCmd.Flags().StringVarP(&initOut, "out", "o", "scenario.yaml", "Path for the starter scenario")
}

func runInit() error {
	cfg := &scenario.Config{
		Version: "1",
		Seed:    42,
		Generate: []scenario.Block{
			{Type: "store.Customer", Count: 3},
			{Type: "store.Order", Count: 5, Fields: map[string]string{"Note": "sentence"}},
		},
	}

	if err := scenario.WriteFile(cfg, initOut); err != nil {
		return err
	}

	fmt.Printf("Wrote starter scenario to %s\n", initOut)

	return nil
}
