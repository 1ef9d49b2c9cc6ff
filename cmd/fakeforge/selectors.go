package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"fakeforge/filler"
	"fakeforge/internal/scenario"
	"fakeforge/store"
)

var selectorsCmd = &cobra.Command{
	Use:   "selectors",
	Short: "List registered selectors and scenario generators",
	Long: `Selectors prints the registry as the generate command sees it: every
target type with its selector priorities, plus the generator names a
scenario file can bind to fields.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSelectors()
	},
}

func runSelectors() error {
	f := filler.New(filler.WithLogger(newLogger()))
	f.Register(store.Selectors(f.Source())...)

	fmt.Println("Registered selectors:")
	for _, info := range f.Selectors() {
		fmt.Printf("  %-16s %d selector(s), priorities %s\n",
			info.Type, info.Count, joinInts(info.Priorities))
	}

	fmt.Println()
	fmt.Println("Scenario field generators:")
	for _, name := range scenario.Generators() {
		fmt.Printf("  %s\n", name)
	}

	return nil
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}

	return strings.Join(parts, ", ")
}
