// Package main provides the chakrascan CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "chakrascan",
		Short: "Personality and chakra self-assessment reports",
		Long: `Chakrascan scores Big Five style forced-choice items and Likert chakra
prompts, classifies the results into bands and statuses, and renders a
multi-page report with remedies and crystal associations.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newScanCmd(),
		newItemsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
