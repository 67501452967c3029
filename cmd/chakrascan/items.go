package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/internal/intake"
)

func newItemsCmd() *cobra.Command {
	var (
		itemsPath string
		template  bool
	)

	cmd := &cobra.Command{
		Use:   "items",
		Short: "Print the configured item sets",
		Long:  `Prints the personality items and chakra prompts as YAML. With --template, prints a fillable responses file instead, preset to the scale midpoint.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := resolveInventory(itemsPath)
			if err != nil {
				return err
			}

			var out any = inv
			if template {
				out = intake.Template(inv)
			}

			data, err := yaml.Marshal(out)
			if err != nil {
				return fmt.Errorf("encoding items: %w", err)
			}
			_, err = os.Stdout.Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&itemsPath, "items", "", "Inventory YAML override (default: built-in item sets)")
	cmd.Flags().BoolVar(&template, "template", false, "Print a fillable responses template")

	return cmd
}
