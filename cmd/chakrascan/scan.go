package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/internal/intake"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/config"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/inventory"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/render"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/report"
	"github.com/Ash2Zap/Personality-and-Chakra-Scanning/pkg/scoring"
)

func newScanCmd() *cobra.Command {
	var (
		responsesPath string
		itemsPath     string
		logoPath      string
		outputPath    string
		outputFmt     string
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Score a completed questionnaire and render the report",
		Long:  `Reads a responses file, scores personality traits and chakras, and writes the report as PDF, text or JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(scanOpts{
				responsesPath: responsesPath,
				itemsPath:     itemsPath,
				logoPath:      logoPath,
				outputPath:    outputPath,
				outputFmt:     outputFmt,
			})
		},
	}

	cmd.Flags().StringVar(&responsesPath, "responses", "", "Path to the responses YAML file (required)")
	cmd.Flags().StringVar(&itemsPath, "items", "", "Inventory YAML override (default: built-in item sets)")
	cmd.Flags().StringVar(&logoPath, "logo", "", "PNG or JPEG logo for the report cover")
	cmd.Flags().StringVar(&outputPath, "output", "", "Output path (default from config, - for stdout)")
	cmd.Flags().StringVar(&outputFmt, "format", "", "Output format: pdf, text or json")
	_ = cmd.MarkFlagRequired("responses")

	return cmd
}

type scanOpts struct {
	responsesPath string
	itemsPath     string
	logoPath      string
	outputPath    string
	outputFmt     string
}

func runScan(opts scanOpts) error {
	cfg := loadConfig()

	inv, err := resolveInventory(firstNonEmpty(opts.itemsPath, cfg.Report.ItemsFile))
	if err != nil {
		return err
	}

	doc, err := intake.Load(opts.responsesPath)
	if err != nil {
		return err
	}
	bound, err := doc.Bind(inv)
	if err != nil {
		return err
	}

	traits, err := scoring.ScorePersonality(bound.Personality)
	if err != nil {
		return err
	}
	chakras, err := scoring.ScoreChakras(bound.Chakras)
	if err != nil {
		return err
	}

	var logo []byte
	if logoPath := firstNonEmpty(opts.logoPath, cfg.Report.LogoFile); logoPath != "" {
		logo, err = os.ReadFile(logoPath)
		if err != nil {
			return fmt.Errorf("reading logo: %w", err)
		}
	}

	rep := report.Assemble(traits, chakras, bound.Meta, logo)

	format := firstNonEmpty(opts.outputFmt, cfg.Report.Format)
	renderer, err := render.ForFormat(format)
	if err != nil {
		return err
	}

	outPath := firstNonEmpty(opts.outputPath, defaultOutput(format, cfg))
	if outPath == "-" {
		return renderer.Render(os.Stdout, rep)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := renderer.Render(f, rep); err != nil {
		f.Close()
		os.Remove(outPath) // no partial artifacts
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Report %s written to %s\n", rep.ID, outPath)
	return nil
}

// defaultOutput picks the output target for a format: text goes to stdout,
// documents go to the configured file name.
func defaultOutput(format string, cfg *config.Config) string {
	if format == "text" {
		return "-"
	}
	return cfg.Report.Output
}

func resolveInventory(path string) (*inventory.Inventory, error) {
	if path == "" {
		return inventory.Default(), nil
	}
	return inventory.Load(path)
}

func loadConfig() *config.Config {
	wd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig()
	}
	path := config.FindConfigFile(wd)
	if path == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config %s: %v\n", path, err)
		return config.DefaultConfig()
	}
	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
