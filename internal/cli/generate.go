package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macro-ai/archdiagrams/pkg/config"
	"github.com/macro-ai/archdiagrams/pkg/errors"
	"github.com/macro-ai/archdiagrams/pkg/pipeline"
	"github.com/macro-ai/archdiagrams/pkg/render/nodelink"
)

// generateOpts holds the command-line flags of the generate (root) command.
type generateOpts struct {
	outputDir string   // output directory, created if missing
	format    string   // png (default), svg, jpg, pdf or dot
	only      []string // scene keys to generate; empty means all
	detailed  bool     // append node kinds to labels
}

// generateCommand creates the command that renders diagrams. It becomes the
// root command; flags given explicitly override the config file.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{outputDir: config.DefaultOutputDir}

	cmd := &cobra.Command{
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg, opts)
			return c.runGenerate(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", opts.outputDir, "directory receiving the diagrams")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), svg, jpg, pdf, dot")
	cmd.Flags().StringSliceVar(&opts.only, "only", nil, "generate only these scene keys (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node kinds in labels")
	_ = cmd.RegisterFlagCompletionFunc("only", c.sceneKeys)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"png", "svg", "jpg", "pdf", "dot"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// applyFlags copies explicitly set flags over the config values.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts generateOpts) {
	flags := cmd.Flags()
	if flags.Changed("output-dir") || cfg.OutputDir == "" {
		cfg.OutputDir = opts.outputDir
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("only") {
		cfg.Only = opts.only
	}
	if flags.Changed("detailed") {
		cfg.Detailed = opts.detailed
	}
}

// runGenerate renders the configured scenes and prints the summary.
// It returns an error if the run could not start, was interrupted, or
// left any scene failed.
func (c *CLI) runGenerate(ctx context.Context, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	format, err := nodelink.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	reg, err := registry(cfg)
	if err != nil {
		return err
	}
	selected, err := reg.Select(cfg.Only)
	if err != nil {
		return err
	}
	logger.Debug("configuration", "config", cfg, "scenes", len(selected))

	ui := newPrinter(c.Out)
	ui.info("Starting diagram generation...")

	prog := newProgress(logger)
	report, err := pipeline.NewRunner(ui, logger).Run(ctx, pipeline.Options{
		OutputDir: cfg.OutputDir,
		Scenes:    selected,
		Format:    format,
		Detailed:  cfg.Detailed,
	})
	if err != nil {
		return err
	}
	ui.summary(report)

	if err := ctx.Err(); err != nil {
		return err
	}
	if !report.OK() {
		failed := report.Total() - report.Succeeded()
		ui.newline()
		ui.warning("%d of %d diagrams failed", failed, report.Total())
		return errors.New(errors.ErrCodeRenderFailed, "%d of %d diagrams failed", failed, report.Total())
	}
	prog.done(fmt.Sprintf("Generated %d diagrams", report.Total()))
	return nil
}
