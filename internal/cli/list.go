package cli

import (
	"github.com/spf13/cobra"

	"github.com/macro-ai/archdiagrams/pkg/errors"
	"github.com/macro-ai/archdiagrams/pkg/render/nodelink"
)

// listCommand creates the command printing every registered scene.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the diagrams that can be generated",
		Long: `List every registered scene in generation order: its key (for --only and
dot), display name, diagram title and output file name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList()
		},
	}
}

func (c *CLI) runList() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	format, err := nodelink.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	reg, err := registry(cfg)
	if err != nil {
		return err
	}

	ui := newPrinter(c.Out)
	for i, s := range reg.All() {
		if i > 0 {
			ui.newline()
		}
		ui.keyValue(StyleHighlight.Render(s.Key), s.Name)

		d, err := s.Build()
		if err != nil {
			ui.failure("%s", errors.UserMessage(err))
			continue
		}
		ui.detail("%s", d.Title)
		ui.detail("%s %s", iconArrow, d.Filename(format.Ext()))
	}
	return nil
}
