package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macro-ai/archdiagrams/pkg/render/nodelink"
)

// dotCommand creates the command printing the Graphviz source of one scene.
func (c *CLI) dotCommand() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "dot <scene>",
		Short: "Print the Graphviz DOT source of a diagram",
		Long: `Print the DOT source that would be handed to Graphviz for one scene.
Useful for debugging layouts or piping into other Graphviz tools:

  archdiagrams dot future-scaling | dot -Tsvg > future.svg`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.sceneKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDOT(args[0], detailed)
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "show node kinds in labels")
	return cmd
}

func (c *CLI) runDOT(key string, detailed bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	reg, err := registry(cfg)
	if err != nil {
		return err
	}
	selected, err := reg.Select([]string{key})
	if err != nil {
		return err
	}

	d, err := selected[0].Build()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(c.Out, nodelink.ToDOT(d, nodelink.Options{Detailed: detailed || cfg.Detailed}))
	return err
}
