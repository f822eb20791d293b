package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/centra/graphfile"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a graph document and list every problem found",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			doc, err := graphfile.Load(path)
			if err != nil {
				return err
			}

			problems := graphfile.Problems(graphfile.Validate(doc))
			if len(problems) > 0 {
				for _, p := range problems {
					fmt.Fprintf(cmd.ErrOrStderr(), "✗ %v\n", p)
				}
				return fmt.Errorf("%s: validation failed with %d error(s)", path, len(problems))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d nodes, %d edges\n", path, len(doc.Nodes), len(doc.Edges))
			return nil
		},
	}
}
