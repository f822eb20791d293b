package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/centra/builder"
	"github.com/katalvlaran/centra/core"
	"github.com/katalvlaran/centra/graphfile"
	"github.com/katalvlaran/centra/internal/config"
)

func (a *app) sampleCmd() *cobra.Command {
	var (
		n        int
		directed bool
		letters  bool
		name     string
	)
	cmd := &cobra.Command{
		Use:   "sample <" + strings.Join(builder.Topologies(), "|") + ">",
		Short: "Print a generated topology as a graph document",
		Long: "Sample writes a well-known topology as a graph document so it can be edited " +
			"or fed back into compute. Table format falls back to TOML.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cons, err := builder.ByName(args[0], n)
			if err != nil {
				return err
			}
			var bopts []builder.BuilderOption
			if letters {
				bopts = append(bopts, builder.WithLetterIDs())
			}
			g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(directed)}, bopts, cons)
			if err != nil {
				return err
			}

			format := a.cfg.Format
			if format == config.FormatTable {
				format = config.FormatTOML
			}
			f, err := graphfile.ParseFormat(format)
			if err != nil {
				return err
			}
			if name == "" {
				name = fmt.Sprintf("%s-%d", args[0], n)
			}
			data, err := graphfile.Encode(graphfile.FromGraph(name, g), f)
			if err != nil {
				return err
			}
			a.log.Debug("sample generated",
				zap.String("topology", args[0]),
				zap.Int("nodes", g.VertexCount()),
				zap.Int("edges", g.EdgeCount()),
			)
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().IntVarP(&n, "nodes", "n", 5, "number of nodes")
	cmd.Flags().BoolVar(&directed, "directed", false, "emit a directed graph")
	cmd.Flags().BoolVar(&letters, "letters", false, "name nodes A, B, C, ... instead of 0, 1, 2, ...")
	cmd.Flags().StringVar(&name, "name", "", "document name (default <topology>-<n>)")
	return cmd
}
