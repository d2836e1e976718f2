package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/albertocavalcante/go-solvexplain"
	"github.com/albertocavalcante/go-solvexplain/graph"
	"github.com/albertocavalcante/go-solvexplain/loader"
	"github.com/albertocavalcante/go-solvexplain/problems"
	"github.com/spf13/cobra"
)

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explain FILE...",
		Short: "Print the explanation for one or more problem documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, path := range args {
				text, err := solvexplain.ExplainFile(path, solvexplain.WithLogger(a.logger))
				if err != nil {
					return err
				}
				if len(args) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "==> %s <==\n", path)
				}
				fmt.Fprint(out, text)
			}
			return nil
		},
	}
}

func newRootsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "roots FILE",
		Short: "List the requested packages, the nodes nothing depends on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, id := range g.Roots() {
				node, err := g.Node(id)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d\t%s\n", id, node)
			}
			return nil
		},
	}
}

func newPathsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paths FILE",
		Short: "Print every root-to-leaf path, grouped by the root's child",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			paths, err := g.ParentsToLeaves()
			if err != nil {
				return err
			}
			return writePaths(cmd.OutOrStdout(), g, paths)
		},
	}
}

func writePaths(w io.Writer, g *problems.Graph, paths graph.NodePath[problems.GroupEdgeInfo]) error {
	for _, child := range paths.Keys() {
		node, err := g.Node(child)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d %s\n", child, node)
		for _, edge := range paths[child] {
			leaf, err := g.Node(edge.To)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  -> %d %s via %s\n", edge.To, leaf, edge.Info)
		}
	}
	return nil
}

func newGraphCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Render the problems graph as an indented tree or Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Graph
			}
			g, _, err := a.load(args[0])
			if err != nil {
				return err
			}

			switch strings.ToLower(format) {
			case "dot":
				fmt.Fprint(cmd.OutOrStdout(), g.ToDOT(problems.GroupNode.String))
			case "text":
				fmt.Fprint(cmd.OutOrStdout(), g.ToText(problems.GroupNode.String))
			default:
				return fmt.Errorf("unknown graph format %q, want text or dot", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, dot")
	return cmd
}

func (a *app) load(path string) (*problems.Graph, problems.Conflicts, error) {
	doc, err := loader.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	g, conflicts, err := doc.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("loaded problems graph", "path", path, "nodes", g.Len(), "roots", len(g.Roots()))
	return g, conflicts, nil
}
