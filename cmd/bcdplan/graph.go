package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/spf13/cobra"

	"github.com/covplan/bcd/cellgraph"
)

func newGraphCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "graph <scene.json>",
		Short: "Render a scene's decomposed cell adjacency graph as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "cells.svg", "output SVG path")

	return cmd
}

func runGraph(ctx context.Context, path, output string) error {
	logger := loggerFromContext(ctx)

	s, err := loadScene(path)
	if err != nil {
		return err
	}

	g, err := cellgraph.Decompose(s.Width, s.Height, s.polygons())
	if err != nil {
		return fmt.Errorf("decomposing scene: %w", err)
	}
	logger.Debug("decomposed free space", "cells", len(g.Cells))

	svg, err := renderAdjacencySVG(ctx, g)
	if err != nil {
		return fmt.Errorf("rendering graph: %w", err)
	}

	if err := os.WriteFile(output, svg, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	logger.Info("rendered cell adjacency graph", "path", output)

	return nil
}

// renderAdjacencySVG builds a DOT graph with one node per cell and one
// edge per adjacency pair, rendered to SVG. Each cell is labeled with its
// index and column count so a degenerate cell (too narrow to cover) is
// visible at a glance.
func renderAdjacencySVG(ctx context.Context, g *cellgraph.Graph) ([]byte, error) {
	gv := graphviz.New()
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return nil, err
	}
	defer graph.Close()

	nodes := make([]*cgraph.Node, len(g.Cells))
	for _, cell := range g.Cells {
		node, err := graph.CreateNode(fmt.Sprintf("cell%d", cell.Index))
		if err != nil {
			return nil, err
		}
		node.SetLabel(fmt.Sprintf("cell %d (%d cols)", cell.Index, len(cell.Ceiling)))
		nodes[cell.Index] = node
	}

	seen := make(map[[2]int]bool)
	for _, cell := range g.Cells {
		for _, neighborIdx := range cell.Neighbors {
			key := [2]int{cell.Index, neighborIdx}
			reverseKey := [2]int{neighborIdx, cell.Index}
			if seen[key] || seen[reverseKey] {
				continue
			}
			seen[key] = true

			edgeName := fmt.Sprintf("cell%d-cell%d", cell.Index, neighborIdx)
			if _, err := graph.CreateEdge(edgeName, nodes[cell.Index], nodes[neighborIdx]); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(graph, graphviz.SVG, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
