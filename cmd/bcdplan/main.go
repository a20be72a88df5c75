// Command bcdplan drives the coverage planner from the command line: it
// loads a workspace/obstacle scene from JSON, runs the decomposition and
// linking pipeline, and either prints the resulting trajectory or
// renders the cell adjacency graph. This is driver glue around the
// planner library, not core algorithmic logic.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "bcdplan",
		Short:        "Boustrophedon cellular decomposition coverage planner",
		Long:         `bcdplan decomposes a polygonal workspace into monotone cells, schedules a depth-first visiting order, and stitches together a complete-coverage trajectory.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newPlanCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bcdplan version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("bcdplan %s (%s)\n", version, commit)
			return nil
		},
	}
}
