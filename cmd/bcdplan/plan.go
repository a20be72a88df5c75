package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/covplan/bcd/planner"
)

func newPlanCmd() *cobra.Command {
	var (
		progress   bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "plan <scene.json>",
		Short: "Compute a complete-coverage trajectory for a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, args[0], progress, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&progress, "progress", false, "show a spinner while the planner runs")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the trajectory as JSON instead of a text summary")

	return cmd
}

func runPlan(cmd *cobra.Command, path string, progress, jsonOutput bool) error {
	logger := loggerFromContext(cmd.Context())

	s, err := loadScene(path)
	if err != nil {
		return err
	}
	logger.Debug("scene loaded", "width", s.Width, "height", s.Height, "obstacles", len(s.Obstacles))

	var sp *spinner.Spinner
	if progress {
		sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		sp.Suffix = " decomposing workspace and planning coverage..."
		_ = sp.Color("cyan", "bold")
		sp.Start()
	}

	cfg := planner.NewConfig(s.Width, s.Height, s.Start.toPoint(), s.StartCell, s.Radius, planner.WithLogger(logger))
	result, err := planner.Plan(cfg, s.polygons())

	if sp != nil {
		sp.Stop()
	}

	if err != nil {
		return fmt.Errorf("%s", color.RedString(err.Error()))
	}

	for _, w := range result.Warnings {
		fmt.Println(color.YellowString("warning: cell %d: %s", w.CellIdx, w.Message))
	}

	if jsonOutput {
		return printTrajectoryJSON(result)
	}
	printTrajectorySummary(result)
	return nil
}

func printTrajectoryJSON(result planner.Result) error {
	points := make([]scenePoint, len(result.Trajectory))
	for i, p := range result.Trajectory {
		points[i] = scenePoint{X: p.X, Y: p.Y}
	}
	encoded, err := json.MarshalIndent(points, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding trajectory: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

func printTrajectorySummary(result planner.Result) {
	fmt.Printf("trajectory: %d points across %d cells\n", len(result.Trajectory), len(result.Graph.Cells))
	fmt.Printf("cleaning order: %v\n", result.CleaningOrder)
}
