package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/covplan/bcd/geom"
)

// scenePoint is the JSON-friendly mirror of geom.Point.
type scenePoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p scenePoint) toPoint() geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

// scene is the on-disk description of a workspace: its size, the robot's
// start pose, and the obstacle polygons to decompose around. Obstacles
// are written as corner-vertex lists; how those vertices were acquired
// (image contours, hand-authored, generated) is the caller's concern.
type scene struct {
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Start     scenePoint     `json:"start"`
	StartCell int            `json:"start_cell"`
	Radius    int            `json:"radius"`
	Obstacles [][]scenePoint `json:"obstacles"`
}

func loadScene(path string) (scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scene{}, fmt.Errorf("reading scene file: %w", err)
	}

	var s scene
	if err := json.Unmarshal(data, &s); err != nil {
		return scene{}, fmt.Errorf("parsing scene file: %w", err)
	}

	return s, nil
}

// polygons converts the scene's obstacle vertex lists into the
// per-column contours the planner sweeps over.
func (s scene) polygons() []geom.Polygon {
	polys := make([]geom.Polygon, 0, len(s.Obstacles))
	for _, obstacle := range s.Obstacles {
		poly := make(geom.Polygon, 0, len(obstacle))
		for _, p := range obstacle {
			poly = append(poly, p.toPoint())
		}
		polys = append(polys, poly.Trace())
	}

	return polys
}
