package graph

import "fmt"

// Point is a vertex position in plot coordinates.
type Point struct {
	X float64
	Y float64
}

// Layout places every vertex: x spreads stages across the width, y
// spreads labels across the height. The stage count is maxStage+1 and
// must be at least 2 for the horizontal spread to be defined.
func Layout(g *Graph, width, height int) (map[Vertex]Point, error) {
	if len(g.Vertices) == 0 {
		return nil, fmt.Errorf("graph: no vertices")
	}

	maxStage, maxLabel := 0, 0
	for v := range g.Vertices {
		if v.Stage > maxStage {
			maxStage = v.Stage
		}
		if v.Label > maxLabel {
			maxLabel = v.Label
		}
	}

	stages := maxStage + 1
	if stages < 2 {
		return nil, fmt.Errorf("graph: need at least 2 stages, have %d", stages)
	}
	labelSpan := maxLabel
	if labelSpan == 0 {
		labelSpan = 1
	}

	pos := make(map[Vertex]Point, len(g.Vertices))
	for v := range g.Vertices {
		pos[v] = Point{
			X: float64(v.Stage-1) / float64(stages-1) * float64(width),
			Y: float64(v.Label) / float64(labelSpan) * float64(height),
		}
	}
	return pos, nil
}
