// Package graph reads CSV-described search graphs and renders them as
// stage/label scatter plots.
package graph

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Vertex identifies a graph node by its search stage and its label
// within that stage.
type Vertex struct {
	Stage int
	Label int
}

// Edge is a directed edge between two vertices.
type Edge struct {
	From Vertex
	To   Vertex
}

// Graph holds deduplicated vertices and edges.
type Graph struct {
	Vertices map[Vertex]struct{}
	Edges    map[Edge]struct{}
}

// ParseCSV reads graph data. Rows with 2 integer columns add a vertex
// (stage, label); rows with 4 columns add an edge (stage1, label1,
// stage2, label2) plus both endpoint vertices. Duplicates collapse.
func ParseCSV(r io.Reader) (*Graph, error) {
	g := &Graph{
		Vertices: make(map[Vertex]struct{}),
		Edges:    make(map[Edge]struct{}),
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("graph: row %d: %w", line, err)
		}

		vals := make([]int, len(rec))
		for i, field := range rec {
			vals[i], err = strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("graph: row %d, column %d: %q is not an integer", line, i+1, field)
			}
		}

		switch len(vals) {
		case 2:
			g.Vertices[Vertex{vals[0], vals[1]}] = struct{}{}
		case 4:
			from := Vertex{vals[0], vals[1]}
			to := Vertex{vals[2], vals[3]}
			g.Vertices[from] = struct{}{}
			g.Vertices[to] = struct{}{}
			g.Edges[Edge{from, to}] = struct{}{}
		default:
			return nil, fmt.Errorf("graph: row %d: want 2 or 4 columns, got %d", line, len(vals))
		}
	}
	return g, nil
}
