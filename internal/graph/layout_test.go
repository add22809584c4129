package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vertexSet(vs ...Vertex) map[Vertex]struct{} {
	set := make(map[Vertex]struct{}, len(vs))
	for _, v := range vs {
		set[v] = struct{}{}
	}
	return set
}

func TestLayoutPositions(t *testing.T) {
	g := &Graph{Vertices: vertexSet(
		Vertex{1, 0},
		Vertex{2, 5},
		Vertex{3, 10},
	)}

	pos, err := Layout(g, 2000, 1000)
	require.NoError(t, err)

	// stages = 4, so stage 1 sits at x=0 and stage 3 at 2/3 width.
	assert.Equal(t, Point{0, 0}, pos[Vertex{1, 0}])
	assert.InDelta(t, 2000.0/3, pos[Vertex{2, 5}].X, 1e-9)
	assert.InDelta(t, 500, pos[Vertex{2, 5}].Y, 1e-9)
	assert.InDelta(t, 4000.0/3, pos[Vertex{3, 10}].X, 1e-9)
	assert.InDelta(t, 1000, pos[Vertex{3, 10}].Y, 1e-9)
}

func TestLayoutNeedsTwoStages(t *testing.T) {
	g := &Graph{Vertices: vertexSet(Vertex{0, 0}, Vertex{0, 7})}
	_, err := Layout(g, 2000, 1000)
	assert.Error(t, err)
}

func TestLayoutEmptyGraph(t *testing.T) {
	g := &Graph{Vertices: vertexSet()}
	_, err := Layout(g, 2000, 1000)
	assert.Error(t, err)
}

func TestLayoutSingleRow(t *testing.T) {
	// All labels zero: everything lies on y=0 instead of dividing by zero.
	g := &Graph{Vertices: vertexSet(Vertex{1, 0}, Vertex{2, 0})}
	pos, err := Layout(g, 2000, 1000)
	require.NoError(t, err)
	for v, p := range pos {
		assert.Zero(t, p.Y, "vertex %v", v)
	}
}
