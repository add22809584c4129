package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"1,0,2,1",
		"1,0",
		"2,3",
		"1,0,2,1", // duplicate edge
		"2,1,3,0",
	}, "\n")

	g, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Len(t, g.Edges, 2)
	// Endpoints of both edges plus the standalone (2,3) vertex; (1,0)
	// and (2,1) collapse with the edge endpoints.
	assert.Len(t, g.Vertices, 5)
	assert.Contains(t, g.Vertices, Vertex{2, 3})
	assert.Contains(t, g.Edges, Edge{Vertex{1, 0}, Vertex{2, 1}})
	assert.Contains(t, g.Edges, Edge{Vertex{2, 1}, Vertex{3, 0}})
}

func TestParseCSVRejectsBadRows(t *testing.T) {
	cases := map[string]string{
		"three columns": "1,2,3",
		"not a number":  "1,x",
		"five columns":  "1,2,3,4,5",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestParseCSVEmpty(t *testing.T) {
	g, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, g.Vertices)
	assert.Empty(t, g.Edges)
}
