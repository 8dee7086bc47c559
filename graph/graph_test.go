package graph

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_ShortestPaths(t *testing.T) {
	g := NewGraph[string]()
	for _, edge := range []struct {
		from, to string
		weight   float64
	}{
		{"a", "b", 7}, {"a", "c", 9}, {"a", "f", 14},
		{"b", "c", 10}, {"b", "d", 15},
		{"c", "d", 11}, {"c", "f", 2},
		{"d", "e", 6},
		{"f", "e", 9},
	} {
		require.NoError(t, g.AddEdge(edge.from, edge.to, edge.weight))
	}
	g.AddNode("island")

	paths, err := g.ShortestPaths("a")
	require.NoError(t, err)

	for _, tc := range []struct {
		to string

		distance float64
		path     []string
	}{
		{to: "a", distance: 0, path: []string{"a"}},
		{to: "b", distance: 7, path: []string{"a", "b"}},
		{to: "c", distance: 9, path: []string{"a", "c"}},
		{to: "d", distance: 20, path: []string{"a", "c", "d"}},
		{to: "e", distance: 20, path: []string{"a", "c", "f", "e"}},
		{to: "f", distance: 11, path: []string{"a", "c", "f"}},
	} {
		t.Run(tc.to, func(t *testing.T) {
			distance, exists := paths.Distance(tc.to)
			if assert.True(t, exists) {
				assert.Equal(t, tc.distance, distance)
			}
			path, exists := paths.PathTo(tc.to)
			if assert.True(t, exists) {
				assert.Equal(t, tc.path, path)
			}
		})
	}

	_, exists := paths.Distance("island")
	assert.False(t, exists)
	_, exists = paths.PathTo("island")
	assert.False(t, exists)
}

func TestGraph_Errors(t *testing.T) {
	g := NewGraph[int]()

	assert.ErrorIs(t, g.AddEdge(1, 2, -1), ErrNegativeWeight)
	assert.ErrorIs(t, g.AddEdge(1, 2, math.NaN()), ErrNegativeWeight)
	assert.Empty(t, g.Nodes())

	_, err := g.ShortestPaths(1)
	assert.ErrorIs(t, err, ErrUnknownNode)
}

// Bellman-Ford over the same edges as a reference.
func referenceDistances(n int, edges [][3]int, source int) []float64 {
	distance := make([]float64, n)
	for i := range distance {
		distance[i] = math.Inf(1)
	}
	distance[source] = 0
	for range n {
		for _, e := range edges {
			if d := distance[e[0]] + float64(e[2]); d < distance[e[1]] {
				distance[e[1]] = d
			}
		}
	}
	return distance
}

func TestGraph_RandomAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))

	for trial := range 20 {
		n := 20 + trial
		g := NewGraph[int]()
		for node := range n {
			g.AddNode(node)
		}

		var edges [][3]int
		for range n * 4 {
			e := [3]int{rng.IntN(n), rng.IntN(n), rng.IntN(50)}
			edges = append(edges, e)
			require.NoError(t, g.AddEdge(e[0], e[1], float64(e[2])))
		}

		nodes := g.Nodes()
		slices.Sort(nodes)
		require.Len(t, nodes, n)

		paths, err := g.ShortestPaths(0)
		require.NoError(t, err)

		for node, expected := range referenceDistances(n, edges, 0) {
			distance, exists := paths.Distance(node)
			if math.IsInf(expected, 1) {
				assert.False(t, exists, "node %d", node)
				continue
			}
			if assert.True(t, exists, "node %d", node) {
				assert.Equal(t, expected, distance, "node %d", node)
			}
		}
	}
}
