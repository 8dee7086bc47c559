// Package graph computes single-source shortest paths over directed graphs with
// non-negative edge weights.
package graph

import (
	"math"
	"slices"

	"github.com/navijation/njheap/util/heap"
	"github.com/pkg/errors"
)

var (
	ErrNegativeWeight = errors.New("edge weight must be a non-negative number")
	ErrUnknownNode    = errors.New("unknown node")
)

type Edge[N comparable] struct {
	To     N
	Weight float64
}

type Graph[N comparable] struct {
	edges map[N][]Edge[N]
}

func NewGraph[N comparable]() *Graph[N] {
	return &Graph[N]{edges: make(map[N][]Edge[N])}
}

func (me *Graph[N]) AddNode(node N) {
	if _, exists := me.edges[node]; !exists {
		me.edges[node] = nil
	}
}

func (me *Graph[N]) AddEdge(from, to N, weight float64) error {
	if weight < 0 || math.IsNaN(weight) {
		return errors.Wrapf(ErrNegativeWeight, "edge %v -> %v has weight %v", from, to, weight)
	}
	me.AddNode(to)
	me.edges[from] = append(me.edges[from], Edge[N]{To: to, Weight: weight})
	return nil
}

func (me *Graph[N]) Nodes() []N {
	out := make([]N, 0, len(me.edges))
	for node := range me.edges {
		out = append(out, node)
	}
	return out
}

type tentative[N comparable] struct {
	node     N
	distance float64
}

type Paths[N comparable] struct {
	source   N
	distance map[N]float64
	previous map[N]N
}

// ShortestPaths runs Dijkstra's algorithm from source. Reached nodes keep a
// single queue entry whose distance is lowered in place.
func (me *Graph[N]) ShortestPaths(source N) (out Paths[N], _ error) {
	if _, exists := me.edges[source]; !exists {
		return out, errors.Wrapf(ErrUnknownNode, "source %v", source)
	}

	out = Paths[N]{
		source:   source,
		distance: map[N]float64{},
		previous: map[N]N{},
	}

	frontier := heap.NewKeyed(heap.Args[tentative[N], N, float64]{
		Identity: func(t tentative[N]) N { return t.node },
		Priority: func(t tentative[N]) float64 { return t.distance },
	})
	frontier.Add(tentative[N]{node: source})

	for {
		current, exists := frontier.Poll()
		if !exists {
			return out, nil
		}
		out.distance[current.node] = current.distance

		for _, edge := range me.edges[current.node] {
			if _, settled := out.distance[edge.To]; settled {
				continue
			}

			candidate := tentative[N]{node: edge.To, distance: current.distance + edge.Weight}
			known, err := frontier.GetElement(edge.To)
			switch {
			case err != nil:
				frontier.Add(candidate)
			case candidate.distance < known:
				if _, err := frontier.UpdateElement(edge.To, candidate); err != nil {
					return out, err
				}
			default:
				continue
			}
			out.previous[edge.To] = current.node
		}
	}
}

func (me Paths[N]) Distance(to N) (float64, bool) {
	distance, exists := me.distance[to]
	return distance, exists
}

// PathTo returns the nodes on a shortest path from the source to to, both ends
// included.
func (me Paths[N]) PathTo(to N) ([]N, bool) {
	if _, exists := me.distance[to]; !exists {
		return nil, false
	}

	out := []N{to}
	for to != me.source {
		to = me.previous[to]
		out = append(out, to)
	}

	slices.Reverse(out)
	return out, true
}
