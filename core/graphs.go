package core

import (
	"errors"
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/dominikbraun/graph"
)

var tieIds atomic.Int64

func nextTieId() int {
	return int(tieIds.Add(1))
}

func tieHash(t *Tie) int {
	return t.Id()
}

// The EliminationGraph is the tree of a bracket. Every tie is a
// vertex with a single outgoing edge to the tie that its winner
// advances to. The final has no outgoing edge.
type EliminationGraph struct {
	tree graph.Graph[int, *Tie]

	// Cached adjacency map, reset when an edge is added
	advances map[int]map[int]graph.Edge[int]
}

func NewEliminationGraph() *EliminationGraph {
	return &EliminationGraph{
		tree: graph.New(tieHash, graph.Directed(), graph.Acyclic()),
	}
}

// Adds the tie to the tree. Adding a tie twice has no effect.
func (e *EliminationGraph) addTie(t *Tie) {
	err := e.tree.AddVertex(t)
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		panic(fmt.Sprintf("could not add tie %v: %v", t.Id(), err))
	}
}

// Makes the winner of from advance to to
func (e *EliminationGraph) link(from, to *Tie) {
	e.addTie(from)
	e.addTie(to)
	if err := e.tree.AddEdge(from.Id(), to.Id()); err != nil {
		panic(fmt.Sprintf("could not link tie %v to %v: %v", from.Id(), to.Id(), err))
	}
	e.advances = nil
}

// Returns the tie that the winner of t plays next or nil when
// t is the final or not part of the tree.
func (e *EliminationGraph) Next(t *Tie) *Tie {
	if e.advances == nil {
		e.advances, _ = e.tree.AdjacencyMap()
	}
	for id := range e.advances[t.Id()] {
		next, _ := e.tree.Vertex(id)
		return next
	}
	return nil
}

// Yields the ties on the way from start to the final together
// with the number of rounds between them and start.
func (e *EliminationGraph) Walk(start *Tie) iter.Seq2[*Tie, int] {
	return func(yield func(*Tie, int) bool) {
		graph.BFSWithDepth(e.tree, start.Id(), func(id, depth int) bool {
			tie, _ := e.tree.Vertex(id)
			// The search counts the start as depth 1
			return !yield(tie, depth-1)
		})
	}
}
