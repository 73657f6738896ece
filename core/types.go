// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Incidence, Graph, options, sentinel errors and NewGraph.

package core

import (
	"errors"
	"strconv"
	"sync"

	"github.com/paulmach/orb"
	"github.com/tidwall/btree"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateNode indicates AddNode was called with an id already in the graph.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrUnknownNode indicates an operation referenced a node that does not exist.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrUnknownEdge indicates an operation referenced an edge that does not exist.
	ErrUnknownEdge = errors.New("core: unknown edge")

	// ErrInvalidAttribute indicates a coordinate, length or elevation outside its domain.
	ErrInvalidAttribute = errors.New("core: invalid attribute")

	// ErrEmptyGraph indicates a query that needs at least one node ran on an empty graph.
	ErrEmptyGraph = errors.New("core: graph has no nodes")
)

// NodeID identifies a node within one Graph.
type NodeID int64

// EdgeID identifies an edge within one Graph. Ids are dense and follow
// insertion order, so they double as indexes into per-request cost tables.
type EdgeID int

// String renders the id as "e<n>" for logs.
func (id EdgeID) String() string { return "e" + strconv.Itoa(int(id)) }

// Node is an intersection or shape point of the street network.
type Node struct {
	ID  NodeID
	Lat float64
	Lon float64

	elevation    float64
	hasElevation bool
}

// Elevation returns the node elevation in metres and whether it is known.
func (n Node) Elevation() (float64, bool) { return n.elevation, n.hasElevation }

// Point returns the node position as an orb.Point (lon, lat).
func (n Node) Point() orb.Point { return orb.Point{n.Lon, n.Lat} }

// Edge is a street segment between two nodes.
//
// Edge values handed out by the Graph are copies; mutating them has no effect
// on the graph.
type Edge struct {
	ID       EdgeID
	From     NodeID
	To       NodeID
	Length   float64 // metres, ≥ 0
	Class    Classification
	Lit      Lit
	Directed bool // one-way when true
}

// Incidence is one traversable direction of an edge as seen from a node.
// To is the node reached by following Edge away from the queried node.
type Incidence struct {
	Edge Edge
	To   NodeID
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for new edges
// (true = one-way, false = walkable both ways).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the graph default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// latKey orders nodes by latitude for the nearest-node index.
type latKey struct {
	lat float64
	id  NodeID
	lon float64
}

func latKeyLess(a, b latKey) bool {
	if a.lat != b.lat {
		return a.lat < b.lat
	}

	return a.id < b.id
}

// Graph is the street network of one requested area.
//
// muNode protects nodes and the latitude index; muEdge protects edges and
// adjacency. Edge ids are positions in the edges slice.
type Graph struct {
	muNode sync.RWMutex // guards nodes, index
	muEdge sync.RWMutex // guards edges, adjacency

	directed bool // default directedness of new edges

	nodes map[NodeID]*Node
	index *btree.BTreeG[latKey]

	edges []Edge
	// adjacency[u] lists traversable incidences leaving u, in edge insertion order.
	adjacency map[NodeID][]Incidence
}

// NewGraph creates an empty Graph. By default edges are undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[NodeID]*Node),
		index:     btree.NewBTreeGOptions(latKeyLess, btree.Options{NoLocks: true}),
		adjacency: make(map[NodeID][]Incidence),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the default directedness applied to new edges.
func (g *Graph) Directed() bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.directed
}
