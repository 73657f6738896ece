// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for serenipy/core.
//
// Purpose:
//   - Provide small, deterministic street fixtures.
//   - Keep coordinates and lengths as named constants (no magic numbers in test bodies).

package core_test

import (
	"testing"

	"github.com/katalvlaran/serenipy/core"
	"github.com/stretchr/testify/require"
)

// Common node ids used across core tests.
const (
	NodeA core.NodeID = 1
	NodeB core.NodeID = 2
	NodeC core.NodeID = 3
	NodeD core.NodeID = 4
	NodeX core.NodeID = 99
)

// Reference coordinates: a small square near Montmartre, ~100 m per side.
const (
	LatSouth = 48.8860
	LatNorth = 48.8869
	LonWest  = 2.3400
	LonEast  = 2.3414

	Len100 = 100.0
)

// NewSquare RETURNS the four-node square A(SW) B(NW) C(NE) D(SE) with edges
// A–B, B–C, C–D, D–A, each 100 m.
func NewSquare(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	require.NoError(t, g.AddNode(NodeA, LatSouth, LonWest))
	require.NoError(t, g.AddNode(NodeB, LatNorth, LonWest))
	require.NoError(t, g.AddNode(NodeC, LatNorth, LonEast))
	require.NoError(t, g.AddNode(NodeD, LatSouth, LonEast))

	MustAddEdge(t, g, NodeA, NodeB, Len100, core.ClassPrimary, core.LitYes)
	MustAddEdge(t, g, NodeB, NodeC, Len100, core.ClassFootway, core.LitNo)
	MustAddEdge(t, g, NodeC, NodeD, Len100, core.ClassFootway, core.LitNo)
	MustAddEdge(t, g, NodeD, NodeA, Len100, core.ClassPrimary, core.LitYes)

	return g
}

// MustAddEdge adds an edge and fails the test on error.
func MustAddEdge(t *testing.T, g *core.Graph, u, v core.NodeID, length float64, c core.Classification, lit core.Lit, opts ...core.EdgeOption) core.EdgeID {
	t.Helper()
	id, err := g.AddEdge(u, v, length, c, lit, opts...)
	require.NoError(t, err)

	return id
}
