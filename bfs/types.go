// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/serenipy/core"
)

var (
	// ErrNilGraph is returned for a nil *core.Graph.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrUnknownStart is returned when the start node is not in the graph.
	ErrUnknownStart = errors.New("bfs: start node not found")

	// ErrInvalidOption is returned when an Option value is out of range.
	ErrInvalidOption = errors.New("bfs: invalid option")

	// ErrNotReached is returned by Result.PathTo for nodes outside the search.
	ErrNotReached = errors.New("bfs: node not reached")
)

// VisitFunc is called once per reached node, in visit order. A non-nil
// error stops the search and is returned wrapped.
type VisitFunc func(id core.NodeID, depth int) error

// EdgeFilter decides whether the walk may cross inc from node at.
type EdgeFilter func(at core.NodeID, inc core.Incidence) bool

// Options tunes a search. Build it through Option values.
type Options struct {
	Ctx             context.Context
	OnVisit         VisitFunc  // nil: no callback
	Filter          EdgeFilter // nil: every incidence
	MaxDepth        int        // 0: unlimited
	IgnoreDirection bool       // cross directed edges against their direction

	err error
}

// Option configures a search. Out-of-range values are reported as
// ErrInvalidOption by the search that receives them.
type Option func(*Options)

func newOptions(opts []Option) (Options, error) {
	o := Options{Ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithContext makes the search stop with ctx.Err() once ctx is done.
// Checked once per dequeued node. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers fn.
func WithOnVisit(fn VisitFunc) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth stops expanding at d hops from the start; 0 lifts the limit
// and d < 0 is invalid.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth %d is negative", ErrInvalidOption, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge restricts the walk to incidences accepted by fn, e.g. to
// one classification.
func WithFilterEdge(fn EdgeFilter) Option {
	return func(o *Options) { o.Filter = fn }
}

// WithIgnoreDirection walks one-way edges both ways.
func WithIgnoreDirection() Option {
	return func(o *Options) { o.IgnoreDirection = true }
}

// Result is the breadth-first tree of one search.
type Result struct {
	Start  core.NodeID
	Order  []core.NodeID               // visit order
	Depth  map[core.NodeID]int         // hops from Start
	Parent map[core.NodeID]core.NodeID // absent for Start
}

// PathTo returns the hop-shortest node sequence Start → dest found by the
// search, or ErrNotReached.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := make([]core.NodeID, d+1)
	for cur, i := dest, d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}

// sortedCopy returns ids ascending without touching the input.
func sortedCopy(ids []core.NodeID) []core.NodeID {
	out := slices.Clone(ids)
	slices.Sort(out)

	return out
}
