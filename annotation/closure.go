package annotation

import (
	"errors"
	"fmt"

	"github.com/c360studio/oagraph/rdf"
)

// ErrClosureDepthExceeded is returned when a closure would descend past the
// configured maximum depth.
var ErrClosureDepthExceeded = errors.New("closure depth exceeded")

// SubjectStatements returns every statement reachable from start by following
// statements whose subject is start, then recursively the statements about
// each of their objects.
//
// Results are in depth-first discovery order with no duplicates. A literal
// start, or a node that is never a subject, yields nil. Each node is expanded
// at most once, so cycles in the store terminate.
func SubjectStatements(start rdf.Term, store rdf.Store) []rdf.Statement {
	stmts, _ := closure(start, store, 0)
	return stmts
}

// Closure is SubjectStatements bounded by the Graph's maximum depth.
func (g *Graph) Closure(start rdf.Term) ([]rdf.Statement, error) {
	return closure(start, g.store, g.maxDepth)
}

func closure(start rdf.Term, store rdf.Store, maxDepth int) ([]rdf.Statement, error) {
	w := &closureWalk{
		store:    store,
		maxDepth: maxDepth,
		visited:  make(map[rdf.Term]struct{}),
	}
	if err := w.expand(start, 0); err != nil {
		return nil, fmt.Errorf("closure of %s: %w", start, err)
	}
	return rdf.Dedupe(w.out), nil
}

type closureWalk struct {
	store    rdf.Store
	maxDepth int
	visited  map[rdf.Term]struct{}
	out      []rdf.Statement
}

// expand appends the statements about node, each followed by the closure of
// its object.
func (w *closureWalk) expand(node rdf.Term, depth int) error {
	if !rdf.IsNode(node) {
		return nil
	}
	if _, seen := w.visited[node]; seen {
		return nil
	}
	w.visited[node] = struct{}{}

	stmts := w.store.Query(rdf.Pattern{Subject: node})
	if len(stmts) == 0 {
		return nil
	}
	if w.maxDepth > 0 && depth >= w.maxDepth {
		return fmt.Errorf("%w: %s is %d levels deep (max %d)", ErrClosureDepthExceeded, node, depth, w.maxDepth)
	}
	for _, s := range stmts {
		w.out = append(w.out, s)
		if err := w.expand(s.Object, depth+1); err != nil {
			return err
		}
	}
	return nil
}
