// Package annotation adds Open Annotation semantics to a triple store holding
// the statements of a single annotation.
//
// A Graph answers the canned annotation queries (identifier, motivations,
// body text, target URLs, timestamp), edits the store in place to split an
// annotation's base description from its body and target subgraphs, and
// serializes the store as JSON-LD against an external context document.
//
// Graph does not lock. Callers sharing a store between goroutines must
// serialize access themselves.
package annotation

import (
	"log/slog"

	"github.com/c360studio/oagraph/rdf"
	"github.com/c360studio/oagraph/vocabulary/oa"
)

// Graph wraps the rdf.Store of one annotation.
type Graph struct {
	store    rdf.Store
	logger   *slog.Logger
	maxDepth int
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger sets the logger used for edit operations.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMaxDepth bounds closure computations. A closure that would descend
// more than depth levels below its start node fails with
// ErrClosureDepthExceeded. Zero or negative means unbounded.
func WithMaxDepth(depth int) Option {
	return func(g *Graph) {
		g.maxDepth = depth
	}
}

// New returns a Graph over store. The store is used directly, not copied.
func New(store rdf.Store, opts ...Option) *Graph {
	g := &Graph{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Store returns the underlying triple store for raw pattern queries.
func (g *Graph) Store() rdf.Store {
	return g.store
}

// annotationStatements returns the (?s, rdf:type, oa:Annotation) statements.
func (g *Graph) annotationStatements() []rdf.Statement {
	return g.store.Query(rdf.Pattern{Predicate: oa.Type, Object: oa.Annotation})
}
