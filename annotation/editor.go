package annotation

import (
	"fmt"

	"github.com/c360studio/oagraph/rdf"
	"github.com/c360studio/oagraph/vocabulary/oa"
)

// NullRelativeIRI is the zero-length relative IRI that stands in for the
// identifier of an annotation that has not been assigned one yet.
const NullRelativeIRI = rdf.IRI("")

// RemoveNonBaseStatements removes the target and body subgraphs, leaving only
// the statements about the annotation itself.
func (g *Graph) RemoveNonBaseStatements() error {
	if err := g.RemoveHasTargetStatements(); err != nil {
		return err
	}
	return g.RemoveHasBodyStatements()
}

// RemoveHasBodyStatements removes every oa:hasBody statement and the
// statements about its bodies.
func (g *Graph) RemoveHasBodyStatements() error {
	return g.RemovePredicateSubgraph(oa.HasBody)
}

// RemoveHasTargetStatements removes every oa:hasTarget statement and the
// statements about its targets.
func (g *Graph) RemoveHasTargetStatements() error {
	return g.RemovePredicateSubgraph(oa.HasTarget)
}

// RemovePredicateSubgraph deletes each statement with the given predicate,
// together with the closure of its object. Statements that are neither
// matched nor reachable from a matched object are left alone. A predicate
// that does not occur is a no-op.
//
// Deletions are applied one at a time; if a closure fails part way through
// the list, statements removed so far stay removed.
func (g *Graph) RemovePredicateSubgraph(predicate rdf.IRI) error {
	matches := g.store.Query(rdf.Pattern{Predicate: predicate})
	if len(matches) == 0 {
		return nil
	}

	before := g.store.Size()
	for _, ps := range matches {
		sub, err := g.Closure(ps.Object)
		if err != nil {
			return fmt.Errorf("remove %s subgraph: %w", predicate, err)
		}
		for _, s := range sub {
			g.store.Delete(s)
		}
		g.store.Delete(ps)
	}

	g.logger.Debug("Removed predicate subgraph",
		"predicate", string(predicate),
		"matches", len(matches),
		"removed", before-g.store.Size())
	return nil
}

// MakeNullRelativeURIOutOfBlankNode rewrites a blank annotation root as the
// null relative IRI. Only statements whose subject is the root itself are
// rewritten; statements about its descendants, and statements that merely
// point at the root, are untouched. A root that is already an IRI, or a store
// with no annotation, is left as is. The statement count does not change
// unless the store already holds a statement about the null relative IRI that
// equals a rewritten one; the two then collapse into a single statement.
func (g *Graph) MakeNullRelativeURIOutOfBlankNode() {
	annos := g.annotationStatements()
	if len(annos) == 0 {
		return
	}
	if len(annos) > 1 {
		g.logger.Warn("Multiple annotation roots, rewriting the first",
			"roots", len(annos))
	}

	root, ok := annos[0].Subject.(rdf.BlankNode)
	if !ok {
		return
	}

	rewritten := 0
	for _, s := range g.store.Query(rdf.Pattern{Subject: root}) {
		g.store.Add(rdf.NewStatement(NullRelativeIRI, s.Predicate, s.Object))
		g.store.Delete(s)
		rewritten++
	}

	g.logger.Debug("Rewrote blank annotation root",
		"blank_node", root.ID,
		"statements", rewritten)
}
