package annotation

import (
	"strings"

	"github.com/c360studio/oagraph/rdf"
	"github.com/c360studio/oagraph/vocabulary/oa"
)

// IDAsURL returns the annotation's identifier. It reports false when the
// root is a blank node, or when there is not exactly one annotation root.
// The null relative IRI is an identifier and is returned as "".
func (g *Graph) IDAsURL() (string, bool) {
	annos := g.annotationStatements()
	if len(annos) != 1 {
		return "", false
	}
	iri, ok := annos[0].Subject.(rdf.IRI)
	if !ok {
		return "", false
	}
	return string(iri), true
}

// MotivatedBy returns the oa:motivatedBy values of the annotation root, one
// per statement. Blank node motivations are skipped. The result is never nil.
func (g *Graph) MotivatedBy() []string {
	motivations := []string{}
	for _, anno := range g.annotationStatements() {
		for _, s := range g.store.Query(rdf.Pattern{Subject: anno.Subject, Predicate: oa.MotivatedBy}) {
			if v, ok := lexicalValue(s.Object); ok {
				motivations = append(motivations, v)
			}
		}
	}
	return motivations
}

// PredicateURLs returns the IRI objects of every statement with the given
// predicate, typically oa.HasTarget or oa.HasBody. Literal and blank node
// objects are skipped.
func (g *Graph) PredicateURLs(predicate rdf.IRI) []string {
	urls := []string{}
	for _, s := range g.store.Query(rdf.Pattern{Predicate: predicate}) {
		if iri, ok := s.Object.(rdf.IRI); ok {
			urls = append(urls, strings.TrimSpace(string(iri)))
		}
	}
	return urls
}

// BodyChars returns the cnt:chars text of each cnt:ContentAsText body, one
// element per (body, chars) pair. Text is returned verbatim, including
// surrounding whitespace and empty strings.
func (g *Graph) BodyChars() []string {
	result := []string{}
	seen := make(map[rdf.Term]struct{})
	for _, hb := range g.store.Query(rdf.Pattern{Predicate: oa.HasBody}) {
		body := hb.Object
		if _, dup := seen[body]; dup || !rdf.IsNode(body) {
			continue
		}
		seen[body] = struct{}{}

		if len(g.store.Query(rdf.Pattern{Subject: body, Predicate: oa.Type, Object: oa.ContentAsText})) == 0 {
			continue
		}
		for _, s := range g.store.Query(rdf.Pattern{Subject: body, Predicate: oa.Chars}) {
			if lit, ok := s.Object.(rdf.Literal); ok {
				result = append(result, lit.Lexical)
			}
		}
	}
	return result
}

// AnnotatedAt returns the oa:annotatedAt value. It reports false unless
// exactly one such statement exists.
func (g *Graph) AnnotatedAt() (string, bool) {
	stmts := g.store.Query(rdf.Pattern{Predicate: oa.AnnotatedAt})
	if len(stmts) != 1 {
		return "", false
	}
	return lexicalValue(stmts[0].Object)
}

// lexicalValue returns the string form of an IRI or literal.
func lexicalValue(t rdf.Term) (string, bool) {
	switch v := t.(type) {
	case rdf.IRI:
		return string(v), true
	case rdf.Literal:
		return v.Lexical, true
	default:
		return "", false
	}
}
