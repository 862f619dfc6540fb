// Package export serializes annotation graphs to Turtle, N-Triples and JSON-LD.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/oagraph/rdf"
	"github.com/c360studio/oagraph/vocabulary/oa"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output with an inline context.
	FormatJSONLD Format = "jsonld"
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := FormatRegistry[f]; !ok {
		return "", fmt.Errorf("unsupported format: %s (valid: turtle, ntriples, jsonld)", name)
	}
	return f, nil
}

// RDFExporter serializes the statements of a store.
type RDFExporter struct {
	prefixes map[string]string
}

// Option configures an RDFExporter.
type Option func(*RDFExporter)

// WithPrefix adds or replaces a namespace prefix.
func WithPrefix(prefix, iri string) Option {
	return func(e *RDFExporter) {
		e.prefixes[prefix] = iri
	}
}

// NewRDFExporter creates an exporter with the annotation vocabulary prefixes.
func NewRDFExporter(opts ...Option) *RDFExporter {
	e := &RDFExporter{prefixes: oa.Prefixes()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Prefixes returns a copy of the exporter's prefix map.
func (e *RDFExporter) Prefixes() map[string]string {
	out := make(map[string]string, len(e.prefixes))
	for k, v := range e.prefixes {
		out[k] = v
	}
	return out
}

// Export serializes every statement in store to the specified format.
func (e *RDFExporter) Export(store rdf.Store, format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(store), nil
	case FormatNTriples:
		return toNTriples(store), nil
	case FormatJSONLD:
		data, err := e.toJSONLD(store)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// Serialize is shorthand for NewRDFExporter().Export(store, format).
func Serialize(store rdf.Store, format Format) (string, error) {
	return NewRDFExporter().Export(store, format)
}

// JSONLD serializes store as a JSON-LD document whose @context inlines the
// default prefixes.
func JSONLD(store rdf.Store) ([]byte, error) {
	return NewRDFExporter().toJSONLD(store)
}

// toTurtle serializes to Turtle format, grouping statements by subject.
func (e *RDFExporter) toTurtle(store rdf.Store) string {
	w := NewTurtleWriter()
	for prefix, iri := range e.prefixes {
		w.SetPrefix(prefix, iri)
	}
	w.WritePrefixes()

	for _, group := range groupBySubject(store.Query(rdf.Pattern{})) {
		w.WriteSubject(group.subject)
		for i, s := range group.stmts {
			w.WritePredicate(s.Predicate, s.Object, i == len(group.stmts)-1)
		}
		w.WriteBlank()
	}
	return w.String()
}

// toNTriples serializes to N-Triples format.
func toNTriples(store rdf.Store) string {
	w := NewNTriplesWriter()
	for _, s := range store.Query(rdf.Pattern{}) {
		w.WriteStatement(s)
	}
	return w.String()
}

// toJSONLD serializes to flattened JSON-LD with one node object per subject.
func (e *RDFExporter) toJSONLD(store rdf.Store) ([]byte, error) {
	w := NewJSONLDWriter()
	w.SetContext(e.prefixes)

	for _, group := range groupBySubject(store.Query(rdf.Pattern{})) {
		var types []string
		props := make(map[string]any)
		for _, s := range group.stmts {
			if s.Predicate == oa.Type {
				if iri, ok := s.Object.(rdf.IRI); ok {
					types = append(types, compactIRI(e.prefixes, iri))
					continue
				}
			}
			key := compactIRI(e.prefixes, s.Predicate)
			props[key] = appendValue(props[key], jsonldValue(e.prefixes, s.Object))
		}
		w.AddNode(nodeID(group.subject), types, props)
	}

	data, err := w.Bytes()
	if err != nil {
		return nil, fmt.Errorf("marshal json-ld: %w", err)
	}
	return data, nil
}

type subjectGroup struct {
	subject rdf.Term
	stmts   []rdf.Statement
}

// groupBySubject groups statements by subject in first-seen order.
func groupBySubject(stmts []rdf.Statement) []subjectGroup {
	var groups []subjectGroup
	pos := make(map[rdf.Term]int)
	for _, s := range stmts {
		i, ok := pos[s.Subject]
		if !ok {
			i = len(groups)
			pos[s.Subject] = i
			groups = append(groups, subjectGroup{subject: s.Subject})
		}
		groups[i].stmts = append(groups[i].stmts, s)
	}
	return groups
}

// nodeID renders a subject as a JSON-LD @id value.
func nodeID(t rdf.Term) string {
	switch v := t.(type) {
	case rdf.IRI:
		return string(v)
	case rdf.BlankNode:
		return "_:" + v.ID
	default:
		return t.String()
	}
}

// jsonldValue renders an object term as a JSON-LD value.
func jsonldValue(prefixes map[string]string, t rdf.Term) any {
	switch v := t.(type) {
	case rdf.IRI, rdf.BlankNode:
		return map[string]any{"@id": nodeID(v)}
	case rdf.Literal:
		switch {
		case v.Language != "":
			return map[string]any{"@value": v.Lexical, "@language": v.Language}
		case v.Datatype != "":
			return map[string]any{"@value": v.Lexical, "@type": compactIRI(prefixes, v.Datatype)}
		default:
			return v.Lexical
		}
	default:
		return nil
	}
}

// appendValue adds v to an existing property value, turning it into an array
// on the second occurrence.
func appendValue(existing, v any) any {
	switch cur := existing.(type) {
	case nil:
		return v
	case []any:
		return append(cur, v)
	default:
		return []any{cur, v}
	}
}

// compactIRI shortens iri to prefix:local when a prefix matches and the local
// part is a simple name.
func compactIRI(prefixes map[string]string, iri rdf.IRI) string {
	s := string(iri)
	best := ""
	for prefix, ns := range prefixes {
		if ns == "" || !strings.HasPrefix(s, ns) {
			continue
		}
		local := s[len(ns):]
		if !isSimpleLocalName(local) {
			continue
		}
		// Prefer the longest namespace, then the lexically smallest prefix.
		if best == "" || len(ns) > len(prefixes[best]) || (len(ns) == len(prefixes[best]) && prefix < best) {
			best = prefix
		}
	}
	if best == "" {
		return s
	}
	return best + ":" + s[len(prefixes[best]):]
}

func isSimpleLocalName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}

// sortedKeys returns the keys of m in lexical order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
