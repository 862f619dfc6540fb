// Package rdf provides the term and statement model used by annotation graphs,
// together with the Store contract and an in-memory Store implementation.
//
// Terms are comparable values. Two terms are the same resource exactly when
// they compare equal with ==, which lets Statement act as a map key.
package rdf

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies which variant of Term a value is.
type Kind int

const (
	// KindIRI is an IRI reference, including the null relative IRI.
	KindIRI Kind = iota + 1
	// KindBlank is an anonymous node with document-local identity.
	KindBlank
	// KindLiteral is a lexical value with optional datatype or language.
	KindLiteral
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBlank:
		return "blank"
	case KindLiteral:
		return "literal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Term is a node in the graph: an IRI, a blank node or a literal.
type Term interface {
	Kind() Kind
	// String renders the term in N-Triples syntax.
	String() string
	isTerm()
}

// IRI is a resource identified by an IRI. The zero value IRI("") is the
// null relative IRI used as a placeholder for an identifier not yet assigned.
type IRI string

func (IRI) Kind() Kind { return KindIRI }

func (i IRI) String() string { return "<" + string(i) + ">" }

func (IRI) isTerm() {}

// BlankNode is an anonymous resource. Its ID is only meaningful within one
// graph.
type BlankNode struct {
	ID string
}

// NewBlankNode returns a blank node with a fresh, session-unique ID.
func NewBlankNode() BlankNode {
	return BlankNode{ID: "b" + strings.ReplaceAll(uuid.New().String(), "-", "")}
}

func (BlankNode) Kind() Kind { return KindBlank }

func (b BlankNode) String() string { return "_:" + b.ID }

func (BlankNode) isTerm() {}

// Literal is a lexical value. At most one of Datatype and Language is set.
type Literal struct {
	Lexical  string
	Datatype IRI
	Language string
}

// NewLiteral returns a plain string literal.
func NewLiteral(lexical string) Literal {
	return Literal{Lexical: lexical}
}

// NewTypedLiteral returns a literal with the given datatype.
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}
}

// NewLangLiteral returns a language-tagged literal.
func NewLangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Language: lang}
}

func (Literal) Kind() Kind { return KindLiteral }

func (l Literal) String() string {
	s := `"` + escapeLiteral(l.Lexical) + `"`
	switch {
	case l.Language != "":
		return s + "@" + l.Language
	case l.Datatype != "":
		return s + "^^" + l.Datatype.String()
	default:
		return s
	}
}

func (Literal) isTerm() {}

// IsNode reports whether t can appear as the subject of a statement.
func IsNode(t Term) bool {
	if t == nil {
		return false
	}
	k := t.Kind()
	return k == KindIRI || k == KindBlank
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}
