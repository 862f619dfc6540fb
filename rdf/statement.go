package rdf

// Statement is a (subject, predicate, object) triple. Statements are compared
// by structural equality of all three components.
type Statement struct {
	Subject   Term
	Predicate IRI
	Object    Term
}

// NewStatement builds a statement.
func NewStatement(subject Term, predicate IRI, object Term) Statement {
	return Statement{Subject: subject, Predicate: predicate, Object: object}
}

// String renders the statement as one N-Triples line without the newline.
func (s Statement) String() string {
	return termString(s.Subject) + " " + s.Predicate.String() + " " + termString(s.Object) + " ."
}

func termString(t Term) string {
	if t == nil {
		return "?"
	}
	return t.String()
}

// Pattern selects statements. A nil field matches any term.
type Pattern struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Matches reports whether s satisfies every bound field of p.
func (p Pattern) Matches(s Statement) bool {
	if p.Subject != nil && p.Subject != s.Subject {
		return false
	}
	if p.Predicate != nil && p.Predicate != Term(s.Predicate) {
		return false
	}
	if p.Object != nil && p.Object != s.Object {
		return false
	}
	return true
}

// Store is the triple store contract consumed by annotation graphs.
// Implementations need not be safe for concurrent use.
type Store interface {
	// Query returns every statement matching the pattern.
	Query(p Pattern) []Statement
	// Add inserts s; adding a statement already present is a no-op.
	Add(s Statement)
	// Delete removes s; deleting an absent statement is a no-op.
	Delete(s Statement)
	// Size returns the number of statements held.
	Size() int
}

// Dedupe returns stmts with later duplicates removed, preserving first-seen
// order.
func Dedupe(stmts []Statement) []Statement {
	if len(stmts) < 2 {
		return stmts
	}
	seen := make(map[Statement]struct{}, len(stmts))
	out := stmts[:0:0]
	for _, s := range stmts {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
