package rdf

// Graph is an in-memory Store holding a set of statements.
//
// Query results follow insertion order. That order is a property of this
// implementation only; code written against Store must not depend on it.
// Graph is not safe for concurrent use.
type Graph struct {
	stmts   []Statement
	live    []bool
	index   map[Statement]int
	removed int
}

var _ Store = (*Graph)(nil)

// NewGraph returns a graph holding the given statements.
func NewGraph(stmts ...Statement) *Graph {
	g := &Graph{index: make(map[Statement]int, len(stmts))}
	for _, s := range stmts {
		g.Add(s)
	}
	return g
}

// Add inserts s unless an equal statement is already present.
func (g *Graph) Add(s Statement) {
	if g.index == nil {
		g.index = make(map[Statement]int)
	}
	if _, ok := g.index[s]; ok {
		return
	}
	g.index[s] = len(g.stmts)
	g.stmts = append(g.stmts, s)
	g.live = append(g.live, true)
}

// Delete removes s. Deleting an absent statement does nothing.
func (g *Graph) Delete(s Statement) {
	i, ok := g.index[s]
	if !ok {
		return
	}
	delete(g.index, s)
	g.live[i] = false
	g.removed++
	if g.removed > 32 && g.removed > len(g.stmts)/2 {
		g.compact()
	}
}

// Query returns every statement matching p.
func (g *Graph) Query(p Pattern) []Statement {
	var out []Statement
	for i, s := range g.stmts {
		if g.live[i] && p.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// Size returns the number of statements.
func (g *Graph) Size() int {
	return len(g.index)
}

// Contains reports whether s is in the graph.
func (g *Graph) Contains(s Statement) bool {
	_, ok := g.index[s]
	return ok
}

// Statements returns all statements.
func (g *Graph) Statements() []Statement {
	return g.Query(Pattern{})
}

// Clone returns an independent copy of the graph.
func (g *Graph) Clone() *Graph {
	return NewGraph(g.Statements()...)
}

func (g *Graph) compact() {
	stmts := make([]Statement, 0, len(g.index))
	for i, s := range g.stmts {
		if g.live[i] {
			g.index[s] = len(stmts)
			stmts = append(stmts, s)
		}
	}
	g.stmts = stmts
	g.live = make([]bool, len(stmts))
	for i := range g.live {
		g.live[i] = true
	}
	g.removed = 0
}

// CopyInto adds every statement of src to dst.
func CopyInto(dst Store, src Store) {
	for _, s := range src.Query(Pattern{}) {
		dst.Add(s)
	}
}
