package sortengine

import (
	"github.com/poma-odoo/odoo-sort-go/internal/depgraph"
	"github.com/poma-odoo/odoo-sort-go/internal/pyparse"
)

// bindingIndex maps every name bound anywhere in a statement slice to the
// indices (within that slice, in source order) of the statements binding
// it - the lookup a dependency-graph build resolves references against.
type bindingIndex map[string][]int

func buildBindingIndex(statements []*pyparse.Statement) bindingIndex {
	idx := make(bindingIndex)
	for i, stmt := range statements {
		for _, b := range stmt.Bindings() {
			idx[b] = append(idx[b], i)
		}
	}
	return idx
}

// providers returns the statement indices, excluding self, that bind
// name within the scope idx was built over.
func (idx bindingIndex) providers(name string, self int) []int {
	var out []int
	for _, i := range idx[name] {
		if i != self {
			out = append(out, i)
		}
	}
	return out
}

// buildGraph is spec.md §4.3's build(): for each statement, for each name
// refsOf returns, add an edge to every statement in the same scope that
// binds it. Multiple references to the same target collapse to one edge
// (depgraph.AddEdge is idempotent); self-edges are dropped the same way.
func buildGraph(statements []*pyparse.Statement, idx bindingIndex, refsOf func(*pyparse.Statement) []string) *depgraph.Graph {
	g := depgraph.New(len(statements))
	for i, stmt := range statements {
		for _, name := range refsOf(stmt) {
			for _, p := range idx.providers(name, i) {
				g.AddEdge(i, p)
			}
		}
	}
	return g
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
