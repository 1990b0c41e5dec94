package sortengine

import (
	"sort"
	"strings"

	"github.com/poma-odoo/odoo-sort-go/internal/depgraph"
	"github.com/poma-odoo/odoo-sort-go/internal/obuckets"
	"github.com/poma-odoo/odoo-sort-go/internal/pybind"
	"github.com/poma-odoo/odoo-sort-go/internal/pyparse"
)

// sortClassBody applies spec.md §4.5's class-level sorter to a class
// statement and returns its final text. If the class's own body order
// doesn't change, it returns classStmt.Text byte-for-byte and never
// recurses into inner classes - step 7's no-op short-circuit. Only when
// the body is actually reordered does it recurse into each inner class
// the same way and rebuild the header plus reordered body.
func sortClassBody(classStmt *pyparse.Statement, opts Options) (string, error) {
	headText, body, perr := pyparse.SplitClass(classStmt)
	if perr != nil || len(body) == 0 {
		return classStmt.Text, nil
	}

	order := sortClassStatements(body, opts.SortFields)

	reordered := false
	for i, idx := range order {
		if idx != i {
			reordered = true
			break
		}
	}

	if !reordered {
		return classStmt.Text, nil
	}

	texts := make([]string, len(body))
	for i, stmt := range body {
		if stmt.Kind == pyparse.KindClassDef {
			t, err := sortClassBody(stmt, opts)
			if err != nil {
				return "", err
			}
			texts[i] = t
		} else {
			texts[i] = stmt.Text
		}
	}

	// Body statements carry their text with the body's indentation
	// removed; it goes back on every non-empty line when emitting them.
	bodyIndent := ""
	for _, line := range strings.Split(classStmt.SuiteText(), "\n") {
		if trimmed := strings.TrimLeft(line, " \t"); trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			bodyIndent = line[:len(line)-len(trimmed)]
			break
		}
	}

	ordered := make([]string, len(order))
	for i, idx := range order {
		lines := strings.Split(texts[idx], "\n")
		for j, line := range lines {
			if line != "" {
				lines[j] = bodyIndent + line
			}
		}
		ordered[i] = strings.Join(lines, "\n")
	}

	// Lines attached to the class after its suite (trailing comments at
	// the end of a file) follow the rebuilt body unchanged.
	tail := ""
	if suite := classStmt.SuiteText(); suite != "" {
		if pos := strings.LastIndex(classStmt.Text, suite); pos >= 0 {
			tail = classStmt.Text[pos+len(suite):]
		}
	}
	return headText + "\n" + strings.Join(ordered, "\n") + tail, nil
}

// sortClassStatements runs the six steps of spec.md §4.5 over one class
// body U and returns the final permutation of indices into U.
func sortClassStatements(body []*pyparse.Statement, sortFields bool) []int {
	idx := buildBindingIndex(body)

	// Step 1: snapshot hard order.
	hard := buildGraph(body, idx, pybind.HardReferences)

	// Steps 2-4: bucketize, per-bucket sort, concatenate.
	concat := concatenateBuckets(body, sortFields)

	// Step 5: repair with the hard graph; stable tie-break preserves
	// bucket order.
	afterHard := depgraph.TopologicalSort(concat, hard)

	// Step 6: repair with the private-reference-restricted runtime
	// graph, merged with the hard graph, cycle-broken by the order hard
	// repair produced.
	runtime := buildGraph(body, idx, privateReferences)
	runtime.Merge(hard)

	position := make([]int, len(body))
	for pos, node := range afterHard {
		position[node] = pos
	}
	depgraph.ReplaceCycles(runtime, func(node int) int { return position[node] })

	return depgraph.TopologicalSort(afterHard, runtime)
}

// classify18 assigns a statement to one of spec.md §3's 18 role buckets,
// testing in an order that differs from the buckets' own numbering in
// exactly two places: field declarations (9) must be tested before the
// catch-all "regular property" bucket (8) it would otherwise fall into,
// and the closed-list regular-operator dunders (18) must be tested
// before the catch-all "remaining methods" bucket (17). Final bucket
// concatenation still follows the numbered order.
func classify18(stmt *pyparse.Statement) int {
	switch {
	case obuckets.IsDocstring(stmt):
		return 1
	case obuckets.IsSpecialProperty(stmt):
		return 2
	case obuckets.IsClass(stmt):
		return 3
	case obuckets.IsOdooPrivateAttribute(stmt):
		return 4
	case obuckets.IsPrivateAttribute(stmt):
		return 5
	case obuckets.IsORMOverride(stmt):
		return 6
	case obuckets.IsDefaultMethod(stmt):
		return 7
	case obuckets.IsField(stmt):
		return 9
	case obuckets.IsOdooSpecialAttribute(stmt):
		return 10
	case obuckets.IsLifecycleOperation(stmt):
		return 11
	case obuckets.IsComputeMethod(stmt):
		return 12
	case obuckets.IsSelectionMethod(stmt):
		return 13
	case obuckets.IsConstraintMethod(stmt):
		return 14
	case obuckets.IsOnchangeMethod(stmt):
		return 15
	case obuckets.IsAction(stmt):
		return 16
	case obuckets.IsRegularOperation(stmt):
		return 18
	case obuckets.IsProperty(stmt):
		return 8
	default:
		// Functions not otherwise classified, and any stray statement
		// (a bare "pass", an expression statement) land here too.
		return 17
	}
}

// concatenateBuckets partitions body into its 18 role buckets (in source
// order within each), applies each bucket's own ordering rule, and
// concatenates them in bucket order, returning the resulting permutation
// of indices into body.
func concatenateBuckets(body []*pyparse.Statement, sortFields bool) []int {
	ptrIndex := make(map[*pyparse.Statement]int, len(body))
	for i, s := range body {
		ptrIndex[s] = i
	}

	groups := make(map[int][]*pyparse.Statement, 18)
	for _, s := range body {
		b := classify18(s)
		groups[b] = append(groups[b], s)
	}

	fields := groups[9]
	if sortFields {
		fields = append([]*pyparse.Statement(nil), fields...)
		sort.SliceStable(fields, func(i, j int) bool {
			return firstBinding(fields[i]) < firstBinding(fields[j])
		})
	}
	groups[9] = fields

	fieldNames := make([]string, len(fields))
	for i, f := range fields {
		fieldNames[i] = firstBinding(f)
	}
	suffixRank := obuckets.SortKeyFromEnding(fieldNames)

	groups[2] = obuckets.SortByBindingRank(groups[2], obuckets.Rank(obuckets.SpecialProperties))
	groups[4] = obuckets.SortByBindingRank(groups[4], obuckets.Rank(obuckets.OdooPrivateAttributes))
	groups[6] = obuckets.SortByBindingRank(groups[6], obuckets.Rank(obuckets.OdooModelMethods))
	groups[10] = obuckets.SortByBindingRank(groups[10], obuckets.Rank(obuckets.OdooSpecialAttributes))
	groups[11] = obuckets.SortByBindingRank(groups[11], obuckets.Rank(obuckets.LifecycleOperations))
	groups[18] = obuckets.SortByBindingRank(groups[18], obuckets.Rank(obuckets.RegularOperations))

	groups[7] = sortDefaultMethods(groups[7], suffixRank)
	groups[12] = obuckets.SortByBindingRank(groups[12], suffixRank)
	groups[13] = obuckets.SortByBindingRank(groups[13], suffixRank)
	groups[14] = obuckets.SortByBindingRank(groups[14], suffixRank)
	groups[15] = obuckets.SortByBindingRank(groups[15], suffixRank)

	// Buckets 1, 3, 5, 8, 16, 17 keep source order: groups[b] was
	// already built that way above and nothing further sorts them.

	order := make([]int, 0, len(body))
	for b := 1; b <= 18; b++ {
		for _, s := range groups[b] {
			order = append(order, ptrIndex[s])
		}
	}
	return order
}

// sortDefaultMethods places the distinguished default-getter first, then
// orders the rest by suffix-to-rank against the field list.
func sortDefaultMethods(stmts []*pyparse.Statement, suffixRank func(string) int) []*pyparse.Statement {
	var getter, rest []*pyparse.Statement
	for _, s := range stmts {
		if firstBinding(s) == "default_get" {
			getter = append(getter, s)
		} else {
			rest = append(rest, s)
		}
	}
	return append(getter, obuckets.SortByBindingRank(rest, suffixRank)...)
}

func firstBinding(s *pyparse.Statement) string {
	b := s.Bindings()
	if len(b) == 0 {
		return ""
	}
	return b[0]
}

// privateReferences is the runtime graph's restricted reference set for
// step 6: hard and soft references whose name starts with "_" - public
// names are expected to cross-reference in ways that would otherwise
// over-constrain bucket layout (spec.md §9, Open Question (b)).
func privateReferences(stmt *pyparse.Statement) []string {
	var names []string
	for _, n := range pybind.HardReferences(stmt) {
		if strings.HasPrefix(n, "_") {
			names = append(names, n)
		}
	}
	for _, n := range pybind.SoftReferences(stmt) {
		if strings.HasPrefix(n, "_") {
			names = append(names, n)
		}
	}
	return names
}
