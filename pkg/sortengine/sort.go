package sortengine

import (
	"fmt"
	"strings"

	"github.com/poma-odoo/odoo-sort-go/internal/depgraph"
	pyencoding "github.com/poma-odoo/odoo-sort-go/internal/encoding"
	"github.com/poma-odoo/odoo-sort-go/internal/pybind"
	"github.com/poma-odoo/odoo-sort-go/internal/pyparse"
	"github.com/poma-odoo/odoo-sort-go/pkg/core"
)

// Sort reorders a Python source file's statements per the module- and
// class-level rules of spec.md §4.4-§4.5, wrapping the pure-text
// transform with the encoding/newline handling of §4.6. Whenever a
// file-level policy aborts analysis (an unrecognized coding declaration,
// a decode failure, a syntax error, an unresolved reference, or a
// wildcard import - each in "raise" or "ignore" mode, or any custom
// handler that doesn't itself choose to proceed) the original bytes come
// back unchanged: never a partial rewrite.
func Sort(source []byte, opts Options) ([]byte, error) {
	declared := pyencoding.DetectDeclaredEncoding(source)
	encName := declared
	if encName == "" {
		encName = "utf-8"
	}

	if _, ok := pyencoding.Lookup(encName); !ok {
		onUnknownEncoding := core.InterpretOnUnknownEncoding(opts.OnUnknownEncoding)
		message := fmt.Sprintf("encoding %q is not recognized", declared)
		if err := onUnknownEncoding(message, declared); err != nil {
			return source, err
		}
		return source, nil
	}

	text, decErr := pyencoding.Decode(source, encName)
	if decErr != nil {
		onDecodingError := core.InterpretOnDecodingError(opts.OnDecodingError)
		if err := onDecodingError(decErr.Error()); err != nil {
			return source, err
		}
		return source, nil
	}

	nl := pyencoding.DetectNewline(text)
	normalized := pyencoding.NormalizeNewlines(text)

	sorted, err := SortText(normalized, opts)
	if err != nil {
		return source, err
	}
	if sorted == normalized {
		return source, nil
	}

	restored := pyencoding.RestoreNewlines(sorted, nl)
	out, encErr := pyencoding.Encode(restored, encName)
	if encErr != nil {
		return source, encErr
	}
	return out, nil
}

// SortText reorders already-decoded, LF-normalized source text, with no
// encoding or newline handling. It's the direct text-mode counterpart of
// Sort, and what Sort itself calls once the input is in memory as text.
func SortText(text string, opts Options) (string, error) {
	statements, perr := pyparse.Parse(text, opts.Filename)
	if perr != nil {
		onParseError := core.InterpretOnParseError(opts.OnParseError)
		if err := onParseError(perr.Message, perr.Line, perr.Column); err != nil {
			return text, err
		}
		return text, nil
	}
	if len(statements) == 0 {
		return text, nil
	}

	order, err := sortModule(statements, opts)
	if err != nil {
		return text, err
	}
	if order == nil {
		// A wildcard import or an unresolved reference was seen and the
		// configured policy didn't itself raise: abandon regardless,
		// returning the input unchanged (spec.md §7).
		return text, nil
	}

	texts := make([]string, len(statements))
	changed := false
	for i, stmt := range statements {
		if stmt.Kind == pyparse.KindClassDef {
			t, cerr := sortClassBody(stmt, opts)
			if cerr != nil {
				return text, cerr
			}
			texts[i] = t
			if t != stmt.Text {
				changed = true
			}
		} else {
			texts[i] = stmt.Text
		}
	}

	reordered := false
	for i, idx := range order {
		if idx != i {
			reordered = true
			break
		}
	}
	if !reordered && !changed {
		return text, nil
	}

	ordered := make([]string, len(order))
	for i, idx := range order {
		ordered[i] = texts[idx]
	}
	out := strings.Join(ordered, "\n")
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

// sortModule builds the module-level graph (every reference is hard at
// module scope) and returns the topological order it implies, or
// (nil, nil) when analysis was abandoned without a surfaced error.
func sortModule(statements []*pyparse.Statement, opts Options) ([]int, error) {
	idx := buildBindingIndex(statements)
	onUnresolved := core.InterpretOnUnresolved(opts.OnUnresolved)
	onWildcard := core.InterpretOnWildcardImport(opts.OnWildcardImport)

	g := depgraph.New(len(statements))
	abandoned := false

	for i, stmt := range statements {
		if stmt.Kind == pyparse.KindImport && len(stmt.Bindings()) == 0 {
			if err := onWildcard(stmt.Line, stmt.Column-1); err != nil {
				return nil, err
			}
			abandoned = true
			continue
		}

		for _, occ := range pybind.FreeNameOccurrences(stmt) {
			providers := idx.providers(occ.Name, i)
			if len(providers) == 0 {
				message := "not bound by any statement in this scope"
				if err := onUnresolved(message, occ.Name, occ.Line, occ.Column); err != nil {
					return nil, err
				}
				abandoned = true
				continue
			}
			for _, p := range providers {
				g.AddEdge(i, p)
			}
		}
	}

	if abandoned {
		return nil, nil
	}

	// Cycles keyed by original statement index, per spec.md §4.4.
	depgraph.ReplaceCycles(g, func(node int) int { return node })

	return depgraph.TopologicalSort(identityOrder(len(statements)), g), nil
}
