package pybind

import (
	"strings"

	"github.com/poma-odoo/odoo-sort-go/internal/pyparse"
)

// FreeNames returns every free name a statement consumes, for module-
// scope graph building. spec.md §4.4 treats every reference as hard at
// module scope, so this doesn't distinguish load-time from deferred
// uses - it scans the statement's whole text, including nested
// function/class bodies, since at module scope a name used anywhere
// inside a def still has to exist by the time that def is called.
//
// It does, however, exclude names bound by a scope nested inside the
// statement - a function's own parameters, its locals, its for/with/
// except targets (pyparse.NestedScopeBindings) - since those are never
// reads of the enclosing scope no matter how deep inside stmt.Text they
// appear. Without this, every method with parameters or locals (which
// is to say, nearly every Odoo model method) would read as referencing
// names like `vals` or `result` that no statement in scope provides.
// An import reads no name of the enclosing scope, so it has none.
func FreeNames(stmt *pyparse.Statement) []string {
	if stmt.Kind == pyparse.KindImport {
		return nil
	}
	return dedupe(identifiers(stmt.Text, freeScopeExclusions(stmt.Text, stmt.Bindings())))
}

// Occurrence is a single free-name read, positioned at its absolute
// source location (both 1-based Line, 0-based Column - matching Python's
// own ast.col_offset, which is what a ResolutionError/WildcardImportError
// reports).
type Occurrence struct {
	Name   string
	Line   int
	Column int
}

// FreeNameOccurrences is FreeNames with source positions attached, one
// entry per occurrence (not deduplicated - a name referenced twice in the
// same statement is reported at both its positions).
func FreeNameOccurrences(stmt *pyparse.Statement) []Occurrence {
	if stmt.Kind == pyparse.KindImport {
		return nil
	}
	occs := scan(stmt.Text, freeScopeExclusions(stmt.Text, stmt.Bindings()))
	out := make([]Occurrence, len(occs))
	for i, o := range occs {
		out[i] = Occurrence{Name: o.name, Line: stmt.TextLine() + o.line, Column: o.col}
	}
	return out
}

// HardReferences returns the names a statement reads at the moment its
// enclosing class body loads: decorator arguments, base-class/metaclass
// expressions, default-argument and annotation expressions, and the
// right-hand side of an assignment. A function or class's own body is
// excluded - that's HardReferences' whole point.
func HardReferences(stmt *pyparse.Statement) []string {
	var parts []string
	if d := stmt.DecoratorsText(); d != "" {
		parts = append(parts, d)
	}

	switch stmt.Kind {
	case pyparse.KindFunctionDef:
		parts = append(parts, signatureReferenceText(stmt.HeaderText()))
	case pyparse.KindClassDef:
		parts = append(parts, classBasesText(stmt.HeaderText()))
	case pyparse.KindAssign, pyparse.KindAnnAssign, pyparse.KindAugAssign:
		parts = append(parts, rhsText(stmt.HeaderText()))
	case pyparse.KindImport, pyparse.KindDocstring:
		// No load-time expression to evaluate beyond the statement itself.
	default:
		parts = append(parts, stmt.HeaderText())
	}

	joined := strings.Join(parts, "\n")
	return dedupe(identifiers(joined, freeScopeExclusions(joined, stmt.Bindings())))
}

// SoftReferences returns the names read only when a deferred body later
// runs: a function/method's body, or (approximately) a nested class's
// body when it's itself a member of the class being ordered.
func SoftReferences(stmt *pyparse.Statement) []string {
	body := stmt.SuiteText()
	if body == "" {
		return nil
	}
	// The header is scanned for bindings too, so a def's own parameters
	// are not read as references from its body.
	return dedupe(identifiers(body, freeScopeExclusions(stmt.HeaderText()+"\n"+body, stmt.Bindings())))
}

// freeScopeExclusions is the full set of names that must NOT count as a
// free/hard/soft reference when scanning text: the statement's own
// top-level bindings, plus every name pyparse.NestedScopeBindings finds
// bound by a scope nested anywhere inside text (a nested def's or class's
// name, a def's or lambda's parameters, a for/with/except target, a local
// assignment).
func freeScopeExclusions(text string, ownBindings []string) []string {
	return append(append([]string{}, ownBindings...), pyparse.NestedScopeBindings(text)...)
}

func dedupe(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// signatureReferenceText extracts, from a `def`/`async def` header, the
// portions that are actual expressions (parameter annotations, defaults,
// and the return annotation) - excluding the parameter names themselves,
// which are bindings of the function's own scope, not references to the
// enclosing one.
func signatureReferenceText(header string) string {
	open := strings.IndexByte(header, '(')
	if open < 0 {
		return ""
	}
	close := matchingParen(header, open)
	if close < 0 {
		close = len(header) - 1
	}

	params := splitParams(header[open+1 : close])
	var refs []string
	for _, p := range params {
		p = strings.TrimSpace(p)
		p = strings.TrimLeft(p, "*")
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		name, rest := splitParamName(p)
		_ = name // the parameter's own name is a binding, not a reference
		refs = append(refs, rest)
	}

	// Return annotation, if present: "... ) -> Type:"
	if close+1 < len(header) {
		tail := header[close+1:]
		if idx := strings.Index(tail, "->"); idx >= 0 {
			ret := tail[idx+2:]
			ret = strings.TrimSuffix(strings.TrimSpace(ret), ":")
			refs = append(refs, ret)
		}
	}

	return strings.Join(refs, "\n")
}

// splitParamName separates a parameter clause into its bare name and the
// remainder (annotation and/or default expression, with their leading
// ':'/'=' stripped off).
func splitParamName(param string) (name, rest string) {
	i := 0
	for i < len(param) && isIdentByte(param[i], i == 0) {
		i++
	}
	name = param[:i]
	rest = strings.TrimSpace(param[i:])
	rest = strings.TrimPrefix(rest, ":")
	if eq := topLevelByte(rest, '='); eq >= 0 {
		rest = rest[:eq] + " " + rest[eq+1:]
	}
	return name, rest
}

func isIdentByte(c byte, first bool) bool {
	if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return true
	}
	if !first && c >= '0' && c <= '9' {
		return true
	}
	return false
}

// classBasesText extracts the parenthesized base-class/keyword-argument
// list from a class header, e.g. "(Base, metaclass=M)".
func classBasesText(header string) string {
	open := strings.IndexByte(header, '(')
	if open < 0 {
		return ""
	}
	close := matchingParen(header, open)
	if close < 0 {
		close = len(header) - 1
	}
	return header[open+1 : close]
}

// rhsText returns the text of an assignment/annotated-assignment/
// augmented-assignment after its target(s): everything after the last
// top-level '=' (so chained targets and an annotation are skipped), or,
// when there is no such '=', everything after the first top-level ':'.
func rhsText(header string) string {
	depth := 0
	lastEquals := -1
	firstColon := -1
	for i := 0; i < len(header); i++ {
		switch header[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 && firstColon < 0 {
				firstColon = i
			}
		case '=':
			if depth != 0 {
				continue
			}
			prev, next := byte(0), byte(0)
			if i > 0 {
				prev = header[i-1]
			}
			if i+1 < len(header) {
				next = header[i+1]
			}
			if prev == '=' || prev == '!' || prev == '<' || prev == '>' || next == '=' {
				continue
			}
			lastEquals = i
		}
	}
	if lastEquals >= 0 {
		return header[lastEquals+1:]
	}
	if firstColon >= 0 {
		return header[firstColon+1:]
	}
	return ""
}

// splitParams splits a parameter list on its top-level commas (i.e. not
// commas nested inside a default value's own brackets).
func splitParams(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if start <= len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}

func topLevelByte(s string, target byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case target:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func matchingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
