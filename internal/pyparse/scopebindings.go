package pyparse

import (
	"regexp"
	"strings"
)

var (
	reNestedDef   = regexp.MustCompile(`\bdef\s+(\w+)\s*\(`)
	reNestedClass = regexp.MustCompile(`\bclass\s+(\w+)`)
	reLambdaKw    = regexp.MustCompile(`\blambda\b`)
	reForTarget   = regexp.MustCompile(`\bfor\s+(.+?)\s+in\b`)
	reAsTarget    = regexp.MustCompile(`\bas\s+([A-Za-z_][A-Za-z0-9_]*)`)
)

// NestedScopeBindings scans text - an arbitrary, possibly multi-line,
// possibly multi-statement blob such as a function's whole body or a
// class's whole text - for every name bound by a scope nested inside
// it: a nested def's or class's name, a def's or lambda's parameters, a
// for-loop's or comprehension's target(s), a with/except "as" name, or a
// plain assignment.
//
// It's depth-independent: a name is reported if it's bound *anywhere*
// in text, regardless of which specific nested construct binds it or
// where that construct's own scope ends. That's exactly what a caller
// needs to know a name is never a reference to whatever scope encloses
// text - spec.md §3's "no inner scope rebinds that name before the use
// site" resolution rule, applied the same way CPython treats a name
// assigned anywhere in a function as local to the whole function body,
// not just after the assignment.
func NestedScopeBindings(text string) []string {
	var names []string

	for _, loc := range reNestedDef.FindAllStringSubmatchIndex(text, -1) {
		names = append(names, text[loc[2]:loc[3]])
		open := loc[1] - 1 // the match ends right after the '('
		close := matchParenFrom(text, open)
		if close < 0 {
			continue
		}
		names = append(names, paramNames(text[open+1:close])...)
	}

	for _, m := range reNestedClass.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}

	for _, loc := range reLambdaKw.FindAllStringIndex(text, -1) {
		names = append(names, paramNames(lambdaParamsClause(text, loc[1]))...)
	}

	for _, m := range reForTarget.FindAllStringSubmatch(text, -1) {
		names = append(names, targetNames(m[1])...)
	}

	for _, m := range reAsTarget.FindAllStringSubmatch(text, -1) {
		names = append(names, m[1])
	}

	for _, line := range strings.Split(text, "\n") {
		if targets, _, ok := assignmentTargets(strings.TrimSpace(line)); ok {
			names = append(names, targets...)
		}
	}

	return names
}

// lambdaParamsClause returns the parameter-list text of a lambda whose
// "lambda" keyword ends at pos, up to its terminating top-level colon
// (or an enclosing bracket close, for a lambda that's itself nested
// inside one - e.g. a dict value: "{'k': lambda: None}").
func lambdaParamsClause(text string, pos int) string {
	depth := 0
	for i := pos; i < len(text); i++ {
		switch text[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth == 0 {
				return text[pos:i]
			}
			depth--
		case ':':
			if depth == 0 {
				return text[pos:i]
			}
		}
	}
	return text[pos:]
}

// paramNames extracts bare parameter names from a def/lambda parameter
// list, ignoring annotations, defaults, and */** markers.
func paramNames(params string) []string {
	var names []string
	for _, p := range splitTopLevel(params, ',') {
		p = strings.TrimSpace(p)
		p = strings.TrimLeft(p, "*")
		p = strings.TrimSpace(p)
		if p == "" || !isIdentStart(p[0]) {
			continue
		}
		j := 1
		for j < len(p) && isIdentPart(p[j]) {
			j++
		}
		names = append(names, p[:j])
	}
	return names
}

// targetNames extracts bare identifier names from a for-loop's (or
// comprehension's) target clause, e.g. "k, v" or "(a, b)". Attribute or
// subscript targets (rare as loop variables) are skipped rather than
// risk excluding the wrong name.
func targetNames(clause string) []string {
	clause = strings.TrimSpace(clause)
	clause = strings.Trim(clause, "()")
	var names []string
	for _, p := range splitTopLevel(clause, ',') {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, "()")
		p = strings.TrimSpace(p)
		if p == "" || !isIdentStart(p[0]) {
			continue
		}
		j := 1
		for j < len(p) && isIdentPart(p[j]) {
			j++
		}
		if j == len(p) {
			names = append(names, p)
		}
	}
	return names
}

// matchParenFrom returns the index of the ')' matching the '(' at s[open].
func matchParenFrom(s string, open int) int {
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
