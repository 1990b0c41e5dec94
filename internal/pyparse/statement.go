package pyparse

import (
	"regexp"
	"strings"

	"github.com/poma-odoo/odoo-sort-go/pkg/core"
)

// Kind classifies a Statement enough to drive bucket predicates and
// binding extraction. It deliberately doesn't model the full Python
// grammar - only the shapes odoo-sort-go's rules care about.
type Kind int

const (
	KindOther Kind = iota
	KindImport
	KindFunctionDef
	KindClassDef
	KindDocstring
	KindAssign
	KindAnnAssign
	KindAugAssign
)

// Statement is one top-level (or one class-body) unit of source: its
// text span (verbatim for a top-level statement; for a class-body
// statement, the same lines with the body's indentation removed), what
// names it binds into its enclosing scope, and (for defs) which
// decorators it carries.
type Statement struct {
	Kind           Kind
	Text           string
	Line           int
	Column         int
	bindings       []string
	Decorators     []string // decorator attribute names, e.g. "depends", "constrains"
	bodyLines      []string // dedented class-body lines, only set for KindClassDef
	headerText     string   // header through the trailing colon (decorators excluded)
	decoratorsText string   // decorator lines, verbatim, joined with "\n"
	suiteText      string   // raw (non-dedented) suite body, only set for compound statements
	textLine       int      // absolute 1-based line of Text's first line (may precede Line via leading blanks/comments/decorators)
}

// TextLine returns the absolute 1-based source line of Text's first
// line, which can sit above Line when blank lines, comments, or
// decorators precede the statement's header.
func (s *Statement) TextLine() int {
	return s.textLine
}

// Bindings returns the names this statement introduces into its
// enclosing scope.
func (s *Statement) Bindings() []string {
	return s.bindings
}

// HeaderText returns the statement's header - the signature/class/def
// line(s) through the trailing colon for compound statements, or the
// whole statement for simple ones - with any decorators excluded. Used
// by the binding/reference analyzer to scope hard references to the part
// of a statement evaluated at load time.
func (s *Statement) HeaderText() string {
	return s.headerText
}

// DecoratorsText returns the verbatim decorator lines preceding this
// statement, or "" if it has none.
func (s *Statement) DecoratorsText() string {
	return s.decoratorsText
}

// SuiteText returns the raw (non-dedented) body of a compound statement
// (function/class/if/for/...), or "" for a simple statement.
func (s *Statement) SuiteText() string {
	return s.suiteText
}

var (
	reImportSimple = regexp.MustCompile(`^import\s+(.+)$`)
	reImportFrom   = regexp.MustCompile(`^from\s+[.\w]+\s+import\s+(.+)$`)
	reDef          = regexp.MustCompile(`^(?:async\s+)?def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
	reClass        = regexp.MustCompile(`^class\s+([A-Za-z_][A-Za-z0-9_]*)\s*[(:]`)
	reDecorator    = regexp.MustCompile(`^@\s*([A-Za-z_][A-Za-z0-9_.]*)`)
	reDocstring    = regexp.MustCompile(`^[rRbBuU]{0,2}("""|'''|"|')`)
)

// Parse segments module-level text into a sequence of Statements, per the
// module-statement contract: each blank line and comment immediately
// preceding a statement is carried as part of that statement's Text, so
// that concatenating every returned statement's Text reproduces `text`
// modulo leading/trailing whitespace.
func Parse(text, filename string) ([]*Statement, *core.ParseError) {
	lines := strings.Split(text, "\n")
	// A trailing split artifact from the final "\n" - drop the empty tail
	// line so indentation scanning doesn't see a phantom last line.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return parseBlock(lines, 0, 1)
}

// parseBlock segments `lines` (already dedented so the block's own
// statements sit at indent 0) into Statements, starting at 1-based source
// line `lineOffset`.
func parseBlock(lines []string, blockIndent, lineOffset int) ([]*Statement, *core.ParseError) {
	var statements []*Statement
	i := 0
	for i < len(lines) {
		groupStart := i
		contentStart := -1
		var decoratorTexts []string
		var decoratorNames []string

		for i < len(lines) {
			if isBlankOrComment(lines[i]) {
				i++
				continue
			}
			if contentStart == -1 {
				contentStart = i
			}
			if indentOf(lines[i]) != blockIndent {
				break
			}
			trimmed := strings.TrimSpace(lines[i])
			if m := reDecorator.FindStringSubmatch(trimmed); m != nil {
				end := logicalLineEnd(lines, i)
				decoratorTexts = append(decoratorTexts, strings.Join(lines[i:end+1], "\n"))
				decoratorNames = append(decoratorNames, lastDotComponent(m[1]))
				i = end + 1
				continue
			}
			break
		}

		if i >= len(lines) {
			// Trailing blank/comment lines with no following statement:
			// attach them to the previous statement if any, else drop.
			if len(statements) > 0 && i > groupStart {
				prev := statements[len(statements)-1]
				prev.Text += "\n" + strings.Join(lines[groupStart:i], "\n")
			}
			break
		}

		leadingGap := lines[groupStart:contentStart]
		headerStart := i
		if indentOf(lines[headerStart]) != blockIndent {
			// Unexpected indentation drift; surface as a parse error the
			// way a real parser would reject inconsistent indentation.
			return nil, &core.ParseError{Message: "unexpected indent", Line: lineOffset + headerStart, Column: indentOf(lines[headerStart]) + 1}
		}

		headerEnd := logicalLineEnd(lines, headerStart)
		headerJoined := strings.Join(lines[headerStart:headerEnd+1], "\n")
		headerTrimmed := strings.TrimRight(headerJoined, " \t")

		stmt := &Statement{Line: lineOffset + headerStart, Column: indentOf(lines[headerStart]) + 1}
		stmt.Decorators = decoratorNames
		stmt.textLine = lineOffset + groupStart

		bodyEnd := headerEnd
		isCompoundHeader := strings.HasSuffix(strings.TrimSpace(lastLine(headerJoined)), ":")

		if isCompoundHeader {
			bodyEnd = findSuiteEnd(lines, blockIndent, headerEnd+1)
		}

		fullLines := append(append([]string{}, decoratorTexts...), lines[headerStart:bodyEnd+1]...)
		fullText := strings.Join(fullLines, "\n")
		if len(leadingGap) > 0 {
			fullText = strings.Join(leadingGap, "\n") + "\n" + fullText
		}
		stmt.Text = fullText
		stmt.headerText = headerJoined
		stmt.decoratorsText = strings.Join(decoratorTexts, "\n")
		if isCompoundHeader && bodyEnd >= headerEnd+1 {
			stmt.suiteText = strings.Join(lines[headerEnd+1:bodyEnd+1], "\n")
		}

		classify(stmt, headerTrimmed)

		if col, ok := emptyAssignmentRHSColumn(stmt.Kind, headerTrimmed); ok {
			return nil, &core.ParseError{Message: "invalid syntax", Line: stmt.Line, Column: col}
		}

		if stmt.Kind == KindClassDef {
			classIndent := indentOf(lines[headerStart])
			bodyIndent := classIndent + bodyIndentStep(lines, headerEnd+1, bodyEnd)
			stmt.bodyLines = dedent(lines[headerEnd+1:bodyEnd+1], bodyIndent)
		}

		statements = append(statements, stmt)
		i = bodyEnd + 1
	}

	return statements, nil
}

// SplitClass separates a class statement into its head text (its Text
// from the start through the header's trailing colon, so leading blank
// lines, comments and decorators included) and the list of statements in
// its body, ready for independent reordering. Blank lines between the
// header and the first body statement belong to that statement's Text.
func SplitClass(classStatement *Statement) (string, []*Statement, *core.ParseError) {
	if classStatement.Kind != KindClassDef {
		return classStatement.Text, nil, nil
	}
	body, err := parseBlock(classStatement.bodyLines, 0, classStatement.Line+1)
	if err != nil {
		return "", nil, err
	}
	head := classStatement.headerText
	if pos := strings.LastIndex(classStatement.Text, classStatement.headerText+"\n"+classStatement.suiteText); pos >= 0 {
		head = classStatement.Text[:pos+len(classStatement.headerText)]
	}
	return head, body, nil
}

func classify(stmt *Statement, header string) {
	if m := reImportFrom.FindStringSubmatch(header); m != nil {
		stmt.Kind = KindImport
		stmt.bindings = importedNames(m[1])
		return
	}
	if m := reImportSimple.FindStringSubmatch(header); m != nil {
		stmt.Kind = KindImport
		stmt.bindings = importedNames(m[1])
		return
	}
	if m := reDef.FindStringSubmatch(header); m != nil {
		stmt.Kind = KindFunctionDef
		stmt.bindings = []string{m[1]}
		return
	}
	if m := reClass.FindStringSubmatch(header); m != nil {
		stmt.Kind = KindClassDef
		stmt.bindings = []string{m[1]}
		return
	}
	if reDocstring.MatchString(strings.TrimSpace(header)) && !strings.ContainsAny(strings.TrimSpace(header), "=(") {
		stmt.Kind = KindDocstring
		return
	}
	if targets, kind, ok := assignmentTargets(header); ok {
		stmt.Kind = kind
		stmt.bindings = targets
		return
	}
	stmt.Kind = KindOther
}

// importedNames extracts the names an import clause binds: the alias if
// given, else the leading dotted component (Python binds the top package
// for a bare `import a.b.c`).
func importedNames(clause string) []string {
	if strings.Contains(clause, "*") {
		return nil
	}
	clause = strings.Trim(clause, "()")
	items := splitTopLevel(clause, ',')
	var names []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if idx := strings.Index(item, " as "); idx >= 0 {
			names = append(names, strings.TrimSpace(item[idx+4:]))
			continue
		}
		dotted := strings.Fields(item)[0]
		top := strings.SplitN(dotted, ".", 2)[0]
		names = append(names, top)
	}
	return names
}

var (
	reAugAssign = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*(\+=|-=|\*=|/=|//=|%=|\*\*=|>>=|<<=|&=|\|=|\^=|@=)`)
)

// assignmentTargets recognizes simple, annotated, augmented, and chained
// assignment statements and returns the bare identifier targets that are
// bound at the current scope (attribute and subscript targets, e.g.
// `self.x = 1`, bind nothing here and are skipped).
func assignmentTargets(header string) ([]string, Kind, bool) {
	if m := reAugAssign.FindStringSubmatch(header); m != nil {
		return []string{m[1]}, KindAugAssign, true
	}

	eqPositions := topLevelAssignPositions(header)
	if len(eqPositions) == 0 {
		return nil, KindOther, false
	}

	lhs := header[:eqPositions[len(eqPositions)-1]]
	segments := strings.Split(lhs, "=")
	var targets []string
	kind := KindAssign
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if idx := strings.Index(seg, ":"); idx >= 0 && !strings.ContainsAny(seg[:idx], "([{") {
			seg = seg[:idx]
			kind = KindAnnAssign
		}
		for _, part := range splitTopLevel(strings.Trim(seg, "()[]"), ',') {
			part = strings.TrimSpace(part)
			if part == "" || strings.ContainsAny(part, ".[") {
				continue
			}
			if part != "" && isIdentStart(part[0]) {
				targets = append(targets, part)
			}
		}
	}
	if len(targets) == 0 {
		return nil, KindOther, false
	}
	return targets, kind, true
}

// emptyAssignmentRHSColumn reports whether an assignment/augmented-
// assignment statement's header ends right after its operator with no
// expression following it at all (e.g. "a ="), the one syntax error this
// line-oriented parser can detect without a real expression grammar. The
// returned column is 1-based, matching CPython's end-of-line offset for
// the same unexpected-EOF condition.
func emptyAssignmentRHSColumn(kind Kind, header string) (int, bool) {
	switch kind {
	case KindAssign, KindAnnAssign, KindAugAssign:
	default:
		return 0, false
	}
	if strings.TrimSpace(header) == "" {
		return 0, false
	}
	last := header[len(header)-1]
	if last == '=' || last == ':' {
		return len(header) + 1, true
	}
	return 0, false
}

// topLevelAssignPositions returns the byte offsets of every `=` that is a
// plain assignment operator (not `==`, `!=`, `<=`, `>=`, or inside
// brackets/strings/keyword-argument position), in header.
func topLevelAssignPositions(header string) []int {
	var positions []int
	depth := 0
	var quote byte
	for i := 0; i < len(header); i++ {
		c := header[i]
		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case '=':
			if depth != 0 {
				continue
			}
			prev := byte(0)
			if i > 0 {
				prev = header[i-1]
			}
			next := byte(0)
			if i+1 < len(header) {
				next = header[i+1]
			}
			if prev == '=' || prev == '!' || prev == '<' || prev == '>' || next == '=' {
				continue
			}
			positions = append(positions, i)
		}
	}
	return positions
}

// splitTopLevel splits s on sep at bracket depth 0.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		default:
			if s[i] == sep && depth == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}
	parts = append(parts, s[last:])
	return parts
}

func lastDotComponent(dotted string) string {
	parts := strings.Split(dotted, ".")
	return parts[len(parts)-1]
}

func indentOf(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

func isBlankOrComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

func lastLine(s string) string {
	idx := strings.LastIndexByte(s, '\n')
	if idx < 0 {
		return s
	}
	return s[idx+1:]
}

// logicalLineEnd returns the index of the last physical line belonging to
// the logical line starting at `start` (bracket/string/backslash aware).
func logicalLineEnd(lines []string, start int) int {
	var st scanState
	i := start
	for {
		continues := st.stepLine(lines[i])
		if st.atStatementBoundary(continues) {
			return i
		}
		if i+1 >= len(lines) {
			return i
		}
		i++
	}
}

// findSuiteEnd returns the index of the last line belonging to a suite
// that begins at `suiteStart` and whose header sits at `headerIndent`.
// Trailing blank/comment lines after the last real suite statement are
// left for the next statement's leading gap.
func findSuiteEnd(lines []string, headerIndent, suiteStart int) int {
	lastReal := suiteStart - 1
	i := suiteStart
	for i < len(lines) {
		if isBlankOrComment(lines[i]) {
			i++
			continue
		}
		if indentOf(lines[i]) <= headerIndent {
			break
		}
		end := logicalLineEnd(lines, i)
		lastReal = end
		i = end + 1
	}
	if lastReal < suiteStart-1 {
		return suiteStart - 1
	}
	return lastReal
}

// bodyIndentStep returns the indentation of the first non-blank line in
// lines[from:to], used to determine a class body's indent level.
func bodyIndentStep(lines []string, from, to int) int {
	for i := from; i <= to && i < len(lines); i++ {
		if isBlankOrComment(lines[i]) {
			continue
		}
		return indentOf(lines[i])
	}
	return 0
}

func dedent(lines []string, by int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		n := indentOf(line)
		if n > by {
			n = by
		}
		out[i] = line[n:]
	}
	return out
}

