package pyparse

// scanState tracks the lexical context a character-by-character scan needs
// to carry across calls: whether we're inside a string literal (and which
// kind), so that brackets, colons and identifiers inside strings are never
// mistaken for syntax.
type scanState struct {
	inString    bool
	quote       byte // ' or "
	triple      bool
	escaped     bool
	inComment   bool
	bracketDepth int
}

// stepLine advances the scanner over one physical line (no trailing
// newline), updating the bracket depth and string state it carries, and
// reports whether the line ends with a backslash continuation outside any
// string or comment.
func (s *scanState) stepLine(line string) (continues bool) {
	s.inComment = false
	i := 0
	for i < len(line) {
		c := line[i]

		if s.inComment {
			break
		}

		if s.inString {
			if s.escaped {
				s.escaped = false
				i++
				continue
			}
			if c == '\\' {
				s.escaped = true
				i++
				continue
			}
			if c == s.quote {
				if s.triple {
					if i+2 < len(line) && line[i+1] == s.quote && line[i+2] == s.quote {
						s.inString = false
						i += 3
						continue
					}
				} else {
					s.inString = false
					i++
					continue
				}
			}
			i++
			continue
		}

		switch c {
		case '#':
			s.inComment = true
		case '\'', '"':
			s.inString = true
			s.quote = c
			s.triple = i+2 < len(line) && line[i+1] == c && line[i+2] == c
			if s.triple {
				i += 2
			}
		case '(', '[', '{':
			s.bracketDepth++
		case ')', ']', '}':
			if s.bracketDepth > 0 {
				s.bracketDepth--
			}
		}
		i++
	}

	if s.inString && s.triple {
		// Triple-quoted strings carry their own continuation; a trailing
		// backslash inside one is just a character.
		return false
	}

	trimmed := len(line)
	for trimmed > 0 && (line[trimmed-1] == ' ' || line[trimmed-1] == '\t' || line[trimmed-1] == '\r') {
		trimmed--
	}
	return !s.inComment && !s.inString && trimmed > 0 && line[trimmed-1] == '\\'
}

// atStatementBoundary reports whether, after stepLine, we're outside every
// bracket/string/continuation - i.e. a logical line could legally end here.
func (s *scanState) atStatementBoundary(continues bool) bool {
	return s.bracketDepth == 0 && !s.inString && !continues
}

// isIdentStart / isIdentPart follow Python's identifier rules closely
// enough for ASCII source, which is all Odoo modules use for names.
func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// IsKeyword reports whether name is a Python reserved word (including
// "self"/"cls", which are never meaningful as cross-statement
// references).
func IsKeyword(name string) bool {
	return pythonKeywords[name]
}

var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true, "as": true,
	"assert": true, "async": true, "await": true, "break": true, "class": true,
	"continue": true, "def": true, "del": true, "elif": true, "else": true,
	"except": true, "finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true, "lambda": true,
	"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
	"return": true, "try": true, "while": true, "with": true, "yield": true,
	"self": true, "cls": true,
}
