package pybind

import "github.com/poma-odoo/odoo-sort-go/internal/pyparse"

// occurrence is one bare-name read found by scan, positioned as a
// 0-based (line, column) offset within the text that was scanned.
type occurrence struct {
	name string
	line int
	col  int
}

// identifiers scans text for bare-name reads, skipping string/comment
// content, attribute-access tails (the part after a '.'), and keyword-
// argument names in call position (an identifier immediately followed by
// '=' at bracket depth > 0, which binds a parameter name rather than
// reading one). `ownBindings` excludes the statement's own binding names
// so a function/class never "references" itself merely by name.
func identifiers(text string, ownBindings []string) []string {
	occs := scan(text, ownBindings)
	names := make([]string, len(occs))
	for i, o := range occs {
		names[i] = o.name
	}
	return names
}

// scan walks text byte-by-byte, returning every bare-name read along
// with its (line, column) position (both 0-based, relative to text's own
// start) - the position a caller needs to map back to an absolute source
// location for a diagnostic.
func scan(text string, ownBindings []string) []occurrence {
	own := make(map[string]bool, len(ownBindings))
	for _, b := range ownBindings {
		own[b] = true
	}

	var occs []occurrence
	var st scanState
	depth := 0
	prevNonSpace := byte(0)
	line, col := 0, 0

	i := 0
	for i < len(text) {
		c := text[i]

		consumed := st.stepChar(c)
		if consumed {
			if c == '\n' {
				line++
				col = 0
			} else {
				col++
			}
			i++
			continue
		}

		switch {
		case c == '(' || c == '[' || c == '{':
			depth++
			prevNonSpace = c
			i++
			col++
		case c == ')' || c == ']' || c == '}':
			if depth > 0 {
				depth--
			}
			prevNonSpace = c
			i++
			col++
		case isIdentStartByte(c):
			j := i + 1
			for j < len(text) && isIdentContByte(text[j]) {
				j++
			}
			word := text[i:j]

			afterDot := prevNonSpace == '.'
			kwargName := depth > 0 && prevNonSpace != '.' && followedByKwargEquals(text, j)

			if !afterDot && !kwargName && !pyparse.IsKeyword(word) && !IsBuiltin(word) && !own[word] {
				occs = append(occs, occurrence{name: word, line: line, col: col})
			}

			prevNonSpace = lastNonSpaceOf(word)
			col += j - i
			i = j
		case c == '\n':
			i++
			line++
			col = 0
		case c == ' ' || c == '\t' || c == '\r':
			i++
			col++
		default:
			// Any other punctuation (including '.') becomes the new
			// "previous non-space" byte, so a dot can mark the next
			// identifier as an attribute-access tail.
			prevNonSpace = c
			i++
			col++
		}
	}

	return occs
}

func lastNonSpaceOf(word string) byte {
	if len(word) == 0 {
		return 0
	}
	return word[len(word)-1]
}

// followedByKwargEquals reports whether, skipping whitespace from index
// pos, the next character is '=' not followed by another '=' (i.e. not
// "=="). Used to recognize `name=value` keyword-argument syntax inside a
// call so the parameter name isn't mistaken for a reference.
func followedByKwargEquals(text string, pos int) bool {
	j := pos
	for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
		j++
	}
	if j >= len(text) || text[j] != '=' {
		return false
	}
	if j+1 < len(text) && text[j+1] == '=' {
		return false
	}
	return true
}

func isIdentStartByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentContByte(c byte) bool {
	return isIdentStartByte(c) || (c >= '0' && c <= '9')
}

// scanState tracks whether the scanner is inside a string or comment so
// that identifier-shaped substrings there are never mistaken for
// references. It deliberately only advances one byte at a time (unlike
// pyparse's line-oriented scanState) since identifiers() walks arbitrary
// multi-line expression text.
type scanState struct {
	inString  bool
	quote     byte
	escaped   bool
	inComment bool
}

// stepChar advances the scanner by one byte and reports whether that
// byte was consumed as part of string/comment content (and should not be
// considered for bracket/identifier scanning).
func (s *scanState) stepChar(c byte) bool {
	if s.inComment {
		if c == '\n' {
			s.inComment = false
		}
		return true
	}

	if s.inString {
		if s.escaped {
			s.escaped = false
			return true
		}
		if c == '\\' {
			s.escaped = true
			return true
		}
		if c == s.quote {
			s.inString = false
		}
		return true
	}

	switch c {
	case '#':
		s.inComment = true
		return true
	case '\'', '"':
		s.inString = true
		s.quote = c
		return true
	}
	return false
}
