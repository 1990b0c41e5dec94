// Package encoding handles the bytes<->text boundary of a source file:
// detecting a `# coding: ...` declaration (PEP 263) the way Python's own
// tokenizer does, decoding/encoding under it, and detecting/normalizing
// the dominant newline convention. Grounded on golang.org/x/text's
// charmap/unicode encoders, an indirect dependency across a large share
// of the retrieval pack, promoted here to a direct, named one because
// nothing else in the pack needs a codec registry as literally as a
// source-file encoding declaration does.
package encoding

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// codingDeclaration matches a PEP 263 coding comment on either of the
// first two lines of a source file.
var codingDeclaration = regexp.MustCompile(`^#.*coding[:=]\s*([-\w.]+)`)

// DetectDeclaredEncoding scans the first two lines of source for a
// coding declaration and returns the normalized codec name, or "" if
// none is present (the caller should then assume UTF-8).
func DetectDeclaredEncoding(source []byte) string {
	lines := bytes.SplitN(source, []byte("\n"), 3)
	limit := len(lines)
	if limit > 2 {
		limit = 2
	}
	for i := 0; i < limit; i++ {
		if m := codingDeclaration.FindSubmatch(lines[i]); m != nil {
			return normalizeName(string(m[1]))
		}
	}
	return ""
}

func normalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_", "-")
	return name
}

// known maps the handful of encoding names a coding declaration can
// realistically name to a golang.org/x/text Encoding. Anything else is
// an UnknownEncoding.
var known = map[string]encoding.Encoding{
	"utf-8":       unicode.UTF8,
	"utf8":        unicode.UTF8,
	"ascii":       charmap.ISO8859_1, // ASCII is a strict subset; invalid bytes still fail to decode
	"us-ascii":    charmap.ISO8859_1,
	"latin-1":     charmap.ISO8859_1,
	"latin1":      charmap.ISO8859_1,
	"iso-8859-1":  charmap.ISO8859_1,
	"iso8859-1":   charmap.ISO8859_1,
	"cp1252":      charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
	"utf-16":      unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf16":       unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
}

// Lookup resolves a normalized encoding name to a codec, reporting ok=
// false for names the decoder doesn't know.
func Lookup(name string) (encoding.Encoding, bool) {
	if name == "" {
		return unicode.UTF8, true
	}
	enc, ok := known[normalizeName(name)]
	return enc, ok
}

// Decode decodes source under the named encoding. ascii is validated
// strictly (any byte >= 0x80 is a decoding error) even though it shares
// iso-8859-1's codec table, matching Python's distinct ascii codec.
func Decode(source []byte, name string) (string, error) {
	if normalizeName(name) == "ascii" || normalizeName(name) == "us-ascii" {
		for i, b := range source {
			if b >= 0x80 {
				return "", &asciiRangeError{pos: i, b: b}
			}
		}
	}
	enc, ok := Lookup(name)
	if !ok {
		enc = unicode.UTF8
	}
	out, err := enc.NewDecoder().Bytes(source)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Encode encodes text under the named encoding.
func Encode(text string, name string) ([]byte, error) {
	enc, ok := Lookup(name)
	if !ok {
		enc = unicode.UTF8
	}
	return enc.NewEncoder().Bytes([]byte(text))
}

type asciiRangeError struct {
	pos int
	b   byte
}

func (e *asciiRangeError) Error() string {
	return "'ascii' codec can't decode byte " + hexByte(e.b) + " in position " + itoa(e.pos) + ": ordinal not in range(128)"
}

func hexByte(b byte) string {
	const hexDigits = "0123456789abcdef"
	return "0x" + string(hexDigits[b>>4]) + string(hexDigits[b&0xf])
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// Newline is one of the three line terminators a source file can use.
type Newline string

const (
	LF   Newline = "\n"
	CRLF Newline = "\r\n"
	CR   Newline = "\r"
)

// DetectNewline reports the dominant line terminator used in text,
// defaulting to LF for text with no line breaks at all. CRLF is checked
// before bare CR/LF since every CRLF sequence would otherwise also match
// as one LF and one CR.
func DetectNewline(text string) Newline {
	crlf := strings.Count(text, "\r\n")
	lfOnly := strings.Count(text, "\n") - crlf
	crOnly := strings.Count(text, "\r") - crlf

	if crlf >= lfOnly && crlf >= crOnly && crlf > 0 {
		return CRLF
	}
	if crOnly > lfOnly {
		return CR
	}
	return LF
}

// NormalizeNewlines rewrites text's line terminators to bare "\n".
func NormalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// RestoreNewlines rewrites a "\n"-terminated text back to the given
// newline convention.
func RestoreNewlines(text string, nl Newline) string {
	if nl == LF {
		return text
	}
	return strings.ReplaceAll(text, "\n", string(nl))
}
