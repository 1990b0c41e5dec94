package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDeclaredEncoding(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"utf8 style", []byte("# coding: utf-8\nx = 1\n"), "utf-8"},
		{"emacs style", []byte("# -*- coding: latin-1 -*-\nx = 1\n"), "latin-1"},
		{"second line", []byte("#!/usr/bin/env python\n# coding=cp1252\nx = 1\n"), "cp1252"},
		{"none declared", []byte("x = 1\n"), ""},
		{"too late to count", []byte("x = 1\ny = 2\n# coding: utf-8\n"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDeclaredEncoding(tt.in))
		})
	}
}

func TestLookup(t *testing.T) {
	_, ok := Lookup("utf-8")
	assert.True(t, ok)

	_, ok = Lookup("invalid-encoding")
	assert.False(t, ok)

	_, ok = Lookup("")
	assert.True(t, ok)
}

func TestDecode_AsciiRejectsHighBytes(t *testing.T) {
	_, err := Decode([]byte{0xE9}, "ascii")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ordinal not in range(128)")
}

func TestDecodeEncode_RoundTrip(t *testing.T) {
	text, err := Decode([]byte("hello"), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	out, err := Encode(text, "utf-8")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), out)
}

func TestDetectNewline(t *testing.T) {
	assert.Equal(t, CRLF, DetectNewline("a = 1\r\nb = 2\r\n"))
	assert.Equal(t, LF, DetectNewline("a = 1\nb = 2\n"))
	assert.Equal(t, CR, DetectNewline("a = 1\rb = 2\r"))
	assert.Equal(t, LF, DetectNewline("a = 1"))
}

func TestNormalizeAndRestoreNewlines(t *testing.T) {
	normalized := NormalizeNewlines("a = 1\r\nb = 2\r")
	assert.Equal(t, "a = 1\nb = 2\n", normalized)

	restored := RestoreNewlines(normalized, CRLF)
	assert.Equal(t, "a = 1\r\nb = 2\r\n", restored)
}
