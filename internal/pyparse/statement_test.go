package pyparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DecoratorNotDuplicated(t *testing.T) {
	text := "@property\ndef foo():\n    pass\n"
	stmts, perr := Parse(text, "t.py")
	require.Nil(t, perr)
	require.Len(t, stmts, 1)

	assert.Equal(t, 1, strings.Count(stmts[0].Text, "@property"))
	assert.Equal(t, "@property\ndef foo():\n    pass", stmts[0].Text)
}

func TestParse_DecoratorAfterBlankLines(t *testing.T) {
	text := "\n\n@property\ndef foo():\n    pass\n"
	stmts, perr := Parse(text, "t.py")
	require.Nil(t, perr)
	require.Len(t, stmts, 1)

	assert.Equal(t, 1, strings.Count(stmts[0].Text, "@property"))
	assert.Equal(t, 1, stmts[0].TextLine())
	assert.Equal(t, 4, stmts[0].Line)
}

func TestParse_EmptyAssignmentRHSIsSyntaxError(t *testing.T) {
	_, perr := Parse("a =", "t.py")
	require.NotNil(t, perr)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, 4, perr.Column)
}

func TestParse_ValidAssignmentNotFlagged(t *testing.T) {
	_, perr := Parse("a = 1\n", "t.py")
	assert.Nil(t, perr)
}

func TestSplitClass_ReturnsHeaderAndBody(t *testing.T) {
	text := "class Foo:\n    x = 1\n    y = 2\n"
	stmts, perr := Parse(text, "t.py")
	require.Nil(t, perr)
	require.Len(t, stmts, 1)
	require.Equal(t, KindClassDef, stmts[0].Kind)

	header, body, serr := SplitClass(stmts[0])
	require.Nil(t, serr)
	assert.Equal(t, "class Foo:", header)
	require.Len(t, body, 2)
	assert.Equal(t, []string{"x"}, body[0].Bindings())
	assert.Equal(t, []string{"y"}, body[1].Bindings())
}
