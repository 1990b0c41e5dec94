package pybind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poma-odoo/odoo-sort-go/internal/pyparse"
)

func TestFreeNameOccurrences_Position(t *testing.T) {
	text := "def fun():\n    unresolved()"
	stmts, perr := pyparse.Parse(text, "t.py")
	require.Nil(t, perr)
	require.Len(t, stmts, 1)

	occs := FreeNameOccurrences(stmts[0])
	require.Len(t, occs, 1)
	assert.Equal(t, "unresolved", occs[0].Name)
	assert.Equal(t, 2, occs[0].Line)
	assert.Equal(t, 4, occs[0].Column)
}

func TestFreeNameOccurrences_ExcludesOwnBinding(t *testing.T) {
	text := "def fun():\n    return fun()"
	stmts, perr := pyparse.Parse(text, "t.py")
	require.Nil(t, perr)
	require.Len(t, stmts, 1)

	occs := FreeNameOccurrences(stmts[0])
	assert.Empty(t, occs)
}

func TestHardReferences_SkipsFunctionBody(t *testing.T) {
	text := "def fun(x=default_value):\n    return body_only_name()"
	stmts, perr := pyparse.Parse(text, "t.py")
	require.Nil(t, perr)
	require.Len(t, stmts, 1)

	hard := HardReferences(stmts[0])
	assert.Contains(t, hard, "default_value")
	assert.NotContains(t, hard, "body_only_name")
}

func TestSoftReferences_OnlyFunctionBody(t *testing.T) {
	text := "def fun(x=default_value):\n    return body_only_name()"
	stmts, perr := pyparse.Parse(text, "t.py")
	require.Nil(t, perr)
	require.Len(t, stmts, 1)

	soft := SoftReferences(stmts[0])
	assert.Contains(t, soft, "body_only_name")
	assert.NotContains(t, soft, "default_value")
}

func TestFreeNameOccurrences_ExcludesParamsAndLocals(t *testing.T) {
	text := "def f(vals):\n    x = vals\n    return x"
	stmts, perr := pyparse.Parse(text, "t.py")
	require.Nil(t, perr)
	require.Len(t, stmts, 1)

	occs := FreeNameOccurrences(stmts[0])
	assert.Empty(t, occs, "vals (a parameter) and x (a local) must not be free names")
}

func TestFreeNameOccurrences_ExcludesForAndWithTargets(t *testing.T) {
	text := "def f(records):\n" +
		"    for record in records:\n" +
		"        with record.env.cr.savepoint() as sp:\n" +
		"            pass\n"
	stmts, perr := pyparse.Parse(text, "t.py")
	require.Nil(t, perr)
	require.Len(t, stmts, 1)

	names := FreeNames(stmts[0])
	assert.NotContains(t, names, "record")
	assert.NotContains(t, names, "sp")
	assert.NotContains(t, names, "records")
}

func TestSoftReferences_ExcludesParamsAndLocals(t *testing.T) {
	text := "def f(vals):\n    result = vals\n    return result"
	stmts, perr := pyparse.Parse(text, "t.py")
	require.Nil(t, perr)
	require.Len(t, stmts, 1)

	soft := SoftReferences(stmts[0])
	assert.Empty(t, soft)
}

func TestSplitParams_TopLevelCommasOnly(t *testing.T) {
	got := splitParams("a, b=[1, 2], c: Dict[str, int]={}")
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0])
	assert.Equal(t, " b=[1, 2]", got[1])
	assert.Equal(t, " c: Dict[str, int]={}", got[2])
}
