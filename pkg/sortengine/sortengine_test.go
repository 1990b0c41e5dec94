package sortengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poma-odoo/odoo-sort-go/pkg/core"
)

func TestSort_ReorderTopLevel(t *testing.T) {
	input := "\ndef public():\n    return _private()\n\ndef _private():\n    pass\n"

	out, err := Sort([]byte(input), Options{Filename: "t.py"})
	require.NoError(t, err)

	text := string(out)
	privateIdx := indexOf(t, text, "def _private")
	publicIdx := indexOf(t, text, "def public")
	assert.Less(t, privateIdx, publicIdx, "_private must come before public")
}

func TestSort_CRLFPreserved(t *testing.T) {
	input := []byte("a = b\r\nb = 4")

	out, err := Sort(input, Options{Filename: "t.py"})
	require.NoError(t, err)
	assert.Equal(t, "b = 4\r\na = b\r\n", string(out))
}

func TestSort_SyntaxErrorRaises(t *testing.T) {
	input := []byte("a =")

	_, err := Sort(input, Options{
		Filename:     "t.py",
		OnParseError: "raise",
	})
	require.Error(t, err)

	var perr *core.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, 4, perr.Column)
}

func TestSort_UnresolvedRaises(t *testing.T) {
	input := []byte("def fun():\n    unresolved()")

	_, err := Sort(input, Options{
		Filename:     "t.py",
		OnUnresolved: "raise",
	})
	require.Error(t, err)

	var rerr *core.ResolutionError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "unresolved", rerr.Name)
	assert.Equal(t, 2, rerr.Line)
	assert.Equal(t, 4, rerr.Column)
}

func TestSort_WildcardImportRaises(t *testing.T) {
	input := []byte("from module import *")

	_, err := Sort(input, Options{
		Filename:         "t.py",
		OnWildcardImport: "raise",
	})
	require.Error(t, err)

	var werr *core.WildcardImportError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, 1, werr.Line)
	assert.Equal(t, 0, werr.Column)
}

func TestSort_UnknownEncodingIgnored(t *testing.T) {
	input := []byte("# coding=invalid-encoding\n")

	out, err := Sort(input, Options{
		Filename:          "t.py",
		OnUnknownEncoding: "ignore",
	})
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestSort_Idempotent(t *testing.T) {
	input := []byte("\ndef public():\n    return _private()\n\ndef _private():\n    pass\n")

	once, err := Sort(input, Options{Filename: "t.py"})
	require.NoError(t, err)

	twice, err := Sort(once, Options{Filename: "t.py"})
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestSort_ClassMethodParamsAndLocalsNotUnresolved(t *testing.T) {
	input := []byte("from odoo import models\n\n" +
		"class SaleOrder(models.Model):\n" +
		"    _name = 'sale.order'\n\n" +
		"    def create(self, vals):\n" +
		"        result = super().create(vals)\n" +
		"        return result\n\n" +
		"    def _compute_total(self):\n" +
		"        for record in self:\n" +
		"            record.total = sum(record.line_ids.mapped('amount'))\n")

	_, err := Sort(input, Options{
		Filename:     "t.py",
		OnUnresolved: "raise",
	})
	require.NoError(t, err, "method parameters and locals must not read as unresolved module-scope references")
}

func TestSort_NoOpCleanliness(t *testing.T) {
	input := []byte("def _private():\n    pass\n\ndef public():\n    return _private()\n")

	out, err := Sort(input, Options{Filename: "t.py"})
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	t.Fatalf("%q not found in %q", needle, haystack)
	return -1
}
