package obuckets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poma-odoo/odoo-sort-go/internal/pyparse"
)

func parseOne(t *testing.T, text string) *pyparse.Statement {
	t.Helper()
	stmts, perr := pyparse.Parse(text, "t.py")
	require.Nil(t, perr)
	require.Len(t, stmts, 1)
	return stmts[0]
}

func TestIsDocstring(t *testing.T) {
	stmt := parseOne(t, "\"\"\"doc\"\"\"\n")
	assert.True(t, IsDocstring(stmt))
}

func TestIsSpecialProperty(t *testing.T) {
	stmt := parseOne(t, "__slots__ = ()\n")
	assert.True(t, IsSpecialProperty(stmt))
}

func TestIsOdooPrivateAttribute(t *testing.T) {
	stmt := parseOne(t, "_name = 'sale.order'\n")
	assert.True(t, IsOdooPrivateAttribute(stmt))
	assert.False(t, IsPrivateAttribute(stmt))
}

func TestIsPrivateAttribute_NonOdooUnderscore(t *testing.T) {
	stmt := parseOne(t, "_cache = {}\n")
	assert.False(t, IsOdooPrivateAttribute(stmt))
	assert.True(t, IsPrivateAttribute(stmt))
}

func TestIsField(t *testing.T) {
	stmt := parseOne(t, "name = fields.Char()\n")
	assert.True(t, IsField(stmt))
	assert.False(t, IsProperty(stmt) && !IsField(stmt))
}

func TestIsProperty_CatchAllAssignment(t *testing.T) {
	stmt := parseOne(t, "state = 'draft'\n")
	assert.True(t, IsProperty(stmt))
	assert.False(t, IsField(stmt))
}

func TestIsDefaultMethod(t *testing.T) {
	getter := parseOne(t, "def default_get(self, fields_list):\n    return {}\n")
	hook := parseOne(t, "def _default_user(self):\n    return self.env.user\n")
	assert.True(t, IsDefaultMethod(getter))
	assert.True(t, IsDefaultMethod(hook))
}

func TestIsComputeMethod_ByDecoratorOrName(t *testing.T) {
	byDecorator := parseOne(t, "@api.depends('x')\ndef _compute_total(self):\n    pass\n")
	byName := parseOne(t, "def _compute_total(self):\n    pass\n")
	assert.True(t, IsComputeMethod(byDecorator))
	assert.True(t, IsComputeMethod(byName))
}

func TestIsConstraintMethod(t *testing.T) {
	stmt := parseOne(t, "@api.constrains('x')\ndef _check_x(self):\n    pass\n")
	assert.True(t, IsConstraintMethod(stmt))
}

func TestIsOnchangeMethod(t *testing.T) {
	stmt := parseOne(t, "@api.onchange('x')\ndef _onchange_x(self):\n    pass\n")
	assert.True(t, IsOnchangeMethod(stmt))
}

func TestIsORMOverride(t *testing.T) {
	stmt := parseOne(t, "def create(self, vals):\n    return super().create(vals)\n")
	assert.True(t, IsORMOverride(stmt))
}

func TestIsAction(t *testing.T) {
	stmt := parseOne(t, "def action_confirm(self):\n    pass\n")
	assert.True(t, IsAction(stmt))
}

func TestIsLifecycleOperation(t *testing.T) {
	stmt := parseOne(t, "def __init__(self):\n    pass\n")
	assert.True(t, IsLifecycleOperation(stmt))
}

func TestIsRegularOperation(t *testing.T) {
	stmt := parseOne(t, "def __repr__(self):\n    return ''\n")
	assert.True(t, IsRegularOperation(stmt))
}

func TestIsClass(t *testing.T) {
	stmt := parseOne(t, "class Inner:\n    pass\n")
	assert.True(t, IsClass(stmt))
}
