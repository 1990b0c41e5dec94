package obuckets

import (
	"strings"

	"github.com/poma-odoo/odoo-sort-go/internal/pyparse"
)

func containsAny(bindings []string, list []string) bool {
	set := make(map[string]bool, len(list))
	for _, n := range list {
		set[n] = true
	}
	for _, b := range bindings {
		if set[b] {
			return true
		}
	}
	return false
}

func allMatch(bindings []string, pred func(string) bool) bool {
	if len(bindings) == 0 {
		return false
	}
	for _, b := range bindings {
		if !pred(b) {
			return false
		}
	}
	return true
}

func anyMatch(bindings []string, pred func(string) bool) bool {
	for _, b := range bindings {
		if pred(b) {
			return true
		}
	}
	return false
}

func isAssignLike(stmt *pyparse.Statement) bool {
	return stmt.Kind == pyparse.KindAssign || stmt.Kind == pyparse.KindAnnAssign || stmt.Kind == pyparse.KindAugAssign
}

// IsDocstring matches a bare string-literal expression statement.
func IsDocstring(stmt *pyparse.Statement) bool {
	return stmt.Kind == pyparse.KindDocstring
}

// IsSpecialProperty matches __doc__/__slots__ assignments.
func IsSpecialProperty(stmt *pyparse.Statement) bool {
	return containsAny(stmt.Bindings(), SpecialProperties)
}

// IsOdooSpecialAttribute matches the attributes that come right after
// field declarations (_sql_constraints, init).
func IsOdooSpecialAttribute(stmt *pyparse.Statement) bool {
	return containsAny(stmt.Bindings(), OdooSpecialAttributes)
}

// IsLifecycleOperation matches construction/copying/metaclass/descriptor
// dunder methods.
func IsLifecycleOperation(stmt *pyparse.Statement) bool {
	return containsAny(stmt.Bindings(), LifecycleOperations)
}

// IsRegularOperation matches the remaining dunder protocol methods.
func IsRegularOperation(stmt *pyparse.Statement) bool {
	return containsAny(stmt.Bindings(), RegularOperations)
}

// IsOdooPrivateAttribute matches an assignment to one of Odoo's own
// model-configuration attributes (_name, _inherit, _order, ...).
func IsOdooPrivateAttribute(stmt *pyparse.Statement) bool {
	return isAssignLike(stmt) && containsAny(stmt.Bindings(), OdooPrivateAttributes)
}

// IsPrivateAttribute matches any other underscore-prefixed assignment.
func IsPrivateAttribute(stmt *pyparse.Statement) bool {
	if !isAssignLike(stmt) {
		return false
	}
	odooPrivate := make(map[string]bool, len(OdooPrivateAttributes))
	for _, n := range OdooPrivateAttributes {
		odooPrivate[n] = true
	}
	return allMatch(stmt.Bindings(), func(b string) bool {
		return strings.HasPrefix(b, "_") && !odooPrivate[b]
	})
}

// IsField matches an Odoo field declaration: a non-underscore assignment
// whose right-hand side calls into the fields module.
func IsField(stmt *pyparse.Statement) bool {
	if !isAssignLike(stmt) {
		return false
	}
	if !allMatch(stmt.Bindings(), func(b string) bool { return !strings.HasPrefix(b, "_") }) {
		return false
	}
	return strings.Index(stmt.Text, "fields.") > 0
}

// IsProperty matches any assignment (the catch-all bucket for plain class
// attributes that aren't fields or private attributes).
func IsProperty(stmt *pyparse.Statement) bool {
	return isAssignLike(stmt)
}

// IsDefaultMethod matches default_get or _default_* methods.
func IsDefaultMethod(stmt *pyparse.Statement) bool {
	return stmt.Kind == pyparse.KindFunctionDef && allMatch(stmt.Bindings(), func(b string) bool {
		return b == "default_get" || strings.HasPrefix(b, "_default_")
	})
}

func hasDecorator(stmt *pyparse.Statement, name string) bool {
	for _, d := range stmt.Decorators {
		if d == name {
			return true
		}
	}
	return false
}

// IsComputeMethod matches @api.depends-decorated methods or
// _compute_*/_inverse_*/_search_* named methods.
func IsComputeMethod(stmt *pyparse.Statement) bool {
	if stmt.Kind != pyparse.KindFunctionDef {
		return false
	}
	if hasDecorator(stmt, "depends") {
		return true
	}
	return allMatch(stmt.Bindings(), func(b string) bool {
		return strings.HasPrefix(b, "_compute_") || strings.HasPrefix(b, "_inverse_") || strings.HasPrefix(b, "_search_")
	})
}

// IsSelectionMethod matches _selection_* methods (dynamic selection
// field value providers).
func IsSelectionMethod(stmt *pyparse.Statement) bool {
	return stmt.Kind == pyparse.KindFunctionDef && allMatch(stmt.Bindings(), func(b string) bool {
		return strings.HasPrefix(b, "_selection_")
	})
}

// IsConstraintMethod matches @api.constrains-decorated methods.
func IsConstraintMethod(stmt *pyparse.Statement) bool {
	return stmt.Kind == pyparse.KindFunctionDef && hasDecorator(stmt, "constrains")
}

// IsOnchangeMethod matches @api.onchange-decorated methods.
func IsOnchangeMethod(stmt *pyparse.Statement) bool {
	return stmt.Kind == pyparse.KindFunctionDef && hasDecorator(stmt, "onchange")
}

// IsORMOverride matches an override of one of the standard ORM methods.
func IsORMOverride(stmt *pyparse.Statement) bool {
	return stmt.Kind == pyparse.KindFunctionDef && anyMatch(stmt.Bindings(), func(b string) bool {
		for _, n := range OdooModelMethods {
			if n == b {
				return true
			}
		}
		return false
	})
}

// IsAction matches action_* methods (button/menu handlers).
func IsAction(stmt *pyparse.Statement) bool {
	return stmt.Kind == pyparse.KindFunctionDef && anyMatch(stmt.Bindings(), func(b string) bool {
		return strings.HasPrefix(b, "action_")
	})
}

// IsClass matches a nested class definition.
func IsClass(stmt *pyparse.Statement) bool {
	return stmt.Kind == pyparse.KindClassDef
}
