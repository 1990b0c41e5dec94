// Package obuckets holds the closed identifier lists and bucket predicates
// that drive Odoo model member ordering: which names are lifecycle hooks,
// which are ORM overrides, which are Odoo's own private model attributes,
// and so on. The lists are transcribed verbatim from the reference sorter
// so that bucket membership matches it exactly; everything else (the
// predicate functions, the rank lookups) is written against Statement,
// this module's own statement abstraction.
package obuckets

// SpecialProperties are resolved before anything else in a class body.
var SpecialProperties = []string{
	"__doc__",
	"__slots__",
}

// LifecycleOperations covers construction, copying, metaclass hooks,
// generics and descriptor protocol methods.
var LifecycleOperations = []string{
	"__new__",
	"__init__",
	"__del__",
	"__copy__",
	"__deepcopy__",
	"__init_subclass__",
	"__instancecheck__",
	"__subclasscheck__",
	"__class_getitem__",
	"__get__",
	"__set__",
	"__delete__",
	"__set_name__",
}

// RegularOperations covers the rest of Python's dunder protocol: calling,
// attribute access, container operations, operators, conversions, context
// managers, async protocols, pickling and formatting.
var RegularOperations = []string{
	"__call__",
	"__getattr__",
	"__getattribute__",
	"__setattr__",
	"__delattr__",
	"__dir__",
	"__getitem__",
	"__setitem__",
	"__delitem__",
	"__missing__",
	"__iter__",
	"__reversed__",
	"__contains__",
	"__len__",
	"__length_hint__",
	"__add__",
	"__radd__",
	"__iadd__",
	"__sub__",
	"__rsub__",
	"__isub__",
	"__mul__",
	"__rmul__",
	"__imul__",
	"__matmul__",
	"__rmatmul__",
	"__imatmul__",
	"__truediv__",
	"__rtruediv__",
	"__itruediv__",
	"__floordiv__",
	"__rfloordiv__",
	"__ifloordiv__",
	"__mod__",
	"__rmod__",
	"__imod__",
	"__divmod__",
	"__rdivmod__",
	"__pow__",
	"__rpow__",
	"__ipow__",
	"__lshift__",
	"__rlshift__",
	"__ilshift__",
	"__rshift__",
	"__rrshift__",
	"__irshift__",
	"__and__",
	"__rand__",
	"__iand__",
	"__xor__",
	"__rxor__",
	"__ixor__",
	"__or__",
	"__ror__",
	"__ior__",
	"__neg__",
	"__pos__",
	"__abs__",
	"__invert__",
	"__lt__",
	"__le__",
	"__eq__",
	"__ne__",
	"__gt__",
	"__ge__",
	"__hash__",
	"__bool__",
	"__complex__",
	"__int__",
	"__float__",
	"__index__",
	"__round__",
	"__trunc__",
	"__floor__",
	"__ceil__",
	"__enter__",
	"__exit__",
	"__await__",
	"__aiter__",
	"__anext__",
	"__aenter__",
	"__aexit__",
	"__getnewargs_ex__",
	"__reduce__",
	"__getstate__",
	"__setstate__",
	"__repr__",
	"__str__",
	"__bytes__",
	"__format__",
}

// OdooSpecialAttributes are the attributes that conventionally come right
// after field declarations.
var OdooSpecialAttributes = []string{
	"_sql_constraints",
	"init",
}

// OdooPrivateAttributes are Odoo's own model-configuration class attributes.
var OdooPrivateAttributes = []string{
	"_name",
	"_description",
	"_inherit",
	"_inherits",
	"_abstract",
	"_active_name",
	"_allow_sudo_commands",
	"_auto",
	"_check_company_auto",
	"_custom",
	"_depends",
	"_fold_name",
	"_inherits",
	"_module",
	"_order",
	"_parent_name",
	"_parent_store",
	"_rec_name",
	"_rec_names_search",
	"_register",
	"_table",
	"_table_query",
	"_transient",
	"_translate",
	"_sql_constraints",
}

// OdooModelMethods are the standard ORM methods that models commonly
// override.
var OdooModelMethods = []string{
	"__ensure_xml_id",
	"action_archive",
	"action_unarchive",
	"_add_fake_fields",
	"_add_field",
	"_add_inherited_fields",
	"_add_missing_default_values",
	"_add_precomputed_values",
	"_add_sql_constraints",
	"_apply_ir_rules",
	"_apply_onchange_methods",
	"_as_query",
	"_auto_init",
	"browse",
	"_build_model",
	"_build_model_attributes",
	"_build_model_check_base",
	"_build_model_check_parent",
	"_cache",
	"check_access_rights",
	"check_access_rule",
	"_check_company",
	"_check_company_domain",
	"check_field_access_rights",
	"_check_m2m_recursion",
	"_check_parent_path",
	"_check_qorder",
	"_check_recursion",
	"_check_removed_columns",
	"clear_caches",
	"_compute_display_name",
	"_compute_field_value",
	"_constraint_methods",
	"_convert_records",
	"_convert_to_record",
	"_convert_to_write",
	"copy",
	"copy_data",
	"copy_multi",
	"copy_translations",
	"create",
	"_create",
	"default_get",
	"_determine_fields_to_fetch",
	"ensure_one",
	"exists",
	"export_data",
	"_export_rows",
	"_extract_records",
	"fetch",
	"_fetch_field",
	"_fetch_query",
	"_field_properties_to_sql",
	"_field_to_sql",
	"fields_get",
	"_filter_access_rules",
	"_filter_access_rules_python",
	"filtered",
	"filtered_domain",
	"_flush",
	"flush_model",
	"flush_recordset",
	"_flush_search",
	"_generate_order_by",
	"_get_base_lang",
	"get_base_url",
	"get_external_id",
	"_get_external_ids",
	"get_field_translations",
	"get_metadata",
	"_get_placeholder_filename",
	"get_property_definition",
	"grouped",
	"_has_onchange",
	"ids",
	"_in_cache_without",
	"_inherits_check",
	"_inherits_join_calc",
	"init",
	"_init_column",
	"_init_constraints_onchanges",
	"_invalidate_cache",
	"invalidate_model",
	"invalidate_recordset",
	"_is_an_ordinary_table",
	"is_transient",
	"load",
	"_load_records",
	"_load_records_create",
	"_load_records_write",
	"mapped",
	"_mapped_func",
	"modified",
	"_modified",
	"_modified_triggers",
	"name_create",
	"name_get",
	"name_search",
	"_name_search",
	"new",
	"onchange",
	"_onchange_methods",
	"_ondelete_methods",
	"_order_field_to_sql",
	"_order_to_sql",
	"_origin",
	"_parent_store_compute",
	"_parent_store_create",
	"_parent_store_update",
	"_parent_store_update_prepare",
	"_pop_field",
	"_populate",
	"_populate_dependencies",
	"_populate_factories",
	"_populate_sizes",
	"_prepare_create_values",
	"_prepare_setup",
	"read",
	"_read_format",
	"read_group",
	"_read_group",
	"_read_group_check_field_access_rights",
	"_read_group_empty_value",
	"_read_group_expand_full",
	"_read_group_fill_results",
	"_read_group_fill_temporal",
	"_read_group_format_result",
	"_read_group_format_result_properties",
	"_read_group_groupby",
	"_read_group_having",
	"_read_group_orderby",
	"_read_group_postprocess_aggregate",
	"_read_group_postprocess_groupby",
	"_read_group_select",
	"_rec_name_fallback",
	"_recompute_field",
	"_recompute_model",
	"_recompute_recordset",
	"_register_hook",
	"search",
	"_search",
	"search_count",
	"search_fetch",
	"search_read",
	"_setup_base",
	"_setup_complete",
	"_setup_fields",
	"sorted",
	"sudo",
	"_table_has_rows",
	"toggle_active",
	"unlink",
	"_unregister_hook",
	"update",
	"_update_cache",
	"update_field_translations",
	"_update_field_translations",
	"user_has_groups",
	"_valid_field_parameter",
	"_validate_fields",
	"_where_calc",
	"with_company",
	"with_context",
	"with_env",
	"with_prefetch",
	"with_user",
	"write",
	"_write",
}

// Rank builds a binding -> position lookup from a closed list, for use as
// a sort key: a binding not present gets the largest possible int so it
// sorts last rather than panicking.
func Rank(list []string) func(binding string) int {
	index := make(map[string]int, len(list))
	for i, n := range list {
		index[n] = i
	}
	return func(binding string) int {
		if rank, ok := index[binding]; ok {
			return rank
		}
		return int(^uint(0) >> 1)
	}
}
