// Package sortengine composes pyparse, pybind, obuckets, depgraph and
// encoding into the public entry point spec.md §6 describes: decode,
// detect newline, parse, sort module level, recurse into class bodies,
// then rewrap. It mirrors _osort.py's osort()/`_statement_text_sorted_class`
// pair, split across this file's module-level half and class.go's
// class-level half.
package sortengine

// Options configures one Sort/SortText invocation. Each On* field takes
// either a "raise"/"ignore" literal tag or a caller-supplied handler
// function of the matching core.*Handler type; see pkg/core/policy.go.
// A YAML-loaded core.SettingsConfig maps onto this directly, since its
// On* fields are plain strings and `any` happily holds a string.
type Options struct {
	Filename   string
	SortFields bool

	OnUnknownEncoding any
	OnDecodingError   any
	OnParseError      any
	OnUnresolved      any
	OnWildcardImport  any
}
