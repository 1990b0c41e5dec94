package core

// Each of the five error kinds in spec.md §7 is modeled as a handler
// function rather than a raise/ignore/custom sum type: the built-in
// "raise" handler returns the typed error, the built-in "ignore" handler
// always returns nil, and a caller-supplied handler can do either (or log
// and continue) — dispatch stays at the edges of the sort engine, which
// never branches on how a policy was configured.

// UnknownEncodingHandler is invoked when a coding declaration names an
// encoding the decoder doesn't know.
type UnknownEncodingHandler func(message, encoding string) error

// DecodingHandler is invoked when bytes don't decode under the chosen
// encoding.
type DecodingHandler func(message string) error

// ParseHandler is invoked when the source is not syntactically valid.
type ParseHandler func(message string, line, column int) error

// UnresolvedHandler is invoked when a reference cannot be bound to any
// statement in its scope. May be invoked many times per file.
type UnresolvedHandler func(message, name string, line, column int) error

// WildcardImportHandler is invoked when a `from m import *` is encountered.
// May be invoked many times per file.
type WildcardImportHandler func(line, column int) error

func RaiseOnUnknownEncoding(message, encoding string) error {
	return &UnknownEncodingError{Message: message, Encoding: encoding}
}

func IgnoreOnUnknownEncoding(message, encoding string) error {
	return nil
}

func RaiseOnDecodingError(message string) error {
	return &DecodingError{Message: message}
}

func IgnoreOnDecodingError(message string) error {
	return nil
}

func RaiseOnParseError(message string, line, column int) error {
	return &ParseError{Message: message, Line: line, Column: column}
}

func IgnoreOnParseError(message string, line, column int) error {
	return nil
}

func RaiseOnUnresolved(message, name string, line, column int) error {
	return &ResolutionError{Message: message, Name: name, Line: line, Column: column}
}

func IgnoreOnUnresolved(message, name string, line, column int) error {
	return nil
}

func RaiseOnWildcardImport(line, column int) error {
	return &WildcardImportError{Line: line, Column: column}
}

func IgnoreOnWildcardImport(line, column int) error {
	return nil
}

// InterpretOnUnknownEncoding resolves the "raise"/"ignore" literal tags
// (nil and "" count as "raise") to their built-in handlers and returns an
// UnknownEncodingHandler value as is; any other value gets the raise
// handler. The other Interpret* functions follow the same rules.
func InterpretOnUnknownEncoding(v any) UnknownEncodingHandler {
	switch v {
	case "ignore":
		return IgnoreOnUnknownEncoding
	case "raise", nil, "":
		return RaiseOnUnknownEncoding
	}
	if h, ok := v.(UnknownEncodingHandler); ok {
		return h
	}
	return RaiseOnUnknownEncoding
}

func InterpretOnDecodingError(v any) DecodingHandler {
	switch v {
	case "ignore":
		return IgnoreOnDecodingError
	case "raise", nil, "":
		return RaiseOnDecodingError
	}
	if h, ok := v.(DecodingHandler); ok {
		return h
	}
	return RaiseOnDecodingError
}

func InterpretOnParseError(v any) ParseHandler {
	switch v {
	case "ignore":
		return IgnoreOnParseError
	case "raise", nil, "":
		return RaiseOnParseError
	}
	if h, ok := v.(ParseHandler); ok {
		return h
	}
	return RaiseOnParseError
}

func InterpretOnUnresolved(v any) UnresolvedHandler {
	switch v {
	case "ignore":
		return IgnoreOnUnresolved
	case "raise", nil, "":
		return RaiseOnUnresolved
	}
	if h, ok := v.(UnresolvedHandler); ok {
		return h
	}
	return RaiseOnUnresolved
}

func InterpretOnWildcardImport(v any) WildcardImportHandler {
	switch v {
	case "ignore":
		return IgnoreOnWildcardImport
	case "raise", nil, "":
		return RaiseOnWildcardImport
	}
	if h, ok := v.(WildcardImportHandler); ok {
		return h
	}
	return RaiseOnWildcardImport
}
