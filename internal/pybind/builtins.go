// Package pybind computes, per statement, the free names it consumes
// (references) as distinct from the names it defines (bindings, already
// computed by pyparse.Statement.Bindings). It splits references into
// hard (load-time) and soft (deferred-execution) per spec.md §3/§4.2,
// grounded on the two-pass collect-then-resolve analyzer shape found in
// the retrieval pack (a scope processor that first walks a body to
// collect bindings, then walks it again to resolve uses against them).
package pybind

// pythonBuiltins is the closed set of names the Python runtime provides
// without an import: builtin functions/types, constants, a handful of
// dunder names, plus `self` and `cls`. A reference to one of these
// never needs to resolve to a statement in scope and is never reported
// as unresolved - mirroring how a real implementation would pre-seed a
// module's symbol table from `builtins` before checking for undefined
// names.
var pythonBuiltins = map[string]bool{
	"abs": true, "aiter": true, "anext": true, "all": true, "any": true,
	"ascii": true, "bin": true, "bool": true, "breakpoint": true,
	"bytearray": true, "bytes": true, "callable": true, "chr": true,
	"classmethod": true, "compile": true, "complex": true, "delattr": true,
	"dict": true, "dir": true, "divmod": true, "enumerate": true,
	"eval": true, "exec": true, "filter": true, "float": true,
	"format": true, "frozenset": true, "getattr": true, "globals": true,
	"hasattr": true, "hash": true, "help": true, "hex": true, "id": true,
	"input": true, "int": true, "isinstance": true, "issubclass": true,
	"iter": true, "len": true, "list": true, "locals": true, "map": true,
	"max": true, "memoryview": true, "min": true, "next": true,
	"object": true, "oct": true, "open": true, "ord": true, "pow": true,
	"print": true, "property": true, "range": true, "repr": true,
	"reversed": true, "round": true, "set": true, "setattr": true,
	"slice": true, "sorted": true, "staticmethod": true, "str": true,
	"sum": true, "super": true, "tuple": true, "type": true, "vars": true,
	"zip": true, "__import__": true,

	"True": true, "False": true, "None": true, "NotImplemented": true,
	"Ellipsis": true, "__debug__": true,

	"BaseException": true, "Exception": true, "ArithmeticError": true,
	"AssertionError": true, "AttributeError": true, "BlockingIOError": true,
	"BrokenPipeError": true, "BufferError": true, "BytesWarning": true,
	"ChildProcessError": true, "ConnectionAbortedError": true,
	"ConnectionError": true, "ConnectionRefusedError": true,
	"ConnectionResetError": true, "DeprecationWarning": true, "EOFError": true,
	"EnvironmentError": true, "FileExistsError": true,
	"FileNotFoundError": true, "FloatingPointError": true, "FutureWarning": true,
	"GeneratorExit": true, "IOError": true, "ImportError": true,
	"ImportWarning": true, "IndentationError": true, "IndexError": true,
	"InterruptedError": true, "IsADirectoryError": true, "KeyError": true,
	"KeyboardInterrupt": true, "LookupError": true, "MemoryError": true,
	"ModuleNotFoundError": true, "NameError": true, "NotADirectoryError": true,
	"NotImplementedError": true, "OSError": true, "OverflowError": true,
	"PendingDeprecationWarning": true, "PermissionError": true,
	"ProcessLookupError": true, "RecursionError": true, "ReferenceError": true,
	"ResourceWarning": true, "RuntimeError": true, "RuntimeWarning": true,
	"StopAsyncIteration": true, "StopIteration": true, "SyntaxError": true,
	"SyntaxWarning": true, "SystemError": true, "SystemExit": true,
	"TabError": true, "TimeoutError": true, "TypeError": true,
	"UnboundLocalError": true, "UnicodeDecodeError": true,
	"UnicodeEncodeError": true, "UnicodeError": true,
	"UnicodeTranslateError": true, "UnicodeWarning": true, "UserWarning": true,
	"ValueError": true, "Warning": true, "ZeroDivisionError": true,

	"__name__": true, "__file__": true, "__doc__": true, "__package__": true,
	"__spec__": true, "__loader__": true, "__builtins__": true,
	"__annotations__": true, "__dict__": true, "__class__": true,
	"self": true, "cls": true,
}

// IsBuiltin reports whether name is a Python builtin that never needs to
// resolve to an in-scope statement.
func IsBuiltin(name string) bool {
	return pythonBuiltins[name]
}
