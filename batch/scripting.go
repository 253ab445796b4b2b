package batch

import (
	"github.com/edirooss/valkeybatch/bval"
	"github.com/edirooss/valkeybatch/command"
)

// FCall invokes a previously loaded function by name, against the given
// keys and arguments. numkeys is computed from len(keys) and always
// emitted, matching the modern `FCALL fn numkeys [key...] [arg...]`
// grammar.
//
// A legacy two-argument overload, taking a function name and a list of
// arguments with no keys, exists in some client generations; it is not
// exposed here as a distinct method (see DESIGN.md's resolution of the
// fcall Open Question) — passing nil keys, as in FCall(fn, nil, args),
// emits `FCALL fn 0 arg...`, the legacy form's own wire shape. Command
// Response:
// opaque (the function's return value, shape defined by the function
// itself).
//
// https://valkey.io/commands/fcall/
func (b *BaseBatch[T]) FCall(function string, keys, args []string) *T {
	ab := newArgBuilder(function, i64(int64(len(keys)))).token(keys...).token(args...)
	return b.addCmd(command.NewText("FCALL", ab.build()...), convOpaque())
}

// FCallRO is FCall for functions declared no-writes, eligible to run
// against a read replica. Command Response: opaque.
//
// https://valkey.io/commands/fcall_ro/
func (b *BaseBatch[T]) FCallRO(function string, keys, args []string) *T {
	ab := newArgBuilder(function, i64(int64(len(keys)))).token(keys...).token(args...)
	return b.addCmd(command.NewText("FCALL_RO", ab.build()...), convOpaque())
}

// FunctionLoad loads a library of functions from code, the library's
// source text. replace, when true, overwrites an existing library of the
// same name. Command Response: text (the library's name).
//
// https://valkey.io/commands/function-load/
func (b *BaseBatch[T]) FunctionLoad(code string, replace bool) *T {
	ab := newArgBuilder()
	ab.when(replace, "REPLACE")
	ab.token(code)
	return b.addCmd(command.NewText("FUNCTION", append([]string{"LOAD"}, ab.build()...)...), convText("FUNCTION LOAD"))
}

// FunctionDelete deletes the named function library. Command Response:
// non-nullable text ("OK").
//
// https://valkey.io/commands/function-delete/
func (b *BaseBatch[T]) FunctionDelete(libraryName string) *T {
	return b.addCmd(command.NewText("FUNCTION", "DELETE", libraryName), convText("FUNCTION DELETE"))
}

// FunctionFlush removes all function libraries. async, when true, flushes
// asynchronously. Command Response: non-nullable text ("OK").
//
// https://valkey.io/commands/function-flush/
func (b *BaseBatch[T]) FunctionFlush(async bool) *T {
	ab := newArgBuilder()
	if async {
		ab.token("ASYNC")
	} else {
		ab.token("SYNC")
	}
	return b.addCmd(command.NewText("FUNCTION", append([]string{"FLUSH"}, ab.build()...)...), convText("FUNCTION FLUSH"))
}

// FunctionList lists loaded function libraries, optionally filtered by
// glob pattern and including source code. Command Response: array of map.
//
// https://valkey.io/commands/function-list/
func (b *BaseBatch[T]) FunctionList(libraryNamePattern string, withCode bool) *T {
	ab := newArgBuilder()
	ab.withString("LIBRARYNAME", libraryNamePattern)
	ab.when(withCode, "WITHCODE")
	return b.addCmd(command.NewText("FUNCTION", append([]string{"LIST"}, ab.build()...)...), convArray("FUNCTION LIST"))
}

// FunctionDump serializes all function libraries into an opaque binary
// payload suitable for FunctionRestore. Command Response: binary.
//
// https://valkey.io/commands/function-dump/
func (b *BaseBatch[T]) FunctionDump() *T {
	return b.addCmd(command.NewText("FUNCTION", "DUMP"), convDumpPayload("FUNCTION DUMP"))
}

// FunctionRestorePolicy is the APPEND|FLUSH|REPLACE policy token of
// FUNCTION RESTORE.
type FunctionRestorePolicy string

const (
	FunctionRestoreAppend  FunctionRestorePolicy = "APPEND"
	FunctionRestoreFlush   FunctionRestorePolicy = "FLUSH"
	FunctionRestoreReplace FunctionRestorePolicy = "REPLACE"
)

// FunctionRestore restores function libraries from a payload previously
// produced by FunctionDump. The payload always travels the binary command
// path; the policy token, when given, follows the payload — `FUNCTION
// RESTORE payload [policy]` — matching the documented grammar (§4.3).
// Command Response: non-nullable text ("OK").
//
// https://valkey.io/commands/function-restore/
func (b *BaseBatch[T]) FunctionRestore(payload []byte, policy FunctionRestorePolicy) *T {
	c := command.NewBinary("FUNCTION").AddText("RESTORE")
	c = c.AddArgument(bval.FromBytes(payload))
	if policy != "" {
		c = c.AddText(string(policy))
	}
	return b.addCmd(c, convText("FUNCTION RESTORE"))
}

// FunctionStats returns information about the currently running function,
// if any, and engine statistics. Command Response: map.
//
// https://valkey.io/commands/function-stats/
func (b *BaseBatch[T]) FunctionStats() *T {
	return b.addCmd(command.NewText("FUNCTION", "STATS"), convMap("FUNCTION STATS"))
}
