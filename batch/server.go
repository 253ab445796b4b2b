package batch

import "github.com/edirooss/valkeybatch/command"

// Info requests server information and statistics. sections, when given,
// restricts the report to the named sections. Command Response: text.
//
// https://valkey.io/commands/info/
func (b *BaseBatch[T]) Info(sections ...string) *T {
	return b.addCmd(command.NewText("INFO", sections...), convText("INFO"))
}

// DBSize returns the number of keys in the currently selected database.
// Command Response: integer.
//
// https://valkey.io/commands/dbsize/
func (b *BaseBatch[T]) DBSize() *T {
	return b.addCmd(command.NewText("DBSIZE"), convInt("DBSIZE"))
}

// LastSave returns the unix timestamp of the last successful save to
// disk. Command Response: integer.
//
// https://valkey.io/commands/lastsave/
func (b *BaseBatch[T]) LastSave() *T {
	return b.addCmd(command.NewText("LASTSAVE"), convInt("LASTSAVE"))
}

// FlushDB deletes all keys in the currently selected database. async, when
// true, performs the flush asynchronously. Command Response: non-nullable
// text ("OK").
//
// https://valkey.io/commands/flushdb/
func (b *BaseBatch[T]) FlushDB(async bool) *T {
	ab := newArgBuilder()
	ab.when(async, "ASYNC")
	return b.addCmd(command.NewText("FLUSHDB", ab.build()...), convText("FLUSHDB"))
}

// FlushAll deletes all keys in all databases. Command Response:
// non-nullable text ("OK").
//
// https://valkey.io/commands/flushall/
func (b *BaseBatch[T]) FlushAll(async bool) *T {
	ab := newArgBuilder()
	ab.when(async, "ASYNC")
	return b.addCmd(command.NewText("FLUSHALL", ab.build()...), convText("FLUSHALL"))
}

// ConfigGet reads the value of one or more server configuration
// parameters, supporting glob patterns. Command Response: map of text.
//
// https://valkey.io/commands/config-get/
func (b *BaseBatch[T]) ConfigGet(parameters ...string) *T {
	if len(parameters) == 0 {
		return b.argErr("CONFIG GET", "parameters must not be empty")
	}
	return b.addCmd(command.NewText("CONFIG", append([]string{"GET"}, parameters...)...), convMap("CONFIG GET"))
}

// ConfigSet sets one or more server configuration parameters. Command
// Response: non-nullable text ("OK").
//
// https://valkey.io/commands/config-set/
func (b *BaseBatch[T]) ConfigSet(parameters map[string]string) *T {
	if len(parameters) == 0 {
		return b.argErr("CONFIG SET", "parameters must not be empty")
	}
	args := []string{"SET"}
	for _, k := range sortedKeys(parameters) {
		args = append(args, k, parameters[k])
	}
	return b.addCmd(command.NewText("CONFIG", args...), convText("CONFIG SET"))
}

// ConfigResetStat resets the statistics reported by INFO. Command
// Response: non-nullable text ("OK").
//
// https://valkey.io/commands/config-resetstat/
func (b *BaseBatch[T]) ConfigResetStat() *T {
	return b.addCmd(command.NewText("CONFIG", "RESETSTAT"), convText("CONFIG RESETSTAT"))
}

// LOLWUT renders the server's version art. Command Response: text.
//
// https://valkey.io/commands/lolwut/
func (b *BaseBatch[T]) LOLWUT(version *int64) *T {
	ab := newArgBuilder()
	ab.withOptionalInt("VERSION", version)
	return b.addCmd(command.NewText("LOLWUT", ab.build()...), convText("LOLWUT"))
}

// Wait blocks (at execution time) until numReplicas replicas have
// acknowledged prior writes, or timeoutMillis elapses. Command Response:
// integer (replicas that acknowledged).
//
// https://valkey.io/commands/wait/
func (b *BaseBatch[T]) Wait(numReplicas, timeoutMillis int64) *T {
	return b.addCmd(command.NewText("WAIT", i64(numReplicas), i64(timeoutMillis)), convInt("WAIT"))
}

// Select changes the currently selected database. Standalone-only:
// cluster deployments have a single logical database (§4.3). Command
// Response: non-nullable text ("OK").
//
// https://valkey.io/commands/select/
func (b *StandaloneBatch) Select(index int64) *StandaloneBatch {
	return b.addCmd(command.NewText("SELECT", i64(index)), convText("SELECT"))
}

// Move moves key from the currently selected database to db. Standalone-
// only (§4.3). Command Response: boolean.
//
// https://valkey.io/commands/move/
func (b *StandaloneBatch) Move(key string, db int64) *StandaloneBatch {
	return b.addCmd(command.NewText("MOVE", key, i64(db)), convBool("MOVE"))
}

// ObjectEncoding returns the internal encoding used by the value stored
// at key. Command Response: nullable text.
//
// https://valkey.io/commands/object-encoding/
func (b *BaseBatch[T]) ObjectEncoding(key string) *T {
	return b.addCmd(command.NewText("OBJECT", "ENCODING", key), convNullableText("OBJECT ENCODING"))
}

// ObjectFreq returns the LFU access frequency of key, when the server's
// eviction policy is LFU-based. Command Response: nullable integer.
//
// https://valkey.io/commands/object-freq/
func (b *BaseBatch[T]) ObjectFreq(key string) *T {
	return b.addCmd(command.NewText("OBJECT", "FREQ", key), convNullableInt("OBJECT FREQ"))
}

// ObjectIdleTime returns the number of seconds since key was last
// accessed. Command Response: nullable integer.
//
// https://valkey.io/commands/object-idletime/
func (b *BaseBatch[T]) ObjectIdleTime(key string) *T {
	return b.addCmd(command.NewText("OBJECT", "IDLETIME", key), convNullableInt("OBJECT IDLETIME"))
}

// ObjectRefCount returns the number of references to key's value.
// Command Response: nullable integer.
//
// https://valkey.io/commands/object-refcount/
func (b *BaseBatch[T]) ObjectRefCount(key string) *T {
	return b.addCmd(command.NewText("OBJECT", "REFCOUNT", key), convNullableInt("OBJECT REFCOUNT"))
}
