package batch

import (
	"github.com/edirooss/valkeybatch/bval"
	"github.com/edirooss/valkeybatch/command"
)

// Del removes the given keys. Command Response: integer (number of keys
// removed).
//
// https://valkey.io/commands/del/
func (b *BaseBatch[T]) Del(keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("DEL", "keys must not be empty")
	}
	return b.addCmd(command.NewText("DEL", keys...), convInt("DEL"))
}

// Unlink is Del performed asynchronously by the server. Command Response:
// integer.
//
// https://valkey.io/commands/unlink/
func (b *BaseBatch[T]) Unlink(keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("UNLINK", "keys must not be empty")
	}
	return b.addCmd(command.NewText("UNLINK", keys...), convInt("UNLINK"))
}

// Exists counts how many of the given keys exist. Command Response:
// integer.
//
// https://valkey.io/commands/exists/
func (b *BaseBatch[T]) Exists(keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("EXISTS", "keys must not be empty")
	}
	return b.addCmd(command.NewText("EXISTS", keys...), convInt("EXISTS"))
}

// ExpireCondition is the optional NX|XX|GT|LT condition shared by
// EXPIRE/PEXPIRE/EXPIREAT/PEXPIREAT.
type ExpireCondition string

const (
	ExpireAlways ExpireCondition = ""
	ExpireNX     ExpireCondition = "NX"
	ExpireXX     ExpireCondition = "XX"
	ExpireGT     ExpireCondition = "GT"
	ExpireLT     ExpireCondition = "LT"
)

// Expire sets a timeout, in seconds, on key. Command Response: boolean.
//
// https://valkey.io/commands/expire/
func (b *BaseBatch[T]) Expire(key string, seconds int64, cond ExpireCondition) *T {
	ab := newArgBuilder(key, i64(seconds))
	if cond != ExpireAlways {
		ab.token(string(cond))
	}
	return b.addCmd(command.NewText("EXPIRE", ab.build()...), convBool("EXPIRE"))
}

// PExpire is Expire with a millisecond timeout. Command Response: boolean.
//
// https://valkey.io/commands/pexpire/
func (b *BaseBatch[T]) PExpire(key string, millis int64, cond ExpireCondition) *T {
	ab := newArgBuilder(key, i64(millis))
	if cond != ExpireAlways {
		ab.token(string(cond))
	}
	return b.addCmd(command.NewText("PEXPIRE", ab.build()...), convBool("PEXPIRE"))
}

// ExpireAt sets the expiration to a unix timestamp, in seconds. Command
// Response: boolean.
//
// https://valkey.io/commands/expireat/
func (b *BaseBatch[T]) ExpireAt(key string, unixSeconds int64, cond ExpireCondition) *T {
	ab := newArgBuilder(key, i64(unixSeconds))
	if cond != ExpireAlways {
		ab.token(string(cond))
	}
	return b.addCmd(command.NewText("EXPIREAT", ab.build()...), convBool("EXPIREAT"))
}

// PExpireAt is ExpireAt with a millisecond unix timestamp. Command
// Response: boolean.
//
// https://valkey.io/commands/pexpireat/
func (b *BaseBatch[T]) PExpireAt(key string, unixMillis int64, cond ExpireCondition) *T {
	ab := newArgBuilder(key, i64(unixMillis))
	if cond != ExpireAlways {
		ab.token(string(cond))
	}
	return b.addCmd(command.NewText("PEXPIREAT", ab.build()...), convBool("PEXPIREAT"))
}

// TTL returns the remaining time to live of key, in seconds. Command
// Response: integer (-1 if no expiry, -2 if the key does not exist).
//
// https://valkey.io/commands/ttl/
func (b *BaseBatch[T]) TTL(key string) *T {
	return b.addCmd(command.NewText("TTL", key), convInt("TTL"))
}

// PTTL is TTL in milliseconds. Command Response: integer.
//
// https://valkey.io/commands/pttl/
func (b *BaseBatch[T]) PTTL(key string) *T {
	return b.addCmd(command.NewText("PTTL", key), convInt("PTTL"))
}

// ExpireTime returns the absolute unix expiration time of key, in
// seconds. Command Response: integer.
//
// https://valkey.io/commands/expiretime/
func (b *BaseBatch[T]) ExpireTime(key string) *T {
	return b.addCmd(command.NewText("EXPIRETIME", key), convInt("EXPIRETIME"))
}

// PExpireTime is ExpireTime in milliseconds. Command Response: integer.
//
// https://valkey.io/commands/pexpiretime/
func (b *BaseBatch[T]) PExpireTime(key string) *T {
	return b.addCmd(command.NewText("PEXPIRETIME", key), convInt("PEXPIRETIME"))
}

// Persist removes the existing timeout on key. Command Response: boolean.
//
// https://valkey.io/commands/persist/
func (b *BaseBatch[T]) Persist(key string) *T {
	return b.addCmd(command.NewText("PERSIST", key), convBool("PERSIST"))
}

// Type returns the string representation of the type of value stored at
// key. Command Response: text.
//
// https://valkey.io/commands/type/
func (b *BaseBatch[T]) Type(key string) *T {
	return b.addCmd(command.NewText("TYPE", key), convText("TYPE"))
}

// Rename renames key to newKey. Command Response: non-nullable text
// ("OK").
//
// https://valkey.io/commands/rename/
func (b *BaseBatch[T]) Rename(key, newKey string) *T {
	return b.addCmd(command.NewText("RENAME", key, newKey), convText("RENAME"))
}

// RenameNX renames key to newKey, only if newKey does not already exist.
// Command Response: boolean.
//
// https://valkey.io/commands/renamenx/
func (b *BaseBatch[T]) RenameNX(key, newKey string) *T {
	return b.addCmd(command.NewText("RENAMENX", key, newKey), convBool("RENAMENX"))
}

// Touch updates the last-access time of the given keys. Command Response:
// integer (number of keys touched).
//
// https://valkey.io/commands/touch/
func (b *BaseBatch[T]) Touch(keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("TOUCH", "keys must not be empty")
	}
	return b.addCmd(command.NewText("TOUCH", keys...), convInt("TOUCH"))
}

// Copy copies the value stored at source to destination. Token order is
// `source destination [DB db] [REPLACE]` — destination precedes the
// optional clauses, matching the server's documented grammar (§4.3).
// Command Response: boolean.
//
// https://valkey.io/commands/copy/
func (b *BaseBatch[T]) Copy(source, destination string, destDB *int64, replace bool) *T {
	ab := newArgBuilder(source, destination)
	ab.withOptionalInt("DB", destDB)
	ab.when(replace, "REPLACE")
	return b.addCmd(command.NewText("COPY", ab.build()...), convBool("COPY"))
}

// SortOptions configures SORT/SORT_RO's optional BY/LIMIT/GET/ORDER/ALPHA
// clauses.
type SortOptions struct {
	By          string
	LimitOffset *int64
	LimitCount  *int64
	Get         []string
	Desc        bool
	Alpha       bool
}

func (o *SortOptions) tokens() []string {
	if o == nil {
		return nil
	}
	ab := newArgBuilder()
	ab.withString("BY", o.By)
	if o.LimitOffset != nil && o.LimitCount != nil {
		ab.token("LIMIT", i64(*o.LimitOffset), i64(*o.LimitCount))
	}
	for _, g := range o.Get {
		ab.token("GET", g)
	}
	ab.when(o.Desc, "DESC")
	ab.when(o.Alpha, "ALPHA")
	return ab.build()
}

// Sort sorts the list/set/sorted-set stored at key. Command Response:
// array of nullable text.
//
// https://valkey.io/commands/sort/
func (b *BaseBatch[T]) Sort(key string, opts *SortOptions) *T {
	ab := newArgBuilder(key).token(opts.tokens()...)
	return b.addCmd(command.NewText("SORT", ab.build()...), convArrayNullableText("SORT"))
}

// SortReadOnly is the read-only variant of Sort, rejecting the STORE
// clause by construction. Command Response: array of nullable text.
//
// https://valkey.io/commands/sort_ro/
func (b *BaseBatch[T]) SortReadOnly(key string, opts *SortOptions) *T {
	ab := newArgBuilder(key).token(opts.tokens()...)
	return b.addCmd(command.NewText("SORT_RO", ab.build()...), convArrayNullableText("SORT_RO"))
}

// SortStore is Sort with the STORE clause, storing the result in
// destination. Command Response: integer (length of the stored list).
//
// https://valkey.io/commands/sort/
func (b *BaseBatch[T]) SortStore(key, destination string, opts *SortOptions) *T {
	ab := newArgBuilder(key).token(opts.tokens()...).token("STORE", destination)
	return b.addCmd(command.NewText("SORT", ab.build()...), convInt("SORT"))
}

// Dump serializes the value stored at key into an opaque binary
// representation suitable for Restore. The command itself carries only the
// text key; the payload it returns is not text-convertible in general, so
// its converter hands it back as raw []byte rather than a string (§4.2, §8
// scenario 3). Command Response: nullable binary.
//
// https://valkey.io/commands/dump/
func (b *BaseBatch[T]) Dump(key string) *T {
	return b.addCmd(command.NewText("DUMP", key), convDumpPayload("DUMP"))
}

// Restore creates a key holding the value described by the opaque
// serializedValue previously produced by Dump. serializedValue is always
// sent on the binary command path, regardless of its byte content — this
// command exists specifically to round-trip bytes that are never
// guaranteed to be text (§8 scenario 3). Command Response: non-nullable
// text ("OK").
//
// https://valkey.io/commands/restore/
func (b *BaseBatch[T]) Restore(key string, ttlMillis int64, serializedValue []byte, replace, absTTL bool) *T {
	c := command.NewBinary("RESTORE").AddText(key).AddText(i64(ttlMillis)).AddArgument(bval.FromBytes(serializedValue))
	if replace {
		c = c.AddText("REPLACE")
	}
	if absTTL {
		c = c.AddText("ABSTTL")
	}
	return b.addCmd(c, convText("RESTORE"))
}

// ScanOptions configures SCAN's optional MATCH/COUNT/TYPE clauses.
type ScanOptions struct {
	Match string
	Count *int64
	Type  string
}

func (o *ScanOptions) tokens() []string {
	if o == nil {
		return nil
	}
	ab := newArgBuilder()
	ab.withString("MATCH", o.Match)
	ab.withOptionalInt("COUNT", o.Count)
	ab.withString("TYPE", o.Type)
	return ab.build()
}

// Scan incrementally iterates over the keyspace. Standalone-only: cluster
// deployments iterate per-node instead, so this builder method is defined
// only on StandaloneBatch (§4.3). Command Response: array (cursor, then
// matched keys).
//
// https://valkey.io/commands/scan/
func (b *StandaloneBatch) Scan(cursor int64, opts *ScanOptions) *StandaloneBatch {
	ab := newArgBuilder(i64(cursor)).token(opts.tokens()...)
	return b.addCmd(command.NewText("SCAN", ab.build()...), convArray("SCAN"))
}

// RandomKey returns a random key from the keyspace. Command Response:
// nullable text.
//
// https://valkey.io/commands/randomkey/
func (b *BaseBatch[T]) RandomKey() *T {
	return b.addCmd(command.NewText("RANDOMKEY"), convNullableText("RANDOMKEY"))
}
