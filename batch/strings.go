package batch

import (
	"strconv"

	"github.com/edirooss/valkeybatch/bval"
	"github.com/edirooss/valkeybatch/command"
)

// binaryOrText returns a text command built from name/args if every value
// is text-convertible, otherwise a binary command carrying raw bytes for
// every value. Mixing is never necessary: go-redis-style wire encoding is
// identical either way, but choosing the binary path whenever any argument
// needs it guarantees no byte is ever forced through a text rendering
// (§4.2).
func binaryOrText(name string, vals ...bval.Value) command.Command {
	allText := true
	for _, v := range vals {
		if !v.IsTextConvertible() {
			allText = false
			break
		}
	}
	if allText {
		args := make([]string, len(vals))
		for i, v := range vals {
			s, _ := v.AsText()
			args[i] = s
		}
		return command.NewText(name, args...)
	}
	c := command.NewBinary(name)
	for _, v := range vals {
		c = c.AddArgument(v)
	}
	return c
}

// Get retrieves the value of key. Command Response: nullable text.
//
// https://valkey.io/commands/get/
func (b *BaseBatch[T]) Get(key string) *T {
	return b.addCmd(command.NewText("GET", key), convNullableText("GET"))
}

// Set sets key to value, binary-safe on either argument. Command Response:
// non-nullable text ("OK").
//
// https://valkey.io/commands/set/
func (b *BaseBatch[T]) Set(key, value bval.Value) *T {
	return b.addCmd(binaryOrText("SET", key, value), convText("SET"))
}

// SetString is a convenience wrapper around Set for plain-text keys/values.
func (b *BaseBatch[T]) SetString(key, value string) *T {
	return b.Set(bval.FromText(key), bval.FromText(value))
}

// Append appends value to the string stored at key. Command Response: the
// length of the string after the append operation.
//
// https://valkey.io/commands/append/
func (b *BaseBatch[T]) Append(key, value bval.Value) *T {
	return b.addCmd(binaryOrText("APPEND", key, value), convInt("APPEND"))
}

// Strlen returns the length of the string value stored at key. Command
// Response: integer.
//
// https://valkey.io/commands/strlen/
func (b *BaseBatch[T]) Strlen(key string) *T {
	return b.addCmd(command.NewText("STRLEN", key), convInt("STRLEN"))
}

// GetRange returns the substring of the string value stored at key,
// determined by the start and end offsets. Command Response: text.
//
// https://valkey.io/commands/getrange/
func (b *BaseBatch[T]) GetRange(key string, start, end int64) *T {
	return b.addCmd(command.NewText("GETRANGE", key, i64(start), i64(end)), convText("GETRANGE"))
}

// SetRange overwrites part of the string stored at key, starting at the
// specified offset. Command Response: integer (length of the string after
// the operation).
//
// https://valkey.io/commands/setrange/
func (b *BaseBatch[T]) SetRange(key string, offset int64, value bval.Value) *T {
	if !value.IsTextConvertible() {
		return b.addCmd(
			command.NewBinary("SETRANGE").AddText(key).AddText(strconv.FormatInt(offset, 10)).AddArgument(value),
			convInt("SETRANGE"),
		)
	}
	s, _ := value.AsText()
	return b.addCmd(command.NewText("SETRANGE", key, i64(offset), s), convInt("SETRANGE"))
}

// Incr increments the number stored at key by one. Command Response:
// integer.
//
// https://valkey.io/commands/incr/
func (b *BaseBatch[T]) Incr(key string) *T {
	return b.addCmd(command.NewText("INCR", key), convInt("INCR"))
}

// Decr decrements the number stored at key by one. Command Response:
// integer.
//
// https://valkey.io/commands/decr/
func (b *BaseBatch[T]) Decr(key string) *T {
	return b.addCmd(command.NewText("DECR", key), convInt("DECR"))
}

// IncrBy increments the number stored at key by delta. Command Response:
// integer.
//
// https://valkey.io/commands/incrby/
func (b *BaseBatch[T]) IncrBy(key string, delta int64) *T {
	return b.addCmd(command.NewText("INCRBY", key, i64(delta)), convInt("INCRBY"))
}

// DecrBy decrements the number stored at key by delta. Command Response:
// integer.
//
// https://valkey.io/commands/decrby/
func (b *BaseBatch[T]) DecrBy(key string, delta int64) *T {
	return b.addCmd(command.NewText("DECRBY", key, i64(delta)), convInt("DECRBY"))
}

// IncrByFloat increments the string representing a floating point number
// stored at key by delta. Command Response: float.
//
// https://valkey.io/commands/incrbyfloat/
func (b *BaseBatch[T]) IncrByFloat(key string, delta float64) *T {
	return b.addCmd(command.NewText("INCRBYFLOAT", key, f64(delta)), convFloat("INCRBYFLOAT"))
}

// MGet retrieves the values of multiple keys. Command Response: array of
// nullable text, in request order.
//
// https://valkey.io/commands/mget/
func (b *BaseBatch[T]) MGet(keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("MGET", "keys must not be empty")
	}
	return b.addCmd(command.NewText("MGET", keys...), convArrayNullableText("MGET"))
}

// MSet sets multiple key-value pairs atomically. kvPairs must not be
// empty; pairs are emitted in ascending key order. Command Response:
// non-nullable text ("OK").
//
// https://valkey.io/commands/mset/
func (b *BaseBatch[T]) MSet(kvPairs map[string]string) *T {
	if len(kvPairs) == 0 {
		return b.argErr("MSET", "kvPairs must not be empty")
	}
	keys := sortedKeys(kvPairs)
	args := make([]string, 0, len(kvPairs)*2)
	for _, k := range keys {
		args = append(args, k, kvPairs[k])
	}
	return b.addCmd(command.NewText("MSET", args...), convText("MSET"))
}

// MSetNX sets multiple key-value pairs only if none of the keys already
// exist. Command Response: boolean.
//
// https://valkey.io/commands/msetnx/
func (b *BaseBatch[T]) MSetNX(kvPairs map[string]string) *T {
	if len(kvPairs) == 0 {
		return b.argErr("MSETNX", "kvPairs must not be empty")
	}
	keys := sortedKeys(kvPairs)
	args := make([]string, 0, len(kvPairs)*2)
	for _, k := range keys {
		args = append(args, k, kvPairs[k])
	}
	return b.addCmd(command.NewText("MSETNX", args...), convBool("MSETNX"))
}

// GetDel gets the value of key and deletes the key. Command Response:
// nullable text.
//
// https://valkey.io/commands/getdel/
func (b *BaseBatch[T]) GetDel(key string) *T {
	return b.addCmd(command.NewText("GETDEL", key), convNullableText("GETDEL"))
}

// GetExOptions configures the optional expiry clause of GETEX.
type GetExOptions struct {
	ExSeconds      *int64
	PxMillis       *int64
	ExatUnixSec    *int64
	PxatUnixMillis *int64
	Persist        bool
}

// GetEx gets the value of key and optionally sets its expiration. Command
// Response: nullable text.
//
// https://valkey.io/commands/getex/
func (b *BaseBatch[T]) GetEx(key string, opts *GetExOptions) *T {
	ab := newArgBuilder(key)
	if opts != nil {
		ab.withOptionalInt("EX", opts.ExSeconds).
			withOptionalInt("PX", opts.PxMillis).
			withOptionalInt("EXAT", opts.ExatUnixSec).
			withOptionalInt("PXAT", opts.PxatUnixMillis).
			when(opts.Persist, "PERSIST")
	}
	return b.addCmd(command.NewText("GETEX", ab.build()...), convNullableText("GETEX"))
}

// LCS finds the longest common subsequence between the values stored at
// key1 and key2. Command Response: text.
//
// https://valkey.io/commands/lcs/
func (b *BaseBatch[T]) LCS(key1, key2 string) *T {
	return b.addCmd(command.NewText("LCS", key1, key2), convText("LCS"))
}

// LCSLen is LCS with the LEN option: returns only the length of the
// longest common subsequence. Command Response: integer.
//
// https://valkey.io/commands/lcs/
func (b *BaseBatch[T]) LCSLen(key1, key2 string) *T {
	return b.addCmd(command.NewText("LCS", key1, key2, "LEN"), convInt("LCS"))
}

// LCSIdx is LCS with the IDX option: returns the match positions. Command
// Response: opaque array (nested match structure).
//
// https://valkey.io/commands/lcs/
func (b *BaseBatch[T]) LCSIdx(key1, key2 string, withMatchLen bool, minMatchLen *int64) *T {
	ab := newArgBuilder(key1, key2, "IDX")
	ab.when(withMatchLen, "WITHMATCHLEN")
	if minMatchLen != nil {
		ab.withInt("MINMATCHLEN", *minMatchLen)
	}
	return b.addCmd(command.NewText("LCS", ab.build()...), convArray("LCS"))
}

func i64(v int64) string { return strconv.FormatInt(v, 10) }
func u64(v uint64) string { return strconv.FormatUint(v, 10) }
func f64(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
