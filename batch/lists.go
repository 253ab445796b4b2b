package batch

import "github.com/edirooss/valkeybatch/command"

// LPush prepends values to the list stored at key. Command Response:
// integer (length of the list after the push).
//
// https://valkey.io/commands/lpush/
func (b *BaseBatch[T]) LPush(key string, values ...string) *T {
	if len(values) == 0 {
		return b.argErr("LPUSH", "values must not be empty")
	}
	return b.addCmd(command.NewText("LPUSH", append([]string{key}, values...)...), convInt("LPUSH"))
}

// RPush appends values to the list stored at key. Command Response:
// integer.
//
// https://valkey.io/commands/rpush/
func (b *BaseBatch[T]) RPush(key string, values ...string) *T {
	if len(values) == 0 {
		return b.argErr("RPUSH", "values must not be empty")
	}
	return b.addCmd(command.NewText("RPUSH", append([]string{key}, values...)...), convInt("RPUSH"))
}

// RPushX appends values to key only if it already exists and holds a
// list. Command Response: integer.
//
// https://valkey.io/commands/rpushx/
func (b *BaseBatch[T]) RPushX(key string, values ...string) *T {
	if len(values) == 0 {
		return b.argErr("RPUSHX", "values must not be empty")
	}
	return b.addCmd(command.NewText("RPUSHX", append([]string{key}, values...)...), convInt("RPUSHX"))
}

// LPushX prepends values to key only if it already exists and holds a
// list. Command Response: integer.
//
// https://valkey.io/commands/lpushx/
func (b *BaseBatch[T]) LPushX(key string, values ...string) *T {
	if len(values) == 0 {
		return b.argErr("LPUSHX", "values must not be empty")
	}
	return b.addCmd(command.NewText("LPUSHX", append([]string{key}, values...)...), convInt("LPUSHX"))
}

// LPop removes and returns the first element of the list stored at key.
// Command Response: nullable text.
//
// https://valkey.io/commands/lpop/
func (b *BaseBatch[T]) LPop(key string) *T {
	return b.addCmd(command.NewText("LPOP", key), convNullableText("LPOP"))
}

// LPopCount removes and returns up to count elements from the head of the
// list stored at key. Command Response: array of nullable text.
//
// https://valkey.io/commands/lpop/
func (b *BaseBatch[T]) LPopCount(key string, count int64) *T {
	return b.addCmd(command.NewText("LPOP", key, i64(count)), convArrayNullableText("LPOP"))
}

// RPop removes and returns the last element of the list stored at key.
// Command Response: nullable text.
//
// https://valkey.io/commands/rpop/
func (b *BaseBatch[T]) RPop(key string) *T {
	return b.addCmd(command.NewText("RPOP", key), convNullableText("RPOP"))
}

// RPopCount removes and returns up to count elements from the tail of the
// list stored at key. Command Response: array of nullable text.
//
// https://valkey.io/commands/rpop/
func (b *BaseBatch[T]) RPopCount(key string, count int64) *T {
	return b.addCmd(command.NewText("RPOP", key, i64(count)), convArrayNullableText("RPOP"))
}

// LLen returns the length of the list stored at key. Command Response:
// integer.
//
// https://valkey.io/commands/llen/
func (b *BaseBatch[T]) LLen(key string) *T {
	return b.addCmd(command.NewText("LLEN", key), convInt("LLEN"))
}

// LRange returns the specified elements of the list stored at key.
// Command Response: array of text.
//
// https://valkey.io/commands/lrange/
func (b *BaseBatch[T]) LRange(key string, start, stop int64) *T {
	return b.addCmd(command.NewText("LRANGE", key, i64(start), i64(stop)), convArray("LRANGE"))
}

// LIndex returns the element at index in the list stored at key. Command
// Response: nullable text.
//
// https://valkey.io/commands/lindex/
func (b *BaseBatch[T]) LIndex(key string, index int64) *T {
	return b.addCmd(command.NewText("LINDEX", key, i64(index)), convNullableText("LINDEX"))
}

// LSet sets the list element at index to value. Command Response:
// non-nullable text ("OK").
//
// https://valkey.io/commands/lset/
func (b *BaseBatch[T]) LSet(key string, index int64, value string) *T {
	return b.addCmd(command.NewText("LSET", key, i64(index), value), convText("LSET"))
}

// LTrim trims the list stored at key so it contains only the specified
// range. Command Response: non-nullable text ("OK").
//
// https://valkey.io/commands/ltrim/
func (b *BaseBatch[T]) LTrim(key string, start, stop int64) *T {
	return b.addCmd(command.NewText("LTRIM", key, i64(start), i64(stop)), convText("LTRIM"))
}

// LRem removes the first count occurrences of value from the list stored
// at key. Command Response: integer.
//
// https://valkey.io/commands/lrem/
func (b *BaseBatch[T]) LRem(key string, count int64, value string) *T {
	return b.addCmd(command.NewText("LREM", key, i64(count), value), convInt("LREM"))
}

// LInsert inserts value into the list stored at key either before or
// after pivot. Command Response: integer (new length, or -1 if pivot not
// found).
//
// https://valkey.io/commands/linsert/
func (b *BaseBatch[T]) LInsert(key string, before bool, pivot, value string) *T {
	where := "AFTER"
	if before {
		where = "BEFORE"
	}
	return b.addCmd(command.NewText("LINSERT", key, where, pivot, value), convInt("LINSERT"))
}

// LMove atomically moves an element from one list to another. Command
// Response: nullable text.
//
// https://valkey.io/commands/lmove/
func (b *BaseBatch[T]) LMove(source, destination string, whereFrom, whereTo ListDirection) *T {
	return b.addCmd(
		command.NewText("LMOVE", source, destination, string(whereFrom), string(whereTo)),
		convNullableText("LMOVE"),
	)
}

// BLMove is the blocking variant of LMove. timeoutSeconds of 0 blocks
// indefinitely. Command Response: nullable text.
//
// https://valkey.io/commands/blmove/
func (b *BaseBatch[T]) BLMove(source, destination string, whereFrom, whereTo ListDirection, timeoutSeconds float64) *T {
	return b.addCmd(
		command.NewText("BLMOVE", source, destination, string(whereFrom), string(whereTo), f64(timeoutSeconds)),
		convNullableText("BLMOVE"),
	)
}

// ListDirection is the LEFT|RIGHT token shared by LMOVE/BLMOVE/LMPOP/BLMPOP.
type ListDirection string

const (
	ListLeft  ListDirection = "LEFT"
	ListRight ListDirection = "RIGHT"
)

// LMPop pops elements from the first non-empty list among keys. numkeys is
// emitted automatically ahead of the key list, as the wire grammar
// requires. Command Response: array (key, then popped elements) or nil.
//
// https://valkey.io/commands/lmpop/
func (b *BaseBatch[T]) LMPop(keys []string, direction ListDirection, count *int64) *T {
	if len(keys) == 0 {
		return b.argErr("LMPOP", "keys must not be empty")
	}
	ab := newArgBuilder(i64(int64(len(keys)))).token(keys...).token(string(direction))
	ab.withOptionalInt("COUNT", count)
	return b.addCmd(command.NewText("LMPOP", ab.build()...), convArray("LMPOP"))
}

// BLMPop is the blocking variant of LMPop. Command Response: array (key,
// then popped elements) or nil.
//
// https://valkey.io/commands/blmpop/
func (b *BaseBatch[T]) BLMPop(timeoutSeconds float64, keys []string, direction ListDirection, count *int64) *T {
	if len(keys) == 0 {
		return b.argErr("BLMPOP", "keys must not be empty")
	}
	ab := newArgBuilder(f64(timeoutSeconds), i64(int64(len(keys)))).token(keys...).token(string(direction))
	ab.withOptionalInt("COUNT", count)
	return b.addCmd(command.NewText("BLMPOP", ab.build()...), convArray("BLMPOP"))
}

// BLPop is the blocking variant of LPop across multiple keys. Command
// Response: array (key, value) or nil.
//
// https://valkey.io/commands/blpop/
func (b *BaseBatch[T]) BLPop(timeoutSeconds float64, keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("BLPOP", "keys must not be empty")
	}
	return b.addCmd(command.NewText("BLPOP", append(keys, f64(timeoutSeconds))...), convArray("BLPOP"))
}

// BRPop is the blocking variant of RPop across multiple keys. Command
// Response: array (key, value) or nil.
//
// https://valkey.io/commands/brpop/
func (b *BaseBatch[T]) BRPop(timeoutSeconds float64, keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("BRPOP", "keys must not be empty")
	}
	return b.addCmd(command.NewText("BRPOP", append(keys, f64(timeoutSeconds))...), convArray("BRPOP"))
}

// LPos returns the index of the first match of element in the list stored
// at key. Command Response: nullable integer.
//
// https://valkey.io/commands/lpos/
func (b *BaseBatch[T]) LPos(key, element string, rank *int64, count, maxLen *int64) *T {
	ab := newArgBuilder(key, element)
	ab.withOptionalInt("RANK", rank)
	ab.withOptionalInt("COUNT", count)
	ab.withOptionalInt("MAXLEN", maxLen)
	conv := convNullableInt("LPOS")
	if count != nil {
		conv = convArray("LPOS")
	}
	return b.addCmd(command.NewText("LPOS", ab.build()...), conv)
}
