package batch

import "github.com/edirooss/valkeybatch/command"

// HSet sets field-value pairs in the hash stored at key. Command Response:
// integer (number of fields that were added).
//
// https://valkey.io/commands/hset/
func (b *BaseBatch[T]) HSet(key string, fieldValues map[string]string) *T {
	if len(fieldValues) == 0 {
		return b.argErr("HSET", "fieldValues must not be empty")
	}
	fields := sortedKeys(fieldValues)
	args := make([]string, 0, 1+len(fieldValues)*2)
	args = append(args, key)
	for _, f := range fields {
		args = append(args, f, fieldValues[f])
	}
	return b.addCmd(command.NewText("HSET", args...), convInt("HSET"))
}

// HSetNX sets field in the hash stored at key only if field does not
// already exist. Command Response: boolean.
//
// https://valkey.io/commands/hsetnx/
func (b *BaseBatch[T]) HSetNX(key, field, value string) *T {
	return b.addCmd(command.NewText("HSETNX", key, field, value), convBool("HSETNX"))
}

// HGet returns the value associated with field in the hash stored at key.
// Command Response: nullable text.
//
// https://valkey.io/commands/hget/
func (b *BaseBatch[T]) HGet(key, field string) *T {
	return b.addCmd(command.NewText("HGET", key, field), convNullableText("HGET"))
}

// HDel removes the specified fields from the hash stored at key. Command
// Response: integer.
//
// https://valkey.io/commands/hdel/
func (b *BaseBatch[T]) HDel(key string, fields ...string) *T {
	if len(fields) == 0 {
		return b.argErr("HDEL", "fields must not be empty")
	}
	return b.addCmd(command.NewText("HDEL", append([]string{key}, fields...)...), convInt("HDEL"))
}

// HExists determines whether field exists in the hash stored at key.
// Command Response: boolean.
//
// https://valkey.io/commands/hexists/
func (b *BaseBatch[T]) HExists(key, field string) *T {
	return b.addCmd(command.NewText("HEXISTS", key, field), convBool("HEXISTS"))
}

// HLen returns the number of fields in the hash stored at key. Command
// Response: integer.
//
// https://valkey.io/commands/hlen/
func (b *BaseBatch[T]) HLen(key string) *T {
	return b.addCmd(command.NewText("HLEN", key), convInt("HLEN"))
}

// HKeys returns all field names in the hash stored at key. Command
// Response: array of text.
//
// https://valkey.io/commands/hkeys/
func (b *BaseBatch[T]) HKeys(key string) *T {
	return b.addCmd(command.NewText("HKEYS", key), convArray("HKEYS"))
}

// HVals returns all values in the hash stored at key. Command Response:
// array of text.
//
// https://valkey.io/commands/hvals/
func (b *BaseBatch[T]) HVals(key string) *T {
	return b.addCmd(command.NewText("HVALS", key), convArray("HVALS"))
}

// HMGet returns the values associated with the specified fields in the
// hash stored at key. Command Response: array of nullable text.
//
// https://valkey.io/commands/hmget/
func (b *BaseBatch[T]) HMGet(key string, fields ...string) *T {
	if len(fields) == 0 {
		return b.argErr("HMGET", "fields must not be empty")
	}
	return b.addCmd(command.NewText("HMGET", append([]string{key}, fields...)...), convArrayNullableText("HMGET"))
}

// HGetAll returns all fields and values of the hash stored at key. Command
// Response: map of text.
//
// https://valkey.io/commands/hgetall/
func (b *BaseBatch[T]) HGetAll(key string) *T {
	return b.addCmd(command.NewText("HGETALL", key), convMap("HGETALL"))
}

// HIncrBy increments the number stored at field in the hash stored at key
// by delta. Command Response: integer.
//
// https://valkey.io/commands/hincrby/
func (b *BaseBatch[T]) HIncrBy(key, field string, delta int64) *T {
	return b.addCmd(command.NewText("HINCRBY", key, field, i64(delta)), convInt("HINCRBY"))
}

// HIncrByFloat increments the floating point number stored at field in the
// hash stored at key by delta. Command Response: float.
//
// https://valkey.io/commands/hincrbyfloat/
func (b *BaseBatch[T]) HIncrByFloat(key, field string, delta float64) *T {
	return b.addCmd(command.NewText("HINCRBYFLOAT", key, field, f64(delta)), convFloat("HINCRBYFLOAT"))
}

// HScanOptions configures HSCAN's optional MATCH/COUNT/NOVALUES clauses.
type HScanOptions struct {
	Match    string
	Count    *int64
	NoValues bool
}

// HScan incrementally iterates over the fields (and optionally values) of
// the hash stored at key. Command Response: array (cursor, then matched
// entries).
//
// https://valkey.io/commands/hscan/
func (b *BaseBatch[T]) HScan(key string, cursor int64, opts *HScanOptions) *T {
	ab := newArgBuilder(key, i64(cursor))
	if opts != nil {
		ab.withString("MATCH", opts.Match)
		ab.withOptionalInt("COUNT", opts.Count)
		ab.when(opts.NoValues, "NOVALUES")
	}
	return b.addCmd(command.NewText("HSCAN", ab.build()...), convArray("HSCAN"))
}

// HStrLen returns the string length of the value associated with field in
// the hash stored at key. Command Response: integer.
//
// https://valkey.io/commands/hstrlen/
func (b *BaseBatch[T]) HStrLen(key, field string) *T {
	return b.addCmd(command.NewText("HSTRLEN", key, field), convInt("HSTRLEN"))
}

// HRandField returns a random field from the hash stored at key. Command
// Response: nullable text.
//
// https://valkey.io/commands/hrandfield/
func (b *BaseBatch[T]) HRandField(key string) *T {
	return b.addCmd(command.NewText("HRANDFIELD", key), convNullableText("HRANDFIELD"))
}

// HRandFieldWithCount returns up to |count| distinct random fields (or,
// for negative count, count random fields with repetition) from the hash
// stored at key. Command Response: array of text, or array-pairs when
// withValues is set.
//
// https://valkey.io/commands/hrandfield/
func (b *BaseBatch[T]) HRandFieldWithCount(key string, count int64, withValues bool) *T {
	ab := newArgBuilder(key, i64(count))
	ab.when(withValues, "WITHVALUES")
	return b.addCmd(command.NewText("HRANDFIELD", ab.build()...), convArray("HRANDFIELD"))
}

// HTTL returns the remaining TTL in seconds of the specified hash fields.
// Command Response: array of integer.
//
// https://valkey.io/commands/httl/
func (b *BaseBatch[T]) HTTL(key string, fields ...string) *T {
	if len(fields) == 0 {
		return b.argErr("HTTL", "fields must not be empty")
	}
	args := newArgBuilder(key).token("FIELDS", i64(int64(len(fields)))).token(fields...).build()
	return b.addCmd(command.NewText("HTTL", args...), convArray("HTTL"))
}

// HPTTL is HTTL with millisecond resolution. Command Response: array of
// integer.
//
// https://valkey.io/commands/hpttl/
func (b *BaseBatch[T]) HPTTL(key string, fields ...string) *T {
	if len(fields) == 0 {
		return b.argErr("HPTTL", "fields must not be empty")
	}
	args := newArgBuilder(key).token("FIELDS", i64(int64(len(fields)))).token(fields...).build()
	return b.addCmd(command.NewText("HPTTL", args...), convArray("HPTTL"))
}

// HExpireTime returns the absolute Unix expiration time in seconds of the
// specified hash fields. Command Response: array of integer.
//
// https://valkey.io/commands/hexpiretime/
func (b *BaseBatch[T]) HExpireTime(key string, fields ...string) *T {
	if len(fields) == 0 {
		return b.argErr("HEXPIRETIME", "fields must not be empty")
	}
	args := newArgBuilder(key).token("FIELDS", i64(int64(len(fields)))).token(fields...).build()
	return b.addCmd(command.NewText("HEXPIRETIME", args...), convArray("HEXPIRETIME"))
}

// HPExpireTime is HExpireTime with millisecond resolution. Command
// Response: array of integer.
//
// https://valkey.io/commands/hpexpiretime/
func (b *BaseBatch[T]) HPExpireTime(key string, fields ...string) *T {
	if len(fields) == 0 {
		return b.argErr("HPEXPIRETIME", "fields must not be empty")
	}
	args := newArgBuilder(key).token("FIELDS", i64(int64(len(fields)))).token(fields...).build()
	return b.addCmd(command.NewText("HPEXPIRETIME", args...), convArray("HPEXPIRETIME"))
}

// HExpire sets a TTL in seconds on the specified hash fields. Command
// Response: array of integer (per-field result code).
//
// https://valkey.io/commands/hexpire/
func (b *BaseBatch[T]) HExpire(key string, seconds int64, fields ...string) *T {
	if len(fields) == 0 {
		return b.argErr("HEXPIRE", "fields must not be empty")
	}
	args := newArgBuilder(key, i64(seconds)).token("FIELDS", i64(int64(len(fields)))).token(fields...).build()
	return b.addCmd(command.NewText("HEXPIRE", args...), convArray("HEXPIRE"))
}
