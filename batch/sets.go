package batch

import "github.com/edirooss/valkeybatch/command"

// SAdd adds members to the set stored at key. Command Response: integer
// (number of elements added).
//
// https://valkey.io/commands/sadd/
func (b *BaseBatch[T]) SAdd(key string, members ...string) *T {
	if len(members) == 0 {
		return b.argErr("SADD", "members must not be empty")
	}
	return b.addCmd(command.NewText("SADD", append([]string{key}, members...)...), convInt("SADD"))
}

// SRem removes members from the set stored at key. Command Response:
// integer.
//
// https://valkey.io/commands/srem/
func (b *BaseBatch[T]) SRem(key string, members ...string) *T {
	if len(members) == 0 {
		return b.argErr("SREM", "members must not be empty")
	}
	return b.addCmd(command.NewText("SREM", append([]string{key}, members...)...), convInt("SREM"))
}

// SMembers returns all members of the set stored at key. Command
// Response: array of text.
//
// https://valkey.io/commands/smembers/
func (b *BaseBatch[T]) SMembers(key string) *T {
	return b.addCmd(command.NewText("SMEMBERS", key), convArray("SMEMBERS"))
}

// SCard returns the cardinality of the set stored at key. Command
// Response: integer.
//
// https://valkey.io/commands/scard/
func (b *BaseBatch[T]) SCard(key string) *T {
	return b.addCmd(command.NewText("SCARD", key), convInt("SCARD"))
}

// SIsMember determines whether member is a member of the set stored at
// key. Command Response: boolean.
//
// https://valkey.io/commands/sismember/
func (b *BaseBatch[T]) SIsMember(key, member string) *T {
	return b.addCmd(command.NewText("SISMEMBER", key, member), convBool("SISMEMBER"))
}

// SMIsMember determines, for each given member, whether it belongs to the
// set stored at key. Command Response: array of boolean-shaped integer.
//
// https://valkey.io/commands/smismember/
func (b *BaseBatch[T]) SMIsMember(key string, members ...string) *T {
	if len(members) == 0 {
		return b.argErr("SMISMEMBER", "members must not be empty")
	}
	return b.addCmd(command.NewText("SMISMEMBER", append([]string{key}, members...)...), convArray("SMISMEMBER"))
}

// SMove atomically moves member from source to destination. Command
// Response: boolean.
//
// https://valkey.io/commands/smove/
func (b *BaseBatch[T]) SMove(source, destination, member string) *T {
	return b.addCmd(command.NewText("SMOVE", source, destination, member), convBool("SMOVE"))
}

// SPop removes and returns a random member from the set stored at key.
// Command Response: nullable text.
//
// https://valkey.io/commands/spop/
func (b *BaseBatch[T]) SPop(key string) *T {
	return b.addCmd(command.NewText("SPOP", key), convNullableText("SPOP"))
}

// SPopCount removes and returns up to count random members from the set
// stored at key. Command Response: array of text.
//
// https://valkey.io/commands/spop/
func (b *BaseBatch[T]) SPopCount(key string, count int64) *T {
	return b.addCmd(command.NewText("SPOP", key, i64(count)), convArray("SPOP"))
}

// SRandMember returns a random member from the set stored at key. Command
// Response: nullable text.
//
// https://valkey.io/commands/srandmember/
func (b *BaseBatch[T]) SRandMember(key string) *T {
	return b.addCmd(command.NewText("SRANDMEMBER", key), convNullableText("SRANDMEMBER"))
}

// SRandMemberCount returns up to |count| distinct random members (or,
// for negative count, count random members with repetition) from the set
// stored at key. Command Response: array of text.
//
// https://valkey.io/commands/srandmember/
func (b *BaseBatch[T]) SRandMemberCount(key string, count int64) *T {
	return b.addCmd(command.NewText("SRANDMEMBER", key, i64(count)), convArray("SRANDMEMBER"))
}

// SUnion returns the union of the sets stored at keys. Command Response:
// array of text.
//
// https://valkey.io/commands/sunion/
func (b *BaseBatch[T]) SUnion(keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("SUNION", "keys must not be empty")
	}
	return b.addCmd(command.NewText("SUNION", keys...), convArray("SUNION"))
}

// SUnionStore stores the union of the sets stored at keys into
// destination. destination precedes keys; numkeys is not inserted (§4.3).
// Command Response: integer.
//
// https://valkey.io/commands/sunionstore/
func (b *BaseBatch[T]) SUnionStore(destination string, keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("SUNIONSTORE", "keys must not be empty")
	}
	return b.addCmd(command.NewText("SUNIONSTORE", append([]string{destination}, keys...)...), convInt("SUNIONSTORE"))
}

// SInter returns the intersection of the sets stored at keys. Command
// Response: array of text.
//
// https://valkey.io/commands/sinter/
func (b *BaseBatch[T]) SInter(keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("SINTER", "keys must not be empty")
	}
	return b.addCmd(command.NewText("SINTER", keys...), convArray("SINTER"))
}

// SInterStore stores the intersection of the sets stored at keys into
// destination. destination precedes keys; numkeys is not inserted (§4.3).
// Command Response: integer.
//
// https://valkey.io/commands/sinterstore/
func (b *BaseBatch[T]) SInterStore(destination string, keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("SINTERSTORE", "keys must not be empty")
	}
	return b.addCmd(command.NewText("SINTERSTORE", append([]string{destination}, keys...)...), convInt("SINTERSTORE"))
}

// SInterCard returns the cardinality of the intersection of the sets
// stored at keys, optionally capped at limit. The numkeys token is
// required by the wire grammar and is always emitted ahead of the key
// list — this is the regression guarded by §8 scenario 4: a naive
// implementation that forwards keys... without a numkeys prefix silently
// breaks the command. Command Response: integer.
//
// https://valkey.io/commands/sintercard/
func (b *BaseBatch[T]) SInterCard(keys []string, limit *int64) *T {
	if len(keys) == 0 {
		return b.argErr("SINTERCARD", "keys must not be empty")
	}
	ab := newArgBuilder(i64(int64(len(keys)))).token(keys...)
	ab.withOptionalInt("LIMIT", limit)
	return b.addCmd(command.NewText("SINTERCARD", ab.build()...), convInt("SINTERCARD"))
}

// SDiff returns the members present in the first set stored at keys[0] but
// not in any of the subsequent sets. Command Response: array of text.
//
// https://valkey.io/commands/sdiff/
func (b *BaseBatch[T]) SDiff(keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("SDIFF", "keys must not be empty")
	}
	return b.addCmd(command.NewText("SDIFF", keys...), convArray("SDIFF"))
}

// SDiffStore stores the difference of the sets stored at keys into
// destination. destination precedes keys; numkeys is not inserted (§4.3).
// Command Response: integer.
//
// https://valkey.io/commands/sdiffstore/
func (b *BaseBatch[T]) SDiffStore(destination string, keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("SDIFFSTORE", "keys must not be empty")
	}
	return b.addCmd(command.NewText("SDIFFSTORE", append([]string{destination}, keys...)...), convInt("SDIFFSTORE"))
}

// SScan incrementally iterates over the members of the set stored at key.
// Command Response: array (cursor, then matched members).
//
// https://valkey.io/commands/sscan/
func (b *BaseBatch[T]) SScan(key string, cursor int64, match string, count *int64) *T {
	ab := newArgBuilder(key, i64(cursor))
	ab.withString("MATCH", match)
	ab.withOptionalInt("COUNT", count)
	return b.addCmd(command.NewText("SSCAN", ab.build()...), convArray("SSCAN"))
}
