package batch

import "github.com/edirooss/valkeybatch/command"

// ZAddOptions configures ZADD's optional NX|XX, GT|LT, CH, INCR clauses.
type ZAddOptions struct {
	NX, XX     bool
	GT, LT     bool
	CH         bool
	Incr       bool
}

func (o *ZAddOptions) tokens() []string {
	if o == nil {
		return nil
	}
	ab := newArgBuilder()
	ab.when(o.NX, "NX").when(o.XX, "XX").when(o.GT, "GT").when(o.LT, "LT").when(o.CH, "CH").when(o.Incr, "INCR")
	return ab.build()
}

// ZAdd adds members with the given scores to the sorted set stored at key.
// Emitted as `key [opts] score1 member1 score2 member2 ...` — score
// precedes member, members ordered by ascending lexical sort for a
// deterministic wire vector. Command Response: integer, or float when Incr
// is set.
//
// https://valkey.io/commands/zadd/
func (b *BaseBatch[T]) ZAdd(key string, membersScores map[string]float64, opts *ZAddOptions) *T {
	if len(membersScores) == 0 {
		return b.argErr("ZADD", "membersScores must not be empty")
	}
	members := sortedKeys(membersScores)
	args := append([]string{key}, opts.tokens()...)
	for _, member := range members {
		args = append(args, f64(membersScores[member]), member)
	}
	conv := convInt("ZADD")
	if opts != nil && opts.Incr {
		conv = convNullableFloat("ZADD")
	}
	return b.addCmd(command.NewText("ZADD", args...), conv)
}

// ZRem removes members from the sorted set stored at key. Command
// Response: integer.
//
// https://valkey.io/commands/zrem/
func (b *BaseBatch[T]) ZRem(key string, members ...string) *T {
	if len(members) == 0 {
		return b.argErr("ZREM", "members must not be empty")
	}
	return b.addCmd(command.NewText("ZREM", append([]string{key}, members...)...), convInt("ZREM"))
}

// ZCard returns the cardinality of the sorted set stored at key. Command
// Response: integer.
//
// https://valkey.io/commands/zcard/
func (b *BaseBatch[T]) ZCard(key string) *T {
	return b.addCmd(command.NewText("ZCARD", key), convInt("ZCARD"))
}

// ZScore returns the score of member in the sorted set stored at key.
// Command Response: nullable float.
//
// https://valkey.io/commands/zscore/
func (b *BaseBatch[T]) ZScore(key, member string) *T {
	return b.addCmd(command.NewText("ZSCORE", key, member), convNullableFloat("ZSCORE"))
}

// ZRank returns the rank of member in the sorted set stored at key, with
// scores ordered low to high. Command Response: nullable integer.
//
// https://valkey.io/commands/zrank/
func (b *BaseBatch[T]) ZRank(key, member string) *T {
	return b.addCmd(command.NewText("ZRANK", key, member), convNullableInt("ZRANK"))
}

// ZRankWithScore is ZRank with the WITHSCORE option. Command Response:
// array (rank, score) or nil.
//
// https://valkey.io/commands/zrank/
func (b *BaseBatch[T]) ZRankWithScore(key, member string) *T {
	return b.addCmd(command.NewText("ZRANK", key, member, "WITHSCORE"), convArray("ZRANK"))
}

// ZRevRank returns the rank of member in the sorted set stored at key,
// with scores ordered high to low. Command Response: nullable integer.
//
// https://valkey.io/commands/zrevrank/
func (b *BaseBatch[T]) ZRevRank(key, member string) *T {
	return b.addCmd(command.NewText("ZREVRANK", key, member), convNullableInt("ZREVRANK"))
}

// ZRevRankWithScore is ZRevRank with the WITHSCORE option. Command
// Response: array (rank, score) or nil.
//
// https://valkey.io/commands/zrevrank/
func (b *BaseBatch[T]) ZRevRankWithScore(key, member string) *T {
	return b.addCmd(command.NewText("ZREVRANK", key, member, "WITHSCORE"), convArray("ZREVRANK"))
}

// ZRangeOptions configures ZRANGE's BYSCORE|BYLEX, REV, LIMIT, and
// WITHSCORES clauses.
type ZRangeOptions struct {
	ByScore, ByLex bool
	Rev            bool
	LimitOffset    *int64
	LimitCount     *int64
	WithScores     bool
}

// ZRange returns the elements in the sorted set stored at key between
// start and stop. Command Response: array of text, or array-pairs when
// WithScores is set.
//
// https://valkey.io/commands/zrange/
func (b *BaseBatch[T]) ZRange(key, start, stop string, opts *ZRangeOptions) *T {
	ab := newArgBuilder(key, start, stop)
	if opts != nil {
		ab.when(opts.ByScore, "BYSCORE").when(opts.ByLex, "BYLEX").when(opts.Rev, "REV")
		if opts.LimitOffset != nil && opts.LimitCount != nil {
			ab.token("LIMIT", i64(*opts.LimitOffset), i64(*opts.LimitCount))
		}
		ab.when(opts.WithScores, "WITHSCORES")
	}
	return b.addCmd(command.NewText("ZRANGE", ab.build()...), convArray("ZRANGE"))
}

// ZRangeStore stores the result of a ZRANGE query into destination.
// Command Response: integer.
//
// https://valkey.io/commands/zrangestore/
func (b *BaseBatch[T]) ZRangeStore(destination, source, start, stop string, opts *ZRangeOptions) *T {
	ab := newArgBuilder(destination, source, start, stop)
	if opts != nil {
		ab.when(opts.ByScore, "BYSCORE").when(opts.ByLex, "BYLEX").when(opts.Rev, "REV")
		if opts.LimitOffset != nil && opts.LimitCount != nil {
			ab.token("LIMIT", i64(*opts.LimitOffset), i64(*opts.LimitCount))
		}
	}
	return b.addCmd(command.NewText("ZRANGESTORE", ab.build()...), convInt("ZRANGESTORE"))
}

// ZRangeByLex returns the elements in the sorted set stored at key with a
// value between min and max, ordered lexicographically. Command Response:
// array of text.
//
// https://valkey.io/commands/zrangebylex/
func (b *BaseBatch[T]) ZRangeByLex(key, min, max string, limitOffset, limitCount *int64) *T {
	ab := newArgBuilder(key, min, max)
	if limitOffset != nil && limitCount != nil {
		ab.token("LIMIT", i64(*limitOffset), i64(*limitCount))
	}
	return b.addCmd(command.NewText("ZRANGEBYLEX", ab.build()...), convArray("ZRANGEBYLEX"))
}

// ZRangeByScore returns the elements in the sorted set stored at key with
// a score between min and max. Command Response: array of text, or
// array-pairs when withScores is set.
//
// https://valkey.io/commands/zrangebyscore/
func (b *BaseBatch[T]) ZRangeByScore(key, min, max string, withScores bool, limitOffset, limitCount *int64) *T {
	ab := newArgBuilder(key, min, max)
	ab.when(withScores, "WITHSCORES")
	if limitOffset != nil && limitCount != nil {
		ab.token("LIMIT", i64(*limitOffset), i64(*limitCount))
	}
	return b.addCmd(command.NewText("ZRANGEBYSCORE", ab.build()...), convArray("ZRANGEBYSCORE"))
}

// ZRevRange returns the elements in the sorted set stored at key between
// start and stop, ordered high to low. Command Response: array of text,
// or array-pairs when withScores is set.
//
// https://valkey.io/commands/zrevrange/
func (b *BaseBatch[T]) ZRevRange(key string, start, stop int64, withScores bool) *T {
	ab := newArgBuilder(key, i64(start), i64(stop))
	ab.when(withScores, "WITHSCORES")
	return b.addCmd(command.NewText("ZREVRANGE", ab.build()...), convArray("ZREVRANGE"))
}

// ZRevRangeByScore returns the elements in the sorted set stored at key
// with a score between max and min, ordered high to low. Command
// Response: array of text, or array-pairs when withScores is set.
//
// https://valkey.io/commands/zrevrangebyscore/
func (b *BaseBatch[T]) ZRevRangeByScore(key, max, min string, withScores bool, limitOffset, limitCount *int64) *T {
	ab := newArgBuilder(key, max, min)
	ab.when(withScores, "WITHSCORES")
	if limitOffset != nil && limitCount != nil {
		ab.token("LIMIT", i64(*limitOffset), i64(*limitCount))
	}
	return b.addCmd(command.NewText("ZREVRANGEBYSCORE", ab.build()...), convArray("ZREVRANGEBYSCORE"))
}

// ZRevRangeByLex returns the elements in the sorted set stored at key with
// a value between max and min, ordered lexicographically descending.
// Command Response: array of text.
//
// https://valkey.io/commands/zrevrangebylex/
func (b *BaseBatch[T]) ZRevRangeByLex(key, max, min string, limitOffset, limitCount *int64) *T {
	ab := newArgBuilder(key, max, min)
	if limitOffset != nil && limitCount != nil {
		ab.token("LIMIT", i64(*limitOffset), i64(*limitCount))
	}
	return b.addCmd(command.NewText("ZREVRANGEBYLEX", ab.build()...), convArray("ZREVRANGEBYLEX"))
}

// ZCount returns the number of elements in the sorted set stored at key
// with a score between min and max. Command Response: integer.
//
// https://valkey.io/commands/zcount/
func (b *BaseBatch[T]) ZCount(key, min, max string) *T {
	return b.addCmd(command.NewText("ZCOUNT", key, min, max), convInt("ZCOUNT"))
}

// ZLexCount returns the number of elements in the sorted set stored at key
// with a value between min and max. Command Response: integer.
//
// https://valkey.io/commands/zlexcount/
func (b *BaseBatch[T]) ZLexCount(key, min, max string) *T {
	return b.addCmd(command.NewText("ZLEXCOUNT", key, min, max), convInt("ZLEXCOUNT"))
}

// ZIncrBy increments the score of member in the sorted set stored at key
// by delta. Command Response: float.
//
// https://valkey.io/commands/zincrby/
func (b *BaseBatch[T]) ZIncrBy(key string, delta float64, member string) *T {
	return b.addCmd(command.NewText("ZINCRBY", key, f64(delta), member), convFloat("ZINCRBY"))
}

// ZPopMin removes and returns up to count members with the lowest scores
// in the sorted set stored at key. Command Response: array-pairs.
//
// https://valkey.io/commands/zpopmin/
func (b *BaseBatch[T]) ZPopMin(key string, count *int64) *T {
	args := []string{key}
	if count != nil {
		args = append(args, i64(*count))
	}
	return b.addCmd(command.NewText("ZPOPMIN", args...), convArray("ZPOPMIN"))
}

// ZPopMax is ZPopMin over the highest scores. Command Response:
// array-pairs.
//
// https://valkey.io/commands/zpopmax/
func (b *BaseBatch[T]) ZPopMax(key string, count *int64) *T {
	args := []string{key}
	if count != nil {
		args = append(args, i64(*count))
	}
	return b.addCmd(command.NewText("ZPOPMAX", args...), convArray("ZPOPMAX"))
}

// BZPopMin is the blocking variant of ZPopMin across multiple keys.
// Command Response: array (key, member, score) or nil.
//
// https://valkey.io/commands/bzpopmin/
func (b *BaseBatch[T]) BZPopMin(timeoutSeconds float64, keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("BZPOPMIN", "keys must not be empty")
	}
	return b.addCmd(command.NewText("BZPOPMIN", append(keys, f64(timeoutSeconds))...), convArray("BZPOPMIN"))
}

// BZPopMax is the blocking variant of ZPopMax across multiple keys.
// Command Response: array (key, member, score) or nil.
//
// https://valkey.io/commands/bzpopmax/
func (b *BaseBatch[T]) BZPopMax(timeoutSeconds float64, keys ...string) *T {
	if len(keys) == 0 {
		return b.argErr("BZPOPMAX", "keys must not be empty")
	}
	return b.addCmd(command.NewText("BZPOPMAX", append(keys, f64(timeoutSeconds))...), convArray("BZPOPMAX"))
}

// ZMPop pops elements from the first non-empty sorted set among keys.
// numkeys is emitted automatically ahead of the key list. Command
// Response: array (key, then popped member/score pairs) or nil.
//
// https://valkey.io/commands/zmpop/
func (b *BaseBatch[T]) ZMPop(keys []string, minOrMax ZAggregateExtreme, count *int64) *T {
	if len(keys) == 0 {
		return b.argErr("ZMPOP", "keys must not be empty")
	}
	ab := newArgBuilder(i64(int64(len(keys)))).token(keys...).token(string(minOrMax))
	ab.withOptionalInt("COUNT", count)
	return b.addCmd(command.NewText("ZMPOP", ab.build()...), convArray("ZMPOP"))
}

// BZMPop is the blocking variant of ZMPop: `timeout numkeys keys...
// MIN|MAX [COUNT n]` per §4.3's authoritative grammar. Command Response:
// array (key, then popped member/score pairs) or nil.
//
// https://valkey.io/commands/bzmpop/
func (b *BaseBatch[T]) BZMPop(timeoutSeconds float64, keys []string, minOrMax ZAggregateExtreme, count *int64) *T {
	if len(keys) == 0 {
		return b.argErr("BZMPOP", "keys must not be empty")
	}
	ab := newArgBuilder(f64(timeoutSeconds), i64(int64(len(keys)))).token(keys...).token(string(minOrMax))
	ab.withOptionalInt("COUNT", count)
	return b.addCmd(command.NewText("BZMPOP", ab.build()...), convArray("BZMPOP"))
}

// ZAggregateExtreme is the MIN|MAX token shared by ZMPOP/BZMPOP.
type ZAggregateExtreme string

const (
	ZMin ZAggregateExtreme = "MIN"
	ZMax ZAggregateExtreme = "MAX"
)

// ZMScore returns the scores associated with the specified members in the
// sorted set stored at key. Command Response: array of nullable float.
//
// https://valkey.io/commands/zmscore/
func (b *BaseBatch[T]) ZMScore(key string, members ...string) *T {
	if len(members) == 0 {
		return b.argErr("ZMSCORE", "members must not be empty")
	}
	cmdName := "ZMSCORE"
	return b.addCmd(command.NewText(cmdName, append([]string{key}, members...)...), convArrayOf(cmdName, convNullableFloat(cmdName)))
}

// ZScan incrementally iterates over the members (and scores) of the sorted
// set stored at key. Command Response: array (cursor, then matched
// entries).
//
// https://valkey.io/commands/zscan/
func (b *BaseBatch[T]) ZScan(key string, cursor int64, match string, count *int64) *T {
	ab := newArgBuilder(key, i64(cursor))
	ab.withString("MATCH", match)
	ab.withOptionalInt("COUNT", count)
	return b.addCmd(command.NewText("ZSCAN", ab.build()...), convArray("ZSCAN"))
}

// ZDiff returns the difference between the first sorted set and the
// successive sorted sets. numkeys is emitted automatically. Command
// Response: array of text, or array-pairs when withScores is set.
//
// https://valkey.io/commands/zdiff/
func (b *BaseBatch[T]) ZDiff(keys []string, withScores bool) *T {
	if len(keys) == 0 {
		return b.argErr("ZDIFF", "keys must not be empty")
	}
	ab := newArgBuilder(i64(int64(len(keys)))).token(keys...)
	ab.when(withScores, "WITHSCORES")
	return b.addCmd(command.NewText("ZDIFF", ab.build()...), convArray("ZDIFF"))
}

// ZDiffStore stores the difference between the first sorted set and the
// successive sorted sets into destination. Command Response: integer.
//
// https://valkey.io/commands/zdiffstore/
func (b *BaseBatch[T]) ZDiffStore(destination string, keys []string) *T {
	if len(keys) == 0 {
		return b.argErr("ZDIFFSTORE", "keys must not be empty")
	}
	ab := newArgBuilder(destination, i64(int64(len(keys)))).token(keys...)
	return b.addCmd(command.NewText("ZDIFFSTORE", ab.build()...), convInt("ZDIFFSTORE"))
}

// ZAggregate is the SUM|MIN|MAX token for ZINTER/ZUNION's AGGREGATE clause.
type ZAggregate string

const (
	ZAggSum ZAggregate = "SUM"
	ZAggMin ZAggregate = "MIN"
	ZAggMax ZAggregate = "MAX"
)

// ZStoreOptions configures ZINTER/ZUNION's WEIGHTS/AGGREGATE/WITHSCORES
// clauses.
type ZStoreOptions struct {
	Weights    []float64
	Aggregate  ZAggregate
	WithScores bool
}

func (o *ZStoreOptions) tokens() []string {
	if o == nil {
		return nil
	}
	ab := newArgBuilder()
	if len(o.Weights) > 0 {
		ws := make([]string, len(o.Weights))
		for i, w := range o.Weights {
			ws[i] = f64(w)
		}
		ab.token("WEIGHTS").token(ws...)
	}
	if o.Aggregate != "" {
		ab.token("AGGREGATE", string(o.Aggregate))
	}
	ab.when(o.WithScores, "WITHSCORES")
	return ab.build()
}

// ZInter computes the intersection of sorted sets keys. Command Response:
// array of text, or array-pairs when WithScores is set.
//
// https://valkey.io/commands/zinter/
func (b *BaseBatch[T]) ZInter(keys []string, opts *ZStoreOptions) *T {
	if len(keys) == 0 {
		return b.argErr("ZINTER", "keys must not be empty")
	}
	ab := newArgBuilder(i64(int64(len(keys)))).token(keys...).token(opts.tokens()...)
	return b.addCmd(command.NewText("ZINTER", ab.build()...), convArray("ZINTER"))
}

// ZInterStore stores the intersection of sorted sets keys into
// destination. Command Response: integer.
//
// https://valkey.io/commands/zinterstore/
func (b *BaseBatch[T]) ZInterStore(destination string, keys []string, opts *ZStoreOptions) *T {
	if len(keys) == 0 {
		return b.argErr("ZINTERSTORE", "keys must not be empty")
	}
	ab := newArgBuilder(destination, i64(int64(len(keys)))).token(keys...).token(opts.tokens()...)
	return b.addCmd(command.NewText("ZINTERSTORE", ab.build()...), convInt("ZINTERSTORE"))
}

// ZInterCard returns the cardinality of the intersection of sorted sets
// keys, optionally capped at limit. Command Response: integer.
//
// https://valkey.io/commands/zintercard/
func (b *BaseBatch[T]) ZInterCard(keys []string, limit *int64) *T {
	if len(keys) == 0 {
		return b.argErr("ZINTERCARD", "keys must not be empty")
	}
	ab := newArgBuilder(i64(int64(len(keys)))).token(keys...)
	ab.withOptionalInt("LIMIT", limit)
	return b.addCmd(command.NewText("ZINTERCARD", ab.build()...), convInt("ZINTERCARD"))
}

// ZUnion computes the union of sorted sets keys. Command Response: array
// of text, or array-pairs when WithScores is set.
//
// https://valkey.io/commands/zunion/
func (b *BaseBatch[T]) ZUnion(keys []string, opts *ZStoreOptions) *T {
	if len(keys) == 0 {
		return b.argErr("ZUNION", "keys must not be empty")
	}
	ab := newArgBuilder(i64(int64(len(keys)))).token(keys...).token(opts.tokens()...)
	return b.addCmd(command.NewText("ZUNION", ab.build()...), convArray("ZUNION"))
}

// ZUnionStore stores the union of sorted sets keys into destination.
// Command Response: integer.
//
// https://valkey.io/commands/zunionstore/
func (b *BaseBatch[T]) ZUnionStore(destination string, keys []string, opts *ZStoreOptions) *T {
	if len(keys) == 0 {
		return b.argErr("ZUNIONSTORE", "keys must not be empty")
	}
	ab := newArgBuilder(destination, i64(int64(len(keys)))).token(keys...).token(opts.tokens()...)
	return b.addCmd(command.NewText("ZUNIONSTORE", ab.build()...), convInt("ZUNIONSTORE"))
}

// ZRandMember returns a random member from the sorted set stored at key.
// Command Response: nullable text.
//
// https://valkey.io/commands/zrandmember/
func (b *BaseBatch[T]) ZRandMember(key string) *T {
	return b.addCmd(command.NewText("ZRANDMEMBER", key), convNullableText("ZRANDMEMBER"))
}

// ZRandMemberWithCount returns up to |count| distinct random members from
// the sorted set stored at key. Command Response: array of text, or
// array-pairs when withScores is set.
//
// https://valkey.io/commands/zrandmember/
func (b *BaseBatch[T]) ZRandMemberWithCount(key string, count int64, withScores bool) *T {
	ab := newArgBuilder(key, i64(count))
	ab.when(withScores, "WITHSCORES")
	return b.addCmd(command.NewText("ZRANDMEMBER", ab.build()...), convArray("ZRANDMEMBER"))
}

// ZRemRangeByRank removes all elements in the sorted set stored at key
// with rank between start and stop. Command Response: integer.
//
// https://valkey.io/commands/zremrangebyrank/
func (b *BaseBatch[T]) ZRemRangeByRank(key string, start, stop int64) *T {
	return b.addCmd(command.NewText("ZREMRANGEBYRANK", key, i64(start), i64(stop)), convInt("ZREMRANGEBYRANK"))
}

// ZRemRangeByScore removes all elements in the sorted set stored at key
// with a score between min and max. Command Response: integer.
//
// https://valkey.io/commands/zremrangebyscore/
func (b *BaseBatch[T]) ZRemRangeByScore(key, min, max string) *T {
	return b.addCmd(command.NewText("ZREMRANGEBYSCORE", key, min, max), convInt("ZREMRANGEBYSCORE"))
}

// ZRemRangeByLex removes all elements in the sorted set stored at key with
// a value between min and max. Command Response: integer.
//
// https://valkey.io/commands/zremrangebylex/
func (b *BaseBatch[T]) ZRemRangeByLex(key, min, max string) *T {
	return b.addCmd(command.NewText("ZREMRANGEBYLEX", key, min, max), convInt("ZREMRANGEBYLEX"))
}
