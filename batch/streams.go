package batch

import "github.com/edirooss/valkeybatch/command"

// XAddOptions configures XADD's optional NOMKSTREAM and trimming clauses.
type XAddOptions struct {
	NoMkStream bool
	// TrimStrategy is "MAXLEN" or "MINID"; empty disables trimming.
	TrimStrategy string
	TrimApprox   bool // ~ instead of exact trimming
	TrimThreshold string
	TrimLimit    *int64
}

func (o *XAddOptions) tokens() []string {
	if o == nil {
		return nil
	}
	ab := newArgBuilder()
	ab.when(o.NoMkStream, "NOMKSTREAM")
	if o.TrimStrategy != "" {
		ab.token(o.TrimStrategy)
		if o.TrimApprox {
			ab.token("~")
		} else {
			ab.token("=")
		}
		ab.token(o.TrimThreshold)
		ab.withOptionalInt("LIMIT", o.TrimLimit)
	}
	return ab.build()
}

// XAdd appends a new entry to the stream stored at key. id may be "*" to
// let the server assign an id. Command Response: non-nullable text (the
// assigned entry id).
//
// https://valkey.io/commands/xadd/
func (b *BaseBatch[T]) XAdd(key, id string, fieldValues map[string]string, opts *XAddOptions) *T {
	if len(fieldValues) == 0 {
		return b.argErr("XADD", "fieldValues must not be empty")
	}
	ab := newArgBuilder(key).token(opts.tokens()...).token(id)
	for _, f := range sortedKeys(fieldValues) {
		ab.token(f, fieldValues[f])
	}
	return b.addCmd(command.NewText("XADD", ab.build()...), convText("XADD"))
}

// XLen returns the number of entries in the stream stored at key. Command
// Response: integer.
//
// https://valkey.io/commands/xlen/
func (b *BaseBatch[T]) XLen(key string) *T {
	return b.addCmd(command.NewText("XLEN", key), convInt("XLEN"))
}

// XRange returns entries in the stream stored at key between start and
// end, inclusive. Command Response: array-pairs (id, field/value array).
//
// https://valkey.io/commands/xrange/
func (b *BaseBatch[T]) XRange(key, start, end string, count *int64) *T {
	ab := newArgBuilder(key, start, end)
	ab.withOptionalInt("COUNT", count)
	return b.addCmd(command.NewText("XRANGE", ab.build()...), convArray("XRANGE"))
}

// XRevRange is XRange traversed from end to start. Command Response:
// array-pairs.
//
// https://valkey.io/commands/xrevrange/
func (b *BaseBatch[T]) XRevRange(key, end, start string, count *int64) *T {
	ab := newArgBuilder(key, end, start)
	ab.withOptionalInt("COUNT", count)
	return b.addCmd(command.NewText("XREVRANGE", ab.build()...), convArray("XREVRANGE"))
}

// XDel removes the specified entries from the stream stored at key.
// Command Response: integer.
//
// https://valkey.io/commands/xdel/
func (b *BaseBatch[T]) XDel(key string, ids ...string) *T {
	if len(ids) == 0 {
		return b.argErr("XDEL", "ids must not be empty")
	}
	return b.addCmd(command.NewText("XDEL", append([]string{key}, ids...)...), convInt("XDEL"))
}

// XTrim trims the stream stored at key using the given strategy/threshold.
// Command Response: integer (number of entries removed).
//
// https://valkey.io/commands/xtrim/
func (b *BaseBatch[T]) XTrim(key, trimStrategy, threshold string, approx bool, limit *int64) *T {
	ab := newArgBuilder(key, trimStrategy)
	if approx {
		ab.token("~")
	} else {
		ab.token("=")
	}
	ab.token(threshold)
	ab.withOptionalInt("LIMIT", limit)
	return b.addCmd(command.NewText("XTRIM", ab.build()...), convInt("XTRIM"))
}

// XAck acknowledges that a message was processed by a consumer group.
// Command Response: integer.
//
// https://valkey.io/commands/xack/
func (b *BaseBatch[T]) XAck(key, group string, ids ...string) *T {
	if len(ids) == 0 {
		return b.argErr("XACK", "ids must not be empty")
	}
	return b.addCmd(command.NewText("XACK", append([]string{key, group}, ids...)...), convInt("XACK"))
}

// XReadOptions configures XREAD's optional COUNT/BLOCK clauses.
type XReadOptions struct {
	Count       *int64
	BlockMillis *int64
}

// XRead reads entries from one or more streams, only returning entries
// with an id greater than the given one. keys and ids must have equal
// length and are interleaved into the trailing `STREAMS k1 k2 id1 id2`
// clause per §4.3. Command Response: array-pairs (stream name, entries),
// or nil.
//
// https://valkey.io/commands/xread/
func (b *BaseBatch[T]) XRead(keys, ids []string, opts *XReadOptions) *T {
	if len(keys) == 0 || len(keys) != len(ids) {
		return b.argErr("XREAD", "keys and ids must be non-empty and equal length")
	}
	ab := newArgBuilder()
	if opts != nil {
		ab.withOptionalInt("COUNT", opts.Count)
		ab.withOptionalInt("BLOCK", opts.BlockMillis)
	}
	ab.token("STREAMS").token(keys...).token(ids...)
	return b.addCmd(command.NewText("XREAD", ab.build()...), convArray("XREAD"))
}

// XReadGroupOptions configures XREADGROUP's optional COUNT/BLOCK/NOACK
// clauses, applied via a dedicated options argument rather than inline
// varargs so STREAMS is never emitted twice by accident (§4.3).
type XReadGroupOptions struct {
	Count       *int64
	BlockMillis *int64
	NoAck       bool
}

// XReadGroup reads entries from one or more streams as a named consumer in
// a consumer group. Assembles `GROUP g c [COUNT n] [BLOCK ms] [NOACK]
// STREAMS k1 k2 id1 id2`, keys preceding ids, exactly once STREAMS token
// (§4.3). Command Response: array-pairs (stream name, entries), or nil.
//
// https://valkey.io/commands/xreadgroup/
func (b *BaseBatch[T]) XReadGroup(group, consumer string, keys, ids []string, opts *XReadGroupOptions) *T {
	if len(keys) == 0 || len(keys) != len(ids) {
		return b.argErr("XREADGROUP", "keys and ids must be non-empty and equal length")
	}
	ab := newArgBuilder("GROUP", group, consumer)
	if opts != nil {
		ab.withOptionalInt("COUNT", opts.Count)
		ab.withOptionalInt("BLOCK", opts.BlockMillis)
		ab.when(opts.NoAck, "NOACK")
	}
	ab.token("STREAMS").token(keys...).token(ids...)
	return b.addCmd(command.NewText("XREADGROUP", ab.build()...), convArray("XREADGROUP"))
}

// XGroupCreate creates a new consumer group for the stream stored at key.
// Command Response: non-nullable text ("OK").
//
// https://valkey.io/commands/xgroup-create/
func (b *BaseBatch[T]) XGroupCreate(key, group, id string, mkStream bool) *T {
	ab := newArgBuilder("CREATE", key, group, id)
	ab.when(mkStream, "MKSTREAM")
	return b.addCmd(command.NewText("XGROUP", ab.build()...), convText("XGROUP CREATE"))
}

// XGroupDestroy destroys a consumer group. Command Response: integer.
//
// https://valkey.io/commands/xgroup-destroy/
func (b *BaseBatch[T]) XGroupDestroy(key, group string) *T {
	return b.addCmd(command.NewText("XGROUP", "DESTROY", key, group), convInt("XGROUP DESTROY"))
}

// XGroupSetID sets the last-delivered id for a consumer group. Command
// Response: non-nullable text ("OK").
//
// https://valkey.io/commands/xgroup-setid/
func (b *BaseBatch[T]) XGroupSetID(key, group, id string) *T {
	return b.addCmd(command.NewText("XGROUP", "SETID", key, group, id), convText("XGROUP SETID"))
}

// XGroupCreateConsumer explicitly creates a consumer in a consumer group.
// Command Response: integer (1 if created, 0 if it already existed).
//
// https://valkey.io/commands/xgroup-createconsumer/
func (b *BaseBatch[T]) XGroupCreateConsumer(key, group, consumer string) *T {
	return b.addCmd(command.NewText("XGROUP", "CREATECONSUMER", key, group, consumer), convInt("XGROUP CREATECONSUMER"))
}

// XGroupDelConsumer removes a consumer from a consumer group. Command
// Response: integer (pending entries that consumer owned).
//
// https://valkey.io/commands/xgroup-delconsumer/
func (b *BaseBatch[T]) XGroupDelConsumer(key, group, consumer string) *T {
	return b.addCmd(command.NewText("XGROUP", "DELCONSUMER", key, group, consumer), convInt("XGROUP DELCONSUMER"))
}

// XAutoClaim transfers ownership of pending entries idle for at least
// minIdleMillis to consumer, starting from start. Command Response:
// array (next-start cursor, claimed entries, deleted ids).
//
// https://valkey.io/commands/xautoclaim/
func (b *BaseBatch[T]) XAutoClaim(key, group, consumer string, minIdleMillis int64, start string, count *int64) *T {
	ab := newArgBuilder(key, group, consumer, i64(minIdleMillis), start)
	ab.withOptionalInt("COUNT", count)
	return b.addCmd(command.NewText("XAUTOCLAIM", ab.build()...), convArray("XAUTOCLAIM"))
}

// XAutoClaimJustID is XAutoClaim with the JUSTID option: claimed entries
// are returned as bare ids. Command Response: array (next-start cursor,
// claimed ids, deleted ids).
//
// https://valkey.io/commands/xautoclaim/
func (b *BaseBatch[T]) XAutoClaimJustID(key, group, consumer string, minIdleMillis int64, start string, count *int64) *T {
	ab := newArgBuilder(key, group, consumer, i64(minIdleMillis), start)
	ab.withOptionalInt("COUNT", count)
	ab.token("JUSTID")
	return b.addCmd(command.NewText("XAUTOCLAIM", ab.build()...), convArray("XAUTOCLAIM"))
}

// XPending returns a summary of pending entries for a consumer group.
// Command Response: array (count, min id, max id, per-consumer counts).
//
// https://valkey.io/commands/xpending/
func (b *BaseBatch[T]) XPending(key, group string) *T {
	return b.addCmd(command.NewText("XPENDING", key, group), convArray("XPENDING"))
}

// XPendingExtended returns the extended pending-entries report, filtered
// by idle time, id range, count, and optionally consumer. Command
// Response: array of pending-entry descriptors.
//
// https://valkey.io/commands/xpending/
func (b *BaseBatch[T]) XPendingExtended(key, group string, minIdleMillis *int64, start, end string, count int64, consumer string) *T {
	ab := newArgBuilder(key, group)
	ab.withOptionalInt("IDLE", minIdleMillis)
	ab.token(start, end, i64(count))
	if consumer != "" {
		ab.token(consumer)
	}
	return b.addCmd(command.NewText("XPENDING", ab.build()...), convArray("XPENDING"))
}

// XClaimOptions configures XCLAIM's optional IDLE/TIME/RETRYCOUNT/FORCE
// clauses.
type XClaimOptions struct {
	IdleMillis    *int64
	TimeUnixMilli *int64
	RetryCount    *int64
	Force         bool
}

func (o *XClaimOptions) tokens() []string {
	if o == nil {
		return nil
	}
	ab := newArgBuilder()
	ab.withOptionalInt("IDLE", o.IdleMillis)
	ab.withOptionalInt("TIME", o.TimeUnixMilli)
	ab.withOptionalInt("RETRYCOUNT", o.RetryCount)
	ab.when(o.Force, "FORCE")
	return ab.build()
}

// XClaim changes the ownership of pending entries to consumer. Command
// Response: array-pairs (id, field/value array) for claimed entries.
//
// https://valkey.io/commands/xclaim/
func (b *BaseBatch[T]) XClaim(key, group, consumer string, minIdleMillis int64, ids []string, opts *XClaimOptions) *T {
	if len(ids) == 0 {
		return b.argErr("XCLAIM", "ids must not be empty")
	}
	ab := newArgBuilder(key, group, consumer, i64(minIdleMillis)).token(ids...).token(opts.tokens()...)
	return b.addCmd(command.NewText("XCLAIM", ab.build()...), convArray("XCLAIM"))
}

// XClaimJustID is XClaim with the JUSTID option. Command Response: array
// of claimed ids.
//
// https://valkey.io/commands/xclaim/
func (b *BaseBatch[T]) XClaimJustID(key, group, consumer string, minIdleMillis int64, ids []string, opts *XClaimOptions) *T {
	if len(ids) == 0 {
		return b.argErr("XCLAIM", "ids must not be empty")
	}
	ab := newArgBuilder(key, group, consumer, i64(minIdleMillis)).token(ids...).token(opts.tokens()...).token("JUSTID")
	return b.addCmd(command.NewText("XCLAIM", ab.build()...), convArray("XCLAIM"))
}

// XInfoStream returns general information about the stream stored at key.
// Command Response: map of text.
//
// https://valkey.io/commands/xinfo-stream/
func (b *BaseBatch[T]) XInfoStream(key string) *T {
	return b.addCmd(command.NewText("XINFO", "STREAM", key), convMap("XINFO STREAM"))
}

// XInfoConsumers returns the list of consumers in a consumer group.
// Command Response: array of map.
//
// https://valkey.io/commands/xinfo-consumers/
func (b *BaseBatch[T]) XInfoConsumers(key, group string) *T {
	return b.addCmd(command.NewText("XINFO", "CONSUMERS", key, group), convArray("XINFO CONSUMERS"))
}

// XInfoGroups returns the list of consumer groups for the stream stored
// at key. Command Response: array of map.
//
// https://valkey.io/commands/xinfo-groups/
func (b *BaseBatch[T]) XInfoGroups(key string) *T {
	return b.addCmd(command.NewText("XINFO", "GROUPS", key), convArray("XINFO GROUPS"))
}
