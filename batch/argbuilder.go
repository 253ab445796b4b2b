package batch

import (
	"sort"
	"strconv"
)

// sortedKeys returns m's keys in ascending lexical order. Multi-pair
// commands (MSET, HSET, ZADD, ...) take a Go map for caller convenience but
// must emit a deterministic wire order — map iteration order is randomized
// per run, which would otherwise make the same call produce a different
// argument vector on every build.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// argBuilder accumulates wire tokens for commands with many optional
// trailing arguments (SCAN's MATCH/COUNT/TYPE, GEOSEARCH's BY*/ASC|DESC/
// COUNT/WITH*, ZADD's NX|XX/GT|LT/CH/INCR, XADD's NOMKSTREAM/trim
// options, ...). It is the wire-token analogue of the teacher's
// RemuxCommandBuilder: each With* call conditionally appends tokens,
// letting call sites read as a flat list of "emit this token if that
// option is set" without repeated hand-written if-blocks at every call
// site.
type argBuilder struct {
	args []string
}

func newArgBuilder(seed ...string) *argBuilder {
	return &argBuilder{args: append([]string{}, seed...)}
}

// token unconditionally appends one or more literal tokens.
func (b *argBuilder) token(tokens ...string) *argBuilder {
	b.args = append(b.args, tokens...)
	return b
}

// when appends tokens only if cond is true.
func (b *argBuilder) when(cond bool, tokens ...string) *argBuilder {
	if cond {
		b.args = append(b.args, tokens...)
	}
	return b
}

// withInt appends flag and the base-10 rendering of val.
func (b *argBuilder) withInt(flag string, val int64) *argBuilder {
	b.args = append(b.args, flag, strconv.FormatInt(val, 10))
	return b
}

// withOptionalInt appends flag and val only if present.
func (b *argBuilder) withOptionalInt(flag string, val *int64) *argBuilder {
	if val != nil {
		b.withInt(flag, *val)
	}
	return b
}

// withOptionalUint appends flag and val only if present.
func (b *argBuilder) withOptionalUint(flag string, val *uint64) *argBuilder {
	if val != nil {
		b.args = append(b.args, flag, strconv.FormatUint(*val, 10))
	}
	return b
}

// withString appends flag and val only if val is non-empty.
func (b *argBuilder) withString(flag, val string) *argBuilder {
	if val != "" {
		b.args = append(b.args, flag, val)
	}
	return b
}

// build returns the accumulated token vector.
func (b *argBuilder) build() []string {
	out := make([]string, len(b.args))
	copy(out, b.args)
	return out
}
