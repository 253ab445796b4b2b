package batch

import "github.com/edirooss/valkeybatch/command"

// SetBit sets or clears the bit at offset in the string value stored at
// key. Command Response: integer (previous bit value).
//
// https://valkey.io/commands/setbit/
func (b *BaseBatch[T]) SetBit(key string, offset int64, value int64) *T {
	return b.addCmd(command.NewText("SETBIT", key, i64(offset), i64(value)), convInt("SETBIT"))
}

// GetBit returns the bit at offset in the string value stored at key.
// Command Response: integer.
//
// https://valkey.io/commands/getbit/
func (b *BaseBatch[T]) GetBit(key string, offset int64) *T {
	return b.addCmd(command.NewText("GETBIT", key, i64(offset)), convInt("GETBIT"))
}

// BitCount counts the number of set bits in the string value stored at
// key, accepting the 1-, 3-, and 4-argument overloads: a bare key, a
// key with a start/end byte range, or a key with a start/end range in
// BIT units (§4.3). Pass nil start/end for the bare-key form; pass
// bitUnit=true to select BIT instead of BYTE as the range unit.
// Command Response: integer.
//
// https://valkey.io/commands/bitcount/
func (b *BaseBatch[T]) BitCount(key string, start, end *int64, bitUnit bool) *T {
	ab := newArgBuilder(key)
	if start != nil && end != nil {
		ab.token(i64(*start), i64(*end))
		if bitUnit {
			ab.token("BIT")
		}
	}
	return b.addCmd(command.NewText("BITCOUNT", ab.build()...), convInt("BITCOUNT"))
}

// BitPos returns the position of the first bit set to bit in the string
// value stored at key, within the optional start/end range. Command
// Response: integer.
//
// https://valkey.io/commands/bitpos/
func (b *BaseBatch[T]) BitPos(key string, bit int64, start, end *int64, bitUnit bool) *T {
	ab := newArgBuilder(key, i64(bit))
	if start != nil {
		ab.token(i64(*start))
		if end != nil {
			ab.token(i64(*end))
			if bitUnit {
				ab.token("BIT")
			}
		}
	}
	return b.addCmd(command.NewText("BITPOS", ab.build()...), convInt("BITPOS"))
}

// BitOpAnd performs a bitwise AND between the strings stored at keys and
// stores the result in destination. Command Response: integer (length of
// the resulting string).
//
// https://valkey.io/commands/bitop/
func (b *BaseBatch[T]) BitOpAnd(destination string, keys ...string) *T {
	return b.bitOp("AND", destination, keys)
}

// BitOpOr is BitOpAnd with a bitwise OR.
func (b *BaseBatch[T]) BitOpOr(destination string, keys ...string) *T {
	return b.bitOp("OR", destination, keys)
}

// BitOpXor is BitOpAnd with a bitwise XOR.
func (b *BaseBatch[T]) BitOpXor(destination string, keys ...string) *T {
	return b.bitOp("XOR", destination, keys)
}

// BitOpNot performs a bitwise NOT of the string stored at key, storing the
// result in destination. NOT accepts exactly one source key (§4.3).
func (b *BaseBatch[T]) BitOpNot(destination, key string) *T {
	return b.bitOp("NOT", destination, []string{key})
}

func (b *BaseBatch[T]) bitOp(op, destination string, keys []string) *T {
	if len(keys) == 0 {
		return b.argErr("BITOP", "keys must not be empty")
	}
	if op == "NOT" && len(keys) != 1 {
		return b.argErr("BITOP", "NOT accepts exactly one source key")
	}
	args := append([]string{op, destination}, keys...)
	return b.addCmd(command.NewText("BITOP", args...), convInt("BITOP"))
}

// BitFieldOp is one GET/SET/INCRBY/OVERFLOW sub-operation within a
// BITFIELD command.
type BitFieldOp struct {
	// Sub is "GET", "SET", "INCRBY", or "OVERFLOW".
	Sub      string
	Type     string // e.g. "u8", "i16"; empty for OVERFLOW
	Offset   string // e.g. "0", "#1"; empty for OVERFLOW
	Value    int64  // SET's value or INCRBY's increment
	Overflow string // OVERFLOW's WRAP|SAT|FAIL argument
}

func (o BitFieldOp) tokens() []string {
	switch o.Sub {
	case "GET":
		return []string{"GET", o.Type, o.Offset}
	case "SET":
		return []string{"SET", o.Type, o.Offset, i64(o.Value)}
	case "INCRBY":
		return []string{"INCRBY", o.Type, o.Offset, i64(o.Value)}
	case "OVERFLOW":
		return []string{"OVERFLOW", o.Overflow}
	default:
		return nil
	}
}

// BitField applies a sequence of sub-operations atomically to the string
// value stored at key. Command Response: array of nullable integer (one
// per GET/SET/INCRBY sub-operation; OVERFLOW contributes no response
// slot).
//
// https://valkey.io/commands/bitfield/
func (b *BaseBatch[T]) BitField(key string, ops ...BitFieldOp) *T {
	if len(ops) == 0 {
		return b.argErr("BITFIELD", "ops must not be empty")
	}
	ab := newArgBuilder(key)
	for _, op := range ops {
		ab.token(op.tokens()...)
	}
	return b.addCmd(command.NewText("BITFIELD", ab.build()...), convArray("BITFIELD"))
}

// BitFieldRO is the read-only variant of BitField, accepting only GET
// sub-operations. Command Response: array of integer.
//
// https://valkey.io/commands/bitfield_ro/
func (b *BaseBatch[T]) BitFieldRO(key string, ops ...BitFieldOp) *T {
	if len(ops) == 0 {
		return b.argErr("BITFIELD_RO", "ops must not be empty")
	}
	ab := newArgBuilder(key)
	for _, op := range ops {
		if op.Sub != "GET" {
			return b.argErr("BITFIELD_RO", "only GET sub-operations are permitted")
		}
		ab.token(op.tokens()...)
	}
	return b.addCmd(command.NewText("BITFIELD_RO", ab.build()...), convArray("BITFIELD_RO"))
}
