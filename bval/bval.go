// Package bval carries argument and reply payloads that may or may not be
// safely representable as text.
package bval

import (
	"unicode/utf8"

	"github.com/edirooss/valkeybatch/batcherrors"
)

// Value wraps a byte sequence together with an advisory predicate recording
// whether those bytes round-trip losslessly through a text encoding. Command
// builders use the predicate to decide whether an argument can travel
// through a text-only code path or must be carried as raw bytes end to end.
//
// A Value is immutable once constructed.
type Value struct {
	b        []byte
	textSafe bool
}

// FromText wraps a Go string. Strings are always text-convertible.
func FromText(s string) Value {
	return Value{b: []byte(s), textSafe: true}
}

// FromBytes wraps a raw byte slice, copying it so the Value stays immutable
// even if the caller mutates the original slice afterward. Text-convertible
// iff the bytes are valid UTF-8.
func FromBytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{b: cp, textSafe: utf8.Valid(cp)}
}

// AsBytes returns the raw bytes. Always succeeds and never loses data.
func (v Value) AsBytes() []byte {
	out := make([]byte, len(v.b))
	copy(out, v.b)
	return out
}

// AsText returns the text view of v, or false if v is not text-convertible.
// Callers that need an error rather than an ok-bool should use ErrAsText.
func (v Value) AsText() (string, bool) {
	if !v.textSafe {
		return "", false
	}
	return string(v.b), true
}

// IsTextConvertible reports whether v can be rendered as text without loss.
func (v Value) IsTextConvertible() bool {
	return v.textSafe
}

// Len reports the number of bytes carried by v.
func (v Value) Len() int {
	return len(v.b)
}

// ErrAsText is like AsText but returns a *batcherrors.BinaryConversionError
// instead of a bool, for call sites that propagate an error rather than
// branch on one.
func (v Value) ErrAsText(context string) (string, error) {
	if !v.textSafe {
		return "", &batcherrors.BinaryConversionError{Context: context}
	}
	return string(v.b), nil
}
