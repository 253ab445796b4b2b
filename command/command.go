// Package command defines the immutable command record appended to a batch
// by every builder method.
package command

import "github.com/edirooss/valkeybatch/bval"

// Command is an immutable (name, ordered argument vector) tuple. Argument
// order is semantically significant and is preserved exactly as built.
//
// Commands built via NewText carry only text arguments and are not binary
// until AddArgument widens them with a non-text-convertible value; commands
// built via NewBinary are binary from the start, whatever their arguments
// turn out to be. The distinction exists only to let the builder choose the
// right construction path — once built, both forms serialize identically.
type Command struct {
	name    string
	args    [][]byte
	binary  bool
}

// NewText builds a text-argument command. name must be non-empty.
func NewText(name string, args ...string) Command {
	raw := make([][]byte, len(args))
	for i, a := range args {
		raw[i] = []byte(a)
	}
	return Command{name: name, args: raw}
}

// NewBinary builds an empty binary-argument command; arguments are added
// with AddArgument.
func NewBinary(name string) Command {
	return Command{name: name, binary: true}
}

// AddArgument appends one argument, preserving its raw bytes. It takes a
// bval.Value so binary payloads are never routed through a string
// conversion; a non-text-convertible value marks c as binary.
func (c Command) AddArgument(v bval.Value) Command {
	c.args = append(append([][]byte{}, c.args...), v.AsBytes())
	if !v.IsTextConvertible() {
		c.binary = true
	}
	return c
}

// AddText appends one text argument.
func (c Command) AddText(s string) Command {
	c.args = append(append([][]byte{}, c.args...), []byte(s))
	return c
}

// Name returns the command's wire name (e.g. "SET").
func (c Command) Name() string {
	return c.name
}

// Arguments returns the ordered raw argument vector. The returned slice is
// a defensive copy; mutating it does not affect c.
func (c Command) Arguments() [][]byte {
	out := make([][]byte, len(c.args))
	for i, a := range c.args {
		cp := make([]byte, len(a))
		copy(cp, a)
		out[i] = cp
	}
	return out
}

// ArgumentStrings returns the argument vector rendered as strings. Safe to
// call even on a binary command: Go strings are byte sequences, so no data
// is lost — this exists for transports (like go-redis) whose call
// signatures take ...any/...string and copy the bytes internally anyway.
func (c Command) ArgumentStrings() []string {
	out := make([]string, len(c.args))
	for i, a := range c.args {
		out[i] = string(a)
	}
	return out
}

// IsBinary reports whether c was assembled via the binary-safe path: true
// for every NewBinary command, and for a NewText command once AddArgument
// has added a non-text-convertible value.
func (c Command) IsBinary() bool {
	return c.binary
}
