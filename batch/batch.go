// Package batch is the typed, fluent batch-builder surface (C3) and the
// batch envelope it fills in (C4): one method per high-level Valkey/Redis
// operation, each appending exactly one command record plus one response
// converter.
package batch

import (
	"github.com/edirooss/valkeybatch/batcherrors"
	"github.com/edirooss/valkeybatch/command"
)

// State is the per-batch lifecycle state machine (§4.3): Open while
// commands can still be appended, Submitted once handed to the dispatcher,
// then Completed or Failed once a result has been decoded.
type State int

const (
	// StateOpen accepts further appends.
	StateOpen State = iota
	// StateSubmitted has been handed to the dispatcher; no further
	// appends are possible.
	StateSubmitted
	// StateCompleted has a fully decoded response.
	StateCompleted
	// StateFailed terminated with an error; the batch is discarded from
	// here, no reuse after submission.
	StateFailed
)

// Batch is the ordered command list and bookkeeping shared by standalone
// and cluster batches (§3 Batch envelope).
type Batch struct {
	isAtomic     bool
	binaryOutput bool
	commands     []command.Command
	converters   []Converter
	state        State
	err          error
}

// newBatch constructs the shared envelope state for a new batch.
func newBatch(isAtomic bool) Batch {
	return Batch{isAtomic: isAtomic, state: StateOpen}
}

// IsAtomic reports whether the batch executes as a MULTI/EXEC transaction
// (true) or a pipeline (false). Does not mutate state.
func (b *Batch) IsAtomic() bool { return b.isAtomic }

// Size reports the number of commands appended so far. Does not mutate
// state.
func (b *Batch) Size() int { return len(b.commands) }

// IsEmpty reports whether no commands have been appended. Does not mutate
// state.
func (b *Batch) IsEmpty() bool { return len(b.commands) == 0 }

// Commands returns a read-only snapshot of the appended command records, in
// append order. Does not mutate state.
func (b *Batch) Commands() []command.Command {
	out := make([]command.Command, len(b.commands))
	copy(out, b.commands)
	return out
}

// Converters returns the per-command response converters, same length and
// order as Commands(). Used by the execution dispatcher.
func (b *Batch) Converters() []Converter {
	out := make([]Converter, len(b.converters))
	copy(out, b.converters)
	return out
}

// State reports the batch's current lifecycle state.
func (b *Batch) State() State { return b.state }

// Err returns the first build-time error raised at a builder call site
// (ArgumentError, BinaryConversionError, or WireGrammarError), or nil.
// Once set, further appends are no-ops: the invariant len(commands) ==
// len(converters) is preserved, and the dispatcher checks Err() before
// ever contacting the transport, so a malformed batch never leaves the
// process (see SPEC_FULL.md's resolution of the "raised immediately"
// Open Question: the error is latched at the call site and surfaced no
// later than submission, without breaking the fluent chain's return type).
func (b *Batch) Err() error { return b.err }

// BinaryOutput reports whether the batch was marked with WithBinaryOutput.
// This is a decoding-time flag, not something that changes how past or
// future Arguments were assembled (per DESIGN.md's resolution of the
// withBinaryOutput Open Question): the dispatcher forwards it to the
// transport, which then returns textual replies as []byte. The converters
// do not read it, so text-decoding converters (GET's, HGETALL's, ...) still
// turn those bytes into Go strings; only byte-returning converters such as
// DUMP's surface them as []byte.
func (b *Batch) BinaryOutput() bool { return b.binaryOutput }

// markSubmitted transitions Open -> Submitted. Leaves the state unchanged
// and returns the latched error if the batch already has a build error, or
// an ArgumentError if it isn't Open.
func (b *Batch) markSubmitted() error {
	if b.err != nil {
		return b.err
	}
	if b.state != StateOpen {
		return &batcherrors.ArgumentError{Method: "exec", Reason: "batch already submitted"}
	}
	b.state = StateSubmitted
	return nil
}

func (b *Batch) markCompleted() { b.state = StateCompleted }
func (b *Batch) markFailed()    { b.state = StateFailed }

// Submit transitions the batch Open -> Submitted for the execution
// dispatcher (C5). Exported for dispatch's use; builder code never calls
// it directly.
func (b *Batch) Submit() error { return b.markSubmitted() }

// Complete marks the batch Completed once the dispatcher has decoded a
// response for every command. Exported for dispatch's use.
func (b *Batch) Complete() { b.markCompleted() }

// Fail marks the batch Failed and latches err as the batch's terminal
// error, if one isn't already latched. Exported for dispatch's use.
func (b *Batch) Fail(err error) {
	if b.err == nil {
		b.err = err
	}
	b.markFailed()
}

// BaseBatch is the shared generic core for both StandaloneBatch and
// ClusterBatch: one set of builder methods, parameterized over the
// concrete batch type so every method can keep returning *T for chaining.
// This mirrors valkey-glide's BaseBatch[T StandaloneBatch | ClusterBatch]
// generic-self pattern (see SPEC_FULL.md), the cleanest Go expression of
// "one builder surface, two batch kinds".
type BaseBatch[T BatchKind] struct {
	Batch
	self *T
}

// BatchKind constrains which concrete types may embed BaseBatch.
type BatchKind interface {
	StandaloneBatch | ClusterBatch
}

// addCmd appends a command with a converter, enforcing the commands/
// converters length invariant and the Open-state precondition. Once a build
// error is latched, addCmd appends nothing, so chained calls after a
// failure are cheap and safe; once state is no longer Open, it appends
// nothing and latches an ArgumentError.
func (b *BaseBatch[T]) addCmd(cmd command.Command, conv Converter) *T {
	if b.err != nil {
		return b.self
	}
	if b.state != StateOpen {
		b.err = &batcherrors.ArgumentError{Method: cmd.Name(), Reason: "batch already submitted"}
		return b.self
	}
	b.commands = append(b.commands, cmd)
	b.converters = append(b.converters, conv)
	return b.self
}

// fail latches a build-time error raised at a builder call site. Only the
// first error is kept, matching §7's "raised immediately" propagation
// policy applied to a chainable builder.
func (b *BaseBatch[T]) fail(err error) *T {
	if b.err == nil {
		b.err = err
	}
	return b.self
}

// argErr is a convenience for fail(&batcherrors.ArgumentError{...}).
func (b *BaseBatch[T]) argErr(method, reason string) *T {
	return b.fail(&batcherrors.ArgumentError{Method: method, Reason: reason})
}

// WithBinaryOutput sets the sticky binary-output decoding flag and returns
// self for chaining.
func (b *BaseBatch[T]) WithBinaryOutput() *T {
	b.binaryOutput = true
	return b.self
}

// StandaloneBatch is the batch implementation for a single Valkey/Redis
// primary (no cluster options envelope).
type StandaloneBatch struct {
	BaseBatch[StandaloneBatch]
}

// NewStandaloneBatch creates a batch against a standalone server.
// isAtomic selects MULTI/EXEC transaction semantics (true) or pipeline
// semantics (false).
func NewStandaloneBatch(isAtomic bool) *StandaloneBatch {
	b := &StandaloneBatch{BaseBatch[StandaloneBatch]{Batch: newBatch(isAtomic)}}
	b.self = b
	return b
}

// NewTransaction is a convenience constructor for an atomic standalone
// batch, matching the source's historical "Transaction" naming (§9 Design
// notes: Transaction/ClusterTransaction are degenerate is_atomic=true
// batches, modeled here as constructors rather than distinct types).
func NewTransaction() *StandaloneBatch {
	return NewStandaloneBatch(true)
}

// ClusterBatch is the batch implementation for a Valkey/Redis cluster; it
// additionally carries the §6 options envelope (timeout, raise-on-error,
// route, retry strategy).
type ClusterBatch struct {
	BaseBatch[ClusterBatch]
	Options ClusterBatchOptions
}

// NewClusterBatch creates a batch against a cluster deployment.
func NewClusterBatch(isAtomic bool) *ClusterBatch {
	b := &ClusterBatch{BaseBatch: BaseBatch[ClusterBatch]{Batch: newBatch(isAtomic)}}
	b.self = b
	return b
}

// NewClusterTransaction is a convenience constructor for an atomic cluster
// batch (see NewTransaction).
func NewClusterTransaction() *ClusterBatch {
	return NewClusterBatch(true)
}

// WithOptions attaches the cluster options envelope and returns self for
// chaining.
func (b *ClusterBatch) WithOptions(opts ClusterBatchOptions) *ClusterBatch {
	b.Options = opts
	return b
}

// ClusterOptions returns the batch's §6 options envelope. Exported as a
// method, rather than relying on the exported Options field directly, so
// dispatch can read it through a narrow interface without importing the
// concrete ClusterBatch type.
func (b *ClusterBatch) ClusterOptions() ClusterBatchOptions { return b.Options }
