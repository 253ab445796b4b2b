// Package dispatch is the execution dispatcher (C5): it takes a filled
// batch, hands its commands to a transport.Transport, and turns the raw
// replies into the caller-facing results the batch's own converters
// describe. Grounded on the teacher's redis.Client, which sits in the
// same spot between caller-facing methods and a raw *redis.Client/
// *redis.ClusterClient.
package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edirooss/valkeybatch/batch"
	"github.com/edirooss/valkeybatch/batcherrors"
	"github.com/edirooss/valkeybatch/command"
	"github.com/edirooss/valkeybatch/dispatch/transport"
)

// Execable is the subset of *batch.StandaloneBatch / *batch.ClusterBatch
// the dispatcher needs: both satisfy it through their embedded
// batch.Batch's promoted methods.
type Execable interface {
	IsAtomic() bool
	Commands() []command.Command
	Converters() []batch.Converter
	Err() error
	BinaryOutput() bool
	Submit() error
	Complete()
	Fail(error)
}

// Result is one batch execution's outcome: one converted value per
// command, same order as submitted. A command that failed server-side, or
// whose reply didn't match its converter's expected shape, has a typed
// error value (ResponseShapeError or ServerError) in its slot instead of
// a decoded value.
type Result struct {
	Values []any
	// CorrelationID identifies this exec call in logs, the batch-exec
	// analogue of the teacher's per-HTTP-request id.
	CorrelationID string
}

// Dispatcher executes batches against a transport.Transport.
type Dispatcher struct {
	transport transport.Transport
	log       *zap.Logger
}

// New constructs a Dispatcher. log is scoped with .Named("dispatch"), the
// same convention the teacher's constructors use.
func New(t transport.Transport, log *zap.Logger) *Dispatcher {
	return &Dispatcher{transport: t, log: log.Named("dispatch")}
}

// clusterOptions is implemented by *batch.ClusterBatch to expose its §6
// options envelope without dispatch importing the concrete type's fields
// directly.
type clusterOptions interface {
	ClusterOptions() batch.ClusterBatchOptions
}

// Exec submits b to the transport and returns its decoded results.
//
// Build-time errors (Err() != nil) never reach the transport, per §7's
// "raised immediately at the builder call site" policy: Exec returns that
// error without dialing out.
//
// raise_on_error resolution (Open Question, see DESIGN.md): standalone
// batches always surface the first server-side command error as Exec's
// return error, matching go-redis's own Pipeline/TxPipeline behavior,
// which the teacher's redis.Client relies on. Cluster batches instead
// respect ClusterBatchOptions.RaiseOnError explicitly; when false, every
// command's result — success or typed error — is returned in Values and
// Exec's error return reports only transport-level failure (connection,
// timeout, cancellation).
//
// Retry (RetryStrategy) applies only to non-atomic cluster batches: an
// atomic batch that partially applied before a retriable failure cannot
// be safely resubmitted without risking double application of its
// effects, so atomic batches never retry regardless of the option.
func (d *Dispatcher) Exec(ctx context.Context, b Execable) (*Result, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}

	corrID := uuid.New().String()
	log := d.log.With(zap.String("correlation_id", corrID), zap.Int("size", len(b.Commands())), zap.Bool("atomic", b.IsAtomic()))

	if err := b.Submit(); err != nil {
		log.Error("submit failed", zap.Error(err))
		return nil, err
	}

	opts, isCluster := any(b).(clusterOptions)
	var clusterOpts batch.ClusterBatchOptions
	if isCluster {
		clusterOpts = opts.ClusterOptions()
	}

	raiseOnError := true
	if isCluster {
		raiseOnError = clusterOpts.RaiseOnError
	}

	execCtx := ctx
	var cancel context.CancelFunc
	if isCluster && clusterOpts.TimeoutMillis != nil {
		execCtx, cancel = context.WithTimeout(ctx, time.Duration(*clusterOpts.TimeoutMillis)*time.Millisecond)
		defer cancel()
	}

	req := transport.Request{
		Commands:     b.Commands(),
		Atomic:       b.IsAtomic(),
		BinaryOutput: b.BinaryOutput(),
	}
	if isCluster && clusterOpts.Route != nil {
		req.Route = *clusterOpts.Route
	}

	canRetry := isCluster && !b.IsAtomic() && clusterOpts.RetryStrategy != nil
	replies, err := d.execWithRetry(execCtx, req, canRetry, clusterOpts, log)
	if err != nil {
		var timeoutMillis uint32
		if isCluster && clusterOpts.TimeoutMillis != nil {
			timeoutMillis = *clusterOpts.TimeoutMillis
		}
		classified := classifyTransportError(execCtx, err, timeoutMillis)
		b.Fail(classified)
		log.Error("exec failed", zap.Error(classified))
		return nil, classified
	}

	converters := b.Converters()
	values := make([]any, len(replies))
	var firstErr error
	for i, r := range replies {
		if r.Err != nil {
			se := &batcherrors.ServerError{Command: commandName(b.Commands(), i), Cause: r.Err}
			values[i] = se
			if firstErr == nil {
				firstErr = se
			}
			continue
		}
		if i < len(converters) {
			values[i] = converters[i](r.Value)
			if convErr, ok := values[i].(error); ok && firstErr == nil {
				firstErr = convErr
			}
		} else {
			values[i] = r.Value
		}
	}

	if firstErr != nil && raiseOnError {
		b.Fail(firstErr)
		return &Result{Values: values, CorrelationID: corrID}, firstErr
	}
	b.Complete()
	log.Debug("exec completed")
	return &Result{Values: values, CorrelationID: corrID}, nil
}

// execWithRetry retries a whole-batch transport failure at most once. A
// Transport.Exec error is always a connection-level failure in this
// design — per-command server errors surface through Reply.Err on an
// otherwise successful Exec call, never through its error return — so
// only RetryOnConnectionError governs this retry. RetryOnServerError is
// honored at the per-reply level instead (see Exec's raise_on_error
// handling): a server error in one reply never aborts the rest of the
// batch regardless of this flag.
func (d *Dispatcher) execWithRetry(ctx context.Context, req transport.Request, canRetry bool, opts batch.ClusterBatchOptions, log *zap.Logger) ([]transport.Reply, error) {
	replies, err := d.transport.Exec(ctx, req)
	if err == nil || !canRetry || !opts.RetryStrategy.RetryOnConnectionError {
		return replies, err
	}
	log.Warn("retrying batch after transport error", zap.Error(err))
	return d.transport.Exec(ctx, req)
}

func classifyTransportError(ctx context.Context, err error, timeoutMillis uint32) error {
	if ctx.Err() == context.DeadlineExceeded {
		return &batcherrors.TimeoutError{TimeoutMillis: timeoutMillis}
	}
	if ctx.Err() == context.Canceled {
		return &batcherrors.CancellationError{Cause: err}
	}
	return &batcherrors.ConnectionError{Cause: err}
}

func commandName(cmds []command.Command, i int) string {
	if i < 0 || i >= len(cmds) {
		return ""
	}
	return cmds[i].Name()
}
