// Package transport defines the stable boundary between the execution
// dispatcher (C5) and whatever actually talks wire protocol to a
// Valkey/Redis deployment. The batch builder and dispatcher know nothing
// about connections, pooling, or cluster topology; that is this
// interface's job, concretely implemented by redistransport.
package transport

import (
	"context"

	"github.com/edirooss/valkeybatch/command"
)

// Request is everything the dispatcher hands to a Transport for one exec
// call: the ordered command list and whether they must run atomically.
type Request struct {
	Commands []command.Command
	Atomic   bool
	// BinaryOutput requests byte-string decoding of textual replies
	// instead of Go strings, per the batch's sticky WithBinaryOutput flag.
	BinaryOutput bool
	// Route, when non-nil, pins a cluster request to a specific node. Nil
	// for standalone requests and for cluster requests with no explicit
	// route.
	Route any
}

// Reply is one command's raw, loosely-typed decoded result: nil, string,
// []byte, int64, float64, bool, []any, map[string]any, or an error value
// if the server itself returned one for that command.
type Reply struct {
	Value any
	Err   error
}

// Transport executes a batch of commands against a Valkey/Redis
// deployment and returns one Reply per command, same order as submitted.
// Implementations own connection lifecycle, pooling, and retries below
// this contract; the dispatcher only retries whole requests, never
// individual commands within one.
type Transport interface {
	Exec(ctx context.Context, req Request) ([]Reply, error)
}
