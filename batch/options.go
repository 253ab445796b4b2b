package batch

import "github.com/edirooss/valkeybatch/config"

// RetryStrategy toggles retry behavior for non-atomic cluster batches.
// Atomic batches are never silently retried: partial replay would break
// transaction semantics (§4.4).
type RetryStrategy struct {
	RetryOnServerError     bool
	RetryOnConnectionError bool
}

// NewRetryStrategy returns a strategy with both toggles disabled.
func NewRetryStrategy() *RetryStrategy {
	return &RetryStrategy{}
}

// WithRetryOnServerError enables or disables retrying on classified-
// retryable server errors.
func (rs *RetryStrategy) WithRetryOnServerError(v bool) *RetryStrategy {
	rs.RetryOnServerError = v
	return rs
}

// WithRetryOnConnectionError enables or disables retrying on connection
// errors.
func (rs *RetryStrategy) WithRetryOnConnectionError(v bool) *RetryStrategy {
	rs.RetryOnConnectionError = v
	return rs
}

// ClusterBatchOptions is the options envelope (§6) surrounding a submitted
// cluster batch: deadline, error-surfacing policy, routing, and retry
// enablement.
type ClusterBatchOptions struct {
	TimeoutMillis *uint32
	RaiseOnError  bool
	Route         *config.SingleNodeRoute
	RetryStrategy *RetryStrategy
}

// NewClusterBatchOptions returns an empty options bundle; every field is
// optional and defaults to the dispatcher's own defaults when unset.
func NewClusterBatchOptions() *ClusterBatchOptions {
	return &ClusterBatchOptions{}
}

// WithTimeout sets the whole-batch deadline in milliseconds.
func (o *ClusterBatchOptions) WithTimeout(ms uint32) *ClusterBatchOptions {
	o.TimeoutMillis = &ms
	return o
}

// WithRaiseOnError configures whether the first in-band command error
// aborts decoding and is raised as a top-level batch failure.
func (o *ClusterBatchOptions) WithRaiseOnError(v bool) *ClusterBatchOptions {
	o.RaiseOnError = v
	return o
}

// WithRoute pins an atomic batch's execution to a single node. Ignored for
// non-atomic batches (§4.4).
func (o *ClusterBatchOptions) WithRoute(route config.SingleNodeRoute) *ClusterBatchOptions {
	o.Route = &route
	return o
}

// WithRetryStrategy sets the retry enablement bits. Applies only to
// non-atomic batches.
func (o *ClusterBatchOptions) WithRetryStrategy(rs RetryStrategy) *ClusterBatchOptions {
	o.RetryStrategy = &rs
	return o
}
