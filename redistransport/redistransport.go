// Package redistransport is the concrete transport.Transport
// implementation backing dispatch.Dispatcher, wrapping go-redis the same
// way the teacher's redis.Client wraps *redis.Client: a thin layer that
// owns connection pooling and talks the wire protocol, leaving command
// assembly and response typing to callers.
package redistransport

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/edirooss/valkeybatch/config"
	"github.com/edirooss/valkeybatch/dispatch/transport"
)

// Client is a transport.Transport backed by a go-redis universal client,
// accepting either a standalone *redis.Client or a *redis.ClusterClient.
type Client struct {
	rdb redis.UniversalClient
	log *zap.Logger
}

// NewStandalone constructs a Client against a single Valkey/Redis primary.
// Field mapping mirrors the teacher's redis.NewClient construction of
// *redis.Options.
func NewStandalone(cfg config.StandaloneConfig, log *zap.Logger) *Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
	})
	return &Client{rdb: rdb, log: log.Named("redistransport")}
}

// NewCluster constructs a Client against a Valkey/Redis cluster deployment.
func NewCluster(cfg config.ClusterConfig, log *zap.Logger) *Client {
	rdb := redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:        cfg.SeedAddrs,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
	})
	return &Client{rdb: rdb, log: log.Named("redistransport")}
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Exec implements transport.Transport by running req's commands through a
// go-redis pipeline (non-atomic) or transaction pipeline (atomic), using
// the client's generic Do so the raw, loosely-typed reply shape the
// batch package's converters expect is preserved rather than coerced
// through go-redis's hundreds of typed command wrappers.
//
// req.Route carries an advisory single-node hint (§6); this module does
// not perform cluster topology discovery (§1 Out of scope), so the route
// is logged for observability only and left for a future cluster-aware
// transport to honor.
func (c *Client) Exec(ctx context.Context, req transport.Request) ([]transport.Reply, error) {
	if req.Route != nil {
		c.log.Debug("route hint present, not applied", zap.Any("route", req.Route))
	}
	if len(req.Commands) == 0 {
		return nil, nil
	}

	var pipe redis.Pipeliner
	if req.Atomic {
		pipe = c.rdb.TxPipeline()
	} else {
		pipe = c.rdb.Pipeline()
	}

	cmds := make([]*redis.Cmd, len(req.Commands))
	for i, cmd := range req.Commands {
		args := make([]any, 0, len(cmd.Arguments())+1)
		args = append(args, cmd.Name())
		for _, a := range cmd.Arguments() {
			args = append(args, a)
		}
		cmds[i] = pipe.Do(ctx, args...)
	}

	// Pipeliner.Exec returns the error of the first failed command, not just
	// connection-level failures — a WRONGTYPE on one command in a pipeline, or
	// a CROSSSLOT on an atomic cluster batch, comes back here too. Each Cmder's
	// own result/error is populated independently of this aggregate return, so
	// only a failure that isn't a server-side RESP error (redis.Error) — a
	// genuine dial/network failure not attributable to any individual command —
	// is fatal to the whole call. Everything else falls through to the
	// per-command loop below so successful commands still report their values
	// and the failing one surfaces through its own Reply.Err.
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		var redisErr redis.Error
		if !errors.As(err, &redisErr) {
			c.log.Error("pipeline exec failed", zap.Error(err), zap.Int("size", len(req.Commands)))
			return nil, err
		}
	}

	replies := make([]transport.Reply, len(cmds))
	for i, cmd := range cmds {
		v, err := cmd.Result()
		if err == redis.Nil {
			replies[i] = transport.Reply{Value: nil}
			continue
		}
		if err != nil {
			replies[i] = transport.Reply{Err: err}
			continue
		}
		replies[i] = transport.Reply{Value: normalizeReply(v, req.BinaryOutput)}
	}
	return replies, nil
}

// normalizeReply adapts go-redis's decoded reply types to the loosely-typed
// shape batch/converters.go expects, optionally decoding textual replies as
// raw bytes instead of Go strings when the batch requested binary output.
func normalizeReply(v any, binaryOutput bool) any {
	switch t := v.(type) {
	case string:
		if binaryOutput {
			return []byte(t)
		}
		return t
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = normalizeReply(el, binaryOutput)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			ks, _ := k.(string)
			out[ks] = normalizeReply(val, binaryOutput)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeReply(val, binaryOutput)
		}
		return out
	default:
		return v
	}
}
