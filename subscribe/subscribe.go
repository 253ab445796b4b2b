// Package subscribe carries pub/sub subscription configuration (§3) for
// callers that want PSUBSCRIBE/SUBSCRIBE/SSUBSCRIBE topology alongside a
// batch client, without the batch builder itself gaining any streaming
// surface. It is round-tripped unchanged to the transport layer, the same
// way the teacher's client passed channel configuration through to
// go-redis's own PubSub type without reinterpreting it.
package subscribe

// Kind selects which subscription command a Config describes.
type Kind int

const (
	// Channels subscribes to exact channel names (SUBSCRIBE).
	Channels Kind = iota
	// Patterns subscribes to glob patterns (PSUBSCRIBE).
	Patterns
	// ShardChannels subscribes to cluster shard channels (SSUBSCRIBE).
	ShardChannels
)

// Config describes one subscription request: a kind and the channel
// names or patterns to subscribe to.
type Config struct {
	Kind    Kind
	Targets []string
}

// NewChannels builds a Config for SUBSCRIBE.
func NewChannels(channels ...string) Config {
	return Config{Kind: Channels, Targets: channels}
}

// NewPatterns builds a Config for PSUBSCRIBE.
func NewPatterns(patterns ...string) Config {
	return Config{Kind: Patterns, Targets: patterns}
}

// NewShardChannels builds a Config for SSUBSCRIBE.
func NewShardChannels(shardChannels ...string) Config {
	return Config{Kind: ShardChannels, Targets: shardChannels}
}
