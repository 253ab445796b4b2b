// Package config holds ambient connection configuration for the transport
// collaborator, in the same inline-options-struct idiom the teacher's
// redis.NewClient used for its *redis.Options construction.
package config

import "time"

// StandaloneConfig configures a connection to a single Valkey/Redis
// primary. Field shape and defaults mirror redis.NewClient's construction
// of *redis.Options.
type StandaloneConfig struct {
	Addr         string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
}

// DefaultStandaloneConfig returns the same defaults the teacher's
// redis.NewClient hardcoded.
func DefaultStandaloneConfig(addr string) StandaloneConfig {
	return StandaloneConfig{
		Addr:         addr,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
	}
}

// ClusterConfig configures a connection to a Valkey/Redis cluster via a set
// of seed addresses.
type ClusterConfig struct {
	SeedAddrs    []string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
}

// DefaultClusterConfig returns cluster defaults matching StandaloneConfig's.
func DefaultClusterConfig(seedAddrs ...string) ClusterConfig {
	return ClusterConfig{
		SeedAddrs:    seedAddrs,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
	}
}

// RouteKind identifies how a SingleNodeRoute selects its target node. The
// core does not perform cluster topology discovery; it only carries enough
// of a hint for the transport to act on (§1 Out of scope: "cluster
// topology discovery and slot-mapping layer").
type RouteKind int

const (
	// RouteByAddress pins the batch to the node listening at Addr.
	RouteByAddress RouteKind = iota
	// RouteBySlotKey pins the batch to whichever node currently owns the
	// slot that SlotKey hashes to.
	RouteBySlotKey
	// RouteRandomPrimary lets the transport pick any primary.
	RouteRandomPrimary
)

// SingleNodeRoute is a routing hint directing an atomic cluster batch to a
// specific node. Absent, the transport infers the node from the batch's key
// slot.
type SingleNodeRoute struct {
	Kind    RouteKind
	Addr    string
	SlotKey string
}

// ByAddress builds a route pinned to a specific node address.
func ByAddress(addr string) SingleNodeRoute {
	return SingleNodeRoute{Kind: RouteByAddress, Addr: addr}
}

// BySlotKey builds a route pinned to the node owning slotKey's hash slot.
func BySlotKey(slotKey string) SingleNodeRoute {
	return SingleNodeRoute{Kind: RouteBySlotKey, SlotKey: slotKey}
}

// RandomPrimary builds a route that lets the transport pick any primary.
func RandomPrimary() SingleNodeRoute {
	return SingleNodeRoute{Kind: RouteRandomPrimary}
}
