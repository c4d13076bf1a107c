// Package cache provides content-addressed caching for layouts and rendered
// artifacts.
//
// Three backends implement [Cache]:
//   - [FileCache]: JSON entry files under a directory, used by the CLI
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: stores nothing, used when caching is disabled
//
// Keys come from a [Keyer]. The default keyer hashes the inputs that affect
// the output, so two requests with the same words and options share an entry.
// Wrap it in a [ScopedKeyer] to give tenants separate namespaces.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default entry lifetimes.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// NullCache misses on every read and drops every write. Runs with caching
// disabled get one.
type NullCache struct{}

// NewNullCache returns a cache that never stores anything.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
