// Package cache stores serialized comparison reports keyed by their inputs.
package cache

import "context"

// Cache is a string key/value store. A miss is reported as ok == false with
// a nil error; err is reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
