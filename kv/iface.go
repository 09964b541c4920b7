package kv

import (
	"golang.org/x/net/context"
)

// KV is a simple key-value store. Flushed delta segments are stored
// in a KV under their content hash; a segment is durable once Put
// returns nil.
type KV interface {
	Get(ctx context.Context, key []byte) ([]byte, error)
	Put(ctx context.Context, key, value []byte) error
}
