// Package store persists each named collection as a single JSON blob in a
// durable key-value slot. Backends share the same whole-slot
// read-modify-write semantics the original browser storage had.
package store

import (
	"context"
	"encoding/json"
)

// KV is one durable slot per collection. Implementations must make Set
// atomic for blobs of this size: a reader never observes a partial write.
type KV interface {
	// Get returns the raw slot content. ok is false when the slot has
	// never been written.
	Get(ctx context.Context, slot string) (data []byte, ok bool, err error)
	// Set replaces the slot content.
	Set(ctx context.Context, slot string, data []byte) error
}

// Load reads a collection from its slot. A missing, unreadable or
// unparsable slot degrades to fallback — callers never see an error for
// absent data.
func Load[T any](ctx context.Context, kv KV, slot string, fallback []T) []T {
	data, ok, err := kv.Get(ctx, slot)
	if err != nil || !ok {
		return fallback
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return fallback
	}
	if out == nil {
		return fallback
	}
	return out
}

// Save serializes the full collection and replaces the slot content.
func Save[T any](ctx context.Context, kv KV, slot string, value []T) error {
	if value == nil {
		value = []T{}
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return kv.Set(ctx, slot, data)
}
