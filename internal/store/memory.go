// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package store

import (
	"context"
	"sync"
)

type memoryBackend struct {
	mu      sync.Mutex
	buckets map[string][]byte
}

func (b *memoryBackend) read(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.buckets[key]
	return v, ok, nil
}

func (b *memoryBackend) write(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buckets[key] = append([]byte(nil), value...)
	return nil
}

func (b *memoryBackend) close() error { return nil }

// NewMemory returns a store that keeps everything in process memory.
func NewMemory() Store {
	s, _ := newBucketStore(context.Background(), &memoryBackend{buckets: map[string][]byte{}})
	return s
}
