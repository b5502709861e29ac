// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileBackend keeps all buckets in one JSON object on disk.
type fileBackend struct {
	mu      sync.Mutex
	path    string
	buckets map[string]json.RawMessage
}

// OpenFile opens (or creates on first write) a JSON file store at path.
func OpenFile(ctx context.Context, path string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	be := &fileBackend{path: path, buckets: map[string]json.RawMessage{}}
	if err := be.load(); err != nil {
		return nil, err
	}
	return newBucketStore(ctx, be)
}

func (b *fileBackend) load() error {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &b.buckets); err != nil {
		return fmt.Errorf("invalid store file %s: %w", b.path, err)
	}
	if b.buckets == nil {
		b.buckets = map[string]json.RawMessage{}
	}
	return nil
}

func (b *fileBackend) read(_ context.Context, key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.buckets[key]
	return v, ok, nil
}

func (b *fileBackend) write(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	prev, had := b.buckets[key]
	b.buckets[key] = append(json.RawMessage(nil), value...)

	data, err := json.MarshalIndent(b.buckets, "", "  ")
	if err == nil {
		err = writeFileAtomic(b.path, data)
	}
	if err != nil {
		if had {
			b.buckets[key] = prev
		} else {
			delete(b.buckets, key)
		}
		return err
	}
	return nil
}

func (b *fileBackend) close() error { return nil }

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
