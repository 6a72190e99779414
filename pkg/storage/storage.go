// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package storage provides the key-value store backing the launchpad
// state. The memory backend serves tests and single-run deployments, the
// badger backend persists across daemon restarts.
package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a key is absent.
var ErrNotFound = errors.New("key not found")

// Database is the minimal KV contract the state layer needs.
type Database interface {
	Put(key, value []byte) error
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	Delete(key []byte) error

	// IteratePrefix walks all keys with the given prefix in ascending key
	// order. Iteration stops when fn returns false.
	IteratePrefix(prefix []byte, fn func(key, value []byte) bool) error

	Close() error
}

// New creates a database of the given backend type.
func New(backend string, path string) (Database, error) {
	switch backend {
	case "memory":
		return NewMemory(), nil
	case "badger":
		return NewBadger(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
