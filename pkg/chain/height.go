// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chain provides block-height sources. The launchpad never runs
// its own timers; all window checks read the current height lazily.
package chain

import (
	"context"
	"sync/atomic"
	"time"
)

// Manual is a height source advanced explicitly. Used by tests and by
// deployments where an external process tracks the host chain.
type Manual struct {
	height atomic.Uint64
}

// NewManual creates a manual height source at the given height.
func NewManual(height uint64) *Manual {
	m := &Manual{}
	m.height.Store(height)
	return m
}

func (m *Manual) CurrentHeight() uint64 {
	return m.height.Load()
}

// Advance moves the height forward by n blocks.
func (m *Manual) Advance(n uint64) {
	m.height.Add(n)
}

// Set jumps to an absolute height. Heights only move forward.
func (m *Manual) Set(height uint64) {
	for {
		cur := m.height.Load()
		if height <= cur {
			return
		}
		if m.height.CompareAndSwap(cur, height) {
			return
		}
	}
}

// Ticker is a height source that advances one block per interval, for
// standalone deployments without a host chain.
type Ticker struct {
	Manual
	interval time.Duration
}

// NewTicker creates a ticker starting at the given height.
func NewTicker(start uint64, interval time.Duration) *Ticker {
	t := &Ticker{interval: interval}
	t.height.Store(start)
	return t
}

// Run advances the height until the context is done.
func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Advance(1)
		}
	}
}
