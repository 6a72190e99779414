// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package launchpad implements the token-sale engine: project lifecycle,
// contribution admission, finalization and the three allocation formulas
// (fixed price, Dutch auction, fair launch).
package launchpad

import (
	"errors"
	"sync"

	"github.com/luxfi/launchpad/pkg/log"
	"github.com/luxfi/launchpad/pkg/metric"
)

// Config carries the engine-wide limits fixed at initialization.
type Config struct {
	// Admin is the single privileged identity authorizing project
	// creation, activation, cancellation and whitelist management.
	Admin Address

	// MaxLiveProjects caps the number of Pending and Active projects.
	MaxLiveProjects int

	// MinDuration is the minimum sale window in blocks; a project's
	// duration must be strictly greater.
	MinDuration uint64
}

// DefaultConfig returns a config with the standard limits.
func DefaultConfig(admin Address) Config {
	return Config{
		Admin:           admin,
		MaxLiveProjects: 100,
		MinDuration:     10,
	}
}

// Deps are the collaborators the engine is built on.
type Deps struct {
	Projects      ProjectStore
	Contributions ContributionStore
	Whitelist     WhitelistStore

	Payment PaymentAsset
	Vault   TokenVault
	Clock   HeightSource

	Events  EventSink       // optional
	Metrics *metric.Metrics // optional
	Log     log.Logger      // optional, defaults to no-op
}

// Engine is the launchpad state machine. All mutations of a given
// project's state are serialized through a per-project lock; registry-level
// state (id counter, token bindings, capacity) is serialized through mu.
type Engine struct {
	cfg Config

	projects  ProjectStore
	contribs  ContributionStore
	whitelist WhitelistStore

	payment PaymentAsset
	vault   TokenVault
	clock   HeightSource

	events  EventSink
	metrics *metric.Metrics
	log     log.Logger

	mu     sync.Mutex
	plocks sync.Map // projectID -> *sync.Mutex
}

// New creates an engine. Store and collaborator deps are required.
func New(cfg Config, deps Deps) (*Engine, error) {
	if cfg.Admin == "" {
		return nil, errors.New("admin address is required")
	}
	if deps.Projects == nil || deps.Contributions == nil || deps.Whitelist == nil {
		return nil, errors.New("all stores are required")
	}
	if deps.Payment == nil || deps.Vault == nil || deps.Clock == nil {
		return nil, errors.New("payment, vault and clock collaborators are required")
	}
	if cfg.MaxLiveProjects <= 0 {
		cfg.MaxLiveProjects = DefaultConfig(cfg.Admin).MaxLiveProjects
	}

	logger := deps.Log
	if logger == nil {
		logger = log.NoOp()
	}

	return &Engine{
		cfg:       cfg,
		projects:  deps.Projects,
		contribs:  deps.Contributions,
		whitelist: deps.Whitelist,
		payment:   deps.Payment,
		vault:     deps.Vault,
		clock:     deps.Clock,
		events:    deps.Events,
		metrics:   deps.Metrics,
		log:       logger,
	}, nil
}

// lockProject serializes all mutations of one project's state.
func (e *Engine) lockProject(id uint64) func() {
	v, _ := e.plocks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (e *Engine) publish(ev Event) {
	if e.events != nil {
		ev.Height = e.clock.CurrentHeight()
		e.events.Publish(ev)
	}
}
