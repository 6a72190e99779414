// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// memStore is an in-memory implementation of all three stores.
type memStore struct {
	seq      uint64
	projects map[uint64]*Project
	tokens   map[string]uint64
	contribs map[string]*Contribution
	raised   map[uint64]uint64
	wl       map[string]bool
}

func newMemStore() *memStore {
	return &memStore{
		projects: make(map[uint64]*Project),
		tokens:   make(map[string]uint64),
		contribs: make(map[string]*Contribution),
		raised:   make(map[uint64]uint64),
		wl:       make(map[string]bool),
	}
}

func contribID(projectID uint64, user Address) string {
	return fmt.Sprintf("%d/%s", projectID, user)
}

func (m *memStore) NextProjectID() (uint64, error) {
	m.seq++
	return m.seq, nil
}

func (m *memStore) PutProject(p *Project) error {
	cp := *p
	m.projects[p.ID] = &cp
	return nil
}

func (m *memStore) GetProject(id uint64) (*Project, bool, error) {
	p, ok := m.projects[id]
	if !ok {
		return nil, false, nil
	}
	cp := *p
	return &cp, true, nil
}

func (m *memStore) ListProjects() ([]*Project, error) {
	out := make([]*Project, 0, len(m.projects))
	for _, p := range m.projects {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memStore) BindToken(token string, id uint64) (bool, error) {
	if _, ok := m.tokens[token]; ok {
		return false, nil
	}
	m.tokens[token] = id
	return true, nil
}

func (m *memStore) TokenBinding(token string) (uint64, bool, error) {
	id, ok := m.tokens[token]
	return id, ok, nil
}

func (m *memStore) GetContribution(projectID uint64, user Address) (*Contribution, bool, error) {
	c, ok := m.contribs[contribID(projectID, user)]
	if !ok {
		return nil, false, nil
	}
	cp := *c
	return &cp, true, nil
}

func (m *memStore) PutContribution(c *Contribution) error {
	cp := *c
	m.contribs[contribID(c.ProjectID, c.User)] = &cp
	return nil
}

func (m *memStore) ListContributions(projectID uint64) ([]*Contribution, error) {
	var out []*Contribution
	for _, c := range m.contribs {
		if c.ProjectID == projectID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStore) TotalRaised(projectID uint64) (uint64, error) {
	return m.raised[projectID], nil
}

func (m *memStore) SetTotalRaised(projectID, total uint64) error {
	m.raised[projectID] = total
	return nil
}

func (m *memStore) AddWhitelisted(projectID uint64, user Address) error {
	m.wl[contribID(projectID, user)] = true
	return nil
}

func (m *memStore) IsWhitelisted(projectID uint64, user Address) (bool, error) {
	return m.wl[contribID(projectID, user)], nil
}

// testClock is a manually advanced height source.
type testClock struct {
	height uint64
}

func (c *testClock) CurrentHeight() uint64 { return c.height }

var errStubTransfer = errors.New("stub transfer refused")

// stubPayment records escrow movements and can be told to fail.
type stubPayment struct {
	failIn  bool
	failOut bool
	in      map[Address]uint64
	out     map[Address]uint64
}

func newStubPayment() *stubPayment {
	return &stubPayment{in: make(map[Address]uint64), out: make(map[Address]uint64)}
}

func (p *stubPayment) TransferIn(from Address, amount uint64) error {
	if p.failIn {
		return errStubTransfer
	}
	p.in[from] += amount
	return nil
}

func (p *stubPayment) TransferOut(to Address, amount uint64) error {
	if p.failOut {
		return errStubTransfer
	}
	p.out[to] += amount
	return nil
}

// stubVault records token deliveries and can be told to fail.
type stubVault struct {
	fail bool
	sent map[string]map[Address]uint64
}

func newStubVault() *stubVault {
	return &stubVault{sent: make(map[string]map[Address]uint64)}
}

func (v *stubVault) TransferOut(token string, to Address, amount uint64) error {
	if v.fail {
		return errStubTransfer
	}
	if v.sent[token] == nil {
		v.sent[token] = make(map[Address]uint64)
	}
	v.sent[token][to] += amount
	return nil
}

const admin = Address("admin")

type fixture struct {
	engine  *Engine
	store   *memStore
	clock   *testClock
	payment *stubPayment
	vault   *stubVault
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:   newMemStore(),
		clock:   &testClock{height: 100},
		payment: newStubPayment(),
		vault:   newStubVault(),
	}
	engine, err := New(
		Config{Admin: admin, MaxLiveProjects: 4, MinDuration: 10},
		Deps{
			Projects:      f.store,
			Contributions: f.store,
			Whitelist:     f.store,
			Payment:       f.payment,
			Vault:         f.vault,
			Clock:         f.clock,
		},
	)
	require.NoError(t, err)
	f.engine = engine
	return f
}

func fixedPriceConfig(token string) ProjectConfig {
	return ProjectConfig{
		Name:          "Nova",
		Symbol:        "NOVA",
		Token:         token,
		Distribution:  DistributionFixedPrice,
		Duration:      100,
		TotalTokens:   1_000_000_000,
		PricePerToken: 2_000_000, // 2.0 payment units per token
		MinRaise:      1_000_000,
		MaxRaise:      100_000_000,
	}
}

// createActive creates and activates a project in one step.
func (f *fixture) createActive(t *testing.T, cfg ProjectConfig) uint64 {
	t.Helper()
	id, err := f.engine.CreateProject(admin, cfg)
	require.NoError(t, err)
	require.NoError(t, f.engine.ActivateProject(admin, id))
	return id
}
