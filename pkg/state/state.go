// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state implements the launchpad stores over a key-value
// database, so the same code runs on the in-memory backend in tests and
// on badger in the daemon.
package state

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/luxfi/launchpad/pkg/launchpad"
	"github.com/luxfi/launchpad/pkg/storage"
)

// Key layout. Project ids are fixed-width hex so prefix iteration yields
// ascending id order.
const (
	keySequence      = "meta/seq"
	prefixProject    = "project/"
	prefixToken      = "token/"
	prefixRaised     = "raised/"
	prefixContrib    = "contrib/"
	prefixWhitelist  = "wl/"
	whitelistPresent = "1"
)

func projectKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%016x", prefixProject, id))
}

func tokenKey(token string) []byte {
	return []byte(prefixToken + token)
}

func raisedKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%016x", prefixRaised, id))
}

func contribKey(id uint64, user launchpad.Address) []byte {
	return []byte(fmt.Sprintf("%s%016x/%s", prefixContrib, id, user))
}

func whitelistKey(id uint64, user launchpad.Address) []byte {
	return []byte(fmt.Sprintf("%s%016x/%s", prefixWhitelist, id, user))
}

// State implements launchpad.ProjectStore, ContributionStore and
// WhitelistStore on one Database. It performs no locking of its own; the
// engine serializes all mutating access.
type State struct {
	db storage.Database
}

// New creates a state layer over db.
func New(db storage.Database) *State {
	return &State{db: db}
}

// NextProjectID allocates the next sequential id, starting at 1.
func (s *State) NextProjectID() (uint64, error) {
	var next uint64 = 1
	raw, err := s.db.Get([]byte(keySequence))
	switch {
	case err == nil:
		next = binary.BigEndian.Uint64(raw) + 1
	case errors.Is(err, storage.ErrNotFound):
	default:
		return 0, err
	}

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, next)
	if err := s.db.Put([]byte(keySequence), buf); err != nil {
		return 0, err
	}
	return next, nil
}

func (s *State) PutProject(p *launchpad.Project) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.db.Put(projectKey(p.ID), raw)
}

func (s *State) GetProject(id uint64) (*launchpad.Project, bool, error) {
	raw, err := s.db.Get(projectKey(id))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var p launchpad.Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false, err
	}
	return &p, true, nil
}

func (s *State) ListProjects() ([]*launchpad.Project, error) {
	var out []*launchpad.Project
	var iterErr error
	err := s.db.IteratePrefix([]byte(prefixProject), func(_, value []byte) bool {
		var p launchpad.Project
		if err := json.Unmarshal(value, &p); err != nil {
			iterErr = err
			return false
		}
		out = append(out, &p)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, iterErr
}

func (s *State) BindToken(token string, id uint64) (bool, error) {
	has, err := s.db.Has(tokenKey(token))
	if err != nil {
		return false, err
	}
	if has {
		return false, nil
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, id)
	return true, s.db.Put(tokenKey(token), buf)
}

func (s *State) TokenBinding(token string) (uint64, bool, error) {
	raw, err := s.db.Get(tokenKey(token))
	if errors.Is(err, storage.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return binary.BigEndian.Uint64(raw), true, nil
}

func (s *State) GetContribution(projectID uint64, user launchpad.Address) (*launchpad.Contribution, bool, error) {
	raw, err := s.db.Get(contribKey(projectID, user))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var c launchpad.Contribution
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, false, err
	}
	return &c, true, nil
}

func (s *State) PutContribution(c *launchpad.Contribution) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.db.Put(contribKey(c.ProjectID, c.User), raw)
}

func (s *State) ListContributions(projectID uint64) ([]*launchpad.Contribution, error) {
	prefix := []byte(fmt.Sprintf("%s%016x/", prefixContrib, projectID))
	var out []*launchpad.Contribution
	var iterErr error
	err := s.db.IteratePrefix(prefix, func(_, value []byte) bool {
		var c launchpad.Contribution
		if err := json.Unmarshal(value, &c); err != nil {
			iterErr = err
			return false
		}
		out = append(out, &c)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, iterErr
}

func (s *State) TotalRaised(projectID uint64) (uint64, error) {
	raw, err := s.db.Get(raisedKey(projectID))
	if errors.Is(err, storage.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(raw), nil
}

func (s *State) SetTotalRaised(projectID, total uint64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, total)
	return s.db.Put(raisedKey(projectID), buf)
}

func (s *State) AddWhitelisted(projectID uint64, user launchpad.Address) error {
	return s.db.Put(whitelistKey(projectID, user), []byte(whitelistPresent))
}

func (s *State) IsWhitelisted(projectID uint64, user launchpad.Address) (bool, error) {
	return s.db.Has(whitelistKey(projectID, user))
}
