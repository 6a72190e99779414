// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhitelistPendingOnly(t *testing.T) {
	f := newFixture(t)

	cfg := fixedPriceConfig("nova")
	cfg.UseWhitelist = true
	id, err := f.engine.CreateProject(admin, cfg)
	require.NoError(t, err)

	require.ErrorIs(t, f.engine.AddParticipants("mallory", id, []Address{"alice"}), ErrUnauthorized)
	require.ErrorIs(t, f.engine.AddParticipants(admin, 42, []Address{"alice"}), ErrNotFound)

	require.NoError(t, f.engine.AddParticipants(admin, id, []Address{"alice", "bob"}))

	// Membership is frozen once the sale activates.
	require.NoError(t, f.engine.ActivateProject(admin, id))
	require.ErrorIs(t, f.engine.AddParticipants(admin, id, []Address{"carol"}), ErrWrongPhase)

	admitted, err := f.engine.IsWhitelisted(id, "alice")
	require.NoError(t, err)
	require.True(t, admitted)

	admitted, err = f.engine.IsWhitelisted(id, "carol")
	require.NoError(t, err)
	require.False(t, admitted)
}

func TestWhitelistIdempotentInsert(t *testing.T) {
	f := newFixture(t)

	cfg := fixedPriceConfig("nova")
	cfg.UseWhitelist = true
	id, err := f.engine.CreateProject(admin, cfg)
	require.NoError(t, err)

	require.NoError(t, f.engine.AddParticipants(admin, id, []Address{"alice"}))
	require.NoError(t, f.engine.AddParticipants(admin, id, []Address{"alice"}))

	count := 0
	for key, present := range f.store.wl {
		if present {
			count++
			require.Equal(t, contribID(id, "alice"), key)
		}
	}
	require.Equal(t, 1, count)
}

func TestWhitelistDisabledAdmitsEveryone(t *testing.T) {
	f := newFixture(t)

	id, err := f.engine.CreateProject(admin, fixedPriceConfig("nova"))
	require.NoError(t, err)

	admitted, err := f.engine.IsWhitelisted(id, "anyone")
	require.NoError(t, err)
	require.True(t, admitted)

	_, err = f.engine.IsWhitelisted(42, "anyone")
	require.ErrorIs(t, err, ErrNotFound)
}
