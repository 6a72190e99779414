// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tests

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/launchpad/pkg/bank"
	"github.com/luxfi/launchpad/pkg/chain"
	"github.com/luxfi/launchpad/pkg/launchpad"
	"github.com/luxfi/launchpad/pkg/state"
	"github.com/luxfi/launchpad/pkg/storage"
)

const (
	admin        = launchpad.Address("admin")
	paymentAsset = "ausd"
	escrow       = "escrow"
	vault        = "vault"
)

type env struct {
	engine *launchpad.Engine
	ledger *bank.Ledger
	clock  *chain.Manual
}

func newEnv(t *testing.T) *env {
	t.Helper()

	ledger := bank.NewLedger()
	clock := chain.NewManual(1_000)
	st := state.New(storage.NewMemory())

	engine, err := launchpad.New(
		launchpad.Config{Admin: admin, MaxLiveProjects: 10, MinDuration: 10},
		launchpad.Deps{
			Projects:      st,
			Contributions: st,
			Whitelist:     st,
			Payment:       bank.NewPaymentAsset(ledger, paymentAsset, escrow),
			Vault:         bank.NewTokenVault(ledger, vault),
			Clock:         clock,
		},
	)
	require.NoError(t, err)

	return &env{engine: engine, ledger: ledger, clock: clock}
}

func (e *env) fund(account string, amount int64) {
	e.ledger.SetBalance(paymentAsset, account, decimal.NewFromInt(amount))
}

func (e *env) balance(asset, account string) int64 {
	return e.ledger.Balance(asset, account).IntPart()
}

func TestFixedPriceSaleLifecycle(t *testing.T) {
	require := require.New(t)
	e := newEnv(t)

	e.fund("alice", 100_000_000)
	e.fund("bob", 100_000_000)
	e.ledger.SetBalance("nova-token", vault, decimal.NewFromInt(1_000_000_000))

	// 1. Create the sale with a gated whitelist.
	id, err := e.engine.CreateProject(admin, launchpad.ProjectConfig{
		Name:          "Nova",
		Symbol:        "NOVA",
		Token:         "nova-token",
		Distribution:  launchpad.DistributionFixedPrice,
		Duration:      100,
		TotalTokens:   1_000_000_000,
		PricePerToken: 2_000_000, // 2.0 payment units per token
		MinRaise:      10_000_000,
		MaxRaise:      100_000_000,
		UseWhitelist:  true,
	})
	require.NoError(err)

	// 2. Whitelist both contributors while the sale is Pending.
	require.NoError(e.engine.AddParticipants(admin, id, []launchpad.Address{"alice", "bob"}))

	// 3. Open the window.
	require.NoError(e.engine.ActivateProject(admin, id))

	// 4. Contribute. Funds move into escrow as they arrive.
	_, err = e.engine.Contribute("alice", id, 10_000_000)
	require.NoError(err)
	_, err = e.engine.Contribute("bob", id, 6_000_000)
	require.NoError(err)
	require.Equal(int64(16_000_000), e.balance(paymentAsset, escrow))

	_, err = e.engine.Contribute("carol", id, 1_000)
	require.ErrorIs(err, launchpad.ErrNotWhitelisted)

	// 5. Close the window and finalize. The raise met its minimum.
	e.clock.Set(1_101)
	status, err := e.engine.Finalize(id)
	require.NoError(err)
	require.Equal(launchpad.StatusEnded, status)

	// 6. Claims deliver tokens at the fixed price.
	tokens, err := e.engine.Claim("alice", id)
	require.NoError(err)
	require.Equal(uint64(5_000_000), tokens)
	require.Equal(int64(5_000_000), e.balance("nova-token", "alice"))

	tokens, err = e.engine.Claim("bob", id)
	require.NoError(err)
	require.Equal(uint64(3_000_000), tokens)

	// Contributions stay in escrow; refunds are not available on success.
	require.Equal(int64(16_000_000), e.balance(paymentAsset, escrow))
	_, err = e.engine.Refund("alice", id)
	require.ErrorIs(err, launchpad.ErrNotCanceled)

	p, err := e.engine.GetProject(id)
	require.NoError(err)
	require.Equal(uint64(8_000_000), p.TokensSold)
}

func TestFailedRaiseRefundsEveryone(t *testing.T) {
	require := require.New(t)
	e := newEnv(t)

	e.fund("alice", 1_000_000)
	e.fund("bob", 1_000_000)

	id, err := e.engine.CreateProject(admin, launchpad.ProjectConfig{
		Name:          "Flop",
		Symbol:        "FLOP",
		Token:         "flop-token",
		Distribution:  launchpad.DistributionFixedPrice,
		Duration:      50,
		TotalTokens:   1_000_000,
		PricePerToken: 1_000_000,
		MinRaise:      10_000_000,
		MaxRaise:      50_000_000,
	})
	require.NoError(err)
	require.NoError(e.engine.ActivateProject(admin, id))

	_, err = e.engine.Contribute("alice", id, 500_000)
	require.NoError(err)
	_, err = e.engine.Contribute("bob", id, 250_000)
	require.NoError(err)

	// The window closes far short of the minimum raise.
	e.clock.Set(1_051)
	status, err := e.engine.Finalize(id)
	require.NoError(err)
	require.Equal(launchpad.StatusCanceled, status)

	// Everyone recovers their full contribution.
	amount, err := e.engine.Refund("alice", id)
	require.NoError(err)
	require.Equal(uint64(500_000), amount)

	amount, err = e.engine.Refund("bob", id)
	require.NoError(err)
	require.Equal(uint64(250_000), amount)

	require.Equal(int64(0), e.balance(paymentAsset, escrow))
	require.Equal(int64(1_000_000), e.balance(paymentAsset, "alice"))
	require.Equal(int64(1_000_000), e.balance(paymentAsset, "bob"))

	// No token claims exist on a canceled sale.
	_, err = e.engine.Claim("alice", id)
	require.ErrorIs(err, launchpad.ErrNotEnded)
}

func TestDutchAuctionLifecycle(t *testing.T) {
	require := require.New(t)
	e := newEnv(t)

	e.fund("alice", 10_000_000)
	e.fund("bob", 10_000_000)
	e.ledger.SetBalance("dutch-token", vault, decimal.NewFromInt(1_000_000))

	id, err := e.engine.CreateProject(admin, launchpad.ProjectConfig{
		Name:         "Dutch",
		Symbol:       "DTCH",
		Token:        "dutch-token",
		Distribution: launchpad.DistributionDutchAuction,
		Duration:     100,
		TotalTokens:  1_000_000,
		MinPrice:     1_000_000, // 1.0
		MaxPrice:     5_000_000, // 5.0
		MinRaise:     1_000_000,
		MaxRaise:     3_000_000,
	})
	require.NoError(err)
	require.NoError(e.engine.ActivateProject(admin, id))

	// Before the cap is hit the price sits at the floor.
	price, err := e.engine.CurrentPrice(id)
	require.NoError(err)
	require.Equal(uint64(1_000_000), price)

	_, err = e.engine.Contribute("alice", id, 1_800_000)
	require.NoError(err)
	_, err = e.engine.Contribute("bob", id, 1_200_000)
	require.NoError(err)

	// Cap filled exactly: the implied clearing price is 3.0.
	price, err = e.engine.CurrentPrice(id)
	require.NoError(err)
	require.Equal(uint64(3_000_000), price)

	e.clock.Set(1_101)
	status, err := e.engine.Finalize(id)
	require.NoError(err)
	require.Equal(launchpad.StatusEnded, status)

	// Everyone pays the same clearing price.
	tokens, err := e.engine.Claim("alice", id)
	require.NoError(err)
	require.Equal(uint64(600_000), tokens)

	tokens, err = e.engine.Claim("bob", id)
	require.NoError(err)
	require.Equal(uint64(400_000), tokens)

	p, err := e.engine.GetProject(id)
	require.NoError(err)
	require.Equal(uint64(1_000_000), p.TokensSold)
	require.LessOrEqual(p.TokensSold, p.TotalTokens)
}

func TestFairLaunchLifecycle(t *testing.T) {
	require := require.New(t)
	e := newEnv(t)

	e.fund("alice", 1_000_000)
	e.fund("bob", 1_000_000)
	e.ledger.SetBalance("fair-token", vault, decimal.NewFromInt(1_000_000))

	id, err := e.engine.CreateProject(admin, launchpad.ProjectConfig{
		Name:         "Fair",
		Symbol:       "FAIR",
		Token:        "fair-token",
		Distribution: launchpad.DistributionFairLaunch,
		Duration:     100,
		TotalTokens:  1_000_000,
		MinRaise:     100_000,
		MaxRaise:     10_000_000,
	})
	require.NoError(err)
	require.NoError(e.engine.ActivateProject(admin, id))

	_, err = e.engine.Contribute("alice", id, 100_000)
	require.NoError(err)
	_, err = e.engine.Contribute("bob", id, 400_000)
	require.NoError(err)

	e.clock.Set(1_101)
	status, err := e.engine.Finalize(id)
	require.NoError(err)
	require.Equal(launchpad.StatusEnded, status)

	// The supply splits pro rata over the raise.
	tokens, err := e.engine.Claim("alice", id)
	require.NoError(err)
	require.Equal(uint64(200_000), tokens)

	tokens, err = e.engine.Claim("bob", id)
	require.NoError(err)
	require.Equal(uint64(800_000), tokens)

	require.Equal(int64(0), e.balance("fair-token", vault))
}

func TestAdminCancelMidSale(t *testing.T) {
	require := require.New(t)
	e := newEnv(t)

	e.fund("alice", 1_000_000)

	id, err := e.engine.CreateProject(admin, launchpad.ProjectConfig{
		Name:          "Halt",
		Symbol:        "HALT",
		Token:         "halt-token",
		Distribution:  launchpad.DistributionFixedPrice,
		Duration:      100,
		TotalTokens:   1_000_000,
		PricePerToken: 1_000_000,
		MinRaise:      1,
		MaxRaise:      1_000_000,
	})
	require.NoError(err)
	require.NoError(e.engine.ActivateProject(admin, id))

	_, err = e.engine.Contribute("alice", id, 300_000)
	require.NoError(err)

	require.NoError(e.engine.CancelProject(admin, id))

	// Contributions stop immediately.
	_, err = e.engine.Contribute("alice", id, 1)
	require.ErrorIs(err, launchpad.ErrNotActive)

	// The refund path opens without waiting for the window.
	amount, err := e.engine.Refund("alice", id)
	require.NoError(err)
	require.Equal(uint64(300_000), amount)
	require.Equal(int64(1_000_000), e.balance(paymentAsset, "alice"))
}
