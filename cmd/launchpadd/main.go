// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/luxfi/launchpad/pkg/api"
	"github.com/luxfi/launchpad/pkg/bank"
	"github.com/luxfi/launchpad/pkg/chain"
	"github.com/luxfi/launchpad/pkg/events"
	"github.com/luxfi/launchpad/pkg/launchpad"
	"github.com/luxfi/launchpad/pkg/log"
	"github.com/luxfi/launchpad/pkg/metric"
	"github.com/luxfi/launchpad/pkg/state"
	"github.com/luxfi/launchpad/pkg/storage"
)

var (
	listenAddr     = flag.String("listen", ":8080", "HTTP listen address")
	dataDir        = flag.String("data-dir", "/tmp/launchpadd", "Data directory for the badger backend")
	storageBackend = flag.String("storage", "memory", "Storage backend: memory or badger")
	adminAddr      = flag.String("admin", "", "Administrator address (required)")
	paymentAsset   = flag.String("payment-asset", "AUSD", "Payment asset identifier")
	escrowAccount  = flag.String("escrow-account", "escrow", "Escrow holder account")
	vaultAccount   = flag.String("vault-account", "vault", "Sale-token holding account")
	blockTime      = flag.Duration("block-time", 2*time.Second, "Interval between height increments")
	startHeight    = flag.Uint64("start-height", 1, "Initial block height")
	maxProjects    = flag.Int("max-projects", 100, "Maximum live projects")
	minDuration    = flag.Uint64("min-duration", 10, "Minimum sale duration in blocks")
	logLevel       = flag.String("log-level", "info", "Log level")

	// Version info
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	flag.Parse()

	fmt.Printf("Launchpad Daemon (launchpadd) %s (commit: %s)\n", Version, GitCommit)

	if *adminAddr == "" {
		fmt.Println("Error: --admin is required")
		os.Exit(1)
	}

	logger := log.NewWithLevel(*logLevel)
	defer logger.Sync()

	db, err := storage.New(*storageBackend, *dataDir)
	if err != nil {
		logger.Error("failed to open storage", "backend", *storageBackend, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := chain.NewTicker(*startHeight, *blockTime)
	go clock.Run(ctx)

	ledger := bank.NewLedger()
	ledger.SetBalance(*paymentAsset, *escrowAccount, decimal.Zero)

	hub := events.NewHub(logger)
	metrics := metric.New()
	st := state.New(db)

	engine, err := launchpad.New(
		launchpad.Config{
			Admin:           launchpad.Address(*adminAddr),
			MaxLiveProjects: *maxProjects,
			MinDuration:     *minDuration,
		},
		launchpad.Deps{
			Projects:      st,
			Contributions: st,
			Whitelist:     st,
			Payment:       bank.NewPaymentAsset(ledger, *paymentAsset, *escrowAccount),
			Vault:         bank.NewTokenVault(ledger, *vaultAccount),
			Clock:         clock,
			Events:        hub,
			Metrics:       metrics,
			Log:           logger,
		},
	)
	if err != nil {
		logger.Error("failed to create engine", "error", err)
		os.Exit(1)
	}

	server := api.NewServer(engine, hub, metrics, logger)
	httpServer := &http.Server{
		Addr:    *listenAddr,
		Handler: server.Router(),
	}

	go func() {
		logger.Info("http server listening", "addr", *listenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("shutting down", "signal", sig.String())
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}
