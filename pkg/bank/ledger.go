package bank

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Ledger is a minimal in-process asset ledger used as the payment-asset
// and sale-token collaborator for the launchpad. Balances are tracked per
// (assetID, account).
type Ledger struct {
	mu       sync.RWMutex
	balances map[string]map[string]decimal.Decimal // assetID -> account -> balance
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[string]map[string]decimal.Decimal),
	}
}

// Transfer moves an asset between accounts. All-or-nothing.
func (l *Ledger) Transfer(assetID, from, to string, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balances[assetID] == nil {
		l.balances[assetID] = make(map[string]decimal.Decimal)
	}

	fromBalance, exists := l.balances[assetID][from]
	if !exists || fromBalance.LessThan(amount) {
		return fmt.Errorf("insufficient %s balance for %s", assetID, from)
	}

	l.balances[assetID][from] = fromBalance.Sub(amount)
	toBalance := l.balances[assetID][to]
	l.balances[assetID][to] = toBalance.Add(amount)

	return nil
}

// Balance returns the balance for an account and asset.
func (l *Ledger) Balance(assetID, account string) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.balances[assetID] == nil {
		return decimal.Zero
	}
	return l.balances[assetID][account]
}

// SetBalance sets the balance for an account and asset (initialization and
// tests).
func (l *Ledger) SetBalance(assetID, account string, amount decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[assetID] == nil {
		l.balances[assetID] = make(map[string]decimal.Decimal)
	}
	l.balances[assetID][account] = amount
}
