package bank

import (
	"github.com/shopspring/decimal"

	"github.com/luxfi/launchpad/pkg/launchpad"
)

// PaymentAsset adapts the ledger to the launchpad's payment collaborator.
// Contributions flow into the escrow account, refunds flow back out.
type PaymentAsset struct {
	ledger *Ledger
	asset  string
	escrow string
}

// NewPaymentAsset creates the payment adapter for one asset and escrow
// account.
func NewPaymentAsset(l *Ledger, assetID, escrowAccount string) *PaymentAsset {
	return &PaymentAsset{ledger: l, asset: assetID, escrow: escrowAccount}
}

func (p *PaymentAsset) TransferIn(from launchpad.Address, amount uint64) error {
	return p.ledger.Transfer(p.asset, string(from), p.escrow, fromUint64(amount))
}

func (p *PaymentAsset) TransferOut(to launchpad.Address, amount uint64) error {
	return p.ledger.Transfer(p.asset, p.escrow, string(to), fromUint64(amount))
}

// TokenVault adapts the ledger to the sale-token collaborator. Each
// project's tokens are held in the vault account under the project's
// token reference as asset id.
type TokenVault struct {
	ledger  *Ledger
	account string
}

// NewTokenVault creates the vault adapter over the given holding account.
func NewTokenVault(l *Ledger, vaultAccount string) *TokenVault {
	return &TokenVault{ledger: l, account: vaultAccount}
}

func (v *TokenVault) TransferOut(token string, to launchpad.Address, amount uint64) error {
	return v.ledger.Transfer(token, v.account, string(to), fromUint64(amount))
}

func fromUint64(a uint64) decimal.Decimal {
	return decimal.NewFromUint64(a)
}
