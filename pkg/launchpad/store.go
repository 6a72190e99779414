// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

// ProjectStore owns projects, the sequential id counter and the permanent
// token bindings. Implementations need not be safe for concurrent writers;
// the engine serializes all mutating access.
type ProjectStore interface {
	// NextProjectID allocates the next sequential project id. Ids are
	// monotonic and never reused, including after cancellations.
	NextProjectID() (uint64, error)

	PutProject(p *Project) error
	GetProject(id uint64) (*Project, bool, error)
	ListProjects() ([]*Project, error)

	// BindToken records the permanent token → project binding. Returns
	// false when the token is already bound.
	BindToken(token string, id uint64) (bool, error)
	TokenBinding(token string) (uint64, bool, error)
}

// ContributionStore owns per-(project,user) contributions and the
// per-project raised totals.
type ContributionStore interface {
	GetContribution(projectID uint64, user Address) (*Contribution, bool, error)
	PutContribution(c *Contribution) error
	ListContributions(projectID uint64) ([]*Contribution, error)

	TotalRaised(projectID uint64) (uint64, error)
	SetTotalRaised(projectID, total uint64) error
}

// WhitelistStore owns per-project admitted participant sets.
type WhitelistStore interface {
	// AddWhitelisted inserts a user; re-adding is a no-op.
	AddWhitelisted(projectID uint64, user Address) error
	IsWhitelisted(projectID uint64, user Address) (bool, error)
}

// HeightSource reports the current block height. Heights are monotonic
// non-decreasing and advanced externally.
type HeightSource interface {
	CurrentHeight() uint64
}

// PaymentAsset moves the payment asset between contributors and the
// escrow holder. Transfers are all-or-nothing.
type PaymentAsset interface {
	TransferIn(from Address, amount uint64) error
	TransferOut(to Address, amount uint64) error
}

// TokenVault delivers sale tokens to claimants, keyed by the project's
// token reference.
type TokenVault interface {
	TransferOut(token string, to Address, amount uint64) error
}
