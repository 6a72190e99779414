// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

// Address is an opaque, comparable principal identifier.
type Address string

// Status is the lifecycle phase of a project.
type Status uint8

const (
	StatusPending Status = iota
	StatusActive
	StatusEnded
	StatusCanceled
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusActive:
		return "active"
	case StatusEnded:
		return "ended"
	case StatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status permits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusEnded || s == StatusCanceled
}

// DistributionType selects the allocation formula for a sale.
type DistributionType uint8

const (
	DistributionFixedPrice DistributionType = iota + 1
	DistributionDutchAuction
	DistributionFairLaunch
)

func (d DistributionType) String() string {
	switch d {
	case DistributionFixedPrice:
		return "fixed_price"
	case DistributionDutchAuction:
		return "dutch_auction"
	case DistributionFairLaunch:
		return "fair_launch"
	default:
		return "unknown"
	}
}

// Project is a token sale. Start and end heights are zero until the
// project is activated.
type Project struct {
	ID           uint64           `json:"id"`
	Name         string           `json:"name"`
	Symbol       string           `json:"symbol"`
	Token        string           `json:"token"` // sale-token reference, unique per project
	Creator      Address          `json:"creator"`
	Distribution DistributionType `json:"distribution"`

	Duration    uint64 `json:"duration"` // sale window length in blocks
	StartHeight uint64 `json:"start_height"`
	EndHeight   uint64 `json:"end_height"`

	TotalTokens uint64 `json:"total_tokens"`
	TokensSold  uint64 `json:"tokens_sold"`

	// PricePerToken applies to fixed-price sales, MinPrice/MaxPrice to
	// Dutch auctions. All prices are scaled by fixedpoint.Scale.
	PricePerToken uint64 `json:"price_per_token,omitempty"`
	MinPrice      uint64 `json:"min_price,omitempty"`
	MaxPrice      uint64 `json:"max_price,omitempty"`

	MinRaise uint64 `json:"min_raise"`
	MaxRaise uint64 `json:"max_raise"`

	IndividualMin uint64 `json:"individual_min,omitempty"`
	IndividualMax uint64 `json:"individual_max,omitempty"`

	UseWhitelist bool `json:"use_whitelist"`

	Status Status `json:"status"`
}

// WindowClosed reports whether the contribution window has passed at the
// given height.
func (p *Project) WindowClosed(height uint64) bool {
	return height > p.EndHeight
}

// Contribution is the cumulative position of one user in one project.
// The Claimed flag covers both claim and refund; the two are mutually
// exclusive because Ended and Canceled are disjoint terminal states.
type Contribution struct {
	ProjectID uint64  `json:"project_id"`
	User      Address `json:"user"`
	Amount    uint64  `json:"amount"`
	Claimed   bool    `json:"claimed"`
}

// ProjectConfig carries the creation parameters for a sale.
type ProjectConfig struct {
	Name         string           `json:"name"`
	Symbol       string           `json:"symbol"`
	Token        string           `json:"token"`
	Distribution DistributionType `json:"distribution"`
	Duration     uint64           `json:"duration"`
	TotalTokens  uint64           `json:"total_tokens"`

	PricePerToken uint64 `json:"price_per_token,omitempty"`
	MinPrice      uint64 `json:"min_price,omitempty"`
	MaxPrice      uint64 `json:"max_price,omitempty"`

	MinRaise uint64 `json:"min_raise"`
	MaxRaise uint64 `json:"max_raise"`

	IndividualMin uint64 `json:"individual_min,omitempty"`
	IndividualMax uint64 `json:"individual_max,omitempty"`

	UseWhitelist bool `json:"use_whitelist"`
}
