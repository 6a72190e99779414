// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import (
	"fmt"

	"github.com/luxfi/launchpad/pkg/fixedpoint"
)

// Allocation computes the tokens a user would receive for their current
// contribution. Pure read over stored state; usable before and after
// finalization for previews as well as by the claim path. Division
// truncates toward zero, so residual dust stays undistributed.
func (e *Engine) Allocation(id uint64, user Address) (uint64, error) {
	p, ok, err := e.projects.GetProject(id)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotFound
	}

	c, found, err := e.contribs.GetContribution(id, user)
	if err != nil {
		return 0, err
	}
	if !found || c.Amount == 0 {
		return 0, nil
	}

	raised, err := e.contribs.TotalRaised(id)
	if err != nil {
		return 0, err
	}

	return allocate(p, c.Amount, raised)
}

// allocate applies the project's distribution formula to one position.
func allocate(p *Project, contribution, totalRaised uint64) (uint64, error) {
	switch p.Distribution {
	case DistributionFixedPrice:
		return fixedpoint.MulDiv(contribution, fixedpoint.Scale, p.PricePerToken)

	case DistributionDutchAuction:
		price := clearingPrice(p, totalRaised)
		if price == 0 {
			return 0, fmt.Errorf("%w: auction floor price is zero", ErrInvalidParams)
		}
		return fixedpoint.MulDiv(contribution, fixedpoint.Scale, price)

	case DistributionFairLaunch:
		if totalRaised == 0 {
			return 0, nil
		}
		return fixedpoint.MulDiv(contribution, p.TotalTokens, totalRaised)

	default:
		return 0, fmt.Errorf("%w: unknown distribution type %d", ErrInvalidParams, p.Distribution)
	}
}

// clearingPrice determines the effective Dutch-auction price. When demand
// filled the cap the implied price raised/totalTokens applies, clamped to
// the configured band; otherwise the floor price holds.
func clearingPrice(p *Project, totalRaised uint64) uint64 {
	if totalRaised < p.MaxRaise {
		return p.MinPrice
	}
	implied, err := fixedpoint.MulDiv(totalRaised, fixedpoint.Scale, p.TotalTokens)
	if err != nil {
		return p.MaxPrice
	}
	if implied > p.MaxPrice {
		return p.MaxPrice
	}
	if implied < p.MinPrice {
		return p.MinPrice
	}
	return implied
}

// CurrentPrice returns the effective per-token price of a Dutch auction
// given the raise so far. Other distribution types have no evolving price.
func (e *Engine) CurrentPrice(id uint64) (uint64, error) {
	p, ok, err := e.projects.GetProject(id)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotFound
	}
	if p.Distribution != DistributionDutchAuction {
		return 0, fmt.Errorf("%w: %s sales have no current price", ErrInvalidParams, p.Distribution)
	}

	raised, err := e.contribs.TotalRaised(id)
	if err != nil {
		return 0, err
	}
	return clearingPrice(p, raised), nil
}
