// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import "fmt"

// Claim pays out the caller's allocation from an Ended sale. One-shot per
// (project, user): the claimed flag flips exactly once. The token transfer
// runs before the flag commits, so a failed delivery leaves the claim
// retryable.
func (e *Engine) Claim(caller Address, id uint64) (uint64, error) {
	unlock := e.lockProject(id)
	defer unlock()

	p, ok, err := e.projects.GetProject(id)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotFound
	}
	if p.Status != StatusEnded {
		return 0, ErrNotEnded
	}

	c, found, err := e.contribs.GetContribution(id, caller)
	if err != nil {
		return 0, err
	}
	if !found || c.Amount == 0 {
		return 0, ErrNoContribution
	}
	if c.Claimed {
		return 0, ErrAlreadyClaimed
	}

	raised, err := e.contribs.TotalRaised(id)
	if err != nil {
		return 0, err
	}
	tokens, err := allocate(p, c.Amount, raised)
	if err != nil {
		return 0, err
	}

	if err := e.vault.TransferOut(p.Token, caller, tokens); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	c.Claimed = true
	if err := e.contribs.PutContribution(c); err != nil {
		return 0, err
	}
	p.TokensSold += tokens
	if err := e.projects.PutProject(p); err != nil {
		return 0, err
	}

	e.log.Info("allocation claimed", "project", id, "user", caller, "tokens", tokens)
	e.metrics.IncClaims()
	e.publish(Event{Type: EventClaim, ProjectID: id, User: caller, Amount: tokens})

	return tokens, nil
}

// Refund returns the caller's full contribution from a Canceled sale.
// Shares the one-shot claimed flag with Claim; the two paths are mutually
// exclusive because Ended and Canceled are disjoint.
func (e *Engine) Refund(caller Address, id uint64) (uint64, error) {
	unlock := e.lockProject(id)
	defer unlock()

	p, ok, err := e.projects.GetProject(id)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotFound
	}
	if p.Status != StatusCanceled {
		return 0, ErrNotCanceled
	}

	c, found, err := e.contribs.GetContribution(id, caller)
	if err != nil {
		return 0, err
	}
	if !found || c.Amount == 0 {
		return 0, ErrNoContribution
	}
	if c.Claimed {
		return 0, ErrAlreadyClaimed
	}

	if err := e.payment.TransferOut(caller, c.Amount); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	c.Claimed = true
	if err := e.contribs.PutContribution(c); err != nil {
		return 0, err
	}

	e.log.Info("contribution refunded", "project", id, "user", caller, "amount", c.Amount)
	e.metrics.IncRefunds()
	e.publish(Event{Type: EventRefund, ProjectID: id, User: caller, Amount: c.Amount})

	return c.Amount, nil
}
