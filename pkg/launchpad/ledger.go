// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import "fmt"

// Contribute adds amount to the caller's position in a sale and moves the
// payment asset into escrow. Validation is strictly ordered and fully
// precedes the transfer, so a failed transfer leaves no state behind.
// Returns the caller's new cumulative contribution.
func (e *Engine) Contribute(caller Address, id uint64, amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, ErrZeroAmount
	}

	unlock := e.lockProject(id)
	defer unlock()

	p, ok, err := e.projects.GetProject(id)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotFound
	}
	if p.Status != StatusActive {
		return 0, ErrNotActive
	}
	if p.WindowClosed(e.clock.CurrentHeight()) {
		return 0, ErrWindowClosed
	}

	if p.UseWhitelist {
		admitted, err := e.whitelist.IsWhitelisted(id, caller)
		if err != nil {
			return 0, err
		}
		if !admitted {
			return 0, ErrNotWhitelisted
		}
	}

	prior := uint64(0)
	c, found, err := e.contribs.GetContribution(id, caller)
	if err != nil {
		return 0, err
	}
	if found {
		prior = c.Amount
	}

	newAmount := prior + amount
	if p.IndividualMin > 0 && newAmount < p.IndividualMin {
		return 0, ErrBelowMinimum
	}
	if p.IndividualMax > 0 && newAmount > p.IndividualMax {
		return 0, ErrAboveMaximum
	}

	raised, err := e.contribs.TotalRaised(id)
	if err != nil {
		return 0, err
	}
	newTotal := raised + amount
	if newTotal > p.MaxRaise {
		return 0, ErrCapReached
	}

	if err := e.payment.TransferIn(caller, amount); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	if err := e.contribs.PutContribution(&Contribution{
		ProjectID: id,
		User:      caller,
		Amount:    newAmount,
	}); err != nil {
		return 0, err
	}
	if err := e.contribs.SetTotalRaised(id, newTotal); err != nil {
		return 0, err
	}

	e.log.Debug("contribution accepted",
		"project", id, "user", caller, "amount", amount, "total", newTotal)
	e.metrics.IncContribution(amount)
	e.publish(Event{Type: EventContribution, ProjectID: id, User: caller, Amount: amount})

	return newAmount, nil
}

// GetContribution returns a user's cumulative position, zero if none.
func (e *Engine) GetContribution(id uint64, user Address) (*Contribution, error) {
	if _, ok, err := e.projects.GetProject(id); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrNotFound
	}
	c, found, err := e.contribs.GetContribution(id, user)
	if err != nil {
		return nil, err
	}
	if !found {
		return &Contribution{ProjectID: id, User: user}, nil
	}
	return c, nil
}

// TotalRaised returns the aggregate contributions for a project.
func (e *Engine) TotalRaised(id uint64) (uint64, error) {
	if _, ok, err := e.projects.GetProject(id); err != nil {
		return 0, err
	} else if !ok {
		return 0, ErrNotFound
	}
	return e.contribs.TotalRaised(id)
}
