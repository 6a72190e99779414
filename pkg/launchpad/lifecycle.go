// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

// Finalize closes an Active sale whose window has passed: the raise met
// the minimum -> Ended, otherwise -> Canceled (refund-eligible). There is
// no automatic trigger; a caller invokes this after the window closes, and
// a second invocation fails with ErrNotActive.
func (e *Engine) Finalize(id uint64) (Status, error) {
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
	if !p.WindowClosed(e.clock.CurrentHeight()) {
		return 0, ErrWindowOpen
	}

	raised, err := e.contribs.TotalRaised(id)
	if err != nil {
		return 0, err
	}

	// Boundary is inclusive: raising exactly the minimum succeeds.
	if raised >= p.MinRaise {
		p.Status = StatusEnded
	} else {
		p.Status = StatusCanceled
	}

	if err := e.projects.PutProject(p); err != nil {
		return 0, err
	}

	e.log.Info("project finalized",
		"project", id, "raised", raised, "min_raise", p.MinRaise, "status", p.Status.String())
	e.metrics.IncFinalized(p.Status.String())
	e.publish(Event{Type: EventProjectFinalized, ProjectID: id, Amount: raised, Status: p.Status.String()})

	return p.Status, nil
}
