// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

// AddParticipants admits users to a whitelisted sale. Only possible while
// the project is Pending; inserts are idempotent.
func (e *Engine) AddParticipants(caller Address, id uint64, users []Address) error {
	if caller != e.cfg.Admin {
		return ErrUnauthorized
	}

	unlock := e.lockProject(id)
	defer unlock()

	p, ok, err := e.projects.GetProject(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	if p.Status != StatusPending {
		return ErrWrongPhase
	}

	for _, user := range users {
		if err := e.whitelist.AddWhitelisted(id, user); err != nil {
			return err
		}
	}

	e.log.Debug("participants whitelisted", "project", id, "count", len(users))
	return nil
}

// IsWhitelisted reports whether a user may contribute to the project.
// Projects without a whitelist admit everyone.
func (e *Engine) IsWhitelisted(id uint64, user Address) (bool, error) {
	p, ok, err := e.projects.GetProject(id)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrNotFound
	}
	if !p.UseWhitelist {
		return true, nil
	}
	return e.whitelist.IsWhitelisted(id, user)
}
