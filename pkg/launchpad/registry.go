// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import "fmt"

// CreateProject registers a new sale in Pending status and binds its
// token reference permanently. Returns the allocated project id.
func (e *Engine) CreateProject(caller Address, cfg ProjectConfig) (uint64, error) {
	if caller != e.cfg.Admin {
		return 0, ErrUnauthorized
	}
	if err := e.validateConfig(cfg); err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	live, err := e.liveProjectCount()
	if err != nil {
		return 0, err
	}
	if live >= e.cfg.MaxLiveProjects {
		return 0, ErrCapacityExceeded
	}

	if _, bound, err := e.projects.TokenBinding(cfg.Token); err != nil {
		return 0, err
	} else if bound {
		return 0, ErrAlreadyExists
	}

	id, err := e.projects.NextProjectID()
	if err != nil {
		return 0, err
	}

	p := &Project{
		ID:            id,
		Name:          cfg.Name,
		Symbol:        cfg.Symbol,
		Token:         cfg.Token,
		Creator:       caller,
		Distribution:  cfg.Distribution,
		Duration:      cfg.Duration,
		TotalTokens:   cfg.TotalTokens,
		PricePerToken: cfg.PricePerToken,
		MinPrice:      cfg.MinPrice,
		MaxPrice:      cfg.MaxPrice,
		MinRaise:      cfg.MinRaise,
		MaxRaise:      cfg.MaxRaise,
		IndividualMin: cfg.IndividualMin,
		IndividualMax: cfg.IndividualMax,
		UseWhitelist:  cfg.UseWhitelist,
		Status:        StatusPending,
	}

	if err := e.projects.PutProject(p); err != nil {
		return 0, err
	}
	if ok, err := e.projects.BindToken(cfg.Token, id); err != nil {
		return 0, err
	} else if !ok {
		return 0, ErrAlreadyExists
	}
	if err := e.contribs.SetTotalRaised(id, 0); err != nil {
		return 0, err
	}

	e.log.Info("project created",
		"project", id, "token", cfg.Token, "distribution", cfg.Distribution.String())
	e.metrics.IncProjectsCreated()
	e.publish(Event{Type: EventProjectCreated, ProjectID: id})

	return id, nil
}

func (e *Engine) validateConfig(cfg ProjectConfig) error {
	if cfg.Duration <= e.cfg.MinDuration {
		return fmt.Errorf("%w: duration %d must exceed %d blocks", ErrInvalidParams, cfg.Duration, e.cfg.MinDuration)
	}
	if cfg.TotalTokens == 0 {
		return fmt.Errorf("%w: total tokens must be positive", ErrInvalidParams)
	}
	switch cfg.Distribution {
	case DistributionFixedPrice:
		if cfg.PricePerToken == 0 {
			return fmt.Errorf("%w: price per token must be positive", ErrInvalidParams)
		}
	case DistributionDutchAuction:
		if cfg.MaxPrice == 0 || cfg.MaxPrice <= cfg.MinPrice {
			return fmt.Errorf("%w: auction price band must satisfy max > min", ErrInvalidParams)
		}
	case DistributionFairLaunch:
		// No pricing parameters; the raise determines the price.
	default:
		return fmt.Errorf("%w: unknown distribution type %d", ErrInvalidParams, cfg.Distribution)
	}
	if cfg.MinRaise == 0 || cfg.MaxRaise == 0 || cfg.MaxRaise < cfg.MinRaise {
		return fmt.Errorf("%w: raise bounds must satisfy max >= min > 0", ErrInvalidParams)
	}
	if cfg.IndividualMax > 0 && cfg.IndividualMax < cfg.IndividualMin {
		return fmt.Errorf("%w: individual bounds must satisfy max >= min", ErrInvalidParams)
	}
	return nil
}

func (e *Engine) liveProjectCount() (int, error) {
	all, err := e.projects.ListProjects()
	if err != nil {
		return 0, err
	}
	live := 0
	for _, p := range all {
		if !p.Status.Terminal() {
			live++
		}
	}
	return live, nil
}

// ActivateProject opens the contribution window: Pending -> Active, with
// the window anchored at the current height. Whitelist membership is
// frozen from this point on.
func (e *Engine) ActivateProject(caller Address, id uint64) error {
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

	height := e.clock.CurrentHeight()
	p.StartHeight = height
	p.EndHeight = height + p.Duration
	p.Status = StatusActive

	if err := e.projects.PutProject(p); err != nil {
		return err
	}

	e.log.Info("project activated", "project", id, "start", p.StartHeight, "end", p.EndHeight)
	e.metrics.IncProjectsActivated()
	e.publish(Event{Type: EventProjectActivated, ProjectID: id, Status: p.Status.String()})

	return nil
}

// CancelProject aborts a Pending or Active sale. Contributors recover
// their funds through the refund path.
func (e *Engine) CancelProject(caller Address, id uint64) error {
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
	if p.Status.Terminal() {
		return ErrAlreadyFinalized
	}

	p.Status = StatusCanceled
	if err := e.projects.PutProject(p); err != nil {
		return err
	}

	e.log.Info("project canceled", "project", id)
	e.metrics.IncProjectsCanceled()
	e.publish(Event{Type: EventProjectCanceled, ProjectID: id, Status: p.Status.String()})

	return nil
}

// GetProject returns a project by id.
func (e *Engine) GetProject(id uint64) (*Project, error) {
	p, ok, err := e.projects.GetProject(id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// ActiveProjects returns all projects currently accepting contributions.
func (e *Engine) ActiveProjects() ([]*Project, error) {
	all, err := e.projects.ListProjects()
	if err != nil {
		return nil, err
	}
	active := make([]*Project, 0, len(all))
	for _, p := range all {
		if p.Status == StatusActive {
			active = append(active, p)
		}
	}
	return active, nil
}
