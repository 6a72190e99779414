// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package launchpad

import "errors"

var (
	ErrUnauthorized     = errors.New("caller is not the administrator")
	ErrInvalidParams    = errors.New("invalid project parameters")
	ErrAlreadyExists    = errors.New("token already bound to a project")
	ErrNotFound         = errors.New("project not found")
	ErrWrongPhase       = errors.New("project is not in the required phase")
	ErrAlreadyFinalized = errors.New("project already finalized")
	ErrNotActive        = errors.New("project is not active")
	ErrNotEnded         = errors.New("project has not ended")
	ErrNotCanceled      = errors.New("project is not canceled")
	ErrNotWhitelisted   = errors.New("caller is not whitelisted")
	ErrZeroAmount       = errors.New("contribution amount is zero")
	ErrBelowMinimum     = errors.New("contribution below individual minimum")
	ErrAboveMaximum     = errors.New("contribution above individual maximum")
	ErrCapReached       = errors.New("contribution would exceed the raise cap")
	ErrWindowClosed     = errors.New("contribution window closed")
	ErrWindowOpen       = errors.New("contribution window still open")
	ErrAlreadyClaimed   = errors.New("allocation already claimed")
	ErrNoContribution   = errors.New("no contribution recorded")
	ErrCapacityExceeded = errors.New("maximum live project count reached")
	ErrTransferFailed   = errors.New("asset transfer failed")
)
