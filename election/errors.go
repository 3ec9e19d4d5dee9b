// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized      = errors.New("unauthorized caller")
	ErrPhaseNotOpen      = errors.New("phase not open")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrAlreadyVoted      = errors.New("already voted")
	ErrEmptyDescription  = errors.New("empty description")
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrNotAVoter         = errors.New("not a voter")
)

// phaseError builds an ErrPhaseNotOpen rejection for action. Only the message
// tells "too early" apart from "too late".
func phaseError(action string, current, required Status) error {
	if current < required {
		return fmt.Errorf("%w: cannot %s, not open yet (status %s)", ErrPhaseNotOpen, action, current)
	}
	return fmt.Errorf("%w: cannot %s, already closed (status %s)", ErrPhaseNotOpen, action, current)
}

// Kind returns the short name of the rejection wrapped by err, or "internal"
// for anything that is not an election sentinel.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrPhaseNotOpen):
		return "phase_not_open"
	case errors.Is(err, ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, ErrAlreadyVoted):
		return "already_voted"
	case errors.Is(err, ErrEmptyDescription):
		return "empty_description"
	case errors.Is(err, ErrProposalNotFound):
		return "proposal_not_found"
	case errors.Is(err, ErrNotAVoter):
		return "not_a_voter"
	default:
		return "internal"
	}
}
