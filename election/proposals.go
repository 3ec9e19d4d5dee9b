// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// AddProposal appends a proposal submitted by a registered voter during
// ProposalsRegistrationStarted and returns its id. A blank description is
// rejected before any other check.
func (e *Election) AddProposal(caller common.Address, description string) (int, error) {
	if strings.TrimSpace(description) == "" {
		return 0, ErrEmptyDescription
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireVoter(caller); err != nil {
		return 0, err
	}
	if e.status != ProposalsRegistrationStarted {
		return 0, phaseError("add proposals", e.status, ProposalsRegistrationStarted)
	}

	id := len(e.proposals)
	e.proposals = append(e.proposals, Proposal{Description: description})
	e.emit(Event{
		Type:        EventProposalRegistered,
		Voter:       caller,
		ProposalID:  id,
		Description: description,
	})
	return id, nil
}

// GetOneProposal returns proposal id to a registered voter.
func (e *Election) GetOneProposal(caller common.Address, id int) (Proposal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireVoter(caller); err != nil {
		return Proposal{}, err
	}
	if !e.proposalExists(id) {
		return Proposal{}, fmt.Errorf("%w: %d", ErrProposalNotFound, id)
	}
	return e.proposals[id], nil
}

// proposalExists reports whether id addresses a visible proposal. Slot 0 only
// becomes visible once GENESIS is inserted.
func (e *Election) proposalExists(id int) bool {
	if id == 0 {
		return e.genesis
	}
	return id > 0 && id < len(e.proposals)
}

func (e *Election) proposalCount() int {
	n := len(e.proposals) - 1
	if e.genesis {
		n++
	}
	return n
}
