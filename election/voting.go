// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// SetVote records the single vote of caller for proposalID during
// VotingSessionStarted.
func (e *Election) SetVote(caller common.Address, proposalID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireVoter(caller); err != nil {
		return err
	}
	if e.status != VotingSessionStarted {
		return phaseError("vote", e.status, VotingSessionStarted)
	}
	voter := e.voters[caller]
	if voter.HasVoted {
		return fmt.Errorf("%w: %s voted for proposal %d", ErrAlreadyVoted, caller.Hex(), voter.VotedProposalID)
	}
	if !e.proposalExists(proposalID) {
		return fmt.Errorf("%w: %d", ErrProposalNotFound, proposalID)
	}

	e.proposals[proposalID].VoteCount++
	voter.HasVoted = true
	voter.VotedProposalID = proposalID
	e.voters[caller] = voter
	e.votesCast++

	e.emit(Event{Type: EventVoted, Voter: caller, ProposalID: proposalID})
	return nil
}
