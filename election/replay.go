// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Replay rebuilds an election by re-running the operations recorded in
// events, in order. No events are published while replaying; sinks passed in
// opts only see events produced after Replay returns.
//
// Replay fails on the first event that does not apply cleanly, which also
// catches gaps or reordering in a stored log.
func Replay(admin common.Address, events []Event, opts ...Option) (*Election, error) {
	e := New(admin, opts...)
	sink := e.sink
	e.sink = nil

	for _, ev := range events {
		if ev.Seq != e.seq+1 {
			return nil, fmt.Errorf("replay: expected event seq %d, got %d", e.seq+1, ev.Seq)
		}
		if err := e.apply(ev); err != nil {
			return nil, fmt.Errorf("replay event %d (%s): %w", ev.Seq, ev.Type, err)
		}
	}

	e.sink = sink
	return e, nil
}

func (e *Election) apply(ev Event) error {
	switch ev.Type {
	case EventVoterRegistered:
		return e.AddVoter(e.admin, ev.Voter)
	case EventProposalRegistered:
		id, err := e.AddProposal(ev.Voter, ev.Description)
		if err != nil {
			return err
		}
		if id != ev.ProposalID {
			return fmt.Errorf("proposal id %d replayed as %d", ev.ProposalID, id)
		}
		return nil
	case EventVoted:
		return e.SetVote(ev.Voter, ev.ProposalID)
	case EventWorkflowStatusChange:
		current := e.Status()
		if current != ev.PreviousStatus {
			return fmt.Errorf("status change from %s recorded while at %s", ev.PreviousStatus, current)
		}
		return e.advance(current)
	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
}

// advance runs the administrator transition leaving from.
func (e *Election) advance(from Status) error {
	_, err := e.Advance(e.admin, from)
	return err
}
