// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// AddVoter registers voter. Administrator only, during RegisteringVoters.
func (e *Election) AddVoter(caller, voter common.Address) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireAdmin(caller, "register voters"); err != nil {
		return err
	}
	if e.status != RegisteringVoters {
		return phaseError("register voters", e.status, RegisteringVoters)
	}
	if e.voters[voter].IsRegistered {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, voter.Hex())
	}

	e.voters[voter] = Voter{IsRegistered: true}
	e.emit(Event{Type: EventVoterRegistered, Voter: voter})
	return nil
}

// GetVoter returns the record of voter. The caller must be a registered
// voter; querying an unregistered address is not an error.
func (e *Election) GetVoter(caller, voter common.Address) (Voter, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireVoter(caller); err != nil {
		return Voter{}, err
	}
	return e.voters[voter], nil
}

// IsVoter reports whether addr is registered. Any caller may ask.
func (e *Election) IsVoter(addr common.Address) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.voters[addr].IsRegistered
}

func (e *Election) requireVoter(caller common.Address) error {
	if !e.voters[caller].IsRegistered {
		return fmt.Errorf("%w: %s", ErrNotAVoter, caller.Hex())
	}
	return nil
}
