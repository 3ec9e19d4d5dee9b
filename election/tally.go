// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// tally returns the index of the first proposal holding the highest vote
// count. Ties go to the lowest index.
func tally(proposals []Proposal) int {
	winner, best := 0, -1
	for id, p := range proposals {
		if p.VoteCount > best {
			winner, best = id, p.VoteCount
		}
	}
	return winner
}

// WinningProposalID returns the tally result. ok is false until the election
// reaches VotesTallied.
func (e *Election) WinningProposalID() (id int, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.tallied {
		return 0, false
	}
	return e.winner, true
}

// Winner returns the winning proposal itself. Any caller may read it once
// votes are tallied.
func (e *Election) Winner() (int, Proposal, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.tallied {
		return 0, Proposal{}, false
	}
	return e.winner, e.proposals[e.winner], true
}
