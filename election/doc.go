// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the single-election voting workflow.

# Workflow

An Election moves through six phases, driven only by its administrator:

	RegisteringVoters
	  → ProposalsRegistrationStarted
	  → ProposalsRegistrationEnded
	  → VotingSessionStarted
	  → VotingSessionEnded
	  → VotesTallied

Every phase advances by exactly one step and never regresses.

# Callers

Every operation takes the caller address explicitly:

	el := election.New(admin)
	err := el.AddVoter(admin, alice)
	id, err := el.AddProposal(alice, "Build a bike lane")

The administrator registers voters and triggers transitions. Registered
voters submit proposals, read the registries and vote. The administrator is
not a voter unless registered as one.

# Proposals

Proposal ids are stable once assigned. Index 0 is reserved for the GENESIS
proposal, inserted by StartVotingSession; voter proposals start at 1.

# Errors

Rejections are sentinel errors checked with errors.Is:

	ErrUnauthorized, ErrPhaseNotOpen, ErrAlreadyRegistered, ErrAlreadyVoted,
	ErrEmptyDescription, ErrProposalNotFound, ErrNotAVoter

A rejected operation never modifies state and never emits an event.

# Events

Successful mutations are published synchronously to a Sink:

	el := election.New(admin, election.WithSink(eventLog))

Replay rebuilds an Election from a stored event sequence.
*/
package election
