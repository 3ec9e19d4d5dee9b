// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

Domain types (voters, proposals, workflow status) live in package election;
responses embed them so their JSON shape is defined once.

# Request Types

  - AddVoterRequest: address
  - AddProposalRequest: description
  - SetVoteRequest: proposal_id (required, 0 is GENESIS)

# Response Types

  - AddVoterResponse: address, caller_key
  - AddProposalResponse: proposal_id
  - SetVoteResponse: proposal_id, message
  - VoterResponse: address, is_registered, has_voted, voted_proposal_id
  - ProposalResponse: proposal_id, description, vote_count
  - TransitionResponse: previous_status, status
  - SummaryResponse: administrator, status, counts, winning_proposal_id
  - WinnerResponse: proposal_id, proposal
  - ErrorResponse: error, message, code

# Constants

Workflow actions, used as the last path segment of
POST /election/workflow/{action}:

	ActionStartProposalsRegistering = "start-proposals-registering"
	ActionEndProposalsRegistering   = "end-proposals-registering"
	ActionStartVotingSession        = "start-voting-session"
	ActionEndVotingSession          = "end-voting-session"
	ActionTallyVotes                = "tally-votes"
*/
package models
