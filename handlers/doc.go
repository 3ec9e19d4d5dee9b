// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Elect API.

# Handler Types

Each handler is a struct holding the election and an optional metrics
recorder. VoterHandler and VotingHandler also keep the config for the caller
key salt:

  - WorkflowHandler: administrator phase transitions
  - VoterHandler: voter registration and lookup
  - ProposalHandler: proposal submission and lookup
  - VotingHandler: vote casting
  - ResultsHandler: public summary and winner

Handlers are created via constructor functions:

	voterHandler := handlers.NewVoterHandler(el, cfg, recorder)
	resultsHandler := handlers.NewResultsHandler(el, recorder)

# Callers

Every operation except the public reads needs the caller address, which
middleware.WithCaller puts in the request context. Handlers never decide who
may do what; the election does, and its rejections map to HTTP statuses:

	ErrUnauthorized, ErrNotAVoter                     → 403
	ErrPhaseNotOpen, ErrAlreadyRegistered, ErrAlreadyVoted → 409
	ErrEmptyDescription                               → 400
	ErrProposalNotFound                               → 404

Error bodies carry election.Kind as "code". Rejections are counted by the
recorder per operation and kind.

# Workflow

	POST /election/workflow/start-proposals-registering
	POST /election/workflow/end-proposals-registering
	POST /election/workflow/start-voting-session   (inserts GENESIS at 0)
	POST /election/workflow/end-voting-session
	POST /election/workflow/tally-votes

# Voting

	POST /election/voters    {"address": "0x..."}  → {"address", "caller_key"}
	POST /election/proposals {"description": "..."} → {"proposal_id"}
	POST /election/votes     {"proposal_id": 2}

The caller key returned on registration is what the voter sends as
X-Caller-Key afterwards.
*/
package handlers
