package models

import "github.com/danielhkuo/quickly-elect/election"

// Workflow action path segments
const (
	ActionStartProposalsRegistering = "start-proposals-registering"
	ActionEndProposalsRegistering   = "end-proposals-registering"
	ActionStartVotingSession        = "start-voting-session"
	ActionEndVotingSession          = "end-voting-session"
	ActionTallyVotes                = "tally-votes"
)

// Request types

type AddVoterRequest struct {
	Address string `json:"address"`
}

type AddProposalRequest struct {
	Description string `json:"description"`
}

// ProposalID is a pointer so a missing field is told apart from GENESIS (0).
type SetVoteRequest struct {
	ProposalID *int `json:"proposal_id"`
}

// Response types

type AddVoterResponse struct {
	Address   string `json:"address"`
	CallerKey string `json:"caller_key"`
}

type AddProposalResponse struct {
	ProposalID int `json:"proposal_id"`
}

type SetVoteResponse struct {
	ProposalID int    `json:"proposal_id"`
	Message    string `json:"message"`
}

type VoterResponse struct {
	Address string `json:"address"`
	election.Voter
}

type ProposalResponse struct {
	ProposalID int `json:"proposal_id"`
	election.Proposal
}

type TransitionResponse struct {
	PreviousStatus election.Status `json:"previous_status"`
	Status         election.Status `json:"status"`
}

type SummaryResponse struct {
	Administrator     string          `json:"administrator"`
	Status            election.Status `json:"status"`
	Voters            int             `json:"voters"`
	Proposals         int             `json:"proposals"`
	VotesCast         int             `json:"votes_cast"`
	WinningProposalID *int            `json:"winning_proposal_id,omitempty"`
}

type WinnerResponse struct {
	ProposalID int               `json:"proposal_id"`
	Proposal   election.Proposal `json:"proposal"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}
