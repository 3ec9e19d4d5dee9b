// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// EventType names a successful election mutation.
type EventType string

const (
	EventVoterRegistered      EventType = "VoterRegistered"
	EventWorkflowStatusChange EventType = "WorkflowStatusChange"
	EventProposalRegistered   EventType = "ProposalRegistered"
	EventVoted                EventType = "Voted"
)

// Event is the notification published after a successful mutation. Only the
// fields relevant to Type are set.
type Event struct {
	Seq        int64          `json:"seq"`
	ID         string         `json:"id"`
	Type       EventType      `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Voter      common.Address `json:"voter"`

	// ProposalRegistered and Voted
	ProposalID int `json:"proposal_id"`
	// ProposalRegistered only; kept so the log can be replayed.
	Description string `json:"description,omitempty"`

	// WorkflowStatusChange
	PreviousStatus Status `json:"previous_status"`
	NewStatus      Status `json:"new_status"`
}

// Sink receives events in commit order. Publish is called while the election
// lock is held, so implementations must not call back into the Election.
type Sink interface {
	Publish(Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

func (f SinkFunc) Publish(ev Event) { f(ev) }

// Sinks fans one event out to several sinks in order.
type Sinks []Sink

func (s Sinks) Publish(ev Event) {
	for _, sink := range s {
		if sink != nil {
			sink.Publish(ev)
		}
	}
}
