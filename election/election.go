// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// GenesisDescription is the description of the reserved proposal at index 0.
const GenesisDescription = "GENESIS"

// Voter is the registry record of one address. Unregistered addresses read
// as the zero Voter.
type Voter struct {
	IsRegistered    bool `json:"is_registered"`
	HasVoted        bool `json:"has_voted"`
	VotedProposalID int  `json:"voted_proposal_id"`
}

// Proposal is a candidate with its running vote count.
type Proposal struct {
	Description string `json:"description"`
	VoteCount   int    `json:"vote_count"`
}

// Summary is a point-in-time view of an election for any caller.
type Summary struct {
	Administrator     common.Address `json:"administrator"`
	Status            Status         `json:"status"`
	Voters            int            `json:"voters"`
	Proposals         int            `json:"proposals"`
	VotesCast         int            `json:"votes_cast"`
	Tallied           bool           `json:"tallied"`
	WinningProposalID int            `json:"winning_proposal_id"`
}

// Election owns all workflow, registry and tally state. All methods are safe
// for concurrent use; each one runs atomically.
type Election struct {
	mu sync.Mutex

	admin  common.Address
	status Status

	voters map[common.Address]Voter
	// proposals[0] is reserved for GENESIS and hidden until genesis is set.
	proposals []Proposal
	genesis   bool
	votesCast int

	tallied bool
	winner  int

	seq    int64
	sink   Sink
	now    func() time.Time
	logger *slog.Logger
}

// Option configures an Election at construction.
type Option func(*Election)

// WithSink sets the event sink.
func WithSink(sink Sink) Option {
	return func(e *Election) { e.sink = sink }
}

// WithClock overrides the clock used to stamp events.
func WithClock(now func() time.Time) Option {
	return func(e *Election) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLogger sets the logger used for workflow changes.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Election) { e.logger = logger }
}

// New creates an election in RegisteringVoters administered by admin.
func New(admin common.Address, opts ...Option) *Election {
	e := &Election{
		admin:     admin,
		status:    RegisteringVoters,
		voters:    make(map[common.Address]Voter),
		proposals: make([]Proposal, 1),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = ResolveLogger(e.logger)
	return e
}

// ResolveLogger guarantees a non-nil logger.
func ResolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// SetSink replaces the event sink. Used once a replayed election is ready to
// publish new events.
func (e *Election) SetSink(sink Sink) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sink = sink
}

// Administrator returns the fixed administrator address.
func (e *Election) Administrator() common.Address {
	return e.admin
}

// Status returns the current workflow phase.
func (e *Election) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Summary returns counts and the tally result, if any.
func (e *Election) Summary() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Summary{
		Administrator:     e.admin,
		Status:            e.status,
		Voters:            len(e.voters),
		Proposals:         e.proposalCount(),
		VotesCast:         e.votesCast,
		Tallied:           e.tallied,
		WinningProposalID: e.winner,
	}
}

// LastSeq returns the sequence number of the most recent event.
func (e *Election) LastSeq() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.seq
}

// Change is one committed workflow transition.
type Change struct {
	Previous Status
	Status   Status
}

// transitionActions names the administrator action leaving each phase.
var transitionActions = map[Status]string{
	RegisteringVoters:            "start proposals registration",
	ProposalsRegistrationStarted: "end proposals registration",
	ProposalsRegistrationEnded:   "start voting session",
	VotingSessionStarted:         "end voting session",
	VotingSessionEnded:           "tally votes",
}

// StartProposalsRegistering opens proposal submission.
func (e *Election) StartProposalsRegistering(caller common.Address) error {
	_, err := e.Advance(caller, RegisteringVoters)
	return err
}

// EndProposalsRegistering closes proposal submission.
func (e *Election) EndProposalsRegistering(caller common.Address) error {
	_, err := e.Advance(caller, ProposalsRegistrationStarted)
	return err
}

// StartVotingSession inserts GENESIS at index 0 and opens voting.
func (e *Election) StartVotingSession(caller common.Address) error {
	_, err := e.Advance(caller, ProposalsRegistrationEnded)
	return err
}

// EndVotingSession closes voting.
func (e *Election) EndVotingSession(caller common.Address) error {
	_, err := e.Advance(caller, VotingSessionStarted)
	return err
}

// TallyVotes computes the winning proposal. It can only succeed once.
func (e *Election) TallyVotes(caller common.Address) error {
	_, err := e.Advance(caller, VotingSessionEnded)
	return err
}

// Advance runs the administrator transition that leaves from and returns the
// pair it committed. The caller and phase checks run before any mutation.
func (e *Election) Advance(caller common.Address, from Status) (Change, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	action, ok := transitionActions[from]
	if !ok {
		action = "advance the workflow"
	}
	if err := e.requireAdmin(caller, action); err != nil {
		return Change{}, err
	}
	if !ok {
		return Change{}, fmt.Errorf("%w: no transition leaves %s", ErrPhaseNotOpen, from)
	}
	if e.status != from {
		return Change{}, phaseError(action, e.status, from)
	}
	to, _ := from.Next()

	switch from {
	case ProposalsRegistrationEnded:
		e.proposals[0] = Proposal{Description: GenesisDescription}
		e.genesis = true
	case VotingSessionEnded:
		e.winner = tally(e.proposals)
		e.tallied = true
	}
	e.status = to

	e.logger.Info("workflow status changed",
		"previous_status", from.String(),
		"new_status", to.String(),
	)
	e.emit(Event{
		Type:           EventWorkflowStatusChange,
		PreviousStatus: from,
		NewStatus:      to,
	})
	return Change{Previous: from, Status: to}, nil
}

func (e *Election) requireAdmin(caller common.Address, action string) error {
	if caller != e.admin {
		return fmt.Errorf("%w: only the administrator can %s", ErrUnauthorized, action)
	}
	return nil
}

// emit stamps ev and hands it to the sink. Must be called with mu held.
func (e *Election) emit(ev Event) {
	e.seq++
	ev.Seq = e.seq
	ev.ID = uuid.NewString()
	ev.OccurredAt = e.now().UTC()
	if e.sink != nil {
		e.sink.Publish(ev)
	}
}
