// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/metrics"
	"github.com/danielhkuo/quickly-elect/middleware"
	"github.com/danielhkuo/quickly-elect/models"
)

type WorkflowHandler struct {
	el  *election.Election
	rec *metrics.Recorder
}

func NewWorkflowHandler(el *election.Election, rec *metrics.Recorder) *WorkflowHandler {
	return &WorkflowHandler{el: el, rec: rec}
}

// workflowActions maps each action path segment to the phase it leaves.
var workflowActions = map[string]election.Status{
	models.ActionStartProposalsRegistering: election.RegisteringVoters,
	models.ActionEndProposalsRegistering:   election.ProposalsRegistrationStarted,
	models.ActionStartVotingSession:        election.ProposalsRegistrationEnded,
	models.ActionEndVotingSession:          election.VotingSessionStarted,
	models.ActionTallyVotes:                election.VotingSessionEnded,
}

// Transition handles POST /election/workflow/{action}
// Administrator only.
func (h *WorkflowHandler) Transition(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	action := r.PathValue("action")
	from, found := workflowActions[action]
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown workflow action")
		return
	}

	change, err := h.el.Advance(caller, from)
	if err != nil {
		electionError(w, h.rec, action, caller, err)
		return
	}

	slog.Info("workflow advanced",
		"action", action,
		"previous_status", change.Previous.String(),
		"status", change.Status.String(),
	)

	middleware.JSONResponse(w, http.StatusOK, models.TransitionResponse{
		PreviousStatus: change.Previous,
		Status:         change.Status,
	})
}
