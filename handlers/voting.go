// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-elect/auth"
	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/metrics"
	"github.com/danielhkuo/quickly-elect/middleware"
	"github.com/danielhkuo/quickly-elect/models"
)

type VotingHandler struct {
	el  *election.Election
	cfg cliparse.Config
	rec *metrics.Recorder
}

func NewVotingHandler(el *election.Election, cfg cliparse.Config, rec *metrics.Recorder) *VotingHandler {
	return &VotingHandler{el: el, cfg: cfg, rec: rec}
}

// SetVote handles POST /election/votes
func (h *VotingHandler) SetVote(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req models.SetVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ProposalID == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal_id is required")
		return
	}

	if err := h.el.SetVote(caller, *req.ProposalID); err != nil {
		electionError(w, h.rec, "set_vote", caller, err)
		return
	}

	slog.Info("vote cast",
		"voter", caller.Hex(),
		"proposal_id", *req.ProposalID,
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.CallerKeySalt),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SetVoteResponse{
		ProposalID: *req.ProposalID,
		Message:    "Vote recorded",
	})
}
