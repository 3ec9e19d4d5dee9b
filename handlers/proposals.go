// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/metrics"
	"github.com/danielhkuo/quickly-elect/middleware"
	"github.com/danielhkuo/quickly-elect/models"
)

type ProposalHandler struct {
	el  *election.Election
	rec *metrics.Recorder
}

func NewProposalHandler(el *election.Election, rec *metrics.Recorder) *ProposalHandler {
	return &ProposalHandler{el: el, rec: rec}
}

// AddProposal handles POST /election/proposals
func (h *ProposalHandler) AddProposal(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req models.AddProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Blank descriptions are rejected by the election itself.
	id, err := h.el.AddProposal(caller, req.Description)
	if err != nil {
		electionError(w, h.rec, "add_proposal", caller, err)
		return
	}

	slog.Info("proposal registered", "proposal_id", id, "voter", caller.Hex())

	middleware.JSONResponse(w, http.StatusCreated, models.AddProposalResponse{
		ProposalID: id,
	})
}

// GetProposal handles GET /election/proposals/{id}
func (h *ProposalHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	proposal, err := h.el.GetOneProposal(caller, id)
	if err != nil {
		electionError(w, h.rec, "get_proposal", caller, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ProposalResponse{
		ProposalID: id,
		Proposal:   proposal,
	})
}
