// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/metrics"
	"github.com/danielhkuo/quickly-elect/middleware"
	"github.com/danielhkuo/quickly-elect/models"
)

type ResultsHandler struct {
	el  *election.Election
	rec *metrics.Recorder
}

func NewResultsHandler(el *election.Election, rec *metrics.Recorder) *ResultsHandler {
	return &ResultsHandler{el: el, rec: rec}
}

// GetSummary handles GET /election
// Public. The winner is only included once votes are tallied.
func (h *ResultsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	s := h.el.Summary()

	resp := models.SummaryResponse{
		Administrator: s.Administrator.Hex(),
		Status:        s.Status,
		Voters:        s.Voters,
		Proposals:     s.Proposals,
		VotesCast:     s.VotesCast,
	}
	if s.Tallied {
		winner := s.WinningProposalID
		resp.WinningProposalID = &winner
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetWinner handles GET /election/winner
// Public. Results are sealed until TallyVotes has run.
func (h *ResultsHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	id, proposal, ok := h.el.Winner()
	if !ok {
		middleware.CodedErrorResponse(w, http.StatusConflict, election.Kind(election.ErrPhaseNotOpen),
			"votes have not been tallied yet (status "+h.el.Status().String()+")")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WinnerResponse{
		ProposalID: id,
		Proposal:   proposal,
	})
}
