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

type VoterHandler struct {
	el  *election.Election
	cfg cliparse.Config
	rec *metrics.Recorder
}

func NewVoterHandler(el *election.Election, cfg cliparse.Config, rec *metrics.Recorder) *VoterHandler {
	return &VoterHandler{el: el, cfg: cfg, rec: rec}
}

// AddVoter handles POST /election/voters
// Administrator only. Returns the caller key the voter authenticates with.
func (h *VoterHandler) AddVoter(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var req models.AddVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Address == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "address is required")
		return
	}
	voter, err := auth.ParseAddress(req.Address)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "address must be a 20-byte hex address")
		return
	}

	if err := h.el.AddVoter(caller, voter); err != nil {
		electionError(w, h.rec, "add_voter", caller, err)
		return
	}

	slog.Info("voter registered", "address", voter.Hex())

	middleware.JSONResponse(w, http.StatusCreated, models.AddVoterResponse{
		Address:   voter.Hex(),
		CallerKey: auth.GenerateCallerKey(voter, h.cfg.CallerKeySalt),
	})
}

// GetVoter handles GET /election/voters/{address}
// Registered voters only. Unknown addresses read as unregistered.
func (h *VoterHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	addr, err := auth.ParseAddress(r.PathValue("address"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "address must be a 20-byte hex address")
		return
	}

	voter, err := h.el.GetVoter(caller, addr)
	if err != nil {
		electionError(w, h.rec, "get_voter", caller, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoterResponse{
		Address: addr.Hex(),
		Voter:   voter,
	})
}
