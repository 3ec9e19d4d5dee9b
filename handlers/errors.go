// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/metrics"
	"github.com/danielhkuo/quickly-elect/middleware"
)

// statusFor maps election rejections to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, election.ErrUnauthorized), errors.Is(err, election.ErrNotAVoter):
		return http.StatusForbidden
	case errors.Is(err, election.ErrPhaseNotOpen),
		errors.Is(err, election.ErrAlreadyRegistered),
		errors.Is(err, election.ErrAlreadyVoted):
		return http.StatusConflict
	case errors.Is(err, election.ErrEmptyDescription):
		return http.StatusBadRequest
	case errors.Is(err, election.ErrProposalNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// electionError writes the response for a rejected election operation and
// counts it.
func electionError(w http.ResponseWriter, rec *metrics.Recorder, op string, caller common.Address, err error) {
	rec.ObserveRejection(op, err)

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("election operation failed", "operation", op, "caller", caller.Hex(), "error", err)
		middleware.ErrorResponse(w, status, "Internal error")
		return
	}

	slog.Info("election operation rejected",
		"operation", op,
		"caller", caller.Hex(),
		"kind", election.Kind(err),
	)
	middleware.CodedErrorResponse(w, status, election.Kind(err), err.Error())
}

// requireCaller returns the authenticated caller or writes 401.
func requireCaller(w http.ResponseWriter, r *http.Request) (common.Address, bool) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Caller authentication required")
		return common.Address{}, false
	}
	return caller, true
}
