// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/handlers"
	"github.com/danielhkuo/quickly-elect/metrics"
	"github.com/danielhkuo/quickly-elect/middleware"
)

func NewRouter(el *election.Election, cfg cliparse.Config, rec *metrics.Recorder) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	workflowHandler := handlers.NewWorkflowHandler(el, rec)
	voterHandler := handlers.NewVoterHandler(el, cfg, rec)
	proposalHandler := handlers.NewProposalHandler(el, rec)
	votingHandler := handlers.NewVotingHandler(el, cfg, rec)
	resultsHandler := handlers.NewResultsHandler(el, rec)

	// authed requires X-Caller-Address and X-Caller-Key
	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithCaller(cfg.CallerKeySalt, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus exposition
	mux.Handle("GET /metrics", rec.Handler())

	// Election state (public)
	mux.HandleFunc("GET /election", middleware.WithLogging(resultsHandler.GetSummary))
	mux.HandleFunc("GET /election/winner", middleware.WithLogging(resultsHandler.GetWinner))

	// Workflow (administrator)
	mux.HandleFunc("POST /election/workflow/{action}", authed(workflowHandler.Transition))

	// Voter registry
	mux.HandleFunc("POST /election/voters", authed(voterHandler.AddVoter))
	mux.HandleFunc("GET /election/voters/{address}", authed(voterHandler.GetVoter))

	// Proposal registry
	mux.HandleFunc("POST /election/proposals", authed(proposalHandler.AddProposal))
	mux.HandleFunc("GET /election/proposals/{id}", authed(proposalHandler.GetProposal))

	// Voting
	mux.HandleFunc("POST /election/votes", authed(votingHandler.SetVote))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-elect API v1"))
	})

	return mux
}
