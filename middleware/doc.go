// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# Caller Authentication

Election operations take the caller address explicitly. Over HTTP it is read
from two headers:

	X-Caller-Address: 0x5B38Da6a701c568545dCfcB03FcB875f56beddC4
	X-Caller-Key:     <auth.GenerateCallerKey(address, salt)>

WithCaller rejects missing or mismatched pairs with 401 and otherwise stores
the address in the request context:

	mux.HandleFunc("POST /election/votes",
		middleware.WithLogging(middleware.WithCaller(cfg.CallerKeySalt, h.SetVote)))

	caller, _ := middleware.CallerFromContext(r.Context())

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type, Authorization,
X-Caller-Address, X-Caller-Key.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.CodedErrorResponse(w, http.StatusConflict, "already_voted", "message")

Parse JSON request bodies:

	var req models.AddProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Vote requests log a salted hash of it (auth.HashIP), never the address itself.
*/
package middleware
