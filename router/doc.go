// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Elect API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(el, cfg, recorder)

The recorder may be nil, in which case GET /metrics answers 404.

# Endpoints

Health and monitoring:

	GET /health
	GET /metrics

Election state (public):

	GET /election        - Status, counts and winner once tallied
	GET /election/winner - Winning proposal (409 until tallied)

Workflow (administrator):

	POST /election/workflow/start-proposals-registering
	POST /election/workflow/end-proposals-registering
	POST /election/workflow/start-voting-session
	POST /election/workflow/end-voting-session
	POST /election/workflow/tally-votes

Registries and voting (caller authenticated):

	POST /election/voters              - Register voter (administrator)
	GET  /election/voters/{address}    - Read a voter record (voters)
	POST /election/proposals           - Submit proposal (voters)
	GET  /election/proposals/{id}      - Read a proposal (voters)
	POST /election/votes               - Cast the single vote (voters)

Every authenticated route requires X-Caller-Address and X-Caller-Key; see
package middleware. All routes except /health and /metrics are wrapped
with request logging.
*/
package router
