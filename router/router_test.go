// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/metrics"
	"github.com/danielhkuo/quickly-elect/models"
	"github.com/danielhkuo/quickly-elect/testutil"
)

func newTestRouter(t *testing.T) (*http.ServeMux, *election.Election) {
	t.Helper()
	el := testutil.CreateTestElection(t, election.RegisteringVoters)
	return NewRouter(el, testutil.GetTestConfig(), metrics.NewRecorder()), el
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "quickly-elect API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "quickly_elect_workflow_status") {
		t.Error("Expected election metrics in exposition")
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _ := newTestRouter(t)

	// Unauthenticated requests still reach a handler (401, 409 are fine)
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/metrics"},
		{"GET", "/election"},
		{"GET", "/election/winner"},
		{"POST", "/election/workflow/start-proposals-registering"},
		{"POST", "/election/workflow/tally-votes"},
		{"POST", "/election/voters"},
		{"GET", "/election/voters/0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"},
		{"POST", "/election/proposals"},
		{"GET", "/election/proposals/1"},
		{"POST", "/election/votes"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestAuthenticatedRoutesRequireCaller(t *testing.T) {
	mux, _ := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{"POST", "/election/workflow/start-proposals-registering"},
		{"POST", "/election/voters"},
		{"GET", "/election/voters/0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"},
		{"POST", "/election/proposals"},
		{"GET", "/election/proposals/1"},
		{"POST", "/election/votes"},
	}

	for _, tc := range paths {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401, got %d", w.Code)
			}
		})
	}
}

func TestSpecificMethodRouting(t *testing.T) {
	mux, _ := newTestRouter(t)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"DELETE a voter", "DELETE", "/election/voters/0x5B38Da6a701c568545dCfcB03FcB875f56beddC4", http.StatusMethodNotAllowed},
		{"PUT a proposal", "PUT", "/election/proposals/1", http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}

// TestFullElection runs the whole workflow over HTTP:
// 1. Administrator registers three voters
// 2. Each voter submits a proposal (A, B, C)
// 3. Voting opens with GENESIS at index 0
// 4. Votes: two for B, one for A
// 5. Tally, winner is B (id 2)
func TestFullElection(t *testing.T) {
	cfg := testutil.GetTestConfig()
	mux, el := newTestRouter(t)
	admin := testutil.AdminAddress

	do := func(method, path string, body any, caller common.Address, headers map[string]string) *httptest.ResponseRecorder {
		t.Helper()
		if headers == nil {
			headers = testutil.CallerHeaders(cfg, caller)
		}
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, headers))
		return w
	}

	// Step 1: register voters, keep the returned caller keys
	voters := []common.Address{testutil.VoterAddress(1), testutil.VoterAddress(2), testutil.VoterAddress(3)}
	voterHeaders := make([]map[string]string, len(voters))
	for i, v := range voters {
		w := do("POST", "/election/voters", models.AddVoterRequest{Address: v.Hex()}, admin, nil)
		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.AddVoterResponse
		testutil.AssertJSON(t, w, &resp)
		voterHeaders[i] = map[string]string{
			"X-Caller-Address": resp.Address,
			"X-Caller-Key":     resp.CallerKey,
		}
	}

	// A voter cannot drive the workflow
	w := do("POST", "/election/workflow/start-proposals-registering", nil, voters[0], voterHeaders[0])
	testutil.AssertStatus(t, w, http.StatusForbidden)

	w = do("POST", "/election/workflow/start-proposals-registering", nil, admin, nil)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Step 2: proposals
	for i, description := range []string{"A", "B", "C"} {
		w := do("POST", "/election/proposals", models.AddProposalRequest{Description: description}, voters[i], voterHeaders[i])
		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.AddProposalResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.ProposalID != i+1 {
			t.Fatalf("Step 2 - Expected proposal_id %d, got %d", i+1, resp.ProposalID)
		}
	}

	// Voting is not open yet
	w = do("POST", "/election/votes", map[string]int{"proposal_id": 1}, voters[0], voterHeaders[0])
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Step 3: open voting
	for _, action := range []string{models.ActionEndProposalsRegistering, models.ActionStartVotingSession} {
		w := do("POST", "/election/workflow/"+action, nil, admin, nil)
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	w = do("GET", "/election/proposals/0", nil, voters[0], voterHeaders[0])
	testutil.AssertStatus(t, w, http.StatusOK)
	var genesis models.ProposalResponse
	testutil.AssertJSON(t, w, &genesis)
	if genesis.Description != election.GenesisDescription {
		t.Fatalf("Step 3 - Expected GENESIS at 0, got %q", genesis.Description)
	}

	// No proposals once voting started
	w = do("POST", "/election/proposals", models.AddProposalRequest{Description: "D"}, voters[0], voterHeaders[0])
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Step 4: votes
	for i, choice := range []int{2, 2, 1} {
		w := do("POST", "/election/votes", map[string]int{"proposal_id": choice}, voters[i], voterHeaders[i])
		testutil.AssertStatus(t, w, http.StatusCreated)
	}
	w = do("POST", "/election/votes", map[string]int{"proposal_id": 3}, voters[0], voterHeaders[0])
	testutil.AssertStatus(t, w, http.StatusConflict)

	w = do("GET", "/election/voters/"+voters[2].Hex(), nil, voters[0], voterHeaders[0])
	testutil.AssertStatus(t, w, http.StatusOK)
	var record models.VoterResponse
	testutil.AssertJSON(t, w, &record)
	if !record.HasVoted || record.VotedProposalID != 1 {
		t.Errorf("Step 4 - Unexpected voter record: %+v", record)
	}

	// Winner is sealed until tallied
	w = do("GET", "/election/winner", nil, admin, map[string]string{})
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Step 5: tally
	for _, action := range []string{models.ActionEndVotingSession, models.ActionTallyVotes} {
		w := do("POST", "/election/workflow/"+action, nil, admin, nil)
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	w = do("GET", "/election/winner", nil, admin, map[string]string{})
	testutil.AssertStatus(t, w, http.StatusOK)
	var winner models.WinnerResponse
	testutil.AssertJSON(t, w, &winner)
	if winner.ProposalID != 2 || winner.Proposal.Description != "B" || winner.Proposal.VoteCount != 2 {
		t.Errorf("Step 5 - Unexpected winner: %+v", winner)
	}

	if el.Status() != election.VotesTallied {
		t.Errorf("Expected VotesTallied, got %s", el.Status())
	}
}
