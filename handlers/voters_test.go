// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-elect/auth"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/models"
	"github.com/danielhkuo/quickly-elect/testutil"
)

func TestAddVoter(t *testing.T) {
	cfg := testutil.GetTestConfig()
	el := testutil.CreateTestElection(t, election.RegisteringVoters)
	handler := NewVoterHandler(el, cfg, nil)

	voter := testutil.VoterAddress(1)
	req := testutil.MakeCallerRequest("POST", "/election/voters",
		models.AddVoterRequest{Address: strings.ToLower(voter.Hex())}, testutil.AdminAddress)
	w := httptest.NewRecorder()

	handler.AddVoter(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.AddVoterResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Address != voter.Hex() {
		t.Errorf("Expected checksummed address %s, got %s", voter.Hex(), resp.Address)
	}
	if err := auth.ValidateCallerKey(voter, resp.CallerKey, cfg.CallerKeySalt); err != nil {
		t.Errorf("Expected returned caller key to validate: %v", err)
	}
	if !el.IsVoter(voter) {
		t.Error("Expected voter to be registered")
	}
}

func TestAddVoter_Rejections(t *testing.T) {
	cfg := testutil.GetTestConfig()
	registered := testutil.VoterAddress(1)

	testCases := []struct {
		name           string
		status         election.Status
		caller         bool // true: administrator
		body           any
		expectedStatus int
		expectedCode   string
	}{
		{"not administrator", election.RegisteringVoters, false, models.AddVoterRequest{Address: testutil.VoterAddress(2).Hex()}, http.StatusForbidden, "unauthorized"},
		{"already registered", election.RegisteringVoters, true, models.AddVoterRequest{Address: registered.Hex()}, http.StatusConflict, "already_registered"},
		{"registration closed", election.ProposalsRegistrationStarted, true, models.AddVoterRequest{Address: testutil.VoterAddress(2).Hex()}, http.StatusConflict, "phase_not_open"},
		{"missing address", election.RegisteringVoters, true, models.AddVoterRequest{}, http.StatusBadRequest, ""},
		{"malformed address", election.RegisteringVoters, true, models.AddVoterRequest{Address: "alice"}, http.StatusBadRequest, ""},
		{"invalid JSON", election.RegisteringVoters, true, "not an object", http.StatusBadRequest, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			el := testutil.CreateTestElection(t, tc.status, registered)
			handler := NewVoterHandler(el, cfg, nil)

			caller := registered
			if tc.caller {
				caller = testutil.AdminAddress
			}
			req := testutil.MakeCallerRequest("POST", "/election/voters", tc.body, caller)
			w := httptest.NewRecorder()

			handler.AddVoter(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)
			if tc.expectedCode != "" {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Code != tc.expectedCode {
					t.Errorf("Expected code '%s', got '%s'", tc.expectedCode, resp.Code)
				}
			}
			if got := el.Summary().Voters; got != 1 {
				t.Errorf("Expected voter count to stay 1, got %d", got)
			}
		})
	}
}

func TestGetVoter(t *testing.T) {
	cfg := testutil.GetTestConfig()
	alice := testutil.VoterAddress(1)
	bob := testutil.VoterAddress(2)
	stranger := testutil.VoterAddress(99)

	el := testutil.CreateTestElection(t, election.ProposalsRegistrationStarted, alice, bob)
	testutil.AddTestProposal(t, el, alice, "A")
	testutil.AdvanceTo(t, el, election.VotingSessionStarted)
	if err := el.SetVote(bob, 1); err != nil {
		t.Fatalf("Failed to vote: %v", err)
	}

	handler := NewVoterHandler(el, cfg, nil)

	testCases := []struct {
		name           string
		caller         string
		target         string
		expectedStatus int
		expected       election.Voter
	}{
		{"voter reads voter who voted", alice.Hex(), bob.Hex(), http.StatusOK, election.Voter{IsRegistered: true, HasVoted: true, VotedProposalID: 1}},
		{"voter reads self", alice.Hex(), alice.Hex(), http.StatusOK, election.Voter{IsRegistered: true}},
		{"unknown address reads as default", alice.Hex(), stranger.Hex(), http.StatusOK, election.Voter{}},
		{"administrator is not a voter", testutil.AdminAddress.Hex(), alice.Hex(), http.StatusForbidden, election.Voter{}},
		{"bad address", alice.Hex(), "0xZZ", http.StatusBadRequest, election.Voter{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			caller, _ := auth.ParseAddress(tc.caller)
			req := testutil.MakeCallerRequest("GET", "/election/voters/"+tc.target, nil, caller)
			req.SetPathValue("address", tc.target)
			w := httptest.NewRecorder()

			handler.GetVoter(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)
			if tc.expectedStatus != http.StatusOK {
				return
			}

			var resp models.VoterResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Voter != tc.expected {
				t.Errorf("Expected %+v, got %+v", tc.expected, resp.Voter)
			}
		})
	}
}
