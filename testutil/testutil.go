// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/quickly-elect/auth"
	"github.com/danielhkuo/quickly-elect/cliparse"
	"github.com/danielhkuo/quickly-elect/db"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/middleware"
)

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// AdminAddress administers every test election
var AdminAddress = common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.DatabaseSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   TestDBURL,
		DatabaseType:  cliparse.DatabaseSQLite,
		AdminAddress:  AdminAddress.Hex(),
		CallerKeySalt: "test-caller-salt",
		LogFormat:     "text",
	}
}

// VoterAddress returns a distinct deterministic address for index i
func VoterAddress(i int) common.Address {
	return common.HexToAddress(fmt.Sprintf("0x%040x", 0xb000+i))
}

// CreateTestElection returns an election administered by AdminAddress,
// with the given voters registered and advanced to status.
// GENESIS exists once status reaches VotingSessionStarted.
func CreateTestElection(t *testing.T, status election.Status, voters ...common.Address) *election.Election {
	t.Helper()

	el := election.New(AdminAddress)
	for _, v := range voters {
		if err := el.AddVoter(AdminAddress, v); err != nil {
			t.Fatalf("Failed to register test voter: %v", err)
		}
	}
	AdvanceTo(t, el, status)
	return el
}

// AdvanceTo runs administrator transitions until el reaches status
func AdvanceTo(t *testing.T, el *election.Election, status election.Status) {
	t.Helper()

	steps := map[election.Status]func(common.Address) error{
		election.RegisteringVoters:            el.StartProposalsRegistering,
		election.ProposalsRegistrationStarted: el.EndProposalsRegistering,
		election.ProposalsRegistrationEnded:   el.StartVotingSession,
		election.VotingSessionStarted:         el.EndVotingSession,
		election.VotingSessionEnded:           el.TallyVotes,
	}

	for el.Status() < status {
		current := el.Status()
		if err := steps[current](AdminAddress); err != nil {
			t.Fatalf("Failed to advance from %s: %v", current, err)
		}
	}
}

// AddTestProposal submits a proposal as voter and returns its id.
// The election must be in ProposalsRegistrationStarted.
func AddTestProposal(t *testing.T, el *election.Election, voter common.Address, description string) int {
	t.Helper()

	id, err := el.AddProposal(voter, description)
	if err != nil {
		t.Fatalf("Failed to create test proposal: %v", err)
	}
	return id
}

// CallerHeaders returns the authentication headers for addr
func CallerHeaders(cfg cliparse.Config, addr common.Address) map[string]string {
	return map[string]string{
		middleware.HeaderCallerAddress: addr.Hex(),
		middleware.HeaderCallerKey:     auth.GenerateCallerKey(addr, cfg.CallerKeySalt),
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeCallerRequest creates a test request that already carries an
// authenticated caller, for calling handlers without the middleware.
func MakeCallerRequest(method, path string, body any, caller common.Address) *http.Request {
	req := MakeRequest(method, path, body, nil)
	return req.WithContext(middleware.WithCallerAddress(req.Context(), caller))
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
