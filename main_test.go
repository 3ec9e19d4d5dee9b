// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-elect/auth"
	"github.com/danielhkuo/quickly-elect/election"
	"github.com/danielhkuo/quickly-elect/testutil"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger("json", &buf).Info("hello", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "v", line["k"])

	buf.Reset()
	newLogger("text", &buf).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), "msg=hello k=v")

	// A buffer is not a terminal.
	buf.Reset()
	newLogger("auto", &buf).Info("hello")
	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestPrintStatus(t *testing.T) {
	admin := testutil.AdminAddress
	alice := testutil.VoterAddress(1)
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := start

	var events []election.Event
	el := election.New(admin,
		election.WithSink(election.SinkFunc(func(ev election.Event) { events = append(events, ev) })),
		election.WithClock(func() time.Time { return clock }),
	)
	require.NoError(t, el.AddVoter(admin, alice))
	require.NoError(t, el.StartProposalsRegistering(admin))
	_, err := el.AddProposal(alice, "Pizza")
	require.NoError(t, err)
	require.NoError(t, el.EndProposalsRegistering(admin))
	require.NoError(t, el.StartVotingSession(admin))
	require.NoError(t, el.SetVote(alice, 1))
	require.NoError(t, el.EndVotingSession(admin))
	clock = start.Add(time.Minute)
	require.NoError(t, el.TallyVotes(admin))

	var out bytes.Buffer
	require.NoError(t, printStatus(&out, admin, events, start.Add(3*time.Hour)))

	report := out.String()
	assert.Contains(t, report, "Administrator: "+admin.Hex())
	assert.Contains(t, report, "Status:        VotesTallied (changed 2 hours ago)")
	assert.Contains(t, report, "Voters:        1")
	assert.Contains(t, report, "Proposals:     2")
	assert.Contains(t, report, `Winner:        #1 "Pizza" (1 votes)`)
	assert.Contains(t, report, "Events:        8")
}

func TestPrintStatusEmptyLog(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printStatus(&out, testutil.AdminAddress, nil, time.Now()))

	assert.Contains(t, out.String(), "Status:        RegisteringVoters (changed never)")
	assert.Contains(t, out.String(), "Winner:        not tallied")
}

func TestPrintStatusBrokenLog(t *testing.T) {
	events := []election.Event{{Seq: 2, Type: election.EventVoterRegistered}}
	err := printStatus(&bytes.Buffer{}, testutil.AdminAddress, events, time.Now())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to replay event log"))
}

func TestCallerKeyCommand(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })
	cfg = testutil.GetTestConfig()

	var out bytes.Buffer
	callerKeyCmd.SetOut(&out)
	require.NoError(t, callerKeyCmd.RunE(callerKeyCmd, []string{strings.ToLower(testutil.AdminAddress.Hex())}))

	key := strings.TrimSpace(out.String())
	assert.NoError(t, auth.ValidateCallerKey(testutil.AdminAddress, key, cfg.CallerKeySalt))

	assert.Error(t, callerKeyCmd.RunE(callerKeyCmd, []string{"not-an-address"}))
}
