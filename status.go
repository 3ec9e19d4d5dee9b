// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-elect/db"
	"github.com/danielhkuo/quickly-elect/election"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Replay the event log and print the election state",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := db.CreateSchema(conn); err != nil {
			return err
		}

		events, err := db.NewEventLog(conn, nil).Load(cmd.Context())
		if err != nil {
			return err
		}
		return printStatus(cmd.OutOrStdout(), cfg.Admin(), events, time.Now())
	},
}

// printStatus replays events for admin and writes a short report.
func printStatus(w io.Writer, admin common.Address, events []election.Event, now time.Time) error {
	el, err := election.Replay(admin, events)
	if err != nil {
		return fmt.Errorf("failed to replay event log: %w", err)
	}
	s := el.Summary()

	changed := "never"
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == election.EventWorkflowStatusChange {
			changed = humanize.RelTime(events[i].OccurredAt, now, "ago", "from now")
			break
		}
	}

	winner := "not tallied"
	if id, p, ok := el.Winner(); ok {
		winner = fmt.Sprintf("#%d %q (%s votes)", id, p.Description, humanize.Comma(int64(p.VoteCount)))
	}

	_, err = fmt.Fprintf(w,
		"Administrator: %s\n"+
			"Status:        %s (changed %s)\n"+
			"Voters:        %s\n"+
			"Proposals:     %s\n"+
			"Votes cast:    %s\n"+
			"Winner:        %s\n"+
			"Events:        %s\n",
		s.Administrator.Hex(),
		s.Status, changed,
		humanize.Comma(int64(s.Voters)),
		humanize.Comma(int64(s.Proposals)),
		humanize.Comma(int64(s.VotesCast)),
		winner,
		humanize.Comma(int64(len(events))),
	)
	return err
}
