// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/danielhkuo/quickly-elect/election"
)

var ErrAdminMismatch = errors.New("stored election has a different administrator")

// EventLog persists election events and loads them back for replay.
// It implements election.Sink.
//
// Events whose write fails stay queued and are appended, in sequence order,
// before any later event. The stored log never skips a sequence number.
type EventLog struct {
	db     *sql.DB
	logger *slog.Logger

	mu      sync.Mutex
	pending []election.Event
}

var _ election.Sink = (*EventLog)(nil)

func NewEventLog(db *sql.DB, logger *slog.Logger) *EventLog {
	return &EventLog{db: db, logger: election.ResolveLogger(logger)}
}

// EnsureElection records admin as the election administrator on first use and
// checks it on every later start.
func (l *EventLog) EnsureElection(ctx context.Context, admin common.Address) error {
	var stored string
	err := l.db.QueryRowContext(ctx, `
		SELECT admin_address FROM election_meta WHERE id = 1
	`).Scan(&stored)

	if err == sql.ErrNoRows {
		_, err = l.db.ExecContext(ctx, `
			INSERT INTO election_meta (id, admin_address) VALUES (1, $1)
		`, admin.Hex())
		if err != nil {
			return fmt.Errorf("failed to insert election metadata: %w", err)
		}
		l.logger.Info("election created", "admin", admin.Hex())
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to query election metadata: %w", err)
	}

	if common.HexToAddress(stored) != admin {
		return fmt.Errorf("%w: stored %s, configured %s", ErrAdminMismatch, stored, admin.Hex())
	}
	return nil
}

// Append stores one event. Sequence numbers are unique, so appending the same
// event twice fails.
func (l *EventLog) Append(ctx context.Context, ev election.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to encode event %d: %w", ev.Seq, err)
	}

	_, err = l.db.ExecContext(ctx, `
		INSERT INTO election_event (seq, event_id, event_type, occurred_at, payload)
		VALUES ($1, $2, $3, $4, $5)
	`, ev.Seq, ev.ID, string(ev.Type), ev.OccurredAt, string(payload))
	if err != nil {
		return fmt.Errorf("failed to insert event %d: %w", ev.Seq, err)
	}
	return nil
}

// Publish queues ev and appends everything queued, logging instead of
// returning failures. Election operations never depend on the log write.
func (l *EventLog) Publish(ev election.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending = append(l.pending, ev)
	if err := l.flushLocked(ctx); err != nil {
		l.logger.Error("failed to persist election event",
			"error", err,
			"seq", ev.Seq,
			"event_type", string(ev.Type),
			"pending", len(l.pending),
		)
	}
}

// Flush appends queued events left behind by failed writes.
func (l *EventLog) Flush(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.flushLocked(ctx)
}

// Pending reports how many events are waiting to be written.
func (l *EventLog) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

// flushLocked stops at the first failure so later events wait behind it.
func (l *EventLog) flushLocked(ctx context.Context) error {
	for len(l.pending) > 0 {
		if err := l.Append(ctx, l.pending[0]); err != nil {
			return err
		}
		l.pending = l.pending[1:]
	}
	l.pending = nil
	return nil
}

// Load returns every stored event in sequence order.
func (l *EventLog) Load(ctx context.Context) ([]election.Event, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT payload FROM election_event ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []election.Event{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		var ev election.Event
		if err := json.Unmarshal([]byte(payload), &ev); err != nil {
			return nil, fmt.Errorf("failed to decode event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return events, nil
}

// Restore replays the stored log into a new election for admin and attaches
// the log as its sink, followed by extra sinks.
func (l *EventLog) Restore(ctx context.Context, admin common.Address, extra []election.Sink, opts ...election.Option) (*election.Election, error) {
	if err := l.EnsureElection(ctx, admin); err != nil {
		return nil, err
	}
	events, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}

	sinks := append(election.Sinks{l}, extra...)
	opts = append(opts, election.WithSink(sinks))
	el, err := election.Replay(admin, events, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to replay event log: %w", err)
	}

	l.logger.Info("election restored",
		"events", len(events),
		"status", el.Status().String(),
	)
	return el, nil
}
