// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes election activity to Prometheus.

A Recorder is an election.Sink and is attached next to the event log:

	rec := metrics.NewRecorder()
	el := election.New(admin, election.WithSink(election.Sinks{eventLog, rec}))

Handlers report rejected operations with ObserveRejection, which labels the
counter with election.Kind of the error. The router mounts Handler at
GET /metrics.

# Metrics

  - quickly_elect_workflow_status (gauge)
  - quickly_elect_voters_registered_total
  - quickly_elect_proposals_registered_total
  - quickly_elect_votes_total{proposal_id}
  - quickly_elect_rejections_total{operation,kind}
  - quickly_elect_events_total{type}
*/
package metrics
