// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/quickly-elect/election"
)

const namespace = "quickly_elect"

// Recorder tracks election activity in its own Prometheus registry. It is an
// election.Sink; a nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	status     prometheus.Gauge
	voters     prometheus.Counter
	proposals  prometheus.Counter
	votes      *prometheus.CounterVec
	rejections *prometheus.CounterVec
	events     *prometheus.CounterVec
}

var _ election.Sink = (*Recorder)(nil)

// NewRecorder creates a Recorder with Go runtime and process collectors
// registered next to the election metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		status: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "workflow_status",
			Help:      "Current workflow status, 0 (RegisteringVoters) to 5 (VotesTallied).",
		}),
		voters: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "voters_registered_total",
			Help:      "Voters registered by the administrator.",
		}),
		proposals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "proposals_registered_total",
			Help:      "Proposals submitted by voters.",
		}),
		votes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_total",
			Help:      "Votes cast, by proposal id.",
		}, []string{"proposal_id"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Rejected election operations, by operation and error kind.",
		}, []string{"operation", "kind"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Published election events, by type.",
		}, []string{"type"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.status,
		r.voters,
		r.proposals,
		r.votes,
		r.rejections,
		r.events,
	)
	return r
}

// Publish updates counters from one election event.
func (r *Recorder) Publish(ev election.Event) {
	if r == nil {
		return
	}

	r.events.WithLabelValues(string(ev.Type)).Inc()
	switch ev.Type {
	case election.EventVoterRegistered:
		r.voters.Inc()
	case election.EventProposalRegistered:
		r.proposals.Inc()
	case election.EventVoted:
		r.votes.WithLabelValues(proposalLabel(ev.ProposalID)).Inc()
	case election.EventWorkflowStatusChange:
		r.status.Set(float64(ev.NewStatus))
	}
}

// Sync sets the status gauge from an election that was restored without
// publishing, such as one rebuilt from the event log. Counters only count
// activity since process start.
func (r *Recorder) Sync(el *election.Election) {
	if r == nil || el == nil {
		return
	}
	r.status.Set(float64(el.Status()))
}

// ObserveRejection counts a failed operation. Nil errors are ignored.
func (r *Recorder) ObserveRejection(operation string, err error) {
	if r == nil || err == nil {
		return
	}
	r.rejections.WithLabelValues(operation, election.Kind(err)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func proposalLabel(id int) string {
	if id == 0 {
		return election.GenesisDescription
	}
	return strconv.Itoa(id)
}
