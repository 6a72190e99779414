// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all launchpad metrics. A nil *Metrics is valid and makes
// every record call a no-op, so the engine never has to branch on it.
type Metrics struct {
	registry *prometheus.Registry

	projectsCreated   prometheus.Counter
	projectsActivated prometheus.Counter
	projectsCanceled  prometheus.Counter
	projectsFinalized *prometheus.CounterVec

	contributionsTotal prometheus.Counter
	contributedAmount  prometheus.Counter
	claimsTotal        prometheus.Counter
	refundsTotal       prometheus.Counter

	requestDuration *prometheus.HistogramVec
}

// New creates a metrics instance on its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		projectsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "launchpad", Name: "projects_created_total",
			Help: "Total number of projects created",
		}),
		projectsActivated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "launchpad", Name: "projects_activated_total",
			Help: "Total number of projects activated",
		}),
		projectsCanceled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "launchpad", Name: "projects_canceled_total",
			Help: "Total number of projects canceled by the administrator",
		}),
		projectsFinalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "launchpad", Name: "projects_finalized_total",
			Help: "Total number of finalized projects by outcome",
		}, []string{"outcome"}),
		contributionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "launchpad", Name: "contributions_total",
			Help: "Total number of accepted contributions",
		}),
		contributedAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "launchpad", Name: "contributed_amount_total",
			Help: "Total payment-asset amount contributed across all projects",
		}),
		claimsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "launchpad", Name: "claims_total",
			Help: "Total number of successful token claims",
		}),
		refundsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "launchpad", Name: "refunds_total",
			Help: "Total number of successful refunds",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "launchpad", Name: "http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}

	reg.MustRegister(
		m.projectsCreated, m.projectsActivated, m.projectsCanceled,
		m.projectsFinalized, m.contributionsTotal, m.contributedAmount,
		m.claimsTotal, m.refundsTotal, m.requestDuration,
	)

	return m
}

// Handler returns the prometheus scrape handler for this registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) IncProjectsCreated() {
	if m != nil {
		m.projectsCreated.Inc()
	}
}

func (m *Metrics) IncProjectsActivated() {
	if m != nil {
		m.projectsActivated.Inc()
	}
}

func (m *Metrics) IncProjectsCanceled() {
	if m != nil {
		m.projectsCanceled.Inc()
	}
}

func (m *Metrics) IncFinalized(outcome string) {
	if m != nil {
		m.projectsFinalized.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncContribution(amount uint64) {
	if m != nil {
		m.contributionsTotal.Inc()
		m.contributedAmount.Add(float64(amount))
	}
}

func (m *Metrics) IncClaims() {
	if m != nil {
		m.claimsTotal.Inc()
	}
}

func (m *Metrics) IncRefunds() {
	if m != nil {
		m.refundsTotal.Inc()
	}
}

// ObserveRequest records one HTTP request observation.
func (m *Metrics) ObserveRequest(route, status string, seconds float64) {
	if m != nil {
		m.requestDuration.WithLabelValues(route, status).Observe(seconds)
	}
}
