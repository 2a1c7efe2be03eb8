// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

// Package metrics provides Prometheus instrumentation for Nivox Intel:
//   - API endpoint latency and throughput
//   - Recommendation scoring runs
//   - Hybrid retrieval searches and re-ranking health
//   - Strategy agent runs, fallbacks, and step durations
//   - Corpus ingestion refreshes
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// Recommendation Metrics
	RecommendationRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_runs_total",
			Help: "Total number of recommendation scoring runs",
		},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Recommendation scoring duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendationCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_candidates",
			Help:    "Number of influencer candidates scored per run",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	// Retrieval Metrics
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "retrieval_searches_total",
			Help: "Total number of retrieval searches",
		},
		[]string{"mode", "rerank"},
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "retrieval_search_duration_seconds",
			Help:    "Retrieval search duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"mode"},
	)

	RerankFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "retrieval_rerank_failures_total",
			Help: "Total number of re-ranking failures that fell back to blended order",
		},
	)

	CorpusDocuments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "retrieval_corpus_documents",
			Help: "Current number of documents in the retrieval corpus",
		},
	)

	// Agent Pipeline Metrics
	AgentRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agent_runs_total",
			Help: "Total number of strategy agent runs",
		},
		[]string{"outcome"}, // "generative", "fallback", "error"
	)

	AgentStepDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agent_step_duration_seconds",
			Help:    "Strategy agent step duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"step"},
	)

	// Ingestion Metrics
	IngestRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_refreshes_total",
			Help: "Total number of corpus refresh attempts",
		},
		[]string{"status"}, // "success", "error"
	)

	IngestRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ingest_records",
			Help: "Number of influencer profiles loaded by the last refresh",
		},
	)

	IngestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ingest_refresh_duration_seconds",
			Help:    "Corpus refresh duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRecommendation records a recommendation scoring run
func RecordRecommendation(candidates int, duration time.Duration) {
	RecommendationRuns.Inc()
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationCandidates.Observe(float64(candidates))
}

// RecordSearch records a retrieval search
func RecordSearch(mode string, reranked bool, duration time.Duration) {
	SearchesTotal.WithLabelValues(mode, strconv.FormatBool(reranked)).Inc()
	SearchDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordRerankFailure records a re-ranking failure
func RecordRerankFailure() {
	RerankFailures.Inc()
}

// RecordAgentRun records a completed agent run
func RecordAgentRun(outcome string) {
	AgentRunsTotal.WithLabelValues(outcome).Inc()
}

// RecordAgentStep records an agent pipeline step duration
func RecordAgentStep(step string, duration time.Duration) {
	AgentStepDuration.WithLabelValues(step).Observe(duration.Seconds())
}

// RecordIngestRefresh records a corpus refresh attempt
func RecordIngestRefresh(records int, duration time.Duration, err error) {
	IngestDuration.Observe(duration.Seconds())
	if err != nil {
		IngestRefreshes.WithLabelValues("error").Inc()
		return
	}
	IngestRefreshes.WithLabelValues("success").Inc()
	IngestRecords.Set(float64(records))
}
