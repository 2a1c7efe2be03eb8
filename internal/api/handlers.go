// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package api

import (
	"time"

	"github.com/nivoxai/nivox-intel/internal/agent"
	"github.com/nivoxai/nivox-intel/internal/config"
	"github.com/nivoxai/nivox-intel/internal/ingest"
	"github.com/nivoxai/nivox-intel/internal/recommend"
	"github.com/nivoxai/nivox-intel/internal/retrieval"
)

// Handler contains dependencies for API handlers.
//
// The retrieval engine and orchestrator may be nil when the corresponding
// subsystem is not configured; the affected endpoints then report
// SERVICE_ERROR instead of panicking.
type Handler struct {
	config       *config.Config
	recommender  *recommend.Engine
	retriever    *retrieval.Engine
	orchestrator *agent.Orchestrator
	ingestion    *ingest.Manager
	startTime    time.Time
}

// NewHandler creates a new API handler with all engine dependencies.
//
// Dependencies:
//   - cfg: application configuration, used for top-N and top-K clamping
//   - recommender: deterministic recommendation scoring engine
//   - retriever: hybrid search engine over the influencer corpus
//   - orchestrator: plan/draft/review strategy pipeline
//   - ingestion: corpus refresh manager, reported by the status endpoint
func NewHandler(cfg *config.Config, recommender *recommend.Engine, retriever *retrieval.Engine, orchestrator *agent.Orchestrator, ingestion *ingest.Manager) *Handler {
	return &Handler{
		config:       cfg,
		recommender:  recommender,
		retriever:    retriever,
		orchestrator: orchestrator,
		ingestion:    ingestion,
		startTime:    time.Now(),
	}
}

// defaultTopN returns the configured default recommendation list size.
func (h *Handler) defaultTopN() int {
	if h.config != nil && h.config.API.DefaultTopN > 0 {
		return h.config.API.DefaultTopN
	}
	return recommend.DefaultTopN
}

// clampTopN bounds a caller-provided top_n against the configured maximum.
// Zero selects the default.
func (h *Handler) clampTopN(topN int) int {
	if topN <= 0 {
		return h.defaultTopN()
	}
	if h.config != nil && h.config.API.MaxTopN > 0 && topN > h.config.API.MaxTopN {
		return h.config.API.MaxTopN
	}
	return topN
}

// clampTopK bounds a caller-provided top_k against the configured maximum.
// Zero is passed through so the retrieval engine applies its own default.
func (h *Handler) clampTopK(topK int) int {
	if topK <= 0 {
		return 0
	}
	if h.config != nil && h.config.API.MaxTopK > 0 && topK > h.config.API.MaxTopK {
		return h.config.API.MaxTopK
	}
	return topK
}
