// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package api

import (
	"net/http"
	"time"

	"github.com/nivoxai/nivox-intel/internal/ingest"
	"github.com/nivoxai/nivox-intel/internal/logging"
	"github.com/nivoxai/nivox-intel/internal/models"
)

// strategyStatus aggregates pipeline and ingestion diagnostics for the
// status endpoint.
type strategyStatus struct {
	Agent           models.AgentStatus `json:"agent"`
	Ingestion       ingest.Status      `json:"ingestion"`
	CorpusDocuments int                `json:"corpus_documents"`
}

// StrategyChat runs the plan, draft, review pipeline for a campaign and
// its recommendation results. The pipeline never fails the request; when
// drafting or review cannot produce a compliant reply it degrades to the
// deterministic draft and flags fallback_used.
//
// POST /api/v1/strategy/chat
func (h *Handler) StrategyChat(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	if h.orchestrator == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_ERROR", "Strategy pipeline is not available", nil)
		return
	}

	var req models.ChatStrategyRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Request body must be valid JSON", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	result := h.orchestrator.Run(r.Context(), req.Campaign, req.Recommendations.Recommendations, req.Question)

	logging.Info().
		Str("run_id", result.RunID).
		Str("campaign_id", sanitizeLogValue(req.Campaign.ID)).
		Bool("fallback_used", result.FallbackUsed).
		Msg("Strategy pipeline completed")

	respondSuccess(w, result, started)
}

// StrategyStatus reports pipeline version, last run diagnostics, and the
// state of the ingestion loop.
//
// GET /api/v1/strategy/status
func (h *Handler) StrategyStatus(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	status := strategyStatus{}
	if h.orchestrator != nil {
		status.Agent = h.orchestrator.Status()
	}
	if h.ingestion != nil {
		status.Ingestion = h.ingestion.Status()
	}
	if h.retriever != nil {
		status.CorpusDocuments = h.retriever.CorpusSize()
	}

	respondSuccess(w, status, started)
}
