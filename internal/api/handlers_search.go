// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package api

import (
	"net/http"
	"time"

	"github.com/nivoxai/nivox-intel/internal/models"
	"github.com/nivoxai/nivox-intel/internal/retrieval"
)

// SearchInfluencers runs a hybrid vector and keyword search over the
// indexed influencer corpus.
//
// POST /api/v1/search/influencers
func (h *Handler) SearchInfluencers(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	if h.retriever == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_ERROR", "Search is not available", nil)
		return
	}

	var req models.SearchRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Request body must be valid JSON", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	hits := h.retriever.Search(r.Context(), req.Query, retrieval.SearchParams{
		TopK:       h.clampTopK(req.TopK),
		Mode:       req.Mode,
		Rerank:     req.Rerank,
		CandidateK: req.CandidateK,
	})
	if hits == nil {
		hits = []models.SearchHit{}
	}

	respondSuccess(w, hits, started)
}
