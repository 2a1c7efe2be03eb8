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
	"github.com/nivoxai/nivox-intel/internal/metrics"
	"github.com/nivoxai/nivox-intel/internal/models"
)

// Recommend scores a candidate influencer list against a campaign brief
// and returns the ranked result.
//
// POST /api/v1/recommend
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req models.RecommendationRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Request body must be valid JSON", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	topN := h.clampTopN(req.TopN)
	recommendations := h.recommender.Score(req.Campaign, req.Influencers, topN)
	metrics.RecordRecommendation(len(req.Influencers), time.Since(started))

	logging.Debug().
		Str("campaign_id", sanitizeLogValue(req.Campaign.ID)).
		Int("candidates", len(req.Influencers)).
		Int("returned", len(recommendations)).
		Msg("Recommendation request scored")

	respondSuccess(w, models.RecommendationResponse{
		CampaignID:      req.Campaign.ID,
		Recommendations: recommendations,
	}, started)
}

// RecommendSample scores the built-in demo campaign against the seed
// influencer set. Useful for smoke tests and onboarding.
//
// GET /api/v1/recommend/sample
func (h *Handler) RecommendSample(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	campaign := ingest.SampleCampaign()
	influencers := ingest.SampleInfluencers()

	recommendations := h.recommender.Score(campaign, influencers, h.defaultTopN())
	metrics.RecordRecommendation(len(influencers), time.Since(started))

	respondSuccess(w, models.RecommendationResponse{
		CampaignID:      campaign.ID,
		Recommendations: recommendations,
	}, started)
}
