// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package models

import "time"

// Campaign describes a marketing campaign brief. It is immutable for the
// duration of a request; every scoring and planning decision derives from it.
//
// Budget is a non-negative currency amount. TargetAgeRange uses the "low-high"
// form (e.g. "18-24") and is compared verbatim against profile audience
// ranges.
type Campaign struct {
	ID             string  `json:"id" validate:"required"`
	BrandName      string  `json:"brand_name" validate:"required"`
	Goal           string  `json:"goal" validate:"required"`
	TargetRegion   string  `json:"target_region"`
	TargetAgeRange string  `json:"target_age_range" validate:"omitempty,age_range"`
	Budget         float64 `json:"budget" validate:"min=0"`
	Description    string  `json:"description"`
}

// InfluencerProfile is a candidate creator profile produced by the ingestion
// pipeline and consumed read-only by the scoring engine.
//
// EngagementRate is expected in [0.0, 1.0]. StatsUpdatedAt drives the
// freshness multiplier; profiles without the timestamp are treated as fresh.
type InfluencerProfile struct {
	ID               string     `json:"id" validate:"required"`
	Name             string     `json:"name"`
	Platform         string     `json:"platform"`
	Category         string     `json:"category"`
	Followers        int64      `json:"followers" validate:"min=0"`
	EngagementRate   float64    `json:"engagement_rate" validate:"min=0,max=1"`
	Region           string     `json:"region"`
	Languages        []string   `json:"languages"`
	AudienceAgeRange string     `json:"audience_age_range"`
	Bio              string     `json:"bio"`
	Source           string     `json:"source,omitempty"`
	LastCrawledAt    *time.Time `json:"last_crawled_at,omitempty"`
	StatsUpdatedAt   *time.Time `json:"stats_updated_at,omitempty"`
}

// RecommendationItem is one scored candidate in a ranked recommendation list.
// Score is rounded to four decimal places. Reasons is never empty; when no
// scoring condition fires a generic relevance reason is substituted.
type RecommendationItem struct {
	InfluencerID string   `json:"influencer_id"`
	Score        float64  `json:"score"`
	Reasons      []string `json:"reasons"`
}

// RecommendationDigest is a compact view of the top recommendations consumed
// by planning and narrative generation. ReasonCounts maps each reason string
// to its occurrence count across the digest's Top entries.
type RecommendationDigest struct {
	Top          []RecommendationItem `json:"top"`
	ReasonCounts map[string]int       `json:"reason_counts"`
}

// IndexedDocument is the retrievable unit for hybrid search. The corpus of
// documents is replaced as a whole on refresh, never partially mutated.
type IndexedDocument struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Category string `json:"category"`
	Region   string `json:"region"`
}

// SearchHit is one ranked retrieval result with its blended (or re-ranked)
// relevance score rounded to four decimal places.
type SearchHit struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Bio      string  `json:"bio"`
	Category string  `json:"category"`
	Region   string  `json:"region"`
	Score    float64 `json:"score"`
}

// PlanPhase is one phase of a campaign plan: a named window with the
// influencer identifiers assigned to it and the content angles to produce.
type PlanPhase struct {
	Name          string   `json:"name"`
	DurationDays  int      `json:"duration_days"`
	InfluencerIDs []string `json:"influencer_ids"`
	ContentIdeas  []string `json:"content_ideas"`
}

// CampaignPlan is the structured output of the planning step: objective,
// audience line, budget, ordered phases, measurement KPIs, and risks.
type CampaignPlan struct {
	Objective   string      `json:"objective"`
	Audience    string      `json:"audience"`
	Budget      float64     `json:"budget"`
	Phases      []PlanPhase `json:"phases"`
	Measurement []string    `json:"measurement"`
	Risks       []string    `json:"risks"`
}

// AgentTraceStep records one timed stage of the agent pipeline. LatencyMS is
// nil only on the hard-failure path where no meaningful timing exists.
type AgentTraceStep struct {
	Name      string `json:"name"`
	Summary   string `json:"summary"`
	LatencyMS *int64 `json:"latency_ms"`
}

// AgentRunResult is the outcome of one strategy pipeline run. Reply is never
// empty: every failure mode below the input-validation boundary resolves to a
// deterministic draft with FallbackUsed set.
type AgentRunResult struct {
	RunID        string           `json:"run_id"`
	Reply        string           `json:"reply"`
	Trace        []AgentTraceStep `json:"trace"`
	Model        string           `json:"model,omitempty"`
	FallbackUsed bool             `json:"fallback_used"`
}

// AgentStatus reports process-scoped diagnostics for the strategy pipeline.
// LastRunAt and LastError reflect the most recent invocation only.
type AgentStatus struct {
	AgentVersion string     `json:"agent_version"`
	DefaultModel string     `json:"default_model,omitempty"`
	LastRunAt    *time.Time `json:"last_run_at"`
	LastError    string     `json:"last_error,omitempty"`
}

// RecommendationRequest is the payload for the recommendation endpoint.
// A zero TopN selects the configured default list size.
type RecommendationRequest struct {
	Campaign    Campaign            `json:"campaign" validate:"required"`
	Influencers []InfluencerProfile `json:"influencers" validate:"dive"`
	TopN        int                 `json:"top_n" validate:"min=0,max=50"`
}

// RecommendationResponse is the ranked result for one campaign.
type RecommendationResponse struct {
	CampaignID      string               `json:"campaign_id"`
	Recommendations []RecommendationItem `json:"recommendations"`
}

// SearchRequest is the payload for the hybrid influencer search endpoint.
// Zero values select the engine defaults (top_k=5, mode=hybrid).
type SearchRequest struct {
	Query      string `json:"query"`
	TopK       int    `json:"top_k" validate:"min=0,max=100"`
	Mode       string `json:"mode" validate:"omitempty,search_mode"`
	Rerank     bool   `json:"rerank"`
	CandidateK int    `json:"candidate_k" validate:"min=0,max=1000"`
}

// ChatStrategyRequest is the payload for the strategy pipeline endpoint.
type ChatStrategyRequest struct {
	Campaign        Campaign               `json:"campaign" validate:"required"`
	Recommendations RecommendationResponse `json:"recommendations"`
	Question        string                 `json:"question,omitempty"`
}
