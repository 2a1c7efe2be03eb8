// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

// Package recommend implements the multi-signal recommendation scoring engine.
//
// Each candidate profile is scored against a campaign brief by four bounded
// sub-scores (content, region, engagement, audience age), combined with fixed
// weights and discounted by a freshness multiplier. Scoring is deterministic
// given identical inputs and a fixed clock.
package recommend

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/nivoxai/nivox-intel/internal/models"
)

// Sub-score weights. Content relevance dominates, region and engagement are
// equal secondary signals, audience age is a weak signal.
const (
	contentWeight    = 0.40
	regionWeight     = 0.25
	engagementWeight = 0.25
	ageWeight        = 0.10
)

// Freshness decay parameters. Profiles whose stats are older than roughly two
// weeks start losing weight; the multiplier never drops below the floor.
const (
	freshnessHalfLifeDays = 30.0
	freshnessFloor        = 0.6
	freshnessReasonCutoff = 0.85
)

// DefaultTopN is the recommendation list size when the caller does not
// specify one.
const DefaultTopN = 10

// Engine scores influencer profiles against campaign briefs.
// The zero value is not usable; construct with NewEngine.
type Engine struct {
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's clock. Used by tests to pin staleness
// calculations to a fixed instant.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates a recommendation scoring engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score ranks the given profiles against the campaign and returns the top
// topN items in descending score order. A topN of zero or less selects
// DefaultTopN. The result is never longer than the input.
//
// Equal scores preserve input order; no secondary tie-break key is applied.
func (e *Engine) Score(campaign models.Campaign, profiles []models.InfluencerProfile, topN int) []models.RecommendationItem {
	if len(profiles) == 0 {
		return []models.RecommendationItem{}
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	now := e.now()
	campaignText := strings.ToLower(campaign.Description + " " + campaign.Goal)
	engagement := normalizeEngagement(profiles)

	items := make([]models.RecommendationItem, 0, len(profiles))
	for i, p := range profiles {
		item := scoreProfile(campaign, p, campaignText, engagement[i], now)
		items = append(items, item)
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Score > items[b].Score
	})

	if topN > len(items) {
		topN = len(items)
	}
	return items[:topN]
}

// scoreProfile computes one profile's final score and reasons.
func scoreProfile(campaign models.Campaign, p models.InfluencerProfile, campaignText string, engagementScore float64, now time.Time) models.RecommendationItem {
	contentScore := 0.2
	category := strings.ToLower(strings.TrimSpace(p.Category))
	if category != "" && strings.Contains(campaignText, category) {
		contentScore = 1.0
	}

	regionScore := 0.0
	if p.Region != "" && p.Region == campaign.TargetRegion {
		regionScore = 1.0
	}

	ageScore := 0.3
	if p.AudienceAgeRange != "" && p.AudienceAgeRange == campaign.TargetAgeRange {
		ageScore = 1.0
	}

	base := contentWeight*contentScore +
		regionWeight*regionScore +
		engagementWeight*engagementScore +
		ageWeight*ageScore

	multiplier := freshnessMultiplier(p.StatsUpdatedAt, now)
	score := round4(base * multiplier)

	var reasons []string
	if contentScore == 1.0 {
		reasons = append(reasons, "Strong category match with '"+p.Category+"'")
	}
	if regionScore == 1.0 {
		reasons = append(reasons, "Region match for '"+p.Region+"'")
	}
	switch {
	case engagementScore >= 0.7:
		reasons = append(reasons, "High engagement rate relative to peers")
	case engagementScore >= 0.4:
		reasons = append(reasons, "Solid engagement rate relative to peers")
	}
	if ageScore == 1.0 {
		reasons = append(reasons, "Audience age aligns with target range")
	}
	if multiplier < freshnessReasonCutoff {
		reasons = append(reasons, "Freshness decay applied due to stale stats")
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "General relevance based on profile fit")
	}

	return models.RecommendationItem{
		InfluencerID: p.ID,
		Score:        score,
		Reasons:      reasons,
	}
}

// normalizeEngagement min-max normalizes engagement rates across the
// candidate set. A uniform set scores 1.0 for every candidate, which both
// avoids a zero division and treats the set as uniformly strong.
func normalizeEngagement(profiles []models.InfluencerProfile) []float64 {
	minRate := profiles[0].EngagementRate
	maxRate := profiles[0].EngagementRate
	for _, p := range profiles[1:] {
		if p.EngagementRate < minRate {
			minRate = p.EngagementRate
		}
		if p.EngagementRate > maxRate {
			maxRate = p.EngagementRate
		}
	}

	scores := make([]float64, len(profiles))
	spread := maxRate - minRate
	for i, p := range profiles {
		if spread == 0 {
			scores[i] = 1.0
			continue
		}
		scores[i] = (p.EngagementRate - minRate) / spread
	}
	return scores
}

// freshnessMultiplier discounts profiles with stale statistics using
// exponential decay floored at freshnessFloor. Profiles without a timestamp
// are treated as fresh.
func freshnessMultiplier(statsUpdatedAt *time.Time, now time.Time) float64 {
	if statsUpdatedAt == nil {
		return 1.0
	}

	stalenessDays := now.Sub(*statsUpdatedAt).Hours() / 24
	stalenessDays = math.Floor(stalenessDays)
	if stalenessDays < 0 {
		stalenessDays = 0
	}

	return math.Max(freshnessFloor, math.Exp(-stalenessDays/freshnessHalfLifeDays))
}

// round4 rounds to four decimal places.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
