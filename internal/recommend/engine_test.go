// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package recommend

import (
	"testing"
	"time"

	"github.com/nivoxai/nivox-intel/internal/models"
)

var fixedNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedEngine() *Engine {
	return NewEngine(WithClock(func() time.Time { return fixedNow }))
}

func skincareCampaign() models.Campaign {
	return models.Campaign{
		ID:             "c-100",
		BrandName:      "Luma Beauty",
		Goal:           "Launch a summer skincare line",
		TargetRegion:   "Thailand",
		TargetAgeRange: "18-24",
		Budget:         25000,
		Description:    "Launch a summer skincare line targeting beauty enthusiasts",
	}
}

func TestScoreEmptyCandidates(t *testing.T) {
	t.Parallel()

	items := fixedEngine().Score(skincareCampaign(), nil, 10)
	if len(items) != 0 {
		t.Errorf("expected empty result for no candidates, got %d items", len(items))
	}
}

func TestUniformEngagementScoresOne(t *testing.T) {
	t.Parallel()

	profiles := []models.InfluencerProfile{
		{ID: "a", Category: "beauty", EngagementRate: 0.05},
		{ID: "b", Category: "beauty", EngagementRate: 0.05},
		{ID: "c", Category: "beauty", EngagementRate: 0.05},
	}

	scores := normalizeEngagement(profiles)
	for i, s := range scores {
		if s != 1.0 {
			t.Errorf("candidate %d: expected engagement score 1.0 for uniform set, got %g", i, s)
		}
	}
}

func TestEngagementNormalizationExtremes(t *testing.T) {
	t.Parallel()

	profiles := []models.InfluencerProfile{
		{ID: "low", EngagementRate: 0.01},
		{ID: "mid", EngagementRate: 0.05},
		{ID: "high", EngagementRate: 0.09},
	}

	scores := normalizeEngagement(profiles)
	if scores[0] != 0.0 {
		t.Errorf("expected min candidate to normalize to 0.0, got %g", scores[0])
	}
	if scores[2] != 1.0 {
		t.Errorf("expected max candidate to normalize to 1.0, got %g", scores[2])
	}
	if scores[1] <= 0 || scores[1] >= 1 {
		t.Errorf("expected mid candidate strictly between 0 and 1, got %g", scores[1])
	}
}

func TestScoreBounds(t *testing.T) {
	t.Parallel()

	stale := fixedNow.AddDate(0, -6, 0)
	profiles := []models.InfluencerProfile{
		{ID: "perfect", Category: "skincare", Region: "Thailand", AudienceAgeRange: "18-24", EngagementRate: 0.09},
		{ID: "weak", Category: "gaming", Region: "Brazil", AudienceAgeRange: "35-44", EngagementRate: 0.01, StatsUpdatedAt: &stale},
	}

	items := fixedEngine().Score(skincareCampaign(), profiles, 10)
	for _, item := range items {
		if item.Score < 0 || item.Score > 1 {
			t.Errorf("%s: score %g outside [0,1]", item.InfluencerID, item.Score)
		}
		if len(item.Reasons) == 0 {
			t.Errorf("%s: reasons must never be empty", item.InfluencerID)
		}
	}
}

func TestScoreOrderingAndTruncation(t *testing.T) {
	t.Parallel()

	profiles := []models.InfluencerProfile{
		{ID: "a", Category: "gaming", EngagementRate: 0.01},
		{ID: "b", Category: "skincare", Region: "Thailand", AudienceAgeRange: "18-24", EngagementRate: 0.09},
		{ID: "c", Category: "skincare", EngagementRate: 0.05},
		{ID: "d", Category: "travel", EngagementRate: 0.03},
	}

	items := fixedEngine().Score(skincareCampaign(), profiles, 2)
	if len(items) != 2 {
		t.Fatalf("expected truncation to 2, got %d", len(items))
	}
	if items[0].Score < items[1].Score {
		t.Errorf("expected non-increasing scores, got %g then %g", items[0].Score, items[1].Score)
	}
	if items[0].InfluencerID != "b" {
		t.Errorf("expected full-match candidate first, got %s", items[0].InfluencerID)
	}
}

func TestEqualScoresPreserveInputOrder(t *testing.T) {
	t.Parallel()

	// Identical profiles apart from identifiers produce identical scores.
	profiles := []models.InfluencerProfile{
		{ID: "first", Category: "skincare", EngagementRate: 0.05},
		{ID: "second", Category: "skincare", EngagementRate: 0.05},
		{ID: "third", Category: "skincare", EngagementRate: 0.05},
	}

	items := fixedEngine().Score(skincareCampaign(), profiles, 10)
	want := []string{"first", "second", "third"}
	for i, item := range items {
		if item.InfluencerID != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], item.InfluencerID)
		}
	}
}

func TestFreshnessMultiplier(t *testing.T) {
	t.Parallel()

	recent := fixedNow.Add(-12 * time.Hour)
	monthOld := fixedNow.AddDate(0, 0, -30)
	ancient := fixedNow.AddDate(-1, 0, 0)
	future := fixedNow.Add(24 * time.Hour)

	tests := []struct {
		name string
		ts   *time.Time
		want float64
	}{
		{"no timestamp", nil, 1.0},
		{"under a day", &recent, 1.0},
		{"future timestamp clamps to zero staleness", &future, 1.0},
		{"floor applies to ancient stats", &ancient, 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := freshnessMultiplier(tt.ts, fixedNow); got != tt.want {
				t.Errorf("expected multiplier %g, got %g", tt.want, got)
			}
		})
	}

	// 30 days of staleness decays to e^-1, above the floor.
	got := freshnessMultiplier(&monthOld, fixedNow)
	if got < 0.36 || got > 0.37 {
		t.Errorf("expected ~0.3679 at 30 days, got %g", got)
	}
}

func TestReasonsForFullMatch(t *testing.T) {
	t.Parallel()

	profiles := []models.InfluencerProfile{
		{ID: "match", Category: "skincare", Region: "Thailand", AudienceAgeRange: "18-24", EngagementRate: 0.09},
		{ID: "other-a", Category: "gaming", Region: "Brazil", AudienceAgeRange: "25-34", EngagementRate: 0.01},
		{ID: "other-b", Category: "travel", Region: "Japan", AudienceAgeRange: "25-34", EngagementRate: 0.02},
	}

	items := fixedEngine().Score(skincareCampaign(), profiles, 10)
	if items[0].InfluencerID != "match" {
		t.Fatalf("expected full-match profile first, got %s", items[0].InfluencerID)
	}

	wantReasons := []string{
		"Strong category match with 'skincare'",
		"Region match for 'Thailand'",
		"High engagement rate relative to peers",
		"Audience age aligns with target range",
	}
	got := map[string]bool{}
	for _, r := range items[0].Reasons {
		got[r] = true
	}
	for _, want := range wantReasons {
		if !got[want] {
			t.Errorf("missing reason %q in %v", want, items[0].Reasons)
		}
	}
}

func TestFallbackReason(t *testing.T) {
	t.Parallel()

	// No category, region, or age match; engagement normalizes below the
	// solid tier against a stronger peer.
	profiles := []models.InfluencerProfile{
		{ID: "generic", Category: "gaming", Region: "Brazil", AudienceAgeRange: "35-44", EngagementRate: 0.01},
		{ID: "strong", Category: "skincare", Region: "Thailand", AudienceAgeRange: "18-24", EngagementRate: 0.09},
	}

	items := fixedEngine().Score(skincareCampaign(), profiles, 10)
	var generic models.RecommendationItem
	for _, item := range items {
		if item.InfluencerID == "generic" {
			generic = item
		}
	}

	if len(generic.Reasons) != 1 || generic.Reasons[0] != "General relevance based on profile fit" {
		t.Errorf("expected only the fallback reason, got %v", generic.Reasons)
	}
}

func TestEmptyCategoryDoesNotMatchEverything(t *testing.T) {
	t.Parallel()

	profiles := []models.InfluencerProfile{
		{ID: "blank", Category: "", EngagementRate: 0.05},
	}

	items := fixedEngine().Score(skincareCampaign(), profiles, 10)
	for _, r := range items[0].Reasons {
		if r == "Strong category match with ''" {
			t.Error("empty category must not count as a content match")
		}
	}
}

func TestStaleProfileGetsFreshnessReason(t *testing.T) {
	t.Parallel()

	stale := fixedNow.AddDate(0, 0, -90)
	profiles := []models.InfluencerProfile{
		{ID: "stale", Category: "skincare", Region: "Thailand", AudienceAgeRange: "18-24", EngagementRate: 0.05, StatsUpdatedAt: &stale},
	}

	items := fixedEngine().Score(skincareCampaign(), profiles, 10)
	found := false
	for _, r := range items[0].Reasons {
		if r == "Freshness decay applied due to stale stats" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected freshness decay reason, got %v", items[0].Reasons)
	}
}
