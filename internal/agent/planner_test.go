// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package agent

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nivoxai/nivox-intel/internal/models"
)

func TestBuildPlanPhaseSlicing(t *testing.T) {
	t.Parallel()

	digest := Summarize(testRecommendations())
	plan := BuildPlan(ExtractConstraints(testCampaign()), digest)

	if len(plan.Phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(plan.Phases))
	}

	tests := []struct {
		phase   int
		name    string
		days    int
		wantIDs []string
	}{
		{0, "Phase 1 - Tease", 7, []string{"inf-001", "inf-002"}},
		{1, "Phase 2 - Launch", 14, []string{"inf-001", "inf-002", "inf-003", "inf-004"}},
		{2, "Phase 3 - Retarget", 10, []string{"inf-003", "inf-004", "inf-005"}},
	}

	for _, tt := range tests {
		p := plan.Phases[tt.phase]
		if p.Name != tt.name {
			t.Errorf("phase %d: expected name %q, got %q", tt.phase, tt.name, p.Name)
		}
		if p.DurationDays != tt.days {
			t.Errorf("%s: expected %d days, got %d", tt.name, tt.days, p.DurationDays)
		}
		if !reflect.DeepEqual(p.InfluencerIDs, tt.wantIDs) {
			t.Errorf("%s: expected ids %v, got %v", tt.name, tt.wantIDs, p.InfluencerIDs)
		}
	}
}

func TestBuildPlanFewCandidates(t *testing.T) {
	t.Parallel()

	digest := Summarize([]models.RecommendationItem{
		{InfluencerID: "only", Score: 0.5, Reasons: []string{"General relevance based on profile fit"}},
	})
	plan := BuildPlan(ExtractConstraints(testCampaign()), digest)

	if got := plan.Phases[0].InfluencerIDs; !reflect.DeepEqual(got, []string{"only"}) {
		t.Errorf("tease phase: expected [only], got %v", got)
	}
	if got := plan.Phases[2].InfluencerIDs; len(got) != 0 {
		t.Errorf("retarget phase: expected no ids, got %v", got)
	}
}

func TestContentIdeasKeywordSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goal string
		want []string
	}{
		{"Launch a summer skincare line", launchContent},
		{"Drive brand awareness in Vietnam", awarenessContent},
		{"Increase repeat purchases", genericContent},
		{"", genericContent},
	}

	for _, tt := range tests {
		t.Run(tt.goal, func(t *testing.T) {
			t.Parallel()
			if got := contentIdeas(tt.goal); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("contentIdeas(%q) = %v, want %v", tt.goal, got, tt.want)
			}
		})
	}
}

func TestAudienceLineCarriesConstraints(t *testing.T) {
	t.Parallel()

	plan := BuildPlan(ExtractConstraints(testCampaign()), Summarize(nil))
	if !strings.Contains(plan.Audience, "Thailand") || !strings.Contains(plan.Audience, "18-24") {
		t.Errorf("audience line must carry region and age range, got %q", plan.Audience)
	}

	empty := BuildPlan(Constraints{Goal: "something"}, Summarize(nil))
	if empty.Audience == "" {
		t.Error("audience line must never be empty")
	}
}
