// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package agent

import (
	"fmt"
	"strings"

	"github.com/nivoxai/nivox-intel/internal/models"
)

// Content idea sets selected by goal keyword. None of these contain
// forbidden-claim language, so a deterministic draft built from them always
// passes review.
var (
	launchContent = []string{
		"Teaser countdown posts",
		"Launch-day unboxing",
		"Tutorial featuring the hero product",
		"Limited-time offer push",
	}
	awarenessContent = []string{
		"Brand story short",
		"Day-in-the-life integration",
		"Creator Q&A session",
		"Hashtag challenge",
	}
	genericContent = []string{
		"Creator-style product integration",
		"Authentic first-impressions review",
		"Trend remix with brand tie-in",
		"Follow-up engagement post",
	}
)

// Default measurement KPIs and campaign risks included in every plan.
var (
	defaultMeasurement = []string{"CTR", "Engagement Rate", "Conversion Proxy"}
	defaultRisks       = []string{
		"Creator scheduling slips may compress the launch window",
		"Engagement estimates rely on recent stats and may drift",
	}
)

// BuildPlan builds a three-phase campaign plan from constraints and the
// recommendation digest. Influencer identifiers are assigned to phases by
// position in the ranked digest: the tease phase gets the top 2, the launch
// phase the top 4, and the retarget phase items 3-5.
func BuildPlan(c Constraints, digest models.RecommendationDigest) models.CampaignPlan {
	ids := make([]string, 0, len(digest.Top))
	for _, rec := range digest.Top {
		ids = append(ids, rec.InfluencerID)
	}

	content := contentIdeas(c.Goal)
	phases := []models.PlanPhase{
		{Name: "Phase 1 - Tease", DurationDays: 7, InfluencerIDs: sliceIDs(ids, 0, 2), ContentIdeas: content[:2]},
		{Name: "Phase 2 - Launch", DurationDays: 14, InfluencerIDs: sliceIDs(ids, 0, 4), ContentIdeas: content},
		{Name: "Phase 3 - Retarget", DurationDays: 10, InfluencerIDs: sliceIDs(ids, 2, 5), ContentIdeas: content[2:]},
	}

	return models.CampaignPlan{
		Objective:   objective(c),
		Audience:    audienceLine(c),
		Budget:      c.Budget,
		Phases:      phases,
		Measurement: defaultMeasurement,
		Risks:       defaultRisks,
	}
}

// contentIdeas selects a content set by goal keyword. "launch" and
// "awareness" pick distinct sets; anything else falls to the generic
// creator-content set.
func contentIdeas(goal string) []string {
	lowered := strings.ToLower(goal)
	switch {
	case strings.Contains(lowered, "launch"):
		return launchContent
	case strings.Contains(lowered, "awareness"):
		return awarenessContent
	default:
		return genericContent
	}
}

// objective renders the plan objective from the brief.
func objective(c Constraints) string {
	if c.Brand == "" {
		return c.Goal
	}
	return fmt.Sprintf("%s: %s", c.Brand, c.Goal)
}

// audienceLine renders the audience string. It must contain the target
// region and age range verbatim so a deterministic draft satisfies review by
// construction.
func audienceLine(c Constraints) string {
	switch {
	case c.Region != "" && c.AgeRange != "":
		return fmt.Sprintf("%s, ages %s", c.Region, c.AgeRange)
	case c.Region != "":
		return c.Region
	case c.AgeRange != "":
		return "ages " + c.AgeRange
	default:
		return "General audience"
	}
}

// sliceIDs returns ids[from:to] clamped to the slice bounds.
func sliceIDs(ids []string, from, to int) []string {
	if from > len(ids) {
		from = len(ids)
	}
	if to > len(ids) {
		to = len(ids)
	}
	return ids[from:to]
}
