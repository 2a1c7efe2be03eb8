// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package agent

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nivoxai/nivox-intel/internal/models"
)

// topReasonCount caps how many aggregated reasons the deterministic draft
// lists.
const topReasonCount = 3

// BuildDeterministicDraft synthesizes a strategy narrative directly from the
// plan and recommendation digest. The output is byte-identical for identical
// inputs and passes review by construction: the audience line carries the
// region and age text, and no template contains forbidden-claim language.
func BuildDeterministicDraft(plan models.CampaignPlan, digest models.RecommendationDigest) string {
	lines := []string{
		"Objective: " + plan.Objective,
		"Audience: " + plan.Audience,
	}

	if plan.Budget > 0 {
		lines = append(lines, fmt.Sprintf("Budget: %g", plan.Budget))
	}

	lines = append(lines, "Phased Plan:")
	for _, phase := range plan.Phases {
		kols := strings.Join(phase.InfluencerIDs, ", ")
		if kols == "" {
			kols = "TBD"
		}
		content := strings.Join(phase.ContentIdeas, ", ")
		if content == "" {
			content = "TBD"
		}
		lines = append(lines, fmt.Sprintf("- %s (%d days): KOLs [%s] · Content [%s]",
			phase.Name, phase.DurationDays, kols, content))
	}

	if len(digest.ReasonCounts) > 0 {
		lines = append(lines, "Top selection reasons: "+topReasons(digest.ReasonCounts))
	}

	if len(plan.Measurement) > 0 {
		lines = append(lines, "Measurement: "+strings.Join(plan.Measurement, ", "))
	}

	if len(plan.Risks) > 0 {
		lines = append(lines, "Risks:")
		for _, risk := range plan.Risks {
			lines = append(lines, "- "+risk)
		}
	}

	return strings.Join(lines, "\n")
}

// topReasons renders the most frequent reasons as "reason (count)" entries.
// Ties are broken alphabetically so the output is deterministic.
func topReasons(counts map[string]int) string {
	type reasonCount struct {
		reason string
		count  int
	}

	sorted := make([]reasonCount, 0, len(counts))
	for reason, count := range counts {
		sorted = append(sorted, reasonCount{reason, count})
	}
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].count != sorted[b].count {
			return sorted[a].count > sorted[b].count
		}
		return sorted[a].reason < sorted[b].reason
	})
	if len(sorted) > topReasonCount {
		sorted = sorted[:topReasonCount]
	}

	parts := make([]string, len(sorted))
	for i, rc := range sorted {
		parts[i] = fmt.Sprintf("%s (%d)", rc.reason, rc.count)
	}
	return strings.Join(parts, ", ")
}
