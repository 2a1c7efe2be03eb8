// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package agent

import (
	"sort"
	"strings"

	"github.com/nivoxai/nivox-intel/internal/models"
)

// digestSize is how many top recommendations feed planning and narrative
// generation.
const digestSize = 5

// Summarize reduces a recommendation list to its top entries by score plus a
// reason-frequency tally. The input slice is not modified; order among equal
// scores is preserved.
func Summarize(recommendations []models.RecommendationItem) models.RecommendationDigest {
	top := make([]models.RecommendationItem, len(recommendations))
	copy(top, recommendations)
	sort.SliceStable(top, func(a, b int) bool {
		return top[a].Score > top[b].Score
	})
	if len(top) > digestSize {
		top = top[:digestSize]
	}

	counts := make(map[string]int)
	for _, rec := range top {
		for _, reason := range rec.Reasons {
			reason = strings.TrimSpace(reason)
			if reason == "" {
				continue
			}
			counts[reason]++
		}
	}

	return models.RecommendationDigest{
		Top:          top,
		ReasonCounts: counts,
	}
}
