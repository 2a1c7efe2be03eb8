// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

// Package agent implements the plan-draft-review strategy pipeline.
//
// The orchestrator sequences three steps over a campaign brief and its
// recommendation list: build a phased plan, draft a narrative (generative
// when a model is configured, deterministic otherwise), and review the draft
// against campaign constraints and a forbidden-claim lexicon. Every failure
// mode below input validation resolves to a deterministic, review-compliant
// reply; the pipeline never returns an empty result.
package agent

import "github.com/nivoxai/nivox-intel/internal/models"

// Constraints is the normalized constraint record extracted from a raw
// campaign brief. Pure data, no behavior.
type Constraints struct {
	Brand       string
	Goal        string
	Region      string
	AgeRange    string
	Budget      float64
	Description string
}

// ExtractConstraints normalizes a campaign into a fixed constraint record.
func ExtractConstraints(c models.Campaign) Constraints {
	return Constraints{
		Brand:       c.BrandName,
		Goal:        c.Goal,
		Region:      c.TargetRegion,
		AgeRange:    c.TargetAgeRange,
		Budget:      c.Budget,
		Description: c.Description,
	}
}
