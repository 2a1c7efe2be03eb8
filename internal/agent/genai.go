// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nivoxai/nivox-intel/internal/models"
)

// Drafter is the generative-text capability consumed by the orchestrator.
// It may be absent (no credential configured) or fail at any time; the
// orchestrator treats both identically and falls back to the deterministic
// draft.
type Drafter interface {
	// Draft produces a strategy narrative for the campaign. A non-nil error
	// means the capability is degraded, never that the run should fail.
	Draft(ctx context.Context, campaign models.Campaign, digest models.RecommendationDigest, question string) (string, error)

	// Model returns the model identifier reported in run results.
	Model() string
}

// GenAIDrafter generates strategy narratives with a Gemini model.
type GenAIDrafter struct {
	client *genai.Client
	model  string
}

// NewGenAIDrafter creates a model-backed drafter.
func NewGenAIDrafter(apiKey, model string) (*GenAIDrafter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("generative API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generative client: %w", err)
	}

	return &GenAIDrafter{client: client, model: model}, nil
}

// Model returns the configured model name.
func (d *GenAIDrafter) Model() string {
	return d.model
}

// Draft asks the model for a campaign strategy narrative. The prompt pins the
// review constraints so a well-behaved model produces a draft that passes on
// the first attempt.
func (d *GenAIDrafter) Draft(ctx context.Context, campaign models.Campaign, digest models.RecommendationDigest, question string) (string, error) {
	result, err := d.client.Models.GenerateContent(ctx, d.model,
		genai.Text(buildDraftPrompt(campaign, digest, question)), nil)
	if err != nil {
		return "", fmt.Errorf("draft generation failed: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("draft generation returned empty text")
	}
	return text, nil
}

// buildDraftPrompt renders the campaign context into a generation instruction.
func buildDraftPrompt(campaign models.Campaign, digest models.RecommendationDigest, question string) string {
	var b strings.Builder

	b.WriteString("You are a campaign strategist for influencer marketing.\n")
	b.WriteString("Write a concise strategy narrative for the campaign below.\n")
	if campaign.TargetRegion != "" {
		fmt.Fprintf(&b, "The text must mention the region %q verbatim.\n", campaign.TargetRegion)
	}
	if campaign.TargetAgeRange != "" {
		fmt.Fprintf(&b, "The text must mention the age range %q verbatim.\n", campaign.TargetAgeRange)
	}
	b.WriteString("Never use absolute guarantee language (guaranteed, no risk, instant virality).\n\n")

	fmt.Fprintf(&b, "Brand: %s\nGoal: %s\nRegion: %s\nAge range: %s\nBudget: %g\nDescription: %s\n",
		campaign.BrandName, campaign.Goal, campaign.TargetRegion,
		campaign.TargetAgeRange, campaign.Budget, campaign.Description)

	if len(digest.Top) > 0 {
		b.WriteString("\nTop influencer matches:\n")
		for _, rec := range digest.Top {
			fmt.Fprintf(&b, "- %s (score %.3f): %s\n",
				rec.InfluencerID, rec.Score, strings.Join(rec.Reasons, "; "))
		}
	}

	if question != "" {
		fmt.Fprintf(&b, "\nAddress this question from the brand team: %s\n", question)
	}

	return b.String()
}
