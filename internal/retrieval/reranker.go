// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package retrieval

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"google.golang.org/genai"

	"github.com/nivoxai/nivox-intel/internal/logging"
	"github.com/nivoxai/nivox-intel/internal/models"
)

// GenAIReranker scores candidate pools with a generative model. Calls are
// wrapped in a circuit breaker so a degraded model endpoint stops being
// consulted instead of slowing every search to its timeout.
type GenAIReranker struct {
	client *genai.Client
	model  string
	cb     *gobreaker.CircuitBreaker[map[string]float64]
}

// NewGenAIReranker creates a model-backed reranker.
// Circuit breaker configuration:
// - Max 2 concurrent requests in half-open state
// - 1 minute measurement window
// - 30 second timeout before attempting recovery
// - Opens after 3 consecutive failures
func NewGenAIReranker(apiKey, model string) (*GenAIReranker, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("re-ranking API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create re-ranking client: %w", err)
	}

	cb := gobreaker.NewCircuitBreaker[map[string]float64](gobreaker.Settings{
		Name:        "rerank-model",
		MaxRequests: 2,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Re-ranking circuit breaker state change")
		},
	})

	return &GenAIReranker{
		client: client,
		model:  model,
		cb:     cb,
	}, nil
}

// Model returns the configured model name.
func (r *GenAIReranker) Model() string {
	return r.model
}

// Rerank asks the model to score each candidate's relevance to the query in
// [0,1] and returns the parsed score map. Omitted identifiers are the
// caller's problem; any transport, breaker, or parse failure returns an
// error and the caller retains its own ordering.
func (r *GenAIReranker) Rerank(ctx context.Context, query string, candidates []models.SearchHit) (map[string]float64, error) {
	return r.cb.Execute(func() (map[string]float64, error) {
		prompt := buildRerankPrompt(query, candidates)

		result, err := r.client.Models.GenerateContent(ctx, r.model,
			genai.Text(prompt), nil)
		if err != nil {
			return nil, fmt.Errorf("re-ranking call failed: %w", err)
		}

		scores, err := parseRerankResponse(result.Text())
		if err != nil {
			return nil, err
		}
		return scores, nil
	})
}

// buildRerankPrompt renders the candidate pool into a scoring instruction.
func buildRerankPrompt(query string, candidates []models.SearchHit) string {
	var b strings.Builder
	b.WriteString("Score each influencer profile for relevance to the query on a 0.0-1.0 scale.\n")
	b.WriteString("Respond with only a JSON object mapping profile id to score.\n\n")
	b.WriteString("Query: ")
	b.WriteString(query)
	b.WriteString("\n\nProfiles:\n")
	for _, c := range candidates {
		fmt.Fprintf(&b, "- id=%s name=%q category=%q region=%q bio=%q\n",
			c.ID, c.Name, c.Category, c.Region, c.Bio)
	}
	return b.String()
}

// parseRerankResponse extracts the id-to-score JSON object from the model
// reply, tolerating surrounding prose and markdown fences.
func parseRerankResponse(text string) (map[string]float64, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("re-ranking response contains no JSON object")
	}

	scores := make(map[string]float64)
	if err := json.Unmarshal([]byte(text[start:end+1]), &scores); err != nil {
		return nil, fmt.Errorf("malformed re-ranking response: %w", err)
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("re-ranking response is empty")
	}
	return scores, nil
}
