// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nivoxai/nivox-intel/internal/config"
	"github.com/nivoxai/nivox-intel/internal/models"
)

func testAgentConfig() config.AgentConfig {
	return config.AgentConfig{
		Model:        "gemini-2.0-flash",
		DraftTimeout: time.Second,
	}
}

func testCampaign() models.Campaign {
	return models.Campaign{
		ID:             "c-100",
		BrandName:      "Luma Beauty",
		Goal:           "Launch a summer skincare line",
		TargetRegion:   "Thailand",
		TargetAgeRange: "18-24",
		Budget:         25000,
		Description:    "Summer skincare line for young beauty enthusiasts",
	}
}

func testRecommendations() []models.RecommendationItem {
	return []models.RecommendationItem{
		{InfluencerID: "inf-001", Score: 0.91, Reasons: []string{"Strong category match with 'beauty'", "Region match for 'Thailand'"}},
		{InfluencerID: "inf-002", Score: 0.85, Reasons: []string{"Region match for 'Thailand'"}},
		{InfluencerID: "inf-003", Score: 0.71, Reasons: []string{"High engagement rate relative to peers"}},
		{InfluencerID: "inf-004", Score: 0.62, Reasons: []string{"Region match for 'Thailand'"}},
		{InfluencerID: "inf-005", Score: 0.55, Reasons: []string{"General relevance based on profile fit"}},
		{InfluencerID: "inf-006", Score: 0.41, Reasons: []string{"General relevance based on profile fit"}},
	}
}

// stubDrafter returns a fixed draft, error, or panics.
type stubDrafter struct {
	draft  string
	err    error
	panics bool
	calls  int
}

func (s *stubDrafter) Draft(_ context.Context, _ models.Campaign, _ models.RecommendationDigest, _ string) (string, error) {
	s.calls++
	if s.panics {
		panic("drafter exploded")
	}
	return s.draft, s.err
}

func (s *stubDrafter) Model() string { return "stub-model" }

func TestRunWithoutDrafterFallsBack(t *testing.T) {
	t.Parallel()

	o := NewOrchestrator(testAgentConfig(), nil)
	result := o.Run(context.Background(), testCampaign(), testRecommendations(), "")

	if !result.FallbackUsed {
		t.Error("expected fallback_used=true without a generative capability")
	}
	if result.Model != "" {
		t.Errorf("expected no model identifier, got %q", result.Model)
	}
	if result.Reply == "" {
		t.Fatal("reply must never be empty")
	}

	for _, phase := range []string{"Phase 1 - Tease", "Phase 2 - Launch", "Phase 3 - Retarget"} {
		if !strings.Contains(result.Reply, phase) {
			t.Errorf("reply missing phase name %q", phase)
		}
	}

	if len(result.Trace) != 3 {
		t.Fatalf("expected exactly 3 trace steps, got %d", len(result.Trace))
	}
	wantSteps := []string{"plan", "draft", "review"}
	for i, step := range result.Trace {
		if step.Name != wantSteps[i] {
			t.Errorf("step %d: expected %q, got %q", i, wantSteps[i], step.Name)
		}
		if step.LatencyMS == nil || *step.LatencyMS < 1 {
			t.Errorf("step %q: expected latency >= 1ms, got %v", step.Name, step.LatencyMS)
		}
	}
}

func TestRunWithCompliantDraft(t *testing.T) {
	t.Parallel()

	drafter := &stubDrafter{
		draft: "Strategy for Thailand audiences aged 18-24: lead with beauty creators.",
	}
	o := NewOrchestrator(testAgentConfig(), drafter)
	result := o.Run(context.Background(), testCampaign(), testRecommendations(), "")

	if result.FallbackUsed {
		t.Error("expected fallback_used=false for a compliant generative draft")
	}
	if result.Model != "stub-model" {
		t.Errorf("expected model identifier, got %q", result.Model)
	}
	if result.Reply != drafter.draft {
		t.Errorf("expected the generative draft as the reply, got %q", result.Reply)
	}
}

func TestRunRepairThenFallback(t *testing.T) {
	t.Parallel()

	// The draft never mentions the region, so the appended fix list cannot
	// repair it and the deterministic draft is substituted.
	drafter := &stubDrafter{draft: "Great strategy with creators."}
	o := NewOrchestrator(testAgentConfig(), drafter)
	result := o.Run(context.Background(), testCampaign(), testRecommendations(), "")

	if !result.FallbackUsed {
		t.Error("expected fallback_used=true after failed repair")
	}
	if result.Model != "" {
		t.Errorf("expected model cleared after fallback substitution, got %q", result.Model)
	}
	if !strings.Contains(result.Reply, "Thailand") || !strings.Contains(result.Reply, "18-24") {
		t.Errorf("deterministic reply must carry region and age text, got %q", result.Reply)
	}
	if strings.Contains(result.Reply, "Fixes:") {
		t.Error("discarded draft must not leak into the final reply")
	}
}

func TestRunMissingRegionRepairsThenSubstitutes(t *testing.T) {
	t.Parallel()

	// The draft carries the age range but not the region. The single repair
	// appends a fix list that does not contain the region string, so the
	// re-validation still fails and the deterministic draft is substituted.
	drafter := &stubDrafter{draft: "Strategy for audiences aged 18-24."}
	o := NewOrchestrator(testAgentConfig(), drafter)
	result := o.Run(context.Background(), testCampaign(), testRecommendations(), "")

	if !result.FallbackUsed {
		t.Error("expected fallback_used=true when repair cannot restore the region")
	}
	if !strings.Contains(result.Reply, "Thailand") {
		t.Errorf("substituted reply must carry the region, got %q", result.Reply)
	}
}

func TestRunDrafterErrorDegrades(t *testing.T) {
	t.Parallel()

	drafter := &stubDrafter{err: errors.New("model unavailable")}
	o := NewOrchestrator(testAgentConfig(), drafter)
	result := o.Run(context.Background(), testCampaign(), testRecommendations(), "")

	if !result.FallbackUsed {
		t.Error("expected fallback_used=true on drafter error")
	}
	if result.Reply == "" {
		t.Error("reply must never be empty")
	}
	if len(result.Trace) != 3 {
		t.Errorf("expected 3 trace steps, got %d", len(result.Trace))
	}
}

func TestRunPanicTriggersFullFallback(t *testing.T) {
	t.Parallel()

	drafter := &stubDrafter{panics: true}
	o := NewOrchestrator(testAgentConfig(), drafter)
	result := o.Run(context.Background(), testCampaign(), testRecommendations(), "")

	if !result.FallbackUsed {
		t.Error("expected fallback_used=true on panic")
	}
	if result.Model != "" {
		t.Errorf("expected no model identifier on the exception path, got %q", result.Model)
	}
	if result.Reply == "" {
		t.Fatal("reply must never be empty")
	}

	last := result.Trace[len(result.Trace)-1]
	if last.Name != "error" {
		t.Errorf("expected final error trace step, got %q", last.Name)
	}
	if last.LatencyMS != nil {
		t.Errorf("exception path step must have null latency, got %v", *last.LatencyMS)
	}

	status := o.Status()
	if !strings.Contains(status.LastError, "drafter exploded") {
		t.Errorf("expected panic message recorded as last error, got %q", status.LastError)
	}
}

func TestStatusTracksRuns(t *testing.T) {
	t.Parallel()

	o := NewOrchestrator(testAgentConfig(), nil)

	status := o.Status()
	if status.LastRunAt != nil {
		t.Error("expected nil last run before any invocation")
	}
	if status.AgentVersion != "v1" {
		t.Errorf("expected agent version v1, got %s", status.AgentVersion)
	}

	o.Run(context.Background(), testCampaign(), testRecommendations(), "")

	status = o.Status()
	if status.LastRunAt == nil {
		t.Fatal("expected last run timestamp after invocation")
	}
	if status.LastError != "" {
		t.Errorf("expected empty last error after clean run, got %q", status.LastError)
	}
}
