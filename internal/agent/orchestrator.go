// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package agent

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nivoxai/nivox-intel/internal/config"
	"github.com/nivoxai/nivox-intel/internal/logging"
	"github.com/nivoxai/nivox-intel/internal/metrics"
	"github.com/nivoxai/nivox-intel/internal/models"
)

// agentVersion is reported in status responses.
const agentVersion = "v1"

// Orchestrator sequences the plan, draft, and review steps and contains every
// failure below the input-validation boundary. Safe for concurrent use; the
// diagnostic last-run fields are lock-guarded.
type Orchestrator struct {
	drafter      Drafter // nil when no generative credential is configured
	draftTimeout time.Duration

	mu        sync.Mutex
	lastRunAt *time.Time
	lastError string
}

// NewOrchestrator creates a strategy pipeline orchestrator. drafter may be
// nil, in which case every run uses the deterministic draft and reports
// fallback_used.
func NewOrchestrator(cfg config.AgentConfig, drafter Drafter) *Orchestrator {
	return &Orchestrator{
		drafter:      drafter,
		draftTimeout: cfg.DraftTimeout,
	}
}

// Run executes one pipeline pass. The returned result always carries a
// non-empty reply: generative or review trouble degrades to the deterministic
// draft, and a panic anywhere in the pass is caught and resolved the same
// way. Run never returns an error to its caller.
func (o *Orchestrator) Run(ctx context.Context, campaign models.Campaign, recommendations []models.RecommendationItem, question string) (result models.AgentRunResult) {
	runID := uuid.NewString()
	startedAt := time.Now().UTC()
	o.setStatus(startedAt, "")

	trace := make([]models.AgentTraceStep, 0, 3)

	defer func() {
		if r := recover(); r != nil {
			errMsg := fmt.Sprintf("%v", r)
			o.setStatus(startedAt, errMsg)
			metrics.RecordAgentRun("error")
			logging.Error().
				Str("component", "agent").
				Str("run_id", runID).
				Str("panic", errMsg).
				Msg("Pipeline failed, rebuilding deterministic reply")

			// Full fallback reconstruction from the original inputs.
			digest := Summarize(recommendations)
			plan := BuildPlan(ExtractConstraints(campaign), digest)
			trace = append(trace, models.AgentTraceStep{
				Name:    "error",
				Summary: "Fallback to deterministic reply after exception.",
			})
			result = models.AgentRunResult{
				RunID:        runID,
				Reply:        BuildDeterministicDraft(plan, digest),
				Trace:        trace,
				FallbackUsed: true,
			}
		}
	}()

	fallbackUsed := false
	modelUsed := ""

	// PLAN
	stepStart := time.Now()
	constraints := ExtractConstraints(campaign)
	digest := Summarize(recommendations)
	plan := BuildPlan(constraints, digest)
	planLatency := time.Since(stepStart)
	metrics.RecordAgentStep("plan", planLatency)
	trace = append(trace, models.AgentTraceStep{
		Name:      "plan",
		Summary:   fmt.Sprintf("Generated %d phases with measurement and risks.", len(plan.Phases)),
		LatencyMS: traceLatency(planLatency),
	})

	// DRAFT
	stepStart = time.Now()
	draft := ""
	if o.drafter != nil {
		dctx, cancel := context.WithTimeout(ctx, o.draftTimeout)
		text, err := o.drafter.Draft(dctx, campaign, digest, question)
		cancel()
		if err != nil {
			logging.Warn().
				Str("component", "agent").
				Str("run_id", runID).
				Err(err).
				Msg("Generative draft failed, using deterministic draft")
			draft = BuildDeterministicDraft(plan, digest)
			fallbackUsed = true
		} else {
			draft = text
			modelUsed = o.drafter.Model()
		}
	} else {
		draft = BuildDeterministicDraft(plan, digest)
		fallbackUsed = true
	}
	draftLatency := time.Since(stepStart)
	metrics.RecordAgentStep("draft", draftLatency)
	trace = append(trace, models.AgentTraceStep{
		Name:      "draft",
		Summary:   "Generated strategy draft.",
		LatencyMS: traceLatency(draftLatency),
	})

	// REVIEW with one bounded repair attempt
	stepStart = time.Now()
	ok, issues := ReviewDraft(draft, constraints)
	if !ok {
		draft = appendFixes(draft, issues)
		ok, _ = ReviewDraft(draft, constraints)
	}
	if !ok {
		// The deterministic draft passes review by construction.
		draft = BuildDeterministicDraft(plan, digest)
		fallbackUsed = true
		modelUsed = ""
	}
	reviewLatency := time.Since(stepStart)
	metrics.RecordAgentStep("review", reviewLatency)
	trace = append(trace, models.AgentTraceStep{
		Name:      "review",
		Summary:   "Validated draft against campaign constraints.",
		LatencyMS: traceLatency(reviewLatency),
	})

	outcome := "generative"
	if fallbackUsed {
		outcome = "fallback"
	}
	metrics.RecordAgentRun(outcome)
	logging.Info().
		Str("component", "agent").
		Str("run_id", runID).
		Bool("fallback_used", fallbackUsed).
		Str("model", modelUsed).
		Msg("Pipeline run complete")

	return models.AgentRunResult{
		RunID:        runID,
		Reply:        draft,
		Trace:        trace,
		Model:        modelUsed,
		FallbackUsed: fallbackUsed,
	}
}

// Status reports the last-run diagnostics.
func (o *Orchestrator) Status() models.AgentStatus {
	o.mu.Lock()
	defer o.mu.Unlock()

	status := models.AgentStatus{
		AgentVersion: agentVersion,
		LastRunAt:    o.lastRunAt,
		LastError:    o.lastError,
	}
	if o.drafter != nil {
		status.DefaultModel = o.drafter.Model()
	}
	return status
}

// setStatus overwrites the diagnostic fields under the lock.
func (o *Orchestrator) setStatus(runAt time.Time, errMsg string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lastRunAt = &runAt
	o.lastError = errMsg
}

// appendFixes appends the itemized fix list of the single repair attempt.
func appendFixes(draft string, issues []string) string {
	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = "- " + issue
	}
	return draft + "\n\nFixes:\n" + strings.Join(lines, "\n")
}

// traceLatency converts a step duration to whole milliseconds with a floor
// of 1, so even instantaneous steps register in the trace.
func traceLatency(d time.Duration) *int64 {
	ms := int64(math.Round(float64(d.Microseconds()) / 1000))
	if ms < 1 {
		ms = 1
	}
	return &ms
}
