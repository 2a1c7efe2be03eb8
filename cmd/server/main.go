// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

// Package main is the entry point for the Nivox Intel server.
//
// Nivox Intel scores influencer candidates against campaign briefs, serves
// hybrid vector and keyword search over an influencer corpus, and runs a
// resilient plan, draft, review pipeline that produces campaign strategy
// replies.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 layered load (defaults, config.yaml, env)
//  2. Logging: zerolog with console or JSON output
//  3. Retrieval engine: TF-IDF and keyword indexes with optional re-ranking
//  4. Strategy agent: deterministic pipeline with optional generative drafts
//  5. Ingestion manager: CSV or seed corpus with periodic refresh
//  6. Supervisor tree: suture-managed ingestion loop and HTTP server
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins): environment variables, config.yaml, built-in defaults.
//
// Generative features are optional. Without GENAI_API_KEY the service runs
// fully deterministic: search skips re-ranking and the strategy pipeline
// always answers with the deterministic draft.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting connections, drains in-flight requests (10s timeout), and
// stops the ingestion loop.
//
// # Example Usage
//
// Deterministic mode (no external services):
//
//	./nivox-intel
//
// With generative drafting and re-ranking:
//
//	export GENAI_API_KEY=your-api-key
//	export RETRIEVAL_RERANK_ENABLED=true
//	./nivox-intel
//
// With a custom influencer corpus:
//
//	export INGEST_PROFILES_PATH=/data/profiles.csv
//	export INGEST_REFRESH_INTERVAL=5m
//	./nivox-intel
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nivoxai/nivox-intel/internal/agent"
	"github.com/nivoxai/nivox-intel/internal/api"
	"github.com/nivoxai/nivox-intel/internal/config"
	"github.com/nivoxai/nivox-intel/internal/ingest"
	"github.com/nivoxai/nivox-intel/internal/logging"
	"github.com/nivoxai/nivox-intel/internal/recommend"
	"github.com/nivoxai/nivox-intel/internal/retrieval"
	"github.com/nivoxai/nivox-intel/internal/supervisor"
	"github.com/nivoxai/nivox-intel/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("retrieval_mode", cfg.Retrieval.DefaultMode).
		Bool("genai_configured", cfg.Agent.GenAIAPIKey != "").
		Msg("Starting Nivox Intel with supervisor tree")

	// Retrieval engine with optional model-based re-ranking. A reranker
	// construction failure is non-fatal; search falls back to blended order.
	var reranker retrieval.Reranker
	if cfg.Retrieval.RerankEnabled && cfg.Agent.GenAIAPIKey != "" {
		genaiReranker, err := retrieval.NewGenAIReranker(cfg.Agent.GenAIAPIKey, cfg.Retrieval.RerankModel)
		if err != nil {
			logging.Warn().Err(err).Msg("Failed to create reranker, search will use blended order")
		} else {
			reranker = genaiReranker
			logging.Info().Str("model", genaiReranker.Model()).Msg("Search re-ranking enabled")
		}
	}
	retriever := retrieval.NewEngine(cfg.Retrieval, reranker)

	// Strategy agent with optional generative drafting.
	var drafter agent.Drafter
	if cfg.Agent.GenAIAPIKey != "" {
		genaiDrafter, err := agent.NewGenAIDrafter(cfg.Agent.GenAIAPIKey, cfg.Agent.Model)
		if err != nil {
			logging.Warn().Err(err).Msg("Failed to create drafter, strategy replies will be deterministic")
		} else {
			drafter = genaiDrafter
			logging.Info().Str("model", genaiDrafter.Model()).Msg("Generative drafting enabled")
		}
	} else {
		logging.Info().Msg("GENAI_API_KEY not set, strategy replies will be deterministic")
	}
	orchestrator := agent.NewOrchestrator(cfg.Agent, drafter)

	// Ingestion manager feeds the retrieval corpus. The initial refresh
	// runs synchronously so readiness reflects a populated corpus.
	ingestion := ingest.NewManager(cfg.Ingestion, retriever)
	if err := ingestion.RunOnce(); err != nil {
		logging.Warn().Err(err).Msg("Initial corpus load failed, continuing with periodic retries")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())

	handler := api.NewHandler(cfg, recommend.NewEngine(), retriever, orchestrator, ingestion)
	mw := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree.AddDataService(services.NewIngestService(ingestion))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain the error channel until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
	}

	logging.Info().Msg("Shutdown complete")
}
