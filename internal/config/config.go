// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

// Package config provides centralized configuration management for Nivox Intel.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Config is immutable after Load() and safe for concurrent read access from
// multiple goroutines.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from environment
// variables and config files.
//
// Configuration Categories:
//
//  1. Core Engines:
//     - Retrieval: Hybrid search over the influencer corpus
//     - Agent: Strategy agent pipeline and generative model access
//     - Ingestion: Profile and document loading with periodic refresh
//
//  2. Infrastructure:
//     - Server: HTTP server configuration (port, host, timeout)
//     - API: Pagination and response limits
//     - Security: CORS and rate limiting
//
//  3. Observability:
//     - Logging: Log levels and output formats
//
// Example - Load configuration from environment:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Retrieval RetrievalConfig `koanf:"retrieval"`
	Agent     AgentConfig     `koanf:"agent"`
	Ingestion IngestionConfig `koanf:"ingestion"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_PORT: Listen port (default: 8600)
//   - HTTP_HOST: Bind address (default: 0.0.0.0)
//   - HTTP_TIMEOUT: Request timeout (default: 30s)
//   - ENVIRONMENT: development or production (default: development)
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// APIConfig holds API response limits.
type APIConfig struct {
	DefaultTopN int `koanf:"default_top_n"` // Default recommendation list size
	MaxTopN     int `koanf:"max_top_n"`     // Upper bound for top_n requests
	MaxTopK     int `koanf:"max_top_k"`     // Upper bound for search top_k requests
}

// SecurityConfig holds CORS and rate limiting settings.
//
// Environment Variables:
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
//   - RATE_LIMIT_REQUESTS: Requests per window (default: 100)
//   - RATE_LIMIT_WINDOW: Window duration (default: 1m)
//   - DISABLE_RATE_LIMIT: Disable rate limiting entirely (default: false)
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`  // trace, debug, info, warn, error
	Format string `koanf:"format"` // json or console
	Caller bool   `koanf:"caller"`
}

// RetrievalConfig holds hybrid search settings.
//
// VectorWeight and KeywordWeight control the hybrid blend. They are
// normalized at query time, so they only need to be non-negative and
// sum to a positive value.
//
// Environment Variables:
//   - RETRIEVAL_DEFAULT_MODE: vector, keyword, or hybrid (default: hybrid)
//   - RETRIEVAL_VECTOR_WEIGHT: Vector signal weight (default: 0.6)
//   - RETRIEVAL_KEYWORD_WEIGHT: Keyword signal weight (default: 0.4)
//   - RETRIEVAL_CANDIDATE_MULTIPLIER: Candidate pool multiplier (default: 3)
//   - RETRIEVAL_RERANK_ENABLED: Enable model-based re-ranking (default: false)
//   - RETRIEVAL_RERANK_MODEL: Re-ranking model name
//   - RETRIEVAL_RERANK_TIMEOUT: Per-call re-ranking deadline (default: 5s)
type RetrievalConfig struct {
	DefaultMode         string        `koanf:"default_mode"`
	VectorWeight        float64       `koanf:"vector_weight"`
	KeywordWeight       float64       `koanf:"keyword_weight"`
	CandidateMultiplier int           `koanf:"candidate_multiplier"`
	RerankEnabled       bool          `koanf:"rerank_enabled"`
	RerankModel         string        `koanf:"rerank_model"`
	RerankTimeout       time.Duration `koanf:"rerank_timeout"`
}

// AgentConfig holds strategy agent settings.
//
// GenAIAPIKey is optional. When empty the agent runs in deterministic
// mode: planning, review, and the fallback draft all work without a
// generative model, and fallback_used is reported on every run.
//
// Environment Variables:
//   - GENAI_API_KEY: API key for the generative model provider
//   - AGENT_MODEL: Model name for draft generation (default: gemini-2.0-flash)
//   - AGENT_DRAFT_TIMEOUT: Per-draft generation deadline (default: 20s)
type AgentConfig struct {
	GenAIAPIKey  string        `koanf:"genai_api_key"`
	Model        string        `koanf:"model"`
	DraftTimeout time.Duration `koanf:"draft_timeout"`
}

// IngestionConfig holds corpus loading settings.
//
// Environment Variables:
//   - INGEST_PROFILES_PATH: CSV file with influencer profiles (optional)
//   - INGEST_REFRESH_INTERVAL: Corpus refresh interval (default: 15m)
//   - INGEST_SEED_SAMPLE: Seed built-in sample profiles and documents (default: true)
type IngestionConfig struct {
	ProfilesPath    string        `koanf:"profiles_path"`
	RefreshInterval time.Duration `koanf:"refresh_interval"`
	SeedSample      bool          `koanf:"seed_sample"`
}

// Validate checks the configuration for invalid values.
// It returns an error describing the first problem found.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.Environment != "development" && c.Server.Environment != "production" {
		return fmt.Errorf("server.environment must be development or production, got %q", c.Server.Environment)
	}

	if c.API.DefaultTopN < 1 {
		return fmt.Errorf("api.default_top_n must be at least 1, got %d", c.API.DefaultTopN)
	}
	if c.API.MaxTopN < c.API.DefaultTopN {
		return fmt.Errorf("api.max_top_n (%d) must be >= api.default_top_n (%d)", c.API.MaxTopN, c.API.DefaultTopN)
	}
	if c.API.MaxTopK < 1 {
		return fmt.Errorf("api.max_top_k must be at least 1, got %d", c.API.MaxTopK)
	}

	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}

	switch c.Retrieval.DefaultMode {
	case "vector", "keyword", "hybrid":
	default:
		return fmt.Errorf("retrieval.default_mode must be vector, keyword, or hybrid, got %q", c.Retrieval.DefaultMode)
	}
	if c.Retrieval.VectorWeight < 0 || c.Retrieval.KeywordWeight < 0 {
		return fmt.Errorf("retrieval weights must be non-negative, got vector=%g keyword=%g",
			c.Retrieval.VectorWeight, c.Retrieval.KeywordWeight)
	}
	if c.Retrieval.VectorWeight+c.Retrieval.KeywordWeight <= 0 {
		return fmt.Errorf("retrieval weights must sum to a positive value")
	}
	if c.Retrieval.CandidateMultiplier < 1 {
		return fmt.Errorf("retrieval.candidate_multiplier must be at least 1, got %d", c.Retrieval.CandidateMultiplier)
	}
	if c.Retrieval.RerankEnabled && c.Retrieval.RerankTimeout <= 0 {
		return fmt.Errorf("retrieval.rerank_timeout must be positive when re-ranking is enabled")
	}

	if c.Agent.DraftTimeout <= 0 {
		return fmt.Errorf("agent.draft_timeout must be positive, got %s", c.Agent.DraftTimeout)
	}
	if c.Agent.Model == "" {
		return fmt.Errorf("agent.model must not be empty")
	}

	if c.Ingestion.RefreshInterval <= 0 {
		return fmt.Errorf("ingestion.refresh_interval must be positive, got %s", c.Ingestion.RefreshInterval)
	}

	return nil
}

// ListenAddr returns the host:port the HTTP server should bind to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
