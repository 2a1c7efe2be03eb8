// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/nivoxai/nivox-intel/internal/config"
	"github.com/nivoxai/nivox-intel/internal/logging"
	"github.com/nivoxai/nivox-intel/internal/metrics"
	"github.com/nivoxai/nivox-intel/internal/models"
)

// CorpusSink receives complete document generations on refresh. Implemented
// by the retrieval engine.
type CorpusSink interface {
	Refresh(docs []models.IndexedDocument)
}

// Status reports the outcome of the most recent refresh.
type Status struct {
	LastRunAt      *time.Time `json:"last_run_at"`
	LastError      string     `json:"last_error,omitempty"`
	RecordsUpdated int        `json:"records_updated"`
}

// Manager loads profiles from the configured source and pushes them into the
// corpus sink, once at startup and then on a fixed interval. Safe for
// concurrent use.
type Manager struct {
	cfg  config.IngestionConfig
	sink CorpusSink
	now  func() time.Time

	mu     sync.Mutex
	status Status
}

// NewManager creates an ingestion manager.
func NewManager(cfg config.IngestionConfig, sink CorpusSink) *Manager {
	return &Manager{
		cfg:  cfg,
		sink: sink,
		now:  time.Now,
	}
}

// RunOnce performs a single load-and-refresh pass and records its outcome.
// The error is also retained in the status for the diagnostics endpoint.
func (m *Manager) RunOnce() error {
	start := time.Now()
	runAt := m.now().UTC()

	profiles, err := m.loadProfiles()
	if err != nil {
		metrics.RecordIngestRefresh(0, time.Since(start), err)
		m.setStatus(runAt, err.Error(), 0)
		logging.Err(err).Str("component", "ingest").Msg("Corpus refresh failed")
		return err
	}

	m.sink.Refresh(DocumentsFromProfiles(profiles))
	metrics.RecordIngestRefresh(len(profiles), time.Since(start), nil)
	m.setStatus(runAt, "", len(profiles))
	logging.Info().
		Str("component", "ingest").
		Int("records", len(profiles)).
		Msg("Corpus refresh complete")
	return nil
}

// Run performs an initial refresh, then repeats on the configured interval
// until the context is cancelled. Errors are recorded and the loop keeps
// going; a transient source failure must not kill the schedule.
func (m *Manager) Run(ctx context.Context) error {
	if err := m.RunOnce(); err != nil && !m.cfg.SeedSample {
		// Without a seed fallback an initial failure leaves an empty
		// corpus; surface it but keep the periodic retries running.
		logging.Warn().Str("component", "ingest").Msg("Initial refresh failed, corpus is empty until the next cycle")
	}

	ticker := time.NewTicker(m.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_ = m.RunOnce()
		}
	}
}

// Profiles loads the current profile set without touching the corpus. Used
// by callers that need scoring candidates rather than search documents.
func (m *Manager) Profiles() ([]models.InfluencerProfile, error) {
	return m.loadProfiles()
}

// Status returns the most recent refresh outcome.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// loadProfiles reads the configured CSV, falling back to the built-in seed
// set when no path is configured and seeding is enabled.
func (m *Manager) loadProfiles() ([]models.InfluencerProfile, error) {
	if m.cfg.ProfilesPath != "" {
		return LoadCSVProfiles(m.cfg.ProfilesPath)
	}
	if m.cfg.SeedSample {
		return seedProfiles(m.now().UTC()), nil
	}
	return []models.InfluencerProfile{}, nil
}

func (m *Manager) setStatus(runAt time.Time, errMsg string, records int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = Status{
		LastRunAt:      &runAt,
		LastError:      errMsg,
		RecordsUpdated: records,
	}
}
