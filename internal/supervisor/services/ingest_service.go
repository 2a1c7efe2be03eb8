// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package services

import (
	"context"
)

// IngestRunner matches the ingestion manager's supervised loop.
type IngestRunner interface {
	Run(ctx context.Context) error
}

// IngestService wraps the corpus refresh loop as a supervised service.
// The loop exits only on context cancellation, which suture treats as a
// normal stop rather than a restartable failure.
type IngestService struct {
	runner IngestRunner
	name   string
}

// NewIngestService creates a supervised ingestion wrapper.
func NewIngestService(runner IngestRunner) *IngestService {
	return &IngestService{
		runner: runner,
		name:   "ingest-refresh",
	}
}

// Serve implements suture.Service.
func (s *IngestService) Serve(ctx context.Context) error {
	return s.runner.Run(ctx)
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *IngestService) String() string {
	return s.name
}
