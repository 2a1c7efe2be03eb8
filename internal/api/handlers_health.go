// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package api

import (
	"net/http"
	"time"

	"github.com/nivoxai/nivox-intel/internal/models"
)

// healthStatus is the payload for the aggregate health endpoint.
type healthStatus struct {
	Status          string     `json:"status"`
	Version         string     `json:"version"`
	Uptime          float64    `json:"uptime"`
	CorpusDocuments int        `json:"corpus_documents"`
	LastIngestAt    *time.Time `json:"last_ingest_at"`
}

// serviceVersion is reported by the health endpoint.
const serviceVersion = "1.0.0"

// Health reports aggregate service health including corpus state.
//
// GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	corpusSize := 0
	if h.retriever != nil {
		corpusSize = h.retriever.CorpusSize()
	}

	var lastIngestAt *time.Time
	status := "healthy"
	if h.ingestion != nil {
		ingestStatus := h.ingestion.Status()
		lastIngestAt = ingestStatus.LastRunAt
		if ingestStatus.LastError != "" {
			status = "degraded"
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: healthStatus{
			Status:          status,
			Version:         serviceVersion,
			Uptime:          time.Since(h.startTime).Seconds(),
			CorpusDocuments: corpusSize,
			LastIngestAt:    lastIngestAt,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
//
// GET /api/v1/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// The service is ready once the retrieval corpus has been populated, since
// search results over an empty corpus would be silently empty.
//
// GET /api/v1/health/ready
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.retriever != nil && h.retriever.CorpusSize() > 0

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	respondJSON(w, status, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"ready": ready,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
