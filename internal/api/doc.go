// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

// Package api provides the HTTP surface of the service using the Chi
// router.
//
// Handler methods are split across files by concern:
//   - handlers.go: Handler struct and constructor
//   - handlers_helpers.go: shared response and validation helpers
//   - handlers_health.go: health and readiness endpoints
//   - handlers_recommend.go: recommendation scoring endpoints
//   - handlers_search.go: hybrid retrieval endpoint
//   - handlers_strategy.go: strategy pipeline endpoints
//
// All endpoints respond with the models.APIResponse envelope. Request
// bodies are validated with go-playground/validator before any engine is
// invoked, so malformed input is always reported as VALIDATION_ERROR
// rather than surfacing as an engine failure.
package api
