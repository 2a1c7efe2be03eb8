// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

// Package models defines the shared data structures exchanged between the
// scoring engine, the retrieval engine, the strategy agent pipeline, and the
// HTTP transport layer.
//
// The types fall into three groups:
//
//   - Domain records: Campaign, InfluencerProfile, IndexedDocument
//   - Derived results: RecommendationItem, RecommendationDigest, CampaignPlan,
//     AgentTraceStep, AgentRunResult
//   - Transport envelopes: APIResponse, Metadata, APIError and the
//     request/response payloads for each endpoint
//
// Domain records are immutable per request. Derived results are recomputed on
// every call and never persisted.
package models
