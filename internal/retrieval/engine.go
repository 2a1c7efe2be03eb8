// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

// Package retrieval implements hybrid search over the influencer document
// corpus. Two independent signals (TF-IDF cosine similarity and an
// unnormalized keyword dot product) are min-max normalized and linearly
// blended; an optional external re-ranking capability can reorder the
// candidate pool. The corpus is replaced atomically on refresh so concurrent
// queries always observe a complete generation.
package retrieval

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/nivoxai/nivox-intel/internal/config"
	"github.com/nivoxai/nivox-intel/internal/logging"
	"github.com/nivoxai/nivox-intel/internal/metrics"
	"github.com/nivoxai/nivox-intel/internal/models"
)

// DefaultTopK is the result size when the caller does not specify one.
const DefaultTopK = 5

// Reranker reorders a candidate pool for a query. It returns a score per
// candidate identifier; identifiers it omits keep their blended score. The
// capability is strictly optional and never trusted to succeed.
type Reranker interface {
	Rerank(ctx context.Context, query string, candidates []models.SearchHit) (map[string]float64, error)
}

// SearchParams are per-query options. Zero values select engine defaults.
type SearchParams struct {
	TopK       int
	Mode       string // vector, keyword, or hybrid; empty selects the configured default
	Rerank     bool
	CandidateK int
}

// corpusGeneration is one complete, internally consistent version of the
// indexed document set. Built off to the side and swapped in atomically.
type corpusGeneration struct {
	docs    []models.IndexedDocument
	vector  *tfidfIndex
	keyword *keywordIndex
}

// Engine is the hybrid retrieval engine. Safe for concurrent use; Refresh
// may run concurrently with Search.
type Engine struct {
	cfg      config.RetrievalConfig
	reranker Reranker
	corpus   atomic.Pointer[corpusGeneration]
}

// NewEngine creates a retrieval engine with an empty corpus. reranker may be
// nil, in which case rerank requests degrade silently to the blended order.
func NewEngine(cfg config.RetrievalConfig, reranker Reranker) *Engine {
	e := &Engine{
		cfg:      cfg,
		reranker: reranker,
	}
	e.corpus.Store(&corpusGeneration{})
	return e
}

// Refresh atomically replaces the corpus with a new document set. Both signal
// indexes are built before the swap, so readers see either the old or the new
// generation in full.
func (e *Engine) Refresh(docs []models.IndexedDocument) {
	vectorTexts := make([]string, len(docs))
	keywordTexts := make([]string, len(docs))
	for i, d := range docs {
		vectorTexts[i] = d.Bio + " " + d.Category + " " + d.Region
		keywordTexts[i] = d.Name + " " + d.Bio + " " + d.Category + " " + d.Region
	}

	gen := &corpusGeneration{
		docs:    docs,
		vector:  buildTFIDFIndex(vectorTexts),
		keyword: buildKeywordIndex(keywordTexts),
	}
	e.corpus.Store(gen)

	metrics.CorpusDocuments.Set(float64(len(docs)))
	logging.Info().
		Str("component", "retrieval").
		Int("documents", len(docs)).
		Msg("Corpus refreshed")
}

// CorpusSize returns the number of documents in the current generation.
func (e *Engine) CorpusSize() int {
	return len(e.corpus.Load().docs)
}

// Search ranks corpus documents against a free-text query and returns at most
// topK hits in descending score order. An empty or whitespace-only query
// returns an empty slice without error.
func (e *Engine) Search(ctx context.Context, query string, params SearchParams) []models.SearchHit {
	start := time.Now()

	if strings.TrimSpace(query) == "" {
		return []models.SearchHit{}
	}

	gen := e.corpus.Load()
	if len(gen.docs) == 0 {
		return []models.SearchHit{}
	}

	topK := params.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	mode := params.Mode
	if mode == "" {
		mode = e.cfg.DefaultMode
	}
	candidateK := params.CandidateK
	if candidateK <= 0 {
		candidateK = max(e.cfg.CandidateMultiplier*topK, topK)
	}

	queryTokens := tokenize(query)
	blended := e.blend(gen, queryTokens, mode)

	hits := make([]models.SearchHit, len(gen.docs))
	for i, d := range gen.docs {
		hits[i] = models.SearchHit{
			ID:       d.ID,
			Name:     d.Name,
			Bio:      d.Bio,
			Category: d.Category,
			Region:   d.Region,
			Score:    blended[i],
		}
	}
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Score > hits[b].Score
	})

	// Candidate pool for optional re-ranking.
	if candidateK < len(hits) {
		hits = hits[:candidateK]
	}

	if params.Rerank && e.reranker != nil {
		hits = e.rerank(ctx, query, hits)
	}

	if topK < len(hits) {
		hits = hits[:topK]
	}
	for i := range hits {
		hits[i].Score = round4(hits[i].Score)
	}

	latency := time.Since(start)
	metrics.RecordSearch(mode, params.Rerank, latency)
	logSearch(query, mode, params.Rerank, topK, candidateK, latency, hits)

	return hits
}

// blend computes the per-document signal scores for the requested mode.
// Each signal is min-max normalized independently before weighting.
func (e *Engine) blend(gen *corpusGeneration, queryTokens []string, mode string) []float64 {
	switch mode {
	case "vector":
		return minMaxNormalize(gen.vector.score(queryTokens))
	case "keyword":
		return minMaxNormalize(gen.keyword.score(queryTokens))
	default: // hybrid
		vector := minMaxNormalize(gen.vector.score(queryTokens))
		keyword := minMaxNormalize(gen.keyword.score(queryTokens))
		blended := make([]float64, len(vector))
		for i := range blended {
			blended[i] = e.cfg.VectorWeight*vector[i] + e.cfg.KeywordWeight*keyword[i]
		}
		return blended
	}
}

// rerank submits the candidate pool to the external capability under the
// configured deadline. Any failure retains the pre-rerank ordering; the
// capability is never allowed to break a search.
func (e *Engine) rerank(ctx context.Context, query string, candidates []models.SearchHit) []models.SearchHit {
	rctx, cancel := context.WithTimeout(ctx, e.cfg.RerankTimeout)
	defer cancel()

	scores, err := e.reranker.Rerank(rctx, query, candidates)
	if err != nil {
		metrics.RecordRerankFailure()
		logging.Warn().
			Str("component", "retrieval").
			Err(err).
			Msg("Re-ranking failed, keeping blended order")
		return candidates
	}

	// Candidates the re-ranker omits keep their blended score. The mixed
	// scale this produces is accepted.
	reordered := make([]models.SearchHit, len(candidates))
	copy(reordered, candidates)
	for i := range reordered {
		if s, ok := scores[reordered[i].ID]; ok {
			reordered[i].Score = s
		}
	}
	sort.SliceStable(reordered, func(a, b int) bool {
		return reordered[a].Score > reordered[b].Score
	})
	return reordered
}

// minMaxNormalize scales a score vector to [0,1]. A flat vector normalizes
// to all zeros so it contributes no discrimination to the blend.
func minMaxNormalize(scores []float64) []float64 {
	if len(scores) == 0 {
		return scores
	}

	minScore := scores[0]
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s < minScore {
			minScore = s
		}
		if s > maxScore {
			maxScore = s
		}
	}

	normalized := make([]float64, len(scores))
	spread := maxScore - minScore
	if spread == 0 {
		return normalized
	}
	for i, s := range scores {
		normalized[i] = (s - minScore) / spread
	}
	return normalized
}

// logSearch emits the per-search telemetry record.
func logSearch(query, mode string, rerank bool, topK, candidateK int, latency time.Duration, hits []models.SearchHit) {
	var minScore, maxScore, sum float64
	if len(hits) > 0 {
		minScore = hits[len(hits)-1].Score
		maxScore = hits[0].Score
		for _, h := range hits {
			sum += h.Score
		}
	}
	mean := 0.0
	if len(hits) > 0 {
		mean = sum / float64(len(hits))
	}

	logging.Info().
		Str("component", "retrieval").
		Str("mode", mode).
		Bool("rerank", rerank).
		Int("top_k", topK).
		Int("candidate_k", candidateK).
		Int("results", len(hits)).
		Int("query_len", len(query)).
		Dur("latency", latency).
		Float64("score_min", minScore).
		Float64("score_max", maxScore).
		Float64("score_mean", round4(mean)).
		Msg("Search executed")
}

// round4 rounds to four decimal places.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
