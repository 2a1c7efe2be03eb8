// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package retrieval

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/nivoxai/nivox-intel/internal/config"
	"github.com/nivoxai/nivox-intel/internal/models"
)

func testRetrievalConfig() config.RetrievalConfig {
	return config.RetrievalConfig{
		DefaultMode:         "hybrid",
		VectorWeight:        0.6,
		KeywordWeight:       0.4,
		CandidateMultiplier: 3,
		RerankTimeout:       time.Second,
	}
}

func testDocuments() []models.IndexedDocument {
	return []models.IndexedDocument{
		{ID: "doc-001", Name: "Nina Glow", Bio: "Beauty and skincare tips for young audiences", Category: "beauty", Region: "Thailand"},
		{ID: "doc-002", Name: "Trek Tawan", Bio: "Travel vlogs across Southeast Asia", Category: "travel", Region: "Thailand"},
		{ID: "doc-003", Name: "Pixel Prin", Bio: "Gaming streams and esports commentary", Category: "gaming", Region: "Vietnam"},
		{ID: "doc-004", Name: "Chef Anong", Bio: "Street food and home cooking recipes", Category: "food", Region: "Thailand"},
		{ID: "doc-005", Name: "Glow Guru", Bio: "Skincare routines and beauty product reviews", Category: "beauty", Region: "Singapore"},
	}
}

func newTestEngine(reranker Reranker) *Engine {
	e := NewEngine(testRetrievalConfig(), reranker)
	e.Refresh(testDocuments())
	return e
}

// stubReranker returns fixed scores or a fixed error.
type stubReranker struct {
	scores map[string]float64
	err    error
	calls  int
}

func (s *stubReranker) Rerank(_ context.Context, _ string, _ []models.SearchHit) (map[string]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.scores, nil
}

func TestSearchEmptyQuery(t *testing.T) {
	t.Parallel()

	e := newTestEngine(nil)
	for _, query := range []string{"", "   ", "\t\n"} {
		hits := e.Search(context.Background(), query, SearchParams{TopK: 5})
		if len(hits) != 0 {
			t.Errorf("query %q: expected empty result, got %d hits", query, len(hits))
		}
	}
}

func TestSearchEmptyCorpus(t *testing.T) {
	t.Parallel()

	e := NewEngine(testRetrievalConfig(), nil)
	hits := e.Search(context.Background(), "skincare", SearchParams{TopK: 5})
	if len(hits) != 0 {
		t.Errorf("expected empty result on empty corpus, got %d hits", len(hits))
	}
}

func TestSearchRankingAndTruncation(t *testing.T) {
	t.Parallel()

	e := newTestEngine(nil)
	hits := e.Search(context.Background(), "skincare beauty routines", SearchParams{TopK: 2})

	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Score < hits[1].Score {
		t.Errorf("expected descending scores, got %g then %g", hits[0].Score, hits[1].Score)
	}
	for _, h := range hits {
		if h.Category != "beauty" {
			t.Errorf("expected beauty documents to rank first, got %s (%s)", h.ID, h.Category)
		}
	}
}

func TestSearchKeywordModeIndexesName(t *testing.T) {
	t.Parallel()

	e := newTestEngine(nil)

	// "Tawan" appears only in a document name, which the vector view does
	// not index.
	hits := e.Search(context.Background(), "Tawan", SearchParams{TopK: 1, Mode: "keyword"})
	if len(hits) != 1 || hits[0].ID != "doc-002" {
		t.Fatalf("expected doc-002 for name-only query, got %+v", hits)
	}

	vectorHits := e.Search(context.Background(), "Tawan", SearchParams{TopK: 1, Mode: "vector"})
	if len(vectorHits) > 0 && vectorHits[0].Score != 0 {
		t.Errorf("expected zero vector score for name-only query, got %g", vectorHits[0].Score)
	}
}

func TestMinMaxNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []float64
		want  []float64
	}{
		{"empty", []float64{}, []float64{}},
		{"single value is flat", []float64{0.7}, []float64{0}},
		{"uniform is flat", []float64{0.5, 0.5, 0.5}, []float64{0, 0, 0}},
		{"two values hit extremes", []float64{0.2, 0.8}, []float64{0, 1}},
		{"three values", []float64{1, 3, 2}, []float64{0, 1, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := minMaxNormalize(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("minMaxNormalize(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRerankFailureKeepsBlendedOrder(t *testing.T) {
	t.Parallel()

	baseline := newTestEngine(nil).Search(context.Background(), "beauty skincare",
		SearchParams{TopK: 5})

	failing := &stubReranker{err: errors.New("deadline exceeded")}
	e := newTestEngine(failing)
	hits := e.Search(context.Background(), "beauty skincare",
		SearchParams{TopK: 5, Rerank: true})

	if failing.calls != 1 {
		t.Fatalf("expected one re-ranking attempt, got %d", failing.calls)
	}
	if !reflect.DeepEqual(hits, baseline) {
		t.Errorf("re-ranking failure must retain the blended order\n got: %+v\nwant: %+v", hits, baseline)
	}
}

func TestRerankReordersCandidates(t *testing.T) {
	t.Parallel()

	reranker := &stubReranker{scores: map[string]float64{
		"doc-003": 0.99,
		"doc-001": 0.10,
	}}
	e := newTestEngine(reranker)

	hits := e.Search(context.Background(), "beauty skincare gaming",
		SearchParams{TopK: 3, Rerank: true})

	if len(hits) == 0 || hits[0].ID != "doc-003" {
		t.Fatalf("expected re-ranked doc-003 first, got %+v", hits)
	}
	if hits[0].Score != 0.99 {
		t.Errorf("expected re-ranker score 0.99, got %g", hits[0].Score)
	}
}

func TestRerankOmittedIDsKeepEngineScore(t *testing.T) {
	t.Parallel()

	// Only one candidate is rescored; the rest keep their blended scores.
	reranker := &stubReranker{scores: map[string]float64{"doc-004": 0.95}}
	e := newTestEngine(reranker)

	hits := e.Search(context.Background(), "beauty skincare",
		SearchParams{TopK: 5, Rerank: true})

	if len(hits) == 0 || hits[0].ID != "doc-004" {
		t.Fatalf("expected rescored doc-004 first, got %+v", hits)
	}

	baseline := newTestEngine(nil).Search(context.Background(), "beauty skincare",
		SearchParams{TopK: 5})
	baselineScores := map[string]float64{}
	for _, h := range baseline {
		baselineScores[h.ID] = h.Score
	}
	for _, h := range hits[1:] {
		if h.Score != baselineScores[h.ID] {
			t.Errorf("%s: expected retained blended score %g, got %g", h.ID, baselineScores[h.ID], h.Score)
		}
	}
}

func TestRefreshAtomicSwap(t *testing.T) {
	t.Parallel()

	e := newTestEngine(nil)
	if e.CorpusSize() != 5 {
		t.Fatalf("expected 5 documents, got %d", e.CorpusSize())
	}

	e.Refresh([]models.IndexedDocument{
		{ID: "doc-100", Name: "Solo", Bio: "minimal corpus", Category: "misc", Region: "Laos"},
	})
	if e.CorpusSize() != 1 {
		t.Fatalf("expected 1 document after refresh, got %d", e.CorpusSize())
	}

	hits := e.Search(context.Background(), "minimal corpus", SearchParams{TopK: 5})
	if len(hits) != 1 || hits[0].ID != "doc-100" {
		t.Errorf("expected only the new generation to be searchable, got %+v", hits)
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	got := tokenize("Beauty & Skincare: tips, for 2026!")
	want := []string{"beauty", "skincare", "tips", "for", "2026"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize = %v, want %v", got, want)
	}
}

func TestParseRerankResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    map[string]float64
		wantErr bool
	}{
		{
			name:  "bare json",
			input: `{"doc-001": 0.9, "doc-002": 0.1}`,
			want:  map[string]float64{"doc-001": 0.9, "doc-002": 0.1},
		},
		{
			name:  "fenced json with prose",
			input: "Here are the scores:\n```json\n{\"doc-001\": 0.5}\n```",
			want:  map[string]float64{"doc-001": 0.5},
		},
		{name: "no object", input: "cannot score these", wantErr: true},
		{name: "malformed", input: `{"doc-001": "high"}`, wantErr: true},
		{name: "empty object", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseRerankResponse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseRerankResponse = %v, want %v", got, tt.want)
			}
		})
	}
}
