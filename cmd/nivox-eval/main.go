// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

// Package main is the offline retrieval evaluation tool.
//
// It replays a JSONL dataset of labeled queries against the retrieval
// engine and reports precision, recall, NDCG, and MRR per sample plus
// rounded means. The corpus comes from the built-in seed documents or a
// profiles CSV.
//
// Dataset format, one sample per line:
//
//	{"id": "q-001", "query": "skincare glow routines", "relevant_ids": ["doc-001", "doc-004"]}
//
// Example:
//
//	nivox-eval --dataset eval/queries.jsonl --k 5,10 --mode hybrid
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/nivoxai/nivox-intel/internal/config"
	"github.com/nivoxai/nivox-intel/internal/evalmetrics"
	"github.com/nivoxai/nivox-intel/internal/ingest"
	"github.com/nivoxai/nivox-intel/internal/logging"
	"github.com/nivoxai/nivox-intel/internal/models"
	"github.com/nivoxai/nivox-intel/internal/retrieval"
)

// evalSample is one labeled query from the dataset.
type evalSample struct {
	ID          string   `json:"id"`
	Query       string   `json:"query"`
	RelevantIDs []string `json:"relevant_ids"`
}

// sampleResult carries per-sample metric values keyed by metric name.
type sampleResult struct {
	ID      string             `json:"id"`
	Metrics map[string]float64 `json:"metrics"`
}

// report is the JSON document written to stdout.
type report struct {
	Task     string             `json:"task"`
	Mode     string             `json:"mode"`
	Rerank   bool               `json:"rerank"`
	K        []int              `json:"k"`
	Dataset  string             `json:"dataset"`
	Corpus   int                `json:"corpus_documents"`
	Summary  map[string]float64 `json:"summary"`
	Samples  []sampleResult     `json:"samples"`
	RunAtUTC string             `json:"run_at_utc"`
}

func main() {
	datasetPath := flag.String("dataset", "", "Path to JSONL dataset (required)")
	kValues := flag.String("k", "5,10", "Comma-separated cutoff values")
	mode := flag.String("mode", "hybrid", "Retrieval mode: vector, keyword, or hybrid")
	rerank := flag.Bool("rerank", false, "Enable model-based re-ranking (requires GENAI_API_KEY)")
	candidateK := flag.Int("candidate-k", 0, "Candidate pool size before re-ranking (0 selects the default)")
	profilesPath := flag.String("profiles", "", "Optional profiles CSV; defaults to the built-in seed corpus")
	flag.Parse()

	logging.Init(logging.Config{Level: "warn", Format: "console"})

	if *datasetPath == "" {
		fmt.Fprintln(os.Stderr, "nivox-eval: --dataset is required")
		flag.Usage()
		os.Exit(2)
	}

	ks, err := parseKValues(*kValues)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nivox-eval: %v\n", err)
		os.Exit(2)
	}

	samples, err := loadDataset(*datasetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nivox-eval: %v\n", err)
		os.Exit(1)
	}

	engine, corpusSize, err := buildEngine(*profilesPath, *rerank)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nivox-eval: %v\n", err)
		os.Exit(1)
	}

	maxK := ks[len(ks)-1]
	keys := metricKeys(ks)

	results := make([]sampleResult, 0, len(samples))
	perSample := make([]map[string]float64, 0, len(samples))
	for _, sample := range samples {
		hits := engine.Search(context.Background(), sample.Query, retrieval.SearchParams{
			TopK:       maxK,
			Mode:       *mode,
			Rerank:     *rerank,
			CandidateK: *candidateK,
		})
		metrics := scoreSample(sample, hits, ks)
		results = append(results, sampleResult{ID: sample.ID, Metrics: metrics})
		perSample = append(perSample, metrics)
	}

	out := report{
		Task:     "retrieval",
		Mode:     *mode,
		Rerank:   *rerank,
		K:        ks,
		Dataset:  *datasetPath,
		Corpus:   corpusSize,
		Summary:  evalmetrics.Summarize(perSample, keys),
		Samples:  results,
		RunAtUTC: time.Now().UTC().Format(time.RFC3339),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "nivox-eval: failed to write report: %v\n", err)
		os.Exit(1)
	}
}

// scoreSample computes per-sample metrics against the predicted ranking.
// NDCG uses binary relevance of the predicted documents in rank order.
func scoreSample(sample evalSample, hits []models.SearchHit, ks []int) map[string]float64 {
	predicted := make([]string, len(hits))
	for i, hit := range hits {
		predicted[i] = hit.ID
	}

	relevantSet := make(map[string]bool, len(sample.RelevantIDs))
	for _, id := range sample.RelevantIDs {
		relevantSet[id] = true
	}
	relevances := make([]float64, len(predicted))
	order := make([]int, len(predicted))
	for i, id := range predicted {
		if relevantSet[id] {
			relevances[i] = 1.0
		}
		order[i] = i
	}

	metrics := map[string]float64{
		"mrr": evalmetrics.MeanReciprocalRank(sample.RelevantIDs, predicted),
	}
	for _, k := range ks {
		metrics[fmt.Sprintf("precision@%d", k)] = evalmetrics.PrecisionAtK(sample.RelevantIDs, predicted, k)
		metrics[fmt.Sprintf("recall@%d", k)] = evalmetrics.RecallAtK(sample.RelevantIDs, predicted, k)
		metrics[fmt.Sprintf("ndcg@%d", k)] = evalmetrics.NDCGAtK(relevances, order, k)
	}
	return metrics
}

func metricKeys(ks []int) []string {
	keys := []string{"mrr"}
	for _, k := range ks {
		keys = append(keys,
			fmt.Sprintf("precision@%d", k),
			fmt.Sprintf("recall@%d", k),
			fmt.Sprintf("ndcg@%d", k),
		)
	}
	return keys
}

// parseKValues parses the --k flag into ascending unique cutoffs.
func parseKValues(raw string) ([]int, error) {
	var ks []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, err := strconv.Atoi(part)
		if err != nil || k <= 0 {
			return nil, fmt.Errorf("invalid k value %q", part)
		}
		ks = append(ks, k)
	}
	if len(ks) == 0 {
		return nil, fmt.Errorf("at least one k value is required")
	}
	for i := 1; i < len(ks); i++ {
		if ks[i] < ks[i-1] {
			return nil, fmt.Errorf("k values must be ascending: %s", raw)
		}
	}
	return ks, nil
}

// loadDataset reads a JSONL file of evaluation samples.
func loadDataset(path string) ([]evalSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	var samples []evalSample
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var sample evalSample
		if err := json.Unmarshal([]byte(text), &sample); err != nil {
			return nil, fmt.Errorf("bad dataset record at line %d: %w", line, err)
		}
		if sample.Query == "" {
			return nil, fmt.Errorf("dataset record at line %d has no query", line)
		}
		if sample.ID == "" {
			sample.ID = fmt.Sprintf("sample-%d", line)
		}
		samples = append(samples, sample)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("dataset %s contains no samples", path)
	}
	return samples, nil
}

// buildEngine populates a retrieval engine from the CSV or seed corpus.
func buildEngine(profilesPath string, rerank bool) (*retrieval.Engine, int, error) {
	cfg := config.RetrievalConfig{
		DefaultMode:         "hybrid",
		VectorWeight:        0.6,
		KeywordWeight:       0.4,
		CandidateMultiplier: 3,
		RerankTimeout:       5 * time.Second,
	}

	var reranker retrieval.Reranker
	if rerank {
		apiKey := os.Getenv("GENAI_API_KEY")
		if apiKey == "" {
			return nil, 0, fmt.Errorf("--rerank requires GENAI_API_KEY")
		}
		genaiReranker, err := retrieval.NewGenAIReranker(apiKey, "gemini-2.0-flash")
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create reranker: %w", err)
		}
		reranker = genaiReranker
	}

	docs := ingest.SampleDocuments()
	if profilesPath != "" {
		profiles, err := ingest.LoadCSVProfiles(profilesPath)
		if err != nil {
			return nil, 0, err
		}
		docs = ingest.DocumentsFromProfiles(profiles)
	}

	engine := retrieval.NewEngine(cfg, reranker)
	engine.Refresh(docs)
	return engine, len(docs), nil
}
