// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

// Package evalmetrics provides offline ranking quality metrics for
// retrieval and recommendation evaluation runs.
package evalmetrics

import (
	"math"
	"sort"
)

// PrecisionAtK returns the fraction of the top k predictions that appear
// in the relevant set. The denominator is k, so short prediction lists
// are penalized.
func PrecisionAtK(relevant []string, predicted []string, k int) float64 {
	if k <= 0 {
		return 0
	}
	predK := headStrings(predicted, k)
	if len(predK) == 0 {
		return 0
	}
	truth := stringSet(relevant)
	hits := 0
	for _, id := range predK {
		if truth[id] {
			hits++
		}
	}
	return float64(hits) / float64(k)
}

// RecallAtK returns the fraction of the relevant set recovered within the
// top k predictions.
func RecallAtK(relevant []string, predicted []string, k int) float64 {
	truth := stringSet(relevant)
	if len(truth) == 0 {
		return 0
	}
	hits := 0
	for _, id := range headStrings(predicted, k) {
		if truth[id] {
			hits++
		}
	}
	return float64(hits) / float64(len(truth))
}

// DCGAtK computes the discounted cumulative gain over the first k
// relevance grades using a log2 position discount.
func DCGAtK(relevances []float64, k int) float64 {
	if k <= 0 {
		return 0
	}
	if k > len(relevances) {
		k = len(relevances)
	}
	score := 0.0
	for i := 0; i < k; i++ {
		score += relevances[i] / math.Log2(float64(i+2))
	}
	return score
}

// NDCGAtK normalizes the DCG of the predicted ordering against the DCG
// of the ideal ordering. relevances holds the graded relevance of each
// candidate; order holds candidate indexes in predicted rank order.
// Indexes outside the relevance slice contribute zero gain.
func NDCGAtK(relevances []float64, order []int, k int) float64 {
	if len(relevances) == 0 {
		return 0
	}
	ranked := make([]float64, 0, len(order))
	for _, idx := range order {
		if idx >= 0 && idx < len(relevances) {
			ranked = append(ranked, relevances[idx])
		} else {
			ranked = append(ranked, 0)
		}
	}

	ideal := make([]float64, len(relevances))
	copy(ideal, relevances)
	sortDescending(ideal)

	idcg := DCGAtK(ideal, k)
	if idcg == 0 {
		return 0
	}
	return DCGAtK(ranked, k) / idcg
}

// MeanReciprocalRank returns 1/rank of the first relevant prediction, or
// zero if no prediction is relevant.
func MeanReciprocalRank(relevant []string, predicted []string) float64 {
	truth := stringSet(relevant)
	for i, id := range predicted {
		if truth[id] {
			return 1.0 / float64(i+1)
		}
	}
	return 0
}

func stringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func headStrings(values []string, k int) []string {
	if k < 0 {
		k = 0
	}
	if k > len(values) {
		k = len(values)
	}
	return values[:k]
}

func sortDescending(values []float64) {
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))
}

// Summarize averages per-sample metric maps key by key and rounds each
// mean to four decimal places. Keys missing from a sample count as zero.
func Summarize(samples []map[string]float64, keys []string) map[string]float64 {
	summary := make(map[string]float64, len(keys))
	for _, key := range keys {
		summary[key] = 0
	}
	if len(samples) == 0 {
		return summary
	}
	for _, sample := range samples {
		for _, key := range keys {
			summary[key] += sample[key]
		}
	}
	n := float64(len(samples))
	for _, key := range keys {
		summary[key] = math.Round(summary[key]/n*10000) / 10000
	}
	return summary
}
