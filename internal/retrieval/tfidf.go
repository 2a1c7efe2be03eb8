// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package retrieval

import (
	"math"
	"strings"
	"unicode"
)

// tfidfIndex is a term-frequency/inverse-document-frequency vector space over
// the corpus. Document vectors are L2-normalized at build time so query
// scoring reduces to a sparse dot product.
type tfidfIndex struct {
	idf     map[string]float64
	vectors []map[string]float64 // one normalized sparse vector per document
}

// tokenize lowercases the text and splits on any non-alphanumeric rune.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// termFrequencies counts token occurrences.
func termFrequencies(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	return tf
}

// buildTFIDFIndex builds the vector-signal index from one tokenized view of
// the corpus. docTexts holds one pre-joined text per document.
func buildTFIDFIndex(docTexts []string) *tfidfIndex {
	n := len(docTexts)

	docTokens := make([][]string, n)
	df := make(map[string]float64)
	for i, text := range docTexts {
		docTokens[i] = tokenize(text)
		seen := make(map[string]bool)
		for _, tok := range docTokens[i] {
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}

	// Smoothed IDF keeps weights positive and finite for terms present in
	// every document.
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log(float64(n+1)/(count+1)) + 1
	}

	vectors := make([]map[string]float64, n)
	for i, tokens := range docTokens {
		vectors[i] = normalizeVector(weightVector(termFrequencies(tokens), idf))
	}

	return &tfidfIndex{idf: idf, vectors: vectors}
}

// weightVector multiplies term frequencies by IDF weights. Terms outside the
// vocabulary are dropped.
func weightVector(tf map[string]float64, idf map[string]float64) map[string]float64 {
	weighted := make(map[string]float64, len(tf))
	for term, freq := range tf {
		if w, ok := idf[term]; ok {
			weighted[term] = freq * w
		}
	}
	return weighted
}

// normalizeVector L2-normalizes a sparse vector in place and returns it.
func normalizeVector(v map[string]float64) map[string]float64 {
	var sumSq float64
	for _, w := range v {
		sumSq += w * w
	}
	if sumSq == 0 {
		return v
	}
	norm := math.Sqrt(sumSq)
	for term, w := range v {
		v[term] = w / norm
	}
	return v
}

// score computes cosine similarity between the query and every document.
// Returns one score per document in corpus order.
func (idx *tfidfIndex) score(queryTokens []string) []float64 {
	query := normalizeVector(weightVector(termFrequencies(queryTokens), idx.idf))

	scores := make([]float64, len(idx.vectors))
	for i, doc := range idx.vectors {
		var dot float64
		for term, qw := range query {
			if dw, ok := doc[term]; ok {
				dot += qw * dw
			}
		}
		scores[i] = dot
	}
	return scores
}
