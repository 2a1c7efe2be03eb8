// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package retrieval

import "math"

// keywordIndex is the keyword-signal view of the corpus. Unlike the vector
// signal it indexes the document name field and scores by an unnormalized
// term-weighted dot product, so longer matching documents legitimately score
// higher.
type keywordIndex struct {
	idf map[string]float64
	tfs []map[string]float64 // raw term frequencies per document
}

// buildKeywordIndex builds the keyword-signal index from one pre-joined text
// per document (name included).
func buildKeywordIndex(docTexts []string) *keywordIndex {
	n := len(docTexts)

	tfs := make([]map[string]float64, n)
	df := make(map[string]float64)
	for i, text := range docTexts {
		tfs[i] = termFrequencies(tokenize(text))
		for term := range tfs[i] {
			df[term]++
		}
	}

	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log(float64(n+1)/(count+1)) + 1
	}

	return &keywordIndex{idf: idf, tfs: tfs}
}

// score computes the unnormalized term-weighted dot product between the query
// and every document. Returns one score per document in corpus order.
func (idx *keywordIndex) score(queryTokens []string) []float64 {
	query := termFrequencies(queryTokens)

	scores := make([]float64, len(idx.tfs))
	for i, docTF := range idx.tfs {
		var sum float64
		for term, qf := range query {
			w, ok := idx.idf[term]
			if !ok {
				continue
			}
			if df, ok := docTF[term]; ok {
				sum += qf * df * w * w
			}
		}
		scores[i] = sum
	}
	return scores
}
