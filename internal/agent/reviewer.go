// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package agent

import (
	"fmt"
	"strings"
)

// forbiddenClaims is the fixed lexicon of absolute and superlative guarantee
// language that must never appear in a published draft. Matching is a
// case-insensitive substring check.
var forbiddenClaims = []string{
	"guaranteed",
	"guarantee",
	"100% results",
	"no risk",
	"best in the world",
	"always works",
	"instant virality",
}

// ReviewDraft validates a drafted narrative against campaign constraints.
// The target region and age range must appear verbatim when non-empty, and
// no forbidden claim may appear. All violations are collected, not just the
// first.
func ReviewDraft(draft string, c Constraints) (bool, []string) {
	var issues []string

	// Issue text deliberately omits the missing strings themselves, so the
	// repair step's appended fix list cannot satisfy review by quoting them.
	if c.Region != "" && !strings.Contains(draft, c.Region) {
		issues = append(issues, "Draft must mention the campaign target region")
	}
	if c.AgeRange != "" && !strings.Contains(draft, c.AgeRange) {
		issues = append(issues, "Draft must mention the campaign target age range")
	}

	lowered := strings.ToLower(draft)
	for _, claim := range forbiddenClaims {
		if strings.Contains(lowered, claim) {
			issues = append(issues, fmt.Sprintf("Draft contains forbidden claim %q", claim))
		}
	}

	return len(issues) == 0, issues
}
