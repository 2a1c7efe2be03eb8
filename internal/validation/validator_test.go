// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package validation

import (
	"strings"
	"testing"
)

type searchPayload struct {
	Query string `validate:"required"`
	TopK  int    `validate:"min=0,max=100"`
	Mode  string `validate:"omitempty,search_mode"`
}

type campaignPayload struct {
	BrandName      string  `validate:"required"`
	Goal           string  `validate:"required"`
	TargetAgeRange string  `validate:"omitempty,age_range"`
	Budget         float64 `validate:"omitempty,min=0"`
}

func TestValidateStructPasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload interface{}
	}{
		{"search with mode", &searchPayload{Query: "skincare", TopK: 5, Mode: "hybrid"}},
		{"search without mode", &searchPayload{Query: "skincare"}},
		{"campaign with age range", &campaignPayload{BrandName: "Luma", Goal: "launch", TargetAgeRange: "18-24"}},
		{"campaign minimal", &campaignPayload{BrandName: "Luma", Goal: "launch"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := ValidateStruct(tt.payload); err != nil {
				t.Errorf("expected valid payload, got: %v", err)
			}
		})
	}
}

func TestValidateStructFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload interface{}
		wantMsg string
	}{
		{"missing query", &searchPayload{TopK: 5}, "Query is required"},
		{"top_k too large", &searchPayload{Query: "q", TopK: 500}, "TopK must be at most 100"},
		{"bad mode", &searchPayload{Query: "q", Mode: "semantic"}, "vector, keyword, hybrid"},
		{"bad age range", &campaignPayload{BrandName: "b", Goal: "g", TargetAgeRange: "young"}, "age range like 18-24"},
		{"inverted age range", &campaignPayload{BrandName: "b", Goal: "g", TargetAgeRange: "30-18"}, "age range"},
		{"negative budget", &campaignPayload{BrandName: "b", Goal: "g", Budget: -1}, "Budget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.payload)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got: %v", tt.wantMsg, err)
			}
		})
	}
}

func TestIsValidAgeRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		valid bool
	}{
		{"18-24", true},
		{"0-99", true},
		{"25 - 34", true},
		{"24-18", false},
		{"18", false},
		{"18-24-30", false},
		{"a-b", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := IsValidAgeRange(tt.input); got != tt.valid {
				t.Errorf("IsValidAgeRange(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestToAPIErrorSingleAndMultiple(t *testing.T) {
	t.Parallel()

	single := ValidateStruct(&searchPayload{TopK: 5})
	if single == nil {
		t.Fatal("expected validation error")
	}
	apiErr := single.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR code, got %s", apiErr.Code)
	}
	if apiErr.Details["field"] != "Query" {
		t.Errorf("expected field detail Query, got %v", apiErr.Details["field"])
	}

	multi := ValidateStruct(&campaignPayload{TargetAgeRange: "bad"})
	if multi == nil {
		t.Fatal("expected validation error")
	}
	apiErr = multi.ToAPIError()
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("expected fields detail for multiple errors")
	}
	if !strings.Contains(apiErr.Message, ";") {
		t.Errorf("expected combined message, got %s", apiErr.Message)
	}
}
