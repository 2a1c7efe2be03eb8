// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

package ingest

import (
	"time"

	"github.com/nivoxai/nivox-intel/internal/models"
)

// SampleCampaign returns the demo campaign used by the sample recommendation
// endpoint.
func SampleCampaign() models.Campaign {
	return models.Campaign{
		ID:             "camp-001",
		BrandName:      "Luma Beauty",
		Goal:           "Launch a summer skincare line",
		TargetRegion:   "Thailand",
		TargetAgeRange: "18-24",
		Budget:         25000.0,
		Description:    "Skincare and beauty focus for humid climates with glow routines.",
	}
}

// SampleInfluencers returns the demo influencer set used by the sample
// recommendation endpoint.
func SampleInfluencers() []models.InfluencerProfile {
	return []models.InfluencerProfile{
		{
			ID: "inf-001", Name: "Nina Glow", Platform: "Instagram", Category: "beauty",
			Followers: 120000, EngagementRate: 0.062, Region: "Thailand",
			Languages: []string{"Thai", "English"}, AudienceAgeRange: "18-24",
			Bio: "Beauty creator sharing skincare routines and summer glow tips.",
		},
		{
			ID: "inf-002", Name: "Kai Fit", Platform: "TikTok", Category: "fitness",
			Followers: 90000, EngagementRate: 0.045, Region: "Singapore",
			Languages: []string{"English", "Mandarin"}, AudienceAgeRange: "25-34",
			Bio: "Fitness coach with a focus on wellness and outdoor workouts.",
		},
		{
			ID: "inf-003", Name: "Mina Style", Platform: "YouTube", Category: "fashion",
			Followers: 250000, EngagementRate: 0.038, Region: "Thailand",
			Languages: []string{"Thai"}, AudienceAgeRange: "18-24",
			Bio: "Fashion hauls and beauty collaborations across Asia.",
		},
		{
			ID: "inf-004", Name: "Ari Skin", Platform: "Instagram", Category: "skincare",
			Followers: 54000, EngagementRate: 0.072, Region: "Vietnam",
			Languages: []string{"Vietnamese", "English"}, AudienceAgeRange: "18-24",
			Bio: "Skincare reviews, ingredient deep dives, and glow routines.",
		},
		{
			ID: "inf-005", Name: "Luca Travel", Platform: "TikTok", Category: "travel",
			Followers: 180000, EngagementRate: 0.028, Region: "Italy",
			Languages: []string{"Italian", "English"}, AudienceAgeRange: "25-34",
			Bio: "Travel vlogs with a focus on coastal destinations.",
		},
		{
			ID: "inf-006", Name: "Somi Care", Platform: "Instagram", Category: "beauty",
			Followers: 75000, EngagementRate: 0.055, Region: "Thailand",
			Languages: []string{"Thai", "English"}, AudienceAgeRange: "18-24",
			Bio: "Daily skincare habits and product spotlights for humid weather.",
		},
	}
}

// SampleDocuments returns the built-in retrieval corpus used when no CSV
// source is configured.
func SampleDocuments() []models.IndexedDocument {
	return []models.IndexedDocument{
		{
			ID: "doc-001", Name: "Nina Glow", Category: "beauty", Region: "Thailand",
			Bio: "Skincare creator sharing humid-weather routines, glass skin tips, and product reviews.",
		},
		{
			ID: "doc-002", Name: "Ari Skin", Category: "skincare", Region: "Vietnam",
			Bio: "Ingredient-focused skincare deep dives with before-and-after routines for sensitive skin.",
		},
		{
			ID: "doc-003", Name: "Dex Plays", Category: "gaming", Region: "United States",
			Bio: "High-energy gaming streams, FPS tournaments, and gear reviews for competitive players.",
		},
		{
			ID: "doc-004", Name: "Maya Moves", Category: "fitness", Region: "Singapore",
			Bio: "Daily fitness programming, HIIT workouts, and wellness habits for busy professionals.",
		},
		{
			ID: "doc-005", Name: "Ravi Tech", Category: "tech", Region: "India",
			Bio: "Gadget reviews, AI productivity tips, and smart home setups for tech enthusiasts.",
		},
		{
			ID: "doc-006", Name: "Luca Trails", Category: "travel", Region: "Italy",
			Bio: "Adventure travel diaries with coastal hikes, drone shots, and creator gear breakdowns.",
		},
		{
			ID: "doc-007", Name: "Sori Eats", Category: "food", Region: "South Korea",
			Bio: "Food creator highlighting street eats, cafe openings, and culinary storytelling.",
		},
		{
			ID: "doc-008", Name: "Ivy Style", Category: "fashion", Region: "United Kingdom",
			Bio: "Sustainable fashion edits, capsule wardrobe advice, and seasonal styling tips.",
		},
	}
}

// seedProfiles builds the fallback profile set from the sample documents so a
// credential-free deployment still has a searchable corpus. The stats
// timestamps are set to load time, marking the profiles fresh.
func seedProfiles(now time.Time) []models.InfluencerProfile {
	docs := SampleDocuments()
	profiles := make([]models.InfluencerProfile, len(docs))
	for i, d := range docs {
		ts := now
		profiles[i] = models.InfluencerProfile{
			ID:               d.ID,
			Name:             d.Name,
			Platform:         "Instagram",
			Category:         d.Category,
			Followers:        0,
			EngagementRate:   0,
			Region:           d.Region,
			Languages:        []string{"English"},
			AudienceAgeRange: "18-34",
			Bio:              d.Bio,
			Source:           "seed",
			LastCrawledAt:    &ts,
			StatsUpdatedAt:   &ts,
		}
	}
	return profiles
}
