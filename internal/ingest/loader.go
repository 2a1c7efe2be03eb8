// Nivox Intel - Influencer Campaign Intelligence and Strategy Service
// Copyright 2026 Nivox AI
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nivoxai/nivox-intel

// Package ingest loads influencer profiles from CSV sources or the built-in
// sample set and feeds the retrieval corpus on a periodic schedule.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nivoxai/nivox-intel/internal/models"
)

// LoadCSVProfiles reads influencer profiles from a CSV file with a header
// row. Unknown columns are ignored; missing optional columns fall back to
// defaults matching the seed profiles.
func LoadCSVProfiles(path string) ([]models.InfluencerProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profiles CSV: %w", err)
	}
	defer f.Close()

	return parseCSVProfiles(f)
}

// parseCSVProfiles parses profiles from CSV content.
func parseCSVProfiles(r io.Reader) ([]models.InfluencerProfile, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}
	if _, ok := columns["id"]; !ok {
		return nil, fmt.Errorf("profiles CSV is missing the id column")
	}

	var profiles []models.InfluencerProfile
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record at line %d: %w", line, err)
		}

		profile, err := profileFromRecord(columns, record)
		if err != nil {
			return nil, fmt.Errorf("invalid profile at line %d: %w", line, err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

// profileFromRecord maps one CSV record to an InfluencerProfile.
func profileFromRecord(columns map[string]int, record []string) (models.InfluencerProfile, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	id := field("id")
	if id == "" {
		return models.InfluencerProfile{}, fmt.Errorf("id must not be empty")
	}

	followers := int64(0)
	if v := field("followers"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return models.InfluencerProfile{}, fmt.Errorf("bad followers value %q: %w", v, err)
		}
		followers = parsed
	}

	engagement := 0.0
	if v := field("engagement_rate"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return models.InfluencerProfile{}, fmt.Errorf("bad engagement_rate value %q: %w", v, err)
		}
		engagement = parsed
	}

	languages := []string{"English"}
	if v := field("languages"); v != "" {
		languages = nil
		for _, lang := range strings.Split(v, ",") {
			if lang = strings.TrimSpace(lang); lang != "" {
				languages = append(languages, lang)
			}
		}
	}

	profile := models.InfluencerProfile{
		ID:               id,
		Name:             defaultString(field("name"), "Unknown"),
		Platform:         defaultString(field("platform"), "Instagram"),
		Category:         defaultString(field("category"), "lifestyle"),
		Followers:        followers,
		EngagementRate:   engagement,
		Region:           defaultString(field("region"), "Global"),
		Languages:        languages,
		AudienceAgeRange: defaultString(field("audience_age_range"), "18-34"),
		Bio:              field("bio"),
		Source:           field("source"),
		LastCrawledAt:    parseTimestamp(field("last_crawled_at")),
		StatsUpdatedAt:   parseTimestamp(field("stats_updated_at")),
	}
	return profile, nil
}

// parseTimestamp parses an RFC 3339 timestamp, tolerating a missing zone.
// Unparseable values are dropped rather than failing the whole row.
func parseTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, value); err == nil {
			ts = ts.UTC()
			return &ts
		}
	}
	return nil
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// DocumentsFromProfiles projects profiles into the retrieval corpus shape.
func DocumentsFromProfiles(profiles []models.InfluencerProfile) []models.IndexedDocument {
	docs := make([]models.IndexedDocument, len(profiles))
	for i, p := range profiles {
		docs[i] = models.IndexedDocument{
			ID:       p.ID,
			Name:     p.Name,
			Bio:      p.Bio,
			Category: p.Category,
			Region:   p.Region,
		}
	}
	return docs
}
