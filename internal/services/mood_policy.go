package services

import (
	"strings"

	"github.com/vytalhealth/vytal/internal/models"
)

const (
	MoodBucketHappy    = "Happy"
	MoodBucketModerate = "Moderate"
	MoodBucketLow      = "Low"
)

type MoodBucket struct {
	Name  string
	Color string
}

// MoodPolicy assigns moods to a fixed, ordered set of buckets. Labels match
// case-insensitively; anything unmapped goes to Default.
type MoodPolicy struct {
	Name    string
	Buckets []MoodBucket
	Labels  map[string]string
	Ratings map[int]string
	Default string
}

// ThreeWayMoodPolicy:
//
//	Excellent, Good, 5, 4  -> Happy
//	Fair, 3                -> Moderate
//	Poor, 2, 1             -> Low
//	anything else          -> Low
var ThreeWayMoodPolicy = MoodPolicy{
	Name: "three-way",
	Buckets: []MoodBucket{
		{Name: MoodBucketHappy, Color: "#10b981"},
		{Name: MoodBucketModerate, Color: "#f59e0b"},
		{Name: MoodBucketLow, Color: "#ef4444"},
	},
	Labels: map[string]string{
		"excellent": MoodBucketHappy,
		"good":      MoodBucketHappy,
		"fair":      MoodBucketModerate,
		"poor":      MoodBucketLow,
	},
	Ratings: map[int]string{
		5: MoodBucketHappy,
		4: MoodBucketHappy,
		3: MoodBucketModerate,
		2: MoodBucketLow,
		1: MoodBucketLow,
	},
	Default: MoodBucketLow,
}

// Bucket returns ok=false for an entry without a mood.
func (policy MoodPolicy) Bucket(mood models.Mood) (string, bool) {
	if !mood.IsSet() {
		return "", false
	}
	if mood.Label != "" {
		if bucket, ok := policy.Labels[strings.ToLower(strings.TrimSpace(mood.Label))]; ok {
			return bucket, true
		}
		return policy.Default, true
	}
	if bucket, ok := policy.Ratings[mood.Rating]; ok {
		return bucket, true
	}
	return policy.Default, true
}

type MoodSlice struct {
	Mood  string
	Count int
	Color string
}

// MoodDistribution counts entries per bucket in policy order. Every bucket
// is present even at zero.
func MoodDistribution(entries []models.DiaryEntry, policy MoodPolicy) []MoodSlice {
	counts := make(map[string]int, len(policy.Buckets))
	for _, entry := range entries {
		if bucket, ok := policy.Bucket(entry.Mood); ok {
			counts[bucket]++
		}
	}

	slices := make([]MoodSlice, 0, len(policy.Buckets))
	for _, bucket := range policy.Buckets {
		slices = append(slices, MoodSlice{
			Mood:  bucket.Name,
			Count: counts[bucket.Name],
			Color: bucket.Color,
		})
	}
	return slices
}
