package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/recallkit/recallkit/pkg/fsrs"
)

func TestDeriveRating(t *testing.T) {
	cases := []struct {
		name       string
		success    bool
		confidence float64
		want       fsrs.Rating
	}{
		{"success high", true, 0.92, fsrs.RatingEasy},
		{"success easy boundary", true, 0.9, fsrs.RatingEasy},
		{"success mid", true, 0.81, fsrs.RatingGood},
		{"success good boundary", true, 0.7, fsrs.RatingGood},
		{"success low", true, 0.65, fsrs.RatingHard},
		{"failure confident", false, 0.8, fsrs.RatingForgot},
		{"failure boundary", false, 0.7, fsrs.RatingForgot},
		{"failure unsure", false, 0.4, fsrs.RatingHard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, deriveRating(tc.success, tc.confidence))
		})
	}
}

func TestResolveRatingPrefersValidSuggestion(t *testing.T) {
	got := resolveRating(&Evaluation{Success: true, Confidence: 0.95, SuggestedRating: "hard"})
	assert.Equal(t, fsrs.RatingHard, got)
}

func TestResolveRatingNoSuggestionUsesPrimaryTable(t *testing.T) {
	got := resolveRating(&Evaluation{Success: true, Confidence: 0.95})
	assert.Equal(t, fsrs.RatingEasy, got)

	got = resolveRating(&Evaluation{Success: false, Confidence: 0.8})
	assert.Equal(t, fsrs.RatingForgot, got)
}

func TestResolveRatingUnrecognizedSuggestionFallsBackToBands(t *testing.T) {
	cases := []struct {
		confidence float64
		want       fsrs.Rating
	}{
		{0.9, fsrs.RatingEasy},
		{0.85, fsrs.RatingEasy},
		{0.7, fsrs.RatingGood},
		{0.6, fsrs.RatingGood},
		{0.4, fsrs.RatingHard},
		{0.3, fsrs.RatingHard},
		{0.1, fsrs.RatingForgot},
	}
	for _, tc := range cases {
		got := resolveRating(&Evaluation{Success: true, Confidence: tc.confidence, SuggestedRating: "amazing"})
		assert.Equal(t, tc.want, got, "confidence %v", tc.confidence)
	}
}
