package fsrs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := NewState(now)

	assert.Equal(t, 5.0, st.Difficulty)
	assert.Equal(t, 1.0, st.Stability)
	assert.Equal(t, now, st.Due)
	assert.Equal(t, PhaseNew, st.Phase)
	assert.Zero(t, st.Reps)
	assert.Zero(t, st.Lapses)
	assert.Nil(t, st.LastReview)
}

func TestSchedule_FirstReview(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	st := NewState(now)

	for _, tc := range []struct {
		rating Rating
		phase  Phase
		lapses int
	}{
		{RatingForgot, PhaseLearning, 1},
		{RatingHard, PhaseReview, 0},
		{RatingGood, PhaseReview, 0},
		{RatingEasy, PhaseReview, 0},
	} {
		t.Run(string(tc.rating), func(t *testing.T) {
			next := Schedule(st, tc.rating, now)
			assert.Equal(t, 1, next.Reps)
			assert.Equal(t, tc.lapses, next.Lapses)
			assert.Equal(t, tc.phase, next.Phase)
			require.NotNil(t, next.LastReview)
			assert.Equal(t, now, *next.LastReview)
			assert.True(t, next.Due.After(now), "due must move forward")
		})
	}
}

func TestSchedule_DoesNotMutateInput(t *testing.T) {
	now := time.Now()
	st := NewState(now)
	_ = Schedule(st, RatingGood, now)

	assert.Equal(t, NewState(now), st)
}

func TestSchedule_IntervalOrdering(t *testing.T) {
	now := time.Now()
	st := NewState(now)

	hard := Schedule(st, RatingHard, now)
	good := Schedule(st, RatingGood, now)
	easy := Schedule(st, RatingEasy, now)

	assert.True(t, good.Due.After(hard.Due), "good schedules further out than hard")
	assert.True(t, easy.Due.After(good.Due), "easy schedules further out than good")
}

func TestSchedule_StabilityGrowsAcrossSuccessfulReviews(t *testing.T) {
	now := time.Now()
	st := NewState(now)

	st = Schedule(st, RatingGood, now)
	first := st.Stability

	// Review again when the point comes due.
	st = Schedule(st, RatingGood, st.Due)
	assert.Greater(t, st.Stability, first)
	assert.Equal(t, 2, st.Reps)
}

func TestSchedule_ForgotReducesStabilityAndCountsLapse(t *testing.T) {
	now := time.Now()
	st := NewState(now)
	st = Schedule(st, RatingEasy, now)
	stable := st.Stability

	st = Schedule(st, RatingForgot, st.Due)
	assert.Less(t, st.Stability, stable)
	assert.Equal(t, 1, st.Lapses)
	assert.Equal(t, PhaseRelearning, st.Phase)
}

func TestSchedule_DifficultyStaysClamped(t *testing.T) {
	now := time.Now()
	st := NewState(now)
	for i := 0; i < 30; i++ {
		st = Schedule(st, RatingForgot, st.Due)
		require.LessOrEqual(t, st.Difficulty, 10.0)
		require.GreaterOrEqual(t, st.Difficulty, 1.0)
	}
	for i := 0; i < 30; i++ {
		st = Schedule(st, RatingEasy, st.Due)
		require.LessOrEqual(t, st.Difficulty, 10.0)
		require.GreaterOrEqual(t, st.Difficulty, 1.0)
	}
}

func TestValidRating(t *testing.T) {
	assert.True(t, ValidRating(RatingForgot))
	assert.True(t, ValidRating(RatingEasy))
	assert.False(t, ValidRating(Rating("again")))
	assert.False(t, ValidRating(Rating("")))
}
