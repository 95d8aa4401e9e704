// Package fsrs implements a compact FSRS (Free Spaced Repetition
// Scheduler) kernel. The engine treats it as a black box behind the
// schedule(state, rating) -> state' contract.
package fsrs

import (
	"math"
	"time"
)

// Rating is the review grade derived from an evaluation.
type Rating string

const (
	RatingForgot Rating = "forgot"
	RatingHard   Rating = "hard"
	RatingGood   Rating = "good"
	RatingEasy   Rating = "easy"
)

// ValidRating reports whether r is one of the four recognized grades.
func ValidRating(r Rating) bool {
	switch r {
	case RatingForgot, RatingHard, RatingGood, RatingEasy:
		return true
	}
	return false
}

// Phase is the FSRS memory phase of a point.
type Phase string

const (
	PhaseNew        Phase = "new"
	PhaseLearning   Phase = "learning"
	PhaseReview     Phase = "review"
	PhaseRelearning Phase = "relearning"
)

// State is the scheduling state carried by every recall point.
type State struct {
	Difficulty float64    `json:"difficulty"`
	Stability  float64    `json:"stability"`
	Due        time.Time  `json:"due"`
	LastReview *time.Time `json:"last_review,omitempty"`
	Reps       int        `json:"reps"`
	Lapses     int        `json:"lapses"`
	Phase      Phase      `json:"state"`
}

// FSRS-4.5 default weights.
var weights = [17]float64{
	0.4872, 1.4003, 3.7145, 13.8206,
	5.1618, 1.2298, 0.8975, 0.031,
	1.6474, 0.1367, 1.0461, 2.1072,
	0.0793, 0.3246, 1.587, 0.2272, 2.8755,
}

const (
	requestedRetention = 0.9
	// decay/factor pair from the FSRS forgetting curve R = (1 + t/(9S))^-1.
	intervalFactor = 9.0
	maxIntervalDay = 365.0
	minDifficulty  = 1.0
	maxDifficulty  = 10.0
)

// NewState returns the initial state for a freshly authored point,
// due immediately.
func NewState(now time.Time) State {
	return State{
		Difficulty: 5.0,
		Stability:  1.0,
		Due:        now,
		Reps:       0,
		Lapses:     0,
		Phase:      PhaseNew,
	}
}

// Schedule applies a review grade to the state and returns the successor
// state with an updated due date. The input state is not mutated.
func Schedule(st State, rating Rating, now time.Time) State {
	next := st
	grade := gradeOf(rating)

	elapsedDays := 0.0
	if st.LastReview != nil {
		elapsedDays = math.Max(0, now.Sub(*st.LastReview).Hours()/24)
	}

	if st.Phase == PhaseNew || st.Reps == 0 {
		next.Stability = initialStability(grade)
		next.Difficulty = initialDifficulty(grade)
	} else {
		retrievability := math.Pow(1+elapsedDays/(intervalFactor*st.Stability), -1)
		next.Difficulty = nextDifficulty(st.Difficulty, grade)
		if rating == RatingForgot {
			next.Stability = forgetStability(st.Difficulty, st.Stability, retrievability)
		} else {
			next.Stability = recallStability(st.Difficulty, st.Stability, retrievability, grade)
		}
	}

	next.Reps = st.Reps + 1
	if rating == RatingForgot {
		next.Lapses = st.Lapses + 1
	}
	next.Phase = nextPhase(st.Phase, rating)

	reviewedAt := now
	next.LastReview = &reviewedAt
	next.Due = now.Add(interval(next.Stability))

	return next
}

// gradeOf maps a rating to the 1-4 FSRS grade scale.
func gradeOf(r Rating) float64 {
	switch r {
	case RatingForgot:
		return 1
	case RatingHard:
		return 2
	case RatingGood:
		return 3
	case RatingEasy:
		return 4
	}
	return 3
}

func initialStability(grade float64) float64 {
	s := weights[int(grade)-1]
	return math.Max(s, 0.1)
}

func initialDifficulty(grade float64) float64 {
	d := weights[4] - (grade-3)*weights[5]
	return clampDifficulty(d)
}

func nextDifficulty(d, grade float64) float64 {
	nd := d - weights[6]*(grade-3)
	// mean reversion toward the initial "good" difficulty
	nd = weights[7]*initialDifficulty(3) + (1-weights[7])*nd
	return clampDifficulty(nd)
}

func recallStability(d, s, r, grade float64) float64 {
	hardPenalty := 1.0
	if grade == 2 {
		hardPenalty = weights[15]
	}
	easyBonus := 1.0
	if grade == 4 {
		easyBonus = weights[16]
	}
	growth := math.Exp(weights[8]) *
		(11 - d) *
		math.Pow(s, -weights[9]) *
		(math.Exp(weights[10]*(1-r)) - 1) *
		hardPenalty * easyBonus
	return s * (1 + growth)
}

func forgetStability(d, s, r float64) float64 {
	ns := weights[11] *
		math.Pow(d, -weights[12]) *
		(math.Pow(s+1, weights[13]) - 1) *
		math.Exp(weights[14]*(1-r))
	return math.Max(0.1, math.Min(ns, s))
}

func nextPhase(p Phase, r Rating) Phase {
	if r == RatingForgot {
		if p == PhaseNew || p == PhaseLearning {
			return PhaseLearning
		}
		return PhaseRelearning
	}
	return PhaseReview
}

// interval converts stability into the next review delay, capped at a year.
func interval(stability float64) time.Duration {
	days := stability * intervalFactor * (1/requestedRetention - 1)
	days = math.Max(1.0/24, math.Min(days, maxIntervalDay))
	return time.Duration(days * 24 * float64(time.Hour))
}

func clampDifficulty(d float64) float64 {
	return math.Max(minDifficulty, math.Min(maxDifficulty, d))
}
