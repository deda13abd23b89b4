// Package progress computes the derived metrics shown on the dashboard and
// progress screens: weight deltas and trends, logging streaks, BMI and the
// synthetic body-fat and glucose estimates.
//
// Everything here is a deterministic pure function of its inputs, recomputed
// per render by the host. No state, no store access.
package progress

import (
	"slices"
	"time"

	"github.com/vitalabs/vitakit/pkg/gate"
)

// WeightEntry is a single weight log row.
type WeightEntry struct {
	Day gate.Day
	Kg  float64
}

// DayTotals aggregates the nutrients of one calendar day.
type DayTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Sugar    float64
}

// MealNutrients is the nutrition snapshot of a single logged meal.
type MealNutrients struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Sugar    float64
}

// SumMeals folds logged meals into a day's nutrient totals.
func SumMeals(meals []MealNutrients) DayTotals {
	var t DayTotals
	for _, m := range meals {
		t.Calories += m.Calories
		t.Protein += m.Protein
		t.Carbs += m.Carbs
		t.Fat += m.Fat
		t.Sugar += m.Sugar
	}
	return t
}

// WeightDelta returns the change from the earliest to the latest entry.
// Entries may arrive in any order; zero entries yield zero delta.
func WeightDelta(entries []WeightEntry) float64 {
	if len(entries) < 2 {
		return 0
	}
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b WeightEntry) int {
		return cmpDay(a.Day, b.Day)
	})
	return sorted[len(sorted)-1].Kg - sorted[0].Kg
}

// MovingAverage smooths a series with a trailing window. The first window-1
// points average over the shorter available prefix, so output length equals
// input length.
func MovingAverage(values []float64, window int) []float64 {
	if window < 1 || len(values) == 0 {
		return nil
	}
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		n := min(i+1, window)
		out[i] = sum / float64(n)
	}
	return out
}

// Streaks returns the current and longest runs of consecutive logged days.
// The current streak counts back from today (or yesterday, so a streak is not
// broken before the user had a chance to log today).
func Streaks(days []gate.Day, today gate.Day) (current, longest int) {
	if len(days) == 0 {
		return 0, 0
	}

	sorted := slices.Clone(days)
	slices.SortFunc(sorted, cmpDay)
	sorted = slices.Compact(sorted)

	run := 1
	longest = 1
	for i := 1; i < len(sorted); i++ {
		if daysBetween(sorted[i-1], sorted[i]) == 1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}

	last := sorted[len(sorted)-1]
	if gap := daysBetween(last, today); gap == 0 || gap == 1 {
		current = run
	}
	return current, longest
}

// BMI returns the body mass index for a weight in kilograms and height in
// centimeters. Non-positive height yields zero.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return weightKg / (m * m)
}

// BodyFatEstimate returns the Deurenberg body-fat percentage estimate from
// BMI, age in years and sex. Clamped to [0, 100].
func BodyFatEstimate(bmi, age float64, male bool) float64 {
	sex := 0.0
	if male {
		sex = 1.0
	}
	pct := 1.2*bmi + 0.23*age - 10.8*sex - 5.4
	return min(max(pct, 0), 100)
}

// GlucoseEstimate returns the synthetic post-meal glucose proxy in mg/dL
// shown on the dashboard: a fasting baseline nudged by the day's carb and
// sugar intake. Presentational arithmetic, not a medical measurement.
func GlucoseEstimate(totals DayTotals) float64 {
	const baseline = 83.0
	return baseline + 0.05*totals.Carbs + 0.12*totals.Sugar
}

func cmpDay(a, b gate.Day) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// daysBetween returns b - a in whole calendar days.
// Unparsable days count as an infinite gap, breaking any streak.
func daysBetween(a, b gate.Day) int {
	ta, errA := time.Parse(time.DateOnly, string(a))
	tb, errB := time.Parse(time.DateOnly, string(b))
	if errA != nil || errB != nil {
		return int(^uint(0) >> 1)
	}
	return int(tb.Sub(ta).Hours() / 24)
}
