package progress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalabs/vitakit/pkg/gate"
	"github.com/vitalabs/vitakit/pkg/progress"
)

func TestWeightDelta(t *testing.T) {
	t.Parallel()

	t.Run("latest minus earliest", func(t *testing.T) {
		t.Parallel()

		entries := []progress.WeightEntry{
			{Day: "2025-03-01", Kg: 82.0},
			{Day: "2025-03-15", Kg: 79.5},
			{Day: "2025-03-08", Kg: 80.8},
		}
		assert.InDelta(t, -2.5, progress.WeightDelta(entries), 1e-9)
	})

	t.Run("fewer than two entries", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, progress.WeightDelta(nil))
		assert.Zero(t, progress.WeightDelta([]progress.WeightEntry{{Day: "2025-03-01", Kg: 82}}))
	})

	t.Run("input order does not matter", func(t *testing.T) {
		t.Parallel()

		a := []progress.WeightEntry{{Day: "2025-03-01", Kg: 82}, {Day: "2025-03-02", Kg: 81}}
		b := []progress.WeightEntry{{Day: "2025-03-02", Kg: 81}, {Day: "2025-03-01", Kg: 82}}
		assert.Equal(t, progress.WeightDelta(a), progress.WeightDelta(b))
	})
}

func TestMovingAverage(t *testing.T) {
	t.Parallel()

	t.Run("trailing window", func(t *testing.T) {
		t.Parallel()

		got := progress.MovingAverage([]float64{80, 82, 84, 86}, 2)
		assert.Equal(t, []float64{80, 81, 83, 85}, got)
	})

	t.Run("window larger than series", func(t *testing.T) {
		t.Parallel()

		got := progress.MovingAverage([]float64{10, 20}, 7)
		assert.Equal(t, []float64{10, 15}, got)
	})

	t.Run("degenerate inputs", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, progress.MovingAverage(nil, 3))
		assert.Nil(t, progress.MovingAverage([]float64{1, 2}, 0))
	})
}

func TestStreaks(t *testing.T) {
	t.Parallel()

	today := gate.Day("2025-03-10")

	t.Run("unbroken run up to today", func(t *testing.T) {
		t.Parallel()

		days := []gate.Day{"2025-03-08", "2025-03-09", "2025-03-10"}
		current, longest := progress.Streaks(days, today)
		assert.Equal(t, 3, current)
		assert.Equal(t, 3, longest)
	})

	t.Run("yesterday's streak still counts", func(t *testing.T) {
		t.Parallel()

		days := []gate.Day{"2025-03-07", "2025-03-08", "2025-03-09"}
		current, longest := progress.Streaks(days, today)
		assert.Equal(t, 3, current)
		assert.Equal(t, 3, longest)
	})

	t.Run("broken streak", func(t *testing.T) {
		t.Parallel()

		days := []gate.Day{"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-05"}
		current, longest := progress.Streaks(days, today)
		assert.Equal(t, 0, current)
		assert.Equal(t, 3, longest)
	})

	t.Run("duplicate days collapse", func(t *testing.T) {
		t.Parallel()

		days := []gate.Day{"2025-03-09", "2025-03-09", "2025-03-10"}
		current, longest := progress.Streaks(days, today)
		assert.Equal(t, 2, current)
		assert.Equal(t, 2, longest)
	})

	t.Run("no days", func(t *testing.T) {
		t.Parallel()

		current, longest := progress.Streaks(nil, today)
		assert.Zero(t, current)
		assert.Zero(t, longest)
	})
}

func TestBMI(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 24.69, progress.BMI(80, 180), 0.01)
	assert.Zero(t, progress.BMI(80, 0))
}

func TestBodyFatEstimate(t *testing.T) {
	t.Parallel()

	t.Run("deurenberg fixed vectors", func(t *testing.T) {
		t.Parallel()

		// 1.2*25 + 0.23*30 - 10.8 - 5.4 = 20.7 (male)
		assert.InDelta(t, 20.7, progress.BodyFatEstimate(25, 30, true), 1e-9)
		// 1.2*25 + 0.23*30 - 5.4 = 31.5 (female)
		assert.InDelta(t, 31.5, progress.BodyFatEstimate(25, 30, false), 1e-9)
	})

	t.Run("clamped to valid range", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, progress.BodyFatEstimate(1, 1, true))
		assert.Equal(t, 100.0, progress.BodyFatEstimate(200, 90, false))
	})
}

func TestGlucoseEstimate(t *testing.T) {
	t.Parallel()

	t.Run("baseline with no intake", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, 83, progress.GlucoseEstimate(progress.DayTotals{}), 1e-9)
	})

	t.Run("deterministic for fixed intake", func(t *testing.T) {
		t.Parallel()

		totals := progress.DayTotals{Carbs: 200, Sugar: 50}
		// 83 + 0.05*200 + 0.12*50 = 99
		assert.InDelta(t, 99, progress.GlucoseEstimate(totals), 1e-9)
		assert.Equal(t, progress.GlucoseEstimate(totals), progress.GlucoseEstimate(totals))
	})
}

func TestSumMeals(t *testing.T) {
	t.Parallel()

	meals := []progress.MealNutrients{
		{Calories: 450, Protein: 30, Carbs: 40, Fat: 15, Sugar: 5},
		{Calories: 650, Protein: 35, Carbs: 70, Fat: 20, Sugar: 12},
	}
	totals := progress.SumMeals(meals)

	assert.Equal(t, progress.DayTotals{Calories: 1100, Protein: 65, Carbs: 110, Fat: 35, Sugar: 17}, totals)
	assert.Equal(t, progress.DayTotals{}, progress.SumMeals(nil))
}
