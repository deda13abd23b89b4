package onboarding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalabs/vitakit/pkg/onboarding"
)

func completeAccount(w *onboarding.Wizard) {
	w.SetAccount("Jordan")
}

func completeBody(w *onboarding.Wizard) {
	w.SetBody(175, 72)
}

func TestWizard(t *testing.T) {
	t.Parallel()

	t.Run("starts at the account step", func(t *testing.T) {
		t.Parallel()

		w := onboarding.NewWizard()
		assert.Equal(t, onboarding.StepAccount, w.Current())
		assert.False(t, w.Done())
	})

	t.Run("full happy path", func(t *testing.T) {
		t.Parallel()

		w := onboarding.NewWizard()

		completeAccount(w)
		require.NoError(t, w.Next())
		assert.Equal(t, onboarding.StepBody, w.Current())

		completeBody(w)
		require.NoError(t, w.Next())
		assert.Equal(t, onboarding.StepGoals, w.Current())

		w.SetGoal(onboarding.GoalLoseWeight)
		require.NoError(t, w.Next())
		assert.Equal(t, onboarding.StepActivity, w.Current())

		w.SetActivity(onboarding.ActivityModerate)
		require.NoError(t, w.Next())

		assert.True(t, w.Done())
		assert.Equal(t, onboarding.Data{
			DisplayName:   "Jordan",
			HeightCm:      175,
			WeightKg:      72,
			Goal:          onboarding.GoalLoseWeight,
			ActivityLevel: onboarding.ActivityModerate,
		}, w.Data())
	})

	t.Run("cannot advance past an incomplete step", func(t *testing.T) {
		t.Parallel()

		w := onboarding.NewWizard()
		err := w.Next()

		assert.ErrorIs(t, err, onboarding.ErrStepIncomplete)
		assert.Equal(t, onboarding.StepAccount, w.Current())
	})

	t.Run("body step validates ranges", func(t *testing.T) {
		t.Parallel()

		w := onboarding.NewWizard()
		completeAccount(w)
		require.NoError(t, w.Next())

		w.SetBody(30, 72)
		assert.ErrorIs(t, w.Next(), onboarding.ErrStepIncomplete)

		w.SetBody(175, 5)
		assert.ErrorIs(t, w.Next(), onboarding.ErrStepIncomplete)

		w.SetBody(175, 72)
		assert.NoError(t, w.Next())
	})

	t.Run("goal must be one of the known values", func(t *testing.T) {
		t.Parallel()

		w := onboarding.Resume(onboarding.StepGoals, onboarding.Data{DisplayName: "J", HeightCm: 175, WeightKg: 72})

		w.SetGoal(onboarding.Goal("world_domination"))
		assert.ErrorIs(t, w.Next(), onboarding.ErrStepIncomplete)

		w.SetGoal(onboarding.GoalMaintain)
		assert.NoError(t, w.Next())
	})

	t.Run("back moves without validation", func(t *testing.T) {
		t.Parallel()

		w := onboarding.Resume(onboarding.StepBody, onboarding.Data{DisplayName: "J"})
		require.NoError(t, w.Back())
		assert.Equal(t, onboarding.StepAccount, w.Current())
	})

	t.Run("cannot go back from the first step", func(t *testing.T) {
		t.Parallel()

		w := onboarding.NewWizard()
		assert.ErrorIs(t, w.Back(), onboarding.ErrInvalidTransition)
	})

	t.Run("cannot advance once done", func(t *testing.T) {
		t.Parallel()

		w := onboarding.Resume(onboarding.StepDone, onboarding.Data{})
		assert.ErrorIs(t, w.Next(), onboarding.ErrInvalidTransition)
	})

	t.Run("data survives a failed validation", func(t *testing.T) {
		t.Parallel()

		w := onboarding.NewWizard()
		w.SetAccount("   ")
		require.Error(t, w.Next())

		w.SetAccount("Jordan")
		require.NoError(t, w.Next())
		assert.Equal(t, "Jordan", w.Data().DisplayName)
	})

	t.Run("resume with unknown step restarts", func(t *testing.T) {
		t.Parallel()

		w := onboarding.Resume(onboarding.Step("teleporting"), onboarding.Data{DisplayName: "J"})
		assert.Equal(t, onboarding.StepAccount, w.Current())
		assert.Equal(t, "J", w.Data().DisplayName)
	})
}
