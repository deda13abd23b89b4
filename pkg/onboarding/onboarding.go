// Package onboarding models the multi-step signup wizard as a small state
// machine: a fixed forward path with per-step validation guards, and free
// backward movement. The wizard holds form data only; persisting the finished
// profile is the host's job.
package onboarding

import (
	"errors"
	"fmt"
	"strings"
)

// Step identifies a wizard screen.
type Step string

const (
	StepAccount  Step = "account"
	StepBody     Step = "body"
	StepGoals    Step = "goals"
	StepActivity Step = "activity"
	StepDone     Step = "done"
)

// Goal is the user's stated objective.
type Goal string

const (
	GoalLoseWeight Goal = "lose_weight"
	GoalMaintain   Goal = "maintain"
	GoalGainMuscle Goal = "gain_muscle"
)

// ActivityLevel is the user's self-reported activity.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
)

var (
	ErrInvalidTransition = errors.New("onboarding: invalid transition")
	ErrStepIncomplete    = errors.New("onboarding: step incomplete")
)

// Data is the accumulated wizard form state.
type Data struct {
	DisplayName   string
	HeightCm      float64
	WeightKg      float64
	Goal          Goal
	ActivityLevel ActivityLevel
}

// forward is the wizard's transition table; guards must pass before advancing.
var forward = map[Step]Step{
	StepAccount:  StepBody,
	StepBody:     StepGoals,
	StepGoals:    StepActivity,
	StepActivity: StepDone,
}

// backward allows revisiting a completed step without revalidation.
var backward = map[Step]Step{
	StepBody:     StepAccount,
	StepGoals:    StepBody,
	StepActivity: StepGoals,
}

// guards validate the data entered on each step before it can be left.
var guards = map[Step]func(Data) error{
	StepAccount: func(d Data) error {
		if strings.TrimSpace(d.DisplayName) == "" {
			return fmt.Errorf("%w: display name is required", ErrStepIncomplete)
		}
		return nil
	},
	StepBody: func(d Data) error {
		if d.HeightCm < 50 || d.HeightCm > 280 {
			return fmt.Errorf("%w: height must be between 50 and 280 cm", ErrStepIncomplete)
		}
		if d.WeightKg < 20 || d.WeightKg > 500 {
			return fmt.Errorf("%w: weight must be between 20 and 500 kg", ErrStepIncomplete)
		}
		return nil
	},
	StepGoals: func(d Data) error {
		switch d.Goal {
		case GoalLoseWeight, GoalMaintain, GoalGainMuscle:
			return nil
		default:
			return fmt.Errorf("%w: a goal must be selected", ErrStepIncomplete)
		}
	},
	StepActivity: func(d Data) error {
		switch d.ActivityLevel {
		case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive:
			return nil
		default:
			return fmt.Errorf("%w: an activity level must be selected", ErrStepIncomplete)
		}
	},
}

// Wizard tracks a single user's progress through onboarding.
// Not safe for concurrent use; each session owns its own wizard.
type Wizard struct {
	current Step
	data    Data
}

// NewWizard starts a wizard at the account step.
func NewWizard() *Wizard {
	return &Wizard{current: StepAccount}
}

// Resume restores a wizard at a previously saved step and data, e.g. when the
// user returns mid-onboarding. Unknown steps restart from the beginning.
func Resume(step Step, data Data) *Wizard {
	switch step {
	case StepAccount, StepBody, StepGoals, StepActivity, StepDone:
		return &Wizard{current: step, data: data}
	default:
		return &Wizard{current: StepAccount, data: data}
	}
}

// Current returns the active step.
func (w *Wizard) Current() Step {
	return w.current
}

// Data returns a copy of the accumulated form state.
func (w *Wizard) Data() Data {
	return w.data
}

// Done reports whether the wizard has reached the final step.
func (w *Wizard) Done() bool {
	return w.current == StepDone
}

// SetAccount records the account step's fields.
func (w *Wizard) SetAccount(displayName string) {
	w.data.DisplayName = displayName
}

// SetBody records the body step's fields.
func (w *Wizard) SetBody(heightCm, weightKg float64) {
	w.data.HeightCm = heightCm
	w.data.WeightKg = weightKg
}

// SetGoal records the goals step's selection.
func (w *Wizard) SetGoal(goal Goal) {
	w.data.Goal = goal
}

// SetActivity records the activity step's selection.
func (w *Wizard) SetActivity(level ActivityLevel) {
	w.data.ActivityLevel = level
}

// Next validates the current step and advances. The data entered so far is
// kept even when validation fails, so the user can correct a single field.
func (w *Wizard) Next() error {
	next, ok := forward[w.current]
	if !ok {
		return fmt.Errorf("%w: cannot advance from %s", ErrInvalidTransition, w.current)
	}
	if guard, ok := guards[w.current]; ok {
		if err := guard(w.data); err != nil {
			return err
		}
	}
	w.current = next
	return nil
}

// Back returns to the previous step without validation.
func (w *Wizard) Back() error {
	prev, ok := backward[w.current]
	if !ok {
		return fmt.Errorf("%w: cannot go back from %s", ErrInvalidTransition, w.current)
	}
	w.current = prev
	return nil
}
