package usage

import (
	"github.com/vitalabs/vitakit/pkg/gate"
)

// counterColumn maps a feature key to its counter column / hash field.
// The mapping is part of the store contract: only countable features appear.
func counterColumn(feature gate.FeatureKey) (string, bool) {
	switch feature {
	case gate.FeatureLogMeal:
		return "meals_logged", true
	case gate.FeaturePhotoAnalysis:
		return "photo_analyses", true
	case gate.FeatureAIMessage:
		return "ai_messages_sent", true
	default:
		return "", false
	}
}
