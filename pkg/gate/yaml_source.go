package gate

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlSource loads the policy table from a YAML file, letting operators tune
// daily caps without a rebuild. Expected shape:
//
//	features:
//	  log_meal:
//	    free: 5
//	    premium: -1
//	  advanced_workouts:
//	    free: 0
//	    premium: -1
type yamlSource struct {
	path string
}

// NewYAMLSource returns a PolicySource reading the given file on every Load.
func NewYAMLSource(path string) PolicySource {
	return &yamlSource{path: path}
}

type yamlPolicyFile struct {
	Features map[string]Policy `yaml:"features"`
}

func (s *yamlSource) Load(ctx context.Context) (map[FeatureKey]Policy, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPolicies, err)
	}

	var file yamlPolicyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.Join(ErrFailedToLoadPolicies, err)
	}
	if len(file.Features) == 0 {
		return nil, errors.Join(ErrFailedToLoadPolicies, fmt.Errorf("no features defined in %s", s.path))
	}

	policies := make(map[FeatureKey]Policy, len(file.Features))
	for name, policy := range file.Features {
		key := FeatureKey(name)
		if !knownFeature(key) {
			return nil, errors.Join(ErrUnknownFeature, fmt.Errorf("feature %q in %s", name, s.path))
		}
		policies[key] = policy
	}
	return policies, nil
}

// knownFeature reports whether the key belongs to the closed feature set.
func knownFeature(f FeatureKey) bool {
	switch f {
	case FeatureLogMeal, FeaturePhotoAnalysis, FeatureAIMessage, FeatureAdvancedWorkouts:
		return true
	default:
		return false
	}
}
