// Package config loads typed configuration structs from environment
// variables, with one cached instance per struct type for the lifetime of the
// process. A .env file is picked up once if present.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrNilPointer    = errors.New("nil pointer provided to config loader")
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
)

var (
	mu     sync.Mutex
	loaded = make(map[string]any)

	dotenvOnce sync.Once
)

// Load parses environment variables into v based on its `env` field tags.
// Each struct type is parsed at most once; later calls for the same type get
// the cached copy, so every package sees identical configuration.
//
// Example:
//
//	type GateConfig struct {
//		PoliciesPath string `env:"GATE_POLICIES_PATH"`
//		FailOpen     bool   `env:"GATE_FAIL_OPEN" envDefault:"false"`
//	}
//
//	var cfg GateConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		// Missing .env is fine; real environments set variables directly.
		_ = godotenv.Load()
	})

	key := typeName[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded[key]; ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	// Store a copy so callers cannot mutate the cached value.
	loaded[key] = *v
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}

func typeName[T any]() string {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		return t.String()
	}
	return fmt.Sprintf("%T", *new(T))
}
