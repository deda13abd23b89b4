package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalabs/vitakit/pkg/config"
)

// Each subtest uses its own struct type: the loader caches per type for the
// process lifetime, so sharing a type across tests would leak state.

func TestLoad(t *testing.T) {
	t.Run("parses env vars with defaults", func(t *testing.T) {
		type gateCfg struct {
			PoliciesPath string `env:"TEST_GATE_POLICIES_PATH"`
			MaxRetries   int    `env:"TEST_GATE_MAX_RETRIES" envDefault:"3"`
		}

		t.Setenv("TEST_GATE_POLICIES_PATH", "/etc/vita/policies.yaml")

		var cfg gateCfg
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "/etc/vita/policies.yaml", cfg.PoliciesPath)
		assert.Equal(t, 3, cfg.MaxRetries)
	})

	t.Run("required variable missing", func(t *testing.T) {
		type strictCfg struct {
			Secret string `env:"TEST_MISSING_SECRET_VALUE,required"`
		}

		var cfg strictCfg
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("second load returns the cached value", func(t *testing.T) {
		type cachedCfg struct {
			Value string `env:"TEST_CACHED_VALUE"`
		}

		t.Setenv("TEST_CACHED_VALUE", "first")
		var first cachedCfg
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_CACHED_VALUE", "second")
		var second cachedCfg
		require.NoError(t, config.Load(&second))

		assert.Equal(t, "first", second.Value)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *struct{}
		err := config.Load(cfg)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		type panicCfg struct {
			Secret string `env:"TEST_MUST_LOAD_SECRET,required"`
		}

		assert.Panics(t, func() {
			var cfg panicCfg
			config.MustLoad(&cfg)
		})
	})
}
