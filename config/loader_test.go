package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/refined/config"
)

type cacheSettings struct {
	Size    int  `env:"TEST_REFINED_CACHE_SIZE" envDefault:"1024"`
	Enabled bool `env:"TEST_REFINED_CACHE_ENABLED" envDefault:"true"`
}

type requiredSettings struct {
	Token string `env:"TEST_REFINED_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("parses environment into the struct", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_REFINED_CACHE_SIZE", "256")
		t.Setenv("TEST_REFINED_CACHE_ENABLED", "false")

		var s cacheSettings
		require.NoError(t, config.Load(&s))
		assert.Equal(t, 256, s.Size)
		assert.False(t, s.Enabled)
	})

	t.Run("applies defaults for unset variables", func(t *testing.T) {
		config.ResetCache()

		var s cacheSettings
		require.NoError(t, config.Load(&s))
		assert.Equal(t, 1024, s.Size)
		assert.True(t, s.Enabled)
	})

	t.Run("caches the first parse per type", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_REFINED_CACHE_SIZE", "128")

		var first cacheSettings
		require.NoError(t, config.Load(&first))
		require.Equal(t, 128, first.Size)

		t.Setenv("TEST_REFINED_CACHE_SIZE", "512")
		var second cacheSettings
		require.NoError(t, config.Load(&second))
		assert.Equal(t, 128, second.Size)

		config.ResetCache()
		var third cacheSettings
		require.NoError(t, config.Load(&third))
		assert.Equal(t, 512, third.Size)
	})

	t.Run("rejects nil destination", func(t *testing.T) {
		err := config.Load[cacheSettings](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("reports missing required variables", func(t *testing.T) {
		config.ResetCache()

		var s requiredSettings
		err := config.Load(&s)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics when a required variable is missing", func(t *testing.T) {
		config.ResetCache()

		assert.Panics(t, func() {
			var s requiredSettings
			config.MustLoad(&s)
		})
	})

	t.Run("returns parsed settings otherwise", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_REFINED_REQUIRED_TOKEN", "ok")

		var s requiredSettings
		assert.NotPanics(t, func() {
			config.MustLoad(&s)
		})
		assert.Equal(t, "ok", s.Token)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("fails for a missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/.env.missing")
		assert.ErrorIs(t, err, config.ErrLoadingEnv)
	})

	t.Run("loads variables from an explicit file", func(t *testing.T) {
		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		config.ResetCache()
		var s cacheSettings
		require.NoError(t, config.Load(&s))
		assert.Equal(t, 2048, s.Size)
	})
}
