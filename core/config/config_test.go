package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneohq/notify/core/config"
)

type smtpTestConfig struct {
	Host string `env:"CONFIG_TEST_SMTP_HOST,required"`
	Port int    `env:"CONFIG_TEST_SMTP_PORT" envDefault:"587"`
}

type cachedTestConfig struct {
	Value string `env:"CONFIG_TEST_CACHED_VALUE" envDefault:"initial"`
}

type brokenTestConfig struct {
	Missing string `env:"CONFIG_TEST_DEFINITELY_UNSET,required"`
}

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_TEST_SMTP_HOST", "smtp.example.com")

	var cfg smtpTestConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "smtp.example.com", cfg.Host)
	assert.Equal(t, 587, cfg.Port, "envDefault applies when unset")
}

func TestLoad_CachesPerType(t *testing.T) {
	t.Setenv("CONFIG_TEST_CACHED_VALUE", "first")

	var cfg1 cachedTestConfig
	require.NoError(t, config.Load(&cfg1))
	require.Equal(t, "first", cfg1.Value)

	// Environment changes after the first load are not observed.
	t.Setenv("CONFIG_TEST_CACHED_VALUE", "second")
	var cfg2 cachedTestConfig
	require.NoError(t, config.Load(&cfg2))
	assert.Equal(t, cfg1, cfg2)
}

func TestLoad_RequiredMissing(t *testing.T) {
	t.Parallel()

	var cfg brokenTestConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIG_TEST_DEFINITELY_UNSET")
}

func TestLoad_RejectsNonStructPointer(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, config.Load(nil), config.ErrNotStructPointer)
	assert.ErrorIs(t, config.Load("nope"), config.ErrNotStructPointer)
	var n int
	assert.ErrorIs(t, config.Load(&n), config.ErrNotStructPointer)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		config.MustLoad(nil)
	})
}
