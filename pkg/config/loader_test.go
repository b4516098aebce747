package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
)

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type TestConfigSingleton struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type TestConfigRetry struct {
	Required string `env:"TEST_RETRY_REQUIRED,required"`
}

type TestConfigEnvFile struct {
	Value string `env:"TEST_ENV_FILE_VALUE"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg TestConfigSuccess
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.False(t, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")

	var cfg TestConfigDefault
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.True(t, cfg.TestBool)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_RetriesAfterFailure(t *testing.T) {
	os.Unsetenv("TEST_RETRY_REQUIRED")

	var cfg TestConfigRetry
	require.Error(t, config.Load(&cfg))

	t.Setenv("TEST_RETRY_REQUIRED", "now-set")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "now-set", cfg.Required)
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_STRING_SINGLETON", "first_value")

	var first TestConfigSingleton
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_STRING_SINGLETON", "second_value")

	var second TestConfigSingleton
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first_value", second.TestString)

	config.Reset()

	var third TestConfigSingleton
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second_value", third.TestString)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	assert.Panics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("reads explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("TEST_ENV_FILE_VALUE=from-file\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("TEST_ENV_FILE_VALUE") })

		require.NoError(t, config.LoadEnv(path))

		var cfg TestConfigEnvFile
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-file", cfg.Value)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}
