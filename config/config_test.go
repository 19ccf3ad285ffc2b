package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "kicau")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "kicau")
	t.Setenv("JWT_SECRET", "test-signing-secret")
}

func TestLoadConfigDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 10, cfg.DB.MaxSize)
	assert.Equal(t, "test-signing-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 10*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfigMissingSecretFails(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfigCollectsAllErrors(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	for _, key := range []string{"DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET"} {
		assert.Contains(t, err.Error(), key)
	}
	// One aggregated error, one line per problem.
	assert.GreaterOrEqual(t, strings.Count(err.Error(), "\n- "), 3)
}

func TestLoadConfigPoolSizeClamped(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_POOL_SIZE", "2")

	// Clamping is reported as a configuration error rather than silently applied.
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_POOL_SIZE")
}

func TestLoadConfigCustomTokenDuration(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_TOKEN_DURATION", "30m")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenDuration)
}

func TestLoadConfigBadDuration(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_TOKEN_DURATION", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_TOKEN_DURATION")
}
