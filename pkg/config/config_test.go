package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PORT", "")
	t.Setenv("MONGO_DATABASE", "")
	t.Setenv("JWT_EXPIRY", "")
	t.Setenv("AUTH_PROVIDER", "")
	t.Setenv("POST_SAVE_ATTEMPTS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "devconnector", cfg.MongoDatabase)
	assert.Equal(t, 72*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, AuthProviderJWT, cfg.AuthProvider)
	assert.Equal(t, 3, cfg.PostSaveAttempts)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("PORT", "5000")
	t.Setenv("JWT_EXPIRY", "1h")
	t.Setenv("AUTH_PROVIDER", AuthProviderFirebase)
	t.Setenv("POST_SAVE_ATTEMPTS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.Equal(t, AuthProviderFirebase, cfg.AuthProvider)
	assert.Equal(t, 5, cfg.PostSaveAttempts)
	assert.Equal(t, "from-env", cfg.JWTSecret)
}

func TestLoad_RequiresJWTSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("JWT_EXPIRY", "forever")
	t.Setenv("POST_SAVE_ATTEMPTS", "-2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 72*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 3, cfg.PostSaveAttempts)
}

func TestInitDB_RequiresConnectionStrings(t *testing.T) {
	_, err := InitDB(&Config{MongoURI: "mongodb://localhost"})
	assert.ErrorContains(t, err, "POSTGRES_CONN_STR")

	_, err = InitDB(&Config{PostgresUrl: "postgres://localhost"})
	assert.ErrorContains(t, err, "MONGO_URI")
}
