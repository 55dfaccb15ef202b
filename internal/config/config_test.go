package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "JWT_SECRET", "APIKEY", "PORT", "LOG_LEVEL", "LOG_FORMAT",
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APIKEY", "key")
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/chatbot")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "key", cfg.Auth.APIKey)
	assert.Equal(t, ":8081", cfg.ListenAddr())
	assert.Equal(t, "info", cfg.Logging.Level)

	dsn, err := cfg.Database.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/chatbot", dsn)
}

func TestLoad_DefaultPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APIKEY", "key")
	t.Setenv("DATABASE_URL", "postgres://localhost/chatbot")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":3333", cfg.ListenAddr())
}

func TestLoad_MissingSecrets(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
	assert.Contains(t, err.Error(), "APIKEY is required")
	assert.Contains(t, err.Error(), "database environment variables not set")
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")

	_, err := Load()
	assert.ErrorContains(t, err, `invalid PORT "eighty"`)
}

func TestLoad_YAMLFileWithEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("TEST_DB_PASSWORD", "from-env")
	t.Setenv("APIKEY", "env-key")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 4000
auth:
  jwt_secret: file-secret
  api_key: file-key
database:
  host: db
  port: "5432"
  user: chatbot
  password: ${TEST_DB_PASSWORD}
  name: chatbot
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "file-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "env-key", cfg.Auth.APIKey)
	assert.Equal(t, "json", cfg.Logging.Format)

	dsn, err := cfg.Database.DSN()
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=chatbot password=from-env dbname=chatbot sslmode=disable", dsn)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.ErrorContains(t, err, "reading config file")
}

func TestValidate_RejectsUnknownLogSettings(t *testing.T) {
	cfg := Defaults()
	cfg.Auth = AuthConfig{JWTSecret: "s", APIKey: "k"}
	cfg.Database.URL = "postgres://localhost/db"
	cfg.Logging = LoggingConfig{Level: "verbose", Format: "xml"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown log level "verbose"`)
	assert.Contains(t, err.Error(), `unknown log format "xml"`)
}

func TestLoadDatabase_NoSecretsNeeded(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "chatbot")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "chatbot")

	db, err := LoadDatabase()
	require.NoError(t, err)

	dsn, err := db.DSN()
	require.NoError(t, err)
	assert.Equal(t, "host=localhost port=5432 user=chatbot password=pw dbname=chatbot sslmode=disable", dsn)
}

func TestLoadDatabase_Missing(t *testing.T) {
	clearEnv(t)

	_, err := LoadDatabase()
	assert.ErrorContains(t, err, "database environment variables not set")
}
