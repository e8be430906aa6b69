package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8085

[database]
host = "localhost"
user = "smc"
password = "secret"
dbname = "pricing"

[pricing]
require_rule = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8085, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 60, cfg.Redis.TTLSeconds)
	assert.True(t, cfg.Pricing.RequireRule)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t,
		"host=localhost port=5432 user=smc password=secret dbname=pricing sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("REDIS_PASSWORD", "redis-env")

	path := writeConfig(t, `
[database]
host = "db"
dbname = "pricing"
password = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "redis-env", cfg.Redis.Password)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing database",
			content: `[server]` + "\nhttp_port = 8080\n",
		},
		{
			name: "bad port",
			content: `
[server]
http_port = 70000
[database]
host = "db"
dbname = "pricing"
`,
		},
		{
			name: "redis without addr",
			content: `
[database]
host = "db"
dbname = "pricing"
[redis]
enabled = true
`,
		},
		{
			name: "venue service without url",
			content: `
[database]
host = "db"
dbname = "pricing"
[venue_service]
enabled = true
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
