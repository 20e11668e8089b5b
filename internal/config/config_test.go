package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
[database]
host = "localhost"
dbname = "barber"
`

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse(minimalConfig)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 3, cfg.Database.TxMaxRetries)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "Asia/Jerusalem", cfg.Business.Timezone)
	assert.Equal(t, int64(1), cfg.Business.SettingsID)
	assert.Equal(t, 60, cfg.Redis.SettingsTTL)

	loc, err := cfg.Business.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jerusalem", loc.String())
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "bad port",
			data: minimalConfig + "\n[server]\nhttp_port = 70000\n",
		},
		{
			name: "unknown timezone",
			data: minimalConfig + "\n[business]\ntimezone = \"Mars/Olympus\"\n",
		},
		{
			name: "bad admin id",
			data: minimalConfig + "\n[auth]\nadmin_user_ids = [\"not-a-uuid\"]\n",
		},
		{
			name: "missing host",
			data: "[database]\ndbname = \"barber\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParse_InvalidTOML(t *testing.T) {
	_, err := Parse("[database\nhost=")
	assert.ErrorIs(t, err, ErrParseConfig)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("BARBER_DB_PASSWORD", "s3cret")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := minimalConfig + "password = \"${BARBER_DB_PASSWORD}\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestAuthConfig_AdminIDs(t *testing.T) {
	auth := AuthConfig{AdminUserIDs: []string{"6f1c2f1e-8a65-4a8e-9b0e-3f5a0c2d7b11"}}

	ids, err := auth.AdminIDs()
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, "6f1c2f1e-8a65-4a8e-9b0e-3f5a0c2d7b11", ids[0].String())
}
