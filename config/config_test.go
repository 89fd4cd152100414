package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holidays.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen: ":9090"
calendar:
  jurisdictions:
    - country: CA
      subdivision: QC
    - country: US
  observed: false
hours:
  on: 7
  off: 19
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "holidays.db", cfg.Database, "unset fields keep defaults")
	require.Len(t, cfg.Calendar.Jurisdictions, 2)
	assert.Equal(t, "QC", cfg.Calendar.Jurisdictions[0].Subdivision)
	require.NotNil(t, cfg.Calendar.Observed)
	assert.False(t, *cfg.Calendar.Observed)
	assert.Equal(t, Hours{On: 7, Off: 19}, cfg.Hours)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"hours reversed", func(c *Config) { c.Hours = Hours{On: 20, Off: 8} }, false},
		{"hour out of range", func(c *Config) { c.Hours = Hours{On: 0, Off: 25} }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"empty database", func(c *Config) { c.Database = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if tt.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}

func TestHours_Active(t *testing.T) {
	h := Hours{On: 7, Off: 19}
	assert.False(t, h.Active(6))
	assert.True(t, h.Active(7))
	assert.True(t, h.Active(18))
	assert.False(t, h.Active(19))
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger("WARN")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = NewLogger("chatty")
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"HOLIDAYS_LISTEN":    ":7070",
		"HOLIDAYS_COUNTRIES": "ca-qc, US,",
		"HOLIDAYS_HOURS_ON":  "8",
		"HOLIDAYS_HOURS_OFF": "18",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(lookup))

	assert.Equal(t, ":7070", cfg.Listen)
	require.Len(t, cfg.Calendar.Jurisdictions, 2)
	assert.Equal(t, "CA", cfg.Calendar.Jurisdictions[0].Country)
	assert.Equal(t, "QC", cfg.Calendar.Jurisdictions[0].Subdivision)
	assert.Equal(t, Hours{On: 8, Off: 18}, cfg.Hours)

	env["HOLIDAYS_HOURS_ON"] = "eight"
	assert.Error(t, cfg.ApplyEnv(lookup))
}

func TestLoadEnvFile(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HOLIDAYS_TEST_DATABASE=from-dotenv.db\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("HOLIDAYS_TEST_DATABASE") })

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-dotenv.db", os.Getenv("HOLIDAYS_TEST_DATABASE"))
}
