package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
		env           map[string]string

		want      func(t *testing.T, cfg *Config)
		wantError bool
	}{
		{
			name: "defaults only",
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, filepath.Join("data", "records"), cfg.Storage.DataDirectory)
				assert.Equal(t, int64(5*1024*1024), cfg.Storage.QuotaBytes)
				assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
				assert.Equal(t, filepath.Join("outputs", "notes"), cfg.Outputs.NotesDirectory)
			},
		},
		{
			name: "config file overrides defaults",
			configContent: `storage:
  data_directory: /tmp/edumate
  quota_bytes: 1024
outputs:
  notes_directory: /tmp/notes
`,
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/edumate", cfg.Storage.DataDirectory)
				assert.Equal(t, int64(1024), cfg.Storage.QuotaBytes)
				assert.Equal(t, "/tmp/notes", cfg.Outputs.NotesDirectory)
			},
		},
		{
			name: "secrets come from the environment only",
			configContent: `gemini:
  api_key: ignored-from-file
`,
			env: map[string]string{
				"GEMINI_API_KEY":         "env-key",
				"EDUMATE_ADMIN_PASSWORD": "env-admin",
			},
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "env-key", cfg.Gemini.APIKey)
				assert.Equal(t, "env-admin", cfg.Admin.Password)
			},
		},
		{
			name: "model overridable by environment",
			env: map[string]string{
				"GEMINI_MODEL": "gemini-2.5-pro",
			},
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
			},
		},
		{
			name: "invalid quota fails validation",
			configContent: `storage:
  quota_bytes: -1
`,
			wantError: true,
		},
		{
			name:          "malformed yaml fails",
			configContent: "storage: [not a map",
			wantError:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			configPath := ""
			if tt.configContent != "" {
				configPath = filepath.Join(t.TempDir(), "config.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			}

			cfg, err := Load(configPath)

			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.want(t, cfg)
		})
	}
}

func TestLoad_missingConfigFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	require.Error(t, err)
}
