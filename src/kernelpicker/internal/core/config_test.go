package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		dirOverride string
		expectError bool
	}{
		{
			name: "loads config from directory via env var",
			files: map[string]string{
				"meta.yaml": "files:\n  - base.yaml\n",
				"base.yaml": "logging:\n  level: info\n",
			},
		},
		{
			name:        "fails when config directory doesn't exist",
			dirOverride: "/nonexistent/path",
			expectError: true,
		},
		{
			name: "fails when no listed file exists",
			files: map[string]string{
				"meta.yaml": "files:\n  - base.yaml\n",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.dirOverride
			if dir == "" {
				dir = writeConfigDir(t, tt.files)
			}
			t.Setenv("KERNELPICKER_CONFIG_DIR", dir)

			provider, err := NewConfig()

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, provider)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, provider)

				loggingLevel := provider.Get("logging.level")
				assert.True(t, loggingLevel.HasValue())
				assert.Equal(t, "info", loggingLevel.String())
			}
		})
	}
}

func TestConfig_Name(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"meta.yaml": "files:\n  - base.yaml\n",
		"base.yaml": "logging:\n  level: info\n",
	})
	t.Setenv("KERNELPICKER_CONFIG_DIR", dir)

	provider, err := NewConfig()
	require.NoError(t, err)

	config := provider.(Config)
	assert.Equal(t, "config", config.Name())
}

func TestGetConfigDir(t *testing.T) {
	tests := []struct {
		name           string
		setupEnv       func()
		expectedResult string
	}{
		{
			name: "returns environment variable when set",
			setupEnv: func() {
				os.Setenv("KERNELPICKER_CONFIG_DIR", "/custom/config/path")
			},
			expectedResult: "/custom/config/path",
		},
		{
			name: "returns default path when environment variable not set",
			setupEnv: func() {
				os.Unsetenv("KERNELPICKER_CONFIG_DIR")
			},
			expectedResult: "src/kernelpicker/config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupEnv()
			t.Cleanup(func() {
				os.Unsetenv("KERNELPICKER_CONFIG_DIR")
			})

			result := getConfigDir()
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestConfigFilePriority(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"meta.yaml": "files:\n  - base.yaml\n  - local.yaml\n  - missing.yaml\n",
		"base.yaml": "logging:\n  level: info\n  encoding: json\n",
		// local.yaml overrides base.yaml; missing.yaml is skipped.
		"local.yaml": "logging:\n  level: warn\n",
	})
	t.Setenv("KERNELPICKER_CONFIG_DIR", dir)

	provider, err := NewConfig()
	require.NoError(t, err)

	loggingLevel := provider.Get("logging.level")
	assert.True(t, loggingLevel.HasValue())
	assert.Equal(t, "warn", loggingLevel.String())

	encoding := provider.Get("logging.encoding")
	assert.True(t, encoding.HasValue())
	assert.Equal(t, "json", encoding.String())
}
