package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Reset viper
	viper.Reset()

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://localhost:5000/api/chat", cfg.Chat.Endpoint)
	assert.Equal(t, time.Duration(0), cfg.Chat.Timeout)
	assert.True(t, cfg.Images.Enabled)
	assert.Equal(t, int64(10*1000*1000), cfg.Images.MaxBytes)
	assert.Equal(t, 32, cfg.Images.PreviewWidth)
	assert.True(t, cfg.Render.Markdown)
	assert.Equal(t, "./.storychat/system.log", cfg.Logging.LogFile)
	assert.False(t, cfg.Logging.Preserve)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ":5000", cfg.Stub.Addr)
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "test-settings.yaml")

	configContent := `
chat:
  endpoint: http://stories.local:8080/api/chat
  timeout: "45s"
images:
  enabled: false
  max_bytes: "2MiB"
  preview_width: 20
render:
  markdown: false
logging:
  log_file: /tmp/test.log
  preserve: true
  level: debug
`
	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	viper.Reset()

	cfg, err := Load(configFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://stories.local:8080/api/chat", cfg.Chat.Endpoint)
	assert.Equal(t, 45*time.Second, cfg.Chat.Timeout)
	assert.False(t, cfg.Images.Enabled)
	assert.Equal(t, int64(2*1024*1024), cfg.Images.MaxBytes)
	assert.Equal(t, 20, cfg.Images.PreviewWidth)
	assert.False(t, cfg.Render.Markdown)
	assert.Equal(t, "/tmp/test.log", cfg.Logging.LogFile)
	assert.True(t, cfg.Logging.Preserve)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, configFile, GetConfigFileUsed())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api/chat", cfg.Chat.Endpoint)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("STORYCHAT_ENDPOINT", "http://env.local/api/chat")
	t.Setenv("STORYCHAT_TIMEOUT", "5s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://env.local/api/chat", cfg.Chat.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Chat.Timeout)
}

func TestProcessDurations(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		expected  time.Duration
		expectErr bool
	}{
		{"valid duration", &Config{Chat: ChatConfig{TimeoutStr: "1m30s"}}, 90 * time.Second, false},
		{"zero disables", &Config{Chat: ChatConfig{TimeoutStr: "0s"}}, 0, false},
		{"empty disables", &Config{}, 0, false},
		{"invalid duration", &Config{Chat: ChatConfig{TimeoutStr: "soon"}}, 0, true},
		{"negative duration", &Config{Chat: ChatConfig{TimeoutStr: "-1s"}}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := processDurations(tt.config)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tt.config.Chat.Timeout)
		})
	}
}

func TestProcessSizes(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		expected  int64
		expectErr bool
	}{
		{"megabytes", "10MB", 10 * 1000 * 1000, false},
		{"kibibytes", "512KiB", 512 * 1024, false},
		{"empty uses default", "", 10 * 1000 * 1000, false},
		{"garbage", "lots", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Images: ImagesConfig{MaxBytesStr: tt.value}}
			err := processSizes(c)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.Images.MaxBytes)
		})
	}
}

func TestGet(t *testing.T) {
	// Reset global config
	cfg = nil

	assert.Panics(t, func() {
		Get()
	})
	assert.False(t, IsLoaded())

	viper.Reset()
	_, err := Load("")
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		c := Get()
		assert.NotNil(t, c)
	})
	assert.True(t, IsLoaded())
}

func TestInitializeDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	require.NoError(t, InitializeDefaults(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "endpoint: http://localhost:5000/api/chat")

	// A second call leaves the file alone
	require.NoError(t, os.WriteFile(path, []byte("chat:\n  endpoint: http://kept\n"), 0644))
	require.NoError(t, InitializeDefaults(path))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "http://kept")
}

func TestBuildSettingsPath(t *testing.T) {
	viper.Reset()
	viper.Set("config.path", "/tmp/storychat")

	assert.Equal(t, "/tmp/storychat/system.log", BuildSettingsPath("system.log"))
}

func TestInitializeDefaultsMatchesLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, InitializeDefaults(path))

	written := viper.New()
	written.SetConfigFile(path)
	require.NoError(t, written.ReadInConfig())

	defaults := viper.New()
	setDefaults(defaults)

	assert.ElementsMatch(t, defaults.AllKeys(), written.AllKeys())
	for _, key := range defaults.AllKeys() {
		assert.Equal(t, defaults.GetString(key), written.GetString(key), key)
	}
}
