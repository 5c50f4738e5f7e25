package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bububa/probe-go"
)

var envKeys = []string{
	"PROBE_PROVIDER", "PROBE_MODEL", "PROBE_IMAGE_PATH", "PROBE_MEDIA_TYPE", "PROBE_PROMPT",
	"PROBE_MAX_OUTPUT_TOKENS", "PROBE_TEMPERATURE", "PROBE_MODE", "PROBE_MAX_RETRIES",
	"PROBE_BASE_URL", "PROBE_TIMEOUT_SECONDS", "PROBE_PREFER_IPV4", "PROBE_VERBOSE", "LOG_LEVEL",
	"OPENAI_API_KEY", "ANTHROPIC_API_KEY", "CLAUDE_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, probe.ProviderOpenAI, cfg.Provider)
	assert.Equal(t, probe.DefaultModel(probe.ProviderOpenAI), cfg.Model)
	assert.Equal(t, DefaultImagePath, cfg.ImagePath)
	assert.Equal(t, probe.DefaultMediaType, cfg.MediaType)
	assert.Equal(t, 200, cfg.MaxOutputTokens)
	assert.InDelta(t, 0.1, cfg.Temperature, 1e-6)
	assert.Equal(t, probe.ModePlainText, cfg.Mode)
	assert.Zero(t, cfg.Timeout())
	assert.Empty(t, cfg.APIKey)
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "probe.yaml", `
provider: claude
imagePath: cat.png
mediaType: auto
maxOutputTokens: 64
temperature: 0.5
mode: json
maxRetries: 2
timeoutSeconds: 30
`)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, probe.ProviderAnthropic, cfg.Provider)
	assert.Equal(t, probe.DefaultModel(probe.ProviderAnthropic), cfg.Model)
	assert.Equal(t, "cat.png", cfg.ImagePath)
	assert.Equal(t, probe.MediaTypeAuto, cfg.MediaType)
	assert.Equal(t, 64, cfg.MaxOutputTokens)
	assert.Equal(t, probe.ModeJSON, cfg.Mode)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "sk-ant", cfg.APIKey)
	assert.NoError(t, cfg.CheckCredentials())

	params := cfg.Params()
	assert.Equal(t, "cat.png", params.ImagePath)
	assert.Equal(t, cfg.Model, params.Model)
}

func TestLoadTOMLWithEnvOverride(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "probe.toml", `
provider = "gemini"
model = "gemini-1.5-pro"
prompt = "Name the animal."
verbose = true
`)
	t.Setenv("PROBE_MODEL", "gemini-2.0-flash")
	t.Setenv("PROBE_MAX_OUTPUT_TOKENS", "not-a-number")
	t.Setenv("GOOGLE_API_KEY", "g-key")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, probe.ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, "Name the animal.", cfg.Prompt)
	assert.Equal(t, 200, cfg.MaxOutputTokens)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "g-key", cfg.APIKey)
	assert.Len(t, cfg.Options(), 4)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(writeFile(t, "probe.json", `{}`))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("PROBE_PROVIDER", "cohere")
	_, err = Load("")
	assert.Error(t, err)

	t.Setenv("PROBE_PROVIDER", "openai")
	t.Setenv("PROBE_TEMPERATURE", "3")
	_, err = Load("")
	assert.Error(t, err)

	t.Setenv("PROBE_TEMPERATURE", "")
	t.Setenv("PROBE_BASE_URL", "not a url")
	_, err = Load("")
	assert.Error(t, err)
}

func TestCheckCredentials(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	err = cfg.CheckCredentials()
	assert.True(t, errors.Is(err, ErrMissingCredential))
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")

	cfg.BaseURL = "http://localhost:11434/v1"
	assert.NoError(t, cfg.CheckCredentials())

	t.Setenv("PROBE_PROVIDER", "anthropic")
	t.Setenv("CLAUDE_API_KEY", "sk-claude")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "sk-claude", cfg.APIKey)
	assert.NoError(t, cfg.CheckCredentials())
}
