package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bububa/probe-go"
)

var ErrMissingCredential = errors.New("missing api key")

var apiKeyEnv = map[probe.Provider][]string{
	probe.ProviderOpenAI:    {"OPENAI_API_KEY"},
	probe.ProviderAnthropic: {"ANTHROPIC_API_KEY", "CLAUDE_API_KEY"},
	probe.ProviderGemini:    {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
}

func apiKey(provider probe.Provider) string {
	for _, key := range apiKeyEnv[provider] {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

// CheckCredentials fails when the selected provider has no API key. An
// OpenAI-compatible server at a custom base URL may run without one.
func (c *Config) CheckCredentials() error {
	if c.APIKey != "" {
		return nil
	}
	if c.Provider == probe.ProviderOpenAI && c.BaseURL != "" {
		return nil
	}
	return fmt.Errorf("%w for %s: set %s", ErrMissingCredential, c.Provider, strings.Join(apiKeyEnv[c.Provider], " or "))
}
