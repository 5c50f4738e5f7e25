package probe

import (
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/liushuangls/go-anthropic/v2"
	"github.com/sashabaranov/go-openai"
)

type Provider = string

const (
	ProviderOpenAI    Provider = "OpenAI"
	ProviderAnthropic Provider = "Anthropic"
	ProviderGemini    Provider = "Gemini"
)

func ProviderFromClient(clt any) Provider {
	switch clt.(type) {
	case *openai.Client:
		return ProviderOpenAI
	case *anthropic.Client:
		return ProviderAnthropic
	case *genai.Client:
		return ProviderGemini
	}
	return ProviderOpenAI
}

// ParseProvider maps a case-insensitive provider name to a Provider.
func ParseProvider(name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "openai":
		return ProviderOpenAI, nil
	case "anthropic", "claude":
		return ProviderAnthropic, nil
	case "gemini", "google":
		return ProviderGemini, nil
	}
	return "", fmt.Errorf("unknown provider %q", name)
}
