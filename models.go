package probe

import "github.com/sashabaranov/go-openai"

// Models lists the vision-capable models known per provider. The first entry
// is the default.
var Models = map[Provider][]string{
	ProviderOpenAI: {
		openai.GPT4oMini,
		openai.GPT4o,
		openai.GPT4Turbo,
	},
	ProviderAnthropic: {
		"claude-3-5-haiku-latest",
		"claude-3-5-sonnet-latest",
		"claude-3-7-sonnet-latest",
	},
	ProviderGemini: {
		"gemini-2.0-flash",
		"gemini-1.5-flash",
		"gemini-1.5-pro",
	},
}

// DefaultModel returns the first catalog entry for provider, or "".
func DefaultModel(provider Provider) string {
	if list := Models[provider]; len(list) > 0 {
		return list[0]
	}
	return ""
}
