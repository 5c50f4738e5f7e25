package providers

import (
	"github.com/bububa/probe-go/providers/anthropic"
	"github.com/bububa/probe-go/providers/gemini"
	"github.com/bububa/probe-go/providers/openai"
)

var (
	FromOpenAI    = openai.New
	FromAnthropic = anthropic.New
	FromGemini    = gemini.New
)
