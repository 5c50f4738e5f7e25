package openai

import (
	openai "github.com/sashabaranov/go-openai"

	"github.com/bububa/probe-go"
)

type Generator struct {
	*openai.Client
	probe.Options
}

var (
	_ probe.ChatGenerator = (*Generator)(nil)
	_ probe.Preparer      = (*Generator)(nil)
)

func New(client *openai.Client, opts ...probe.Option) *Generator {
	i := &Generator{
		Client: client,
	}
	probe.WithProvider(probe.ProviderFromClient(client))(&i.Options)
	for _, opt := range opts {
		opt(&i.Options)
	}
	return i
}
