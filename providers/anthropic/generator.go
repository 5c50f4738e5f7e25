package anthropic

import (
	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/bububa/probe-go"
)

type Generator struct {
	*anthropic.Client
	probe.Options
}

var (
	_ probe.ChatGenerator = (*Generator)(nil)
	_ probe.Preparer      = (*Generator)(nil)
)

func New(client *anthropic.Client, opts ...probe.Option) *Generator {
	i := &Generator{
		Client: client,
	}
	probe.WithProvider(probe.ProviderFromClient(client))(&i.Options)
	for _, opt := range opts {
		opt(&i.Options)
	}
	return i
}
