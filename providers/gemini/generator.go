package gemini

import (
	"context"

	gemini "github.com/google/generative-ai-go/genai"

	"github.com/bububa/probe-go"
)

// contentModel is the part of *gemini.GenerativeModel used by Handler.
type contentModel interface {
	GenerateContent(ctx context.Context, parts ...gemini.Part) (*gemini.GenerateContentResponse, error)
}

type Generator struct {
	*gemini.Client
	probe.Options

	model func(request *Request) contentModel
}

var (
	_ probe.ChatGenerator = (*Generator)(nil)
	_ probe.Preparer      = (*Generator)(nil)
)

func New(client *gemini.Client, opts ...probe.Option) *Generator {
	i := &Generator{
		Client: client,
	}
	probe.WithProvider(probe.ProviderFromClient(client))(&i.Options)
	for _, opt := range opts {
		opt(&i.Options)
	}
	i.model = i.generativeModel
	return i
}

func (i *Generator) generativeModel(request *Request) contentModel {
	model := i.GenerativeModel(request.Model)
	model.SetMaxOutputTokens(request.MaxOutputTokens)
	model.SetTemperature(request.Temperature)
	model.SystemInstruction = request.System
	if len(request.History) == 0 {
		return model
	}
	cs := model.StartChat()
	cs.History = request.History
	return chatSession{cs}
}

// chatSession adapts a chat session to contentModel.
type chatSession struct {
	*gemini.ChatSession
}

func (s chatSession) GenerateContent(ctx context.Context, parts ...gemini.Part) (*gemini.GenerateContentResponse, error) {
	return s.SendMessage(ctx, parts...)
}
