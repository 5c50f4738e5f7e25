package openai

import (
	"errors"
	"fmt"
	"math"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bububa/probe-go"
)

func ConvertRequestFrom(src *probe.Request) (openai.ChatCompletionRequest, error) {
	req := openai.ChatCompletionRequest{
		Model:       src.Model,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(src.Messages)),
		MaxTokens:   src.MaxOutputTokens,
		Temperature: src.Temperature,
	}
	// go-openai omits a zero temperature, which the API reads as its default.
	if req.Temperature == 0 {
		req.Temperature = math.SmallestNonzeroFloat32
	}
	for idx := range src.Messages {
		msg, err := ConvertMessageFrom(&src.Messages[idx])
		if err != nil {
			return req, fmt.Errorf("messages[%d]: %w", idx, err)
		}
		req.Messages = append(req.Messages, msg)
	}
	return req, nil
}

func ConvertMessageFrom(src *probe.Message) (openai.ChatCompletionMessage, error) {
	var dist openai.ChatCompletionMessage
	switch src.Role {
	case probe.SystemRole:
		dist.Role = openai.ChatMessageRoleSystem
	case probe.UserRole:
		dist.Role = openai.ChatMessageRoleUser
	case probe.AssistantRole:
		dist.Role = openai.ChatMessageRoleAssistant
	default:
		return dist, errors.New("do not support role")
	}
	dist.MultiContent = make([]openai.ChatMessagePart, 0, len(src.Content))
	for _, part := range src.Content {
		switch part.Kind {
		case probe.PartText:
			dist.MultiContent = append(dist.MultiContent, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeText,
				Text: part.Text,
			})
		case probe.PartImage:
			dist.MultiContent = append(dist.MultiContent, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    part.Data,
					Detail: openai.ImageURLDetailAuto,
				},
			})
		default:
			return dist, fmt.Errorf("unsupported content kind %q", part.Kind)
		}
	}
	return dist, nil
}

// ConvertResponseTo takes the first choice's content. Zero token counts are
// treated as unreported usage.
func ConvertResponseTo(src *openai.ChatCompletionResponse) (*probe.Result, error) {
	if len(src.Choices) == 0 || src.Choices[0].Message.Content == "" {
		return nil, probe.ErrNoContent
	}
	ret := &probe.Result{
		Text: src.Choices[0].Message.Content,
	}
	if u := src.Usage; u.PromptTokens != 0 || u.CompletionTokens != 0 {
		ret.Usage = &probe.Usage{
			InputTokens:  u.PromptTokens,
			OutputTokens: u.CompletionTokens,
			TotalTokens:  u.TotalTokens,
		}
	}
	return ret, nil
}
