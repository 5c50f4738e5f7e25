package anthropic

import (
	"errors"
	"fmt"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/bububa/probe-go"
	"github.com/bububa/probe-go/internal"
)

// ConvertRequestFrom maps the request onto the Messages API. System messages
// become the request's system prompt.
func ConvertRequestFrom(src *probe.Request) (anthropic.MessagesRequest, error) {
	req := anthropic.MessagesRequest{
		Model:       anthropic.Model(src.Model),
		Messages:    make([]anthropic.Message, 0, len(src.Messages)),
		MaxTokens:   src.MaxOutputTokens,
		Temperature: internal.ToPtr(src.Temperature),
	}
	for idx := range src.Messages {
		msg := &src.Messages[idx]
		if msg.Role == probe.SystemRole {
			for _, part := range msg.Content {
				if part.Kind != probe.PartText {
					continue
				}
				if req.System != "" {
					req.System += "\n"
				}
				req.System += part.Text
			}
			continue
		}
		var dist anthropic.Message
		if err := ConvertMessageFrom(msg, &dist); err != nil {
			return req, fmt.Errorf("messages[%d]: %w", idx, err)
		}
		req.Messages = append(req.Messages, dist)
	}
	return req, nil
}

func ConvertMessageFrom(src *probe.Message, dist *anthropic.Message) error {
	switch src.Role {
	case probe.UserRole:
		dist.Role = anthropic.RoleUser
	case probe.AssistantRole:
		dist.Role = anthropic.RoleAssistant
	default:
		return errors.New("do not support role")
	}
	list := make([]anthropic.MessageContent, 0, len(src.Content))
	for _, part := range src.Content {
		switch part.Kind {
		case probe.PartText:
			list = append(list, anthropic.NewTextMessageContent(part.Text))
		case probe.PartImage:
			mediaType, payload, err := probe.SplitDataURI(part.Data)
			if err != nil {
				return err
			}
			source := anthropic.NewMessageContentSource(anthropic.MessagesContentSourceTypeBase64, mediaType, payload)
			list = append(list, anthropic.NewImageMessageContent(source))
		default:
			return fmt.Errorf("unsupported content kind %q", part.Kind)
		}
	}
	dist.Content = list
	return nil
}

// ConvertResponseTo joins the text blocks of the reply.
func ConvertResponseTo(src *anthropic.MessagesResponse) (*probe.Result, error) {
	var text string
	for _, content := range src.Content {
		if content.Type == anthropic.MessagesContentTypeText && content.Text != nil {
			text += *content.Text
		}
	}
	if text == "" {
		return nil, probe.ErrNoContent
	}
	ret := &probe.Result{Text: text}
	if u := src.Usage; u.InputTokens != 0 || u.OutputTokens != 0 {
		ret.Usage = &probe.Usage{
			InputTokens:  u.InputTokens,
			OutputTokens: u.OutputTokens,
			TotalTokens:  u.InputTokens + u.OutputTokens,
		}
	}
	return ret, nil
}
