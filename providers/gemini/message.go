package gemini

import (
	"errors"
	"fmt"
	"strings"

	gemini "github.com/google/generative-ai-go/genai"

	"github.com/bububa/probe-go"
)

const (
	roleUser  = "user"
	roleModel = "model"
)

// ConvertRequestFrom splits the request into the parts of the last message and
// the history before it. System messages become the system instruction.
func ConvertRequestFrom(src *probe.Request) (*Request, error) {
	req := &Request{
		Model:           src.Model,
		MaxOutputTokens: int32(src.MaxOutputTokens),
		Temperature:     src.Temperature,
	}
	contents := make([]*gemini.Content, 0, len(src.Messages))
	for idx := range src.Messages {
		msg := &src.Messages[idx]
		content := new(gemini.Content)
		if err := ConvertMessageFrom(msg, content); err != nil {
			return nil, fmt.Errorf("messages[%d]: %w", idx, err)
		}
		if msg.Role == probe.SystemRole {
			if req.System == nil {
				req.System = content
			} else {
				req.System.Parts = append(req.System.Parts, content.Parts...)
			}
			continue
		}
		contents = append(contents, content)
	}
	if len(contents) == 0 {
		return nil, errors.New("no user message")
	}
	last := contents[len(contents)-1]
	req.Parts = last.Parts
	req.History = contents[:len(contents)-1]
	return req, nil
}

func ConvertMessageFrom(src *probe.Message, dist *gemini.Content) error {
	switch src.Role {
	case probe.UserRole, probe.SystemRole:
		dist.Role = roleUser
	case probe.AssistantRole:
		dist.Role = roleModel
	default:
		return errors.New("do not support role")
	}
	list := make([]gemini.Part, 0, len(src.Content))
	for _, part := range src.Content {
		switch part.Kind {
		case probe.PartText:
			list = append(list, gemini.Text(part.Text))
		case probe.PartImage:
			mediaType, data, err := probe.ParseDataURI(part.Data)
			if err != nil {
				return err
			}
			list = append(list, gemini.Blob{
				MIMEType: mediaType,
				Data:     data,
			})
		default:
			return fmt.Errorf("unsupported content kind %q", part.Kind)
		}
	}
	dist.Parts = list
	return nil
}

// ConvertResponseTo joins the text parts of the first candidate with content.
func ConvertResponseTo(src *gemini.GenerateContentResponse) (*probe.Result, error) {
	if src == nil {
		return nil, probe.ErrNoContent
	}
	var b strings.Builder
	for _, cand := range src.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(gemini.Text); ok {
				b.WriteString(string(text))
			}
		}
		if b.Len() > 0 {
			break
		}
	}
	if b.Len() == 0 {
		return nil, probe.ErrNoContent
	}
	ret := &probe.Result{Text: b.String()}
	if u := src.UsageMetadata; u != nil {
		ret.Usage = &probe.Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}
	return ret, nil
}
