package probe

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const (
	DefaultMaxOutputTokens = 200
	DefaultTemperature     = 0.1
)

type Request struct {
	Model           string    `json:"model" validate:"required"`
	Messages        []Message `json:"messages" validate:"min=1"`
	MaxOutputTokens int       `json:"maxOutputTokens" validate:"gt=0"`
	Temperature     float32   `json:"temperature" validate:"gte=0,lte=2"`

	instructed bool
}

// NewImageRequest builds a single-message request holding the prompt and the
// image, in that order.
func NewImageRequest(model, prompt, dataURI string, maxOutputTokens int, temperature float32) (*Request, error) {
	msg, err := NewUserMessage(prompt, dataURI)
	if err != nil {
		return nil, err
	}
	req := &Request{
		Model:           model,
		Messages:        []Message{msg},
		MaxOutputTokens: maxOutputTokens,
		Temperature:     temperature,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// Instructed reports whether reply format instructions were already appended.
func (r *Request) Instructed() bool {
	return r.instructed
}

func (r *Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	for idx, msg := range r.Messages {
		if err := msg.Validate(); err != nil {
			return fmt.Errorf("messages[%d]: %w", idx, err)
		}
	}
	return nil
}

// WithInstructions returns a copy of r whose last text part has extra appended.
// Part order and count are unchanged.
func (r *Request) WithInstructions(extra string) *Request {
	ret := *r
	ret.instructed = true
	ret.Messages = make([]Message, len(r.Messages))
	for idx, msg := range r.Messages {
		msg.Content = append([]ContentPart(nil), msg.Content...)
		ret.Messages[idx] = msg
	}
	for m := len(ret.Messages) - 1; m >= 0; m-- {
		content := ret.Messages[m].Content
		for p := len(content) - 1; p >= 0; p-- {
			if content[p].Kind == PartText {
				content[p].Text += extra
				return &ret
			}
		}
	}
	return &ret
}
