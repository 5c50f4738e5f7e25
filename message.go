package probe

import (
	"errors"
	"fmt"
)

type Role string

const (
	SystemRole    Role = "system"
	UserRole      Role = "user"
	AssistantRole Role = "assistant"
)

type PartKind string

const (
	PartText  PartKind = "text"
	PartImage PartKind = "image"
)

// ContentPart is one unit of a multimodal message. Kind selects which of Text
// or Data is meaningful.
type ContentPart struct {
	Kind PartKind `json:"kind" validate:"oneof=text image"`
	Text string   `json:"text,omitempty"`
	Data string   `json:"data,omitempty" validate:"omitempty,datauri"`
}

func TextPart(text string) (ContentPart, error) {
	part := ContentPart{Kind: PartText, Text: text}
	if err := part.Validate(); err != nil {
		return ContentPart{}, err
	}
	return part, nil
}

// ImagePart wraps a base64 data URI. The URI is checked here rather than left
// for the remote API to reject.
func ImagePart(dataURI string) (ContentPart, error) {
	part := ContentPart{Kind: PartImage, Data: dataURI}
	if err := part.Validate(); err != nil {
		return ContentPart{}, err
	}
	return part, nil
}

func (p ContentPart) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	switch p.Kind {
	case PartText:
		if p.Text == "" {
			return errors.New("text part has no text")
		}
		if p.Data != "" {
			return errors.New("text part must not carry data")
		}
	case PartImage:
		if p.Text != "" {
			return errors.New("image part must not carry text")
		}
		if _, _, err := SplitDataURI(p.Data); err != nil {
			return err
		}
	}
	return nil
}

type Message struct {
	Role    Role          `json:"role" validate:"oneof=system user assistant"`
	Content []ContentPart `json:"content" validate:"min=1"`
}

// NewUserMessage builds the probe message: the prompt followed by the image.
func NewUserMessage(prompt string, dataURI string) (Message, error) {
	text, err := TextPart(prompt)
	if err != nil {
		return Message{}, fmt.Errorf("text part: %w", err)
	}
	image, err := ImagePart(dataURI)
	if err != nil {
		return Message{}, fmt.Errorf("image part: %w", err)
	}
	return Message{
		Role:    UserRole,
		Content: []ContentPart{text, image},
	}, nil
}

func (m Message) Validate() error {
	if err := validate.Struct(m); err != nil {
		return err
	}
	for idx, part := range m.Content {
		if err := part.Validate(); err != nil {
			return fmt.Errorf("content[%d]: %w", idx, err)
		}
	}
	return nil
}
