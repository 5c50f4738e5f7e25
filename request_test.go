package probe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyJPEG = "data:image/jpeg;base64,/9j/4AAQSkZJRg=="

func TestNewImageRequestPartOrder(t *testing.T) {
	req, err := NewImageRequest("gpt-4o-mini", "What is this?", tinyJPEG, 200, 0.1)
	require.NoError(t, err)

	bs, err := json.Marshal(req)
	require.NoError(t, err)

	var payload struct {
		Model           string  `json:"model"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
		Temperature     float32 `json:"temperature"`
		Messages        []struct {
			Role    string `json:"role"`
			Content []struct {
				Kind string `json:"kind"`
				Text string `json:"text"`
				Data string `json:"data"`
			} `json:"content"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(bs, &payload))
	assert.Equal(t, "gpt-4o-mini", payload.Model)
	assert.Equal(t, 200, payload.MaxOutputTokens)
	assert.InDelta(t, 0.1, payload.Temperature, 1e-6)
	require.Len(t, payload.Messages, 1)
	assert.Equal(t, "user", payload.Messages[0].Role)
	require.Len(t, payload.Messages[0].Content, 2)
	assert.Equal(t, "text", payload.Messages[0].Content[0].Kind)
	assert.Equal(t, "What is this?", payload.Messages[0].Content[0].Text)
	assert.Equal(t, "image", payload.Messages[0].Content[1].Kind)
	assert.Equal(t, tinyJPEG, payload.Messages[0].Content[1].Data)
}

func TestNewImageRequestValidation(t *testing.T) {
	cases := map[string]struct {
		model, prompt, uri string
		maxTokens          int
		temperature        float32
	}{
		"empty model":     {"", "hi", tinyJPEG, 200, 0.1},
		"empty prompt":    {"m", "", tinyJPEG, 200, 0.1},
		"bad uri":         {"m", "hi", "https://example.com/cat.jpg", 200, 0.1},
		"zero max tokens": {"m", "hi", tinyJPEG, 0, 0.1},
		"negative temp":   {"m", "hi", tinyJPEG, 200, -1},
		"high temp":       {"m", "hi", tinyJPEG, 200, 2.5},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewImageRequest(c.model, c.prompt, c.uri, c.maxTokens, c.temperature)
			assert.Error(t, err)
		})
	}
}

func TestContentPartValidate(t *testing.T) {
	assert.Error(t, ContentPart{Kind: "video", Data: tinyJPEG}.Validate())
	assert.Error(t, ContentPart{Kind: PartText, Text: "x", Data: tinyJPEG}.Validate())
	assert.Error(t, ContentPart{Kind: PartImage, Text: "x", Data: tinyJPEG}.Validate())
	assert.Error(t, ContentPart{Kind: PartImage}.Validate())
	assert.NoError(t, ContentPart{Kind: PartImage, Data: tinyJPEG}.Validate())
}

func TestWithInstructions(t *testing.T) {
	req, err := NewImageRequest("m", "Describe.", tinyJPEG, 10, 0)
	require.NoError(t, err)

	ext := req.WithInstructions(" Reply in JSON.")
	require.Len(t, ext.Messages[0].Content, 2)
	assert.Equal(t, "Describe. Reply in JSON.", ext.Messages[0].Content[0].Text)
	assert.Equal(t, PartImage, ext.Messages[0].Content[1].Kind)
	assert.Equal(t, "Describe.", req.Messages[0].Content[0].Text, "request must not change")
}
