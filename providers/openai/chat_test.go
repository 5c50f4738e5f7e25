package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bububa/probe-go"
)

const tinyJPEG = "data:image/jpeg;base64,/9j/4A=="

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *Generator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = srv.URL + "/v1"
	return New(openai.NewClientWithConfig(config))
}

func imageRequest(t *testing.T) *probe.Request {
	t.Helper()
	req, err := probe.NewImageRequest(openai.GPT4oMini, "What is in this image?", tinyJPEG, 200, 0.1)
	require.NoError(t, err)
	return req
}

func TestGenerate(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			Model     string `json:"model"`
			MaxTokens int    `json:"max_tokens"`
			Messages  []struct {
				Role    string `json:"role"`
				Content []struct {
					Type     string `json:"type"`
					Text     string `json:"text"`
					ImageURL struct {
						URL    string `json:"url"`
						Detail string `json:"detail"`
					} `json:"image_url"`
				} `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, openai.GPT4oMini, body.Model)
		assert.Equal(t, 200, body.MaxTokens)
		require.Len(t, body.Messages, 1)
		assert.Equal(t, "user", body.Messages[0].Role)
		require.Len(t, body.Messages[0].Content, 2)
		assert.Equal(t, "text", body.Messages[0].Content[0].Type)
		assert.Equal(t, "What is in this image?", body.Messages[0].Content[0].Text)
		assert.Equal(t, "image_url", body.Messages[0].Content[1].Type)
		assert.Equal(t, tinyJPEG, body.Messages[0].Content[1].ImageURL.URL)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "A cat."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 50, "completion_tokens": 5, "total_tokens": 55}
		}`))
	})

	ret, err := gen.Generate(context.Background(), imageRequest(t))
	require.NoError(t, err)
	assert.Equal(t, "A cat.", ret.Text)
	assert.Equal(t, &probe.Usage{InputTokens: 50, OutputTokens: 5, TotalTokens: 55}, ret.Usage)
}

func TestGenerateUnauthorized(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error", "code": "invalid_api_key"}}`))
	})

	_, err := gen.Generate(context.Background(), imageRequest(t))
	var rc *probe.RemoteCallError
	require.True(t, errors.As(err, &rc))
	assert.Equal(t, probe.ProviderOpenAI, rc.Provider)
	assert.Equal(t, openai.GPT4oMini, rc.Model)
	assert.Equal(t, http.StatusUnauthorized, rc.StatusCode)
}

func TestConvertResponseTo(t *testing.T) {
	_, err := ConvertResponseTo(&openai.ChatCompletionResponse{})
	assert.ErrorIs(t, err, probe.ErrNoContent)

	ret, err := ConvertResponseTo(&openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "A cat."}}},
	})
	require.NoError(t, err)
	assert.Nil(t, ret.Usage)
}

func TestConvertMessageFromSystem(t *testing.T) {
	msg, err := ConvertMessageFrom(&probe.Message{
		Role:    probe.SystemRole,
		Content: []probe.ContentPart{{Kind: probe.PartText, Text: "Be brief."}},
	})
	require.NoError(t, err)
	assert.Equal(t, openai.ChatMessageRoleSystem, msg.Role)
	require.Len(t, msg.MultiContent, 1)

	_, err = ConvertMessageFrom(&probe.Message{
		Role:    probe.UserRole,
		Content: []probe.ContentPart{{Kind: "video"}},
	})
	assert.Error(t, err)

	_, err = ConvertMessageFrom(&probe.Message{
		Role:    "tool",
		Content: []probe.ContentPart{{Kind: probe.PartText, Text: "x"}},
	})
	assert.EqualError(t, err, "do not support role")
}

func TestGenerateZeroTemperature(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		raw, ok := body["temperature"]
		require.True(t, ok, "temperature must be sent")
		var temperature float64
		require.NoError(t, json.Unmarshal(raw, &temperature))
		assert.InDelta(t, 0, temperature, 1e-6)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": [{"index": 0, "message": {"role": "assistant", "content": "A cat."}}]}`))
	})

	req, err := probe.NewImageRequest(openai.GPT4oMini, "What is in this image?", tinyJPEG, 200, 0)
	require.NoError(t, err)
	ret, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, ret.Usage)
}
