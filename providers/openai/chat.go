package openai

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bububa/probe-go"
	"github.com/bububa/probe-go/internal/chat"
)

func (i *Generator) Generate(ctx context.Context, request *probe.Request) (*probe.Result, error) {
	return chat.Handler(i, ctx, request)
}

func (i *Generator) Prepare(request *probe.Request) (*probe.Request, error) {
	return chat.Prepare(i, request)
}

func (i *Generator) Handler(ctx context.Context, request *probe.Request) (*probe.Result, error) {
	req, err := ConvertRequestFrom(request)
	if err != nil {
		return nil, err
	}
	if i.Verbose() {
		bs, _ := json.Marshal(req)
		log.Printf("%s Request: %s\n", i.Provider(), string(bs))
	}

	resp, err := i.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, i.remoteError(request, err)
	}
	if i.Verbose() {
		bs, _ := json.Marshal(resp)
		log.Printf("%s Response: %s\n", i.Provider(), string(bs))
	}
	ret, err := ConvertResponseTo(&resp)
	if err != nil {
		return nil, i.remoteError(request, err)
	}
	return ret, nil
}

func (i *Generator) remoteError(request *probe.Request, err error) *probe.RemoteCallError {
	ret := &probe.RemoteCallError{
		Provider: i.Provider(),
		Model:    request.Model,
		Err:      err,
	}
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	if errors.As(err, &apiErr) {
		ret.StatusCode = apiErr.HTTPStatusCode
	} else if errors.As(err, &reqErr) {
		ret.StatusCode = reqErr.HTTPStatusCode
	}
	return ret
}
