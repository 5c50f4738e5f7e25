package anthropic

import (
	"context"
	"encoding/json"
	"log"

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
		bs, _ := json.MarshalIndent(req, "", "  ")
		log.Printf("%s Request: %s\n", i.Provider(), string(bs))
	}

	resp, err := i.CreateMessages(ctx, req)
	if err != nil {
		return nil, &probe.RemoteCallError{
			Provider: i.Provider(),
			Model:    request.Model,
			Err:      err,
		}
	}
	if i.Verbose() {
		bs, _ := json.Marshal(resp)
		log.Printf("%s Response: %s\n", i.Provider(), string(bs))
	}
	return ConvertResponseTo(&resp)
}
