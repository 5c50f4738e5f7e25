package probe

import (
	"context"
	"encoding/json"
	"errors"
	"os"
)

type Generator interface {
	Provider() Provider
	Generate(ctx context.Context, request *Request) (*Result, error)
}

// ChatGenerator is implemented by the provider adapters so that the shared
// chat handler can drive them. Handler performs exactly one remote call.
type ChatGenerator interface {
	Generator
	Mode() Mode
	MaxRetries() int
	Validate() bool
	Verbose() bool
	Encoder() Encoder
	SetEncoder(Encoder)
	Handler(ctx context.Context, request *Request) (*Result, error)
}

// Preparer is implemented by generators that rewrite a request before
// sending it. Generate accepts the prepared request unchanged.
type Preparer interface {
	Prepare(request *Request) (*Request, error)
}

// Params configures one probe run.
type Params struct {
	ImagePath string
	// MediaType of the image; empty means DefaultMediaType, MediaTypeAuto sniffs it.
	MediaType       string
	Prompt          string
	Model           string
	MaxOutputTokens int
	Temperature     float32
}

// Run reads the image at params.ImagePath, encodes it into a data URI, sends
// it with the prompt to gen and collects everything into a Report. The report
// is never nil; the returned error is one of *FileReadError, *EncodingError or
// *RemoteCallError and is also stored in Report.Err.
func Run(ctx context.Context, gen Generator, params Params) (*Report, error) {
	report := &Report{
		ImagePath: params.ImagePath,
		Provider:  gen.Provider(),
		Model:     params.Model,
	}
	fail := func(err error) (*Report, error) {
		report.Err = err
		return report, err
	}

	data, err := os.ReadFile(params.ImagePath)
	if err != nil {
		return fail(&FileReadError{Path: params.ImagePath, Err: err})
	}
	if len(data) == 0 {
		return fail(&FileReadError{Path: params.ImagePath, Err: ErrEmptyImage})
	}
	report.BufferLength = len(data)

	report.MediaType = ResolveMediaType(params.MediaType, data)
	uri, payload, err := encodeImage(report.MediaType, data)
	if err != nil {
		return fail(&EncodingError{Stage: "encode", Err: err})
	}
	report.Base64Length = len(payload)
	report.Preview = Preview(payload, PreviewLength)

	request, err := NewImageRequest(params.Model, params.Prompt, uri, params.MaxOutputTokens, params.Temperature)
	if err != nil {
		return fail(&EncodingError{Stage: "request", Err: err})
	}
	if p, ok := gen.(Preparer); ok {
		if request, err = p.Prepare(request); err != nil {
			return fail(&EncodingError{Stage: "prepare", Err: err})
		}
	}
	report.Payload, err = json.MarshalIndent(request, "", "  ")
	if err != nil {
		return fail(&EncodingError{Stage: "request", Err: err})
	}

	result, err := gen.Generate(ctx, request)
	if err != nil {
		return fail(asRemoteCallError(gen, request, err))
	}
	report.Result = result
	return report, nil
}

func asRemoteCallError(gen Generator, request *Request, err error) error {
	var rc *RemoteCallError
	if errors.As(err, &rc) {
		return err
	}
	return &RemoteCallError{Provider: gen.Provider(), Model: request.Model, Err: err}
}
