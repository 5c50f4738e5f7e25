package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/bububa/probe-go"
	"github.com/bububa/probe-go/encoding"
)

var ErrNoInstructions = errors.New("encoder produced no format instructions")

// Handler drives one generation through i. In structured modes the prompt is
// extended with the encoder's instructions and the reply is decoded into a
// probe.ImageDescription, retrying up to i.MaxRetries() times when decoding or
// validation fails. Remote errors are returned immediately.
func Handler(i probe.ChatGenerator, ctx context.Context, request *probe.Request) (*probe.Result, error) {
	request, err := Prepare(i, request)
	if err != nil {
		return nil, err
	}
	enc := i.Encoder()

	// keep a running total of usage
	usage := new(probe.UsageSum)
	retErr := errors.New("hit max retry attempts")

	for attempt := 0; attempt <= i.MaxRetries(); attempt++ {
		if i.Verbose() {
			if bs, err := json.Marshal(request); err != nil {
				log.Printf("%s Request(attempt:%d) MarshalError: %v\n", i.Provider(), attempt, err)
			} else {
				log.Printf("%s Request(attempt:%d): %s\n", i.Provider(), attempt, string(bs))
			}
		}

		resp, err := i.Handler(ctx, request)
		if err != nil {
			return nil, wrapError(i, request, err)
		}

		if i.Verbose() {
			log.Printf("%s Response(attempt:%d): %s\n", i.Provider(), attempt, resp.Text)
		}
		usage.Add(resp.Usage)

		if enc == nil {
			resp.Usage = usage.Usage()
			return resp, nil
		}

		desc := new(probe.ImageDescription)
		if err := enc.Unmarshal([]byte(resp.Text), desc); err != nil {
			if i.Verbose() {
				log.Printf("Err(attempt:%d): %+v\n", attempt, err)
			}
			retErr = errors.Join(retErr, err)
			continue
		}

		if i.Validate() {
			if validator, ok := enc.(probe.Validator); ok {
				if err := validator.Validate(desc); err != nil {
					if i.Verbose() {
						log.Printf("Err(attempt:%d): %+v\n", attempt, err)
					}
					retErr = errors.Join(retErr, err)
					continue
				}
			}
		}

		resp.Description = desc
		resp.Usage = usage.Usage()
		return resp, nil
	}
	return nil, &probe.RemoteCallError{
		Provider: i.Provider(),
		Model:    request.Model,
		Err:      retErr,
	}
}

// Prepare returns the request as it will be sent: in structured modes a copy
// carrying the encoder's format instructions. Requests that already carry
// them are returned as is.
func Prepare(i probe.ChatGenerator, request *probe.Request) (*probe.Request, error) {
	enc := i.Encoder()
	if enc == nil && i.Mode() != probe.ModePlainText {
		var err error
		if enc, err = encoding.PredefinedEncoder(i.Mode(), probe.ImageDescription{}); err != nil {
			return nil, err
		}
		i.SetEncoder(enc)
	}
	if enc == nil || request.Instructed() {
		return request, nil
	}
	instructions := enc.Context()
	if len(instructions) == 0 {
		if i.Verbose() {
			log.Printf("%s Encoder(mode:%s): no format instructions\n", i.Provider(), i.Mode())
		}
		return nil, ErrNoInstructions
	}
	return request.WithInstructions(string(instructions)), nil
}

func wrapError(i probe.ChatGenerator, request *probe.Request, err error) error {
	var rc *probe.RemoteCallError
	if errors.As(err, &rc) {
		return err
	}
	return &probe.RemoteCallError{
		Provider: i.Provider(),
		Model:    request.Model,
		Err:      err,
	}
}
