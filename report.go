package probe

import (
	"encoding/json"
	"fmt"
	"io"
)

// Report collects what a probe run observed. Fields after the failing step
// are left zero.
type Report struct {
	RunID     string
	ImagePath string
	Provider  Provider
	Model     string
	MediaType string

	BufferLength int
	Base64Length int
	Preview      string
	Payload      []byte

	Result *Result
	Err    error
}

func (r *Report) Print(w io.Writer) error {
	p := &printer{w: w}
	if r.BufferLength > 0 {
		p.printf("Image buffer length: %d bytes\n", r.BufferLength)
	}
	if r.Base64Length > 0 {
		p.printf("Base64 length: %d\n", r.Base64Length)
		p.printf("Base64 preview: %s\n", r.Preview)
	}
	if len(r.Payload) > 0 {
		p.printf("Request payload:\n%s\n", r.Payload)
	}
	if r.Err != nil {
		p.printf("Error: %v\n", r.Err)
		return p.err
	}
	if r.Result != nil {
		p.printf("Response text: %s\n", r.Result.Text)
		if r.Result.Description != nil {
			bs, err := json.MarshalIndent(r.Result.Description, "", "  ")
			if err != nil {
				return err
			}
			p.printf("Description:\n%s\n", bs)
		}
		if r.Result.Usage == nil {
			p.printf("Usage: not reported\n")
		} else {
			bs, err := json.Marshal(r.Result.Usage)
			if err != nil {
				return err
			}
			p.printf("Usage: %s\n", bs)
		}
	}
	return p.err
}

// printer stops writing after the first error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
