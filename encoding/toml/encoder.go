package toml

import (
	"bytes"
	"reflect"

	"github.com/BurntSushi/toml"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-playground/validator/v10"

	"github.com/bububa/probe-go"
)

var (
	ignorePrefix = []byte("```toml")
	ignoreSuffix = []byte("```")
)

type Encoder struct {
	reqType  reflect.Type
	validate *validator.Validate
}

var (
	_ probe.Encoder   = (*Encoder)(nil)
	_ probe.Validator = (*Encoder)(nil)
)

func NewEncoder(req any) *Encoder {
	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return &Encoder{
		reqType:  t,
		validate: validator.New(),
	}
}

func (e *Encoder) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (e *Encoder) Unmarshal(bs []byte, ret any) error {
	return toml.Unmarshal(cleanup(bs), ret)
}

func (e *Encoder) Validate(req any) error {
	return e.validate.Struct(req)
}

func (e *Encoder) Context() []byte {
	instance := reflect.New(e.reqType).Interface()
	if err := gofakeit.Struct(instance); err != nil {
		return nil
	}
	bs, err := e.Marshal(instance)
	if err != nil {
		return nil
	}
	var b bytes.Buffer
	b.WriteString("\n\nPlease respond with TOML in the following TOML schema:\n\n")
	b.WriteString("```toml\n")
	b.Write(bs)
	b.WriteString("```")
	b.WriteString("\nMake sure to return an instance of the TOML, not the schema itself\n")
	return b.Bytes()
}

// cleanup strips the ```toml fence and anything around it.
func cleanup(bs []byte) []byte {
	start := bytes.Index(bs, ignorePrefix)
	if start == -1 {
		return bytes.TrimSpace(bs)
	}
	body := bs[start+len(ignorePrefix):]
	end := bytes.LastIndex(body, ignoreSuffix)
	if end == -1 {
		return bytes.TrimSpace(body)
	}
	return bytes.TrimSpace(body[:end])
}
