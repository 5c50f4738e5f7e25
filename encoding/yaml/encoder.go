package yaml

import (
	"bytes"
	"reflect"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/bububa/probe-go"
)

var (
	ignorePrefix = []byte("```yaml")
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
	return yaml.Marshal(v)
}

func (e *Encoder) Unmarshal(bs []byte, ret any) error {
	return yaml.Unmarshal(cleanup(bs), ret)
}

func (e *Encoder) Validate(req any) error {
	return e.validate.Struct(req)
}

// Context shows the model a fake instance of the reply type rather than a
// schema. It returns nil when the instance cannot be rendered.
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
	b.WriteString("\n\nPlease respond with YAML in the following YAML schema:\n")
	b.WriteString("```yaml\n")
	b.Write(bs)
	b.WriteString("```\n")
	b.WriteString("Make sure to return an instance of the YAML, not the schema itself\n")
	return b.Bytes()
}

// cleanup keeps the body of a ```yaml fence when the reply has one.
func cleanup(bs []byte) []byte {
	start := bytes.Index(bs, ignorePrefix)
	if start == -1 {
		return bytes.TrimSpace(bs)
	}
	body := bs[start+len(ignorePrefix):]
	if end := bytes.LastIndex(body, ignoreSuffix); end != -1 {
		body = body[:end]
	}
	return bytes.TrimSpace(body)
}
