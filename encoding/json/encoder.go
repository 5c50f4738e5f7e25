package json

import (
	"bytes"
	"reflect"

	"github.com/bububa/ljson"
	"github.com/go-playground/validator/v10"

	"github.com/bububa/probe-go"
)

type Encoder struct {
	schema   *probe.Schema
	validate *validator.Validate
}

var (
	_ probe.Encoder   = (*Encoder)(nil)
	_ probe.Validator = (*Encoder)(nil)
)

// NewEncoder builds an encoder for replies shaped like v.
func NewEncoder(v any) (*Encoder, error) {
	schema, err := probe.NewSchema(reflect.TypeOf(v))
	if err != nil {
		return nil, err
	}
	return &Encoder{
		schema:   schema,
		validate: validator.New(),
	}, nil
}

// Unmarshal decodes the JSON found in bs into ret. Prose around the JSON is
// ignored and mistyped scalars are coerced where possible.
func (e *Encoder) Unmarshal(bs []byte, ret any) error {
	return ljson.Unmarshal(cleanup(bs), ret)
}

func (e *Encoder) Validate(v any) error {
	return e.validate.Struct(v)
}

func (e *Encoder) Context() []byte {
	var b bytes.Buffer
	b.WriteString("\n\nPlease respond with JSON in the following JSON schema:\n")
	b.WriteString("```json\n")
	b.WriteString(e.schema.String)
	b.WriteString("\n```\n")
	b.WriteString("Make sure to return an instance of the JSON, not the schema itself\n")
	return b.Bytes()
}

func (e *Encoder) Schema() *probe.Schema {
	return e.schema
}

func cleanup(bs []byte) []byte {
	return trimPostfixAfterJSON(trimPrefixBeforeJSON(bs))
}

// Removes any prefixes before the JSON (like "Sure, here you go:")
func trimPrefixBeforeJSON(bs []byte) []byte {
	startObject := bytes.IndexByte(bs, '{')
	startArray := bytes.IndexByte(bs, '[')

	var start int
	if startObject == -1 && startArray == -1 {
		return bs
	} else if startObject == -1 {
		start = startArray
	} else if startArray == -1 {
		start = startObject
	} else {
		start = min(startObject, startArray)
	}

	return bs[start:]
}

// Removes any postfixes after the JSON
func trimPostfixAfterJSON(bs []byte) []byte {
	endObject := bytes.LastIndexByte(bs, '}')
	endArray := bytes.LastIndexByte(bs, ']')

	var end int
	if endObject == -1 && endArray == -1 {
		return bs
	} else if endObject == -1 {
		end = endArray
	} else if endArray == -1 {
		end = endObject
	} else {
		end = max(endObject, endArray)
	}

	return bs[:end+1]
}
