package probe

import (
	"encoding/json"
	"reflect"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/invopop/jsonschema"
)

var reflectorPool = sync.Pool{
	New: func() any {
		return new(jsonschema.Reflector)
	},
}

type Schema struct {
	*jsonschema.Schema
	String string
}

func NewSchema(t reflect.Type) (*Schema, error) {
	schema := JSONSchema(t)

	str, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, err
	}

	return &Schema{
		Schema: schema,
		String: string(str),
	}, nil
}

// JSONSchema reflects the json schema of t. Nested struct definitions are
// named by a hash of their package path so same-named types do not collide.
func JSONSchema(t reflect.Type) *jsonschema.Schema {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	r := reflectorPool.Get().(*jsonschema.Reflector)
	defer reflectorPool.Put(r)

	r.ExpandedStruct = true
	r.Namer = func(t reflect.Type) string {
		name := t.Name()
		if t.Kind() == reflect.Struct {
			name = t.PkgPath() + "/" + t.Name()
			name = strconv.FormatUint(xxhash.Sum64String(name), 10)
		}
		return name
	}

	return r.ReflectFromType(t)
}
