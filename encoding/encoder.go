package encoding

import (
	"fmt"

	"github.com/bububa/probe-go"
	jsonenc "github.com/bububa/probe-go/encoding/json"
	tomlenc "github.com/bububa/probe-go/encoding/toml"
	yamlenc "github.com/bububa/probe-go/encoding/yaml"
)

// PredefinedEncoder returns the encoder used for mode. Plain text needs no
// encoder and yields nil.
func PredefinedEncoder(mode probe.Mode, v any) (probe.Encoder, error) {
	switch mode {
	case probe.ModePlainText:
		return nil, nil
	case probe.ModeJSON:
		enc, err := jsonenc.NewEncoder(v)
		if err != nil {
			return nil, err
		}
		return enc, nil
	case probe.ModeYAML:
		return yamlenc.NewEncoder(v), nil
	case probe.ModeTOML:
		return tomlenc.NewEncoder(v), nil
	}
	return nil, fmt.Errorf("no predefined encoder for mode %q", mode)
}
