package probe

import (
	"fmt"
	"strings"
)

type Mode = string

const (
	ModePlainText Mode = "plain_text_mode"
	ModeJSON      Mode = "json_mode"
	ModeYAML      Mode = "yaml_mode"
	ModeTOML      Mode = "toml_mode"
	ModeDefault   Mode = ModePlainText
)

// ParseMode accepts either the full mode name or its short form ("plain", "json", "yaml", "toml").
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plain", "text", ModePlainText:
		return ModePlainText, nil
	case "json", ModeJSON:
		return ModeJSON, nil
	case "yaml", "yml", ModeYAML:
		return ModeYAML, nil
	case "toml", ModeTOML:
		return ModeTOML, nil
	}
	return "", fmt.Errorf("unknown mode %q", name)
}
