package probe

// ImageDescription is the reply shape requested in the structured modes. The
// fake tags fill the example instance shown to the model in YAML and TOML mode.
type ImageDescription struct {
	Summary string   `json:"summary" yaml:"summary" toml:"summary" jsonschema:"title=summary,description=One sentence describing the image" validate:"required" fake:"A cat sleeping on a sofa."`
	Objects []string `json:"objects,omitempty" yaml:"objects,omitempty" toml:"objects,omitempty" jsonschema:"title=objects,description=Notable objects visible in the image" fake:"{noun}" fakesize:"2"`
	Text    string   `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty" jsonschema:"title=text,description=Any legible text in the image" fake:"skip"`
}
