package probe

type Encoder interface {
	// Context returns the instructions appended to the prompt so the model
	// replies in the encoder's format.
	Context() []byte
	Unmarshal([]byte, any) error
}

type Validator interface {
	Validate(any) error
}
