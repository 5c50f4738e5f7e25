package probe

type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
	TotalTokens  int `json:"totalTokens,omitempty"`
}

// Result is the normalized reply of a provider. Usage is nil when the provider
// did not report token counts.
type Result struct {
	Text        string            `json:"text"`
	Usage       *Usage            `json:"usage,omitempty"`
	Description *ImageDescription `json:"description,omitempty"`
}

// UsageSum keeps a running total of usage across attempts.
type UsageSum struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int

	reported bool
}

func (s *UsageSum) Add(usage *Usage) {
	if usage == nil {
		return
	}
	s.reported = true
	s.InputTokens += usage.InputTokens
	s.OutputTokens += usage.OutputTokens
	s.TotalTokens += usage.TotalTokens
}

// Usage returns the total, or nil when no attempt reported usage.
func (s *UsageSum) Usage() *Usage {
	if !s.reported {
		return nil
	}
	return &Usage{
		InputTokens:  s.InputTokens,
		OutputTokens: s.OutputTokens,
		TotalTokens:  s.TotalTokens,
	}
}
