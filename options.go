package probe

const (
	DefaultMaxRetries = 0
	DefaultValidator  = false
	DefaultVerbose    = false
)

type Option func(o *Options)

type Options struct {
	provider   Provider
	mode       Mode
	enc        Encoder
	maxRetries int
	validate   bool
	verbose    bool
}

func WithProvider(provider Provider) Option {
	return func(o *Options) {
		o.provider = provider
	}
}

func WithMode(mode Mode) Option {
	return func(o *Options) {
		o.mode = mode
	}
}

func WithEncoder(enc Encoder) Option {
	return func(o *Options) {
		o.enc = enc
	}
}

// WithMaxRetries sets how many extra attempts are made when a structured reply
// cannot be decoded. Remote errors are never retried.
func WithMaxRetries(maxRetries int) Option {
	return func(o *Options) {
		if maxRetries < 0 {
			maxRetries = 0
		}
		o.maxRetries = maxRetries
	}
}

func WithValidation() Option {
	return func(o *Options) {
		o.validate = true
	}
}

func WithVerbose() Option {
	return func(o *Options) {
		o.verbose = true
	}
}

func (i Options) Provider() Provider {
	return i.provider
}

func (i Options) Mode() Mode {
	if i.mode == "" {
		return ModeDefault
	}
	return i.mode
}

func (i *Options) SetEncoder(enc Encoder) {
	i.enc = enc
}

func (i Options) Encoder() Encoder {
	return i.enc
}

func (i Options) MaxRetries() int {
	return i.maxRetries
}

func (i Options) Validate() bool {
	return i.validate
}

func (i Options) Verbose() bool {
	return i.verbose
}
