package format

import (
	"encoding"

	"github.com/johnthecat/regexp-toolset-sub000/parser"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(node parser.Node) error
}

type options struct {
	color bool
	spans bool
}

// Option configures an encoder.
type Option func(*options)

// WithColor turns terminal colors on or off.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

// WithSpans controls whether byte spans are included in the output.
func WithSpans(enabled bool) Option {
	return func(o *options) {
		o.spans = enabled
	}
}

func buildOptions(opts []Option) options {
	o := options{spans: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
