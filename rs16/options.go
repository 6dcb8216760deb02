package rs16

import "github.com/malaire/reed-solomon-16/gf16"

type options struct {
	engine gf16.Engine
}

func defaultOptions() options {
	return options{engine: gf16.ScalarEngine{}}
}

// Option configures an Encoder or Decoder at construction time.
type Option func(*options)

// WithEngine overrides the field-arithmetic engine. The default is
// gf16.ScalarEngine, the only engine this module ships; the option exists
// so a future SIMD-accelerated engine can be substituted without changing
// this package's API.
func WithEngine(eng gf16.Engine) Option {
	return func(o *options) { o.engine = eng }
}
