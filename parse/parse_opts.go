package parse

import "github.com/toon-format/go-toon/format"

type parseOpts struct {
	format format.Format
}

type ParseOption func(*parseOpts)

// ParseFormat selects the input text format. The default is JSON.
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}
