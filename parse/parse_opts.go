package parse

import "github.com/signadot/diffx/token"

type parseOpts struct {
	granularity Granularity
	whitespace  Whitespace
	namespaces  bool
	factory     *token.Factory
}

type ParseOption func(*parseOpts)

func WithGranularity(g Granularity) ParseOption {
	return func(o *parseOpts) { o.granularity = g }
}
func WithWhitespace(ws Whitespace) ParseOption {
	return func(o *parseOpts) { o.whitespace = ws }
}

// WithNamespaces turns namespace processing on or off. When off, element
// and attribute names keep their prefix and namespace declarations are
// loaded as ordinary attributes.
func WithNamespaces(v bool) ParseOption {
	return func(o *parseOpts) { o.namespaces = v }
}

// WithFactory shares a token factory between loads.
func WithFactory(f *token.Factory) ParseOption {
	return func(o *parseOpts) { o.factory = f }
}

func newParseOpts(opts []ParseOption) *parseOpts {
	o := &parseOpts{
		granularity: GranularitySpaceWord,
		whitespace:  WhitespaceCompare,
		namespaces:  true,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.factory == nil {
		o.factory = token.NewFactory()
	}
	return o
}
