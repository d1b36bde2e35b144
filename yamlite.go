package yamlite

import "fmt"

// defaultMaxDepth bounds how deeply values may nest before parsing fails.
const defaultMaxDepth = 1000

type options struct {
	maxDepth int
}

// Option configures parsing.
type Option func(*options) error

// MaxDepth sets the maximum nesting depth of the document. Parsing fails
// with ErrMaxDepth when the limit is exceeded. The default is 1000.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("yamlite: max depth must be positive, got %d", n)
		}
		o.maxDepth = n
		return nil
	}
}

// Parse reads a document and returns its root Value. An input containing
// no content yields a null Value. Errors carry the 1-based line and
// column of the offending input and unwrap to a sentinel category.
func Parse(src []byte, opts ...Option) (*Value, error) {
	o := options{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	p, err := newParser(newScanner(src), o.maxDepth)
	if err != nil {
		return nil, err
	}
	return p.parseDocument()
}

// ParseString is Parse for a string input.
func ParseString(src string, opts ...Option) (*Value, error) {
	return Parse([]byte(src), opts...)
}
