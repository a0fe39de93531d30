package formatter

import (
	"bytes"
	"encoding/json"
)

// DocumentBuilder turns a document value into JSON bytes.
type DocumentBuilder struct {
	indent string
}

// Option configures a DocumentBuilder.
type Option func(*DocumentBuilder)

// WithIndent pretty-prints output using indent for each nesting level.
// An empty indent keeps the output compact.
func WithIndent(indent string) Option {
	return func(b *DocumentBuilder) { b.indent = indent }
}

// NewDocumentBuilder creates a builder; compact output by default.
func NewDocumentBuilder(opts ...Option) *DocumentBuilder {
	b := &DocumentBuilder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Indent returns the configured indent.
func (b *DocumentBuilder) Indent() string { return b.indent }

// BuildJSON serializes v without HTML escaping. Indented output ends with a
// newline; compact output does not.
func (b *DocumentBuilder) BuildJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if b.indent != "" {
		enc.SetIndent("", b.indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if b.indent == "" {
		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	}
	return buf.Bytes(), nil
}
