// Package format renders DOM graphs and syntax trees for people and tools.
package format

import (
	"encoding"
	"io"

	"github.com/dhamidi/rdom/dom"
)

// Encoder writes a DOM graph. MarshalText returns the text of the node
// passed to the last Encode call.
type Encoder interface {
	encoding.TextMarshaler
	Encode(n dom.Node) error
}

// NewEncoder returns the encoder registered under name: json, yaml or line.
func NewEncoder(name string, w io.Writer) (Encoder, bool) {
	switch name {
	case "json":
		return NewJSONEncoder(w), true
	case "yaml":
		return NewYAMLEncoder(w), true
	case "line":
		return NewLineEncoder(w), true
	}
	return nil, false
}
