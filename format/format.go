// Package format prints outline documents and the syntax trees they are
// projected from.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/outline/outline"
)

type Encoder interface {
	Encode(doc *outline.Object) error
}

// NewEncoder returns the encoder for the named output format: "json" or
// "lines". indent only applies to json.
func NewEncoder(name string, w io.Writer, indent string) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w).SetIndent(indent), nil
	case "lines":
		return NewLineEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}
