package format

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/dhamidi/outline/outline"
)

// JSONEncoder writes outline documents as JSON, one document per Encode call
// followed by a newline.
type JSONEncoder struct {
	w      io.Writer
	indent string
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

// SetIndent makes the encoder pretty-print with the given indent. An empty
// indent produces compact output.
func (e *JSONEncoder) SetIndent(indent string) *JSONEncoder {
	e.indent = indent
	return e
}

func (e *JSONEncoder) Encode(doc *outline.Object) error {
	text, err := e.MarshalText(doc)
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText(doc *outline.Object) ([]byte, error) {
	return marshal(doc, e.indent)
}

// marshal encodes v without HTML escaping so type text like List<String>
// survives intact.
func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
