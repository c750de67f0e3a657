package format

import (
	"io"

	"github.com/dhamidi/outline/java/syntax"
)

// ASTJSONEncoder writes the syntax tree handed to the projector as JSON.
type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node *syntax.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *ASTJSONEncoder) MarshalText(node *syntax.Node) ([]byte, error) {
	return marshal(nodeToJSON(node), "  ")
}

type astJSONNode struct {
	Kind           string         `json:"kind"`
	TypeKind       string         `json:"typeKind,omitempty"`
	Span           *astJSONSpan   `json:"span,omitempty"`
	Name           string         `json:"name,omitempty"`
	Text           string         `json:"text,omitempty"`
	Type           string         `json:"type,omitempty"`
	Modifiers      []string       `json:"modifiers,omitempty"`
	TypeParameters []string       `json:"typeParameters,omitempty"`
	Parameters     []string       `json:"parameters,omitempty"`
	Extended       []string       `json:"extended,omitempty"`
	Implemented    []string       `json:"implemented,omitempty"`
	Static         bool           `json:"static,omitempty"`
	Wildcard       bool           `json:"wildcard,omitempty"`
	Children       []*astJSONNode `json:"children,omitempty"`
}

type astJSONSpan struct {
	Start astJSONPosition `json:"start"`
	End   astJSONPosition `json:"end"`
}

type astJSONPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func nodeToJSON(n *syntax.Node) *astJSONNode {
	jn := &astJSONNode{
		Kind:           n.Kind.String(),
		Text:           n.Text,
		Type:           n.Type,
		Modifiers:      n.Modifiers,
		TypeParameters: n.TypeParameters,
		Parameters:     n.Parameters,
		Extended:       n.Extended,
		Implemented:    n.Implemented,
		Static:         n.Static,
		Wildcard:       n.Wildcard,
	}
	if n.Kind == syntax.KindTypeDecl {
		jn.TypeKind = n.TypeKind.String()
	}
	if n.Name != nil {
		jn.Name = n.Name.Text
	}

	if n.Span != nil {
		jn.Span = &astJSONSpan{
			Start: astJSONPosition{Line: n.Span.Start.Line, Column: n.Span.Start.Column},
			End:   astJSONPosition{Line: n.Span.End.Line, Column: n.Span.End.Column},
		}
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*astJSONNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}

	return jn
}
