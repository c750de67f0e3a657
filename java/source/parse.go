// Package source parses Java source code into the syntax tree consumed by
// the outline projector. Parsing is done by tree-sitter with the Java grammar;
// this package only translates the concrete tree into syntax nodes.
package source

import (
	"fmt"
	"os"
	"unicode/utf8"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/dhamidi/outline/java/syntax"
)

type Option func(*options)

type options struct {
	file        string
	allowErrors bool
}

// WithFile records path in every span of the resulting tree.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithErrors makes Parse return a tree even when the source has syntax
// errors. Erroneous regions become KindOther nodes.
func WithErrors() Option {
	return func(o *options) {
		o.allowErrors = true
	}
}

// SyntaxError reports the first erroneous or missing token in the source.
type SyntaxError struct {
	File     string
	Position syntax.Position
	Missing  string // kind of the token tree-sitter had to insert, if any
	Near     string
}

func (e *SyntaxError) Error() string {
	loc := e.Position.String()
	if e.File != "" {
		loc = e.File + ":" + loc
	}
	if e.Missing != "" {
		return fmt.Sprintf("%s: syntax error: missing %s", loc, e.Missing)
	}
	return fmt.Sprintf("%s: syntax error near %q", loc, e.Near)
}

// Parse parses a complete Java compilation unit.
func Parse(src []byte, opts ...Option) (*syntax.Node, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(tree_sitter.NewLanguage(tree_sitter_java.Language())); err != nil {
		return nil, fmt.Errorf("set java language: %w", err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("parse java source: parser returned no tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() && !o.allowErrors {
		return nil, firstError(root, src, o.file)
	}

	b := &builder{src: src, file: o.file}
	return b.compilationUnit(root), nil
}

// ParseFile reads and parses the Java file at path.
func ParseFile(path string, opts ...Option) (*syntax.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read java file: %w", err)
	}
	opts = append([]Option{WithFile(path)}, opts...)
	return Parse(data, opts...)
}

func firstError(n *tree_sitter.Node, src []byte, file string) error {
	if n.IsMissing() {
		return &SyntaxError{File: file, Position: startOf(n, src), Missing: n.Kind()}
	}
	if n.IsError() {
		return &SyntaxError{File: file, Position: startOf(n, src), Near: shorten(n.Utf8Text(src))}
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child == nil || !(child.HasError() || child.IsMissing()) {
			continue
		}
		if err := firstError(child, src, file); err != nil {
			return err
		}
	}
	return &SyntaxError{File: file, Position: startOf(n, src), Near: shorten(n.Utf8Text(src))}
}

// shorten cuts s to at most 40 characters.
func shorten(s string) string {
	const limit = 40
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}
