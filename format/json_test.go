package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dhamidi/outline/java/syntax"
	"github.com/dhamidi/outline/outline"
)

func sampleDocument(t *testing.T) *outline.Object {
	t.Helper()
	unit := &syntax.Node{Kind: syntax.KindCompilationUnit}
	unit.AddChild(&syntax.Node{
		Kind: syntax.KindImportDecl,
		Span: syntax.NewSpan(1, 1, 1, 22),
		Name: &syntax.Name{Text: "java.util.List"},
	})
	field := &syntax.Node{Kind: syntax.KindFieldDecl, Modifiers: []string{"private"}, Type: "List<String>"}
	field.AddChild(&syntax.Node{Kind: syntax.KindVariableDecl, Name: &syntax.Name{Text: "names"}, Type: "List<String>"})
	unit.AddChild(field)

	doc, err := outline.Project(unit, outline.WithDiagnostics(outline.DiscardDiagnostics))
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	return doc
}

func TestJSONEncoderCompact(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONEncoder(&buf).Encode(sampleDocument(t)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := `{"imports":{"list":["java.util.List"],"begin":{"line":1,"column":1},"end":{"line":1,"column":22}},` +
		`"fields":{"names":{"modifiers":["private"],"type":"List<String>"}}}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestJSONEncoderIndent(t *testing.T) {
	text, err := NewJSONEncoder(nil).SetIndent("  ").MarshalText(sampleDocument(t))
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}

	lines := strings.Split(string(text), "\n")
	if lines[0] != "{" || lines[1] != `  "imports": {` {
		t.Errorf("unexpected indentation:\n%s", text)
	}
	if !strings.Contains(string(text), `"type": "List<String>"`) {
		t.Errorf("type text should not be HTML escaped:\n%s", text)
	}
}

func TestASTJSONEncoder(t *testing.T) {
	node := &syntax.Node{
		Kind:     syntax.KindTypeDecl,
		TypeKind: syntax.TypeInterface,
		Span:     syntax.NewSpan(1, 1, 1, 20),
		Name:     &syntax.Name{Text: "Shape"},
	}
	text, err := NewASTJSONEncoder(nil).MarshalText(node)
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	for _, want := range []string{`"kind": "TypeDecl"`, `"typeKind": "interface"`, `"name": "Shape"`, `"line": 1`} {
		if !strings.Contains(string(text), want) {
			t.Errorf("MarshalText() missing %s:\n%s", want, text)
		}
	}
}
