package codebase

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/outline/outline"
)

const shapesSource = `package geo;

public class Shape {
    private int sides;

    public Shape(int sides) {
        this.sides = sides;
    }

    int area() { return 0; }

    int area(int scale) { return scale; }

    interface Visitor {
    }
}
`

func shapesOutline(t *testing.T) *outline.Object {
	t.Helper()
	c := New(t.TempDir(), outline.New(outline.WithDiagnostics(outline.DiscardDiagnostics)))
	info := c.UpdateFile("Shape.java", []byte(shapesSource))
	if info.Err != nil {
		t.Fatalf("UpdateFile() error = %v", info.Err)
	}
	return info.Outline
}

func TestDocumentSymbols(t *testing.T) {
	symbols := DocumentSymbols(shapesOutline(t), []byte(shapesSource))
	if len(symbols) != 2 {
		t.Fatalf("Expected 2 top-level symbols, got %d", len(symbols))
	}

	pkg := symbols[0]
	if pkg.Name != "geo" || pkg.Kind != protocol.SymbolKindPackage {
		t.Errorf("package symbol = %s (%d)", pkg.Name, pkg.Kind)
	}
	wantSel := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 8},
		End:   protocol.Position{Line: 0, Character: 11},
	}
	if pkg.SelectionRange != wantSel {
		t.Errorf("package selection = %v, want %v", pkg.SelectionRange, wantSel)
	}

	class := symbols[1]
	if class.Name != "Shape" || class.Kind != protocol.SymbolKindClass {
		t.Errorf("class symbol = %s (%d)", class.Name, class.Kind)
	}
	if class.Range.Start.Line != 2 || class.Range.End.Line != 15 {
		t.Errorf("class range = %v", class.Range)
	}

	type entry struct {
		name string
		kind protocol.SymbolKind
	}
	var got []entry
	for _, child := range class.Children {
		got = append(got, entry{child.Name, child.Kind})
	}
	want := []entry{
		{"sides", protocol.SymbolKindField},
		{"<init>", protocol.SymbolKindConstructor},
		{"area", protocol.SymbolKindMethod},
		{"area", protocol.SymbolKindMethod},
		{"Visitor", protocol.SymbolKindInterface},
	}
	if len(got) != len(want) {
		t.Fatalf("children = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("children[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	field := class.Children[0]
	if field.Detail == nil || *field.Detail != "int" {
		t.Errorf("field detail = %v, want int", field.Detail)
	}
	if field.Range.Start != class.Range.Start || field.Range.End != class.Range.Start {
		t.Errorf("field range = %v, want collapsed at %v", field.Range, class.Range.Start)
	}

	overload := class.Children[3]
	if overload.Detail == nil || *overload.Detail != "[int scale]" {
		t.Errorf("overload detail = %v, want [int scale]", overload.Detail)
	}
	if overload.Range.Start.Line != 11 {
		t.Errorf("overload starts on line %d, want 11", overload.Range.Start.Line)
	}
}

func TestToRange(t *testing.T) {
	got := lineIndex(nil).toRange(outline.Position{Line: 3, Column: 5}, outline.Position{Line: 4, Column: 1})
	want := protocol.Range{
		Start: protocol.Position{Line: 2, Character: 4},
		End:   protocol.Position{Line: 3, Character: 1},
	}
	if got != want {
		t.Errorf("toRange() = %v, want %v", got, want)
	}

	if zero := lineIndex(nil).toRange(outline.Position{}, outline.Position{}); zero != (protocol.Range{}) {
		t.Errorf("toRange(zero) = %v, want zero range", zero)
	}
}

func TestDocumentSymbolsEmpty(t *testing.T) {
	if got := DocumentSymbols(outline.NewObject(), nil); len(got) != 0 {
		t.Errorf("DocumentSymbols(empty) = %v, want none", got)
	}
}

func TestDocumentSymbolsUseUTF16Columns(t *testing.T) {
	src := "class A { String s = \"\U0001F600\"; void m() {} }\n"
	c := New(t.TempDir(), outline.New(outline.WithDiagnostics(outline.DiscardDiagnostics)))
	info := c.UpdateFile("A.java", []byte(src))
	if info.Err != nil {
		t.Fatalf("UpdateFile() error = %v", info.Err)
	}

	symbols := DocumentSymbols(info.Outline, info.OutlineSource)
	if len(symbols) != 1 {
		t.Fatalf("Expected 1 symbol, got %d", len(symbols))
	}
	class := symbols[0]
	if got := class.Range.End.Character; got != 40 {
		t.Errorf("class end character = %d, want 40", got)
	}

	var method *protocol.DocumentSymbol
	for i := range class.Children {
		if class.Children[i].Kind == protocol.SymbolKindMethod {
			method = &class.Children[i]
		}
	}
	if method == nil {
		t.Fatal("no method symbol")
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 27},
		End:   protocol.Position{Line: 0, Character: 38},
	}
	if method.Range != want {
		t.Errorf("method range = %v, want %v", method.Range, want)
	}
}

func TestLineIndexPosition(t *testing.T) {
	lines := newLineIndex([]byte("ab\n\u00e9\U0001F600x\n"))
	tests := []struct {
		line, chars int
		want        protocol.UInteger
	}{
		{1, 0, 0},
		{1, 2, 2},
		{2, 1, 1},
		{2, 2, 3},
		{2, 3, 4},
		{2, 5, 6},
		{9, 3, 3},
	}
	for _, tt := range tests {
		if got := lines.position(tt.line, tt.chars).Character; got != tt.want {
			t.Errorf("position(%d, %d) = %d, want %d", tt.line, tt.chars, got, tt.want)
		}
	}
}
