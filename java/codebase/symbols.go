package codebase

import (
	"bytes"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/outline/outline"
)

var symbolKinds = map[string]protocol.SymbolKind{
	"class":      protocol.SymbolKindClass,
	"interface":  protocol.SymbolKindInterface,
	"enum":       protocol.SymbolKindEnum,
	"record":     protocol.SymbolKindStruct,
	"annotation": protocol.SymbolKindInterface,
}

// DocumentSymbols turns an outline document into LSP document symbols. src is
// the source the document was projected from; it is needed to express
// columns in UTF-16 code units. Fields carry no position of their own in an
// outline, so a field symbol spans the start of its enclosing type.
func DocumentSymbols(doc *outline.Object, src []byte) []protocol.DocumentSymbol {
	lines := newLineIndex(src)
	var symbols []protocol.DocumentSymbol
	if pkg := doc.Object("package"); pkg != nil {
		if sym, ok := lines.packageSymbol(pkg); ok {
			symbols = append(symbols, sym)
		}
	}
	return append(symbols, lines.memberSymbols(doc, protocol.Range{})...)
}

func (lines lineIndex) packageSymbol(pkg *outline.Object) (protocol.DocumentSymbol, bool) {
	name := pkg.List("name")
	if name.Len() != 3 {
		return protocol.DocumentSymbol{}, false
	}
	text, _ := name.At(0).(string)
	nameBegin, _ := name.At(1).(outline.Position)
	nameEnd, _ := name.At(2).(outline.Position)
	return protocol.DocumentSymbol{
		Name:           text,
		Kind:           protocol.SymbolKindPackage,
		Range:          lines.spanRange(pkg),
		SelectionRange: lines.toRange(nameBegin, nameEnd),
	}, true
}

// memberSymbols collects the symbols of one scope. scope is the range of the
// enclosing type.
func (lines lineIndex) memberSymbols(obj *outline.Object, scope protocol.Range) []protocol.DocumentSymbol {
	var symbols []protocol.DocumentSymbol
	for _, key := range obj.Keys() {
		switch key {
		case "classes":
			classes := obj.Object(key)
			for _, name := range classes.Keys() {
				symbols = append(symbols, lines.classSymbol(name, classes.Object(name)))
			}
		case "fields":
			fields := obj.Object(key)
			for _, name := range fields.Keys() {
				detail := fields.Object(name).Text("type")
				symbols = append(symbols, protocol.DocumentSymbol{
					Name:           name,
					Detail:         &detail,
					Kind:           protocol.SymbolKindField,
					Range:          collapse(scope),
					SelectionRange: collapse(scope),
				})
			}
		case "constructors":
			ctors := obj.List(key)
			for i := 0; i < ctors.Len(); i++ {
				ctor, _ := ctors.At(i).(*outline.Object)
				symbols = append(symbols, lines.callableSymbol("<init>", protocol.SymbolKindConstructor, ctor))
			}
		case "methods":
			methods := obj.Object(key)
			for _, name := range methods.Keys() {
				overloads := methods.List(name)
				for i := 0; i < overloads.Len(); i++ {
					method, _ := overloads.At(i).(*outline.Object)
					symbols = append(symbols, lines.callableSymbol(name, protocol.SymbolKindMethod, method))
				}
			}
		}
	}
	return symbols
}

func (lines lineIndex) classSymbol(name string, class *outline.Object) protocol.DocumentSymbol {
	kind, ok := symbolKinds[class.Text("kind")]
	if !ok {
		kind = protocol.SymbolKindClass
	}
	detail := class.Text("kind")
	r := lines.spanRange(class)
	return protocol.DocumentSymbol{
		Name:           name,
		Detail:         &detail,
		Kind:           kind,
		Range:          r,
		SelectionRange: collapse(r),
		Children:       lines.memberSymbols(class, r),
	}
}

func (lines lineIndex) callableSymbol(name string, kind protocol.SymbolKind, obj *outline.Object) protocol.DocumentSymbol {
	detail := obj.Text("parameters")
	r := lines.spanRange(obj)
	return protocol.DocumentSymbol{
		Name:           name,
		Detail:         &detail,
		Kind:           kind,
		Range:          r,
		SelectionRange: collapse(r),
	}
}

func (lines lineIndex) spanRange(obj *outline.Object) protocol.Range {
	begin, _ := obj.Position("begin")
	end, _ := obj.Position("end")
	return lines.toRange(begin, end)
}

// toRange converts 1-based inclusive outline positions, whose columns count
// characters, into a zero-based, end-exclusive LSP range in UTF-16 units.
func (lines lineIndex) toRange(begin, end outline.Position) protocol.Range {
	return protocol.Range{
		Start: lines.position(begin.Line, begin.Column-1),
		End:   lines.position(end.Line, end.Column),
	}
}

// lineIndex holds the lines of a source file.
type lineIndex [][]byte

func newLineIndex(src []byte) lineIndex {
	return bytes.Split(src, []byte("\n"))
}

// position returns the LSP position after the first chars characters of the
// 1-based line. Without the line's text every character counts as one unit.
func (lines lineIndex) position(line, chars int) protocol.Position {
	chars = max(chars, 0)
	pos := protocol.Position{Line: zeroBased(line), Character: protocol.UInteger(chars)}
	if line < 1 || line > len(lines) {
		return pos
	}
	text := lines[line-1]
	units := 0
	for i := 0; i < chars; i++ {
		if len(text) == 0 {
			units += chars - i
			break
		}
		r, size := utf8.DecodeRune(text)
		text = text[size:]
		if n := utf16.RuneLen(r); n > 0 {
			units += n
		} else {
			units++
		}
	}
	pos.Character = protocol.UInteger(units)
	return pos
}

func collapse(r protocol.Range) protocol.Range {
	return protocol.Range{Start: r.Start, End: r.Start}
}

func zeroBased(n int) protocol.UInteger {
	if n <= 0 {
		return 0
	}
	return protocol.UInteger(n - 1)
}
