package source

import (
	"bytes"
	"strings"
	"unicode/utf8"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/dhamidi/outline/java/syntax"
)

type builder struct {
	src  []byte
	file string
}

var typeDeclKinds = map[string]syntax.TypeKind{
	"class_declaration":           syntax.TypeClass,
	"interface_declaration":       syntax.TypeInterface,
	"enum_declaration":            syntax.TypeEnum,
	"record_declaration":          syntax.TypeRecord,
	"annotation_type_declaration": syntax.TypeAnnotation,
}

func (b *builder) compilationUnit(root *tree_sitter.Node) *syntax.Node {
	unit := &syntax.Node{Kind: syntax.KindCompilationUnit, Span: b.span(root)}
	for _, child := range namedChildren(root) {
		switch child.Kind() {
		case "package_declaration":
			unit.AddChild(b.packageDecl(child))
		case "import_declaration":
			unit.AddChild(b.importDecl(child))
		case "line_comment", "block_comment":
		default:
			if _, ok := typeDeclKinds[child.Kind()]; ok {
				unit.AddChild(b.typeDecl(child))
			} else {
				unit.AddChild(b.other(child))
			}
		}
	}
	return unit
}

func (b *builder) packageDecl(n *tree_sitter.Node) *syntax.Node {
	pkg := &syntax.Node{Kind: syntax.KindPackageDecl, Span: b.span(n)}
	for _, child := range namedChildren(n) {
		switch child.Kind() {
		case "identifier", "scoped_identifier":
			pkg.Name = b.name(child)
			pkg.AddChild(&syntax.Node{Kind: syntax.KindQualifiedName, Span: pkg.Name.Span, Text: pkg.Name.Text})
		case "annotation", "marker_annotation":
			pkg.AddChild(b.annotation(child))
		}
	}
	return pkg
}

// importDecl records the imported name the way it is written, without the
// static keyword and without a trailing ".*".
func (b *builder) importDecl(n *tree_sitter.Node) *syntax.Node {
	imp := &syntax.Node{Kind: syntax.KindImportDecl, Span: b.span(n)}
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "static":
			imp.Static = true
		case "asterisk":
			imp.Wildcard = true
		case "identifier", "scoped_identifier":
			imp.Name = b.name(child)
			imp.AddChild(&syntax.Node{Kind: syntax.KindQualifiedName, Span: imp.Name.Span, Text: imp.Name.Text})
		}
	}
	return imp
}

func (b *builder) typeDecl(n *tree_sitter.Node) *syntax.Node {
	decl := &syntax.Node{
		Kind:     syntax.KindTypeDecl,
		TypeKind: typeDeclKinds[n.Kind()],
		Span:     b.span(n),
	}

	if name := n.ChildByFieldName("name"); name != nil {
		decl.Name = b.name(name)
		decl.AddChild(&syntax.Node{Kind: syntax.KindSimpleName, Span: decl.Name.Span, Text: decl.Name.Text})
	}

	for _, child := range namedChildren(n) {
		switch child.Kind() {
		case "modifiers":
			decl.Modifiers = b.modifiers(child, decl)
		case "type_parameters":
			decl.TypeParameters = b.textsOfKind(child, "type_parameter")
		case "superclass", "extends_interfaces":
			decl.Extended = append(decl.Extended, b.typeList(child)...)
		case "super_interfaces":
			decl.Implemented = append(decl.Implemented, b.typeList(child)...)
		case "formal_parameters":
			decl.Parameters = b.parameters(child)
		}
	}

	if body := n.ChildByFieldName("body"); body != nil {
		b.members(decl, body)
	}
	return decl
}

func (b *builder) members(decl *syntax.Node, body *tree_sitter.Node) {
	for _, child := range namedChildren(body) {
		switch child.Kind() {
		case "field_declaration", "constant_declaration":
			decl.AddChild(b.fieldDecl(child))
		case "method_declaration":
			decl.AddChild(b.callable(syntax.KindMethodDecl, child))
		case "constructor_declaration", "compact_constructor_declaration":
			decl.AddChild(b.callable(syntax.KindConstructorDecl, child))
		case "enum_constant":
			decl.AddChild(&syntax.Node{Kind: syntax.KindEnumConstant, Span: b.span(child), Text: b.text(child.ChildByFieldName("name"))})
		case "enum_body_declarations":
			b.members(decl, child)
		case "static_initializer", "block":
			decl.AddChild(&syntax.Node{Kind: syntax.KindInitializer, Span: b.span(child), Text: child.Kind()})
		case "line_comment", "block_comment":
		default:
			if _, ok := typeDeclKinds[child.Kind()]; ok {
				decl.AddChild(b.typeDecl(child))
			} else {
				decl.AddChild(b.other(child))
			}
		}
	}
}

// fieldDecl builds a field with one KindVariableDecl child per declarator.
// Each declarator's type includes its own array dimensions, as in "int a[]".
func (b *builder) fieldDecl(n *tree_sitter.Node) *syntax.Node {
	field := &syntax.Node{Kind: syntax.KindFieldDecl, Span: b.span(n)}
	if mods := firstNamedChildOfKind(n, "modifiers"); mods != nil {
		field.Modifiers = b.modifiers(mods, field)
	}
	field.Type = b.text(n.ChildByFieldName("type"))

	for _, child := range namedChildren(n) {
		if child.Kind() != "variable_declarator" {
			continue
		}
		v := &syntax.Node{
			Kind: syntax.KindVariableDecl,
			Span: b.span(child),
			Type: field.Type + b.text(child.ChildByFieldName("dimensions")),
		}
		if name := child.ChildByFieldName("name"); name != nil {
			v.Name = b.name(name)
			v.AddChild(&syntax.Node{Kind: syntax.KindSimpleName, Span: v.Name.Span, Text: v.Name.Text})
		}
		field.AddChild(v)
	}
	return field
}

// callable builds a method or constructor declaration. Bodies are not
// descended into.
func (b *builder) callable(kind syntax.NodeKind, n *tree_sitter.Node) *syntax.Node {
	decl := &syntax.Node{Kind: kind, Span: b.span(n)}
	if name := n.ChildByFieldName("name"); name != nil {
		decl.Name = b.name(name)
		decl.AddChild(&syntax.Node{Kind: syntax.KindSimpleName, Span: decl.Name.Span, Text: decl.Name.Text})
	}
	for _, child := range namedChildren(n) {
		switch child.Kind() {
		case "modifiers":
			decl.Modifiers = b.modifiers(child, decl)
		case "type_parameters":
			decl.TypeParameters = b.textsOfKind(child, "type_parameter")
		case "formal_parameters":
			decl.Parameters = b.parameters(child)
		}
	}
	if kind == syntax.KindMethodDecl {
		decl.Type = b.text(n.ChildByFieldName("type")) + b.text(n.ChildByFieldName("dimensions"))
	}
	return decl
}

// modifiers returns the modifier keywords of a modifiers node. Annotations
// are not modifiers; they are added to owner as KindAnnotation children.
func (b *builder) modifiers(n *tree_sitter.Node, owner *syntax.Node) []string {
	var mods []string
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "annotation", "marker_annotation":
			owner.AddChild(b.annotation(child))
		case "line_comment", "block_comment":
		default:
			mods = append(mods, b.text(child))
		}
	}
	return mods
}

func (b *builder) annotation(n *tree_sitter.Node) *syntax.Node {
	return &syntax.Node{Kind: syntax.KindAnnotation, Span: b.span(n), Text: b.text(n)}
}

func (b *builder) other(n *tree_sitter.Node) *syntax.Node {
	return &syntax.Node{Kind: syntax.KindOther, Span: b.span(n), Text: n.Kind()}
}

func (b *builder) parameters(n *tree_sitter.Node) syntax.TextList {
	return b.textsOfKind(n, "formal_parameter", "spread_parameter")
}

// typeList returns the types named by an extends or implements clause.
func (b *builder) typeList(n *tree_sitter.Node) syntax.TextList {
	var types syntax.TextList
	for _, child := range namedChildren(n) {
		if child.Kind() == "type_list" {
			types = append(types, b.typeList(child)...)
			continue
		}
		types = append(types, b.text(child))
	}
	return types
}

func (b *builder) textsOfKind(n *tree_sitter.Node, kinds ...string) syntax.TextList {
	var texts syntax.TextList
	for _, child := range namedChildren(n) {
		for _, kind := range kinds {
			if child.Kind() == kind {
				texts = append(texts, b.text(child))
				break
			}
		}
	}
	return texts
}

func (b *builder) name(n *tree_sitter.Node) *syntax.Name {
	return &syntax.Name{Text: b.text(n), Span: b.span(n)}
}

// text returns the source text of n with runs of whitespace collapsed to a
// single space. A nil node has no text.
func (b *builder) text(n *tree_sitter.Node) string {
	if n == nil {
		return ""
	}
	return strings.Join(strings.Fields(n.Utf8Text(b.src)), " ")
}

// span converts tree-sitter's zero-based, end-exclusive points into 1-based
// positions of the first and last character.
func (b *builder) span(n *tree_sitter.Node) *syntax.Span {
	return &syntax.Span{
		File:  b.file,
		Start: startOf(n, b.src),
		End:   syntax.Position{Line: int(n.EndPosition().Row) + 1, Column: column(b.src, n.EndByte())},
	}
}

func startOf(n *tree_sitter.Node, src []byte) syntax.Position {
	return syntax.Position{Line: int(n.StartPosition().Row) + 1, Column: column(src, n.StartByte()) + 1}
}

// column counts the characters between the start of the line containing
// offset and offset. tree-sitter columns are byte counts.
func column(src []byte, offset uint) int {
	end := min(int(offset), len(src))
	lineStart := bytes.LastIndexByte(src[:end], '\n') + 1
	return utf8.RuneCount(src[lineStart:end])
}

func namedChildren(n *tree_sitter.Node) []*tree_sitter.Node {
	var children []*tree_sitter.Node
	for i := uint(0); i < n.NamedChildCount(); i++ {
		if child := n.NamedChild(i); child != nil {
			children = append(children, child)
		}
	}
	return children
}

func firstNamedChildOfKind(n *tree_sitter.Node, kind string) *tree_sitter.Node {
	for _, child := range namedChildren(n) {
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}
