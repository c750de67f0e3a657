package syntax

import (
	"strings"
)

type NodeKind int

const (
	KindOther NodeKind = iota

	// Compilation unit level
	KindCompilationUnit
	KindPackageDecl
	KindImportDecl

	// Declarations
	KindTypeDecl
	KindFieldDecl
	KindVariableDecl
	KindConstructorDecl
	KindMethodDecl

	// Name fragments
	KindSimpleName
	KindQualifiedName

	// Emitted by the front end but not projected
	KindAnnotation
	KindEnumConstant
	KindInitializer
)

var nodeKindNames = map[NodeKind]string{
	KindOther:           "Other",
	KindCompilationUnit: "CompilationUnit",
	KindPackageDecl:     "PackageDecl",
	KindImportDecl:      "ImportDecl",
	KindTypeDecl:        "TypeDecl",
	KindFieldDecl:       "FieldDecl",
	KindVariableDecl:    "VariableDecl",
	KindConstructorDecl: "ConstructorDecl",
	KindMethodDecl:      "MethodDecl",
	KindSimpleName:      "SimpleName",
	KindQualifiedName:   "QualifiedName",
	KindAnnotation:      "Annotation",
	KindEnumConstant:    "EnumConstant",
	KindInitializer:     "Initializer",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsName reports whether k is a name fragment. Name fragments are structural
// leaves of a declaration and carry nothing of their own to project.
func (k NodeKind) IsName() bool {
	return k == KindSimpleName || k == KindQualifiedName
}

// TypeKind distinguishes the flavours of a KindTypeDecl node.
type TypeKind int

const (
	TypeClass TypeKind = iota
	TypeInterface
	TypeEnum
	TypeRecord
	TypeAnnotation
)

var typeKindNames = map[TypeKind]string{
	TypeClass:      "class",
	TypeInterface:  "interface",
	TypeEnum:       "enum",
	TypeRecord:     "record",
	TypeAnnotation: "annotation",
}

func (k TypeKind) String() string {
	if name, ok := typeKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Name is the name of a declaration together with the span of the name itself.
type Name struct {
	Text string
	Span *Span
}

func (n *Name) String() string {
	if n == nil {
		return ""
	}
	return n.Text
}

// TextList is an ordered list of source fragments such as parameters or type
// references. It prints as "[a, b]".
type TextList []string

func (l TextList) String() string {
	return "[" + strings.Join(l, ", ") + "]"
}

// Node is one element of the syntax tree handed to the projector.
//
// Which payload fields are meaningful depends on Kind:
//
//	KindPackageDecl      Name
//	KindImportDecl       Name, Static, Wildcard
//	KindTypeDecl         Name, TypeKind, Modifiers, TypeParameters, Extended, Implemented, Children
//	KindFieldDecl        Modifiers, Type, Children (declarators)
//	KindVariableDecl     Name, Type
//	KindConstructorDecl  Name, Modifiers, TypeParameters, Parameters
//	KindMethodDecl       Name, Modifiers, TypeParameters, Parameters, Type (result)
//
// Span is nil when the parser could not attach a position.
type Node struct {
	Kind NodeKind
	Span *Span
	Name *Name

	// Text holds the source text of leaves and of nodes without a dedicated
	// payload (annotations, initializers).
	Text string

	TypeKind       TypeKind
	Modifiers      []string
	Type           string
	Parameters     TextList
	TypeParameters TextList
	Extended       TextList
	Implemented    TextList
	Static         bool
	Wildcard       bool

	Children []*Node
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

func (n *Node) IsInterface() bool {
	return n.Kind == KindTypeDecl && n.TypeKind == TypeInterface
}

func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

func (n *Node) String() string {
	var sb strings.Builder
	n.writeIndent(&sb, 0, false)
	return sb.String()
}

func (n *Node) StringWithPositions() string {
	var sb strings.Builder
	n.writeIndent(&sb, 0, true)
	return sb.String()
}

func (n *Node) writeIndent(sb *strings.Builder, indent int, showPositions bool) {
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(n.Kind.String())
	if n.Kind == KindTypeDecl {
		sb.WriteString("(" + n.TypeKind.String() + ")")
	}
	if showPositions {
		if n.Span != nil {
			sb.WriteString(" [" + n.Span.String() + "]")
		} else {
			sb.WriteString(" [?]")
		}
	}
	switch {
	case n.Name != nil:
		sb.WriteString(" " + n.Name.Text)
	case n.Text != "":
		sb.WriteString(" " + n.Text)
	}
	sb.WriteString("\n")

	for _, child := range n.Children {
		child.writeIndent(sb, indent+1, showPositions)
	}
}
