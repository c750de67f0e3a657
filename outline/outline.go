// Package outline projects a Java syntax tree into an outline document: a
// nested key/value tree that groups declarations by kind and keeps their
// source positions.
//
// The root document may contain these keys:
//
//	package       {name: [text, begin, end], begin, end}
//	imports       {list: [name, ...], begin, end}
//	classes       {<name>: {begin, end, isInterface, kind, modifiers, extendedType, implementedTypes, ...members}}
//	fields        {<name>: {modifiers, type}}
//	methods       {<name>: [{begin, end, typeParameter, modifiers, parameters}, ...]}
//	constructors  [{modifiers, parameters, begin, end}, ...]
//
// Classes and fields that share a name at one level overwrite each other.
// Methods that share a name accumulate in a list, one entry per overload.
package outline

import (
	"github.com/dhamidi/outline/java/syntax"
)

type Option func(*Projector)

// WithDiagnostics sets where reports about skipped nodes go. The default
// logs them as warnings.
func WithDiagnostics(d Diagnostics) Option {
	return func(p *Projector) {
		p.diagnostics = d
	}
}

// Projector turns syntax trees into outline documents. It keeps no state
// between calls, so one Projector may serve many goroutines.
type Projector struct {
	diagnostics Diagnostics
}

func New(opts ...Option) *Projector {
	p := &Projector{diagnostics: logDiagnostics{}}
	for _, opt := range opts {
		opt(p)
	}
	if p.diagnostics == nil {
		p.diagnostics = DiscardDiagnostics
	}
	return p
}

// Project builds the outline of a compilation unit. Either the whole
// document is returned or an error; there is no partial result.
func (p *Projector) Project(unit *syntax.Node) (*Object, error) {
	root := NewObject()
	if err := p.dispatch(root, unit.Children, nil); err != nil {
		return nil, err
	}
	return root, nil
}

// Project is shorthand for New(opts...).Project(unit).
func Project(unit *syntax.Node, opts ...Option) (*Object, error) {
	return New(opts...).Project(unit)
}

// dispatch routes every node to the handler for its kind, writing into scope.
// owner is the field declaration whose declarators are being dispatched.
func (p *Projector) dispatch(scope *Object, nodes []*syntax.Node, owner *syntax.Node) error {
	for _, node := range nodes {
		var err error
		switch node.Kind {
		case syntax.KindPackageDecl:
			err = p.projectPackage(scope, node)
		case syntax.KindImportDecl:
			err = p.projectImport(scope, node)
		case syntax.KindTypeDecl:
			err = p.projectType(scope, node)
		case syntax.KindFieldDecl:
			err = p.projectField(scope, node)
		case syntax.KindVariableDecl:
			err = p.projectVariable(scope, node, owner)
		case syntax.KindConstructorDecl:
			err = p.projectConstructor(scope, node)
		case syntax.KindMethodDecl:
			err = p.projectMethod(scope, node)
		case syntax.KindSimpleName, syntax.KindQualifiedName:
			continue
		default:
			p.diagnostics.UnknownNode(node)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
