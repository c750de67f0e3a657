package outline

import (
	"strconv"

	"github.com/dhamidi/outline/java/syntax"
)

func (p *Projector) projectPackage(scope *Object, node *syntax.Node) error {
	begin, end, err := positions(node)
	if err != nil {
		return err
	}
	nameBegin, nameEnd, err := namePositions(node)
	if err != nil {
		return err
	}

	pkg := NewObject()
	pkg.Set("name", NewList(node.Name.Text, nameBegin, nameEnd))
	pkg.Set("begin", begin)
	pkg.Set("end", end)
	scope.Set("package", pkg)
	return nil
}

// projectImport starts the imports block on the first import of a scope and
// extends it on every later one. begin stays at the first import.
func (p *Projector) projectImport(scope *Object, node *syntax.Node) error {
	begin, end, err := positions(node)
	if err != nil {
		return err
	}

	if imports := scope.Object("imports"); imports != nil {
		imports.ensureList("list").Append(node.Name.String())
		imports.Set("end", end)
		return nil
	}

	imports := NewObject()
	imports.Set("list", NewList(node.Name.String()))
	imports.Set("begin", begin)
	imports.Set("end", end)
	scope.Set("imports", imports)
	return nil
}

// projectType replaces any earlier type of the same name in scope and then
// projects the type's members into its own object.
func (p *Projector) projectType(scope *Object, node *syntax.Node) error {
	begin, end, err := positions(node)
	if err != nil {
		return err
	}

	class := NewObject()
	scope.ensureObject("classes").Set(node.Name.String(), class)

	class.Set("begin", begin)
	class.Set("end", end)
	class.Set("isInterface", strconv.FormatBool(node.IsInterface()))
	class.Set("kind", node.TypeKind.String())
	class.Set("modifiers", modifiers(node))
	class.Set("extendedType", node.Extended.String())
	class.Set("implementedTypes", node.Implemented.String())

	return p.dispatch(class, node.Children, nil)
}

// projectField projects the declarators of a field into the fields object,
// passing the field along so declarators can pick up its modifiers.
func (p *Projector) projectField(scope *Object, node *syntax.Node) error {
	fields := scope.ensureObject("fields")
	return p.dispatch(fields, node.Children, node)
}

func (p *Projector) projectVariable(scope *Object, node *syntax.Node, owner *syntax.Node) error {
	if owner == nil || owner.Kind != syntax.KindFieldDecl {
		ownerKind := syntax.KindOther
		if owner != nil {
			ownerKind = owner.Kind
		}
		return &InvalidDeclaratorOwnerError{Name: node.Name.String(), Owner: ownerKind, Span: node.Span}
	}

	variable := NewObject()
	variable.Set("modifiers", modifiers(owner))
	variable.Set("type", node.Type)
	scope.Set(node.Name.String(), variable)
	return nil
}

func (p *Projector) projectConstructor(scope *Object, node *syntax.Node) error {
	begin, end, err := positions(node)
	if err != nil {
		return err
	}

	constructor := NewObject()
	constructor.Set("modifiers", modifiers(node))
	constructor.Set("parameters", node.Parameters.String())
	constructor.Set("begin", begin)
	constructor.Set("end", end)
	scope.ensureList("constructors").Append(constructor)
	return nil
}

// projectMethod appends to the overload list of the method's name.
func (p *Projector) projectMethod(scope *Object, node *syntax.Node) error {
	begin, end, err := positions(node)
	if err != nil {
		return err
	}

	method := NewObject()
	method.Set("begin", begin)
	method.Set("end", end)
	method.Set("typeParameter", node.TypeParameters.String())
	method.Set("modifiers", modifiers(node))
	method.Set("parameters", node.Parameters.String())
	scope.ensureObject("methods").ensureList(node.Name.String()).Append(method)
	return nil
}

func modifiers(node *syntax.Node) []string {
	return append([]string{}, node.Modifiers...)
}
