package outline

import "github.com/dhamidi/outline/java/syntax"

// positions returns the literal begin and end of node.
func positions(node *syntax.Node) (begin, end Position, err error) {
	if node.Span == nil {
		return Position{}, Position{}, &MissingPositionError{Kind: node.Kind, Name: node.Name.String()}
	}
	return fromSyntax(node.Span.Start), fromSyntax(node.Span.End), nil
}

// namePositions returns the begin and end of the name of node.
func namePositions(node *syntax.Node) (begin, end Position, err error) {
	if node.Name == nil || node.Name.Span == nil {
		return Position{}, Position{}, &MissingPositionError{Kind: syntax.KindQualifiedName, Name: node.Name.String()}
	}
	return fromSyntax(node.Name.Span.Start), fromSyntax(node.Name.Span.End), nil
}

func fromSyntax(p syntax.Position) Position {
	return Position{Line: p.Line, Column: p.Column}
}
