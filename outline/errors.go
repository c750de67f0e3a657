package outline

import (
	"fmt"

	"github.com/dhamidi/outline/java/syntax"
)

// MissingPositionError is returned when a node that must contribute a source
// position has no span. It aborts the whole projection.
type MissingPositionError struct {
	Kind syntax.NodeKind
	Name string
}

func (e *MissingPositionError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("missing position for %s %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("missing position for %s", e.Kind)
}

// InvalidDeclaratorOwnerError is returned when a variable declarator is not
// dispatched from within a field declaration, so its modifiers are unknown.
type InvalidDeclaratorOwnerError struct {
	Name  string
	Owner syntax.NodeKind // KindOther when there was no owner at all
	Span  *syntax.Span
}

func (e *InvalidDeclaratorOwnerError) Error() string {
	return fmt.Sprintf("declarator %q at %s: owner is %s, not a field declaration", e.Name, e.Span, e.Owner)
}
