package syntax

import "fmt"

// Position is a 1-based line and column. Columns count characters, not
// bytes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span covers a node from its first character (Start) to its last character
// (End), both inclusive.
type Span struct {
	File  string
	Start Position
	End   Position
}

func (s *Span) String() string {
	if s == nil {
		return "?"
	}
	if s.File != "" {
		return s.File + ":" + s.Start.String() + "-" + s.End.String()
	}
	return s.Start.String() + "-" + s.End.String()
}

// NewSpan is shorthand for a span without a file.
func NewSpan(startLine, startCol, endLine, endCol int) *Span {
	return &Span{
		Start: Position{Line: startLine, Column: startCol},
		End:   Position{Line: endLine, Column: endCol},
	}
}
