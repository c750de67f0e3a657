package outline

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/outline/java/syntax"
)

// Diagnostics receives reports about nodes the projector skipped.
type Diagnostics interface {
	UnknownNode(node *syntax.Node)
}

var log = commonlog.GetLogger("outline")

// logDiagnostics reports skipped nodes as warnings on the outline logger.
type logDiagnostics struct{}

func (logDiagnostics) UnknownNode(node *syntax.Node) {
	log.Warningf("unhandled node %s at %s", describe(node), node.Span)
}

// describe names the kind of node. Nodes of KindOther carry the grammar kind
// they were built from in Text.
func describe(node *syntax.Node) string {
	if node.Kind == syntax.KindOther && node.Text != "" {
		return fmt.Sprintf("%s (%s)", node.Kind, node.Text)
	}
	return node.Kind.String()
}

// DiscardDiagnostics drops every report.
var DiscardDiagnostics Diagnostics = discardDiagnostics{}

type discardDiagnostics struct{}

func (discardDiagnostics) UnknownNode(*syntax.Node) {}
