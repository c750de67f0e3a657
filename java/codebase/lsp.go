package codebase

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/outline/config"
	"github.com/dhamidi/outline/java/source"
	"github.com/dhamidi/outline/outline"
)

const lsName = "outline"

type LSPServer struct {
	codebase  *Codebase
	projector *outline.Projector
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewLSPServer(version string, projector *outline.Projector) *LSPServer {
	ls := &LSPServer{
		version:   version,
		projector: projector,
		codebase:  New(".", projector),
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.codebase = New(rootDir, ls.projector)

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.DocumentSymbolProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	cfg, err := config.Find(ls.codebase.RootDir())
	if err != nil {
		log.Warningf("%s", err)
		cfg = config.Default()
	}
	return ls.codebase.ScanAll(cfg)
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.update(ctx, params.TextDocument.URI, path, []byte(params.TextDocument.Text))
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx, params.TextDocument.URI, path, []byte(textChange.Text))
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, path, []byte(*params.Text))
	} else if info, err := ls.codebase.ScanFile(path); err == nil {
		ls.publishDiagnostics(ctx, params.TextDocument.URI, info)
	}
	return nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	file := ls.codebase.GetFile(path)
	if file == nil {
		if file, err = ls.codebase.ScanFile(path); err != nil {
			return nil, nil
		}
	}
	if file.Outline == nil {
		return nil, nil
	}
	return DocumentSymbols(file.Outline, file.OutlineSource), nil
}

func (ls *LSPServer) update(ctx *glsp.Context, uri protocol.DocumentUri, path string, content []byte) {
	info := ls.codebase.UpdateFile(path, content)
	ls.publishDiagnostics(ctx, uri, info)
}

// publishDiagnostics reports the syntax error of info, or clears earlier
// reports when there is none.
func (ls *LSPServer) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, info *FileInfo) {
	if ctx == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnosticsFor(info),
	})
}

func diagnosticsFor(info *FileInfo) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if info == nil || info.Err == nil {
		return diagnostics
	}

	var r protocol.Range
	var syntaxErr *source.SyntaxError
	if errors.As(info.Err, &syntaxErr) {
		start := newLineIndex(info.Content).position(syntaxErr.Position.Line, syntaxErr.Position.Column-1)
		r = protocol.Range{Start: start, End: start}
	}

	severity := protocol.DiagnosticSeverityError
	src := lsName
	return append(diagnostics, protocol.Diagnostic{
		Range:    r,
		Severity: &severity,
		Source:   &src,
		Message:  info.Err.Error(),
	})
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
