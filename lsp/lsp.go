// Package lsp serves C++ class declarations over the language server
// protocol: parse diagnostics on open, change and save, and document
// symbols built from the class model.
package lsp

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/BTwiiin/Transpiler-CPP-to-Csharp/cpp"
)

const lsName = "cpp2cs"

var log = commonlog.GetLogger("cpp2cs.lsp")

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu      sync.Mutex
	classes map[string][]*cpp.Class
}

func NewServer(version string, debug bool) *Server {
	ls := &Server{
		version: version,
		classes: make(map[string][]*cpp.Class),
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

	ls.server = server.NewServer(&ls.handler, lsName, debug)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.publish(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.publish(ctx, params.TextDocument.URI, []byte(textChange.Text))
		}
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.classes, params.TextDocument.URI)
	ls.mu.Unlock()
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.publish(ctx, params.TextDocument.URI, []byte(*params.Text))
		return nil
	}
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	ls.publish(ctx, params.TextDocument.URI, content)
	return nil
}

func (ls *Server) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	ls.mu.Lock()
	classes := ls.classes[params.TextDocument.URI]
	ls.mu.Unlock()

	var symbols []protocol.DocumentSymbol
	for _, c := range classes {
		symbols = append(symbols, classSymbol(c))
	}
	return symbols, nil
}

// publish reparses a document, replaces its cached classes and notifies
// the client. A failed parse keeps the last good class model so symbols
// stay useful while the user types through an error.
func (ls *Server) publish(ctx *glsp.Context, uri string, content []byte) {
	path, err := uriToPath(uri)
	if err != nil {
		path = uri
	}

	classes, parseErr := cpp.Parse(content, cpp.WithFile(filepath.Base(path)))

	diagnostics := []protocol.Diagnostic{}
	ls.mu.Lock()
	if parseErr == nil {
		ls.classes[uri] = classes
	} else {
		diagnostics = append(diagnostics, diagnosticFor(parseErr))
		log.Debugf("parse %s: %s", path, parseErr)
	}
	ls.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func diagnosticFor(err error) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	diag := protocol.Diagnostic{
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}
	var parseErr *cpp.ParseError
	if errors.As(err, &parseErr) {
		diag.Range = lineColRange(parseErr.Line, parseErr.Column)
		diag.Message = parseErr.Msg
	}
	return diag
}

func classSymbol(c *cpp.Class) protocol.DocumentSymbol {
	sym := protocol.DocumentSymbol{
		Name:           c.Name,
		Kind:           protocol.SymbolKindClass,
		Range:          lineRange(c.Line),
		SelectionRange: lineRange(c.Line),
	}
	if len(c.BaseClasses) > 0 {
		detail := ": " + strings.Join(c.BaseClasses, ", ")
		sym.Detail = &detail
	}
	for i := range c.Fields {
		f := &c.Fields[i]
		detail := f.Type
		sym.Children = append(sym.Children, protocol.DocumentSymbol{
			Name:           f.Name,
			Detail:         &detail,
			Kind:           protocol.SymbolKindField,
			Range:          lineRange(f.Line),
			SelectionRange: lineRange(f.Line),
		})
	}
	for i := range c.Methods {
		m := &c.Methods[i]
		child := protocol.DocumentSymbol{
			Name:           m.Name,
			Kind:           methodSymbolKind(m.Kind),
			Range:          lineRange(m.Line),
			SelectionRange: lineRange(m.Line),
		}
		if m.ReturnType != "" {
			detail := m.ReturnType
			child.Detail = &detail
		}
		sym.Children = append(sym.Children, child)
	}
	return sym
}

func methodSymbolKind(kind cpp.MethodKind) protocol.SymbolKind {
	switch kind {
	case cpp.MethodConstructor:
		return protocol.SymbolKindConstructor
	case cpp.MethodOperator:
		return protocol.SymbolKindOperator
	default:
		return protocol.SymbolKindMethod
	}
}

// lineRange covers the start of a 1-based source line.
func lineRange(line int) protocol.Range {
	return lineColRange(line, 0)
}

func lineColRange(line, column int) protocol.Range {
	l := protocol.UInteger(0)
	if line > 0 {
		l = protocol.UInteger(line - 1)
	}
	c := protocol.UInteger(column)
	return protocol.Range{
		Start: protocol.Position{Line: l, Character: c},
		End:   protocol.Position{Line: l, Character: c + 1},
	}
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

func intPtr(i int) *protocol.TextDocumentSyncKind {
	v := protocol.TextDocumentSyncKind(i)
	return &v
}
