package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/johnthecat/regexp-toolset-sub000/format"
	"github.com/johnthecat/regexp-toolset-sub000/parser"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "regexp-toolset"

var log = commonlog.GetLogger("regexp-toolset.lsp")

// LSPServer reports syntax errors in .rx documents and answers hover and
// document symbol requests for the patterns they contain.
type LSPServer struct {
	workspace *Workspace
	watcher   *FileWatcher
	handler   protocol.Handler
	server    *server.Server
	version   string

	mu     sync.Mutex
	notify glsp.NotifyFunc
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		version: version,
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
		TextDocumentHover:          ls.textDocumentHover,
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
	log.Infof("workspace root %s", rootDir)

	ls.workspace = New(rootDir)

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

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	ls.mu.Lock()
	ls.notify = ctx.Notify
	ls.mu.Unlock()

	if err := ls.workspace.ScanAll(); err != nil {
		log.Errorf("scanning %s: %s", ls.workspace.RootDir(), err)
	}
	for _, path := range ls.workspace.Paths() {
		ls.publish(path)
	}

	ls.watcher = NewFileWatcher(ls.workspace)
	ls.watcher.OnChange = ls.publish
	ls.watcher.Start()
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		ls.watcher.Stop()
		ls.watcher = nil
	}
	protocol.SetTraceValue(protocol.TraceValueOff)
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
	ls.workspace.UpdateFile(path, []byte(params.TextDocument.Text))
	ls.publishTo(ctx.Notify, path)
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
			ls.workspace.UpdateFile(path, []byte(textChange.Text))
			ls.publishTo(ctx.Notify, path)
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
		ls.workspace.UpdateFile(path, []byte(*params.Text))
	} else if err := ls.workspace.ScanFile(path); err != nil {
		log.Warningf("rescanning %s: %s", path, err)
		return nil
	}
	ls.publishTo(ctx.Notify, path)
	return nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	doc := ls.workspace.GetFile(path)
	if doc == nil {
		return nil, nil
	}
	line := doc.Line(int(params.Position.Line))
	if line == nil {
		return nil, nil
	}
	node, _ := ls.workspace.NodeAtPoint(path, line.Number, byteColumn(line.Raw, int(params.Position.Character)))
	if node == nil {
		return nil, nil
	}
	start, end := line.rawRange(node.Span())
	r := lineRange(line.Raw, line.Number, start, end)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: hoverText(node),
		},
		Range: &r,
	}, nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	return documentSymbols(ls.workspace.Symbols(path)), nil
}

func (ls *LSPServer) publish(path string) {
	ls.mu.Lock()
	notify := ls.notify
	ls.mu.Unlock()
	if notify != nil {
		ls.publishTo(notify, path)
	}
}

func (ls *LSPServer) publishTo(notify glsp.NotifyFunc, path string) {
	diagnostics := diagnosticsFor(ls.workspace.Problems(path))
	log.Debugf("%s: %d problems", path, len(diagnostics))
	notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         pathToURI(path),
		Diagnostics: diagnostics,
	})
}

func diagnosticsFor(problems []Problem) []protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	diagnostics := make([]protocol.Diagnostic, 0, len(problems))
	for _, p := range problems {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    lineRange(p.Raw, p.Line, p.Start, p.End),
			Severity: &severity,
			Source:   &source,
			Message:  p.Message,
		})
	}
	return diagnostics
}

func documentSymbols(symbols []Symbol) []protocol.DocumentSymbol {
	result := make([]protocol.DocumentSymbol, 0, len(symbols))
	for _, s := range symbols {
		detail := s.Pattern
		result = append(result, protocol.DocumentSymbol{
			Name:           s.Name,
			Detail:         &detail,
			Kind:           protocol.SymbolKindField,
			Range:          lineRange(s.Raw, s.Line, s.Start, s.End),
			SelectionRange: lineRange(s.Raw, s.Line, s.NameStart, s.NameEnd),
		})
	}
	return result
}

func hoverText(node parser.Node) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**", node.Kind())
	if detail := format.Describe(node); detail != "" {
		fmt.Fprintf(&sb, " %s", detail)
	}
	fmt.Fprintf(&sb, "\n\n```\n%s\n```\n", format.PrintRegexpNode(node))
	span := node.Span()
	fmt.Fprintf(&sb, "\nspan %d:%d", span.Start, span.End)
	return sb.String()
}

// lineRange converts a half-open byte range of a raw line to an LSP range.
func lineRange(raw string, line, start, end int) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(utf16Column(raw, start))},
		End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(utf16Column(raw, end))},
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

func pathToURI(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *protocol.TextDocumentSyncKind {
	v := protocol.TextDocumentSyncKind(i)
	return &v
}
