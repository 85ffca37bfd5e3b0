package lsp

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/johnthecat/regexp-toolset-sub000/parser"
)

// Extension is the file extension of pattern documents.
const Extension = ".rx"

// Workspace keeps the parsed state of every pattern document it has seen.
type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*Document
}

// Document is a pattern file. Every line that is neither blank nor a
// comment starting with # holds one regular expression literal.
type Document struct {
	Path    string
	Content []byte
	Lines   []*Line
}

// Line is one pattern of a document. Offsets inside Regexp and Err are
// relative to Text; Indent is the number of bytes stripped before Text.
type Line struct {
	Number int // 0-based
	Raw    string
	Indent int
	Text   string
	Regexp *parser.RegexpNode
	Err    *parser.SyntaxError
}

// Problem is a syntax error located in a document.
type Problem struct {
	Line    int
	Start   int // byte offset into the raw line
	End     int // exclusive
	Message string
	Raw     string
}

// Symbol is a named capturing group.
type Symbol struct {
	Name      string
	Line      int
	Start     int // byte offsets into the raw line, End exclusive
	End       int
	NameStart int
	NameEnd   int
	Pattern   string
	Raw       string
}

func New(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		files:   make(map[string]*Document),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// ScanAll parses every pattern document below the root directory.
func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == Extension {
			if err := w.ScanFile(path); err != nil {
				log.Warningf("scanning %s: %s", path, err)
			}
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, content)
	return nil
}

func (w *Workspace) UpdateFile(path string, content []byte) *Document {
	doc := parseDocument(path, content)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = doc
	return doc
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Paths returns the paths of all known documents in sorted order.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func parseDocument(path string, content []byte) *Document {
	doc := &Document{Path: path, Content: content}
	for i, raw := range strings.Split(string(content), "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		line := &Line{
			Number: i,
			Raw:    raw,
			Indent: strings.Index(raw, text),
			Text:   text,
		}
		re, err := parser.ParseRegexp(text)
		var syntaxErr *parser.SyntaxError
		switch {
		case err == nil:
			line.Regexp = re
		case errors.As(err, &syntaxErr):
			line.Err = syntaxErr
		default:
			line.Err = &parser.SyntaxError{Source: text, Start: 0, End: len(text) - 1, Message: err.Error()}
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc
}

// Line returns the pattern on the given 0-based line, if there is one.
func (d *Document) Line(number int) *Line {
	for _, l := range d.Lines {
		if l.Number == number {
			return l
		}
	}
	return nil
}

// Problems lists the syntax errors of the document.
func (w *Workspace) Problems(path string) []Problem {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc := w.files[path]
	if doc == nil {
		return nil
	}
	var problems []Problem
	for _, l := range doc.Lines {
		if l.Err == nil {
			continue
		}
		start, end := l.rawRange(l.Err.Span())
		problems = append(problems, Problem{
			Line:    l.Number,
			Start:   start,
			End:     end,
			Message: l.Err.Message,
			Raw:     l.Raw,
		})
	}
	return problems
}

// NodeAtPoint returns the innermost node under the byte column of a line.
func (w *Workspace) NodeAtPoint(path string, line, column int) (parser.Node, *Line) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc := w.files[path]
	if doc == nil {
		return nil, nil
	}
	l := doc.Line(line)
	if l == nil || l.Regexp == nil {
		return nil, nil
	}
	node, _ := parser.NodeAt(l.Regexp, column-l.Indent)
	if node == nil {
		return nil, nil
	}
	return node, l
}

// Symbols lists the named groups of the document in source order.
func (w *Workspace) Symbols(path string) []Symbol {
	w.mu.RLock()
	defer w.mu.RUnlock()

	doc := w.files[path]
	if doc == nil {
		return nil
	}
	var symbols []Symbol
	for _, l := range doc.Lines {
		if l.Regexp == nil {
			continue
		}
		parser.TraverseRegexpNode(l.Regexp, parser.Visitors{
			parser.KindGroup: parser.Enter(func(n, _ parser.Node) {
				group := n.(*parser.GroupNode)
				if group.Name == nil {
					return
				}
				start, end := l.rawRange(group.Loc)
				nameStart, nameEnd := l.rawRange(group.Name.Loc)
				symbols = append(symbols, Symbol{
					Name:      group.Name.Name,
					Line:      l.Number,
					Start:     start,
					End:       end,
					NameStart: nameStart,
					NameEnd:   nameEnd,
					Pattern:   l.Text,
					Raw:       l.Raw,
				})
			}),
		})
	}
	return symbols
}

// rawRange converts an inclusive span of Text to a half-open byte range of
// Raw.
func (l *Line) rawRange(span parser.Span) (int, int) {
	start := min(max(span.Start, 0), len(l.Text))
	end := min(max(span.End+1, start), len(l.Text))
	return start + l.Indent, end + l.Indent
}
