package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/johnthecat/regexp-toolset-sub000/parser"
)

// TreeEncoder draws a tree one node per line, children indented below
// their parent:
//
//	Regexp 0:5 "/a(b)/"
//	  Alternative 1:4 "a(b)"
//	    Char 1:1 simple "a"
//	    Group 2:4 capturing #1 "(b)"
//	      Char 3:3 simple "b"
type TreeEncoder struct {
	w       io.Writer
	node    parser.Node
	opts    options
	profile termenv.Profile
}

func NewTreeEncoder(w io.Writer, opts ...Option) *TreeEncoder {
	o := buildOptions(opts)
	profile := termenv.Ascii
	if o.color {
		profile = termenv.ANSI
	}
	return &TreeEncoder{w: w, opts: o, profile: profile}
}

func (e *TreeEncoder) Encode(node parser.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	depth := 0
	parser.TraverseRegexpNode(e.node, parser.Visitors{
		parser.KindAny: {
			Enter: func(n, _ parser.Node) {
				e.writeLine(&sb, depth, n)
				depth++
			},
			Exit: func(parser.Node, parser.Node) {
				depth--
			},
		},
	})
	return []byte(sb.String()), nil
}

func (e *TreeEncoder) writeLine(sb *strings.Builder, depth int, n parser.Node) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(e.profile.String(n.Kind().String()).Foreground(e.profile.Color("4")).Bold().String())
	if e.opts.spans {
		span := n.Span()
		sb.WriteByte(' ')
		sb.WriteString(e.profile.String(fmt.Sprintf("%d:%d", span.Start, span.End)).Faint().String())
	}
	if detail := Describe(n); detail != "" {
		sb.WriteByte(' ')
		sb.WriteString(e.profile.String(detail).Foreground(e.profile.Color("3")).String())
	}
	if text := PrintRegexpNode(n); text != "" {
		sb.WriteByte(' ')
		sb.WriteString(e.profile.String(fmt.Sprintf("%q", text)).Foreground(e.profile.Color("2")).String())
	}
	sb.WriteByte('\n')
}

// Describe summarizes the attributes of a node that its kind does not
// already tell.
func Describe(n parser.Node) string {
	switch n := n.(type) {
	case *parser.RegexpNode:
		if n.Flags != "" {
			return "flags=" + n.Flags
		}
	case *parser.GroupNode:
		parts := []string{n.Type.String()}
		if n.Index > 0 {
			parts = append(parts, fmt.Sprintf("#%d", n.Index))
		}
		if n.Name != nil {
			parts = append(parts, "<"+n.Name.Name+">")
		}
		return strings.Join(parts, " ")
	case *parser.QuantifierNode:
		max := "inf"
		if n.Max != nil {
			max = fmt.Sprint(*n.Max)
		}
		s := fmt.Sprintf("min=%d max=%s", n.Min, max)
		if n.Lazy {
			s += " lazy"
		}
		return s
	case *parser.CharClassNode:
		if n.Negated {
			return "negated"
		}
	case *parser.CharNode:
		return fmt.Sprintf("%s %U", n.Type, n.Value)
	case *parser.BackReferenceNode:
		return fmt.Sprintf("#%d", n.Number)
	case *parser.SubpatternNode:
		if n.Ref != nil {
			return fmt.Sprintf("-> %d:%d", n.Ref.Loc.Start, n.Ref.Loc.End)
		}
	}
	return ""
}
