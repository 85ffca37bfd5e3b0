package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/johnthecat/regexp-toolset-sub000/parser"
)

// LineEncoder writes one tab-separated line per node in traversal order:
// depth, kind, start, end and the node's source text. It is meant for grep
// and awk.
type LineEncoder struct {
	w    io.Writer
	node parser.Node
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(node parser.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	depth := 0
	parser.TraverseRegexpNode(e.node, parser.Visitors{
		parser.KindAny: {
			Enter: func(n, _ parser.Node) {
				span := n.Span()
				fmt.Fprintf(&sb, "%d\t%s\t%d\t%d\t%s\n",
					depth,
					n.Kind(),
					span.Start,
					span.End,
					escapeField(PrintRegexpNode(n)),
				)
				depth++
			},
			Exit: func(parser.Node, parser.Node) {
				depth--
			},
		},
	})
	return []byte(sb.String()), nil
}

func escapeField(s string) string {
	r := strings.NewReplacer("\\", `\\`, "\t", `\t`, "\n", `\n`)
	return r.Replace(s)
}
