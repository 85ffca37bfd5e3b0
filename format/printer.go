package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/johnthecat/regexp-toolset-sub000/parser"
)

var leafText = map[parser.NodeKind]string{
	parser.KindLineStart:       "^",
	parser.KindLineEnd:         "$",
	parser.KindAnyChar:         ".",
	parser.KindAnyDigit:        `\d`,
	parser.KindNonDigit:        `\D`,
	parser.KindAnyWhitespace:   `\s`,
	parser.KindNonWhitespace:   `\S`,
	parser.KindAnyWord:         `\w`,
	parser.KindNonWord:         `\W`,
	parser.KindWordBoundary:    `\b`,
	parser.KindNonWordBoundary: `\B`,
	parser.KindNullChar:        `\0`,
	parser.KindZeroLength:      "",
}

// RegexpPrinter writes a tree back as pattern source.
type RegexpPrinter struct {
	w  io.Writer
	sb strings.Builder
}

func NewRegexpPrinter(w io.Writer) *RegexpPrinter {
	return &RegexpPrinter{w: w}
}

func (p *RegexpPrinter) Print(node parser.Node) error {
	p.sb.Reset()
	p.printNode(node)
	_, err := io.WriteString(p.w, p.sb.String())
	return err
}

// PrintRegexpNode returns the source text of node. For a tree produced by
// the parser the result is byte-for-byte the text it was parsed from.
func PrintRegexpNode(node parser.Node) string {
	var p RegexpPrinter
	p.printNode(node)
	return p.sb.String()
}

func (p *RegexpPrinter) write(s string) {
	p.sb.WriteString(s)
}

func (p *RegexpPrinter) printAll(nodes []parser.Node) {
	for _, n := range nodes {
		p.printNode(n)
	}
}

func (p *RegexpPrinter) printNode(node parser.Node) {
	switch n := node.(type) {
	case nil:
	case *parser.RegexpNode:
		p.write("/")
		p.printNode(n.Body)
		p.write("/")
		p.write(n.Flags)
	case *parser.DisjunctionNode:
		p.printNode(n.Left)
		p.write("|")
		p.printNode(n.Right)
	case *parser.AlternativeNode:
		p.printAll(n.Expressions)
	case *parser.GroupNode:
		p.write(n.Type.Prefix())
		if n.Name != nil {
			p.write(n.Name.Name)
			p.write(">")
		}
		p.printNode(n.Body)
		p.write(")")
	case *parser.GroupNameNode:
		p.write(n.Name)
	case *parser.RepetitionNode:
		p.printNode(n.Expression)
		p.printNode(n.Quantifier)
	case *parser.QuantifierNode:
		p.printQuantifier(n)
	case *parser.CharClassNode:
		p.write("[")
		if n.Negated {
			p.write("^")
		}
		p.printAll(n.Expressions)
		p.write("]")
	case *parser.CharRangeNode:
		p.printNode(n.From)
		p.write("-")
		p.printNode(n.To)
	case *parser.CharNode:
		p.printChar(n)
	case *parser.BackReferenceNode:
		p.printNode(n.Group)
		p.write(`\`)
		p.write(strconv.Itoa(n.Number))
	case *parser.SubpatternNode:
		p.write(`\k<`)
		p.write(n.Name.Name)
		p.write(">")
	case *parser.ControlEscapeNode:
		p.write(`\`)
		p.write(string(n.Escape))
	case *parser.ASCIIControlNode:
		p.write(`\c`)
		p.write(string(n.Letter))
	case *parser.UnicodePropertyNode:
		if n.Negated {
			p.write(`\P{`)
		} else {
			p.write(`\p{`)
		}
		p.write(n.Name)
		if n.Value != "" {
			p.write("=")
			p.write(n.Value)
		}
		p.write("}")
	case *parser.BackspaceNode:
		if n.Bracketed {
			p.write(`[\b]`)
		} else {
			p.write(`\b`)
		}
	case *parser.LeafNode:
		p.write(leafText[n.Type])
	}
}

func (p *RegexpPrinter) printQuantifier(q *parser.QuantifierNode) {
	switch q.Type {
	case parser.QuantifierStar:
		p.write("*")
	case parser.QuantifierPlus:
		p.write("+")
	case parser.QuantifierOptional:
		p.write("?")
	case parser.QuantifierExact:
		p.write("{")
		p.write(textOr(q.MinText, q.Min))
		p.write("}")
	case parser.QuantifierRange:
		p.write("{")
		p.write(textOr(q.MinText, q.Min))
		p.write(",")
		if q.Max != nil {
			p.write(textOr(q.MaxText, *q.Max))
		}
		p.write("}")
	}
	if q.Lazy {
		p.write("?")
	}
}

func (p *RegexpPrinter) printChar(c *parser.CharNode) {
	raw := c.Raw
	switch c.Type {
	case parser.CharSimple:
		if raw == "" {
			raw = string(c.Value)
		}
		p.write(raw)
	case parser.CharEscaped:
		if raw == "" {
			raw = string(c.Value)
		}
		p.write(`\`)
		p.write(raw)
	case parser.CharHex:
		if raw == "" {
			raw = strings.ToUpper(padHex(c.Value, 2))
		}
		p.write(`\x`)
		p.write(raw)
	case parser.CharUnicode:
		if raw == "" {
			raw = strings.ToUpper(padHex(c.Value, 4))
			if c.Value > 0xFFFF {
				raw = "{" + strconv.FormatInt(int64(c.Value), 16) + "}"
			}
		}
		p.write(`\u`)
		p.write(raw)
	case parser.CharOctal:
		if raw == "" {
			raw = strconv.FormatInt(int64(c.Value), 8)
		}
		p.write(`\`)
		p.write(raw)
	}
}

// textOr prefers the digits as written over the parsed number.
func textOr(text string, n int) string {
	if text != "" {
		return text
	}
	return strconv.Itoa(n)
}

func padHex(r rune, width int) string {
	s := strconv.FormatInt(int64(r), 16)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
