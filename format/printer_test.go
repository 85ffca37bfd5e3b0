package format

import (
	"bytes"
	"testing"

	"github.com/johnthecat/regexp-toolset-sub000/parser"
)

func TestPrintRegexpNodeRoundTrip(t *testing.T) {
	tests := []string{
		`/abc/`,
		`//`,
		`/a|b/`,
		`/(a)\1/`,
		`/(?<name>a)\k<name>/g`,
		`/a{2,5}?/`,
		`/a{2,}/`,
		`/a{,5}/`,
		`/[^a-z\d]/`,
		`/[\b]/`,
		`/\x4F\xfg/`,
		`/\u{1F600}/u`,
		`/\378/`,
		`/\cJ/`,
		`/\P{Script=Greek}/`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			re, err := parser.ParseRegexp(input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := PrintRegexpNode(re); got != input {
				t.Errorf("got %q, want %q", got, input)
			}
		})
	}
}

func TestPrintRegexpNodeSubtree(t *testing.T) {
	re, err := parser.ParseRegexp(`/x(?<n>a|bc)+y/`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rep := re.Body.(*parser.AlternativeNode).Expressions[1]
	if got := PrintRegexpNode(rep); got != `(?<n>a|bc)+` {
		t.Errorf("got %q, want %q", got, `(?<n>a|bc)+`)
	}
	group := rep.(*parser.RepetitionNode).Expression.(*parser.GroupNode)
	if got := PrintRegexpNode(group.Body); got != `a|bc` {
		t.Errorf("got %q, want %q", got, `a|bc`)
	}
}

func TestPrintConstructedNodes(t *testing.T) {
	three := 3
	tests := []struct {
		name string
		node parser.Node
		want string
	}{
		{"simple char", &parser.CharNode{Type: parser.CharSimple, Value: 'a'}, "a"},
		{"escaped char", &parser.CharNode{Type: parser.CharEscaped, Value: '.'}, `\.`},
		{"hex char", &parser.CharNode{Type: parser.CharHex, Value: 'O'}, `\x4F`},
		{"unicode char", &parser.CharNode{Type: parser.CharUnicode, Value: 'A'}, `\u0041`},
		{"astral unicode char", &parser.CharNode{Type: parser.CharUnicode, Value: 0x1F600}, `\u{1f600}`},
		{"octal char", &parser.CharNode{Type: parser.CharOctal, Value: 'A'}, `\101`},
		{"range quantifier", &parser.RepetitionNode{
			Expression: &parser.LeafNode{Type: parser.KindAnyDigit},
			Quantifier: &parser.QuantifierNode{Type: parser.QuantifierRange, Min: 1, Max: &three},
		}, `\d{1,3}`},
		{"zero length", &parser.LeafNode{Type: parser.KindZeroLength}, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrintRegexpNode(tt.node); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegexpPrinterPrint(t *testing.T) {
	re, err := parser.ParseRegexp(`/a+/i`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := NewRegexpPrinter(&buf).Print(re); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if buf.String() != `/a+/i` {
		t.Errorf("got %q, want %q", buf.String(), `/a+/i`)
	}
}
