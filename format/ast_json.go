package format

import (
	"io"

	"github.com/johnthecat/regexp-toolset-sub000/parser"
)

type ASTJSONEncoder struct {
	w    io.Writer
	node parser.Node
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node parser.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ASTJSONEncoder) MarshalText() ([]byte, error) {
	text, err := parser.MarshalNodeIndent(e.node, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}
