package parser

import "unicode/utf8"

func newLeaf(kind NodeKind, start, end int) *LeafNode {
	return &LeafNode{Loc: Span{Start: start, End: end}, Type: kind}
}

func leafFor(kind NodeKind, step *Step) *LeafNode {
	return newLeaf(kind, step.Start, step.End)
}

// newZeroLength marks the empty gap in front of offset at.
func newZeroLength(at int) *LeafNode {
	return newLeaf(KindZeroLength, at, at-1)
}

// seal collapses a list of sibling expressions into a single node.
func seal(nodes []Node, gapAt int) Node {
	switch len(nodes) {
	case 0:
		return newZeroLength(gapAt)
	case 1:
		return nodes[0]
	}
	return &AlternativeNode{
		Loc:         Span{Start: nodes[0].Span().Start, End: nodes[len(nodes)-1].Span().End},
		Expressions: nodes,
	}
}

func newDisjunction(left, right Node) *DisjunctionNode {
	return &DisjunctionNode{
		Loc:   Span{Start: left.Span().Start, End: max(left.Span().End, right.Span().End)},
		Left:  left,
		Right: right,
	}
}

func newGroup(open, close *Step, typ GroupType, name *GroupNameNode, index int, body Node) *GroupNode {
	return &GroupNode{
		Loc:   Span{Start: open.Start, End: close.End},
		Type:  typ,
		Name:  name,
		Index: index,
		Body:  body,
	}
}

func newRepetition(expr Node, q *QuantifierNode) *RepetitionNode {
	return &RepetitionNode{
		Loc:        Span{Start: expr.Span().Start, End: q.Loc.End},
		Expression: expr,
		Quantifier: q,
	}
}

func newCharRange(from, to Node) *CharRangeNode {
	return &CharRangeNode{
		Loc:  Span{Start: from.Span().Start, End: to.Span().End},
		From: from,
		To:   to,
	}
}

func newBackReference(group *GroupNode, step *Step, number int) *BackReferenceNode {
	return &BackReferenceNode{
		Loc:    Span{Start: group.Loc.Start, End: step.End},
		Group:  group,
		Number: number,
	}
}

// newSimpleChar builds a literal character from a single token.
func newSimpleChar(step *Step) *CharNode {
	r, _ := utf8.DecodeRuneInString(step.Value)
	return &CharNode{
		Loc:   Span{Start: step.Start, End: step.End},
		Type:  CharSimple,
		Value: r,
		Raw:   step.Value,
	}
}

// newEscapedChar builds \X from a two-character escape token.
func newEscapedChar(step *Step) *CharNode {
	raw := step.Value[1:]
	r, _ := utf8.DecodeRuneInString(raw)
	return &CharNode{
		Loc:   Span{Start: step.Start, End: step.End},
		Type:  CharEscaped,
		Value: r,
		Raw:   raw,
	}
}
