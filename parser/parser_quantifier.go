package parser

import "strconv"

// parsedNode is a node together with the last step it was built from.
type parsedNode struct {
	node Node
	last *Step
}

func quantifiable(n Node) bool {
	switch n.Kind() {
	case KindLineStart, KindLineEnd, KindWordBoundary, KindNonWordBoundary, KindRepetition:
		return false
	case KindGroup:
		return !n.(*GroupNode).Type.IsLookbehind()
	}
	return true
}

// quantify wraps the last expression in a repetition.
func (p *parser) quantify(nodes []Node, q *QuantifierNode, last *Step) Result[progress] {
	if len(nodes) == 0 || !quantifiable(nodes[len(nodes)-1]) {
		return Errored[progress](p.fail(q.Loc.Start, q.Loc.End, "The preceding token is not quantifiable"))
	}
	out := make([]Node, len(nodes))
	copy(out, nodes)
	out[len(out)-1] = newRepetition(nodes[len(nodes)-1], q)
	return Matched(progress{nodes: out, next: last.Next()})
}

// lazySuffix consumes a ? following a quantifier.
func lazySuffix(q *QuantifierNode, last *Step) *Step {
	next := last.Next()
	if next != nil && next.Is(TokenSyntaxChar, "?") {
		q.Lazy = true
		q.Loc.End = next.End
		return next
	}
	return last
}

func (p *parser) parseQuantifierChar(step *Step, nodes []Node) Result[progress] {
	q := &QuantifierNode{Loc: Span{Start: step.Start, End: step.End}}
	switch step.Value {
	case "*":
		q.Type = QuantifierStar
	case "+":
		q.Type = QuantifierPlus
		q.Min = 1
	case "?":
		q.Type = QuantifierOptional
		one := 1
		q.Max = &one
	}
	last := lazySuffix(q, step)
	return p.quantify(nodes, q, last)
}

// parseRangeQuantifier recognizes {n}, {n,} and {n,m}. Anything else is
// unmatched so the brace can be read as a literal.
func (p *parser) parseRangeQuantifier(open *Step, nodes []Node) Result[progress] {
	brace := ValueOf(TokenSyntaxChar, "{")
	closing := ValueOf(TokenSyntaxChar, "}")
	comma := ValueOf(TokenPatternChar, ",")

	seq := matchSequence(open, brace, digitRun(), closing).
		OrElse(func() Result[Sequence] {
			return matchSequence(open, brace, digitRun(), comma, closing)
		}).
		OrElse(func() Result[Sequence] {
			return matchSequence(open, brace, digitRun(), comma, digitRun(), closing)
		})

	return FlatMap(seq, func(s Sequence) Result[progress] {
		q := &QuantifierNode{
			Loc:     Span{Start: s.Start, End: s.End},
			MinText: s.Values[1],
		}
		lower, err := strconv.Atoi(q.MinText)
		if err != nil {
			return Unmatched[progress]()
		}
		q.Min = lower
		switch len(s.Values) {
		case 3:
			q.Type = QuantifierExact
			q.Max = &lower
		case 4:
			q.Type = QuantifierRange
		case 5:
			q.Type = QuantifierRange
			q.MaxText = s.Values[3]
			upper, err := strconv.Atoi(q.MaxText)
			if err != nil {
				return Unmatched[progress]()
			}
			if upper < lower {
				return Errored[progress](p.fail(s.Start, s.End, "quantifier range is out of order"))
			}
			q.Max = &upper
		}
		last := lazySuffix(q, s.Last)
		return p.quantify(nodes, q, last)
	})
}
