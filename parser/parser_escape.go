package parser

import "strconv"

var classEscapeKinds = map[string]NodeKind{
	`\d`: KindAnyDigit,
	`\D`: KindNonDigit,
	`\s`: KindAnyWhitespace,
	`\S`: KindNonWhitespace,
	`\w`: KindAnyWord,
	`\W`: KindNonWord,
}

func newClassEscape(step *Step) *LeafNode {
	return leafFor(classEscapeKinds[step.Value], step)
}

func newControlEscape(step *Step) *ControlEscapeNode {
	return &ControlEscapeNode{Loc: Span{Start: step.Start, End: step.End}, Escape: step.Value[1]}
}

// parseDecimalEscape handles \0 through \9 outside character classes. A \N
// right after the N-th capturing group, when it just closed, refers back to
// that group.
func (p *parser) parseDecimalEscape(step *Step, nodes []Node) Result[progress] {
	digit := int(step.Value[1] - '0')
	next := step.Next()
	if digit > 0 && len(nodes) > 0 && (next == nil || next.Kind != TokenDecimal) {
		if group, ok := nodes[len(nodes)-1].(*GroupNode); ok && group.Type.IsCapturing() && group.Index == digit {
			out := make([]Node, len(nodes))
			copy(out, nodes)
			out[len(out)-1] = newBackReference(group, step, digit)
			return Matched(progress{nodes: out, next: next})
		}
	}
	pn := p.parseNumericEscape(step)
	return appendNode(nodes, pn.node, pn.last)
}

// parseNumericEscape reads an octal escape of up to three digits, a null
// character, or falls back to an escaped digit.
func (p *parser) parseNumericEscape(step *Step) parsedNode {
	octal := Map(matchSequence(step, octalRun()), func(s Sequence) parsedNode {
		value, _ := strconv.ParseUint(s.Values[0], 8, 32)
		return parsedNode{
			node: &CharNode{
				Loc:   Span{Start: s.Start, End: s.End},
				Type:  CharOctal,
				Value: rune(value),
				Raw:   s.Values[0],
			},
			last: s.Last,
		}
	})
	pn, _ := octal.OrElse(func() Result[parsedNode] {
		if step.Value == `\0` {
			return Matched(parsedNode{node: leafFor(KindNullChar, step), last: step})
		}
		return Matched(parsedNode{node: newEscapedChar(step), last: step})
	}).Value()
	return pn
}

// parseCharEscape handles a backslash followed by a character that is not a
// control, class or decimal escape.
func (p *parser) parseCharEscape(step *Step, inClass bool) Result[parsedNode] {
	single := func(n Node) Result[parsedNode] {
		return Matched(parsedNode{node: n, last: step})
	}
	escaped := func() Result[parsedNode] {
		return single(newEscapedChar(step))
	}

	switch step.Value {
	case `\b`:
		if inClass {
			return single(&BackspaceNode{Loc: Span{Start: step.Start, End: step.End}})
		}
		return single(leafFor(KindWordBoundary, step))
	case `\B`:
		if inClass {
			return escaped()
		}
		return single(leafFor(KindNonWordBoundary, step))
	case `\x`:
		return p.parseHexEscape(step).OrElse(escaped)
	case `\u`:
		return p.parseUnicodeEscape(step).OrElse(escaped)
	case `\c`:
		return p.parseControlLetter(step)
	case `\k`:
		if inClass {
			return escaped()
		}
		return p.parseNamedReference(step).OrElse(escaped)
	case `\p`, `\P`:
		return p.parseUnicodeProperty(step).OrElse(escaped)
	}
	return escaped()
}

func (p *parser) parseHexEscape(step *Step) Result[parsedNode] {
	seq := matchSequence(step, ValueOf(TokenCharEscape, `\x`), hexRun(2))
	return Map(seq, func(s Sequence) parsedNode {
		value, _ := strconv.ParseUint(s.Values[1], 16, 32)
		return parsedNode{
			node: &CharNode{
				Loc:   Span{Start: s.Start, End: s.End},
				Type:  CharHex,
				Value: rune(value),
				Raw:   s.Values[1],
			},
			last: s.Last,
		}
	})
}

// parseUnicodeEscape reads \uHHHH or \u{H...}.
func (p *parser) parseUnicodeEscape(step *Step) Result[parsedNode] {
	prefix := ValueOf(TokenCharEscape, `\u`)
	braced := matchSequence(step, prefix, ValueOf(TokenSyntaxChar, "{"), runOf(1, 6, isHexToken), ValueOf(TokenSyntaxChar, "}")).
		Filter(func(s Sequence) bool {
			value, err := strconv.ParseUint(s.Values[2], 16, 32)
			return err == nil && value <= 0x10FFFF
		})
	seq := braced.OrElse(func() Result[Sequence] {
		return matchSequence(step, prefix, hexRun(4))
	})
	return Map(seq, func(s Sequence) parsedNode {
		digits := s.Values[1]
		raw := digits
		if len(s.Values) == 4 {
			digits = s.Values[2]
			raw = "{" + digits + "}"
		}
		value, _ := strconv.ParseUint(digits, 16, 32)
		return parsedNode{
			node: &CharNode{
				Loc:   Span{Start: s.Start, End: s.End},
				Type:  CharUnicode,
				Value: rune(value),
				Raw:   raw,
			},
			last: s.Last,
		}
	})
}

func (p *parser) parseControlLetter(step *Step) Result[parsedNode] {
	seq, ok := MatchSequence(step, ValueOf(TokenCharEscape, `\c`), runOf(1, 1, isLetterToken))
	if !ok {
		return Errored[parsedNode](p.fail(step.Start, step.End, "invalid control character escape"))
	}
	return Matched(parsedNode{
		node: &ASCIIControlNode{Loc: Span{Start: seq.Start, End: seq.End}, Letter: seq.Values[1][0]},
		last: seq.Last,
	})
}

// parseNamedReference reads \k<name> and records it for resolution once the
// whole pattern is known.
func (p *parser) parseNamedReference(step *Step) Result[parsedNode] {
	seq := matchSequence(step, ValueOf(TokenCharEscape, `\k`), lessThan, groupNameRun(), greaterThan)
	return Map(seq, func(s Sequence) parsedNode {
		lt := step.Next()
		node := &SubpatternNode{
			Loc: Span{Start: s.Start, End: s.End},
			Name: &GroupNameNode{
				Loc:  Span{Start: lt.End + 1, End: s.Last.Start - 1},
				Name: s.Values[2],
			},
		}
		p.demands = append(p.demands, demand{name: s.Values[2], node: node})
		return parsedNode{node: node, last: s.Last}
	})
}

// parseUnicodeProperty reads \p{Name}, \p{Name=Value} and their \P forms.
func (p *parser) parseUnicodeProperty(step *Step) Result[parsedNode] {
	prefix := KindOf(TokenCharEscape)
	open := ValueOf(TokenSyntaxChar, "{")
	closing := ValueOf(TokenSyntaxChar, "}")

	seq := matchSequence(step, prefix, open, letterRun(), ValueOf(TokenPatternChar, "="), letterRun(), closing).
		OrElse(func() Result[Sequence] {
			return matchSequence(step, prefix, open, letterRun(), closing)
		})
	return Map(seq, func(s Sequence) parsedNode {
		node := &UnicodePropertyNode{
			Loc:     Span{Start: s.Start, End: s.End},
			Negated: step.Value == `\P`,
			Name:    s.Values[2],
		}
		if len(s.Values) == 6 {
			node.Value = s.Values[4]
		}
		return parsedNode{node: node, last: s.Last}
	})
}
