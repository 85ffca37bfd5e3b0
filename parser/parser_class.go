package parser

var backspaceClass = []SequenceMatcher{
	ValueOf(TokenSyntaxChar, "["),
	ValueOf(TokenCharEscape, `\b`),
	ValueOf(TokenSyntaxChar, "]"),
}

func isClassEnd(step *Step) bool {
	return step.Is(TokenSyntaxChar, "]")
}

func (p *parser) parseCharClass(open *Step) Result[parsedNode] {
	if seq, ok := MatchSequence(open, backspaceClass...); ok {
		return Matched(parsedNode{
			node: &BackspaceNode{Loc: Span{Start: seq.Start, End: seq.End}, Bracketed: true},
			last: seq.Last,
		})
	}

	class := &CharClassNode{Loc: Span{Start: open.Start}}
	step := open.Next()
	if step != nil && step.Is(TokenSyntaxChar, "^") {
		class.Negated = true
		step = step.Next()
	}

	for {
		if step == nil {
			return Errored[parsedNode](p.fail(open.Start, len(p.src)-1, "character class missing closing bracket"))
		}
		if isClassEnd(step) {
			class.Loc.End = step.End
			return Matched(parsedNode{node: class, last: step})
		}

		r := p.parseClassAtom(step)
		if r.IsErrored() {
			return Errored[parsedNode](r.Err())
		}
		atom, _ := r.Value()

		if dash, ok := atom.node.(*CharNode); ok && dash.Type == CharSimple && dash.Raw == "-" {
			ranged := p.parseClassRange(class, atom.last)
			if ranged.IsErrored() {
				return Errored[parsedNode](ranged.Err())
			}
			if rng, ok := ranged.Value(); ok {
				class.Expressions[len(class.Expressions)-1] = rng.node
				step = rng.last.Next()
				continue
			}
		}

		class.Expressions = append(class.Expressions, atom.node)
		step = atom.last.Next()
	}
}

// parseClassRange tries to build a range from the last expression of class
// to the atom after the dash. It is unmatched when either end is not a
// single character, in which case the dash stays a literal.
func (p *parser) parseClassRange(class *CharClassNode, dash *Step) Result[parsedNode] {
	if len(class.Expressions) == 0 {
		return Unmatched[parsedNode]()
	}
	from := class.Expressions[len(class.Expressions)-1]
	low, ok := CodePoint(from)
	if !ok {
		return Unmatched[parsedNode]()
	}
	next := dash.Next()
	if next == nil || isClassEnd(next) {
		return Unmatched[parsedNode]()
	}

	return FlatMap(p.parseClassAtom(next), func(atom parsedNode) Result[parsedNode] {
		high, ok := CodePoint(atom.node)
		if !ok {
			return Unmatched[parsedNode]()
		}
		if low > high {
			start, end := from.Span().Start, atom.node.Span().Start
			return Errored[parsedNode](p.fail(start, atom.node.Span().End,
				"character range is out of order: %q (index %d, code %d) is greater than %q (index %d, code %d)",
				low, start, low,
				high, end, high))
		}
		return Matched(parsedNode{node: newCharRange(from, atom.node), last: atom.last})
	})
}

// parseClassAtom reads one member of a character class.
func (p *parser) parseClassAtom(step *Step) Result[parsedNode] {
	single := func(n Node) Result[parsedNode] {
		return Matched(parsedNode{node: n, last: step})
	}
	switch step.Kind {
	case TokenCharClassEscape:
		return single(newClassEscape(step))
	case TokenControlEscape:
		return single(newControlEscape(step))
	case TokenDecimalEscape:
		return Matched(p.parseNumericEscape(step))
	case TokenCharEscape:
		return p.parseCharEscape(step, true)
	}
	return single(newSimpleChar(step))
}
