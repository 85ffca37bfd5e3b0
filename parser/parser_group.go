package parser

type groupPrefix struct {
	typ      GroupType
	matchers []SequenceMatcher
}

var (
	openParen    = ValueOf(TokenSyntaxChar, "(")
	questionMark = ValueOf(TokenSyntaxChar, "?")
	lessThan     = ValueOf(TokenPatternChar, "<")
	greaterThan  = ValueOf(TokenPatternChar, ">")
)

// groupPrefixes are tried in order; a bare ( is a plain capturing group.
var groupPrefixes = []groupPrefix{
	{GroupPositiveLookahead, []SequenceMatcher{openParen, questionMark, ValueOf(TokenPatternChar, "=")}},
	{GroupNegativeLookahead, []SequenceMatcher{openParen, questionMark, ValueOf(TokenPatternChar, "!")}},
	{GroupPositiveLookbehind, []SequenceMatcher{openParen, questionMark, lessThan, ValueOf(TokenPatternChar, "=")}},
	{GroupNegativeLookbehind, []SequenceMatcher{openParen, questionMark, lessThan, ValueOf(TokenPatternChar, "!")}},
	{GroupNonCapturing, []SequenceMatcher{openParen, questionMark, ValueOf(TokenPatternChar, ":")}},
	{GroupNamedCapturing, []SequenceMatcher{openParen, questionMark, lessThan, groupNameRun(), greaterThan}},
}

type openedGroup struct {
	typ  GroupType
	name *GroupNameNode
	last *Step
}

func (p *parser) groupOpening(open *Step) openedGroup {
	for _, prefix := range groupPrefixes {
		seq, ok := MatchSequence(open, prefix.matchers...)
		if !ok {
			continue
		}
		g := openedGroup{typ: prefix.typ, last: seq.Last}
		if prefix.typ == GroupNamedCapturing {
			nameStep := open.Next().Next().Next()
			g.name = &GroupNameNode{
				Loc:  Span{Start: nameStep.Start, End: seq.Last.Start - 1},
				Name: seq.Values[3],
			}
		}
		return g
	}
	return openedGroup{typ: GroupCapturing, last: open}
}

func (p *parser) parseGroup(sc scope, open *Step) Result[parsedNode] {
	opened := p.groupOpening(open)

	index := 0
	if opened.typ.IsCapturing() {
		p.captures++
		index = p.captures
	}
	if opened.name != nil {
		if _, exists := p.names[opened.name.Name]; exists {
			return Errored[parsedNode](p.fail(opened.name.Loc.Start, opened.name.Loc.End, "duplicate group name %q", opened.name.Name))
		}
	}

	inner := p.dispatcher(scope{delimited: sc.delimited, inGroup: true})
	body := p.fillExpressions(opened.last.Next(), nil, inner)

	return FlatMap(body, func(prog progress) Result[parsedNode] {
		closing := prog.next
		if closing == nil || !closing.Is(TokenSyntaxChar, ")") {
			return Errored[parsedNode](p.unclosedGroup(open, closing))
		}
		group := newGroup(open, closing, opened.typ, opened.name, index, seal(prog.nodes, closing.Start))
		if group.Name != nil {
			if _, exists := p.names[group.Name.Name]; exists {
				return Errored[parsedNode](p.fail(group.Name.Loc.Start, group.Name.Loc.End, "duplicate group name %q", group.Name.Name))
			}
			p.names[group.Name.Name] = group
		}
		return Matched(parsedNode{node: group, last: closing})
	})
}

// unclosedGroup reports a group whose body ran into the end of the input or
// into the closing delimiter of the pattern.
func (p *parser) unclosedGroup(open, stop *Step) error {
	end := p.gapAt(stop) - 1
	if stop == nil {
		return p.fail(open.Start, end, "incomplete group")
	}
	return p.fail(open.Start, end, "group is not closed")
}
