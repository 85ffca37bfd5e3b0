package parser

import "fmt"

type parser struct {
	src      string
	stream   *TokenStream
	names    map[string]*GroupNode
	captures int
	demands  []demand
}

// demand is a named reference waiting for its group.
type demand struct {
	name string
	node *SubpatternNode
}

// progress is the expression list after a dispatch together with the first
// step that has not been consumed yet (nil at end of input).
type progress struct {
	nodes []Node
	next  *Step
}

// scope tells the dispatcher which tokens close the current expression list.
type scope struct {
	delimited bool // an unescaped / ends the pattern
	inGroup   bool // ) ends the group body
}

type dispatchFunc func(step *Step, nodes []Node) Result[progress]

func newParser(src string) *parser {
	return &parser{
		src:    src,
		stream: NewTokenStream(src),
		names:  make(map[string]*GroupNode),
	}
}

// ParseRegexp parses a regular expression literal of the form /body/flags.
func ParseRegexp(src string) (*RegexpNode, error) {
	return newParser(src).parseRegexp().Unwrap()
}

// ParseNative parses a value whose String method yields a /body/flags
// literal.
func ParseNative(re fmt.Stringer) (*RegexpNode, error) {
	return ParseRegexp(re.String())
}

// ParseRegexpNode parses a bare pattern without delimiters or flags and
// returns its root expression.
func ParseRegexpNode(src string) (Node, error) {
	p := newParser(src)
	r := FlatMap(p.fillExpressions(p.stream.First(), nil, p.dispatcher(scope{})), func(prog progress) Result[Node] {
		return Matched(seal(prog.nodes, p.gapAt(prog.next)))
	})
	return FlatMap(r, p.resolve).Unwrap()
}

func (p *parser) parseRegexp() Result[*RegexpNode] {
	first := p.stream.First()
	if first == nil || !first.IsFirst() || !first.Is(TokenPatternChar, "/") {
		return Errored[*RegexpNode](p.fail(0, min(0, len(p.src)-1), "missing opening delimiter"))
	}

	body := p.fillExpressions(first.Next(), nil, p.dispatcher(scope{delimited: true}))
	node := FlatMap(body, func(prog progress) Result[*RegexpNode] {
		closing := prog.next
		if closing == nil {
			return Errored[*RegexpNode](p.fail(len(p.src), len(p.src)-1, "missing closing delimiter"))
		}
		flags, err := p.parseFlags(closing)
		if err != nil {
			return Errored[*RegexpNode](err)
		}
		return Matched(&RegexpNode{
			Loc:     Span{Start: 0, End: len(p.src) - 1},
			Body:    seal(prog.nodes, closing.Start),
			Flags:   p.src[closing.End+1:],
			FlagSet: flags,
		})
	})
	return FlatMap(node, func(re *RegexpNode) Result[*RegexpNode] {
		return Map(p.resolve(re), func(Node) *RegexpNode { return re })
	})
}

func (p *parser) parseFlags(closing *Step) (Flags, error) {
	var flags Flags
	for s := closing.Next(); s != nil; s = s.Next() {
		if s.Is(TokenPatternChar, "/") {
			return 0, p.fail(s.Start, s.End, "regular expression has more than one closing delimiter")
		}
		if !isLetterToken(s.Token) {
			return 0, p.fail(s.Start, s.End, "invalid flag %q", s.Value)
		}
		flag, ok := FlagFor(s.Value[0])
		if !ok {
			return 0, p.fail(s.Start, s.End, "unknown flag %q", s.Value)
		}
		if flags.Has(flag) {
			return 0, p.fail(s.Start, s.End, "duplicate flag %q", s.Value)
		}
		flags |= flag
	}
	return flags, nil
}

// resolve patches every named reference once the tree is complete.
func (p *parser) resolve(root Node) Result[Node] {
	for _, d := range p.demands {
		group, ok := p.names[d.name]
		if !ok {
			return Errored[Node](p.fail(d.node.Loc.Start, d.node.Loc.End, "unresolved named reference %q", d.name))
		}
		d.node.Ref = group
	}
	p.demands = nil
	return Matched(root)
}

// gapAt is the offset where an empty expression list ending at next sits.
func (p *parser) gapAt(next *Step) int {
	if next == nil {
		return len(p.src)
	}
	return next.Start
}

// fillExpressions dispatches step after step until the dispatcher reports a
// terminator or the input ends.
func (p *parser) fillExpressions(step *Step, nodes []Node, dispatch dispatchFunc) Result[progress] {
	for step != nil {
		r := dispatch(step, nodes)
		if r.IsErrored() {
			return r
		}
		prog, ok := r.Value()
		if !ok {
			break
		}
		nodes, step = prog.nodes, prog.next
	}
	return Matched(progress{nodes: nodes, next: step})
}

func (p *parser) dispatcher(sc scope) dispatchFunc {
	var dispatch dispatchFunc
	dispatch = func(step *Step, nodes []Node) Result[progress] {
		return p.parseTerm(sc, dispatch, step, nodes)
	}
	return dispatch
}

func appendNode(nodes []Node, node Node, last *Step) Result[progress] {
	return Matched(progress{nodes: append(nodes, node), next: last.Next()})
}

func (p *parser) parseTerm(sc scope, dispatch dispatchFunc, step *Step, nodes []Node) Result[progress] {
	switch step.Kind {
	case TokenSyntaxChar:
		return p.parseSyntaxChar(sc, dispatch, step, nodes)
	case TokenPatternChar:
		if sc.delimited && step.Value == "/" {
			return Unmatched[progress]()
		}
		return appendNode(nodes, newSimpleChar(step), step)
	case TokenDecimal:
		return appendNode(nodes, newSimpleChar(step), step)
	case TokenControlEscape:
		return appendNode(nodes, newControlEscape(step), step)
	case TokenCharClassEscape:
		return appendNode(nodes, newClassEscape(step), step)
	case TokenDecimalEscape:
		return p.parseDecimalEscape(step, nodes)
	case TokenCharEscape:
		return FlatMap(p.parseCharEscape(step, false), func(pn parsedNode) Result[progress] {
			return appendNode(nodes, pn.node, pn.last)
		})
	}
	return Errored[progress](p.fail(step.Start, step.End, "unexpected token %s", step.Kind))
}

func (p *parser) parseSyntaxChar(sc scope, dispatch dispatchFunc, step *Step, nodes []Node) Result[progress] {
	switch step.Value {
	case "(":
		return FlatMap(p.parseGroup(sc, step), func(pn parsedNode) Result[progress] {
			return appendNode(nodes, pn.node, pn.last)
		})
	case ")":
		if sc.inGroup {
			return Unmatched[progress]()
		}
		return Errored[progress](p.fail(step.Start, step.End, "unmatched parenthesis"))
	case "[":
		return FlatMap(p.parseCharClass(step), func(pn parsedNode) Result[progress] {
			return appendNode(nodes, pn.node, pn.last)
		})
	case "^":
		return appendNode(nodes, leafFor(KindLineStart, step), step)
	case "$":
		return appendNode(nodes, leafFor(KindLineEnd, step), step)
	case ".":
		return appendNode(nodes, leafFor(KindAnyChar, step), step)
	case "*", "+", "?":
		return p.parseQuantifierChar(step, nodes)
	case "{":
		return p.parseRangeQuantifier(step, nodes).OrElse(func() Result[progress] {
			return appendNode(nodes, newSimpleChar(step), step)
		})
	case "|":
		return p.parseDisjunction(dispatch, step, nodes)
	case "}", "]":
		return appendNode(nodes, newSimpleChar(step), step)
	case `\`:
		return Errored[progress](p.fail(step.Start, step.End, `\ at end of pattern`))
	}
	return Errored[progress](p.fail(step.Start, step.End, "unexpected character %q", step.Value))
}

// parseDisjunction turns everything collected so far into the left branch
// and the rest of the current scope into the right one.
func (p *parser) parseDisjunction(dispatch dispatchFunc, bar *Step, nodes []Node) Result[progress] {
	left := seal(nodes, bar.Start)
	return FlatMap(p.fillExpressions(bar.Next(), nil, dispatch), func(prog progress) Result[progress] {
		right := seal(prog.nodes, p.gapAt(prog.next))
		return Matched(progress{nodes: []Node{newDisjunction(left, right)}, next: prog.next})
	})
}
