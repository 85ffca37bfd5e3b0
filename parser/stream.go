package parser

// TokenStream produces tokens lazily and memoizes them, so a position
// revisited by the parser yields the same *Step.
type TokenStream struct {
	input *InputStream
	steps []*Step
	done  bool
}

// Step is one position in the token list.
type Step struct {
	Token
	stream *TokenStream
	index  int
}

func NewTokenStream(src string) *TokenStream {
	return &TokenStream{input: NewInputStream(src)}
}

func (ts *TokenStream) Source() string {
	return ts.input.Source()
}

// First returns the first step, or nil for an empty source.
func (ts *TokenStream) First() *Step {
	return ts.at(0)
}

func (ts *TokenStream) at(i int) *Step {
	for len(ts.steps) <= i && !ts.done {
		ts.scan()
	}
	if i < len(ts.steps) {
		return ts.steps[i]
	}
	return nil
}

func (ts *TokenStream) scan() {
	for _, rule := range tokenRules {
		value, start, end, ok := ts.input.Collect(rule.pattern)
		if !ok {
			continue
		}
		ts.steps = append(ts.steps, &Step{
			Token:  Token{Kind: rule.kind, Value: value, Start: start, End: end},
			stream: ts,
			index:  len(ts.steps),
		})
		return
	}
	ts.done = true
}

// Next returns the following step, or nil at end of input.
func (s *Step) Next() *Step {
	return s.stream.at(s.index + 1)
}

func (s *Step) IsFirst() bool {
	return s.Start == 0
}

func (s *Step) IsLast() bool {
	return s.End == len(s.stream.Source())-1
}
