package parser

import "strconv"

// SequenceMatcher consumes one or more tokens starting at step. It returns
// the last consumed step and the captured text.
type SequenceMatcher func(step *Step) (last *Step, value string, ok bool)

// Sequence is a successfully matched run of tokens.
type Sequence struct {
	First  *Step
	Last   *Step
	Values []string
	Start  int
	End    int
}

// KindOf matches a single token of the given kind.
func KindOf(kind TokenKind) SequenceMatcher {
	return func(step *Step) (*Step, string, bool) {
		if step.Kind != kind {
			return nil, "", false
		}
		return step, step.Value, true
	}
}

// ValueOf matches a single token of the given kind and literal value.
func ValueOf(kind TokenKind, value string) SequenceMatcher {
	return func(step *Step) (*Step, string, bool) {
		if !step.Is(kind, value) {
			return nil, "", false
		}
		return step, step.Value, true
	}
}

// Scan wraps a custom scanner.
func Scan(fn func(step *Step) (*Step, string, bool)) SequenceMatcher {
	return SequenceMatcher(fn)
}

// MatchSequence applies matchers left to right. On failure the returned
// Sequence.Last holds the last step consumed before the failing matcher, nil
// if none was.
func MatchSequence(step *Step, matchers ...SequenceMatcher) (Sequence, bool) {
	seq := Sequence{First: step}
	if step != nil {
		seq.Start = step.Start
	}
	current := step
	for _, m := range matchers {
		if current == nil {
			return seq, false
		}
		last, value, ok := m(current)
		if !ok {
			return seq, false
		}
		seq.Last = last
		seq.Values = append(seq.Values, value)
		seq.End = last.End
		current = last.Next()
	}
	return seq, true
}

// matchSequence is MatchSequence as a Result for use with the combinators.
func matchSequence(step *Step, matchers ...SequenceMatcher) Result[Sequence] {
	seq, ok := MatchSequence(step, matchers...)
	if !ok {
		return Unmatched[Sequence]()
	}
	return Matched(seq)
}

// runOf consumes the longest run (at least min, at most max when max > 0) of
// single-character tokens accepted by pred.
func runOf(min, max int, pred func(Token) bool) SequenceMatcher {
	return func(step *Step) (*Step, string, bool) {
		var last *Step
		value := ""
		n := 0
		for s := step; s != nil && pred(s.Token); s = s.Next() {
			if max > 0 && n == max {
				break
			}
			last = s
			value += s.Value
			n++
		}
		if n < min || last == nil {
			return nil, "", false
		}
		return last, value, true
	}
}

func isBareChar(t Token) bool {
	return (t.Kind == TokenDecimal || t.Kind == TokenPatternChar) && len(t.Value) == 1
}

func isDigitToken(t Token) bool {
	return t.Kind == TokenDecimal
}

func isHexToken(t Token) bool {
	return isBareChar(t) && isHexDigit(t.Value[0])
}

func isWordToken(t Token) bool {
	if !isBareChar(t) {
		return false
	}
	c := t.Value[0]
	return isDigit(c) || isASCIILetter(c) || c == '_' || c == '$'
}

func isLetterToken(t Token) bool {
	return isBareChar(t) && isASCIILetter(t.Value[0])
}

// digitRun consumes a maximal run of decimal digits.
func digitRun() SequenceMatcher {
	return runOf(1, 0, isDigitToken)
}

// hexRun consumes exactly n hex digits.
func hexRun(n int) SequenceMatcher {
	return runOf(n, n, isHexToken)
}

// octalRun consumes a decimal escape and up to two digits after it when
// together they spell an octal value in 1..255. The value is the digits
// without the backslash.
func octalRun() SequenceMatcher {
	tail := runOf(1, 2, isDigitToken)
	return func(step *Step) (*Step, string, bool) {
		if step == nil || step.Kind != TokenDecimalEscape {
			return nil, "", false
		}
		last, digits := step, step.Value[1:]
		if end, more, ok := tail(step.Next()); ok {
			last, digits = end, digits+more
		}
		if digits == "0" {
			return nil, "", false
		}
		value, err := strconv.ParseUint(digits, 8, 32)
		if err != nil || value > 255 {
			return nil, "", false
		}
		return last, digits, true
	}
}

// groupNameRun consumes an identifier usable as a group name.
func groupNameRun() SequenceMatcher {
	word := runOf(1, 0, isWordToken)
	return func(step *Step) (*Step, string, bool) {
		last, value, ok := word(step)
		if !ok || isDigit(value[0]) {
			return nil, "", false
		}
		return last, value, true
	}
}

// letterRun consumes a maximal run of ASCII letters and underscores, as used
// by Unicode property names and values.
func letterRun() SequenceMatcher {
	return runOf(1, 0, func(t Token) bool {
		return isWordToken(t) && t.Value != "$"
	})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
