package parser

import (
	"testing"
)

func TestMatchSequence(t *testing.T) {
	ts := NewTokenStream(`\x4Fz`)
	seq, ok := MatchSequence(ts.First(), ValueOf(TokenCharEscape, `\x`), hexRun(2))
	if !ok {
		t.Fatal("sequence did not match")
	}
	if seq.Start != 0 || seq.End != 3 {
		t.Errorf("span = %d:%d, want 0:3", seq.Start, seq.End)
	}
	if len(seq.Values) != 2 || seq.Values[1] != "4F" {
		t.Errorf("values = %v, want [\\x 4F]", seq.Values)
	}
	if seq.Last.Next().Value != "z" {
		t.Errorf("next step = %q, want %q", seq.Last.Next().Value, "z")
	}
}

func TestMatchSequenceFailureKeepsLastConsumed(t *testing.T) {
	ts := NewTokenStream(`(?x`)
	seq, ok := MatchSequence(ts.First(), openParen, questionMark, ValueOf(TokenPatternChar, ":"))
	if ok {
		t.Fatal("sequence matched unexpectedly")
	}
	if seq.Last == nil || seq.Last.Value != "?" {
		t.Errorf("Last = %v, want the ? step", seq.Last)
	}
}

func TestMatchSequenceRunsOutOfInput(t *testing.T) {
	ts := NewTokenStream(`\x4`)
	if _, ok := MatchSequence(ts.First(), ValueOf(TokenCharEscape, `\x`), hexRun(2)); ok {
		t.Error("matched two hex digits from one")
	}
}

func TestRuns(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		matcher SequenceMatcher
		want    string
		ok      bool
	}{
		{"digits", "123a", digitRun(), "123", true},
		{"no digits", "a1", digitRun(), "", false},
		{"hex stops at count", "abcd", hexRun(2), "ab", true},
		{"group name", "my_name1>", groupNameRun(), "my_name1", true},
		{"group name with dollar", "$x>", groupNameRun(), "$x", true},
		{"group name starting with digit", "1x>", groupNameRun(), "", false},
		{"letters", "Script=Greek", letterRun(), "Script", true},
		{"octal at the byte limit", `\377`, octalRun(), "377", true},
		{"octal past the byte limit", `\400`, octalRun(), "", false},
		{"octal stops at three digits", `\1234`, octalRun(), "123", true},
		{"octal single digit", `\7a`, octalRun(), "7", true},
		{"octal with non-octal digit", `\38`, octalRun(), "", false},
		{"bare zero is not octal", `\0`, octalRun(), "", false},
		{"octal needs an escape", `12`, octalRun(), "", false},
		{"kind", `\d`, KindOf(TokenCharClassEscape), `\d`, true},
		{"scan", "q", Scan(func(s *Step) (*Step, string, bool) { return s, "custom", true }), "custom", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, ok := tt.matcher(NewTokenStream(tt.input).First())
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
