package parser

import (
	"errors"
	"testing"
)

func TestSyntaxErrorRender(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`/(ab/`, "/(ab/\n ~~~\n group is not closed"},
		{`/abc`, "/abc\n    ^\n    missing closing delimiter"},
		{`/é(/`, "/é(/\n  ~\n  group is not closed"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseRegexp(tt.input)
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("got %v, want a *SyntaxError", err)
			}
			if got := syntaxErr.Render(); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestSyntaxErrorError(t *testing.T) {
	err := &SyntaxError{Source: "/a{4,2}/", Start: 2, End: 6, Message: "quantifier range is out of order"}
	want := "quantifier range is out of order at 2:6"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSyntaxErrorRenderClampsSpan(t *testing.T) {
	err := &SyntaxError{Source: "ab", Start: 5, End: 9, Message: "past the end"}
	want := "ab\n  ~\n  past the end"
	if got := err.Render(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
