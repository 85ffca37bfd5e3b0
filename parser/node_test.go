package parser

import (
	"encoding/json"
	"testing"
)

func TestNodeKindString(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want string
	}{
		{KindRegexp, "Regexp"},
		{KindNonUnicodeProperty, "NonUnicodeProperty"},
		{KindZeroLength, "ZeroLength"},
		{KindAny, "*"},
		{NodeKind(1000), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestGroupTypePrefix(t *testing.T) {
	tests := []struct {
		typ  GroupType
		want string
	}{
		{GroupCapturing, "("},
		{GroupNamedCapturing, "(?<"},
		{GroupNonCapturing, "(?:"},
		{GroupPositiveLookahead, "(?="},
		{GroupNegativeLookahead, "(?!"},
		{GroupPositiveLookbehind, "(?<="},
		{GroupNegativeLookbehind, "(?<!"},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if got := tt.typ.Prefix(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpan(t *testing.T) {
	s := Span{2, 5}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	if !s.Contains(Span{3, 5}) || s.Contains(Span{1, 3}) {
		t.Error("Contains gave the wrong answer")
	}
	if !s.ContainsOffset(2) || s.ContainsOffset(6) {
		t.Error("ContainsOffset gave the wrong answer")
	}
	empty := Span{4, 3}
	if !empty.IsEmpty() || empty.Len() != 0 {
		t.Errorf("Span{4, 3}: IsEmpty() = %v, Len() = %d", empty.IsEmpty(), empty.Len())
	}
}

func TestCodePoint(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want rune
		ok   bool
	}{
		{"char", &CharNode{Value: 'q'}, 'q', true},
		{"control escape", &ControlEscapeNode{Escape: 'v'}, '\v', true},
		{"ascii control", &ASCIIControlNode{Letter: 'J'}, '\n', true},
		{"lowercase ascii control", &ASCIIControlNode{Letter: 'j'}, '\n', true},
		{"backspace", &BackspaceNode{}, '\b', true},
		{"null", newLeaf(KindNullChar, 0, 1), 0, true},
		{"class escape", newLeaf(KindAnyDigit, 0, 1), 0, false},
		{"range", &CharRangeNode{}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CodePoint(tt.node)
			if got != tt.want || ok != tt.ok {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFlagFor(t *testing.T) {
	flag, ok := FlagFor('s')
	if !ok || flag != FlagDotAll {
		t.Errorf("got (%v, %v), want (FlagDotAll, true)", flag, ok)
	}
	if _, ok := FlagFor('x'); ok {
		t.Error("x is not a flag")
	}
	if got := (FlagSticky | FlagGlobal).String(); got != "gy" {
		t.Errorf("got %q, want %q", got, "gy")
	}
}

func TestMarshalNode(t *testing.T) {
	re, err := ParseRegexp(`/(?<x>a)/g`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := MarshalNode(re)
	if err != nil {
		t.Fatalf("MarshalNode: %v", err)
	}

	var got struct {
		Kind  string         `json:"kind"`
		Attrs map[string]any `json:"attrs"`
		Span  struct {
			Start int `json:"start"`
			End   int `json:"end"`
		} `json:"span"`
		Children []struct {
			Kind  string         `json:"kind"`
			Attrs map[string]any `json:"attrs"`
		} `json:"children"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Kind != "Regexp" || got.Attrs["flags"] != "g" {
		t.Errorf("root = %s %v", got.Kind, got.Attrs)
	}
	if got.Span.Start != 0 || got.Span.End != 9 {
		t.Errorf("span = %d:%d, want 0:9", got.Span.Start, got.Span.End)
	}
	if len(got.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(got.Children))
	}
	group := got.Children[0]
	if group.Kind != "Group" || group.Attrs["name"] != "x" || group.Attrs["index"] != float64(1) {
		t.Errorf("group = %s %v", group.Kind, group.Attrs)
	}
}
