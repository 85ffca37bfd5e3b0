package parser

import (
	"strings"
	"testing"
)

func TestTraverseOrder(t *testing.T) {
	re, err := ParseRegexp(`/a(b)/`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var events []string
	TraverseRegexpNode(re, Visitors{
		KindGroup: {
			Enter: func(Node, Node) { events = append(events, "group-enter") },
			Exit:  func(Node, Node) { events = append(events, "group-exit") },
		},
		KindAny: {
			Enter: func(n, _ Node) { events = append(events, "enter "+n.Kind().String()) },
			Exit:  func(n, _ Node) { events = append(events, "exit "+n.Kind().String()) },
		},
	})

	want := []string{
		"enter Regexp",
		"enter Alternative",
		"enter Char",
		"exit Char",
		"group-enter",
		"enter Group",
		"enter Char",
		"exit Char",
		"group-exit",
		"exit Group",
		"exit Alternative",
		"exit Regexp",
	}
	if strings.Join(events, "\n") != strings.Join(want, "\n") {
		t.Errorf("got\n%s\nwant\n%s", strings.Join(events, "\n"), strings.Join(want, "\n"))
	}
}

func TestTraverseParents(t *testing.T) {
	re, err := ParseRegexp(`/[a-z]+/`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parents := map[NodeKind]NodeKind{}
	rootSeen := false
	TraverseRegexpNode(re, Visitors{
		KindAny: Enter(func(n, parent Node) {
			if parent == nil {
				rootSeen = n == Node(re)
				return
			}
			parents[n.Kind()] = parent.Kind()
		}),
	})

	if !rootSeen {
		t.Error("root was not visited with a nil parent")
	}
	want := map[NodeKind]NodeKind{
		KindRepetition: KindRegexp,
		KindCharClass:  KindRepetition,
		KindQuantifier: KindRepetition,
		KindCharRange:  KindCharClass,
		KindChar:       KindCharRange,
	}
	for kind, parent := range want {
		if parents[kind] != parent {
			t.Errorf("parent of %s = %s, want %s", kind, parents[kind], parent)
		}
	}
}

func TestTraverseBackReferenceDescendsIntoGroup(t *testing.T) {
	re, err := ParseRegexp(`/(a)\1/`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var seen []string
	TraverseRegexpNode(re, Visitors{
		KindAny: Enter(func(n, _ Node) { seen = append(seen, n.Kind().String()) }),
	})
	want := "Regexp BackReference Group Char"
	if got := strings.Join(seen, " "); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNodeAt(t *testing.T) {
	re, err := ParseRegexp(`/a(bc)/`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	node, path := NodeAt(re, 3)
	char, ok := node.(*CharNode)
	if !ok || char.Value != 'b' {
		t.Fatalf("got %v, want the b character", node)
	}
	var kinds []string
	for _, n := range path {
		kinds = append(kinds, n.Kind().String())
	}
	if got := strings.Join(kinds, " "); got != "Regexp Alternative Group Alternative" {
		t.Errorf("path = %q", got)
	}

	if node, _ := NodeAt(re, 42); node != nil {
		t.Errorf("got %v for an offset past the end, want nil", node)
	}
}
