package parser

// VisitFunc receives a node and its parent, nil for the root.
type VisitFunc func(node, parent Node)

// Visitor holds the callbacks for one node kind. Either may be nil.
type Visitor struct {
	Enter VisitFunc
	Exit  VisitFunc
}

// Enter is a Visitor with only an enter callback.
func Enter(fn VisitFunc) Visitor {
	return Visitor{Enter: fn}
}

// Visitors maps node kinds to callbacks. The KindAny entry runs for every
// node in addition to the entry for the node's own kind.
type Visitors map[NodeKind]Visitor

// TraverseRegexpNode walks the tree depth first, calling Enter before the
// children of a node and Exit after them.
func TraverseRegexpNode(node Node, visitors Visitors) {
	traverse(node, nil, visitors)
}

func traverse(node, parent Node, visitors Visitors) {
	if node == nil {
		return
	}
	exact, hasExact := visitors[node.Kind()]
	wildcard, hasWildcard := visitors[KindAny]

	if hasExact && exact.Enter != nil {
		exact.Enter(node, parent)
	}
	if hasWildcard && wildcard.Enter != nil {
		wildcard.Enter(node, parent)
	}

	for _, child := range Children(node) {
		traverse(child, node, visitors)
	}

	if hasExact && exact.Exit != nil {
		exact.Exit(node, parent)
	}
	if hasWildcard && wildcard.Exit != nil {
		wildcard.Exit(node, parent)
	}
}

// NodeAt returns the innermost node whose span contains offset, together
// with the chain of its ancestors from the root.
func NodeAt(root Node, offset int) (Node, []Node) {
	var path []Node
	node := root
	if !node.Span().ContainsOffset(offset) {
		return nil, nil
	}
	for {
		path = append(path, node)
		next := Node(nil)
		for _, child := range Children(node) {
			if child != nil && child.Span().ContainsOffset(offset) {
				next = child
				break
			}
		}
		if next == nil {
			return node, path[:len(path)-1]
		}
		node = next
	}
}
