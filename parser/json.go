package parser

import "encoding/json"

type jsonNode struct {
	Kind     string      `json:"kind"`
	Span     jsonSpan    `json:"span"`
	Attrs    jsonAttrs   `json:"attrs,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type jsonAttrs map[string]any

// MarshalNode encodes a tree as nested {kind, span, attrs, children}
// objects.
func MarshalNode(n Node) ([]byte, error) {
	return json.Marshal(toJSON(n))
}

// MarshalNodeIndent is MarshalNode with indentation.
func MarshalNodeIndent(n Node, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(toJSON(n), prefix, indent)
}

func toJSON(n Node) *jsonNode {
	if n == nil {
		return nil
	}
	jn := &jsonNode{
		Kind:  n.Kind().String(),
		Span:  jsonSpan{Start: n.Span().Start, End: n.Span().End},
		Attrs: attrsOf(n),
	}
	for _, child := range Children(n) {
		jn.Children = append(jn.Children, toJSON(child))
	}
	return jn
}

func attrsOf(n Node) jsonAttrs {
	attrs := jsonAttrs{}
	switch n := n.(type) {
	case *RegexpNode:
		if n.Flags != "" {
			attrs["flags"] = n.Flags
		}
	case *GroupNode:
		attrs["type"] = n.Type.String()
		if n.Index > 0 {
			attrs["index"] = n.Index
		}
		if n.Name != nil {
			attrs["name"] = n.Name.Name
		}
	case *QuantifierNode:
		attrs["type"] = n.Type.String()
		attrs["min"] = n.Min
		if n.Max != nil {
			attrs["max"] = *n.Max
		}
		if n.Lazy {
			attrs["lazy"] = true
		}
	case *CharClassNode:
		if n.Negated {
			attrs["negated"] = true
		}
	case *CharNode:
		attrs["type"] = n.Type.String()
		attrs["value"] = string(n.Value)
		attrs["codePoint"] = n.Value
	case *BackReferenceNode:
		attrs["number"] = n.Number
	case *SubpatternNode:
		attrs["name"] = n.Name.Name
		if n.Ref != nil {
			attrs["ref"] = jsonSpan{Start: n.Ref.Loc.Start, End: n.Ref.Loc.End}
		}
	case *GroupNameNode:
		attrs["name"] = n.Name
	case *ControlEscapeNode:
		attrs["escape"] = string(n.Escape)
	case *ASCIIControlNode:
		attrs["letter"] = string(n.Letter)
	case *UnicodePropertyNode:
		attrs["name"] = n.Name
		if n.Value != "" {
			attrs["value"] = n.Value
		}
	case *BackspaceNode:
		if n.Bracketed {
			attrs["bracketed"] = true
		}
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}
