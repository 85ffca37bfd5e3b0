package parser

type NodeKind int

const (
	KindRegexp NodeKind = iota
	KindDisjunction
	KindAlternative
	KindGroup
	KindRepetition
	KindQuantifier
	KindCharClass
	KindCharRange
	KindChar
	KindBackReference
	KindSubpattern
	KindGroupName

	// Leaves with a fixed meaning
	KindLineStart
	KindLineEnd
	KindAnyChar
	KindAnyDigit
	KindNonDigit
	KindAnyWhitespace
	KindNonWhitespace
	KindAnyWord
	KindNonWord
	KindWordBoundary
	KindNonWordBoundary
	KindNullChar
	KindBackspace
	KindControlEscapeChar
	KindASCIIControlChar
	KindUnicodeProperty
	KindNonUnicodeProperty
	KindZeroLength

	// KindAny is not a node kind. It keys the wildcard entry of Visitors.
	KindAny NodeKind = -1
)

var nodeKindNames = map[NodeKind]string{
	KindRegexp:             "Regexp",
	KindDisjunction:        "Disjunction",
	KindAlternative:        "Alternative",
	KindGroup:              "Group",
	KindRepetition:         "Repetition",
	KindQuantifier:         "Quantifier",
	KindCharClass:          "CharClass",
	KindCharRange:          "CharRange",
	KindChar:               "Char",
	KindBackReference:      "BackReference",
	KindSubpattern:         "Subpattern",
	KindGroupName:          "GroupName",
	KindLineStart:          "LineStart",
	KindLineEnd:            "LineEnd",
	KindAnyChar:            "AnyChar",
	KindAnyDigit:           "AnyDigit",
	KindNonDigit:           "NonDigit",
	KindAnyWhitespace:      "AnyWhitespace",
	KindNonWhitespace:      "NonWhitespace",
	KindAnyWord:            "AnyWord",
	KindNonWord:            "NonWord",
	KindWordBoundary:       "WordBoundary",
	KindNonWordBoundary:    "NonWordBoundary",
	KindNullChar:           "NullChar",
	KindBackspace:          "Backspace",
	KindControlEscapeChar:  "ControlEscapeChar",
	KindASCIIControlChar:   "ASCIIControlChar",
	KindUnicodeProperty:    "UnicodeProperty",
	KindNonUnicodeProperty: "NonUnicodeProperty",
	KindZeroLength:         "ZeroLength",
	KindAny:                "*",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Span is an inclusive byte range of the source. An empty span has
// End == Start-1.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start + 1
}

func (s Span) IsEmpty() bool {
	return s.End < s.Start
}

// Contains reports whether other lies within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// ContainsOffset reports whether the byte at offset belongs to s.
func (s Span) ContainsOffset(offset int) bool {
	return s.Start <= offset && offset <= s.End
}

// Node is implemented by every AST node.
type Node interface {
	Kind() NodeKind
	Span() Span
}

type RegexpNode struct {
	Loc     Span
	Body    Node
	Flags   string
	FlagSet Flags
}

type DisjunctionNode struct {
	Loc   Span
	Left  Node
	Right Node
}

type AlternativeNode struct {
	Loc         Span
	Expressions []Node
}

type GroupType int

const (
	GroupCapturing GroupType = iota
	GroupNamedCapturing
	GroupNonCapturing
	GroupPositiveLookahead
	GroupNegativeLookahead
	GroupPositiveLookbehind
	GroupNegativeLookbehind
)

var groupTypeNames = map[GroupType]string{
	GroupCapturing:          "capturing",
	GroupNamedCapturing:     "named capturing",
	GroupNonCapturing:       "non-capturing",
	GroupPositiveLookahead:  "positive lookahead",
	GroupNegativeLookahead:  "negative lookahead",
	GroupPositiveLookbehind: "positive lookbehind",
	GroupNegativeLookbehind: "negative lookbehind",
}

func (t GroupType) String() string {
	if name, ok := groupTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Prefix is the source text that opens a group of this type, without the
// name of a named group.
func (t GroupType) Prefix() string {
	switch t {
	case GroupNamedCapturing:
		return "(?<"
	case GroupNonCapturing:
		return "(?:"
	case GroupPositiveLookahead:
		return "(?="
	case GroupNegativeLookahead:
		return "(?!"
	case GroupPositiveLookbehind:
		return "(?<="
	case GroupNegativeLookbehind:
		return "(?<!"
	}
	return "("
}

func (t GroupType) IsCapturing() bool {
	return t == GroupCapturing || t == GroupNamedCapturing
}

func (t GroupType) IsLookbehind() bool {
	return t == GroupPositiveLookbehind || t == GroupNegativeLookbehind
}

type GroupNode struct {
	Loc  Span
	Type GroupType
	Name *GroupNameNode
	// Index is the 1-based capture number, 0 for groups that do not capture.
	Index int
	Body  Node
}

type GroupNameNode struct {
	Loc  Span
	Name string
}

type RepetitionNode struct {
	Loc        Span
	Expression Node
	Quantifier *QuantifierNode
}

type QuantifierType int

const (
	QuantifierStar QuantifierType = iota
	QuantifierPlus
	QuantifierOptional
	QuantifierExact
	QuantifierRange
)

var quantifierTypeNames = map[QuantifierType]string{
	QuantifierStar:     "*",
	QuantifierPlus:     "+",
	QuantifierOptional: "?",
	QuantifierExact:    "{n}",
	QuantifierRange:    "{n,m}",
}

func (t QuantifierType) String() string {
	if name, ok := quantifierTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// QuantifierNode describes how often the repeated expression may occur.
// Max is nil when there is no upper bound. MinText and MaxText keep the
// digits as written for range quantifiers.
type QuantifierNode struct {
	Loc     Span
	Type    QuantifierType
	Min     int
	Max     *int
	Lazy    bool
	MinText string
	MaxText string
}

type CharClassNode struct {
	Loc         Span
	Negated     bool
	Expressions []Node
}

// CharRangeNode is a-b inside a class. Both ends are nodes for which
// CodePoint reports a single character.
type CharRangeNode struct {
	Loc  Span
	From Node
	To   Node
}

type CharType int

const (
	CharSimple CharType = iota
	CharEscaped
	CharHex
	CharUnicode
	CharOctal
)

var charTypeNames = map[CharType]string{
	CharSimple:  "simple",
	CharEscaped: "escaped",
	CharHex:     "hex",
	CharUnicode: "unicode",
	CharOctal:   "octal",
}

func (t CharType) String() string {
	if name, ok := charTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// CharNode is a single literal character. Raw is the text after the escape
// prefix exactly as written: "a" for a, "." for \., "4F" for \x4F, "{1F600}"
// for \u{1F600} and "101" for \101.
type CharNode struct {
	Loc   Span
	Type  CharType
	Value rune
	Raw   string
}

type BackReferenceNode struct {
	Loc    Span
	Group  *GroupNode
	Number int
}

// SubpatternNode is a named back-reference (\k<name>). Ref is filled in once
// the whole pattern has been parsed.
type SubpatternNode struct {
	Loc  Span
	Name *GroupNameNode
	Ref  *GroupNode
}

// ControlEscapeNode is one of \f \n \r \t \v.
type ControlEscapeNode struct {
	Loc    Span
	Escape byte
}

// ASCIIControlNode is \cX.
type ASCIIControlNode struct {
	Loc    Span
	Letter byte
}

type UnicodePropertyNode struct {
	Loc     Span
	Negated bool
	Name    string
	Value   string
}

// BackspaceNode is \b inside a character class. Bracketed marks the [\b]
// shorthand that stands on its own.
type BackspaceNode struct {
	Loc       Span
	Bracketed bool
}

// LeafNode covers the kinds that carry nothing but their position.
type LeafNode struct {
	Loc  Span
	Type NodeKind
}

func (n *RegexpNode) Kind() NodeKind { return KindRegexp }
func (n *DisjunctionNode) Kind() NodeKind { return KindDisjunction }
func (n *AlternativeNode) Kind() NodeKind { return KindAlternative }
func (n *GroupNode) Kind() NodeKind { return KindGroup }
func (n *GroupNameNode) Kind() NodeKind { return KindGroupName }
func (n *RepetitionNode) Kind() NodeKind { return KindRepetition }
func (n *QuantifierNode) Kind() NodeKind { return KindQuantifier }
func (n *CharClassNode) Kind() NodeKind { return KindCharClass }
func (n *CharRangeNode) Kind() NodeKind { return KindCharRange }
func (n *CharNode) Kind() NodeKind { return KindChar }
func (n *BackReferenceNode) Kind() NodeKind { return KindBackReference }
func (n *SubpatternNode) Kind() NodeKind { return KindSubpattern }
func (n *ControlEscapeNode) Kind() NodeKind { return KindControlEscapeChar }
func (n *ASCIIControlNode) Kind() NodeKind { return KindASCIIControlChar }
func (n *BackspaceNode) Kind() NodeKind { return KindBackspace }
func (n *LeafNode) Kind() NodeKind { return n.Type }
func (n *UnicodePropertyNode) Kind() NodeKind {
	if n.Negated {
		return KindNonUnicodeProperty
	}
	return KindUnicodeProperty
}

func (n *RegexpNode) Span() Span { return n.Loc }
func (n *DisjunctionNode) Span() Span { return n.Loc }
func (n *AlternativeNode) Span() Span { return n.Loc }
func (n *GroupNode) Span() Span { return n.Loc }
func (n *GroupNameNode) Span() Span { return n.Loc }
func (n *RepetitionNode) Span() Span { return n.Loc }
func (n *QuantifierNode) Span() Span { return n.Loc }
func (n *CharClassNode) Span() Span { return n.Loc }
func (n *CharRangeNode) Span() Span { return n.Loc }
func (n *CharNode) Span() Span { return n.Loc }
func (n *BackReferenceNode) Span() Span { return n.Loc }
func (n *SubpatternNode) Span() Span { return n.Loc }
func (n *ControlEscapeNode) Span() Span { return n.Loc }
func (n *ASCIIControlNode) Span() Span { return n.Loc }
func (n *BackspaceNode) Span() Span { return n.Loc }
func (n *LeafNode) Span() Span { return n.Loc }
func (n *UnicodePropertyNode) Span() Span { return n.Loc }

// Children returns the structural children of n in source order, the same
// ones TraverseRegexpNode descends into.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *RegexpNode:
		return []Node{n.Body}
	case *DisjunctionNode:
		return []Node{n.Left, n.Right}
	case *AlternativeNode:
		return n.Expressions
	case *GroupNode:
		return []Node{n.Body}
	case *RepetitionNode:
		return []Node{n.Expression, n.Quantifier}
	case *CharClassNode:
		return n.Expressions
	case *CharRangeNode:
		return []Node{n.From, n.To}
	case *BackReferenceNode:
		return []Node{n.Group}
	}
	return nil
}

var controlEscapeValues = map[byte]rune{
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
	'v': '\v',
}

// CodePoint returns the character a node stands for when it denotes exactly
// one character.
func CodePoint(n Node) (rune, bool) {
	switch n := n.(type) {
	case *CharNode:
		return n.Value, true
	case *ControlEscapeNode:
		r, ok := controlEscapeValues[n.Escape]
		return r, ok
	case *ASCIIControlNode:
		return rune(n.Letter % 32), true
	case *BackspaceNode:
		return '\b', true
	case *LeafNode:
		if n.Kind() == KindNullChar {
			return 0, true
		}
	}
	return 0, false
}
