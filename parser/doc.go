// Package parser parses JavaScript-style regular expression literals into a
// typed syntax tree.
//
// # Overview
//
// Parsing runs in three layers:
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│ InputStream │────▶│ TokenStream │────▶│   parser    │
//	│  (string)   │     │   (Steps)   │     │   (Nodes)   │
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// The input stream hands out anchored matches of the token rules. The token
// stream turns them into Steps lazily and keeps every Step it has produced,
// so a Step can be held on to and walked forward again when a candidate
// interpretation does not apply.
//
// # Results
//
// Every sub-parser returns a Result, which is in one of three states:
//
//	Matched    the construct applied and carries a value
//	Unmatched  the construct does not apply here, try the next one
//	Errored    the input is invalid and parsing stops
//
// Unmatched results never leave the package. A \x that is not followed by
// two hex digits, a { that does not start a quantifier, or a - that does not
// form a class range all fall back to literal characters.
//
// # Entry points
//
//	ParseRegexp("/a(b)c/gi")   // *RegexpNode with body and flags
//	ParseRegexpNode("a(b)c")   // bare pattern, no delimiters
//	ParseNative(re)            // anything with a /body/flags String method
//
// Failures are *SyntaxError values carrying the offending byte span.
//
// # Spans
//
// Spans are inclusive byte offsets into the source. Every parent span
// contains the spans of its children. Empty expression lists are represented
// by a ZeroLength leaf whose span has End == Start-1 and which sits at the
// gap it fills.
//
// # Traversal
//
// TraverseRegexpNode walks a tree with a set of per-kind visitors:
//
//	parser.TraverseRegexpNode(re, parser.Visitors{
//	    parser.KindGroup: parser.Enter(func(n, parent parser.Node) {
//	        fmt.Println(n.(*parser.GroupNode).Index)
//	    }),
//	})
package parser
