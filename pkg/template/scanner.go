package template

import (
	"regexp"
	"strings"
)

// Kind tags the role of a scanned template segment.
type Kind int

// Segment kinds.
const (
	// KindLiteral is raw template text copied through unchanged.
	KindLiteral Kind = iota

	// KindQuery is a {{query.name}} reference to an inbound query parameter.
	KindQuery

	// KindCredential is the {{auth.jwt}} placeholder. It is minted at most
	// once per render and reused across occurrences.
	KindCredential

	// KindGenerator is any other {{name}} placeholder, expanded through the
	// generator with independent randomness per occurrence.
	KindGenerator
)

// Segment is one scanned piece of a template. Text always holds the
// original source text (for refs, the full "{{...}}" form) so an
// unresolved segment can be reproduced byte-for-byte in diagnostics.
type Segment struct {
	Kind Kind
	Text string
	Name string
}

// placeholderRegex matches {{expression}} with optional inner whitespace.
var placeholderRegex = regexp.MustCompile(`\{\{\s*([^}]+?)\s*\}\}`)

// credentialExpr is the only context-scoped placeholder in the grammar.
const credentialExpr = "auth.jwt"

// queryPrefix introduces a query parameter reference.
const queryPrefix = "query."

// Scan splits a template into tagged segments. Anything that does not
// scan as a well-formed {{...}} placeholder (including an unterminated
// "{{") stays literal text; classification of placeholder bodies is
// purely syntactic, so an unknown generator name still scans as a
// generator segment and fails later, at expansion time.
func Scan(tpl string) []Segment {
	var segs []Segment
	last := 0

	for _, loc := range placeholderRegex.FindAllStringSubmatchIndex(tpl, -1) {
		if loc[0] > last {
			segs = append(segs, Segment{Kind: KindLiteral, Text: tpl[last:loc[0]]})
		}

		text := tpl[loc[0]:loc[1]]
		expr := tpl[loc[2]:loc[3]]
		segs = append(segs, classify(text, expr))
		last = loc[1]
	}

	if last < len(tpl) {
		segs = append(segs, Segment{Kind: KindLiteral, Text: tpl[last:]})
	}
	return segs
}

func classify(text, expr string) Segment {
	switch {
	case expr == credentialExpr:
		return Segment{Kind: KindCredential, Text: text}
	case strings.HasPrefix(expr, queryPrefix) && len(expr) > len(queryPrefix):
		return Segment{Kind: KindQuery, Text: text, Name: expr[len(queryPrefix):]}
	default:
		return Segment{Kind: KindGenerator, Text: text, Name: expr}
	}
}
