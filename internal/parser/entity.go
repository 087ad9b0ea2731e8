package parser

import "github.com/coregx/linkify/internal/scanner"

// Entity is a parsed multi-token (or single-token) span of the input:
// either a clickable URL/EMAIL/custom-scheme/localhost match, or an inert
// TEXT/WS/NL run.
type Entity struct {
	Tag    EntityTag
	Value  string
	Start  int
	End    int
	IsLink bool
	Href   string
	Tokens []scanner.Token
}
