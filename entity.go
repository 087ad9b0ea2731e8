package linkify

import "github.com/coregx/linkify/internal/parser"

// Entity is one lexical span of Tokenize's output: either a clickable link
// (IsLink true: url/email/localhost/custom-scheme) or inert text/whitespace/
// newline. Kind is one of "text", "ws", "nl", "url", "email", "localhost",
// or a registered custom scheme name.
type Entity struct {
	Kind   string
	Value  string
	Start  int
	End    int
	IsLink bool
	Href   string
}

// Match is the public contract for a single link-kind entity (spec.md §6):
// the subset of Entity fields that exist only when IsLink is true, named to
// match the spec's wire shape exactly.
type Match struct {
	Type   string
	Value  string
	IsLink bool
	Href   string
	Start  int
	End    int
}

// entityKindName renders an internal parser.EntityTag as the public Kind/
// Type string. Custom-scheme tags look up their registered scheme text
// through p; built-in tags are a fixed table.
func entityKindName(tag parser.EntityTag, p *parser.Parser) string {
	switch tag {
	case parser.TextEntity:
		return "text"
	case parser.WSEntity:
		return "ws"
	case parser.NLEntity:
		return "nl"
	case parser.URLEntity:
		return "url"
	case parser.EmailEntity:
		return "email"
	case parser.LocalhostEntity:
		return "localhost"
	}
	if p != nil {
		if name, ok := p.SchemeForEntity(tag); ok {
			return name
		}
	}
	return "unknown"
}

func toPublicEntity(e parser.Entity, p *parser.Parser) Entity {
	return Entity{
		Kind:   entityKindName(e.Tag, p),
		Value:  e.Value,
		Start:  e.Start,
		End:    e.End,
		IsLink: e.IsLink,
		Href:   e.Href,
	}
}

func toPublicMatch(e parser.Entity, p *parser.Parser) Match {
	return Match{
		Type:   entityKindName(e.Tag, p),
		Value:  e.Value,
		IsLink: e.IsLink,
		Href:   e.Href,
		Start:  e.Start,
		End:    e.End,
	}
}
