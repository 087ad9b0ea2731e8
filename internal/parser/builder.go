package parser

import (
	"github.com/coregx/linkify/internal/fsm"
	"github.com/coregx/linkify/internal/group"
	"github.com/coregx/linkify/internal/scanner"
)

// CustomInfo records what a custom-scheme entity tag means: the scheme
// text (for href/type construction) and whether it requires "://".
type CustomInfo struct {
	Scheme            string
	RequireSlashSlash bool
}

// Compiled is the built token-level FSM plus the bookkeeping needed to
// turn a custom-scheme scanner.Tag, once matched, into a parser EntityTag
// and back into the scheme text for href construction.
type Compiled struct {
	graph        *fsm.Graph[scanner.Tag]
	customEntity map[scanner.Tag]EntityTag
	customInfo   map[EntityTag]CustomInfo
}

func isDomainSegment(t scanner.Tag) bool {
	switch t {
	case scanner.WORD, scanner.UWORD, scanner.NUM, scanner.ASCIINUMERIC, scanner.ALPHANUMERIC, scanner.TLD, scanner.UTLD, scanner.EMOJI:
		return true
	}
	return false
}

func isDomainTLD(t scanner.Tag) bool {
	return t == scanner.TLD || t == scanner.UTLD
}

func isPortDigits(t scanner.Tag) bool {
	return t == scanner.NUM || t == scanner.ASCIINUMERIC
}

// isURLTailToken matches SPEC_FULL.md §4.3's definition of a URL-path
// token: anything except whitespace or a newline. Path, query, and
// fragment all reuse this one broad predicate — the grammar doesn't
// distinguish between them once it has committed to a freeform tail.
func isURLTailToken(t scanner.Tag) bool {
	return t != scanner.WS && t != scanner.NL
}

// wireDomain builds the DOMAIN sub-grammar from entry: one or more
// dot/hyphen-separated segments, with a distinguished terminal state
// reached only via a TLD/UTLD segment that follows a DOT, or via the
// literal LOCALHOST token, and a plain state reached via any other
// segment. DOT leads to afterDot and HYPHEN to afterHyphen; only afterDot
// has the TLD edge, so a lone TLD word ("com") or a TLD joined on by a
// hyphen ("not-an-email") stays plain. "a.b.co.uk" walks entry -> plain ->
// afterDot -> plain -> afterDot -> terminal -> afterDot -> terminal.
// Neither separator state accepts and entry has no separator edge, so a
// leading or trailing dot or hyphen is never part of a match.
func wireDomain(b *fsm.Builder[scanner.Tag], entry fsm.StateID) (terminal, plain fsm.StateID) {
	plain = b.NewState()
	b.AddClass(entry, "domain-segment", isDomainSegment, plain)
	terminal = b.NewState()
	b.AddLiteral(entry, scanner.LOCALHOST, terminal)
	afterDot := b.NewState()
	b.AddClass(afterDot, "domain-tld", isDomainTLD, terminal)
	b.AddClass(afterDot, "domain-segment", isDomainSegment, plain)
	b.AddLiteral(afterDot, scanner.LOCALHOST, terminal)
	afterHyphen := b.NewState()
	b.AddClass(afterHyphen, "domain-segment", isDomainSegment, plain)
	for _, st := range []fsm.StateID{plain, terminal} {
		b.AddLiteral(st, scanner.DOT, afterDot)
		b.AddLiteral(st, scanner.HYPHEN, afterHyphen)
	}
	return terminal, plain
}

// wireEmail builds DOMAIN-left AT DOMAIN-right from entry and returns the
// right-hand terminal (the only email accept state — the left side never
// needs to end in a TLD).
func wireEmail(b *fsm.Builder[scanner.Tag], entry fsm.StateID) fsm.StateID {
	leftTerminal, leftPlain := wireDomain(b, entry)
	at := b.NewState()
	b.AddLiteral(leftPlain, scanner.AT, at)
	b.AddLiteral(leftTerminal, scanner.AT, at)
	rightTerminal, _ := wireDomain(b, at)
	return rightTerminal
}

// wirePortAndTail adds, onto a just-completed domain terminal, the
// optional ":port", and the optional freeform "/path", "?query", and
// "#fragment" tail that all share one broad accept-and-self-loop state.
func wirePortAndTail(b *fsm.Builder[scanner.Tag], domainTerminal fsm.StateID, tag EntityTag, groups group.Set) {
	portColon := b.NewState()
	b.AddLiteral(domainTerminal, scanner.COLON, portColon)
	portAccept := b.NewState()
	b.SetTag(portAccept, int32(tag))
	b.AddGroups(portAccept, groups)
	b.AddClass(portColon, "port-digits", isPortDigits, portAccept)

	tail := b.NewState()
	b.SetTag(tail, int32(tag))
	b.AddGroups(tail, groups)
	for _, src := range []fsm.StateID{domainTerminal, portAccept} {
		b.AddLiteral(src, scanner.SLASH, tail)
		b.AddLiteral(src, scanner.QUESTION, tail)
		b.AddLiteral(src, scanner.POUND, tail)
	}
	b.AddClass(tail, "url-tail", isURLTailToken, tail)
}

// Build constructs the token-level FSM over the scanner's tag alphabet,
// per SPEC_FULL.md §4.3: bareword DOMAIN/URL, scheme:// URL, EMAIL,
// mailto: EMAIL, and one branch per registered custom scheme. hook, if
// non-nil, runs against the builder just before it's frozen — the seam
// internal/plugin's Registry.ApplyToken hangs off of.
func Build(sg *scanner.Graph, hook func(*fsm.Builder[scanner.Tag]) error) (*Compiled, error) {
	b := fsm.New[scanner.Tag]()
	s0 := b.Start()

	// Bareword domain, e.g. "example.com" or "localhost". Email reuses
	// these exact same two states as its left-hand side rather than
	// calling wireDomain(s0) a second time: class edges resolve
	// first-match-wins, so a second isDomainSegment/isDomainTLD edge
	// registered on s0 would be permanently shadowed by this one and
	// every email match would be unreachable dead grammar.
	domainTerminal, domainPlain := wireDomain(b, s0)
	b.SetTag(domainTerminal, int32(URLEntity))
	b.AddGroups(domainTerminal, group.Domain)
	wirePortAndTail(b, domainTerminal, URLEntity, group.Domain)

	// Bareword email, e.g. "alice@example.com".
	emailAt := b.NewState()
	b.AddLiteral(domainPlain, scanner.AT, emailAt)
	b.AddLiteral(domainTerminal, scanner.AT, emailAt)
	emailTerminal, _ := wireDomain(b, emailAt)
	b.SetTag(emailTerminal, int32(EmailEntity))
	b.AddGroups(emailTerminal, group.Domain)

	// "file:" and other bare-SCHEME URLs: freeform body after the colon.
	schemeColon := b.NewState()
	b.AddLiteral(s0, scanner.SCHEME, schemeColon)
	schemeBody := b.NewState()
	b.SetTag(schemeBody, int32(URLEntity))
	b.AddGroups(schemeBody, group.Scheme)
	b.AddLiteral(schemeColon, scanner.COLON, schemeBody)
	b.AddClass(schemeBody, "scheme-body", isURLTailToken, schemeBody)

	// "mailto:" routes straight into email grammar instead of a freeform
	// body, so the whole "mailto:user@domain" span becomes one EmailEntity
	// with the scheme folded into value/href.
	mailtoColon := b.NewState()
	b.AddLiteral(s0, scanner.MAILTO, mailtoColon)
	afterMailtoColon := b.NewState()
	b.AddLiteral(mailtoColon, scanner.COLON, afterMailtoColon)
	mailtoEmailTerminal := wireEmail(b, afterMailtoColon)
	b.SetTag(mailtoEmailTerminal, int32(EmailEntity))
	b.AddGroups(mailtoEmailTerminal, group.Domain.With(group.Scheme))

	// SLASH_SCHEME "://" URLs, e.g. "https://example.com".
	slashSchemeColon := b.NewState()
	b.AddLiteral(s0, scanner.SLASHSCHEME, slashSchemeColon)
	slash1 := b.NewState()
	b.AddLiteral(slashSchemeColon, scanner.COLON, slash1)
	slash2 := b.NewState()
	b.AddLiteral(slash1, scanner.SLASH, slash2)
	slashDomainEntry := b.NewState()
	b.AddLiteral(slash2, scanner.SLASH, slashDomainEntry)
	slashDomainTerminal, _ := wireDomain(b, slashDomainEntry)
	b.SetTag(slashDomainTerminal, int32(URLEntity))
	b.AddGroups(slashDomainTerminal, group.Domain.With(group.Scheme))
	wirePortAndTail(b, slashDomainTerminal, URLEntity, group.Domain.With(group.Scheme))

	customEntity := make(map[scanner.Tag]EntityTag)
	customInfo := make(map[EntityTag]CustomInfo)
	nextCustom := firstCustomEntity
	for _, t := range sg.CustomTags() {
		name, _ := sg.SchemeName(t)
		requireSlash := sg.RequiresSlashSlash(t)
		et := nextCustom
		nextCustom++
		customEntity[t] = et
		customInfo[et] = CustomInfo{Scheme: name, RequireSlashSlash: requireSlash}

		colonEntry := b.NewState()
		b.AddLiteral(s0, t, colonEntry)
		var bodyEntry fsm.StateID
		if requireSlash {
			c1 := b.NewState()
			b.AddLiteral(colonEntry, scanner.COLON, c1)
			c2 := b.NewState()
			b.AddLiteral(c1, scanner.SLASH, c2)
			bodyEntry = b.NewState()
			b.AddLiteral(c2, scanner.SLASH, bodyEntry)
		} else {
			bodyEntry = b.NewState()
			b.AddLiteral(colonEntry, scanner.COLON, bodyEntry)
		}
		b.SetTag(bodyEntry, int32(et))
		b.AddGroups(bodyEntry, schemeEntityGroups(requireSlash))
		b.AddClass(bodyEntry, "custom-body", isURLTailToken, bodyEntry)
	}

	if hook != nil {
		if err := hook(b); err != nil {
			return nil, err
		}
	}

	return &Compiled{
		graph:        b.Freeze(),
		customEntity: customEntity,
		customInfo:   customInfo,
	}, nil
}

func schemeEntityGroups(requireSlash bool) group.Set {
	if requireSlash {
		return group.SlashScheme
	}
	return group.Scheme
}
