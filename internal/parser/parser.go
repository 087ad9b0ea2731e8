// Package parser implements the token-level half of the pipeline: an
// immutable FSM over internal/scanner's tag alphabet that merges a token
// stream into multi-token entities (URL, EMAIL, LOCALHOST, custom-scheme
// links) and leaves everything else as inert text, whitespace, or newline
// entities.
//
// Like internal/scanner, the FSM itself lives in internal/fsm; this
// package supplies the alphabet (scanner.Tag) and the grammar (Build in
// builder.go) plus the greedy-longest-match-with-rollback runner that
// drives it (Parse below).
package parser

import (
	"strings"

	"github.com/coregx/linkify/internal/scanner"
	"github.com/coregx/linkify/internal/tld"
)

// Parser runs the compiled token FSM over a token stream. Immutable after
// construction; safe to share across concurrent Parse calls.
type Parser struct {
	compiled *Compiled
}

// New wraps a compiled token FSM for parsing.
func New(c *Compiled) *Parser {
	return &Parser{compiled: c}
}

// SchemeForEntity returns the scheme text registered for a custom-scheme
// entity tag, for building the public Match "type" field.
func (p *Parser) SchemeForEntity(t EntityTag) (string, bool) {
	info, ok := p.compiled.customInfo[t]
	if !ok {
		return "", false
	}
	return info.Scheme, true
}

type bracketFamily int

const (
	famParen bracketFamily = iota
	famBracket
	famBrace
	famAngle
	famFullwidthParen
	famFullwidthBracket
)

// bracketFamilyOf reports which paired-punctuation family tag t belongs
// to, and whether it's the closing half.
func bracketFamilyOf(t scanner.Tag) (fam bracketFamily, isClose bool, ok bool) {
	switch t {
	case scanner.OPENPAREN:
		return famParen, false, true
	case scanner.CLOSEPAREN:
		return famParen, true, true
	case scanner.OPENBRACKET:
		return famBracket, false, true
	case scanner.CLOSEBRACKET:
		return famBracket, true, true
	case scanner.OPENBRACE:
		return famBrace, false, true
	case scanner.CLOSEBRACE:
		return famBrace, true, true
	case scanner.OPENANGLE:
		return famAngle, false, true
	case scanner.CLOSEANGLE:
		return famAngle, true, true
	case scanner.FULLWIDTH_OPENPAREN:
		return famFullwidthParen, false, true
	case scanner.FULLWIDTH_CLOSEPAREN:
		return famFullwidthParen, true, true
	case scanner.FULLWIDTH_OPENBRACKET:
		return famFullwidthBracket, false, true
	case scanner.FULLWIDTH_CLOSEBRACKET:
		return famFullwidthBracket, true, true
	}
	return 0, false, false
}

// isTrailingTrim is SPEC_FULL.md §4.3's trailing-punctuation trim set:
// tokens stripped from the right of an otherwise-accepted URL/EMAIL
// before it's emitted. Unbalanced closing brackets are handled separately
// by the walk's bracket veto (see Parse), not by this set.
func isTrailingTrim(t scanner.Tag) bool {
	switch t {
	case scanner.DOT, scanner.COMMA, scanner.EXCLAMATION, scanner.QUESTION, scanner.SEMI, scanner.COLON, scanner.QUOTE, scanner.APOSTROPHE:
		return true
	}
	return false
}

func trimTrailing(tokens []scanner.Token) []scanner.Token {
	end := len(tokens)
	for end > 1 {
		tag := tokens[end-1].Tag
		if tag == scanner.SEMI && isHTMLEntityTail(tokens[:end]) {
			break
		}
		if !isTrailingTrim(tag) {
			break
		}
		end--
	}
	return tokens[:end]
}

// isHTMLEntityTail reports whether tokens ends in a "&word;"-shaped run —
// an HTML character entity, not sentence punctuation — so the trailing
// SEMI it ends with should be kept as part of the match rather than
// trimmed.
func isHTMLEntityTail(tokens []scanner.Token) bool {
	j := len(tokens) - 2
	n := 0
	for j >= 0 && isAlnumTag(tokens[j].Tag) {
		j--
		n++
	}
	return n > 0 && j >= 0 && tokens[j].Tag == scanner.AMPERSAND
}

func isAlnumTag(t scanner.Tag) bool {
	switch t {
	case scanner.WORD, scanner.UWORD, scanner.NUM, scanner.ASCIINUMERIC, scanner.ALPHANUMERIC:
		return true
	}
	return false
}

// isLeftBoundaryPunct is the set of tokens that, glued directly onto the
// front of a bare (schemeless) email match with no separating whitespace,
// make the match suspect enough to reject — e.g. the "_" in
// "_alice@example.com".
func isLeftBoundaryPunct(t scanner.Tag) bool {
	switch t {
	case scanner.HYPHEN, scanner.UNDERSCORE, scanner.DOT, scanner.TILDE, scanner.APOSTROPHE, scanner.BACKTICK, scanner.EQUALS, scanner.PLUS:
		return true
	}
	return false
}

// Parse partitions a scanner token stream into Entities. text is the
// original input the tokens were sliced from, used to build exact entity
// values from byte offsets rather than re-joining token values.
func (p *Parser) Parse(text string, tokens []scanner.Token, opts Options) []Entity {
	var entities []Entity
	var pendingText []scanner.Token
	n := len(tokens)
	pos := 0

	flushText := func() {
		if len(pendingText) == 0 {
			return
		}
		entities = append(entities, p.spanEntity(text, TextEntity, pendingText, false, ""))
		pendingText = nil
	}

	for pos < n {
		if ent, end := p.matchEntity(text, tokens, pos, opts); ent != nil {
			flushText()
			entities = append(entities, *ent)
			pos = end
			continue
		}
		if ent, end := p.matchWWWFallback(text, tokens, pos, opts); ent != nil {
			flushText()
			entities = append(entities, *ent)
			pos = end
			continue
		}
		switch tokens[pos].Tag {
		case scanner.WS:
			flushText()
			entities = append(entities, p.spanEntity(text, WSEntity, tokens[pos:pos+1], false, ""))
		case scanner.NL:
			flushText()
			entities = append(entities, p.spanEntity(text, NLEntity, tokens[pos:pos+1], false, ""))
		default:
			pendingText = append(pendingText, tokens[pos])
		}
		pos++
	}
	flushText()
	return entities
}

// matchEntity attempts the longest accepted entity starting at pos, using
// the same greedy-longest-match-with-rollback discipline as the scanner:
// advance while the token FSM steps, remember the latest accepting
// position, and stop (triggering rollback to that position) on the first
// failed or bracket-vetoed transition.
func (p *Parser) matchEntity(text string, tokens []scanner.Token, pos int, opts Options) (*Entity, int) {
	graph := p.compiled.graph
	cur := graph.Start()
	acceptAt := -1
	var acceptTag int32
	brackets := map[bracketFamily]int{}

	i := pos
	for i < len(tokens) {
		tag := tokens[i].Tag
		if fam, isClose, ok := bracketFamilyOf(tag); ok && isClose && brackets[fam] <= 0 {
			break
		}
		next, ok := graph.Step(cur, tag)
		if !ok {
			break
		}
		if fam, isClose, ok := bracketFamilyOf(tag); ok {
			if isClose {
				brackets[fam]--
			} else {
				brackets[fam]++
			}
		}
		cur = next
		i++
		if gtag, ok := graph.Tag(cur); ok {
			acceptAt = i
			acceptTag = gtag
		}
	}
	if acceptAt < 0 {
		return nil, pos
	}

	entityTag := EntityTag(acceptTag)
	if entityTag == EmailEntity && !opts.DetectEmail {
		ent := p.spanEntity(text, TextEntity, tokens[pos:acceptAt], false, "")
		return &ent, acceptAt
	}
	if entityTag == EmailEntity && tokens[pos].Tag != scanner.MAILTO && pos > 0 {
		prev := tokens[pos-1]
		if prev.End == tokens[pos].Start && isLeftBoundaryPunct(prev.Tag) {
			return nil, pos
		}
	}

	matched := trimTrailing(tokens[pos:acceptAt])
	if entityTag == EmailEntity && pos+len(matched) < len(tokens) {
		next := pos + len(matched)
		if tokens[next].Tag == scanner.DOT {
			afterDot := next + 1
			if afterDot < len(tokens) && (tokens[afterDot].Tag == scanner.HYPHEN || tokens[afterDot].Tag == scanner.UNDERSCORE) {
				return nil, pos
			}
		}
	}
	if entityTag == URLEntity && containsLocalhost(matched) {
		entityTag = LocalhostEntity
	}
	if (entityTag == URLEntity || entityTag == EmailEntity) && !confirmDomainLabel(text, matched) {
		return nil, pos
	}

	href := p.buildHref(entityTag, text, matched, opts)
	value := text[matched[0].Start:matched[len(matched)-1].End]
	if opts.Validate != nil && !opts.Validate(entityTag, value) {
		ent := p.spanEntity(text, TextEntity, matched, false, "")
		return &ent, pos + len(matched)
	}

	ent := p.spanEntity(text, entityTag, matched, true, href)
	return &ent, pos + len(matched)
}

// matchWWWFallback implements the supplemental "www.<anything>" rule: a
// literal "www" segment followed by "." and at least one more domain
// segment is linkified even when the final segment isn't a recognized
// TLD, unlike the main grammar which requires TLD/UTLD/LOCALHOST
// termination. Only tried when the main grammar found nothing at pos.
func (p *Parser) matchWWWFallback(text string, tokens []scanner.Token, pos int, opts Options) (*Entity, int) {
	if tokens[pos].Tag != scanner.WORD || !strings.EqualFold(tokens[pos].Value, "www") {
		return nil, pos
	}
	if pos+1 >= len(tokens) || tokens[pos+1].Tag != scanner.DOT {
		return nil, pos
	}
	if pos+2 >= len(tokens) || !isDomainSegment(tokens[pos+2].Tag) {
		return nil, pos
	}
	i := pos + 2
	for i < len(tokens) && isDomainSegment(tokens[i].Tag) {
		i++
		if i+1 < len(tokens) && (tokens[i].Tag == scanner.DOT || tokens[i].Tag == scanner.HYPHEN) && isDomainSegment(tokens[i+1].Tag) {
			i++
			continue
		}
		break
	}
	matched := trimTrailing(tokens[pos:i])
	if len(matched) < 3 {
		return nil, pos
	}
	protocol := opts.DefaultProtocol
	if protocol == "" {
		protocol = "http"
	}
	value := text[matched[0].Start:matched[len(matched)-1].End]
	ent := p.spanEntity(text, URLEntity, matched, true, protocol+"://"+value)
	return &ent, pos + len(matched)
}

// confirmDomainLabel independently re-checks the domain label that earned
// matched its TLD/UTLD acceptance. The scanner's character-FSM chain is the
// primary recognizer; this cross-checks the label text against
// internal/tld's Aho-Corasick-backed set so a chain node clobbered by a
// plugin's AddChain (whose final tag/groups always overwrite, even on a
// node shared with the built-in grammar) can't slip a non-TLD label
// through as an accepted match. Tokens with no TLD/UTLD label at all (a
// LOCALHOST-terminated match, say) have nothing to confirm and pass.
func confirmDomainLabel(text string, tokens []scanner.Token) bool {
	for i := len(tokens) - 1; i >= 0; i-- {
		switch tokens[i].Tag {
		case scanner.TLD:
			return tld.IsASCIITLD(strings.ToLower(text[tokens[i].Start:tokens[i].End]))
		case scanner.UTLD:
			return tld.IsUTLD(strings.ToLower(text[tokens[i].Start:tokens[i].End]))
		}
	}
	return true
}

// containsLocalhost reports whether the match's domain ends in the literal
// "localhost" label. The domain is the run of tokens after any "scheme://"
// prefix and before the first COLON, SLASH, QUESTION, or POUND, so a
// "localhost" segment in the path does not count.
func containsLocalhost(tokens []scanner.Token) bool {
	i := 0
	if tokens[0].Tag == scanner.SLASHSCHEME {
		i = 4
	}
	last := false
	for ; i < len(tokens); i++ {
		switch tokens[i].Tag {
		case scanner.COLON, scanner.SLASH, scanner.QUESTION, scanner.POUND:
			return last
		case scanner.DOT, scanner.HYPHEN:
			continue
		}
		last = tokens[i].Tag == scanner.LOCALHOST
	}
	return last
}

// buildHref implements SPEC_FULL.md §4.3's href normalization: lowercase
// the scheme, or prepend the configured default when there wasn't one.
func (p *Parser) buildHref(tag EntityTag, text string, tokens []scanner.Token, opts Options) string {
	value := text[tokens[0].Start:tokens[len(tokens)-1].End]
	switch {
	case tag == EmailEntity:
		if tokens[0].Tag == scanner.MAILTO {
			return normalizeSchemeCase(value)
		}
		return "mailto:" + value
	case tag.IsCustom():
		return normalizeSchemeCase(value)
	default: // URLEntity, LocalhostEntity
		if tokens[0].Tag == scanner.SCHEME || tokens[0].Tag == scanner.SLASHSCHEME {
			return normalizeSchemeCase(value)
		}
		protocol := opts.DefaultProtocol
		if protocol == "" {
			protocol = "http"
		}
		return protocol + "://" + value
	}
}

func normalizeSchemeCase(value string) string {
	idx := strings.IndexByte(value, ':')
	if idx < 0 {
		return value
	}
	return strings.ToLower(value[:idx]) + value[idx:]
}

func (p *Parser) spanEntity(text string, tag EntityTag, tokens []scanner.Token, isLink bool, href string) Entity {
	start := tokens[0].Start
	end := tokens[len(tokens)-1].End
	cp := make([]scanner.Token, len(tokens))
	copy(cp, tokens)
	return Entity{
		Tag:    tag,
		Value:  text[start:end],
		Start:  start,
		End:    end,
		IsLink: isLink,
		Href:   href,
		Tokens: cp,
	}
}
