package parser

import (
	"testing"

	"github.com/coregx/linkify/internal/scanner"
)

func newTestParser(t *testing.T, custom ...scanner.CustomScheme) (*scanner.Scanner, *Parser) {
	t.Helper()
	sg, err := scanner.Build([]string{"com", "co", "uk", "org"}, nil, custom, nil)
	if err != nil {
		t.Fatalf("scanner.Build: %v", err)
	}
	compiled, err := Build(sg, nil)
	if err != nil {
		t.Fatalf("parser.Build: %v", err)
	}
	return scanner.New(sg), New(compiled)
}

func defaultOpts() Options {
	return Options{DefaultProtocol: "http", DetectEmail: true}
}

func linkEntities(entities []Entity) []Entity {
	var out []Entity
	for _, e := range entities {
		if e.IsLink {
			out = append(out, e)
		}
	}
	return out
}

func TestParseBareDomain(t *testing.T) {
	sc, p := newTestParser(t)
	text := "example.com"
	entities := p.Parse(text, sc.Tokenize(text), defaultOpts())
	links := linkEntities(entities)
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1: %+v", len(links), entities)
	}
	if links[0].Tag != URLEntity {
		t.Errorf("Tag = %v, want URLEntity", links[0].Tag)
	}
	if links[0].Href != "http://example.com" {
		t.Errorf("Href = %q, want %q", links[0].Href, "http://example.com")
	}
}

func TestParseSchemeURL(t *testing.T) {
	sc, p := newTestParser(t)
	text := "Visit https://example.com, now."
	entities := p.Parse(text, sc.Tokenize(text), defaultOpts())
	links := linkEntities(entities)
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1: %+v", len(links), entities)
	}
	got := links[0]
	if got.Value != "https://example.com" {
		t.Errorf("Value = %q, want %q", got.Value, "https://example.com")
	}
	if got.Href != "https://example.com" {
		t.Errorf("Href = %q, want %q", got.Href, "https://example.com")
	}
	if got.Start != 6 || got.End != 25 {
		t.Errorf("Start/End = %d/%d, want 6/25", got.Start, got.End)
	}
}

func TestParseEmail(t *testing.T) {
	sc, p := newTestParser(t)
	text := "Write to alice@example.com."
	entities := p.Parse(text, sc.Tokenize(text), defaultOpts())
	links := linkEntities(entities)
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1: %+v", len(links), entities)
	}
	got := links[0]
	if got.Tag != EmailEntity {
		t.Errorf("Tag = %v, want EmailEntity", got.Tag)
	}
	if got.Value != "alice@example.com" {
		t.Errorf("Value = %q, want %q", got.Value, "alice@example.com")
	}
	if got.Href != "mailto:alice@example.com" {
		t.Errorf("Href = %q, want %q", got.Href, "mailto:alice@example.com")
	}
	if got.Start != 9 || got.End != 26 {
		t.Errorf("Start/End = %d/%d, want 9/26", got.Start, got.End)
	}
}

func TestParseMailtoScheme(t *testing.T) {
	sc, p := newTestParser(t)
	text := "mailto:bob@example.com"
	entities := p.Parse(text, sc.Tokenize(text), defaultOpts())
	links := linkEntities(entities)
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1: %+v", len(links), entities)
	}
	if links[0].Tag != EmailEntity {
		t.Errorf("Tag = %v, want EmailEntity", links[0].Tag)
	}
	if links[0].Href != "mailto:bob@example.com" {
		t.Errorf("Href = %q, want %q", links[0].Href, "mailto:bob@example.com")
	}
}

func TestParseDetectEmailDisabled(t *testing.T) {
	sc, p := newTestParser(t)
	text := "alice@example.com"
	opts := defaultOpts()
	opts.DetectEmail = false
	entities := p.Parse(text, sc.Tokenize(text), opts)
	links := linkEntities(entities)
	if len(links) != 0 {
		t.Fatalf("got %d links with DetectEmail=false, want 0: %+v", len(links), links)
	}
}

func TestParseBracketBalance(t *testing.T) {
	sc, p := newTestParser(t)
	text := "(see http://a.co/p(x)y)"
	entities := p.Parse(text, sc.Tokenize(text), defaultOpts())
	links := linkEntities(entities)
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1: %+v", len(links), entities)
	}
	if links[0].Value != "http://a.co/p(x)y" {
		t.Errorf("Value = %q, want %q", links[0].Value, "http://a.co/p(x)y")
	}
}

func TestParseLocalhost(t *testing.T) {
	sc, p := newTestParser(t)
	text := "localhost:8080/path"
	entities := p.Parse(text, sc.Tokenize(text), defaultOpts())
	links := linkEntities(entities)
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1: %+v", len(links), entities)
	}
	if links[0].Tag != LocalhostEntity {
		t.Errorf("Tag = %v, want LocalhostEntity", links[0].Tag)
	}
	if links[0].Href != "http://localhost:8080/path" {
		t.Errorf("Href = %q, want %q", links[0].Href, "http://localhost:8080/path")
	}
}

func TestParseInvalidRightDomainYieldsNoMatch(t *testing.T) {
	sc, p := newTestParser(t)
	text := "Email me at not-an-email@."
	entities := p.Parse(text, sc.Tokenize(text), defaultOpts())
	links := linkEntities(entities)
	if len(links) != 0 {
		t.Fatalf("got %d links, want 0: %+v", len(links), links)
	}
}

func TestParseCustomScheme(t *testing.T) {
	sc, p := newTestParser(t, scanner.CustomScheme{Name: "steam", RequireSlashSlash: true})
	text := "open steam://run/440 now"
	entities := p.Parse(text, sc.Tokenize(text), defaultOpts())
	links := linkEntities(entities)
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1: %+v", len(links), entities)
	}
	if links[0].Value != "steam://run/440" {
		t.Errorf("Value = %q, want %q", links[0].Value, "steam://run/440")
	}
	name, ok := p.SchemeForEntity(links[0].Tag)
	if !ok || name != "steam" {
		t.Errorf("SchemeForEntity = (%q, %v), want (steam, true)", name, ok)
	}
}

func TestParseTrailingPunctuationTrim(t *testing.T) {
	sc, p := newTestParser(t)
	text := "Visit https://example.com."
	entities := p.Parse(text, sc.Tokenize(text), defaultOpts())
	links := linkEntities(entities)
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1: %+v", len(links), entities)
	}
	if links[0].Value != "https://example.com" {
		t.Errorf("trailing dot not trimmed: Value = %q", links[0].Value)
	}
}

func TestParseTokenizeConcatenationInvariant(t *testing.T) {
	sc, p := newTestParser(t)
	text := "Visit https://example.com, or email alice@example.com!"
	entities := p.Parse(text, sc.Tokenize(text), defaultOpts())
	var rebuilt string
	for _, e := range entities {
		rebuilt += e.Value
	}
	if rebuilt != text {
		t.Errorf("entity values do not reconstruct input: got %q, want %q", rebuilt, text)
	}
}

func TestParseRejectsTLDNotInGlobalTable(t *testing.T) {
	// A chain registered directly against the character FSM (standing in
	// for a plugin that clobbers a shared chain node) can tag a segment
	// TLD even when it isn't one of internal/tld's real entries.
	// confirmDomainLabel must catch the mismatch and reject the match
	// rather than linkify a bogus host.
	sg, err := scanner.Build([]string{"com", "zzfakenotreal"}, nil, nil, nil)
	if err != nil {
		t.Fatalf("scanner.Build: %v", err)
	}
	compiled, err := Build(sg, nil)
	if err != nil {
		t.Fatalf("parser.Build: %v", err)
	}
	sc, p := scanner.New(sg), New(compiled)

	text := "example.zzfakenotreal"
	entities := p.Parse(text, sc.Tokenize(text), defaultOpts())
	links := linkEntities(entities)
	if len(links) != 0 {
		t.Fatalf("got %d links for an unregistered TLD, want 0: %+v", len(links), links)
	}
}

func TestParseWWWFallback(t *testing.T) {
	sc, p := newTestParser(t)
	text := "see www.totallymadeup.zzzznotatld for info"
	entities := p.Parse(text, sc.Tokenize(text), defaultOpts())
	links := linkEntities(entities)
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1: %+v", len(links), entities)
	}
	if links[0].Value != "www.totallymadeup.zzzznotatld" {
		t.Errorf("Value = %q, want %q", links[0].Value, "www.totallymadeup.zzzznotatld")
	}
}
