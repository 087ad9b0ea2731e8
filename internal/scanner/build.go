package scanner

import (
	"fmt"
	"sort"

	"github.com/coregx/linkify/internal/charclass"
	"github.com/coregx/linkify/internal/fsm"
	"github.com/coregx/linkify/internal/group"
)

// CustomScheme describes a runtime-registered scheme for the character
// FSM: the literal scheme text and whether it must be followed by "://"
// rather than a bare ":".
type CustomScheme struct {
	Name              string
	RequireSlashSlash bool
}

// punctuation lists every single-character symbol that gets its own
// literal edge from start, per SPEC_FULL.md §4.2's registration table.
var punctuation = []struct {
	ch  rune
	tag Tag
}{
	{'\'', APOSTROPHE}, {'{', OPENBRACE}, {'}', CLOSEBRACE},
	{'[', OPENBRACKET}, {']', CLOSEBRACKET}, {'(', OPENPAREN}, {')', CLOSEPAREN},
	{'<', OPENANGLE}, {'>', CLOSEANGLE},
	{'（', FULLWIDTH_OPENPAREN}, {'）', FULLWIDTH_CLOSEPAREN},
	{'【', FULLWIDTH_OPENBRACKET}, {'】', FULLWIDTH_CLOSEBRACKET},
	{'&', AMPERSAND}, {'*', ASTERISK}, {'@', AT}, {'`', BACKTICK}, {'^', CARET},
	{':', COLON}, {',', COMMA}, {'$', DOLLAR}, {'.', DOT}, {'=', EQUALS},
	{'!', EXCLAMATION}, {'-', HYPHEN}, {'%', PERCENT}, {'|', PIPE}, {'+', PLUS},
	{'#', POUND}, {'?', QUESTION}, {'"', QUOTE}, {'/', SLASH}, {';', SEMI},
	{'~', TILDE}, {'_', UNDERSCORE}, {'\\', BACKSLASH},
	{'・', FULLWIDTH_MIDDLEDOT},
}

// asciiSides is the pair of capability edges every ASCII literal-chain node
// (TLD, scheme, localhost, custom scheme) needs so that a partial match
// keeps extending into the scanner's generic run states instead of dying.
func asciiSides(wordState, asciiNumState fsm.StateID) []fsm.SideTransition[rune] {
	return []fsm.SideTransition[rune]{
		{Name: "ascii-letter", Pred: charclass.IsASCIILetter, Target: wordState},
		{Name: "digit", Pred: charclass.IsDigit, Target: asciiNumState},
	}
}

// unicodeSides is the analogous set for UTLD chains: ascii letters must be
// intercepted by deadState before the generic letter edge so that a UTLD
// chain interrupted by a plain ASCII letter doesn't silently continue as a
// unicode word (IsLetter also accepts ASCII letters, so the generic letter
// edge alone would let it through; the UWORD state has the same dead edge).
func unicodeSides(deadState, uwordState, alnumState fsm.StateID) []fsm.SideTransition[rune] {
	return []fsm.SideTransition[rune]{
		{Name: "ascii-letter-dead", Pred: charclass.IsASCIILetter, Target: deadState},
		{Name: "digit", Pred: charclass.IsDigit, Target: alnumState},
		{Name: "letter", Pred: charclass.IsLetter, Target: uwordState},
	}
}

// schemeGroups implements SPEC_FULL.md §4.2's custom-scheme flag
// assignment: hyphenated schemes get Domain, schemes with no ASCII letter
// get Numeric, schemes with a digit get ASCIINumeric, everything else gets
// ASCII; the scheme/slashscheme base flag depends on RequireSlashSlash.
func schemeGroups(cs CustomScheme) group.Set {
	base := group.Scheme
	if cs.RequireSlashSlash {
		base = group.SlashScheme
	}
	hasHyphen, hasLetter, hasDigit := false, false, false
	for _, r := range cs.Name {
		switch {
		case r == '-':
			hasHyphen = true
		case charclass.IsASCIILetter(r):
			hasLetter = true
		case charclass.IsDigit(r):
			hasDigit = true
		}
	}
	switch {
	case hasHyphen:
		return base.With(group.Domain)
	case !hasLetter:
		return base.With(group.Numeric)
	case hasDigit:
		return base.With(group.ASCIINumeric)
	default:
		return base.With(group.ASCII)
	}
}

// Graph is the compiled character-level FSM plus the bookkeeping needed to
// map a custom-scheme Tag back to the scheme text and its :// requirement.
type Graph struct {
	fsm            *fsm.Graph[rune]
	customNames    map[Tag]string
	customSlashReq map[Tag]bool
	tagGroups      map[Tag]group.Set
}

// Groups returns the semantic group flags associated with tag, looked up
// from whatever state(s) in the compiled FSM carry it.
func (g *Graph) Groups(t Tag) group.Set {
	return g.tagGroups[t]
}

// SchemeName returns the registered scheme text for a custom-scheme tag.
func (g *Graph) SchemeName(t Tag) (string, bool) {
	name, ok := g.customNames[t]
	return name, ok
}

// RequiresSlashSlash reports whether the custom scheme t must be followed
// by "://" rather than a bare ":".
func (g *Graph) RequiresSlashSlash(t Tag) bool {
	return g.customSlashReq[t]
}

// CustomTags returns every runtime-registered custom-scheme tag, sorted,
// for callers (the parser builder) that need to wire a grammar branch per
// scheme.
func (g *Graph) CustomTags() []Tag {
	tags := make([]Tag, 0, len(g.customNames))
	for t := range g.customNames {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Build constructs the character-level FSM from the supplied TLD/UTLD
// tables and custom scheme registrations, per SPEC_FULL.md §4.2. hook, if
// non-nil, runs against the builder just before it's frozen — the seam
// internal/plugin's Registry.ApplyScan hangs off of to extend the
// character FSM with plugin-registered literals/classes/chains.
func Build(asciiTLDs, utlds []string, customSchemes []CustomScheme, hook func(*fsm.Builder[rune]) error) (*Graph, error) {
	b := fsm.New[rune]()
	start := b.Start()

	for _, p := range punctuation {
		target, _ := b.AddLiteral(start, p.ch, fsm.InvalidState)
		b.SetTag(target, int32(p.tag))
	}

	numState := b.AddClass(start, "digit", charclass.IsDigit, fsm.InvalidState)
	b.SetTag(numState, int32(NUM))
	b.AddGroups(numState, group.Numeric.With(group.ASCII))
	b.AddClass(numState, "digit", charclass.IsDigit, numState)

	wordState := b.AddClass(start, "ascii-letter", charclass.IsASCIILetter, fsm.InvalidState)
	b.SetTag(wordState, int32(WORD))
	b.AddGroups(wordState, group.Alpha.With(group.ASCII))
	b.AddClass(wordState, "ascii-letter", charclass.IsASCIILetter, wordState)

	asciinumericState := b.NewState()
	b.SetTag(asciinumericState, int32(ASCIINUMERIC))
	b.AddGroups(asciinumericState, group.ASCIINumeric.With(group.ASCII))
	b.AddClass(asciinumericState, "digit", charclass.IsDigit, asciinumericState)
	b.AddClass(asciinumericState, "ascii-letter", charclass.IsASCIILetter, asciinumericState)
	b.AddClass(wordState, "digit", charclass.IsDigit, asciinumericState)
	b.AddClass(numState, "ascii-letter", charclass.IsASCIILetter, asciinumericState)

	deadState := b.NewState()

	uwordState := b.AddClass(start, "letter", charclass.IsLetter, fsm.InvalidState)
	b.SetTag(uwordState, int32(UWORD))
	b.AddGroups(uwordState, group.Alpha)
	b.AddClass(uwordState, "ascii-letter-dead", charclass.IsASCIILetter, deadState)
	b.AddClass(uwordState, "letter", charclass.IsLetter, uwordState)

	alphanumericState := b.NewState()
	b.SetTag(alphanumericState, int32(ALPHANUMERIC))
	b.AddGroups(alphanumericState, group.Alphanumeric)
	b.AddClass(alphanumericState, "digit", charclass.IsDigit, alphanumericState)
	b.AddClass(alphanumericState, "letter", charclass.IsLetter, alphanumericState)
	b.AddClass(uwordState, "digit", charclass.IsDigit, alphanumericState)
	b.AddClass(numState, "letter", charclass.IsLetter, alphanumericState)

	wsState := b.AddClass(start, "space", charclass.IsSpace, fsm.InvalidState)
	b.SetTag(wsState, int32(WS))
	b.AddGroups(wsState, group.Whitespace)
	b.AddClass(wsState, "space", charclass.IsSpace, wsState)

	nlState, _ := b.AddLiteral(start, '\n', fsm.InvalidState)
	b.SetTag(nlState, int32(NL))
	b.AddGroups(nlState, group.Whitespace)
	b.AddLiteral(nlState, '\n', nlState)

	crState, _ := b.AddLiteral(start, '\r', fsm.InvalidState)
	b.SetTag(crState, int32(WS))
	b.AddGroups(crState, group.Whitespace)
	b.AddLiteral(crState, '\r', crState)
	b.AddLiteral(crState, '\n', nlState)

	emojiState := b.AddClass(start, "emoji", charclass.IsEmoji, fsm.InvalidState)
	b.SetTag(emojiState, int32(EMOJI))
	b.AddGroups(emojiState, group.Emoji)
	b.AddClass(emojiState, "emoji", charclass.IsEmoji, emojiState)
	b.AddLiteral(emojiState, charclass.VariationSelector16, emojiState)
	zwjState, _ := b.AddLiteral(emojiState, charclass.ZeroWidthJoiner, fsm.InvalidState)
	b.AddClass(zwjState, "emoji", charclass.IsEmoji, emojiState)

	asciiSideEdges := asciiSides(wordState, asciinumericState)
	unicodeSideEdges := unicodeSides(deadState, uwordState, alphanumericState)

	for _, tld := range asciiTLDs {
		b.AddChain(start, []rune(tld), int32(TLD), group.TLD.With(group.ASCII), int32(WORD), asciiSideEdges)
	}
	for _, utld := range utlds {
		b.AddChain(start, []rune(utld), int32(UTLD), group.UTLD, int32(UWORD), unicodeSideEdges)
	}

	// mailto gets its own tag rather than sharing SCHEME with file: the
	// parser's token grammar needs to route it straight into email syntax
	// (local-part@domain) instead of a freeform scheme body, and a
	// deterministic token FSM can't branch two ways on one tag from one
	// state.
	b.AddChain(start, []rune("file"), int32(SCHEME), group.Scheme.With(group.ASCII), int32(WORD), asciiSideEdges)
	b.AddChain(start, []rune("mailto"), int32(MAILTO), group.Scheme.With(group.ASCII), int32(WORD), asciiSideEdges)
	for _, scheme := range []string{"http", "https", "ftp", "ftps"} {
		b.AddChain(start, []rune(scheme), int32(SLASHSCHEME), group.SlashScheme.With(group.ASCII), int32(WORD), asciiSideEdges)
	}
	b.AddChain(start, []rune("localhost"), int32(LOCALHOST), group.Domain.With(group.ASCII), int32(WORD), asciiSideEdges)

	customNames := make(map[Tag]string, len(customSchemes))
	customSlashReq := make(map[Tag]bool, len(customSchemes))
	sorted := make([]CustomScheme, len(customSchemes))
	copy(sorted, customSchemes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	nextTag := int32(firstCustomTag)
	for _, cs := range sorted {
		if err := ValidateSchemeSyntax(cs.Name); err != nil {
			return nil, err
		}
		tag := Tag(nextTag)
		nextTag++
		b.AddChain(start, []rune(cs.Name), int32(tag), schemeGroups(cs), int32(WORD), asciiSideEdges)
		customNames[tag] = cs.Name
		customSlashReq[tag] = cs.RequireSlashSlash
	}

	symState := b.NewState()
	b.SetTag(symState, int32(SYM))
	b.SetDefaultSymbol(start, symState)

	if hook != nil {
		if err := hook(b); err != nil {
			return nil, err
		}
	}

	frozen := b.Freeze()
	tagGroups := make(map[Tag]group.Set)
	for tag, groups := range frozen.TagGroups() {
		tagGroups[Tag(tag)] = groups
	}

	return &Graph{fsm: frozen, customNames: customNames, customSlashReq: customSlashReq, tagGroups: tagGroups}, nil
}

// ValidateSchemeSyntax enforces SPEC_FULL.md §4.5's scheme grammar:
// ASCII-alphanumeric with optional hyphens, first character an ASCII
// letter, length at least 2.
func ValidateSchemeSyntax(scheme string) error {
	if len(scheme) < 2 {
		return fmt.Errorf("%w: %q is shorter than 2 characters", ErrInvalidScheme, scheme)
	}
	runes := []rune(scheme)
	if !charclass.IsASCIILetter(runes[0]) {
		return fmt.Errorf("%w: %q must start with an ASCII letter", ErrInvalidScheme, scheme)
	}
	for _, r := range runes[1:] {
		if !charclass.IsASCIILetter(r) && !charclass.IsDigit(r) && r != '-' {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidScheme, scheme, string(r))
		}
	}
	return nil
}
