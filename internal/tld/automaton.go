package tld

import "github.com/coregx/ahocorasick"

// set wraps an Aho-Corasick automaton for exact-membership checks against a
// fixed, small-alphabet set of TLD strings. The scanner's character-FSM
// chains (internal/scanner/build.go) are the primary mechanism for
// recognizing a TLD while tokenizing; this set is the independent check
// internal/parser's matchEntity runs against the matched domain's final
// label before accepting a URL/EMAIL match, so a chain state clobbered by
// a plugin's AddChain (which always overwrites a shared node's final tag)
// can't silently mis-tag a non-TLD label as one.
type set struct {
	automaton *ahocorasick.Automaton
}

func buildSet(entries []string) *set {
	builder := ahocorasick.NewBuilder()
	for _, e := range entries {
		builder.AddPattern([]byte(e))
	}
	auto, err := builder.Build()
	if err != nil {
		// A fixed, validated literal set never fails to build; if it
		// somehow did, every membership check degrades to "not found"
		// rather than panicking.
		auto = nil
	}
	return &set{automaton: auto}
}

// Contains reports whether word (expected lowercase) is exactly one of the
// set's entries.
func (s *set) Contains(word string) bool {
	if s.automaton == nil {
		return false
	}
	// Aho-Corasick finds the leftmost occurrence of any registered pattern
	// inside word; treat it as membership only when that occurrence spans
	// the whole string, since the automaton's alphabet is exactly the TLD
	// set and a full-span match is equivalent to set membership.
	m := s.automaton.Find([]byte(word), 0)
	return m != nil && m.Start == 0 && m.End == len(word)
}
