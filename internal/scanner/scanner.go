// Package scanner implements the character-level half of the pipeline: a
// deterministic FSM built once over Unicode code points (digits, letter
// runs, whitespace, emoji sequences, the TLD/UTLD tables, schemes, localhost, and
// any runtime-registered custom schemes) and a greedy-longest-match runner
// that turns an input string into a complete, non-overlapping Token
// sequence.
//
// The FSM itself lives in internal/fsm, generalized over an alphabet type
// parameter; this package supplies the alphabet (rune) and the
// registration logic in build.go.
package scanner

import (
	"unicode/utf8"

	"github.com/coregx/linkify/internal/group"
)

// Scanner runs the compiled character FSM over input text. It holds no
// mutable state of its own — the wrapped Graph is immutable after Build —
// so a single Scanner is safe to share across concurrent Tokenize calls.
type Scanner struct {
	graph *Graph
}

// New wraps a compiled Graph for scanning.
func New(g *Graph) *Scanner {
	return &Scanner{graph: g}
}

// SchemeName returns the registered scheme text for a custom-scheme tag.
func (s *Scanner) SchemeName(t Tag) (string, bool) {
	return s.graph.SchemeName(t)
}

// RequiresSlashSlash reports whether custom-scheme tag t needs "://".
func (s *Scanner) RequiresSlashSlash(t Tag) bool {
	return s.graph.RequiresSlashSlash(t)
}

// Groups returns the semantic group flags for tag t.
func (s *Scanner) Groups(t Tag) group.Set {
	return s.graph.Groups(t)
}

type codepoint struct {
	folded     rune
	start, end int
}

// foldASCII lowercases r if it's an ASCII uppercase letter; the FSM's
// literal chains (TLDs, schemes, localhost) are registered in lowercase,
// so case-insensitive matching falls out of folding the scan alphabet
// rather than the graph. ASCII folding never changes a rune's UTF-8
// length, so byte offsets computed against the original string stay
// valid.
func foldASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// Tokenize partitions text into a complete, contiguous sequence of Tokens
// using greedy longest-match with accepting-state rollback (SPEC_FULL.md
// §4.2): advance through the FSM while transitions succeed, remember the
// most recent accepting state reached, and on failure roll back to it,
// emit a token, and resume scanning from there. Because the start state
// always has a default-symbol transition, every code point is consumed by
// some token; Tokenize never fails.
func (s *Scanner) Tokenize(text string) []Token {
	points := make([]codepoint, 0, len(text))
	for i, r := range text {
		if r == utf8.RuneError {
			// An invalid byte is one byte wide; a literal U+FFFD is three.
			_, size := utf8.DecodeRuneInString(text[i:])
			points = append(points, codepoint{folded: r, start: i, end: i + size})
			continue
		}
		points = append(points, codepoint{folded: foldASCII(r), start: i, end: i + utf8.RuneLen(r)})
	}

	var tokens []Token
	graph := s.graph.fsm
	n := len(points)
	pos := 0
	for pos < n {
		cur := graph.Start()
		acceptAt := -1
		var acceptTag Tag
		i := pos
		for i < n {
			next, ok := graph.Step(cur, points[i].folded)
			if !ok {
				break
			}
			cur = next
			i++
			if tag, ok := graph.Tag(cur); ok {
				acceptAt = i
				acceptTag = Tag(tag)
			}
		}
		if acceptAt < 0 {
			// Unreachable given the default-symbol edge, but keep scanning
			// defensively rather than looping forever.
			acceptAt = pos + 1
			acceptTag = SYM
		}
		startByte := points[pos].start
		endByte := points[acceptAt-1].end
		tokens = append(tokens, Token{
			Tag:   acceptTag,
			Value: text[startByte:endByte],
			Start: startByte,
			End:   endByte,
		})
		pos = acceptAt
	}
	return tokens
}
