// Package charclass implements the precompiled code-point predicates the
// character FSM is built from: digits, ASCII letters, any Unicode letter,
// non-newline whitespace, and emoji. ASCII is checked with a direct
// comparison before falling back to the unicode package's property
// tables, per the teacher's "inline fast paths for ASCII before a full
// table lookup" convention (github.com/coregx/coregex/nfa byte-class
// handling optimizes the same way at the byte level).
package charclass

import "unicode"

// ObjectReplacement is U+FFFC, inserted by some rich-text editors where
// content was removed; treated as whitespace so stray markup doesn't break
// otherwise-contiguous runs.
const ObjectReplacement = '￼'

// VariationSelector16 (U+FE0F) requests the emoji presentation of the
// preceding code point and continues an emoji run without being one on its
// own.
const VariationSelector16 = '️'

// ZeroWidthJoiner (U+200D) joins adjacent emoji into a single glyph
// sequence (e.g. family emoji built from individual people).
const ZeroWidthJoiner = '‍'

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsASCIILetter reports whether r is in [A-Za-z].
func IsASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsLetter reports whether r is any Unicode letter, ASCII included.
func IsLetter(r rune) bool {
	if r < 0x80 {
		return IsASCIILetter(r)
	}
	return unicode.IsLetter(r)
}

// IsSpace reports whether r is whitespace other than line feed or carriage
// return (those are handled by the scanner's NL/CR transitions directly),
// folding in ObjectReplacement.
func IsSpace(r rune) bool {
	if r == '\n' || r == '\r' {
		return false
	}
	if r == ObjectReplacement {
		return true
	}
	if r == ' ' || r == '\t' || r == '\v' || r == '\f' {
		return true
	}
	if r < 0x80 {
		return false
	}
	return unicode.IsSpace(r)
}

// emojiRanges is a practical approximation of the Unicode emoji blocks —
// enough to classify the emoji that actually show up in chat-shaped text.
// It is not a transcription of the full emoji-data.txt property table
// (see DESIGN.md).
var emojiRanges = [][2]rune{
	{0x203C, 0x203C}, // double exclamation mark
	{0x2049, 0x2049},
	{0x2122, 0x2122},
	{0x2139, 0x2139},
	{0x2194, 0x21AA},
	{0x231A, 0x231B},
	{0x2328, 0x2328},
	{0x23CF, 0x23CF},
	{0x23E9, 0x23FA},
	{0x24C2, 0x24C2},
	{0x25AA, 0x25FE},
	{0x2600, 0x27BF}, // misc symbols, dingbats
	{0x2934, 0x2935},
	{0x2B00, 0x2BFF},
	{0x3030, 0x3030},
	{0x303D, 0x303D},
	{0x3297, 0x3297},
	{0x3299, 0x3299},
	{0x1F000, 0x1F0FF},
	{0x1F100, 0x1F1FF},
	{0x1F200, 0x1F2FF},
	{0x1F300, 0x1F5FF}, // misc symbols & pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport & map
	{0x1F700, 0x1F77F},
	{0x1F780, 0x1F7FF},
	{0x1F800, 0x1F8FF},
	{0x1F900, 0x1F9FF}, // supplemental symbols & pictographs
	{0x1FA00, 0x1FA6F},
	{0x1FA70, 0x1FAFF},
}

// IsEmoji reports whether r falls in one of the emoji blocks. It
// deliberately excludes VariationSelector16 and ZeroWidthJoiner, which are
// sequence continuations rather than emoji in their own right — the
// scanner wires those in as separate literal edges so that a lone VS16 at
// the very start of input does not initiate an emoji token (see
// SPEC_FULL.md design note 9.c).
func IsEmoji(r rune) bool {
	for _, rg := range emojiRanges {
		if r < rg[0] {
			return false
		}
		if r <= rg[1] {
			return true
		}
	}
	return false
}
