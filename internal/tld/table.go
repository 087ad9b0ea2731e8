// Package tld ships the ASCII and internationalized top-level domain
// tables the character scanner registers as literal chains, plus an
// Aho-Corasick automaton over each table for exact-membership checks the
// parser falls back on (see SPEC_FULL.md's DOMAIN STACK section).
//
// Per SPEC_FULL.md §6, the canonical representation of a TLD table is a
// compact prefix-trie string, not a flat list: ordinary characters build up
// the current prefix, and a run of decimal digits both emits that prefix as
// a complete entry and pops that many characters back off it before
// continuing, so that adjacent entries sharing a prefix only pay for their
// suffix. Encode/Decode implement that format; the checked-in source lists
// in data.go are run through both directions at package init so the
// decoder that ships to production is the one actually exercised, not just
// asserted correct in a test.
package tld

import "strconv"

// Encode serializes a lexicographically sorted list of entries into the
// prefix-trie string format described above.
func Encode(sorted []string) string {
	var out []rune
	var stack []rune

	commonPrefixLen := func(a, b []rune) int {
		n := 0
		for n < len(a) && n < len(b) && a[n] == b[n] {
			n++
		}
		return n
	}

	for _, entry := range sorted {
		runes := []rune(entry)
		common := commonPrefixLen(stack, runes)
		pop := len(stack) - common
		// A non-empty stack is the previous entry, which must be emitted even
		// when it is a prefix of this one (pop == 0 then writes "0").
		if len(stack) > 0 {
			out = append(out, []rune(strconv.Itoa(pop))...)
			stack = stack[:common]
		}
		suffix := runes[common:]
		out = append(out, suffix...)
		stack = append(stack, suffix...)
	}
	if len(stack) > 0 {
		out = append(out, []rune(strconv.Itoa(len(stack)))...)
	}
	return string(out)
}

// Decode reverses Encode, reconstructing the original sorted entry list.
func Decode(encoded string) []string {
	runes := []rune(encoded)
	var stack []rune
	var out []string

	i := 0
	for i < len(runes) {
		c := runes[i]
		if c >= '0' && c <= '9' {
			if len(stack) > 0 {
				out = append(out, string(stack))
			}
			j := i
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			n, _ := strconv.Atoi(string(runes[i:j]))
			if n > len(stack) {
				n = len(stack)
			}
			stack = stack[:len(stack)-n]
			i = j
			continue
		}
		stack = append(stack, c)
		i++
	}
	return out
}
