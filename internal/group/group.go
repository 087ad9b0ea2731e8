// Package group defines the semantic capability flags attached to FSM
// states at both levels of the scanner/parser pipeline. A state's tag says
// exactly what it is; its group set says what it can be treated as, which
// lets the token FSM key transitions on capability ("anything ascii") as
// well as on specific tag ("exactly a TLD").
package group

// Set is a bitset of semantic flags. The zero Set carries no capabilities.
type Set uint32

const (
	Numeric Set = 1 << iota
	ASCIINumeric
	Alpha
	Alphanumeric
	ASCII
	Emoji
	Scheme
	SlashScheme
	TLD
	UTLD
	Domain
	Whitespace
)

// Has reports whether all bits of flag are present in s.
func (s Set) Has(flag Set) bool {
	return s&flag == flag
}

// Any reports whether any bit of flag is present in s.
func (s Set) Any(flag Set) bool {
	return s&flag != 0
}

// With returns s with flag added.
func (s Set) With(flag Set) Set {
	return s | flag
}

var names = []struct {
	flag Set
	name string
}{
	{Numeric, "numeric"},
	{ASCIINumeric, "asciinumeric"},
	{Alpha, "alpha"},
	{Alphanumeric, "alphanumeric"},
	{ASCII, "ascii"},
	{Emoji, "emoji"},
	{Scheme, "scheme"},
	{SlashScheme, "slashscheme"},
	{TLD, "tld"},
	{UTLD, "utld"},
	{Domain, "domain"},
	{Whitespace, "whitespace"},
}

// String renders the set as a pipe-joined list of flag names, for debugging.
func (s Set) String() string {
	if s == 0 {
		return "none"
	}
	out := ""
	for _, n := range names {
		if s.Has(n.flag) {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	return out
}
