package tld

import "sort"

// ASCIITLDs and UTLDs are the decoded, sorted tables the character scanner
// registers as literal chains. They round-trip through Encode/Decode at
// init rather than being declared as flat literals directly, so the
// decoder that production traffic depends on is exercised on every
// process start, not just in a test.
var (
	ASCIITLDs []string
	UTLDs     []string

	asciiSet *set
	utldSet  *set
)

func init() {
	sortedASCII := make([]string, len(asciiTLDSource))
	copy(sortedASCII, asciiTLDSource)
	sort.Strings(sortedASCII)
	ASCIITLDs = Decode(Encode(sortedASCII))

	sortedUTLD := make([]string, len(utldSource))
	copy(sortedUTLD, utldSource)
	sort.Strings(sortedUTLD)
	UTLDs = Decode(Encode(sortedUTLD))

	asciiSet = buildSet(ASCIITLDs)
	utldSet = buildSet(UTLDs)
}

// IsASCIITLD reports whether word (expected lowercase ASCII) is a
// registered top-level domain.
func IsASCIITLD(word string) bool {
	return asciiSet.Contains(word)
}

// IsUTLD reports whether word is a registered internationalized top-level
// domain.
func IsUTLD(word string) bool {
	return utldSet.Contains(word)
}
