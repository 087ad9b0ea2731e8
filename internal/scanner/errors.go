package scanner

import "errors"

// ErrInvalidScheme indicates a custom scheme failed the syntactic
// constraints in SPEC_FULL.md §4.5: ASCII-alphanumeric with optional
// hyphens, first character an ASCII letter, length >= 2.
var ErrInvalidScheme = errors.New("linkify: invalid scheme")
