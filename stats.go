package linkify

import "sync/atomic"

// Stats holds process-wide counters for tuning and debugging, mirroring
// meta.Engine's stats field. Never consulted for correctness; safe to read
// concurrently with any number of Tokenize/Find/Test calls.
type Stats struct {
	TokensScanned  atomic.Uint64
	EntitiesParsed atomic.Uint64
	CacheRebuilds  atomic.Uint64
}

var globalStats Stats

// GlobalStats returns the process-wide counters accumulated since the last
// Reset.
func GlobalStats() *Stats {
	return &globalStats
}
