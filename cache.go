package linkify

import (
	"sync"
	"sync/atomic"

	"github.com/coregx/linkify/internal/parser"
	"github.com/coregx/linkify/internal/plugin"
	"github.com/coregx/linkify/internal/scanner"
	"github.com/coregx/linkify/internal/tld"
)

// snapshot is one immutable, fully-built FSM pair plus the parser wired
// against it. Readers load a *snapshot through cachePtr and never see a
// partially-built graph; registration builds a fresh snapshot off to the
// side and swaps the pointer atomically, per spec.md §5's copy-on-write
// model (the idiomatic successor to atomic.Value for this shape of state).
type snapshot struct {
	scan  *scanner.Scanner
	parse *parser.Parser
}

var (
	cachePtr atomic.Pointer[snapshot]

	// regMu serializes registration and rebuilds; it is never held across
	// a Tokenize/Find/Test call, only across the build itself.
	regMu         sync.Mutex
	customSchemes []scanner.CustomScheme
	registry      = plugin.NewRegistry()
)

// buildSnapshot compiles a fresh character FSM and token FSM from the
// current registration state (customSchemes, registry) and the package-
// level TLD tables. Called with regMu held.
func buildSnapshot() (*snapshot, error) {
	sg, err := scanner.Build(tld.ASCIITLDs, tld.UTLDs, customSchemes, registry.ApplyScan)
	if err != nil {
		return nil, &BuildError{Stage: "scanner", Err: err}
	}
	compiled, err := parser.Build(sg, registry.ApplyToken)
	if err != nil {
		return nil, &BuildError{Stage: "parser", Err: err}
	}
	GlobalStats().CacheRebuilds.Add(1)
	return &snapshot{scan: scanner.New(sg), parse: parser.New(compiled)}, nil
}

// currentSnapshot returns the active snapshot, building the default one
// (no custom schemes, no plugins) on first use. The default build can
// never fail — it has no caller-supplied scheme text to reject — so a
// failure here indicates a bug in this module, not a usage error.
func currentSnapshot() *snapshot {
	if s := cachePtr.Load(); s != nil {
		return s
	}
	regMu.Lock()
	defer regMu.Unlock()
	if s := cachePtr.Load(); s != nil {
		return s
	}
	s, err := buildSnapshot()
	if err != nil {
		panic(err)
	}
	cachePtr.Store(s)
	return s
}

// RegisterCustomProtocol registers a custom URL scheme, per spec.md §4.5.
// Re-registering an already-known scheme is a no-op. Scheme syntax
// violations fail with ErrInvalidScheme and leave the cache untouched.
func RegisterCustomProtocol(scheme string, requireSlashSlash bool) error {
	if err := scanner.ValidateSchemeSyntax(scheme); err != nil {
		return err
	}
	regMu.Lock()
	defer regMu.Unlock()
	for _, cs := range customSchemes {
		if cs.Name == scheme {
			return nil
		}
	}
	customSchemes = append(customSchemes, scanner.CustomScheme{Name: scheme, RequireSlashSlash: requireSlashSlash})
	s, err := buildSnapshot()
	if err != nil {
		customSchemes = customSchemes[:len(customSchemes)-1]
		return err
	}
	cachePtr.Store(s)
	return nil
}

func registerPlugin(name string, deps []string, factory plugin.ScanFactory) error {
	regMu.Lock()
	defer regMu.Unlock()
	if err := registry.Register(name, deps, factory); err != nil {
		return err
	}
	s, err := buildSnapshot()
	if err != nil {
		return err
	}
	cachePtr.Store(s)
	return nil
}

func registerTokenPlugin(name string, deps []string, factory plugin.TokenFactory) error {
	regMu.Lock()
	defer regMu.Unlock()
	if err := registry.RegisterToken(name, deps, factory); err != nil {
		return err
	}
	s, err := buildSnapshot()
	if err != nil {
		return err
	}
	cachePtr.Store(s)
	return nil
}

// Reset clears the cached FSM pair, every registered custom scheme, every
// registered plugin, and the GlobalStats counters, returning the package
// to its just-imported state. The next Tokenize/Find/Test call rebuilds
// the default cache.
func Reset() {
	regMu.Lock()
	defer regMu.Unlock()
	customSchemes = nil
	registry = plugin.NewRegistry()
	cachePtr.Store(nil)
	globalStats.TokensScanned.Store(0)
	globalStats.EntitiesParsed.Store(0)
	globalStats.CacheRebuilds.Store(0)
}
