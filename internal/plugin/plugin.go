// Package plugin implements the extensibility hooks design note 9 of
// SPEC_FULL.md calls for: named factories that mutate a builder before the
// character or token FSM is finalized, with dependency declarations
// resolved at registration time.
//
// Two kinds of plugin exist, mirroring the two FSM layers: a character
// plugin (ScanFactory) extends internal/scanner's rune-alphabet builder —
// useful for new leaf token tags like a hashtag or mention sigil; a token
// plugin (TokenFactory) extends internal/parser's scanner.Tag-alphabet
// builder — useful for merging those new tags into a new entity kind.
package plugin

import (
	"errors"
	"fmt"

	"github.com/coregx/linkify/internal/fsm"
	"github.com/coregx/linkify/internal/group"
	"github.com/coregx/linkify/internal/scanner"
)

// ErrUnknownPluginDependency is returned when a plugin declares a
// dependency that was never registered (spec.md §7).
var ErrUnknownPluginDependency = errors.New("linkify: unknown plugin dependency")

// ScanBuilder is the subset of internal/scanner's character-FSM builder
// exposed to character plugins: add_literal/add_class/add_chain/
// set_accepting per design note 9, nothing else — plugins can't see or
// mutate builder internals beyond these four operations.
type ScanBuilder struct {
	b *fsm.Builder[rune]
}

// WrapScan adapts a live scanner builder for plugin use. Exported only
// for Registry.ApplyScan; plugin authors never construct one directly.
func WrapScan(b *fsm.Builder[rune]) *ScanBuilder { return &ScanBuilder{b} }

func (s *ScanBuilder) Start() fsm.StateID { return s.b.Start() }
func (s *ScanBuilder) NewState() fsm.StateID { return s.b.NewState() }

func (s *ScanBuilder) AddLiteral(src fsm.StateID, ch rune, target fsm.StateID) (fsm.StateID, bool) {
	return s.b.AddLiteral(src, ch, target)
}

func (s *ScanBuilder) AddClass(src fsm.StateID, name string, pred func(rune) bool, target fsm.StateID) fsm.StateID {
	return s.b.AddClass(src, name, pred, target)
}

func (s *ScanBuilder) AddChain(src fsm.StateID, word string, finalTag int32, finalGroups group.Set, defaultTag int32) fsm.StateID {
	return s.b.AddChain(src, []rune(word), finalTag, finalGroups, defaultTag, nil)
}

func (s *ScanBuilder) SetAccepting(id fsm.StateID, tag int32, groups group.Set) {
	s.b.SetTag(id, tag)
	s.b.AddGroups(id, groups)
}

// TokenBuilder is the analogous subset of internal/parser's token-FSM
// builder exposed to token plugins.
type TokenBuilder struct {
	b *fsm.Builder[scanner.Tag]
}

// WrapToken adapts a live parser builder for plugin use.
func WrapToken(b *fsm.Builder[scanner.Tag]) *TokenBuilder { return &TokenBuilder{b} }

func (t *TokenBuilder) Start() fsm.StateID { return t.b.Start() }
func (t *TokenBuilder) NewState() fsm.StateID { return t.b.NewState() }

func (t *TokenBuilder) AddLiteral(src fsm.StateID, tag scanner.Tag, target fsm.StateID) (fsm.StateID, bool) {
	return t.b.AddLiteral(src, tag, target)
}

func (t *TokenBuilder) AddClass(src fsm.StateID, name string, pred func(scanner.Tag) bool, target fsm.StateID) fsm.StateID {
	return t.b.AddClass(src, name, pred, target)
}

func (t *TokenBuilder) AddChain(src fsm.StateID, tags []scanner.Tag, finalTag int32, finalGroups group.Set, defaultTag int32) fsm.StateID {
	return t.b.AddChain(src, tags, finalTag, finalGroups, defaultTag, nil)
}

func (t *TokenBuilder) SetAccepting(id fsm.StateID, tag int32, groups group.Set) {
	t.b.SetTag(id, tag)
	t.b.AddGroups(id, groups)
}

// ScanFactory mutates a character-FSM builder before it's frozen.
type ScanFactory func(b *ScanBuilder) error

// TokenFactory mutates a token-FSM builder before it's frozen.
type TokenFactory func(b *TokenBuilder) error

type scanEntry struct {
	deps    []string
	factory ScanFactory
}

type tokenEntry struct {
	deps    []string
	factory TokenFactory
}

// Registry holds every registered plugin, in registration order, and
// resolves dependency declarations eagerly so a bad dependency fails at
// RegisterPlugin time rather than silently at build time.
type Registry struct {
	scanOrder  []string
	scan       map[string]scanEntry
	tokenOrder []string
	token      map[string]tokenEntry
}

// NewRegistry returns an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		scan:  make(map[string]scanEntry),
		token: make(map[string]tokenEntry),
	}
}

// Register adds a character-level plugin under name, depending on deps
// (other character-plugin names, which must already be registered).
func (r *Registry) Register(name string, deps []string, factory ScanFactory) error {
	if err := r.checkDeps(name, deps, r.scanNames); err != nil {
		return err
	}
	if _, exists := r.scan[name]; !exists {
		r.scanOrder = append(r.scanOrder, name)
	}
	r.scan[name] = scanEntry{deps: deps, factory: factory}
	return nil
}

// RegisterToken adds a token-level plugin under name, depending on deps.
// Token-plugin dependencies are resolved against other token plugins;
// they commonly also assume a same-named character plugin ran first, but
// that ordering is the caller's responsibility (ApplyScan and ApplyToken
// are separate passes; the caller builds the character FSM, running
// ApplyScan, before the token FSM and ApplyToken).
func (r *Registry) RegisterToken(name string, deps []string, factory TokenFactory) error {
	if err := r.checkDeps(name, deps, r.tokenNames); err != nil {
		return err
	}
	if _, exists := r.token[name]; !exists {
		r.tokenOrder = append(r.tokenOrder, name)
	}
	r.token[name] = tokenEntry{deps: deps, factory: factory}
	return nil
}

func (r *Registry) checkDeps(name string, deps []string, known func() map[string]bool) error {
	registered := known()
	for _, d := range deps {
		if !registered[d] {
			return fmt.Errorf("%w: %q declares dependency %q", ErrUnknownPluginDependency, name, d)
		}
	}
	return nil
}

func (r *Registry) scanNames() map[string]bool {
	out := make(map[string]bool, len(r.scan))
	for n := range r.scan {
		out[n] = true
	}
	return out
}

func (r *Registry) tokenNames() map[string]bool {
	out := make(map[string]bool, len(r.token))
	for n := range r.token {
		out[n] = true
	}
	return out
}

// ApplyScan runs every registered character plugin, in registration
// order, against b.
func (r *Registry) ApplyScan(b *fsm.Builder[rune]) error {
	wrapped := WrapScan(b)
	for _, name := range r.scanOrder {
		if err := r.scan[name].factory(wrapped); err != nil {
			return fmt.Errorf("linkify: plugin %q: %w", name, err)
		}
	}
	return nil
}

// ApplyToken runs every registered token plugin, in registration order,
// against b.
func (r *Registry) ApplyToken(b *fsm.Builder[scanner.Tag]) error {
	wrapped := WrapToken(b)
	for _, name := range r.tokenOrder {
		if err := r.token[name].factory(wrapped); err != nil {
			return fmt.Errorf("linkify: token plugin %q: %w", name, err)
		}
	}
	return nil
}

// Empty reports whether no plugins of either kind are registered, so
// callers can skip the Apply passes entirely on the common path.
func (r *Registry) Empty() bool {
	return len(r.scanOrder) == 0 && len(r.tokenOrder) == 0
}
