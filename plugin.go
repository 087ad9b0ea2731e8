package linkify

import (
	"github.com/coregx/linkify/internal/fsm"
	"github.com/coregx/linkify/internal/group"
	"github.com/coregx/linkify/internal/plugin"
	"github.com/coregx/linkify/internal/scanner"
)

// Groups is the public bitset type for the semantic capability flags a
// plugin can attach to a new accepting state (spec.md design note 9's
// set_accepting(tag, groups)). Callers build values with bitwise-or; there
// are no further public constants since plugins define their own novel
// capabilities rather than reusing the core grammar's internal/group flags.
type Groups = uint32

// ScanBuilder is the public builder subset a character-level plugin
// factory receives: add_literal/add_class/add_chain/set_accepting over the
// character FSM's rune alphabet, per spec.md design note 9. It wraps the
// internal builder so plugin authors outside this module never need to
// import an internal package to write a factory.
type ScanBuilder struct{ inner *plugin.ScanBuilder }

func (b *ScanBuilder) Start() fsm.StateID    { return b.inner.Start() }
func (b *ScanBuilder) NewState() fsm.StateID { return b.inner.NewState() }

func (b *ScanBuilder) AddLiteral(src fsm.StateID, ch rune, target fsm.StateID) (fsm.StateID, bool) {
	return b.inner.AddLiteral(src, ch, target)
}

func (b *ScanBuilder) AddClass(src fsm.StateID, name string, pred func(rune) bool, target fsm.StateID) fsm.StateID {
	return b.inner.AddClass(src, name, pred, target)
}

func (b *ScanBuilder) AddChain(src fsm.StateID, word string, finalTag int32, groups Groups) fsm.StateID {
	return b.inner.AddChain(src, word, finalTag, group.Set(groups), int32(scanner.SYM))
}

func (b *ScanBuilder) SetAccepting(id fsm.StateID, tag int32, groups Groups) {
	b.inner.SetAccepting(id, tag, group.Set(groups))
}

// TokenBuilder is the analogous public builder subset for a token-level
// plugin factory, operating over the parser's scanner.Tag alphabet.
type TokenBuilder struct{ inner *plugin.TokenBuilder }

func (b *TokenBuilder) Start() fsm.StateID    { return b.inner.Start() }
func (b *TokenBuilder) NewState() fsm.StateID { return b.inner.NewState() }

func (b *TokenBuilder) AddLiteral(src fsm.StateID, tag scanner.Tag, target fsm.StateID) (fsm.StateID, bool) {
	return b.inner.AddLiteral(src, tag, target)
}

func (b *TokenBuilder) AddClass(src fsm.StateID, name string, pred func(scanner.Tag) bool, target fsm.StateID) fsm.StateID {
	return b.inner.AddClass(src, name, pred, target)
}

func (b *TokenBuilder) AddChain(src fsm.StateID, tags []scanner.Tag, finalTag int32, groups Groups) fsm.StateID {
	return b.inner.AddChain(src, tags, finalTag, group.Set(groups), int32(scanner.SYM))
}

func (b *TokenBuilder) SetAccepting(id fsm.StateID, tag int32, groups Groups) {
	b.inner.SetAccepting(id, tag, group.Set(groups))
}

// ScanPluginFactory mutates the character FSM before it's frozen.
type ScanPluginFactory func(b *ScanBuilder) error

// TokenPluginFactory mutates the token FSM before it's frozen.
type TokenPluginFactory func(b *TokenBuilder) error

// RegisterPlugin registers a character-level plugin (e.g. a hashtag or
// mention sigil) under name, extending the character FSM the next time it
// rebuilds. deps names other already-registered character plugins this one
// builds on; an unregistered dependency fails with
// ErrUnknownPluginDependency and the plugin is not added.
func RegisterPlugin(name string, factory ScanPluginFactory, deps ...string) error {
	return registerPlugin(name, deps, func(inner *plugin.ScanBuilder) error {
		return factory(&ScanBuilder{inner: inner})
	})
}

// RegisterTokenPlugin registers a token-level plugin under name, extending
// the token FSM the next time it rebuilds. deps names other
// already-registered token plugins.
func RegisterTokenPlugin(name string, factory TokenPluginFactory, deps ...string) error {
	return registerTokenPlugin(name, deps, func(inner *plugin.TokenBuilder) error {
		return factory(&TokenBuilder{inner: inner})
	})
}
