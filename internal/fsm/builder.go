package fsm

import "github.com/coregx/linkify/internal/group"

// Builder constructs a Graph incrementally. It is not safe for concurrent
// use; build on one goroutine, then Freeze and share the result.
type Builder[S comparable] struct {
	nodes []node[S]
	start StateID
}

// New creates a Builder with a single, non-accepting start state.
func New[S comparable]() *Builder[S] {
	b := &Builder[S]{}
	b.start = b.newNode()
	return b
}

// Start returns the builder's start state.
func (b *Builder[S]) Start() StateID {
	return b.start
}

func (b *Builder[S]) newNode() StateID {
	id := StateID(len(b.nodes))
	b.nodes = append(b.nodes, node[S]{tag: noTag, defaultSym: InvalidState})
	return id
}

// NewState allocates a fresh non-accepting state with no edges.
func (b *Builder[S]) NewState() StateID {
	return b.newNode()
}

// SetTag marks id as accepting with the given tag. tag must be >= 0.
func (b *Builder[S]) SetTag(id StateID, tag int32) {
	b.nodes[id].tag = tag
}

// TagOf returns the tag currently on id, or ok=false if id is non-accepting.
func (b *Builder[S]) TagOf(id StateID) (tag int32, ok bool) {
	n := &b.nodes[id]
	if n.tag == noTag {
		return 0, false
	}
	return n.tag, true
}

// AddGroups merges flag into id's group set.
func (b *Builder[S]) AddGroups(id StateID, flags group.Set) {
	b.nodes[id].groups = b.nodes[id].groups.With(flags)
}

// AddLiteral adds (or reuses) a transition from src on sym. If target is
// InvalidState, a fresh non-accepting state is created and used as the
// target. Returns the target state and whether it was freshly created
// (false if an edge for sym already existed on src and was reused).
func (b *Builder[S]) AddLiteral(src StateID, sym S, target StateID) (to StateID, created bool) {
	n := &b.nodes[src]
	if n.literal == nil {
		n.literal = make(map[S]StateID)
	}
	if existing, ok := n.literal[sym]; ok && target == InvalidState {
		return existing, false
	}
	if target == InvalidState {
		target = b.newNode()
		created = true
	}
	n.literal[sym] = target
	return target, created
}

// AddClass appends a class transition from src. Class edges are tried in
// the order they were added, after literal edges. name is a diagnostic
// label only (e.g. "digit", "ascii-letter").
func (b *Builder[S]) AddClass(src StateID, name string, pred func(S) bool, target StateID) StateID {
	if target == InvalidState {
		target = b.newNode()
	}
	n := &b.nodes[src]
	n.classes = append(n.classes, classEdge[S]{name: name, pred: pred, next: target})
	return target
}

// SetDefaultSymbol installs the default-symbol transition on src. It is
// meaningful only when src is the start state; Graph.Step ignores it
// otherwise.
func (b *Builder[S]) SetDefaultSymbol(src, target StateID) {
	b.nodes[src].defaultSym = target
}

// SideTransition describes one capability edge applied to every freshly
// created node of a chain (see AddChain) so that partial matches of a
// literal word can still extend into the FSM's generic run states — e.g. a
// node partway through the "https" chain must still accept further ASCII
// letters back into the generic word state.
type SideTransition[S comparable] struct {
	Name   string
	Pred   func(S) bool
	Target StateID
}

// AddChain adds a linear chain of literal transitions spelling out word,
// starting from src. Shared prefixes with previously added chains collapse
// automatically because AddLiteral reuses existing edges.
//
// Every freshly created intermediate node (including the final one) is
// accepting with defaultTag, UNLESS it already carries a tag from a
// previously inserted chain (so a shorter word that is a true prefix of a
// longer one keeps its own accepting tag rather than being downgraded), and
// receives every edge in sides. The final node's tag and groups are always
// overwritten with finalTag/finalGroups, since reaching the end of word is
// always a valid accept regardless of what other chains pass through that
// node.
//
// Returns the final state of the chain.
func (b *Builder[S]) AddChain(src StateID, word []S, finalTag int32, finalGroups group.Set, defaultTag int32, sides []SideTransition[S]) StateID {
	cur := src
	for i, sym := range word {
		next, created := b.AddLiteral(cur, sym, InvalidState)
		if created {
			if _, ok := b.TagOf(next); !ok {
				b.SetTag(next, defaultTag)
			}
			for _, s := range sides {
				b.AddClass(next, s.Name, s.Pred, s.Target)
			}
		}
		cur = next
		_ = i
	}
	b.SetTag(cur, finalTag)
	b.AddGroups(cur, finalGroups)
	return cur
}

// Step delegates to a temporary read of the builder's current state,
// useful while incrementally constructing chains that need to branch on
// what's already present (e.g. scheme registration checking for
// collisions before creating new nodes).
func (b *Builder[S]) Step(id StateID, sym S) (StateID, bool) {
	n := &b.nodes[id]
	if n.literal != nil {
		if to, found := n.literal[sym]; found {
			return to, true
		}
	}
	for _, ce := range n.classes {
		if ce.pred(sym) {
			return ce.next, true
		}
	}
	if id == b.start && n.defaultSym != InvalidState {
		return n.defaultSym, true
	}
	return InvalidState, false
}

// Freeze finalizes the builder into an immutable Graph. The builder must
// not be used afterwards.
func (b *Builder[S]) Freeze() *Graph[S] {
	return &Graph[S]{nodes: b.nodes, start: b.start}
}
