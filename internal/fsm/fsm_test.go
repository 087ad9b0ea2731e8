package fsm

import "testing"

func TestLiteralEdgeTakesPrecedenceOverClass(t *testing.T) {
	b := New[rune]()
	start := b.Start()

	classTarget := b.AddClass(start, "any-letter", func(r rune) bool { return r == 'x' }, InvalidState)
	b.SetTag(classTarget, 1)

	literalTarget, _ := b.AddLiteral(start, 'x', InvalidState)
	b.SetTag(literalTarget, 2)

	g := b.Freeze()
	next, ok := g.Step(start, 'x')
	if !ok {
		t.Fatal("Step('x') failed, want a transition")
	}
	tag, ok := g.Tag(next)
	if !ok || tag != 2 {
		t.Errorf("literal edge was shadowed by class edge: got tag %d, want 2", tag)
	}
}

func TestClassEdgesTriedInInsertionOrder(t *testing.T) {
	b := New[rune]()
	start := b.Start()

	first := b.AddClass(start, "vowel", func(r rune) bool { return r == 'a' || r == 'e' }, InvalidState)
	b.SetTag(first, 1)
	second := b.AddClass(start, "any", func(r rune) bool { return true }, InvalidState)
	b.SetTag(second, 2)

	g := b.Freeze()
	next, ok := g.Step(start, 'a')
	if !ok {
		t.Fatal("Step('a') failed")
	}
	if tag, _ := g.Tag(next); tag != 1 {
		t.Errorf("first-registered class edge lost to second: got tag %d, want 1", tag)
	}

	next, ok = g.Step(start, 'z')
	if !ok {
		t.Fatal("Step('z') failed")
	}
	if tag, _ := g.Tag(next); tag != 2 {
		t.Errorf("catch-all class edge not reached for non-vowel: got tag %d, want 2", tag)
	}
}

func TestDefaultSymbolOnlyFromStart(t *testing.T) {
	b := New[rune]()
	start := b.Start()
	fallback := b.NewState()
	b.SetTag(fallback, 9)
	b.SetDefaultSymbol(start, fallback)

	other := b.NewState()
	b.SetDefaultSymbol(other, fallback)

	g := b.Freeze()
	if _, ok := g.Step(start, '!'); !ok {
		t.Error("default symbol from start did not fire")
	}
	if _, ok := g.Step(other, '!'); ok {
		t.Error("default symbol fired from a non-start state, want no transition")
	}
}

func TestAddChainSharesPrefixes(t *testing.T) {
	b := New[rune]()
	start := b.Start()

	b.AddChain(start, []rune("com"), 100, 0, 50, nil)
	b.AddChain(start, []rune("co"), 101, 0, 50, nil)

	g := b.Freeze()
	s1, ok := g.Step(start, 'c')
	if !ok {
		t.Fatal("Step('c') failed")
	}
	s2, ok := g.Step(s1, 'o')
	if !ok {
		t.Fatal("Step('o') failed")
	}
	if tag, ok := g.Tag(s2); !ok || tag != 101 {
		t.Errorf("shorter chain 'co' lost its own tag after longer chain registered: got (%d, %v), want 101", tag, ok)
	}
	s3, ok := g.Step(s2, 'm')
	if !ok {
		t.Fatal("Step('m') failed")
	}
	if tag, ok := g.Tag(s3); !ok || tag != 100 {
		t.Errorf("'com' end tag = (%d, %v), want 100", tag, ok)
	}
}

func TestAddChainSideTransitions(t *testing.T) {
	b := New[rune]()
	start := b.Start()
	wordState := b.NewState()
	b.SetTag(wordState, 1)

	sides := []SideTransition[rune]{
		{Name: "ascii-letter", Pred: func(r rune) bool { return r >= 'a' && r <= 'z' }, Target: wordState},
	}
	b.AddChain(start, []rune("com"), 100, 0, 2, sides)

	g := b.Freeze()
	c, _ := g.Step(start, 'c')
	// 'c' is the intermediate node; a side letter not continuing "com" should
	// escape into wordState rather than dying.
	next, ok := g.Step(c, 'z')
	if !ok {
		t.Fatal("side transition from partial chain match failed")
	}
	if tag, _ := g.Tag(next); tag != 1 {
		t.Errorf("side transition landed on tag %d, want 1 (wordState)", tag)
	}
}

func TestGraphStepInvalidState(t *testing.T) {
	b := New[rune]()
	g := b.Freeze()
	if _, ok := g.Step(InvalidState, 'a'); ok {
		t.Error("Step on InvalidState should fail")
	}
}

func TestTagGroups(t *testing.T) {
	b := New[rune]()
	start := b.Start()
	a := b.AddClass(start, "a", func(r rune) bool { return r == 'a' }, InvalidState)
	b.SetTag(a, 5)
	b.AddGroups(a, 0x1)
	other := b.NewState()
	b.SetTag(other, 5)
	b.AddGroups(other, 0x2)
	g := b.Freeze()

	groups := g.TagGroups()
	if groups[5] != 0x3 {
		t.Errorf("TagGroups()[5] = %v, want union 0x3", groups[5])
	}
}
