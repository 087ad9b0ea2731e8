package charclass

import "testing"

func TestIsDigit(t *testing.T) {
	for _, r := range "0123456789" {
		if !IsDigit(r) {
			t.Errorf("IsDigit(%q) = false, want true", r)
		}
	}
	for _, r := range "aA-.٣" {
		if IsDigit(r) {
			t.Errorf("IsDigit(%q) = true, want false", r)
		}
	}
}

func TestIsASCIILetter(t *testing.T) {
	if !IsASCIILetter('a') || !IsASCIILetter('Z') {
		t.Error("ASCII letters should be letters")
	}
	if IsASCIILetter('é') {
		t.Error("non-ASCII letter misclassified as ASCII letter")
	}
	if IsASCIILetter('5') {
		t.Error("digit misclassified as ASCII letter")
	}
}

func TestIsLetter(t *testing.T) {
	cases := map[rune]bool{
		'a': true, 'Z': true, 'é': true, '中': true,
		'5': false, ' ': false, '-': false,
	}
	for r, want := range cases {
		if got := IsLetter(r); got != want {
			t.Errorf("IsLetter(%q) = %v, want %v", r, got, want)
		}
	}
}

func TestIsSpace(t *testing.T) {
	if IsSpace('\n') || IsSpace('\r') {
		t.Error("IsSpace should exclude \\n and \\r — the scanner routes those separately")
	}
	if !IsSpace(' ') || !IsSpace('\t') {
		t.Error("ordinary ASCII whitespace should be space")
	}
	if !IsSpace(ObjectReplacement) {
		t.Error("ObjectReplacement should be treated as whitespace")
	}
	if IsSpace('a') {
		t.Error("letter misclassified as space")
	}
}

func TestIsEmoji(t *testing.T) {
	if !IsEmoji('😀') {
		t.Error("grinning face should be emoji")
	}
	if !IsEmoji('☀') {
		t.Error("sun symbol should be emoji")
	}
	if IsEmoji('a') {
		t.Error("ASCII letter misclassified as emoji")
	}
	if IsEmoji(VariationSelector16) {
		t.Error("VariationSelector16 should not be classified as emoji on its own")
	}
	if IsEmoji(ZeroWidthJoiner) {
		t.Error("ZeroWidthJoiner should not be classified as emoji on its own")
	}
}
