package tld

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

type fixture struct {
	ASCII   []string `yaml:"ascii"`
	Unicode []string `yaml:"unicode"`
	NotTLDs []string `yaml:"not_tlds"`
}

func loadFixture(t *testing.T) fixture {
	t.Helper()
	data, err := os.ReadFile("testdata/tlds.yaml")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return f
}

func TestFixtureMembership(t *testing.T) {
	f := loadFixture(t)

	for _, want := range f.ASCII {
		if !IsASCIITLD(want) {
			t.Errorf("IsASCIITLD(%q) = false, want true", want)
		}
	}
	for _, want := range f.Unicode {
		if !IsUTLD(want) {
			t.Errorf("IsUTLD(%q) = false, want true", want)
		}
	}
	for _, notTLD := range f.NotTLDs {
		if IsASCIITLD(notTLD) || IsUTLD(notTLD) {
			t.Errorf("IsASCIITLD/IsUTLD(%q) = true, want false", notTLD)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	if len(ASCIITLDs) == 0 {
		t.Fatal("ASCIITLDs is empty")
	}
	if len(UTLDs) == 0 {
		t.Fatal("UTLDs is empty")
	}
	reencoded := Decode(Encode(ASCIITLDs))
	if len(reencoded) != len(ASCIITLDs) {
		t.Fatalf("round-trip length mismatch: got %d, want %d", len(reencoded), len(ASCIITLDs))
	}
	for i := range ASCIITLDs {
		if reencoded[i] != ASCIITLDs[i] {
			t.Fatalf("round-trip mismatch at %d: got %q, want %q", i, reencoded[i], ASCIITLDs[i])
		}
	}
}

func TestNoOverlapBetweenASCIIAndUnicode(t *testing.T) {
	seen := make(map[string]bool, len(ASCIITLDs))
	for _, t := range ASCIITLDs {
		seen[t] = true
	}
	for _, u := range UTLDs {
		if seen[u] {
			t.Errorf("%q present in both ASCIITLDs and UTLDs", u)
		}
	}
}
