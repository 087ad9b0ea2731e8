package linkify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeSchemeURLScenario(t *testing.T) {
	Reset()
	text := "Visit https://example.com, now."
	matches := Find(text, "", DefaultOptions())
	require.Len(t, matches, 1)
	assert.Equal(t, Match{
		Type:   "url",
		Value:  "https://example.com",
		IsLink: true,
		Href:   "https://example.com",
		Start:  6,
		End:    25,
	}, matches[0])
}

func TestTokenizeValueConcatenationInvariant(t *testing.T) {
	Reset()
	text := "Visit https://example.com, or email alice@example.com!"
	entities := Tokenize(text, DefaultOptions())
	var rebuilt string
	for _, e := range entities {
		rebuilt += e.Value
	}
	assert.Equal(t, text, rebuilt)
}

func TestFindIsSubsetOfTokenize(t *testing.T) {
	Reset()
	text := "Visit https://example.com, or email alice@example.com!"
	opts := DefaultOptions()
	entities := Tokenize(text, opts)
	matches := Find(text, "", opts)

	var links []Entity
	for _, e := range entities {
		if e.IsLink {
			links = append(links, e)
		}
	}
	require.Len(t, matches, len(links))
	for i, m := range matches {
		assert.Equal(t, links[i].Value, m.Value)
		assert.Equal(t, links[i].Href, m.Href)
		assert.Equal(t, links[i].Kind, m.Type)
	}
}

func TestTokenizeIsIdempotentAcrossCalls(t *testing.T) {
	Reset()
	text := "contact bob@example.com today"
	first := Tokenize(text, DefaultOptions())
	second := Tokenize(text, DefaultOptions())
	assert.Equal(t, first, second)
}

func TestTokenizeCaseInsensitiveScheme(t *testing.T) {
	Reset()
	lower := Find("visit http://example.com", "", DefaultOptions())
	upper := Find("visit HTTP://EXAMPLE.COM", "", DefaultOptions())
	require.Len(t, lower, 1)
	require.Len(t, upper, 1)
	assert.Equal(t, lower[0].Type, upper[0].Type)
}

func TestTestAcceptsWholeStringMatch(t *testing.T) {
	Reset()
	assert.True(t, Test("https://example.com", "url", DefaultOptions()))
	assert.False(t, Test("see https://example.com here", "url", DefaultOptions()))
}

func TestFindFiltersByKind(t *testing.T) {
	Reset()
	text := "https://example.com and bob@example.com"
	urls := Find(text, "url", DefaultOptions())
	emails := Find(text, "email", DefaultOptions())
	require.Len(t, urls, 1)
	require.Len(t, emails, 1)
	assert.Equal(t, "url", urls[0].Type)
	assert.Equal(t, "email", emails[0].Type)
}

func TestRegisterCustomProtocolEnablesScheme(t *testing.T) {
	Reset()
	defer Reset()

	before := Find("open steam://run/440", "", DefaultOptions())
	assert.Empty(t, before)

	err := RegisterCustomProtocol("steam", true)
	require.NoError(t, err)

	after := Find("open steam://run/440", "", DefaultOptions())
	require.Len(t, after, 1)
	assert.Equal(t, "steam", after[0].Type)
	assert.Equal(t, "steam://run/440", after[0].Value)
}

func TestRegisterCustomProtocolRejectsInvalidScheme(t *testing.T) {
	Reset()
	defer Reset()
	err := RegisterCustomProtocol("1bad", false)
	assert.ErrorIs(t, err, ErrInvalidScheme)
}

func TestRegisterCustomProtocolReregistrationIsNoOp(t *testing.T) {
	Reset()
	defer Reset()
	require.NoError(t, RegisterCustomProtocol("steam", true))
	require.NoError(t, RegisterCustomProtocol("steam", true))
}

func TestValidateOptionsRejectsBadDefaultProtocol(t *testing.T) {
	opts := DefaultOptions()
	opts.DefaultProtocol = "1abc"
	err := ValidateOptions(opts)
	assert.ErrorIs(t, err, ErrInvalidOptionValue)
}

func TestValidateOptionsAcceptsDefault(t *testing.T) {
	assert.NoError(t, ValidateOptions(DefaultOptions()))
}

func TestOptionsValidateCallbackDemotesEntity(t *testing.T) {
	Reset()
	defer Reset()
	opts := DefaultOptions()
	opts.Validate = func(kind, value string) bool { return kind != "email" }

	matches := Find("contact bob@example.com", "", opts)
	assert.Empty(t, matches)
}

func TestCRLFNewlineEntity(t *testing.T) {
	Reset()
	entities := Tokenize("line one\r\nline two", DefaultOptions())
	var sawNL bool
	for _, e := range entities {
		if e.Kind == "nl" {
			sawNL = true
			assert.Equal(t, "\r\n", e.Value)
		}
	}
	assert.True(t, sawNL)
}

func TestRegisterPluginExtendsCharacterFSM(t *testing.T) {
	Reset()
	defer Reset()

	err := RegisterPlugin("hashtag", func(b *ScanBuilder) error {
		start := b.Start()
		b.AddChain(start, "#go", 9001, 0)
		return nil
	})
	require.NoError(t, err)
	assert.NotNil(t, currentSnapshot())
}

func TestRegisterPluginRejectsUnknownDependency(t *testing.T) {
	Reset()
	defer Reset()
	err := RegisterPlugin("derived", func(b *ScanBuilder) error { return nil }, "nonexistent")
	assert.ErrorIs(t, err, ErrUnknownPluginDependency)
}

func TestRegisterTokenPluginRejectsUnknownDependency(t *testing.T) {
	Reset()
	defer Reset()
	err := RegisterTokenPlugin("derived", func(b *TokenBuilder) error { return nil }, "nonexistent")
	assert.ErrorIs(t, err, ErrUnknownPluginDependency)
}

func TestGlobalStatsAccumulate(t *testing.T) {
	Reset()
	before := GlobalStats().TokensScanned.Load()
	Tokenize("https://example.com", DefaultOptions())
	after := GlobalStats().TokensScanned.Load()
	assert.Greater(t, after, before)
}

func TestBuildErrorUnwraps(t *testing.T) {
	inner := errors.New("boom")
	be := &BuildError{Stage: "scanner", Err: inner}
	assert.ErrorIs(t, be, inner)
	assert.Contains(t, be.Error(), "scanner")
}

func TestMailtoSchemeYieldsEmail(t *testing.T) {
	Reset()
	matches := Find("mailto:bob@example.com", "", DefaultOptions())
	require.Len(t, matches, 1)
	assert.Equal(t, "email", matches[0].Type)
	assert.Equal(t, "mailto:bob@example.com", matches[0].Href)
}

func TestLocalhostMatch(t *testing.T) {
	Reset()
	matches := Find("localhost:8080/path", "", DefaultOptions())
	require.Len(t, matches, 1)
	assert.Equal(t, "localhost", matches[0].Type)
	assert.Equal(t, "http://localhost:8080/path", matches[0].Href)
}

func TestBracketBalanceVeto(t *testing.T) {
	Reset()
	matches := Find("(see http://a.co/p(x)y)", "", DefaultOptions())
	require.Len(t, matches, 1)
	assert.Equal(t, "http://a.co/p(x)y", matches[0].Value)
}
