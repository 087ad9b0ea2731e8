package linkify

import (
	"fmt"

	"github.com/coregx/linkify/internal/parser"
	"github.com/coregx/linkify/internal/scanner"
)

// Options controls Tokenize/Find/Test behavior, per spec.md §4.4. It is
// plain data: construct one with DefaultOptions, copy it, mutate the copy,
// and pass it by value — there is no global mutable option state.
//
// Fields beyond DefaultProtocol/DetectEmail/Validate are rendering
// concerns external to this package's core (spec.md's Non-goals); they are
// carried verbatim for collaborators that build on top of Tokenize/Find,
// never read by this package itself.
type Options struct {
	// DefaultProtocol prefixes a matched URL that carries no scheme.
	// Default "http".
	DefaultProtocol string

	// DetectEmail enables/disables the EMAIL entity kind. Default true.
	DetectEmail bool

	// NL2BR is an external-rendering hint: NL entities become line breaks.
	// Unused by Tokenize/Find/Test; carried for collaborators.
	NL2BR bool

	// IgnoreTags is passed through to external collaborators verbatim.
	IgnoreTags []string

	// Validate is an optional predicate per entity. Returning false demotes
	// an otherwise-accepted entity to inert text.
	Validate func(kind string, value string) bool

	// TagName, Attributes, ClassName, Target, Rel, Format, FormatHref, and
	// Truncate are external-rendering concerns; this package exposes them
	// verbatim and never reads them itself.
	TagName    string
	Attributes map[string]string
	ClassName  string
	Target     string
	Rel        string
	Format     func(kind, value string) string
	FormatHref func(kind, href string) string
	Truncate   int
}

// DefaultOptions returns the zero-configuration behavior: "http" as the
// default protocol, email detection on, no validation or rendering hooks.
func DefaultOptions() Options {
	return Options{
		DefaultProtocol: "http",
		DetectEmail:     true,
	}
}

// ValidateOptions checks the fields of o that must have a specific shape to
// be meaningful, per spec.md §7: a non-empty DefaultProtocol must be a
// syntactically valid scheme. Tokenize/Find/Test never call this
// themselves — an invalid DefaultProtocol there just falls back to "http"
// rather than failing a function the spec declares can't error — but
// callers that want registration-style strictness over their own Options
// values can call it explicitly.
func ValidateOptions(o Options) error {
	if o.DefaultProtocol != "" {
		if err := scanner.ValidateSchemeSyntax(o.DefaultProtocol); err != nil {
			return fmt.Errorf("%w: DefaultProtocol: %v", ErrInvalidOptionValue, err)
		}
	}
	return nil
}

// toParserOptions projects the subset of Options that affects grammar
// acceptance and href construction onto internal/parser's Options; the
// rendering-only fields never cross this boundary. p supplies the scheme
// name for custom-scheme entity tags so Validate sees the same "type"
// string a caller would see on the resulting Match.
func (o Options) toParserOptions(p *parser.Parser) parser.Options {
	protocol := o.DefaultProtocol
	if protocol == "" || scanner.ValidateSchemeSyntax(protocol) != nil {
		protocol = "http"
	}
	var validate func(tag parser.EntityTag, value string) bool
	if o.Validate != nil {
		validate = func(tag parser.EntityTag, value string) bool {
			return o.Validate(entityKindName(tag, p), value)
		}
	}
	return parser.Options{
		DefaultProtocol: protocol,
		DetectEmail:     o.DetectEmail,
		Validate:        validate,
	}
}
