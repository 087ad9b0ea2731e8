package linkify

import (
	"errors"
	"fmt"

	"github.com/coregx/linkify/internal/plugin"
	"github.com/coregx/linkify/internal/scanner"
)

// Sentinel error kinds, per spec.md §7. Re-exported from the internal
// packages that actually detect them so callers can match with errors.Is
// against one stable public identifier regardless of which layer produced
// the error.
var (
	// ErrInvalidScheme indicates a custom scheme failed the syntactic
	// constraints in spec.md §4.5 at registration time.
	ErrInvalidScheme = scanner.ErrInvalidScheme

	// ErrUnknownPluginDependency indicates a plugin declared a dependency
	// that was never registered.
	ErrUnknownPluginDependency = plugin.ErrUnknownPluginDependency

	// ErrInvalidOptionValue indicates an Options field has the wrong shape,
	// e.g. DefaultProtocol that isn't a syntactically valid scheme.
	ErrInvalidOptionValue = errors.New("linkify: invalid option value")
)

// BuildError wraps a failure encountered while rebuilding the cached FSM
// pair, naming which stage (scanner or parser) and, where applicable, which
// registration triggered it — mirroring nfa.CompileError/nfa.BuildError's
// Pattern/StateID context fields.
type BuildError struct {
	Stage string // "scanner" or "parser"
	State string // the scheme/registration name involved, if any
	Err   error
}

func (e *BuildError) Error() string {
	if e.State != "" {
		return fmt.Sprintf("linkify: %s build failed for %q: %v", e.Stage, e.State, e.Err)
	}
	return fmt.Sprintf("linkify: %s build failed: %v", e.Stage, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
