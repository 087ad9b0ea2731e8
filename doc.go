// Package linkify finds URLs, email addresses, localhost references, and
// registered custom-scheme links inside arbitrary Unicode text.
//
// The core is a two-level deterministic finite-state machine: a character
// scanner (internal/scanner) partitions input into a tagged token stream —
// words, digit runs, TLDs, schemes, punctuation, emoji sequences — and a
// token parser (internal/parser) merges that stream into multi-token
// entities. Both FSMs are generic over internal/fsm's arena-of-states
// primitive and built once per registration state, then shared by every
// concurrent call.
//
//   - Tokenize partitions text into every entity, link and inert alike.
//   - Find returns only the link entities, optionally filtered by kind.
//   - Test reports whether an entire input is exactly one link.
//   - RegisterCustomProtocol teaches the FSM pair a new scheme.
//   - RegisterPlugin / RegisterTokenPlugin extend the character or token
//     FSM respectively with a builder callback run before each rebuild.
//   - Reset discards every registration and cached FSM.
//
// Example:
//
//	matches := linkify.Find("Reach me at alice@example.com or https://example.com.", "", linkify.DefaultOptions())
//	for _, m := range matches {
//		fmt.Println(m.Type, m.Href)
//	}
package linkify
