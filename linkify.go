package linkify

// Tokenize runs the character scanner then the token parser over text and
// returns every entity — links and inert text/whitespace/newline runs
// alike — in order. Concatenating Entity.Value across the result equals
// text exactly (spec.md §8).
func Tokenize(text string, opts Options) []Entity {
	s := currentSnapshot()
	tokens := s.scan.Tokenize(text)
	GlobalStats().TokensScanned.Add(uint64(len(tokens)))
	parsed := s.parse.Parse(text, tokens, opts.toParserOptions(s.parse))
	GlobalStats().EntitiesParsed.Add(uint64(len(parsed)))

	out := make([]Entity, len(parsed))
	for i, e := range parsed {
		out[i] = toPublicEntity(e, s.parse)
	}
	return out
}

// Find runs Tokenize and returns only the link entities, optionally
// filtered to one kind ("url", "email", "localhost", or a registered
// custom scheme name). An empty kind returns every link.
func Find(text string, kind string, opts Options) []Match {
	s := currentSnapshot()
	tokens := s.scan.Tokenize(text)
	GlobalStats().TokensScanned.Add(uint64(len(tokens)))
	parsed := s.parse.Parse(text, tokens, opts.toParserOptions(s.parse))
	GlobalStats().EntitiesParsed.Add(uint64(len(parsed)))

	var out []Match
	for _, e := range parsed {
		if !e.IsLink {
			continue
		}
		m := toPublicMatch(e, s.parse)
		if kind != "" && m.Type != kind {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Test reports whether text, in its entirety, is accepted as one link
// entity of the given kind (or of any link kind, if kind is empty).
func Test(text string, kind string, opts Options) bool {
	matches := Find(text, kind, opts)
	if len(matches) != 1 {
		return false
	}
	return matches[0].Start == 0 && matches[0].End == len(text)
}
