package lookup

import "github.com/wordpeek/wordpeek-backend/internal/domain"

// Project reduces a canonical entry according to display preferences and
// returns the reduced copy; the input is never mutated. Scope "relevant"
// keeps only the first sense (with its parallel partsOfSpeech slot),
// "all" keeps every sense in order. Each retained sense's examples are
// truncated to the first ExampleCount elements. Projection only ever
// removes, so re-projecting a projected entry is a no-op.
func Project(e *domain.Entry, prefs domain.DisplayPrefs) *domain.Entry {
	out := e.Clone()

	if prefs.Scope == domain.ScopeRelevant && len(out.Senses) > 1 {
		out.Senses = out.Senses[:1]
		out.PartsOfSpeech = out.PartsOfSpeech[:1]
	}

	for i := range out.Senses {
		if len(out.Senses[i].Examples) > prefs.ExampleCount {
			out.Senses[i].Examples = out.Senses[i].Examples[:prefs.ExampleCount]
		}
	}

	return out
}
