package gemini

import "github.com/wordpeek/wordpeek-backend/internal/domain"

// adaptPayload maps an AI-generated payload into a canonical Entry.
// Returns nil when the payload lacks a headword or yields no senses. The
// audio URL is always left empty: this provider never knows audio, and the
// enrichment step may fill the slot later.
func adaptPayload(p apiPayload) *domain.Entry {
	headword := p.Word
	if headword == "" {
		headword = p.Phrase
	}
	if headword == "" || len(p.Forms) == 0 {
		return nil
	}

	entry := &domain.Entry{
		Headword:      headword,
		Translation:   p.Translation,
		PartsOfSpeech: []string{},
		Inflections:   []string{},
		Pronunciations: []domain.Pronunciation{
			{LanguageTag: "us", PhoneticText: p.Phonetic},
		},
		Senses: []domain.Sense{},
	}

	for _, form := range p.Forms {
		if len(form.Definitions) == 0 {
			continue
		}
		def := form.Definitions[0]

		pos := form.PartOfSpeech
		if pos == "" {
			pos = "unknown"
		}

		examples := make([]domain.Example, 0, len(def.Examples))
		for _, ex := range def.Examples {
			if ex.Text == "" {
				continue
			}
			examples = append(examples, domain.Example{Text: ex.Text, Translation: ex.Translation})
		}

		entry.Senses = append(entry.Senses, domain.Sense{
			PartOfSpeech:          pos,
			DefinitionText:        def.Definition,
			DefinitionTranslation: def.Translation,
			Examples:              examples,
		})
		entry.PartsOfSpeech = append(entry.PartsOfSpeech, pos)
	}

	if len(entry.Senses) == 0 {
		return nil
	}
	return entry
}
