package domain

// Entry is the canonical, provider-independent lexical record for one term.
// Adapters either produce a fully valid Entry or nothing; a partially
// populated Entry is never constructed. Entries are built fresh per lookup
// and are not mutated after construction.
type Entry struct {
	Headword       string          `json:"headword"`
	Translation    *string         `json:"translation"`
	PartsOfSpeech  []string        `json:"partsOfSpeech"`
	Inflections    []string        `json:"inflections"`
	Pronunciations []Pronunciation `json:"pronunciations"`
	Senses         []Sense         `json:"senses"`
}

// Pronunciation holds phonetic and audio data for one regional variant.
// AudioURL is empty when no audio is known for the entry.
type Pronunciation struct {
	LanguageTag  string `json:"languageTag"`
	PhoneticText string `json:"phoneticText"`
	AudioURL     string `json:"audioUrl"`
}

// Sense is one part-of-speech/definition unit within an Entry.
type Sense struct {
	PartOfSpeech          string    `json:"partOfSpeech"`
	DefinitionText        string    `json:"definitionText"`
	DefinitionTranslation *string   `json:"definitionTranslation"`
	Examples              []Example `json:"examples"`
}

// Example is a usage example with an optional translation.
type Example struct {
	Text        string  `json:"text"`
	Translation *string `json:"translation"`
}

// Validate checks the structural invariants every adapted Entry must hold:
// a non-empty headword, at least one sense, and the senses/partsOfSpeech
// sequences kept parallel.
func (e *Entry) Validate() error {
	if e.Headword == "" {
		return NewValidationError("headword", "required")
	}
	if len(e.Senses) == 0 {
		return NewValidationError("senses", "required")
	}
	if len(e.Senses) != len(e.PartsOfSpeech) {
		return NewValidationError("partsOfSpeech", "must be parallel to senses")
	}
	return nil
}

// Clone returns a deep copy of the entry. The projector relies on this to
// leave its input untouched.
func (e *Entry) Clone() *Entry {
	out := &Entry{
		Headword:       e.Headword,
		Translation:    cloneStrPtr(e.Translation),
		PartsOfSpeech:  append([]string(nil), e.PartsOfSpeech...),
		Inflections:    append([]string(nil), e.Inflections...),
		Pronunciations: append([]Pronunciation(nil), e.Pronunciations...),
		Senses:         make([]Sense, len(e.Senses)),
	}
	for i, s := range e.Senses {
		cs := Sense{
			PartOfSpeech:          s.PartOfSpeech,
			DefinitionText:        s.DefinitionText,
			DefinitionTranslation: cloneStrPtr(s.DefinitionTranslation),
			Examples:              make([]Example, len(s.Examples)),
		}
		for j, ex := range s.Examples {
			cs.Examples[j] = Example{Text: ex.Text, Translation: cloneStrPtr(ex.Translation)}
		}
		out.Senses[i] = cs
	}
	return out
}

func cloneStrPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
