package gemini

import "encoding/json"

// apiPayload is the AI-generated lexical payload. Exactly one of word or
// phrase names the headword; the first non-empty wins.
type apiPayload struct {
	Word        string    `json:"word"`
	Phrase      string    `json:"phrase"`
	Translation *string   `json:"translation"`
	Phonetic    string    `json:"phonetic"`
	Forms       []apiForm `json:"forms"`
}

// apiForm groups definitions under one part of speech. Each form becomes
// one sense, built from its first definition only.
type apiForm struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
}

type apiDefinition struct {
	Definition  string       `json:"definition"`
	Translation *string      `json:"translation"`
	Examples    []apiExample `json:"examples"`
}

// apiExample accepts both shapes the model emits: a bare string (no
// translation) or a {text, translation} object.
type apiExample struct {
	Text        string
	Translation *string
}

func (e *apiExample) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Text = s
		e.Translation = nil
		return nil
	}

	var obj struct {
		Text        string  `json:"text"`
		Translation *string `json:"translation"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	e.Text = obj.Text
	e.Translation = obj.Translation
	return nil
}
