package merriam

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wordpeek/wordpeek-backend/internal/domain"
)

const (
	// fallbackDefinition is substituted when a record carries no short
	// definitions at all.
	fallbackDefinition = "No definition found."

	defaultLanguageTag = "us"
)

// adaptEntries maps the raw API records into a canonical Entry.
// Only the first record is used. Returns nil when the payload lacks the
// minimum viable fields (no headword).
func adaptEntries(records []apiEntry, audioBaseURL string) *domain.Entry {
	if len(records) == 0 {
		return nil
	}
	rec := records[0]

	headword := headwordFromID(rec.Meta.ID)
	if headword == "" {
		return nil
	}

	pos := rec.Fl
	if pos == "" {
		pos = "unknown"
	}

	definition := fallbackDefinition
	if len(rec.Shortdef) > 0 {
		definition = rec.Shortdef[0]
	}

	sense := domain.Sense{
		PartOfSpeech:   pos,
		DefinitionText: definition,
		Examples:       []domain.Example{},
	}
	if text, ok := firstExample(rec); ok {
		sense.Examples = append(sense.Examples, domain.Example{Text: text})
	}

	pron := adaptRecordPronunciation(rec, audioBaseURL)
	if pron == nil {
		pron = &domain.Pronunciation{LanguageTag: defaultLanguageTag}
	}

	return &domain.Entry{
		Headword:       headword,
		PartsOfSpeech:  []string{pos},
		Inflections:    []string{},
		Pronunciations: []domain.Pronunciation{*pron},
		Senses:         []domain.Sense{sense},
	}
}

// adaptRecordPronunciation extracts phonetic text and the audio URL from a
// record. Returns nil when the record has neither.
func adaptRecordPronunciation(rec apiEntry, audioBaseURL string) *domain.Pronunciation {
	if len(rec.Hwi.Prs) == 0 {
		return nil
	}
	pr := rec.Hwi.Prs[0]
	if pr.MW == "" && pr.Sound.Audio == "" {
		return nil
	}

	pron := &domain.Pronunciation{LanguageTag: defaultLanguageTag}
	if pr.MW != "" {
		pron.PhoneticText = "/" + pr.MW + "/"
	}
	if pr.Sound.Audio != "" {
		pron.AudioURL = audioURL(audioBaseURL, pr.Sound.Audio)
	}
	return pron
}

// headwordFromID keeps the prefix of the compound identifier before the
// first colon, discarding homograph suffixes ("run:1" → "run").
func headwordFromID(id string) string {
	head, _, _ := strings.Cut(id, ":")
	return head
}

// audioURL builds the pronunciation audio location from the token and its
// bucket: {base}/{languageTag}/wav/{bucket}/{token}.wav.
func audioURL(base, token string) string {
	return fmt.Sprintf("%s/%s/wav/%s/%s.wav", base, defaultLanguageTag, audioBucket(token), token)
}

// audioBucket selects the audio subdirectory from the token prefix:
// "bix*" → "bix", "gg*" → "gg", leading underscore followed by a digit →
// "number", anything else → the token's first character.
func audioBucket(token string) string {
	switch {
	case strings.HasPrefix(token, "bix"):
		return "bix"
	case strings.HasPrefix(token, "gg"):
		return "gg"
	case len(token) >= 2 && token[0] == '_' && token[1] >= '0' && token[1] <= '9':
		return "number"
	default:
		return token[:1]
	}
}

// firstExample tries the two example sources in order: the supplemental
// examples list, then the first "vis" item inside def[0].sseq. Markup
// tokens are stripped from whichever text is found.
func firstExample(rec apiEntry) (string, bool) {
	if rec.Suppl != nil && len(rec.Suppl.Examples) > 0 && rec.Suppl.Examples[0].T != "" {
		return stripMarkup(rec.Suppl.Examples[0].T, "{it}", "{/it}"), true
	}
	return visExample(rec.Def)
}

// visExample walks the heterogeneous sseq structure to the first
// sub-sense's detail list and returns the first illustrative text tagged
// "vis". Every decode step is checked; a mismatch at any depth returns
// ok=false so the caller degrades to zero examples instead of failing the
// adaptation.
func visExample(def []apiDefSection) (string, bool) {
	if len(def) == 0 || len(def[0].Sseq) == 0 {
		return "", false
	}

	// sseq is a list of sense groups; each group is a list of two-element
	// [kind, body] pairs.
	var groups [][]json.RawMessage
	if err := json.Unmarshal(def[0].Sseq, &groups); err != nil {
		return "", false
	}
	if len(groups) == 0 || len(groups[0]) == 0 {
		return "", false
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(groups[0][0], &pair); err != nil || len(pair) < 2 {
		return "", false
	}

	var kind string
	if err := json.Unmarshal(pair[0], &kind); err != nil || kind != "sense" {
		return "", false
	}

	var body struct {
		Dt []json.RawMessage `json:"dt"`
	}
	if err := json.Unmarshal(pair[1], &body); err != nil {
		return "", false
	}

	for _, item := range body.Dt {
		var dtPair []json.RawMessage
		if err := json.Unmarshal(item, &dtPair); err != nil || len(dtPair) < 2 {
			continue
		}
		var tag string
		if err := json.Unmarshal(dtPair[0], &tag); err != nil || tag != "vis" {
			continue
		}
		var vis []apiVerbalIllustration
		if err := json.Unmarshal(dtPair[1], &vis); err != nil || len(vis) == 0 || vis[0].T == "" {
			return "", false
		}
		return stripMarkup(vis[0].T, "{wi}", "{/wi}"), true
	}
	return "", false
}

func stripMarkup(s, open, close string) string {
	return strings.NewReplacer(open, "", close, "").Replace(s)
}
