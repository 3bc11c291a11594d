package merriam

import (
	"encoding/json"
	"testing"
)

const testAudioBase = "https://media.example.com/audio/prons/en"

func TestAudioBucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  string
	}{
		{"bix123", "bix"},
		{"bixby01", "bix"},
		{"ggrunt01", "gg"},
		{"gg001", "gg"},
		{"_45abc", "number"},
		{"_9", "number"},
		{"_abc", "_"},
		{"xyz", "x"},
		{"run00001", "r"},
	}
	for _, tt := range tests {
		if got := audioBucket(tt.token); got != tt.want {
			t.Errorf("audioBucket(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestAdaptEntries_Full(t *testing.T) {
	t.Parallel()

	records := []apiEntry{
		{
			Meta: apiMeta{ID: "run:1"},
			Hwi: apiHeadwordInfo{Prs: []apiPronunciation{
				{MW: "ˈrən", Sound: apiSound{Audio: "run00001"}},
			}},
			Fl:       "verb",
			Shortdef: []string{"to go faster than a walk", "to move at speed"},
			Suppl: &apiSupplemental{Examples: []apiVerbalIllustration{
				{T: "watch him {it}run{/it} down the street"},
			}},
		},
		{Meta: apiMeta{ID: "run:2"}, Fl: "noun"},
	}

	entry := adaptEntries(records, testAudioBase)
	if entry == nil {
		t.Fatal("expected non-nil entry")
	}

	if entry.Headword != "run" {
		t.Errorf("Headword = %q, want %q", entry.Headword, "run")
	}
	if len(entry.Senses) != 1 || len(entry.PartsOfSpeech) != 1 {
		t.Fatalf("want exactly one sense and one partOfSpeech, got %d/%d",
			len(entry.Senses), len(entry.PartsOfSpeech))
	}
	if entry.PartsOfSpeech[0] != "verb" {
		t.Errorf("PartsOfSpeech[0] = %q, want %q", entry.PartsOfSpeech[0], "verb")
	}

	// First short definition, verbatim.
	if got := entry.Senses[0].DefinitionText; got != "to go faster than a walk" {
		t.Errorf("DefinitionText = %q, want first shortdef verbatim", got)
	}

	// Supplemental example with {it} markup stripped.
	if len(entry.Senses[0].Examples) != 1 {
		t.Fatalf("len(Examples) = %d, want 1", len(entry.Senses[0].Examples))
	}
	if got := entry.Senses[0].Examples[0].Text; got != "watch him run down the street" {
		t.Errorf("Examples[0].Text = %q", got)
	}

	pron := entry.Pronunciations[0]
	if pron.PhoneticText != "/ˈrən/" {
		t.Errorf("PhoneticText = %q, want slash-wrapped transcription", pron.PhoneticText)
	}
	wantURL := testAudioBase + "/us/wav/r/run00001.wav"
	if pron.AudioURL != wantURL {
		t.Errorf("AudioURL = %q, want %q", pron.AudioURL, wantURL)
	}
	if pron.LanguageTag != "us" {
		t.Errorf("LanguageTag = %q, want %q", pron.LanguageTag, "us")
	}
}

func TestAdaptEntries_Defaults(t *testing.T) {
	t.Parallel()

	records := []apiEntry{{Meta: apiMeta{ID: "frob"}}}

	entry := adaptEntries(records, testAudioBase)
	if entry == nil {
		t.Fatal("expected non-nil entry")
	}
	if entry.Senses[0].DefinitionText != "No definition found." {
		t.Errorf("DefinitionText = %q, want fallback", entry.Senses[0].DefinitionText)
	}
	if entry.PartsOfSpeech[0] != "unknown" {
		t.Errorf("PartsOfSpeech[0] = %q, want %q", entry.PartsOfSpeech[0], "unknown")
	}
	if len(entry.Senses[0].Examples) != 0 {
		t.Errorf("Examples = %v, want none", entry.Senses[0].Examples)
	}
	// A pronunciation slot always exists, audio URL empty.
	if len(entry.Pronunciations) != 1 || entry.Pronunciations[0].AudioURL != "" {
		t.Errorf("Pronunciations = %v, want one empty slot", entry.Pronunciations)
	}
}

func TestAdaptEntries_NotRepresentable(t *testing.T) {
	t.Parallel()

	if adaptEntries(nil, testAudioBase) != nil {
		t.Error("empty payload must not be representable")
	}
	if adaptEntries([]apiEntry{{}}, testAudioBase) != nil {
		t.Error("record without meta.id must not be representable")
	}
}

func TestVisExample(t *testing.T) {
	t.Parallel()

	sseq := `[[["sense", {"dt": [["text", "{bc}a greeting"], ["vis", [{"t": "gave a cheerful {wi}hello{/wi}"}]]]}]]]`
	rec := apiEntry{Def: []apiDefSection{{Sseq: json.RawMessage(sseq)}}}

	got, ok := firstExample(rec)
	if !ok {
		t.Fatal("expected an example from the sseq walk")
	}
	if got != "gave a cheerful hello" {
		t.Errorf("example = %q", got)
	}
}

func TestVisExample_StructuralMismatchDegrades(t *testing.T) {
	t.Parallel()

	// Each variant breaks the expected shape at a different depth; all must
	// degrade to zero examples, never an error or panic.
	malformed := []string{
		`{}`,
		`[]`,
		`[[]]`,
		`[[["bs", {"dt": []}]]]`,
		`[[["sense", "not-an-object"]]]`,
		`[[["sense", {"dt": [["vis", "not-a-list"]]}]]]`,
		`[[["sense", {"dt": [["vis", []]]}]]]`,
		`[[["sense", {"dt": [["text", "only text"]]}]]]`,
	}
	for _, raw := range malformed {
		rec := apiEntry{Def: []apiDefSection{{Sseq: json.RawMessage(raw)}}}
		if got, ok := firstExample(rec); ok {
			t.Errorf("sseq %s: expected no example, got %q", raw, got)
		}
	}

	if _, ok := firstExample(apiEntry{}); ok {
		t.Error("record without def sections must yield no example")
	}
}

func TestSupplementalExamplePreferredOverVis(t *testing.T) {
	t.Parallel()

	sseq := `[[["sense", {"dt": [["vis", [{"t": "from the deep walk"}]]]}]]]`
	rec := apiEntry{
		Suppl: &apiSupplemental{Examples: []apiVerbalIllustration{{T: "from suppl"}}},
		Def:   []apiDefSection{{Sseq: json.RawMessage(sseq)}},
	}

	got, ok := firstExample(rec)
	if !ok || got != "from suppl" {
		t.Errorf("firstExample = %q, %v; want supplemental source first", got, ok)
	}
}
