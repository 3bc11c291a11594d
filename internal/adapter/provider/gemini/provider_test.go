package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
)

type fakeGenerator struct {
	jsonOut string
	textOut string
	err     error
}

func (f *fakeGenerator) generateJSON(_ context.Context, _ string) (string, error) {
	return f.jsonOut, f.err
}

func (f *fakeGenerator) generateText(_ context.Context, _ string) (string, error) {
	return f.textOut, f.err
}

func newTestProvider(gen textGenerator) *Provider {
	return &Provider{
		gen: gen,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestAdaptPayload_WordAndStringExamples(t *testing.T) {
	t.Parallel()

	raw := `{
		"word": "run",
		"forms": [
			{"partOfSpeech": "verb", "definitions": [
				{"definition": "move fast", "examples": ["He can run fast."]},
				{"definition": "second, never used"}
			]},
			{"partOfSpeech": "noun", "definitions": [
				{"definition": "an act of running", "examples": []}
			]}
		]
	}`

	var payload apiPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	entry := adaptPayload(payload)
	if entry == nil {
		t.Fatal("expected non-nil entry")
	}

	if entry.Headword != "run" {
		t.Errorf("Headword = %q, want %q", entry.Headword, "run")
	}
	if len(entry.Senses) != 2 || len(entry.PartsOfSpeech) != 2 {
		t.Fatalf("senses/partsOfSpeech = %d/%d, want 2/2", len(entry.Senses), len(entry.PartsOfSpeech))
	}

	// Only the first definition of each form is used.
	if entry.Senses[0].DefinitionText != "move fast" {
		t.Errorf("Senses[0].DefinitionText = %q", entry.Senses[0].DefinitionText)
	}

	ex := entry.Senses[0].Examples
	if len(ex) != 1 || ex[0].Text != "He can run fast." || ex[0].Translation != nil {
		t.Errorf("Senses[0].Examples = %+v", ex)
	}

	// Audio is never known for this provider.
	if entry.Pronunciations[0].AudioURL != "" {
		t.Errorf("AudioURL = %q, want empty", entry.Pronunciations[0].AudioURL)
	}
}

func TestAdaptPayload_PhraseAndStructuredExamples(t *testing.T) {
	t.Parallel()

	raw := `{
		"phrase": "pick up",
		"translation": "recoger",
		"phonetic": "pɪk ʌp",
		"forms": [
			{"definitions": [
				{
					"definition": "to lift",
					"translation": "levantar",
					"examples": [{"text": "Pick up the box.", "translation": "Recoge la caja."}]
				}
			]}
		]
	}`

	var payload apiPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	entry := adaptPayload(payload)
	if entry == nil {
		t.Fatal("expected non-nil entry")
	}

	if entry.Headword != "pick up" {
		t.Errorf("Headword = %q", entry.Headword)
	}
	if entry.Translation == nil || *entry.Translation != "recoger" {
		t.Errorf("Translation = %v", entry.Translation)
	}
	if entry.Pronunciations[0].PhoneticText != "pɪk ʌp" {
		t.Errorf("PhoneticText = %q", entry.Pronunciations[0].PhoneticText)
	}

	// Part of speech defaults when the form omits it.
	if entry.PartsOfSpeech[0] != "unknown" {
		t.Errorf("PartsOfSpeech[0] = %q, want %q", entry.PartsOfSpeech[0], "unknown")
	}

	sense := entry.Senses[0]
	if sense.DefinitionTranslation == nil || *sense.DefinitionTranslation != "levantar" {
		t.Errorf("DefinitionTranslation = %v", sense.DefinitionTranslation)
	}
	ex := sense.Examples[0]
	if ex.Text != "Pick up the box." || ex.Translation == nil || *ex.Translation != "Recoge la caja." {
		t.Errorf("Examples[0] = %+v", ex)
	}
}

func TestAdaptPayload_NotRepresentable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"no headword", `{"forms": [{"partOfSpeech": "verb", "definitions": [{"definition": "x"}]}]}`},
		{"forms absent", `{"word": "run"}`},
		{"forms empty", `{"word": "run", "forms": []}`},
		{"forms without definitions", `{"word": "run", "forms": [{"partOfSpeech": "verb"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload apiPayload
			if err := json.Unmarshal([]byte(tt.raw), &payload); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if entry := adaptPayload(payload); entry != nil {
				t.Errorf("expected nil entry, got %+v", entry)
			}
		})
	}
}

func TestProvider_FetchEntry_FencedJSON(t *testing.T) {
	t.Parallel()

	out := "```json\n{\"word\": \"run\", \"forms\": [{\"partOfSpeech\": \"verb\", " +
		"\"definitions\": [{\"definition\": \"move fast\"}]}]}\n```"
	p := newTestProvider(&fakeGenerator{jsonOut: out})

	entry, err := p.FetchEntry(context.Background(), "run", "none")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry == nil || entry.Headword != "run" {
		t.Fatalf("entry = %+v", entry)
	}
}

func TestProvider_FetchEntry_Garbage(t *testing.T) {
	t.Parallel()

	p := newTestProvider(&fakeGenerator{jsonOut: "sorry, I can't do that"})

	entry, err := p.FetchEntry(context.Background(), "run", "none")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry != nil {
		t.Fatalf("expected nil entry for undecodable payload, got %+v", entry)
	}
}

func TestProvider_FetchEntry_GeneratorError(t *testing.T) {
	t.Parallel()

	p := newTestProvider(&fakeGenerator{err: errors.New("quota exceeded")})

	if _, err := p.FetchEntry(context.Background(), "run", "none"); err == nil {
		t.Fatal("expected error")
	}
}

func TestProvider_TranslateSentence(t *testing.T) {
	t.Parallel()

	p := newTestProvider(&fakeGenerator{textOut: "  Er kann schnell laufen.\n"})

	got, err := p.TranslateSentence(context.Background(), "He can run fast.", "de")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Er kann schnell laufen." {
		t.Errorf("translation = %q", got)
	}

	empty := newTestProvider(&fakeGenerator{textOut: "   "})
	if _, err := empty.TranslateSentence(context.Background(), "x", "de"); err == nil {
		t.Fatal("expected error for empty translation")
	}
}
