// Package gemini adapts AI-generated lexical payloads into the canonical
// entry model and provides sentence translation over the same model API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wordpeek/wordpeek-backend/internal/domain"
)

// textGenerator is the model call behind this provider. Tests inject a
// fake; production uses the genai-backed implementation.
type textGenerator interface {
	generateJSON(ctx context.Context, prompt string) (string, error)
	generateText(ctx context.Context, prompt string) (string, error)
}

// Provider fetches AI-generated entries and sentence translations.
type Provider struct {
	gen textGenerator
	log *slog.Logger
}

// NewProvider creates a Provider backed by the Gemini API.
func NewProvider(ctx context.Context, apiKey, model string, logger *slog.Logger) (*Provider, error) {
	gen, err := newGenaiGenerator(ctx, apiKey, model)
	if err != nil {
		return nil, err
	}
	return &Provider{gen: gen, log: logger.With("adapter", "gemini")}, nil
}

// FetchEntry generates and adapts an entry for the given term. Returns
// nil, nil when the model's payload is not representable as an Entry.
func (p *Provider) FetchEntry(ctx context.Context, term, targetLang string) (*domain.Entry, error) {
	raw, err := p.gen.generateJSON(ctx, entryPrompt(term, targetLang))
	if err != nil {
		return nil, fmt.Errorf("gemini: generate entry: %w", err)
	}

	var payload apiPayload
	if err := json.Unmarshal([]byte(stripFences(raw)), &payload); err != nil {
		p.log.DebugContext(ctx, "gemini payload not decodable",
			slog.String("term", term),
			slog.String("error", err.Error()),
		)
		return nil, nil
	}

	entry := adaptPayload(payload)

	p.log.DebugContext(ctx, "gemini response adapted",
		slog.String("term", term),
		slog.Bool("representable", entry != nil),
	)
	return entry, nil
}

// TranslateSentence translates a sentence into the target language.
func (p *Provider) TranslateSentence(ctx context.Context, sentence, targetLang string) (string, error) {
	raw, err := p.gen.generateText(ctx, translationPrompt(sentence, targetLang))
	if err != nil {
		return "", fmt.Errorf("gemini: translate sentence: %w", err)
	}

	out := strings.TrimSpace(raw)
	if out == "" {
		return "", fmt.Errorf("gemini: empty translation")
	}
	return out, nil
}

func entryPrompt(term, targetLang string) string {
	var b strings.Builder
	b.WriteString("Produce a dictionary entry for ")
	if domain.IsPhrase(term) {
		fmt.Fprintf(&b, "the phrase %q as JSON with a top-level \"phrase\" field", term)
	} else {
		fmt.Fprintf(&b, "the word %q as JSON with a top-level \"word\" field", term)
	}
	b.WriteString(`, a "phonetic" field (IPA), and a "forms" array. Each form has ` +
		`"partOfSpeech" and a "definitions" array of {"definition", "examples"} ` +
		`objects, examples being example sentences. `)
	if translationRequested(targetLang) {
		fmt.Fprintf(&b, `Additionally include a top-level "translation" of the term into %s, `+
			`a "translation" on each definition, and give each example as `+
			`{"text", "translation"} with the translation in %s. `, targetLang, targetLang)
	}
	b.WriteString("Respond with JSON only, no commentary.")
	return b.String()
}

func translationPrompt(sentence, targetLang string) string {
	return fmt.Sprintf("Translate the following sentence into %s. "+
		"Respond with the translation only, no commentary.\n\n%s", targetLang, sentence)
}

func translationRequested(targetLang string) bool {
	return targetLang != "" && targetLang != "none"
}

// stripFences removes a markdown code fence the model sometimes wraps
// around its JSON despite instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
