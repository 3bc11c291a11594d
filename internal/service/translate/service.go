// Package translate implements the sentence-translation path: a
// cache-aside wrapper over the translating provider, gated on a configured
// target language.
package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wordpeek/wordpeek-backend/internal/cachekey"
	"github.com/wordpeek/wordpeek-backend/internal/config"
	"github.com/wordpeek/wordpeek-backend/internal/domain"
)

// Service-level sentinel errors surfaced to the transport.
var (
	// ErrNoLanguage is reported when neither the request nor the
	// configuration names a target language.
	ErrNoLanguage = errors.New("no target language selected")

	// ErrNotConfigured is reported when the translating provider has no
	// credential.
	ErrNotConfigured = errors.New("translation provider is not configured")
)

type sentenceTranslator interface {
	TranslateSentence(ctx context.Context, sentence, targetLang string) (string, error)
}

type cacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Service translates sentences with caching by encoded sentence and
// target language.
type Service struct {
	log        *slog.Logger
	translator sentenceTranslator
	cache      cacheStore
	cfg        config.LookupConfig
}

// NewService creates a translate Service. translator may be nil when the
// provider is unconfigured; requests then report a configuration error.
func NewService(logger *slog.Logger, translator sentenceTranslator, cache cacheStore, cfg config.LookupConfig) *Service {
	return &Service{
		log:        logger.With("service", "translate"),
		translator: translator,
		cache:      cache,
		cfg:        cfg,
	}
}

// Translate returns the sentence translated into the target language. An
// empty lang falls back to the configured target language; "none" (the
// configured default) reports ErrNoLanguage before any fetch.
func (s *Service) Translate(ctx context.Context, sentence, lang string) (string, error) {
	if sentence == "" {
		return "", domain.NewValidationError("sentence", "required")
	}

	if lang == "" {
		lang = s.cfg.TargetLanguage
	}
	if lang == "" || lang == "none" {
		return "", ErrNoLanguage
	}

	if s.translator == nil {
		return "", ErrNotConfigured
	}

	key := cachekey.Translation(sentence, lang)

	if raw, err := s.cache.Get(ctx, key); err == nil {
		s.log.DebugContext(ctx, "translation cache hit", slog.String("key", key))
		return string(raw), nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "cache read failed", slog.String("error", err.Error()))
	}

	translated, err := s.translator.TranslateSentence(ctx, sentence, lang)
	if err != nil {
		return "", fmt.Errorf("translate sentence: %w", err)
	}

	if err := s.cache.Set(ctx, key, []byte(translated)); err != nil {
		s.log.WarnContext(ctx, "cache write failed", slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "sentence translated", slog.String("lang", lang))

	return translated, nil
}
