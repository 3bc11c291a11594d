// Package lookup orchestrates the normalization pipeline: cache key
// derivation, cache-aside lookup, provider dispatch, audio enrichment, and
// preference projection.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wordpeek/wordpeek-backend/internal/cachekey"
	"github.com/wordpeek/wordpeek-backend/internal/config"
	"github.com/wordpeek/wordpeek-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryProvider interface {
	FetchEntry(ctx context.Context, term, targetLang string) (*domain.Entry, error)
}

type audioProvider interface {
	FetchPronunciation(ctx context.Context, term string) (*domain.Pronunciation, error)
}

type cacheStore interface {
	// Get returns the cached value, or domain.ErrNotFound on a miss.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Source identities recognized by the dispatcher.
const (
	SourceCambridge = "cambridge"
	SourceMerriam   = "merriam-webster"
	SourceGemini    = "gemini"
)

// Service implements the lookup pipeline. Providers that are not
// configured (missing credential) are passed as nil; requesting one is a
// reported configuration error, never a crash.
type Service struct {
	log       *slog.Logger
	cambridge entryProvider
	merriam   entryProvider
	gemini    entryProvider
	audio     audioProvider
	cache     cacheStore
	cfg       config.LookupConfig
}

// NewService creates a lookup Service. Pass nil for providers that are
// not configured; audio may also be nil, disabling enrichment.
func NewService(
	logger *slog.Logger,
	cambridgeProv entryProvider,
	merriamProv entryProvider,
	geminiProv entryProvider,
	audio audioProvider,
	cache cacheStore,
	cfg config.LookupConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "lookup"),
		cambridge: cambridgeProv,
		merriam:   merriamProv,
		gemini:    geminiProv,
		audio:     audio,
		cache:     cache,
		cfg:       cfg,
	}
}

// Options carries per-request overrides of the configured lookup settings.
// Zero values mean "use the configured default".
type Options struct {
	Source         string
	Scope          string
	ExampleCount   *int
	TargetLanguage string
}

// Result is a successful lookup outcome.
type Result struct {
	Entry *domain.Entry
	// TTSEnabled is the configured pass-through flag; the pipeline never
	// interprets it.
	TTSEnabled bool
}

// Lookup runs the full pipeline for one term and returns the projected
// entry. The cache holds projected entries keyed by term, provider, and
// every preference field that shaped the projection.
func (s *Service) Lookup(ctx context.Context, term string, opts Options) (*Result, error) {
	normalized := domain.NormalizeTerm(term)
	if normalized == "" {
		return nil, domain.NewValidationError("term", "required")
	}

	source, prefs, lang := s.resolve(opts)

	if !domain.ValidScope(prefs.Scope) {
		return nil, domain.NewValidationError("scope", fmt.Sprintf("%q must be %q or %q",
			prefs.Scope, domain.ScopeRelevant, domain.ScopeAll))
	}

	provider, err := s.providerFor(source)
	if err != nil {
		return nil, err
	}

	key := cachekey.Lookup(source, normalized, prefs, lang)

	if entry, ok := s.cachedEntry(ctx, key); ok {
		s.log.DebugContext(ctx, "lookup cache hit", slog.String("key", key))
		return &Result{Entry: entry, TTSEnabled: s.cfg.TTSEnabled}, nil
	}

	entry, err := provider.FetchEntry(ctx, normalized, lang)
	if err != nil {
		return nil, fmt.Errorf("fetch entry: %w", err)
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	if err := entry.Validate(); err != nil {
		s.log.ErrorContext(ctx, "adapter emitted invalid entry",
			slog.String("source", source),
			slog.String("error", err.Error()),
		)
		return nil, ErrNotFound
	}

	s.enrichAudio(ctx, entry, normalized, source)

	projected := Project(entry, prefs)

	s.storeEntry(ctx, key, projected)

	s.log.InfoContext(ctx, "lookup completed",
		slog.String("term", normalized),
		slog.String("source", source),
		slog.Int("senses", len(projected.Senses)),
	)

	return &Result{Entry: projected, TTSEnabled: s.cfg.TTSEnabled}, nil
}

// resolve merges per-request options over the configured defaults.
func (s *Service) resolve(opts Options) (source string, prefs domain.DisplayPrefs, lang string) {
	source = opts.Source
	if source == "" {
		source = s.cfg.PreferredSource
	}

	prefs.Scope = opts.Scope
	if prefs.Scope == "" {
		prefs.Scope = s.cfg.DefinitionScope
	}

	if opts.ExampleCount != nil {
		prefs.ExampleCount = *opts.ExampleCount
	} else {
		prefs.ExampleCount = s.cfg.ExampleCount
	}

	lang = opts.TargetLanguage
	if lang == "" {
		lang = s.cfg.TargetLanguage
	}
	return source, prefs, lang
}

// providerFor dispatches by explicit provider identity. Credential checks
// happen here so a misconfigured source is reported before any fetch.
func (s *Service) providerFor(source string) (entryProvider, error) {
	switch source {
	case SourceCambridge:
		return s.cambridge, nil
	case SourceMerriam:
		if s.cfg.MWAPIKey == "" || s.merriam == nil {
			return nil, fmt.Errorf("source %s: %w", source, ErrMissingAPIKey)
		}
		return s.merriam, nil
	case SourceGemini:
		if s.cfg.GeminiAPIKey == "" || s.gemini == nil {
			return nil, fmt.Errorf("source %s: %w", source, ErrMissingAPIKey)
		}
		return s.gemini, nil
	default:
		return nil, fmt.Errorf("source %q: %w", source, ErrUnknownSource)
	}
}

// enrichAudio borrows pronunciation audio from the secondary provider when
// the primary entry has none. Phrases are never eligible, and any failure
// on this optional path is swallowed: the primary result stands.
func (s *Service) enrichAudio(ctx context.Context, entry *domain.Entry, term, source string) {
	if s.audio == nil || s.cfg.MWAPIKey == "" || source == SourceMerriam {
		return
	}
	if domain.IsPhrase(term) {
		return
	}
	if len(entry.Pronunciations) == 0 || entry.Pronunciations[0].AudioURL != "" {
		return
	}

	pron, err := s.audio.FetchPronunciation(ctx, term)
	if err != nil {
		s.log.WarnContext(ctx, "audio enrichment failed, continuing without audio",
			slog.String("term", term),
			slog.String("error", err.Error()),
		)
		return
	}
	if pron == nil {
		return
	}

	entry.Pronunciations[0].AudioURL = pron.AudioURL
	if entry.Pronunciations[0].PhoneticText == "" {
		entry.Pronunciations[0].PhoneticText = pron.PhoneticText
	}
}

func (s *Service) cachedEntry(ctx context.Context, key string) (*domain.Entry, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "cache read failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var entry domain.Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		s.log.WarnContext(ctx, "cached entry undecodable, treating as miss",
			slog.String("key", key),
		)
		return nil, false
	}
	return &entry, true
}

// storeEntry writes the projected entry to the cache. Write failures are
// logged and never fail the lookup.
func (s *Service) storeEntry(ctx context.Context, key string, entry *domain.Entry) {
	raw, err := json.Marshal(entry)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal projected entry", slog.String("error", err.Error()))
		return
	}
	if err := s.cache.Set(ctx, key, raw); err != nil {
		s.log.WarnContext(ctx, "cache write failed", slog.String("error", err.Error()))
	}
}
