// Package cambridge consumes the companion scraper service, whose payload
// already matches the canonical entry shape. Adaptation is identity plus
// validation.
package cambridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/wordpeek/wordpeek-backend/internal/domain"
)

// Provider fetches pre-normalized entries.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider for the given scraper base URL.
func NewProvider(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "cambridge"),
	}
}

// FetchEntry fetches an entry for the given term. Returns nil, nil when
// the term is unknown (HTTP 404) or the payload fails validation. The
// target language is ignored: translations come pre-populated or not at
// all from this source.
func (p *Provider) FetchEntry(ctx context.Context, term, _ string) (*domain.Entry, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(term)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("cambridge: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "cambridge request failed",
			slog.String("term", term),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("cambridge: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cambridge: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cambridge: read body: %w", err)
	}

	var entry domain.Entry
	if err := json.Unmarshal(body, &entry); err != nil {
		p.log.DebugContext(ctx, "cambridge payload not decodable", slog.String("term", term))
		return nil, nil
	}

	// Pre-normalized does not mean trusted: the canonical invariants are
	// still enforced before the entry enters the pipeline.
	if err := entry.Validate(); err != nil {
		p.log.DebugContext(ctx, "cambridge payload failed validation",
			slog.String("term", term),
			slog.String("error", err.Error()),
		)
		return nil, nil
	}

	if entry.Inflections == nil {
		entry.Inflections = []string{}
	}
	if len(entry.Pronunciations) == 0 {
		entry.Pronunciations = []domain.Pronunciation{{LanguageTag: "us"}}
	}

	return &entry, nil
}
