// Package merriam adapts the Merriam-Webster collegiate API into the
// canonical entry model. It also serves as the audio-enrichment source for
// entries whose primary provider never knows pronunciation audio.
package merriam

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

// Provider fetches and adapts entries from the Merriam-Webster API.
type Provider struct {
	baseURL      string
	audioBaseURL string
	apiKey       string
	httpClient   *http.Client
	log          *slog.Logger
}

// NewProvider creates a Provider. The API key is the caller's concern: the
// lookup service reports a configuration error before ever calling a
// keyless Provider.
func NewProvider(baseURL, audioBaseURL, apiKey string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:      baseURL,
		audioBaseURL: audioBaseURL,
		apiKey:       apiKey,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		log:          logger.With("adapter", "merriam"),
	}
}

// FetchEntry fetches and adapts a dictionary entry for the given term.
// Returns nil, nil when the payload is not representable as an Entry
// (unknown word, suggestion list, missing headword). The target language is
// ignored: this provider carries no translations.
func (p *Provider) FetchEntry(ctx context.Context, term, _ string) (*domain.Entry, error) {
	records, err := p.fetchRecords(ctx, term)
	if err != nil {
		return nil, err
	}
	if records == nil {
		return nil, nil
	}

	entry := adaptEntries(records, p.audioBaseURL)

	p.log.DebugContext(ctx, "merriam response adapted",
		slog.String("term", term),
		slog.Bool("representable", entry != nil),
	)
	return entry, nil
}

// FetchPronunciation fetches a term's payload purely to borrow its
// pronunciation data; definitions are never adopted from this path.
// Returns nil, nil when the payload carries no pronunciation.
func (p *Provider) FetchPronunciation(ctx context.Context, term string) (*domain.Pronunciation, error) {
	records, err := p.fetchRecords(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return adaptRecordPronunciation(records[0], p.audioBaseURL), nil
}

// fetchRecords performs the HTTP fetch and decodes the record array.
// A payload that is valid JSON but not a record array (the API answers
// unknown words with a plain list of spelling suggestions) yields nil
// records and no error.
func (p *Provider) fetchRecords(ctx context.Context, term string) ([]apiEntry, error) {
	reqURL := fmt.Sprintf("%s/%s?key=%s", p.baseURL, url.PathEscape(term), url.QueryEscape(p.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("merriam: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "merriam request failed",
			slog.String("term", term),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("merriam: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("merriam: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("merriam: read body: %w", err)
	}

	var records []apiEntry
	if err := json.Unmarshal(body, &records); err != nil {
		p.log.DebugContext(ctx, "merriam payload not a record array",
			slog.String("term", term),
		)
		return nil, nil
	}
	return records, nil
}
