package lookup

import "errors"

// Service-level sentinel errors surfaced to the transport.
var (
	// ErrNotFound covers both an unknown term and a provider payload that
	// could not be represented as an entry; callers cannot tell these
	// apart and are not meant to.
	ErrNotFound = errors.New("definition not found or invalid format")

	// ErrMissingAPIKey is reported before any fetch when the selected
	// source requires a credential that is not configured.
	ErrMissingAPIKey = errors.New("API key for the selected source is not configured")

	// ErrUnknownSource is reported for a source this build cannot
	// dispatch to.
	ErrUnknownSource = errors.New("unknown dictionary source")
)
