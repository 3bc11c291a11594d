package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wordpeek/wordpeek-backend/internal/domain"
)

// mapError converts pgx errors to domain errors.
// context.DeadlineExceeded and context.Canceled pass through unmapped.
func mapError(err error, op, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %q: %w", op, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %q: %w", op, key, domain.ErrNotFound)
	}

	return fmt.Errorf("%s %q: %w", op, key, err)
}
