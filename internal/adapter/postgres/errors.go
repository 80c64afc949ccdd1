package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/liammahoney/site-api/internal/domain"
)

// pgCodes maps the SQLSTATE codes the project store can trigger to domain errors.
var pgCodes = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"22001": domain.ErrValidation,    // string_data_right_truncation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

// MapError translates a pgx error for the row identified by entity and id
// into a domain error. Context cancellation is wrapped but never mapped, and
// unknown errors keep their original chain.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}
	return fmt.Errorf("%s %s: %w", entity, id, classify(err))
}

func classify(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodes[pgErr.Code]; ok {
			return mapped
		}
	}
	return err
}
