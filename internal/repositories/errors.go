package repositories

import (
	"errors"

	ierr "github.com/gigsters-app/gigsters/internal/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgStringTooLong       = "22001"
)

// unique constraints mapped to the request field they guard
var constraintFields = map[string]string{
	"invoices_profile_number_key":     "number",
	"quotations_profile_number_key":   "number",
	"clients_profile_email_key":       "email",
	"business_items_profile_name_key": "name",
	"document_number_formats_pkey":    "kind",
	"document_counters_pkey":          "kind",
}

// translateError maps storage errors onto the domain kinds.
// entity names the resource in caller-facing hints.
func translateError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ierr.WithError(err).
			WithHintf("%s not found", entity).
			Mark(ierr.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return ierr.WithError(err).
			WithHintf("%s references a record that does not exist", entity).
			Mark(ierr.ErrNotFound)
	}
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		field, ok := constraintFields[pgErr.ConstraintName]
		if !ok {
			field = pgErr.ConstraintName
		}
		return ierr.WithError(err).
			WithHintf("%s with this %s already exists", entity, field).
			WithReportableDetails(map[string]any{"field": field}).
			Mark(ierr.ErrAlreadyExists)
	}

	if errors.As(err, &pgErr) && pgErr.Code == pgStringTooLong {
		return ierr.WithError(err).
			WithHintf("%s has a value that is too long", entity).
			Mark(ierr.ErrValidation)
	}

	return ierr.WithError(err).
		WithMessage(entity).
		Mark(ierr.ErrDatabase)
}
