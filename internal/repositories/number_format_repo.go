package repositories

import (
	"context"

	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/pkg/database"

	"github.com/google/uuid"
)

type NumberFormatRepository interface {
	Get(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) (*models.NumberFormat, error)
	// Create fails with ErrAlreadyExists when the tenant already has a format for the kind
	Create(ctx context.Context, format *models.NumberFormat) error
	// CreateIfAbsent inserts format unless one exists; it never fails on a duplicate
	CreateIfAbsent(ctx context.Context, format *models.NumberFormat) error
	Update(ctx context.Context, format *models.NumberFormat) error
}

type numberFormatRepo struct {
	db *database.DB
}

func NewNumberFormatRepo(db *database.DB) NumberFormatRepository {
	return &numberFormatRepo{db: db}
}

const numberFormatColumns = `business_profile_id, kind, prefix, separator, padding_digits, start_number, include_year,
	year_separator, is_custom_format, use_fiscal_year, fiscal_year_format, reset_counter_with_fiscal_year, created_at, updated_at`

func (r *numberFormatRepo) Get(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) (*models.NumberFormat, error) {
	query := `SELECT ` + numberFormatColumns + `
		FROM document_number_formats
		WHERE business_profile_id = $1 AND kind = $2
	`
	f := &models.NumberFormat{}
	err := r.db.Querier(ctx).QueryRow(ctx, query, tenantID, kind).Scan(
		&f.BusinessProfileID, &f.Kind, &f.Prefix, &f.Separator, &f.PaddingDigits, &f.StartNumber, &f.IncludeYear,
		&f.YearSeparator, &f.IsCustomFormat, &f.UseFiscalYear, &f.FiscalYearFormat, &f.ResetCounterWithFiscalYear,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "number format")
	}
	return f, nil
}

func (r *numberFormatRepo) Create(ctx context.Context, format *models.NumberFormat) error {
	query := `
		INSERT INTO document_number_formats (business_profile_id, kind, prefix, separator, padding_digits, start_number,
			include_year, year_separator, is_custom_format, use_fiscal_year, fiscal_year_format, reset_counter_with_fiscal_year,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	_, err := r.db.Querier(ctx).Exec(ctx, query, r.args(format)...)
	return translateError(err, "number format")
}

func (r *numberFormatRepo) CreateIfAbsent(ctx context.Context, format *models.NumberFormat) error {
	query := `
		INSERT INTO document_number_formats (business_profile_id, kind, prefix, separator, padding_digits, start_number,
			include_year, year_separator, is_custom_format, use_fiscal_year, fiscal_year_format, reset_counter_with_fiscal_year,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		ON CONFLICT (business_profile_id, kind) DO NOTHING
	`
	_, err := r.db.Querier(ctx).Exec(ctx, query, r.args(format)...)
	return translateError(err, "number format")
}

func (r *numberFormatRepo) Update(ctx context.Context, format *models.NumberFormat) error {
	query := `
		UPDATE document_number_formats
		SET prefix = $3, separator = $4, padding_digits = $5, start_number = $6, include_year = $7, year_separator = $8,
			is_custom_format = $9, use_fiscal_year = $10, fiscal_year_format = $11, reset_counter_with_fiscal_year = $12,
			updated_at = NOW()
		WHERE business_profile_id = $1 AND kind = $2
	`
	tag, err := r.db.Querier(ctx).Exec(ctx, query, r.args(format)...)
	if err != nil {
		return translateError(err, "number format")
	}
	if tag.RowsAffected() == 0 {
		return ierr.NewError("no number format row updated").WithHint("number format not found").Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *numberFormatRepo) args(f *models.NumberFormat) []any {
	return []any{
		f.BusinessProfileID, f.Kind, f.Prefix, f.Separator, f.PaddingDigits, f.StartNumber, f.IncludeYear,
		f.YearSeparator, f.IsCustomFormat, f.UseFiscalYear, f.FiscalYearFormat, f.ResetCounterWithFiscalYear,
	}
}
