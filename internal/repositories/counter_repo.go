package repositories

import (
	"context"

	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/pkg/database"

	"github.com/google/uuid"
)

type CounterRepository interface {
	// GetOrCreateForUpdate returns the counter row locked until the surrounding transaction ends.
	// A missing row is created with lastNumber = initial.
	GetOrCreateForUpdate(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind, initial int64) (*models.DocumentCounter, error)
	Update(ctx context.Context, counter *models.DocumentCounter) error
	Get(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) (*models.DocumentCounter, error)
}

type counterRepo struct {
	db *database.DB
}

func NewCounterRepo(db *database.DB) CounterRepository {
	return &counterRepo{db: db}
}

func (r *counterRepo) GetOrCreateForUpdate(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind, initial int64) (*models.DocumentCounter, error) {
	if !database.InTx(ctx) {
		return nil, ierr.NewError("counter lock requires a transaction").Mark(ierr.ErrSystem)
	}
	q := r.db.Querier(ctx)

	insert := `
		INSERT INTO document_counters (business_profile_id, kind, last_number, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (business_profile_id, kind) DO NOTHING
	`
	if _, err := q.Exec(ctx, insert, tenantID, kind, initial); err != nil {
		return nil, translateError(err, "counter")
	}

	query := `
		SELECT business_profile_id, kind, last_number, fiscal_year_label, fiscal_year_start, fiscal_year_end, updated_at
		FROM document_counters
		WHERE business_profile_id = $1 AND kind = $2
		FOR UPDATE
	`
	c := &models.DocumentCounter{}
	err := q.QueryRow(ctx, query, tenantID, kind).Scan(
		&c.BusinessProfileID, &c.Kind, &c.LastNumber, &c.FiscalYearLabel, &c.FiscalYearStart, &c.FiscalYearEnd, &c.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "counter")
	}
	return c, nil
}

func (r *counterRepo) Update(ctx context.Context, counter *models.DocumentCounter) error {
	query := `
		UPDATE document_counters
		SET last_number = $1, fiscal_year_label = $2, fiscal_year_start = $3, fiscal_year_end = $4, updated_at = NOW()
		WHERE business_profile_id = $5 AND kind = $6
	`
	tag, err := r.db.Querier(ctx).Exec(ctx, query,
		counter.LastNumber, counter.FiscalYearLabel, counter.FiscalYearStart, counter.FiscalYearEnd,
		counter.BusinessProfileID, counter.Kind,
	)
	if err != nil {
		return translateError(err, "counter")
	}
	if tag.RowsAffected() == 0 {
		return ierr.NewError("counter row missing").WithHint("counter not found").Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *counterRepo) Get(ctx context.Context, tenantID uuid.UUID, kind models.DocumentKind) (*models.DocumentCounter, error) {
	query := `
		SELECT business_profile_id, kind, last_number, fiscal_year_label, fiscal_year_start, fiscal_year_end, updated_at
		FROM document_counters
		WHERE business_profile_id = $1 AND kind = $2
	`
	c := &models.DocumentCounter{}
	err := r.db.Querier(ctx).QueryRow(ctx, query, tenantID, kind).Scan(
		&c.BusinessProfileID, &c.Kind, &c.LastNumber, &c.FiscalYearLabel, &c.FiscalYearStart, &c.FiscalYearEnd, &c.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "counter")
	}
	return c, nil
}
