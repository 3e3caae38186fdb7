package repositories

import (
	"context"

	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/pkg/database"

	"github.com/google/uuid"
)

// BusinessProfileRepository reads tenant profiles. Profile maintenance lives outside this service.
type BusinessProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.BusinessProfile, error)
	GetOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

type businessProfileRepo struct {
	db *database.DB
}

func NewBusinessProfileRepo(db *database.DB) BusinessProfileRepository {
	return &businessProfileRepo{db: db}
}

func (r *businessProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.BusinessProfile, error) {
	query := `
		SELECT id, user_id, ` + businessDetailsColumns + `, fiscal_year_start_month, fiscal_year_start_day, created_at, updated_at
		FROM business_profiles
		WHERE id = $1
	`
	p := &models.BusinessProfile{}
	dest := []any{&p.ID, &p.UserID}
	dest = append(dest, businessDetailsDest(&p.BusinessDetails)...)
	dest = append(dest, &p.FiscalYearStartMonth, &p.FiscalYearStartDay, &p.CreatedAt, &p.UpdatedAt)

	if err := r.db.Querier(ctx).QueryRow(ctx, query, id).Scan(dest...); err != nil {
		return nil, translateError(err, "business profile")
	}
	return p, nil
}

func (r *businessProfileRepo) GetOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	var ownerID uuid.UUID
	err := r.db.Querier(ctx).QueryRow(ctx, `SELECT user_id FROM business_profiles WHERE id = $1`, id).Scan(&ownerID)
	if err != nil {
		return uuid.Nil, translateError(err, "business profile")
	}
	return ownerID, nil
}
