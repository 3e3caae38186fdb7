package repositories

import (
	"context"
	"errors"

	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BusinessItemRepository interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.BusinessItem, error)
	GetByName(ctx context.Context, tenantID uuid.UUID, name string) (*models.BusinessItem, error)
	// CreateOrGet inserts item, or returns the entry a concurrent caller created under the same name
	CreateOrGet(ctx context.Context, item *models.BusinessItem) (*models.BusinessItem, error)
}

type businessItemRepo struct {
	db *database.DB
}

func NewBusinessItemRepo(db *database.DB) BusinessItemRepository {
	return &businessItemRepo{db: db}
}

func (r *businessItemRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.BusinessItem, error) {
	query := `
		SELECT id, business_profile_id, name, description, default_unit_price, created_at, updated_at
		FROM business_items
		WHERE business_profile_id = $1 AND id = $2
	`
	return r.scanOne(ctx, query, tenantID, id)
}

func (r *businessItemRepo) GetByName(ctx context.Context, tenantID uuid.UUID, name string) (*models.BusinessItem, error) {
	query := `
		SELECT id, business_profile_id, name, description, default_unit_price, created_at, updated_at
		FROM business_items
		WHERE business_profile_id = $1 AND name = $2
	`
	return r.scanOne(ctx, query, tenantID, name)
}

func (r *businessItemRepo) CreateOrGet(ctx context.Context, item *models.BusinessItem) (*models.BusinessItem, error) {
	query := `
		INSERT INTO business_items (id, business_profile_id, name, description, default_unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (business_profile_id, name) DO NOTHING
		RETURNING created_at, updated_at
	`
	err := r.db.Querier(ctx).QueryRow(ctx, query,
		item.ID, item.BusinessProfileID, item.Name, item.Description, item.DefaultUnitPrice,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return r.GetByName(ctx, item.BusinessProfileID, item.Name)
	}
	if err != nil {
		return nil, translateError(err, "business item")
	}
	return item, nil
}

func (r *businessItemRepo) scanOne(ctx context.Context, query string, args ...any) (*models.BusinessItem, error) {
	item := &models.BusinessItem{}
	err := r.db.Querier(ctx).QueryRow(ctx, query, args...).Scan(
		&item.ID, &item.BusinessProfileID, &item.Name, &item.Description, &item.DefaultUnitPrice, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "business item")
	}
	return item, nil
}
