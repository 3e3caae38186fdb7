package repositories

import (
	"context"

	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/pkg/database"

	"github.com/google/uuid"
)

type ClientRepository interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Client, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
}

type clientRepo struct {
	db *database.DB
}

func NewClientRepo(db *database.DB) ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Client, error) {
	query := `
		SELECT id, business_profile_id, ` + clientDetailsColumns + `, created_at, updated_at
		FROM clients
		WHERE business_profile_id = $1 AND id = $2
	`
	return r.scanOne(ctx, query, tenantID, id)
}

func (r *clientRepo) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*models.Client, error) {
	query := `
		SELECT id, business_profile_id, ` + clientDetailsColumns + `, created_at, updated_at
		FROM clients
		WHERE business_profile_id = $1 AND email = $2
	`
	return r.scanOne(ctx, query, tenantID, email)
}

func (r *clientRepo) Create(ctx context.Context, client *models.Client) error {
	query := `
		INSERT INTO clients (id, business_profile_id, ` + clientDetailsColumns + `, created_at, updated_at)
		VALUES ($1, $2, ` + placeholders(3, 7) + `, $10, $11)
	`
	args := []any{client.ID, client.BusinessProfileID}
	args = append(args, clientDetailsArgs(client.ClientDetails)...)
	args = append(args, client.CreatedAt, client.UpdatedAt)

	_, err := r.db.Querier(ctx).Exec(ctx, query, args...)
	return translateError(err, "client")
}

func (r *clientRepo) scanOne(ctx context.Context, query string, args ...any) (*models.Client, error) {
	c := &models.Client{}
	dest := []any{&c.ID, &c.BusinessProfileID}
	dest = append(dest, clientDetailsDest(&c.ClientDetails)...)
	dest = append(dest, &c.CreatedAt, &c.UpdatedAt)

	if err := r.db.Querier(ctx).QueryRow(ctx, query, args...).Scan(dest...); err != nil {
		return nil, translateError(err, "client")
	}
	return c, nil
}
