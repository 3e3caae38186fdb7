package repositories

import (
	"context"
	"fmt"

	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LineItemRepository replaces a document's lines wholesale; there are no partial edits
type LineItemRepository interface {
	CreateBatch(ctx context.Context, kind models.DocumentKind, items []*models.LineItem) error
	ListByDocument(ctx context.Context, kind models.DocumentKind, documentID uuid.UUID) ([]*models.LineItem, error)
	DeleteByDocument(ctx context.Context, kind models.DocumentKind, documentID uuid.UUID) error
}

type lineItemRepo struct {
	db *database.DB
}

func NewLineItemRepo(db *database.DB) LineItemRepository {
	return &lineItemRepo{db: db}
}

func (r *lineItemRepo) CreateBatch(ctx context.Context, kind models.DocumentKind, items []*models.LineItem) error {
	t, err := tablesFor(kind)
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrValidation)
	}
	if len(items) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, document_id, business_item_id, position, description, quantity, unit_price, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, t.items)

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query,
			item.ID, item.DocumentID, item.BusinessItemID, item.Position, item.Description, item.Quantity, item.UnitPrice, item.Total,
		)
	}
	// Close drains every queued insert and reports the first failure
	return translateError(r.db.Querier(ctx).SendBatch(ctx, batch).Close(), "line item")
}

func (r *lineItemRepo) ListByDocument(ctx context.Context, kind models.DocumentKind, documentID uuid.UUID) ([]*models.LineItem, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrValidation)
	}

	query := fmt.Sprintf(`
		SELECT id, document_id, business_item_id, position, description, quantity, unit_price, total
		FROM %s
		WHERE document_id = $1
		ORDER BY position`, t.items)

	rows, err := r.db.Querier(ctx).Query(ctx, query, documentID)
	if err != nil {
		return nil, translateError(err, "line item")
	}
	defer rows.Close()

	items := []*models.LineItem{}
	for rows.Next() {
		item := &models.LineItem{}
		if err := rows.Scan(
			&item.ID, &item.DocumentID, &item.BusinessItemID, &item.Position, &item.Description, &item.Quantity, &item.UnitPrice, &item.Total,
		); err != nil {
			return nil, translateError(err, "line item")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "line item")
	}
	return items, nil
}

func (r *lineItemRepo) DeleteByDocument(ctx context.Context, kind models.DocumentKind, documentID uuid.UUID) error {
	t, err := tablesFor(kind)
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrValidation)
	}

	_, err = r.db.Querier(ctx).Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE document_id = $1`, t.items), documentID)
	return translateError(err, "line item")
}
