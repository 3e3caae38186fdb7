package repositories

import (
	"context"
	"fmt"

	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/pkg/database"

	"github.com/google/uuid"
)

// SnapshotRepository is append-only: snapshots are inserted with their document and
// removed only by the document's cascade delete.
type SnapshotRepository interface {
	CreateBusinessSnapshot(ctx context.Context, kind models.DocumentKind, snap *models.BusinessSnapshot) error
	CreateClientSnapshot(ctx context.Context, kind models.DocumentKind, snap *models.ClientSnapshot) error
	GetBusinessSnapshot(ctx context.Context, kind models.DocumentKind, documentID uuid.UUID) (*models.BusinessSnapshot, error)
	GetClientSnapshot(ctx context.Context, kind models.DocumentKind, documentID uuid.UUID) (*models.ClientSnapshot, error)
}

type snapshotRepo struct {
	db *database.DB
}

func NewSnapshotRepo(db *database.DB) SnapshotRepository {
	return &snapshotRepo{db: db}
}

func (r *snapshotRepo) CreateBusinessSnapshot(ctx context.Context, kind models.DocumentKind, snap *models.BusinessSnapshot) error {
	t, err := tablesFor(kind)
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrValidation)
	}

	args := []any{snap.ID, snap.DocumentID}
	args = append(args, businessDetailsArgs(snap.BusinessDetails)...)
	args = append(args, snap.CreatedAt)

	query := fmt.Sprintf(`INSERT INTO %s (id, document_id, %s, created_at) VALUES (%s)`,
		t.businessSnapshots, businessDetailsColumns, placeholders(1, len(args)))

	_, err = r.db.Querier(ctx).Exec(ctx, query, args...)
	return translateError(err, "business snapshot")
}

func (r *snapshotRepo) CreateClientSnapshot(ctx context.Context, kind models.DocumentKind, snap *models.ClientSnapshot) error {
	t, err := tablesFor(kind)
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrValidation)
	}

	args := []any{snap.ID, snap.DocumentID}
	args = append(args, clientDetailsArgs(snap.ClientDetails)...)
	args = append(args, snap.CreatedAt)

	query := fmt.Sprintf(`INSERT INTO %s (id, document_id, %s, created_at) VALUES (%s)`,
		t.clientSnapshots, clientDetailsColumns, placeholders(1, len(args)))

	_, err = r.db.Querier(ctx).Exec(ctx, query, args...)
	return translateError(err, "client snapshot")
}

func (r *snapshotRepo) GetBusinessSnapshot(ctx context.Context, kind models.DocumentKind, documentID uuid.UUID) (*models.BusinessSnapshot, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrValidation)
	}

	query := fmt.Sprintf(`SELECT id, document_id, %s, created_at FROM %s WHERE document_id = $1`,
		businessDetailsColumns, t.businessSnapshots)

	s := &models.BusinessSnapshot{}
	dest := []any{&s.ID, &s.DocumentID}
	dest = append(dest, businessDetailsDest(&s.BusinessDetails)...)
	dest = append(dest, &s.CreatedAt)

	if err := r.db.Querier(ctx).QueryRow(ctx, query, documentID).Scan(dest...); err != nil {
		return nil, translateError(err, "business snapshot")
	}
	return s, nil
}

func (r *snapshotRepo) GetClientSnapshot(ctx context.Context, kind models.DocumentKind, documentID uuid.UUID) (*models.ClientSnapshot, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrValidation)
	}

	query := fmt.Sprintf(`SELECT id, document_id, %s, created_at FROM %s WHERE document_id = $1`,
		clientDetailsColumns, t.clientSnapshots)

	s := &models.ClientSnapshot{}
	dest := []any{&s.ID, &s.DocumentID}
	dest = append(dest, clientDetailsDest(&s.ClientDetails)...)
	dest = append(dest, &s.CreatedAt)

	if err := r.db.Querier(ctx).QueryRow(ctx, query, documentID).Scan(dest...); err != nil {
		return nil, translateError(err, "client snapshot")
	}
	return s, nil
}
