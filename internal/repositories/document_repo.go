package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DocumentRepository stores invoice and quotation headers. Snapshots and line items
// have their own repositories.
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) (*models.Document, error)
	// GetByIDForUpdate locks the document row until the surrounding transaction ends
	GetByIDForUpdate(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) (*models.Document, error)
	List(ctx context.Context, kind models.DocumentKind, tenantID uuid.UUID, limit, offset int) ([]*models.Document, error)
	// Update writes the editable header fields and the monetary aggregates
	Update(ctx context.Context, doc *models.Document) error
	UpdateStatus(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID, status string) error
	Delete(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) error
}

type documentRepo struct {
	db *database.DB
}

func NewDocumentRepo(db *database.DB) DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) selectColumns(t documentTables) string {
	link := "NULL::uuid"
	if t.hasQuotationLink {
		link = "quotation_id"
	}
	return fmt.Sprintf(`id, business_profile_id, client_id, %s, title, number, issue_date, %s, status, currency,
		sub_total, tax_rate, tax, discount, total, notes, terms, created_at, updated_at`, link, t.deadlineColumn)
}

func (r *documentRepo) scan(row pgx.Row, kind models.DocumentKind) (*models.Document, error) {
	d := &models.Document{Kind: kind}
	var deadline *time.Time
	err := row.Scan(
		&d.ID, &d.BusinessProfileID, &d.ClientID, &d.QuotationID, &d.Title, &d.Number, &d.IssueDate, &deadline,
		&d.Status, &d.Currency, &d.SubTotal, &d.TaxRate, &d.Tax, &d.Discount, &d.Total, &d.Notes, &d.Terms,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if deadline != nil {
		d.SetDeadline(*deadline)
	}
	return d, nil
}

func deadlineArg(doc *models.Document) *time.Time {
	if doc.Kind == models.DocumentKindQuotation {
		return doc.ExpirationDate
	}
	return doc.DueDate
}

func (r *documentRepo) Create(ctx context.Context, doc *models.Document) error {
	t, err := tablesFor(doc.Kind)
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrValidation)
	}

	columns := []string{"id", "business_profile_id", "client_id"}
	args := []any{doc.ID, doc.BusinessProfileID, doc.ClientID}
	if t.hasQuotationLink {
		columns = append(columns, "quotation_id")
		args = append(args, doc.QuotationID)
	}
	columns = append(columns, "title", "number", "issue_date", t.deadlineColumn, "status", "currency",
		"sub_total", "tax_rate", "tax", "discount", "total", "notes", "terms", "created_at", "updated_at")
	args = append(args, doc.Title, doc.Number, doc.IssueDate, deadlineArg(doc), doc.Status, doc.Currency,
		doc.SubTotal, doc.TaxRate, doc.Tax, doc.Discount, doc.Total, doc.Notes, doc.Terms, doc.CreatedAt, doc.UpdatedAt)

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		t.documents, strings.Join(columns, ", "), placeholders(1, len(args)))

	_, err = r.db.Querier(ctx).Exec(ctx, query, args...)
	return translateError(err, doc.Kind.String())
}

func (r *documentRepo) GetByID(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) (*models.Document, error) {
	return r.get(ctx, kind, tenantID, id, false)
}

func (r *documentRepo) GetByIDForUpdate(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) (*models.Document, error) {
	return r.get(ctx, kind, tenantID, id, true)
}

func (r *documentRepo) get(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID, lock bool) (*models.Document, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrValidation)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE business_profile_id = $1 AND id = $2`, r.selectColumns(t), t.documents)
	if lock {
		query += ` FOR UPDATE`
	}

	doc, err := r.scan(r.db.Querier(ctx).QueryRow(ctx, query, tenantID, id), kind)
	if err != nil {
		return nil, translateError(err, kind.String())
	}
	return doc, nil
}

func (r *documentRepo) List(ctx context.Context, kind models.DocumentKind, tenantID uuid.UUID, limit, offset int) ([]*models.Document, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, ierr.WithError(err).Mark(ierr.ErrValidation)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE business_profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, r.selectColumns(t), t.documents)

	rows, err := r.db.Querier(ctx).Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, translateError(err, kind.String())
	}
	defer rows.Close()

	docs := []*models.Document{}
	for rows.Next() {
		doc, err := r.scan(rows, kind)
		if err != nil {
			return nil, translateError(err, kind.String())
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, kind.String())
	}
	return docs, nil
}

func (r *documentRepo) Update(ctx context.Context, doc *models.Document) error {
	t, err := tablesFor(doc.Kind)
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrValidation)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, issue_date = $2, %s = $3, currency = $4, sub_total = $5, tax_rate = $6, tax = $7,
			discount = $8, total = $9, notes = $10, terms = $11, updated_at = $12
		WHERE business_profile_id = $13 AND id = $14`, t.documents, t.deadlineColumn)

	tag, err := r.db.Querier(ctx).Exec(ctx, query,
		doc.Title, doc.IssueDate, deadlineArg(doc), doc.Currency, doc.SubTotal, doc.TaxRate, doc.Tax,
		doc.Discount, doc.Total, doc.Notes, doc.Terms, doc.UpdatedAt, doc.BusinessProfileID, doc.ID,
	)
	if err != nil {
		return translateError(err, doc.Kind.String())
	}
	if tag.RowsAffected() == 0 {
		return notFound(doc.Kind)
	}
	return nil
}

func (r *documentRepo) UpdateStatus(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID, status string) error {
	t, err := tablesFor(kind)
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrValidation)
	}

	query := fmt.Sprintf(`UPDATE %s SET status = $1, updated_at = NOW() WHERE business_profile_id = $2 AND id = $3`, t.documents)
	tag, err := r.db.Querier(ctx).Exec(ctx, query, status, tenantID, id)
	if err != nil {
		return translateError(err, kind.String())
	}
	if tag.RowsAffected() == 0 {
		return notFound(kind)
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) error {
	t, err := tablesFor(kind)
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrValidation)
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE business_profile_id = $1 AND id = $2`, t.documents)
	tag, err := r.db.Querier(ctx).Exec(ctx, query, tenantID, id)
	if err != nil {
		return translateError(err, kind.String())
	}
	if tag.RowsAffected() == 0 {
		return notFound(kind)
	}
	return nil
}

func notFound(kind models.DocumentKind) error {
	return ierr.NewError("no rows affected").
		WithHintf("%s not found", kind).
		Mark(ierr.ErrNotFound)
}
