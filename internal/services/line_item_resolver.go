package services

import (
	"context"
	"fmt"
	"strings"

	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/internal/pricing"

	"github.com/google/uuid"
)

// LineItemResolver turns requested lines into priced line items backed by catalog entries
type LineItemResolver interface {
	Resolve(ctx context.Context, tenantID, documentID uuid.UUID, lines []models.LineItemRequest) ([]*models.LineItem, error)
}

type lineItemResolver struct {
	ServiceParams
}

func NewLineItemResolver(params ServiceParams) LineItemResolver {
	return &lineItemResolver{ServiceParams: params}
}

// Resolve processes lines in order. Each line reuses the catalog entry named by id, else the
// entry whose name equals the description, else creates one priced at the line's unit price.
// The catalog price is authoritative once an entry exists.
func (r *lineItemResolver) Resolve(ctx context.Context, tenantID, documentID uuid.UUID, lines []models.LineItemRequest) ([]*models.LineItem, error) {
	items := make([]*models.LineItem, 0, len(lines))
	for i, line := range lines {
		if line.Quantity < 1 {
			return nil, lineError(i, "quantity", "must be at least 1")
		}
		if line.UnitPrice != nil && line.UnitPrice.IsNegative() {
			return nil, lineError(i, "unit_price", "must not be negative")
		}
		if line.UnitPrice != nil && !pricing.FitsScale(*line.UnitPrice, pricing.UnitPricePlaces) {
			return nil, lineError(i, "unit_price", fmt.Sprintf("must have at most %d decimal places", pricing.UnitPricePlaces))
		}

		entry, err := r.catalogEntry(ctx, tenantID, i, line)
		if err != nil {
			return nil, err
		}

		description := strings.TrimSpace(line.Description)
		if description == "" {
			description = entry.Name
		}

		itemID := entry.ID
		items = append(items, &models.LineItem{
			ID:             uuid.New(),
			DocumentID:     documentID,
			BusinessItemID: &itemID,
			Position:       i + 1,
			Description:    description,
			Quantity:       line.Quantity,
			UnitPrice:      entry.DefaultUnitPrice,
			Total:          pricing.LineTotal(line.Quantity, entry.DefaultUnitPrice),
		})
	}
	return items, nil
}

func (r *lineItemResolver) catalogEntry(ctx context.Context, tenantID uuid.UUID, index int, line models.LineItemRequest) (*models.BusinessItem, error) {
	if line.BusinessItemID != nil {
		entry, err := r.BusinessItemRepo.GetByID(ctx, tenantID, *line.BusinessItemID)
		if ierr.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithReportableDetails(map[string]any{"line": index, "business_item_id": line.BusinessItemID.String()}).
				Mark(ierr.ErrNotFound)
		}
		return entry, err
	}

	name := strings.TrimSpace(line.Description)
	if name == "" {
		return nil, lineError(index, "description", "is required without business_item_id")
	}

	entry, err := r.BusinessItemRepo.GetByName(ctx, tenantID, name)
	if err == nil {
		return entry, nil
	}
	if !ierr.IsNotFound(err) {
		return nil, err
	}

	if line.UnitPrice == nil {
		return nil, lineError(index, "unit_price", "is required for a new catalog item")
	}
	created, err := r.BusinessItemRepo.CreateOrGet(ctx, &models.BusinessItem{
		ID:                uuid.New(),
		BusinessProfileID: tenantID,
		Name:              name,
		DefaultUnitPrice:  *line.UnitPrice,
	})
	if err != nil {
		return nil, err
	}
	r.Logger.Debugw("created catalog item from line", "tenant_id", tenantID, "business_item_id", created.ID, "name", name)
	return created, nil
}

func lineError(index int, field, problem string) error {
	return ierr.NewError(fmt.Sprintf("invalid line %d", index)).
		WithHintf("items[%d].%s %s", index, field, problem).
		WithReportableDetails(map[string]any{fmt.Sprintf("items[%d].%s", index, field): problem}).
		Mark(ierr.ErrValidation)
}
