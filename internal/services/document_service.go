package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gigsters-app/gigsters/internal/common"
	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/internal/pricing"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DefaultPaymentTermDays is the gap between issue date and deadline when none is given
const DefaultPaymentTermDays = 30

// DocumentService is the transactional use case layer for invoices and quotations.
// Authorization happens before these calls; the service trusts tenantID.
type DocumentService interface {
	CreateInvoice(ctx context.Context, tenantID uuid.UUID, req *models.CreateDocumentRequest) (*models.Document, error)
	CreateQuotation(ctx context.Context, tenantID uuid.UUID, req *models.CreateDocumentRequest) (*models.Document, error)
	// ConvertQuotationToInvoice issues a new invoice from an ACCEPTED quotation and marks it INVOICED
	ConvertQuotationToInvoice(ctx context.Context, tenantID, quotationID uuid.UUID) (*models.Document, error)

	Get(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) (*models.Document, error)
	List(ctx context.Context, kind models.DocumentKind, tenantID uuid.UUID, limit, offset int) ([]*models.Document, error)
	Update(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID, req *models.UpdateDocumentRequest) (*models.Document, error)
	UpdateStatus(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID, status string) (*models.Document, error)
	Delete(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) error
}

type documentService struct {
	ServiceParams
	numbering NumberingService
	resolver  LineItemResolver
}

func NewDocumentService(params ServiceParams, numbering NumberingService, resolver LineItemResolver) DocumentService {
	return &documentService{
		ServiceParams: params,
		numbering:     numbering,
		resolver:      resolver,
	}
}

func (s *documentService) CreateInvoice(ctx context.Context, tenantID uuid.UUID, req *models.CreateDocumentRequest) (*models.Document, error) {
	return s.create(ctx, models.DocumentKindInvoice, tenantID, req, nil)
}

func (s *documentService) CreateQuotation(ctx context.Context, tenantID uuid.UUID, req *models.CreateDocumentRequest) (*models.Document, error) {
	return s.create(ctx, models.DocumentKindQuotation, tenantID, req, nil)
}

func (s *documentService) create(ctx context.Context, kind models.DocumentKind, tenantID uuid.UUID, req *models.CreateDocumentRequest, quotationID *uuid.UUID) (*models.Document, error) {
	now := s.now()

	status, err := initialStatus(kind, req.Status)
	if err != nil {
		return nil, err
	}
	if err := validateRates(req.TaxRate, req.Discount); err != nil {
		return nil, err
	}
	issueDate, deadline, err := documentDates(kind, req.IssueDate, req.Deadline(kind), now)
	if err != nil {
		return nil, err
	}

	var created *models.Document
	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		profile, err := s.ProfileRepo.GetByID(ctx, tenantID)
		if err != nil {
			return err
		}

		number, err := s.numbering.NextNumber(ctx, profile, kind)
		if err != nil {
			return err
		}

		client, err := s.resolveClient(ctx, tenantID, req, now)
		if err != nil {
			return err
		}

		doc := &models.Document{
			ID:                uuid.New(),
			Kind:              kind,
			BusinessProfileID: tenantID,
			ClientID:          &client.ID,
			QuotationID:       quotationID,
			Title:             strings.TrimSpace(req.Title),
			Number:            number,
			IssueDate:         issueDate,
			Status:            status,
			Currency:          currencyOrDefault(req.Currency),
			SubTotal:          decimal.Zero,
			TaxRate:           lo.FromPtrOr(req.TaxRate, decimal.Zero),
			Tax:               decimal.Zero,
			Discount:          lo.FromPtrOr(req.Discount, decimal.Zero),
			Total:             decimal.Zero,
			Notes:             req.Notes,
			Terms:             req.Terms,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		doc.SetDeadline(deadline)
		if err := s.DocumentRepo.Create(ctx, doc); err != nil {
			return err
		}

		business := models.CaptureBusiness(doc.ID, profile)
		business.CreatedAt = now
		if err := s.SnapshotRepo.CreateBusinessSnapshot(ctx, kind, &business); err != nil {
			return err
		}
		recipient := models.CaptureClient(doc.ID, client)
		recipient.CreatedAt = now
		if err := s.SnapshotRepo.CreateClientSnapshot(ctx, kind, &recipient); err != nil {
			return err
		}

		items, err := s.resolver.Resolve(ctx, tenantID, doc.ID, req.Items)
		if err != nil {
			return err
		}
		if err := s.LineItemRepo.CreateBatch(ctx, kind, items); err != nil {
			return err
		}

		pricing.Apply(doc, items)
		if err := s.DocumentRepo.Update(ctx, doc); err != nil {
			return err
		}

		created, err = s.load(ctx, kind, tenantID, doc.ID)
		return err
	})
	if err != nil {
		s.Logger.Warnw("document creation rolled back", "tenant_id", tenantID, "kind", kind, "error", err)
		return nil, wrapUnexpected(err, fmt.Sprintf("failed to create %s", kind))
	}

	s.Logger.Infow("document created", "tenant_id", tenantID, "kind", kind,
		"document_id", created.ID, "number", created.Number, "total", created.Total.StringFixed(pricing.MoneyPlaces))
	return created, nil
}

func (s *documentService) ConvertQuotationToInvoice(ctx context.Context, tenantID, quotationID uuid.UUID) (*models.Document, error) {
	var invoice *models.Document
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		quotation, err := s.DocumentRepo.GetByIDForUpdate(ctx, models.DocumentKindQuotation, tenantID, quotationID)
		if err != nil {
			return err
		}
		if quotation.Status != models.QuotationStatusAccepted {
			return ierr.NewError("quotation not accepted").
				WithHintf("only accepted quotations can be converted, quotation is %s", quotation.Status).
				WithReportableDetails(map[string]any{"status": quotation.Status}).
				Mark(ierr.ErrInvalidState)
		}
		if quotation.ClientID == nil {
			return ierr.NewError("quotation has no client").
				WithHint("quotation client no longer exists").
				Mark(ierr.ErrInvalidState)
		}

		lines, err := s.LineItemRepo.ListByDocument(ctx, models.DocumentKindQuotation, quotation.ID)
		if err != nil {
			return err
		}

		req := &models.CreateDocumentRequest{
			ClientID: quotation.ClientID,
			Title:    quotation.Title,
			Currency: quotation.Currency,
			TaxRate:  lo.ToPtr(quotation.TaxRate),
			Discount: lo.ToPtr(quotation.Discount),
			Notes:    quotation.Notes,
			Terms:    quotation.Terms,
			Items: lo.Map(lines, func(item *models.LineItem, _ int) models.LineItemRequest {
				return models.LineItemRequest{
					BusinessItemID: item.BusinessItemID,
					Description:    item.Description,
					Quantity:       item.Quantity,
					UnitPrice:      lo.ToPtr(item.UnitPrice),
				}
			}),
		}

		invoice, err = s.create(ctx, models.DocumentKindInvoice, tenantID, req, &quotation.ID)
		if err != nil {
			return err
		}

		return s.DocumentRepo.UpdateStatus(ctx, models.DocumentKindQuotation, tenantID, quotation.ID, models.QuotationStatusInvoiced)
	})
	if err != nil {
		return nil, wrapUnexpected(err, "failed to convert quotation")
	}

	s.Logger.Infow("quotation converted", "tenant_id", tenantID, "quotation_id", quotationID,
		"invoice_id", invoice.ID, "invoice_number", invoice.Number)
	return invoice, nil
}

func (s *documentService) Get(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) (*models.Document, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	return s.load(ctx, kind, tenantID, id)
}

func (s *documentService) List(ctx context.Context, kind models.DocumentKind, tenantID uuid.UUID, limit, offset int) ([]*models.Document, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	limit, offset, err := common.ValidatePaginationParams(limit, offset)
	if err != nil {
		return nil, ierr.WithError(err).WithHint(err.Error()).Mark(ierr.ErrValidation)
	}
	return s.DocumentRepo.List(ctx, kind, tenantID, limit, offset)
}

func (s *documentService) Update(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID, req *models.UpdateDocumentRequest) (*models.Document, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := validateRates(req.TaxRate, req.Discount); err != nil {
		return nil, err
	}

	var updated *models.Document
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		doc, err := s.DocumentRepo.GetByIDForUpdate(ctx, kind, tenantID, id)
		if err != nil {
			return err
		}
		if !isEditable(doc) {
			return ierr.NewError("document locked").
				WithHintf("%s with status %s can no longer be edited", kind, doc.Status).
				Mark(ierr.ErrInvalidState)
		}

		if err := applyDocumentPatch(doc, req); err != nil {
			return err
		}

		if req.Items != nil {
			if err := s.LineItemRepo.DeleteByDocument(ctx, kind, doc.ID); err != nil {
				return err
			}
			items, err := s.resolver.Resolve(ctx, tenantID, doc.ID, req.Items)
			if err != nil {
				return err
			}
			if err := s.LineItemRepo.CreateBatch(ctx, kind, items); err != nil {
				return err
			}
			pricing.Apply(doc, items)
		} else {
			totals := pricing.Aggregate(doc.SubTotal, doc.TaxRate, doc.Discount)
			doc.Tax, doc.Total = totals.Tax, totals.Total
		}

		doc.UpdatedAt = s.now()
		if err := s.DocumentRepo.Update(ctx, doc); err != nil {
			return err
		}

		updated, err = s.load(ctx, kind, tenantID, doc.ID)
		return err
	})
	if err != nil {
		return nil, wrapUnexpected(err, fmt.Sprintf("failed to update %s", kind))
	}
	return updated, nil
}

func (s *documentService) UpdateStatus(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID, status string) (*models.Document, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	status = strings.ToUpper(strings.TrimSpace(status))
	if !models.IsValidStatus(kind, status) {
		return nil, ierr.NewError("unknown status").
			WithHintf("%q is not a valid %s status", status, kind).
			Mark(ierr.ErrValidation)
	}

	var updated *models.Document
	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		doc, err := s.DocumentRepo.GetByIDForUpdate(ctx, kind, tenantID, id)
		if err != nil {
			return err
		}
		if doc.Status != status {
			if !canTransition(kind, doc.Status, status) {
				return ierr.NewError("status transition not allowed").
					WithHintf("cannot move %s from %s to %s", kind, doc.Status, status).
					WithReportableDetails(map[string]any{"from": doc.Status, "to": status}).
					Mark(ierr.ErrInvalidState)
			}
			if err := s.DocumentRepo.UpdateStatus(ctx, kind, tenantID, id, status); err != nil {
				return err
			}
		}
		updated, err = s.load(ctx, kind, tenantID, id)
		return err
	})
	if err != nil {
		return nil, wrapUnexpected(err, fmt.Sprintf("failed to update %s status", kind))
	}

	s.Logger.Infow("document status changed", "tenant_id", tenantID, "kind", kind, "document_id", id, "status", status)
	return updated, nil
}

// Delete removes the document with its snapshots and line items. The counter is not rewound.
func (s *documentService) Delete(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) error {
	if err := validateKind(kind); err != nil {
		return err
	}
	if err := s.DocumentRepo.Delete(ctx, kind, tenantID, id); err != nil {
		return wrapUnexpected(err, fmt.Sprintf("failed to delete %s", kind))
	}
	s.Logger.Infow("document deleted", "tenant_id", tenantID, "kind", kind, "document_id", id)
	return nil
}

// load reads the document with both snapshots and its line items
func (s *documentService) load(ctx context.Context, kind models.DocumentKind, tenantID, id uuid.UUID) (*models.Document, error) {
	doc, err := s.DocumentRepo.GetByID(ctx, kind, tenantID, id)
	if err != nil {
		return nil, err
	}
	if doc.BusinessSnapshot, err = s.SnapshotRepo.GetBusinessSnapshot(ctx, kind, doc.ID); err != nil {
		return nil, err
	}
	if doc.ClientSnapshot, err = s.SnapshotRepo.GetClientSnapshot(ctx, kind, doc.ID); err != nil {
		return nil, err
	}
	if doc.Items, err = s.LineItemRepo.ListByDocument(ctx, kind, doc.ID); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) resolveClient(ctx context.Context, tenantID uuid.UUID, req *models.CreateDocumentRequest, now time.Time) (*models.Client, error) {
	if req.ClientID != nil {
		return s.ClientRepo.GetByID(ctx, tenantID, *req.ClientID)
	}
	if req.Client == nil {
		return nil, ierr.NewError("no client given").
			WithHint("client_id or client is required").
			Mark(ierr.ErrValidation)
	}

	if email := common.SafeString(req.Client.Email); email != "" {
		_, err := s.ClientRepo.GetByEmail(ctx, tenantID, email)
		if err == nil {
			return nil, ierr.NewError("duplicate client email").
				WithHint("client with this email already exists").
				WithReportableDetails(map[string]any{"field": "email"}).
				Mark(ierr.ErrAlreadyExists)
		}
		if !ierr.IsNotFound(err) {
			return nil, err
		}
	}

	client := &models.Client{
		ID:                uuid.New(),
		BusinessProfileID: tenantID,
		ClientDetails:     req.Client.Details(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.ClientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func applyDocumentPatch(doc *models.Document, req *models.UpdateDocumentRequest) error {
	if req.Title != nil {
		doc.Title = strings.TrimSpace(*req.Title)
	}
	if req.IssueDate != nil {
		issue, err := common.ParseDate(*req.IssueDate, doc.IssueDate)
		if err != nil {
			return dateError("issue_date")
		}
		doc.IssueDate = issue
	}
	if deadline := req.Deadline(doc.Kind); deadline != nil {
		t, err := common.ParseDate(*deadline, doc.Deadline())
		if err != nil {
			return dateError(deadlineField(doc.Kind))
		}
		doc.SetDeadline(t)
	}
	if doc.Deadline().Before(doc.IssueDate) {
		return ierr.NewError("deadline before issue date").
			WithHintf("%s must not be before issue_date", deadlineField(doc.Kind)).
			Mark(ierr.ErrValidation)
	}
	if req.Currency != nil {
		doc.Currency = currencyOrDefault(*req.Currency)
	}
	if req.TaxRate != nil {
		doc.TaxRate = *req.TaxRate
	}
	if req.Discount != nil {
		doc.Discount = *req.Discount
	}
	if req.Notes != nil {
		doc.Notes = req.Notes
	}
	if req.Terms != nil {
		doc.Terms = req.Terms
	}
	return nil
}

func initialStatus(kind models.DocumentKind, requested string) (string, error) {
	if err := validateKind(kind); err != nil {
		return "", err
	}
	status := strings.ToUpper(strings.TrimSpace(requested))
	if status == "" && kind == models.DocumentKindQuotation {
		return models.QuotationStatusDraft, nil
	}
	if status == "" {
		return models.InvoiceStatusDraft, nil
	}
	if !models.IsValidStatus(kind, status) || status == models.QuotationStatusInvoiced {
		return "", ierr.NewError("invalid initial status").
			WithHintf("%q is not a valid initial %s status", requested, kind).
			Mark(ierr.ErrValidation)
	}
	return status, nil
}

func documentDates(kind models.DocumentKind, issue, deadline string, now time.Time) (time.Time, time.Time, error) {
	issueDate, err := common.ParseDate(issue, common.Today(now))
	if err != nil {
		return time.Time{}, time.Time{}, dateError("issue_date")
	}
	deadlineDate, err := common.ParseDate(deadline, issueDate.AddDate(0, 0, DefaultPaymentTermDays))
	if err != nil {
		return time.Time{}, time.Time{}, dateError(deadlineField(kind))
	}
	if deadlineDate.Before(issueDate) {
		return time.Time{}, time.Time{}, ierr.NewError("deadline before issue date").
			WithHintf("%s must not be before issue_date", deadlineField(kind)).
			Mark(ierr.ErrValidation)
	}
	return issueDate, deadlineDate, nil
}

func validateRates(taxRate, discount *decimal.Decimal) error {
	if taxRate != nil && (taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(100))) {
		return ierr.NewError("tax rate out of range").
			WithHint("tax_rate must be between 0 and 100").
			Mark(ierr.ErrValidation)
	}
	if taxRate != nil && !pricing.FitsScale(*taxRate, pricing.RatePlaces) {
		return ierr.NewError("tax rate too precise").
			WithHintf("tax_rate must have at most %d decimal places", pricing.RatePlaces).
			Mark(ierr.ErrValidation)
	}
	if discount != nil && discount.IsNegative() {
		return ierr.NewError("negative discount").
			WithHint("discount must not be negative").
			Mark(ierr.ErrValidation)
	}
	if discount != nil && !pricing.FitsScale(*discount, pricing.MoneyPlaces) {
		return ierr.NewError("discount too precise").
			WithHintf("discount must have at most %d decimal places", pricing.MoneyPlaces).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func validateKind(kind models.DocumentKind) error {
	if err := kind.Validate(); err != nil {
		return ierr.WithError(err).WithHint("unknown document kind").Mark(ierr.ErrValidation)
	}
	return nil
}

func currencyOrDefault(currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return models.DefaultCurrency
	}
	return currency
}

func deadlineField(kind models.DocumentKind) string {
	if kind == models.DocumentKindQuotation {
		return "expiration_date"
	}
	return "due_date"
}

func dateError(field string) error {
	return ierr.NewError("invalid date").
		WithHintf("%s must be a date in YYYY-MM-DD format", field).
		Mark(ierr.ErrValidation)
}

// wrapUnexpected lets caller-facing kinds through and hides everything else behind ErrSystem
func wrapUnexpected(err error, message string) error {
	if ierr.IsDomain(err) {
		return err
	}
	return ierr.WithError(err).WithMessage(message).Mark(ierr.ErrSystem)
}
