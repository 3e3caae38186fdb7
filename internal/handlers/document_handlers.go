package handlers

import (
	"net/http"
	"strconv"

	"github.com/gigsters-app/gigsters/internal/common"
	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/logger"
	"github.com/gigsters-app/gigsters/internal/middleware"
	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DocumentHandlers serves invoices and quotations under /profiles/:profileId
type DocumentHandlers struct {
	documents services.DocumentService
	exports   services.ExportService
	logger    *logger.Logger
}

func NewDocumentHandlers(documents services.DocumentService, exports services.ExportService, log *logger.Logger) *DocumentHandlers {
	return &DocumentHandlers{documents: documents, exports: exports, logger: log}
}

// DocumentList is a page of document headers
type DocumentList struct {
	Items  []*models.Document `json:"items"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// @Summary Create an invoice
// @Description Allocates the next invoice number, snapshots issuer and client, resolves line items and computes totals in one transaction
// @Tags Invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param invoice body models.CreateDocumentRequest true "Invoice to create"
// @Success 201 {object} models.Document
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Failure 409 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /profiles/{profileId}/invoices [post]
func (h *DocumentHandlers) CreateInvoice(c echo.Context) error {
	return h.create(c, models.DocumentKindInvoice)
}

// @Summary Create a quotation
// @Tags Quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param quotation body models.CreateDocumentRequest true "Quotation to create"
// @Success 201 {object} models.Document
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Failure 409 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /profiles/{profileId}/quotations [post]
func (h *DocumentHandlers) CreateQuotation(c echo.Context) error {
	return h.create(c, models.DocumentKindQuotation)
}

func (h *DocumentHandlers) create(c echo.Context, kind models.DocumentKind) error {
	profileID, err := profileIDParam(c)
	if err != nil {
		return common.SendError(c, err)
	}

	var req models.CreateDocumentRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateStruct(&req); err != nil {
		return common.SendError(c, err)
	}

	var doc *models.Document
	if kind == models.DocumentKindQuotation {
		doc, err = h.documents.CreateQuotation(c.Request().Context(), profileID, &req)
	} else {
		doc, err = h.documents.CreateInvoice(c.Request().Context(), profileID, &req)
	}
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusCreated, doc)
}

// @Summary List invoices
// @Description Newest first
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param limit query int false "Page size (default 50, max 1000)"
// @Param offset query int false "Offset"
// @Success 200 {object} DocumentList
// @Failure 400 {object} common.ErrorResponse
// @Router /profiles/{profileId}/invoices [get]
func (h *DocumentHandlers) ListInvoices(c echo.Context) error {
	return h.list(c, models.DocumentKindInvoice)
}

// @Summary List quotations
// @Description Newest first
// @Tags Quotations
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param limit query int false "Page size (default 50, max 1000)"
// @Param offset query int false "Offset"
// @Success 200 {object} DocumentList
// @Failure 400 {object} common.ErrorResponse
// @Router /profiles/{profileId}/quotations [get]
func (h *DocumentHandlers) ListQuotations(c echo.Context) error {
	return h.list(c, models.DocumentKindQuotation)
}

func (h *DocumentHandlers) list(c echo.Context, kind models.DocumentKind) error {
	profileID, err := profileIDParam(c)
	if err != nil {
		return common.SendError(c, err)
	}

	limit, err := intQueryParam(c, "limit")
	if err != nil {
		return common.SendValidationError(c, "limit", "must be an integer")
	}
	offset, err := intQueryParam(c, "offset")
	if err != nil {
		return common.SendValidationError(c, "offset", "must be an integer")
	}
	limit, offset, err = common.ValidatePaginationParams(limit, offset)
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	docs, err := h.documents.List(c.Request().Context(), kind, profileID, limit, offset)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, DocumentList{Items: docs, Limit: limit, Offset: offset})
}

// @Summary Get an invoice
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.Document
// @Failure 404 {object} common.ErrorResponse
// @Router /profiles/{profileId}/invoices/{id} [get]
func (h *DocumentHandlers) GetInvoice(c echo.Context) error {
	return h.get(c, models.DocumentKindInvoice)
}

// @Summary Get a quotation
// @Tags Quotations
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param id path string true "Quotation ID"
// @Success 200 {object} models.Document
// @Failure 404 {object} common.ErrorResponse
// @Router /profiles/{profileId}/quotations/{id} [get]
func (h *DocumentHandlers) GetQuotation(c echo.Context) error {
	return h.get(c, models.DocumentKindQuotation)
}

func (h *DocumentHandlers) get(c echo.Context, kind models.DocumentKind) error {
	profileID, id, err := documentParams(c)
	if err != nil {
		return common.SendError(c, err)
	}
	doc, err := h.documents.Get(c.Request().Context(), kind, profileID, id)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

// @Summary Update an invoice
// @Description Partial update. A present items array replaces every line item. Paid and cancelled invoices are locked.
// @Tags Invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param id path string true "Invoice ID"
// @Param invoice body models.UpdateDocumentRequest true "Fields to change"
// @Success 200 {object} models.Document
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Failure 422 {object} common.ErrorResponse
// @Router /profiles/{profileId}/invoices/{id} [patch]
func (h *DocumentHandlers) UpdateInvoice(c echo.Context) error {
	return h.update(c, models.DocumentKindInvoice)
}

// @Summary Update a quotation
// @Description Partial update. A present items array replaces every line item. Invoiced quotations are locked.
// @Tags Quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param id path string true "Quotation ID"
// @Param quotation body models.UpdateDocumentRequest true "Fields to change"
// @Success 200 {object} models.Document
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Failure 422 {object} common.ErrorResponse
// @Router /profiles/{profileId}/quotations/{id} [patch]
func (h *DocumentHandlers) UpdateQuotation(c echo.Context) error {
	return h.update(c, models.DocumentKindQuotation)
}

func (h *DocumentHandlers) update(c echo.Context, kind models.DocumentKind) error {
	profileID, id, err := documentParams(c)
	if err != nil {
		return common.SendError(c, err)
	}

	var req models.UpdateDocumentRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateStruct(&req); err != nil {
		return common.SendError(c, err)
	}

	doc, err := h.documents.Update(c.Request().Context(), kind, profileID, id, &req)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

// @Summary Change an invoice status
// @Tags Invoices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param id path string true "Invoice ID"
// @Param status body models.UpdateStatusRequest true "New status"
// @Success 200 {object} models.Document
// @Failure 400 {object} common.ErrorResponse
// @Failure 422 {object} common.ErrorResponse
// @Router /profiles/{profileId}/invoices/{id}/status [put]
func (h *DocumentHandlers) UpdateInvoiceStatus(c echo.Context) error {
	return h.updateStatus(c, models.DocumentKindInvoice)
}

// @Summary Change a quotation status
// @Description INVOICED is only reachable through conversion
// @Tags Quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param id path string true "Quotation ID"
// @Param status body models.UpdateStatusRequest true "New status"
// @Success 200 {object} models.Document
// @Failure 400 {object} common.ErrorResponse
// @Failure 422 {object} common.ErrorResponse
// @Router /profiles/{profileId}/quotations/{id}/status [put]
func (h *DocumentHandlers) UpdateQuotationStatus(c echo.Context) error {
	return h.updateStatus(c, models.DocumentKindQuotation)
}

func (h *DocumentHandlers) updateStatus(c echo.Context, kind models.DocumentKind) error {
	profileID, id, err := documentParams(c)
	if err != nil {
		return common.SendError(c, err)
	}

	var req models.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateStruct(&req); err != nil {
		return common.SendError(c, err)
	}

	doc, err := h.documents.UpdateStatus(c.Request().Context(), kind, profileID, id, req.Status)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

// @Summary Delete an invoice
// @Description The number is not reused
// @Tags Invoices
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param id path string true "Invoice ID"
// @Success 204
// @Failure 404 {object} common.ErrorResponse
// @Router /profiles/{profileId}/invoices/{id} [delete]
func (h *DocumentHandlers) DeleteInvoice(c echo.Context) error {
	return h.delete(c, models.DocumentKindInvoice)
}

// @Summary Delete a quotation
// @Description The number is not reused
// @Tags Quotations
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param id path string true "Quotation ID"
// @Success 204
// @Failure 404 {object} common.ErrorResponse
// @Router /profiles/{profileId}/quotations/{id} [delete]
func (h *DocumentHandlers) DeleteQuotation(c echo.Context) error {
	return h.delete(c, models.DocumentKindQuotation)
}

func (h *DocumentHandlers) delete(c echo.Context, kind models.DocumentKind) error {
	profileID, id, err := documentParams(c)
	if err != nil {
		return common.SendError(c, err)
	}
	if err := h.documents.Delete(c.Request().Context(), kind, profileID, id); err != nil {
		return common.SendError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// @Summary Export an invoice
// @Description Uploads the invoice as JSON to object storage and returns a link valid for 24 hours
// @Tags Invoices
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.ExportResult
// @Failure 404 {object} common.ErrorResponse
// @Failure 422 {object} common.ErrorResponse
// @Router /profiles/{profileId}/invoices/{id}/export [post]
func (h *DocumentHandlers) ExportInvoice(c echo.Context) error {
	return h.export(c, models.DocumentKindInvoice)
}

// @Summary Export a quotation
// @Description Uploads the quotation as JSON to object storage and returns a link valid for 24 hours
// @Tags Quotations
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param id path string true "Quotation ID"
// @Success 200 {object} models.ExportResult
// @Failure 404 {object} common.ErrorResponse
// @Failure 422 {object} common.ErrorResponse
// @Router /profiles/{profileId}/quotations/{id}/export [post]
func (h *DocumentHandlers) ExportQuotation(c echo.Context) error {
	return h.export(c, models.DocumentKindQuotation)
}

func (h *DocumentHandlers) export(c echo.Context, kind models.DocumentKind) error {
	profileID, id, err := documentParams(c)
	if err != nil {
		return common.SendError(c, err)
	}
	result, err := h.exports.Export(c.Request().Context(), kind, profileID, id)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// @Summary Convert a quotation to an invoice
// @Description Issues a new invoice from an ACCEPTED quotation and marks the quotation INVOICED
// @Tags Quotations
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param id path string true "Quotation ID"
// @Success 201 {object} models.Document
// @Failure 404 {object} common.ErrorResponse
// @Failure 422 {object} common.ErrorResponse
// @Router /profiles/{profileId}/quotations/{id}/convert [post]
func (h *DocumentHandlers) ConvertQuotation(c echo.Context) error {
	profileID, id, err := documentParams(c)
	if err != nil {
		return common.SendError(c, err)
	}
	invoice, err := h.documents.ConvertQuotationToInvoice(c.Request().Context(), profileID, id)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusCreated, invoice)
}

// profileIDParam parses the profile id path parameter
func profileIDParam(c echo.Context) (uuid.UUID, error) {
	return uuidParam(c, middleware.ProfileIDParam, "profile_id")
}

func documentParams(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	profileID, err := profileIDParam(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := uuidParam(c, "id", "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return profileID, id, nil
}

func uuidParam(c echo.Context, param, field string) (uuid.UUID, error) {
	id, err := common.ValidateUUID(c.Param(param), field)
	if err != nil {
		return uuid.Nil, ierr.WithError(err).
			WithHint(err.Error()).
			WithReportableDetails(map[string]any{field: err.Error()}).
			Mark(ierr.ErrValidation)
	}
	return id, nil
}

func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
