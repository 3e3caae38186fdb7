package handlers

import (
	"net/http"

	"github.com/gigsters-app/gigsters/internal/common"
	ierr "github.com/gigsters-app/gigsters/internal/errors"
	"github.com/gigsters-app/gigsters/internal/models"
	"github.com/gigsters-app/gigsters/internal/numbering"
	"github.com/gigsters-app/gigsters/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NumberFormatHandlers serves the per-kind number format of a profile
type NumberFormatHandlers struct {
	formats services.NumberFormatService
}

func NewNumberFormatHandlers(formats services.NumberFormatService) *NumberFormatHandlers {
	return &NumberFormatHandlers{formats: formats}
}

// @Summary Get a number format
// @Description Returns the format, creating the default on first access
// @Tags Number Formats
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param kind path string true "Document kind" Enums(invoice, quotation)
// @Success 200 {object} models.NumberFormat
// @Failure 400 {object} common.ErrorResponse
// @Router /profiles/{profileId}/number-formats/{kind} [get]
func (h *NumberFormatHandlers) GetNumberFormat(c echo.Context) error {
	profileID, kind, err := formatParams(c)
	if err != nil {
		return common.SendError(c, err)
	}
	format, err := h.formats.Get(c.Request().Context(), profileID, kind)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, format)
}

// @Summary Create a number format
// @Description Omitted fields take the default for the kind. Fails if the profile already has a format for the kind.
// @Tags Number Formats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param kind path string true "Document kind" Enums(invoice, quotation)
// @Param format body models.NumberFormatPatch true "Format fields"
// @Success 201 {object} models.NumberFormat
// @Failure 400 {object} common.ErrorResponse
// @Failure 409 {object} common.ErrorResponse
// @Router /profiles/{profileId}/number-formats/{kind} [post]
func (h *NumberFormatHandlers) CreateNumberFormat(c echo.Context) error {
	profileID, kind, err := formatParams(c)
	if err != nil {
		return common.SendError(c, err)
	}
	patch, err := bindFormatPatch(c)
	if err != nil {
		return common.SendError(c, err)
	}

	format := numbering.DefaultFormat(profileID, kind)
	numbering.ApplyPatch(format, *patch)
	created, err := h.formats.Create(c.Request().Context(), format)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// @Summary Update a number format
// @Description Partial update. A non-custom format always includes the year.
// @Tags Number Formats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Business profile ID"
// @Param kind path string true "Document kind" Enums(invoice, quotation)
// @Param format body models.NumberFormatPatch true "Fields to change"
// @Success 200 {object} models.NumberFormat
// @Failure 400 {object} common.ErrorResponse
// @Router /profiles/{profileId}/number-formats/{kind} [patch]
func (h *NumberFormatHandlers) UpdateNumberFormat(c echo.Context) error {
	profileID, kind, err := formatParams(c)
	if err != nil {
		return common.SendError(c, err)
	}
	patch, err := bindFormatPatch(c)
	if err != nil {
		return common.SendError(c, err)
	}

	updated, err := h.formats.Update(c.Request().Context(), profileID, kind, *patch)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func formatParams(c echo.Context) (uuid.UUID, models.DocumentKind, error) {
	profileID, err := profileIDParam(c)
	if err != nil {
		return uuid.Nil, "", err
	}
	kind := models.DocumentKind(c.Param("kind"))
	if err := kind.Validate(); err != nil {
		return uuid.Nil, "", ierr.WithError(err).
			WithHint("kind must be invoice or quotation").
			Mark(ierr.ErrValidation)
	}
	return profileID, kind, nil
}

func bindFormatPatch(c echo.Context) (*models.NumberFormatPatch, error) {
	var patch models.NumberFormatPatch
	if err := c.Bind(&patch); err != nil {
		return nil, ierr.WithError(err).WithHint("Invalid request format").Mark(ierr.ErrValidation)
	}
	if err := common.ValidateStruct(&patch); err != nil {
		return nil, err
	}
	return &patch, nil
}
