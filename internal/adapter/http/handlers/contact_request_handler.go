package handlers

import (
	"context"
	"errors"
	"net/http"

	request "pannel_pintura/internal/adapter/http/dto/request"
	response "pannel_pintura/internal/adapter/http/dto/response"
	"pannel_pintura/internal/domain/entities"
	"pannel_pintura/internal/logger"
	"pannel_pintura/internal/usecase"
	"pannel_pintura/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidContactPayload = pkg.NewDomainErrorSimple("INVALID_CONTACT_INPUT", "Invalid contact request payload", http.StatusBadRequest)
)

// ContactRequestHandler serves the direct-contact form and the admin lead
// follow-up endpoints.
type ContactRequestHandler struct {
	usecase usecase.IContactRequestUseCase
}

func NewContactRequestHandler(uc usecase.IContactRequestUseCase) *ContactRequestHandler {
	return &ContactRequestHandler{usecase: uc}
}

// Submit godoc
// @Summary      Submit a direct-contact request
// @Tags         contact-requests
// @Accept       json
// @Produce      json
// @Param        body  body      request.ContactRequestRequest  true  "Contact form"
// @Success      201   {object}  response.ContactRequestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Failure      429   {object}  pkg.HTTPError
// @Router       /contact-requests [post]
func (h *ContactRequestHandler) Submit(c *gin.Context) {
	var payload request.ContactRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContactPayload.HTTPStatus, errInvalidContactPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.fail(c, err)
		return
	}

	logger.FromGin(c).Info().Str("contact_request_id", created.ID).Msg("contact request received")
	c.JSON(http.StatusCreated, response.FromContactRequest(created))
}

// List godoc
// @Summary      List contact requests, newest first
// @Tags         contact-requests
// @Produce      json
// @Param        status  query     string  false  "pendiente | contactado | descartado"
// @Success      200     {object}  response.ContactRequestListResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      401     {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /contact-requests [get]
func (h *ContactRequestHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContactRequests(items))
}

// GetByID godoc
// @Summary      Get a contact request
// @Tags         contact-requests
// @Produce      json
// @Param        id   path      string  true  "Contact request ID"
// @Success      200  {object}  response.ContactRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /contact-requests/{id} [get]
func (h *ContactRequestHandler) GetByID(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContactRequest(item))
}

// MarkContacted godoc
// @Summary      Mark a pending contact request as contacted
// @Tags         contact-requests
// @Produce      json
// @Param        id   path      string  true  "Contact request ID"
// @Success      200  {object}  response.ContactRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /contact-requests/{id}/contacted [patch]
func (h *ContactRequestHandler) MarkContacted(c *gin.Context) {
	h.patchStatus(c, h.usecase.MarkContacted)
}

// Discard godoc
// @Summary      Discard a pending contact request
// @Tags         contact-requests
// @Produce      json
// @Param        id   path      string  true  "Contact request ID"
// @Success      200  {object}  response.ContactRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /contact-requests/{id}/discard [patch]
func (h *ContactRequestHandler) Discard(c *gin.Context) {
	h.patchStatus(c, h.usecase.Discard)
}

// Export godoc
// @Summary      Download contact requests as a spreadsheet
// @Tags         contact-requests
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status  query  string  false  "pendiente | contactado | descartado"
// @Success      200
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /contact-requests/export [get]
func (h *ContactRequestHandler) Export(c *gin.Context) {
	f, err := h.usecase.Export(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+f.Name+`"`)
	c.Data(http.StatusOK, f.ContentType, f.Content)
}

func (h *ContactRequestHandler) patchStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.ContactRequest, error),
) {
	item, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromContactRequest(item))
}

func (h *ContactRequestHandler) fail(c *gin.Context, err error) {
	appErr := mapContactRequestError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.FromGin(c).Error().Err(err).Msg("contact request operation failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapContactRequestError(err error) *pkg.AppError {
	var se *usecase.SubmissionError
	switch {
	case errors.As(err, &se):
		return pkg.NewValidationError("INVALID_CONTACT_REQUEST", "Revisa los campos del formulario", se.Fields, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidContactRequestID), errors.Is(err, usecase.ErrInvalidStatusFilter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContactRequestNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_REQUEST_NOT_FOUND", "Contact request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContactRequestNotPending):
		return pkg.NewDomainErrorSimple("CONTACT_REQUEST_NOT_PENDING", "Contact request is no longer pending", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
