package handler

import (
	"context"
	"errors"
	"net/http"

	"holo-lookup/internal/core/i18n"
	"holo-lookup/internal/core/logger"
	"holo-lookup/internal/core/visitor"
	"holo-lookup/internal/features/contact/domain"
	"holo-lookup/internal/features/contact/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LanguageResolver picks the language used for response messages.
type LanguageResolver interface {
	Resolve(ctx context.Context, visitorID, explicit, acceptLanguage string) i18n.Language
}

// ContactHandler handles HTTP requests for the quick-contact form.
type ContactHandler struct {
	service   ports.ContactService
	languages LanguageResolver
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service ports.ContactService, languages LanguageResolver) *ContactHandler {
	return &ContactHandler{
		service:   service,
		languages: languages,
	}
}

// SubmitRequest is the body of POST /contact.
type SubmitRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Service string `json:"service" form:"service"`
	Message string `json:"message" form:"message"`
}

// SubmitResponse acknowledges an accepted submission.
type SubmitResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id,omitempty"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// Submit godoc
// @Summary Send a quick-contact request
// @Description Validates the form and queues it for the sales team
// @Tags contact
// @Accept json
// @Produce json
// @Param lang query string false "Language override (vi or en)"
// @Param body body SubmitRequest true "Contact form"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	lang := h.languages.Resolve(c.Context(), visitor.ID(c), c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage))

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: i18n.T(lang, i18n.MsgContactRequired),
			RayID:   rayID(c),
		})
	}

	stored, err := h.service.Submit(c.Context(), domain.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
	})
	if err != nil {
		return h.writeError(c, lang, err)
	}

	return c.Status(http.StatusCreated).JSON(SubmitResponse{
		ID:      stored.ID,
		Message: i18n.T(lang, i18n.MsgContactThanks),
	})
}

func (h *ContactHandler) writeError(c *fiber.Ctx, lang i18n.Language, err error) error {
	var key string
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		key = i18n.MsgContactRequired
	case errors.Is(err, domain.ErrInvalidEmail):
		key = i18n.MsgContactEmail
	case errors.Is(err, domain.ErrInvalidPhone):
		key = i18n.MsgContactPhone
	}
	if key != "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: i18n.T(lang, key),
			RayID:   rayID(c),
		})
	}

	logger.Get().Error("Failed to submit contact form", zap.String("ray_id", rayID(c)), zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Message: i18n.T(lang, i18n.MsgContactFailed),
		RayID:   rayID(c),
	})
}
