package handler

import (
	"errors"
	"net/http"

	"holo-lookup/internal/core/i18n"
	"holo-lookup/internal/core/logger"
	"holo-lookup/internal/core/visitor"
	"holo-lookup/internal/features/language/domain"
	"holo-lookup/internal/features/language/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LanguageHandler handles HTTP requests for the language switcher.
type LanguageHandler struct {
	service ports.PreferenceService
}

// NewLanguageHandler creates a new LanguageHandler.
func NewLanguageHandler(service ports.PreferenceService) *LanguageHandler {
	return &LanguageHandler{
		service: service,
	}
}

// SetLanguageRequest is the body of PUT /language.
type SetLanguageRequest struct {
	Language string `json:"language"`
}

// LanguageResponse describes the visitor's active language.
type LanguageResponse struct {
	Language    i18n.Language `json:"language"`
	SwitchLabel string        `json:"switch_label"`
	// Message is the switch notice; set only when the language changed.
	Message string `json:"message,omitempty"`
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

func newLanguageResponse(lang i18n.Language, message string) LanguageResponse {
	return LanguageResponse{
		Language:    lang,
		SwitchLabel: i18n.Content(lang).SwitchLabel,
		Message:     message,
	}
}

// GetLanguage godoc
// @Summary Get the visitor's language
// @Tags language
// @Produce json
// @Success 200 {object} LanguageResponse
// @Failure 500 {object} ErrorResponse
// @Router /language [get]
func (h *LanguageHandler) GetLanguage(c *fiber.Ctx) error {
	lang, err := h.service.Get(c.Context(), visitor.ID(c), c.Get(fiber.HeaderAcceptLanguage))
	if err != nil {
		logger.Get().Error("Failed to get language", zap.String("ray_id", rayID(c)), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal server error",
			RayID:   rayID(c),
		})
	}

	return c.JSON(newLanguageResponse(lang, ""))
}

// SetLanguage godoc
// @Summary Set the visitor's language
// @Tags language
// @Accept json
// @Produce json
// @Param body body SetLanguageRequest true "Language code (vi or en)"
// @Success 200 {object} LanguageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /language [put]
func (h *LanguageHandler) SetLanguage(c *fiber.Ctx) error {
	var req SetLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	lang, err := h.service.Set(c.Context(), visitor.ID(c), req.Language)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(newLanguageResponse(lang, i18n.T(lang, i18n.MsgLanguageSwitched)))
}

// ToggleLanguage godoc
// @Summary Switch between Vietnamese and English
// @Tags language
// @Produce json
// @Success 200 {object} LanguageResponse
// @Failure 500 {object} ErrorResponse
// @Router /language/toggle [post]
func (h *LanguageHandler) ToggleLanguage(c *fiber.Ctx) error {
	lang, err := h.service.Toggle(c.Context(), visitor.ID(c), c.Get(fiber.HeaderAcceptLanguage))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(newLanguageResponse(lang, i18n.T(lang, i18n.MsgLanguageSwitched)))
}

// GetContent godoc
// @Summary Get the page text for the visitor's language
// @Tags language
// @Produce json
// @Param lang query string false "Language override (vi or en)"
// @Success 200 {object} i18n.PageContent
// @Router /content [get]
func (h *LanguageHandler) GetContent(c *fiber.Ctx) error {
	lang := h.service.Resolve(c.Context(), visitor.ID(c), c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage))
	return c.JSON(i18n.Content(lang))
}

func (h *LanguageHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnsupportedLanguage):
		lang := h.service.Resolve(c.Context(), visitor.ID(c), "", c.Get(fiber.HeaderAcceptLanguage))
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: i18n.T(lang, i18n.MsgLanguageUnsupported),
			RayID:   rayID(c),
		})
	case errors.Is(err, domain.ErrMissingVisitor):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	logger.Get().Error("Failed to update language", zap.String("ray_id", rayID(c)), zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Message: "Internal server error",
		RayID:   rayID(c),
	})
}
