package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"holo-lookup/internal/core/i18n"
	"holo-lookup/internal/core/logger"
	"holo-lookup/internal/core/validate"
	"holo-lookup/internal/core/visitor"
	"holo-lookup/internal/features/lookup/domain"
	"holo-lookup/internal/features/lookup/ports"
	"holo-lookup/internal/features/lookup/render"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultPassengers = "1"

// LanguageResolver picks the language a response is rendered in.
type LanguageResolver interface {
	Resolve(ctx context.Context, visitorID, explicit, acceptLanguage string) i18n.Language
}

// LookupHandler handles HTTP requests for the route finder and shipment tracking.
type LookupHandler struct {
	engine    ports.Engine
	routes    ports.RouteCatalog
	renderer  *render.Renderer
	languages LanguageResolver
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(engine ports.Engine, routes ports.RouteCatalog, renderer *render.Renderer, languages LanguageResolver) *LookupHandler {
	return &LookupHandler{
		engine:    engine,
		routes:    routes,
		renderer:  renderer,
		languages: languages,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id,omitempty"`
}

// RoutesResponse lists the serialized keys of every served route.
type RoutesResponse struct {
	Routes []string `json:"routes"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

func (h *LookupHandler) language(c *fiber.Ctx) i18n.Language {
	return h.languages.Resolve(c.Context(), visitor.ID(c), c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage))
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID(c),
	})
}

func internalError(c *fiber.Ctx, err error) error {
	logger.Get().Error("Failed to render lookup result", zap.String("ray_id", rayID(c)), zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Message: "Internal server error",
		RayID:   rayID(c),
	})
}

// GetPoints godoc
// @Summary List route points
// @Description Returns the departure and destination choices for the route finder
// @Tags routes
// @Produce json
// @Param lang query string false "Language override (vi or en)"
// @Success 200 {array} render.PointView
// @Router /routes/points [get]
func (h *LookupHandler) GetPoints(c *fiber.Ctx) error {
	return c.JSON(h.renderer.RenderPoints(h.routes.Points(), h.language(c)))
}

// GetRoutes godoc
// @Summary List served routes
// @Tags routes
// @Produce json
// @Success 200 {object} RoutesResponse
// @Router /routes [get]
func (h *LookupHandler) GetRoutes(c *fiber.Ctx) error {
	keys := h.routes.Keys()
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, key.String())
	}
	return c.JSON(RoutesResponse{Routes: out})
}

// SearchRoute godoc
// @Summary Find a route
// @Description Looks up the schedule between two points. An unserved pair is a 200 with a not-found view.
// @Tags routes
// @Produce json
// @Param departure query string true "Origin point code"
// @Param destination query string true "Destination point code"
// @Param departure-date query string true "Travel date (YYYY-MM-DD)"
// @Param passengers query string false "Passenger count, defaults to 1"
// @Param lang query string false "Language override (vi or en)"
// @Success 200 {object} render.RouteView
// @Failure 400 {object} ErrorResponse
// @Router /routes/search [get]
func (h *LookupHandler) SearchRoute(c *fiber.Ctx) error {
	lang := h.language(c)

	query := domain.RouteQuery{
		Origin:      domain.RoutePoint(c.Query("departure")),
		Destination: domain.RoutePoint(c.Query("destination")),
		Date:        c.Query("departure-date"),
		Passengers:  c.Query("passengers", defaultPassengers),
	}

	if !validate.RequiredFields(string(query.Origin), string(query.Destination), query.Date) {
		return badRequest(c, i18n.T(lang, i18n.MsgRequiredRouteFields))
	}
	if !validate.DistinctEndpoints(string(query.Origin), string(query.Destination)) {
		return badRequest(c, i18n.T(lang, i18n.MsgSameEndpoints))
	}
	if !validate.PositiveInteger(query.Passengers) {
		return badRequest(c, i18n.T(lang, i18n.MsgInvalidPassengers))
	}

	view, err := h.renderer.RenderRoute(h.engine.FindRoute(query), lang)
	if err != nil {
		return internalError(c, err)
	}

	logger.Named("lookup").Debug("Route searched",
		zap.String("ray_id", rayID(c)),
		zap.Stringer("route", query.Key()),
		zap.String("kind", string(view.Kind)),
	)

	return c.JSON(view)
}

// TrackShipment godoc
// @Summary Track a shipment
// @Description Looks up a tracking code. Codes are case-insensitive; an unknown code is a 200 with a not-found view.
// @Tags tracking
// @Produce json
// @Param code path string true "Tracking code"
// @Param lang query string false "Language override (vi or en)"
// @Success 200 {object} render.ShipmentView
// @Failure 400 {object} ErrorResponse
// @Router /tracking/{code} [get]
func (h *LookupHandler) TrackShipment(c *fiber.Ctx) error {
	lang := h.language(c)

	code := c.Params("code")
	if unescaped, err := url.PathUnescape(code); err == nil {
		code = unescaped
	}
	if strings.TrimSpace(code) == "" {
		return badRequest(c, i18n.T(lang, i18n.MsgTrackingRequired))
	}

	view, err := h.renderer.RenderShipment(h.engine.FindShipment(code), lang)
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(view)
}
