package ports

import (
	"holo-lookup/internal/core/i18n"
	"holo-lookup/internal/features/lookup/domain"
)

// RouteCatalog is the read-only reference table of route points and offerings.
// Implementations must return copies so callers cannot mutate shared data.
type RouteCatalog interface {
	// Offering returns the offering stored under key.
	Offering(key domain.RouteKey) (domain.RouteOffering, bool)
	// Keys returns every route key in the table, sorted by serialized form.
	Keys() []domain.RouteKey
	// Points returns every known route point in display order.
	Points() []domain.RoutePoint
	// PointLabel returns the display name of point in lang, or the raw code when unmapped.
	PointLabel(point domain.RoutePoint, lang i18n.Language) string
}

// ShipmentCatalog is the read-only reference table of shipment records.
type ShipmentCatalog interface {
	// Shipment returns the record stored under an already normalized tracking code.
	Shipment(code string) (domain.ShipmentRecord, bool)
	// Codes returns every tracking code in the table, sorted.
	Codes() []string
}
