package service

import (
	"holo-lookup/internal/core/i18n"
	"holo-lookup/internal/features/lookup/domain"
	"holo-lookup/internal/features/lookup/ports"
)

// LookupEngine answers route and tracking queries against the reference tables.
// Both lookups are pure table reads: they never fail, and a miss is reported as
// a not-found result.
type LookupEngine struct {
	routes    ports.RouteCatalog
	shipments ports.ShipmentCatalog
}

// NewLookupEngine creates a LookupEngine over the given catalogs.
func NewLookupEngine(routes ports.RouteCatalog, shipments ports.ShipmentCatalog) *LookupEngine {
	return &LookupEngine{
		routes:    routes,
		shipments: shipments,
	}
}

// FindRoute looks up the offering for the query's origin→destination key.
// Callers validate the query first. Reversed or empty endpoints miss the table
// and produce RouteNotFound, with labels in the reference language.
func (e *LookupEngine) FindRoute(query domain.RouteQuery) domain.LookupResult {
	if offering, ok := e.routes.Offering(query.Key()); ok {
		return domain.RouteFound{
			Offering: offering,
			Query:    query,
		}
	}

	return domain.RouteNotFound{
		OriginLabel:      e.routes.PointLabel(query.Origin, i18n.Vietnamese),
		DestinationLabel: e.routes.PointLabel(query.Destination, i18n.Vietnamese),
		Query:            query,
	}
}

// FindShipment normalizes code and looks up its shipment record.
func (e *LookupEngine) FindShipment(code string) domain.LookupResult {
	normalized := domain.NormalizeTrackingCode(code)

	if record, ok := e.shipments.Shipment(normalized); ok {
		return domain.ShipmentFound{Record: record}
	}

	return domain.ShipmentNotFound{Code: normalized}
}
