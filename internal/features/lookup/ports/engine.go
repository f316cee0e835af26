package ports

import "holo-lookup/internal/features/lookup/domain"

// Engine is the primary port for route and tracking lookups.
type Engine interface {
	FindRoute(query domain.RouteQuery) domain.LookupResult
	FindShipment(code string) domain.LookupResult
}
