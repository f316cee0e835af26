package domain

// ResultKind tags the outcome of a lookup.
type ResultKind string

const (
	// KindRouteFound is a route search that hit the reference table.
	KindRouteFound ResultKind = "route_found"
	// KindRouteNotFound is a route search with no offering for the key.
	KindRouteNotFound ResultKind = "route_not_found"
	// KindShipmentFound is a tracking search that hit the reference table.
	KindShipmentFound ResultKind = "shipment_found"
	// KindShipmentNotFound is a tracking search with no record for the code.
	KindShipmentNotFound ResultKind = "shipment_not_found"
)

// LookupResult is the outcome of a route or tracking lookup. Absence is a
// normal outcome, so every variant is a value and none is an error.
type LookupResult interface {
	Kind() ResultKind
}

// RouteFound carries the stored offering and the query that found it.
type RouteFound struct {
	Offering RouteOffering
	Query    RouteQuery
}

// RouteNotFound carries the display labels of both endpoints.
type RouteNotFound struct {
	OriginLabel      string
	DestinationLabel string
	Query            RouteQuery
}

// ShipmentFound carries the full shipment record.
type ShipmentFound struct {
	Record ShipmentRecord
}

// ShipmentNotFound carries the normalized code that was searched.
type ShipmentNotFound struct {
	Code string
}

func (RouteFound) Kind() ResultKind       { return KindRouteFound }
func (RouteNotFound) Kind() ResultKind    { return KindRouteNotFound }
func (ShipmentFound) Kind() ResultKind    { return KindShipmentFound }
func (ShipmentNotFound) Kind() ResultKind { return KindShipmentNotFound }
