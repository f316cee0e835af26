package domain

import (
	"slices"
	"strings"
)

// RouteKeySeparator joins origin and destination when a RouteKey is serialized.
const RouteKeySeparator = "-"

// RoutePoint is a location code used as a route endpoint (e.g., hcm, danang).
type RoutePoint string

// RouteKey identifies a route by its endpoints. Direction matters: hcm→danang
// and danang→hcm are different keys.
type RouteKey struct {
	// Origin is the departure point.
	Origin RoutePoint `json:"origin"`
	// Destination is the arrival point.
	Destination RoutePoint `json:"destination"`
}

// String serializes the key as "origin-destination".
func (k RouteKey) String() string {
	return string(k.Origin) + RouteKeySeparator + string(k.Destination)
}

// ParseRouteKey splits a serialized key at the first separator.
func ParseRouteKey(s string) (RouteKey, bool) {
	origin, destination, ok := strings.Cut(s, RouteKeySeparator)
	if !ok || origin == "" || destination == "" {
		return RouteKey{}, false
	}
	return RouteKey{Origin: RoutePoint(origin), Destination: RoutePoint(destination)}, true
}

// RouteOffering describes the service on one route. All fields are display
// strings taken verbatim from the reference data.
type RouteOffering struct {
	// Price is the fare with its currency suffix (e.g., 350.000đ).
	Price string `json:"price"`
	// Duration is the travel time range (e.g., 12-14 giờ).
	Duration string `json:"duration"`
	// Frequency is the number of trips per day as text.
	Frequency string `json:"frequency"`
	// Departures are HH:MM departure times in ascending order. Never empty.
	Departures []string `json:"departures"`
	// BusType is the service class label.
	BusType string `json:"bus_type"`
}

// Clone returns a copy that shares no memory with o.
func (o RouteOffering) Clone() RouteOffering {
	o.Departures = slices.Clone(o.Departures)
	return o
}

// RouteQuery is a route search as submitted by the route finder form.
type RouteQuery struct {
	Origin      RoutePoint `json:"departure"`
	Destination RoutePoint `json:"destination"`
	// Date is the ISO departure date, echoed for display only.
	Date string `json:"departure_date"`
	// Passengers is the passenger count as submitted.
	Passengers string `json:"passengers"`
}

// Key returns the composite key for the query's endpoints.
func (q RouteQuery) Key() RouteKey {
	return RouteKey{Origin: q.Origin, Destination: q.Destination}
}
