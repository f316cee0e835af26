package render

import "holo-lookup/internal/features/lookup/domain"

// RouteView is the presentational form of a route search result.
type RouteView struct {
	Kind domain.ResultKind `json:"kind"`
	// Heading is the result title (route name, or the not-found notice).
	Heading string `json:"heading"`
	// Summary echoes the departure date and passenger count. Empty when not found.
	Summary string `json:"summary,omitempty"`
	// Frequency is the trips-per-day label of a found route.
	Frequency string `json:"frequency,omitempty"`
	// Departures lists one bookable item per departure time.
	Departures []DepartureView `json:"departures,omitempty"`
	// Messages holds the explanatory paragraphs of a not-found result.
	Messages []string `json:"messages,omitempty"`
}

// DepartureView is a single bookable trip.
type DepartureView struct {
	Time        string `json:"time"`
	TimeLabel   string `json:"time_label"`
	BusType     string `json:"bus_type"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
	ActionLabel string `json:"action_label"`
	BookingURL  string `json:"booking_url"`
	// Notice is the message shown once the trip is selected.
	Notice string `json:"notice"`
}

// ShipmentView is the presentational form of a tracking result.
type ShipmentView struct {
	Kind    domain.ResultKind `json:"kind"`
	Heading string            `json:"heading"`
	// Status is the current status label; StatusClass is "delivered" or "in-transit".
	Status            string             `json:"status,omitempty"`
	StatusClass       string             `json:"status_class,omitempty"`
	LocationLabel     string             `json:"location_label,omitempty"`
	Location          string             `json:"location,omitempty"`
	DeliveryLabel     string             `json:"delivery_label,omitempty"`
	EstimatedDelivery string             `json:"estimated_delivery,omitempty"`
	TimelineTitle     string             `json:"timeline_title,omitempty"`
	Timeline          []TimelineItemView `json:"timeline,omitempty"`
	Messages          []string           `json:"messages,omitempty"`
}

// TimelineItemView is one rendered timeline entry.
type TimelineItemView struct {
	Time     string `json:"time"`
	Status   string `json:"status"`
	Location string `json:"location"`
	// State is "pending" for events that have not occurred, "completed" otherwise.
	State string `json:"state"`
}

// PointView is a route point as offered in the route finder form.
type PointView struct {
	Code  domain.RoutePoint `json:"code"`
	Label string            `json:"label"`
}
