package domain

import (
	"slices"
	"strings"
)

// DeliveredStatus is the shipment status label of a completed delivery.
const DeliveredStatus = "Đã giao thành công"

// ShipmentRecord is the tracking information for one shipment.
type ShipmentRecord struct {
	// Code is the normalized tracking code.
	Code string `json:"code"`
	// Status is the current status label.
	Status string `json:"status"`
	// Location is the current location label.
	Location string `json:"location"`
	// EstimatedDelivery is a display label, not a timestamp.
	EstimatedDelivery string `json:"estimated_delivery"`
	// Timeline holds the shipment events in reference-data order.
	Timeline []TimelineEvent `json:"timeline"`
}

// TimelineEvent is a single step in a shipment's timeline.
type TimelineEvent struct {
	// Time is an HH:MM label. Empty means the time is not known yet.
	Time string `json:"time"`
	// Status is the event status label.
	Status string `json:"status"`
	// Location is where the event happens.
	Location string `json:"location"`
	// Pending marks an event that has not occurred yet.
	Pending bool `json:"pending"`
}

// Delivered reports whether the shipment has been delivered.
func (r ShipmentRecord) Delivered() bool {
	return r.Status == DeliveredStatus
}

// Clone returns a copy that shares no memory with r.
func (r ShipmentRecord) Clone() ShipmentRecord {
	r.Timeline = slices.Clone(r.Timeline)
	return r
}

// NormalizeTrackingCode trims surrounding whitespace and upper-cases code.
func NormalizeTrackingCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
