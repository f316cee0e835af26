package render

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"holo-lookup/internal/core/i18n"
	"holo-lookup/internal/features/lookup/domain"
)

// ErrUnexpectedResult is returned when a result kind does not match the view requested.
var ErrUnexpectedResult = errors.New("unexpected lookup result")

const (
	isoDateLayout     = "2006-01-02"
	displayDateLayout = "02/01/2006"

	statusDelivered = "delivered"
	statusInTransit = "in-transit"
	statePending    = "pending"
	stateCompleted  = "completed"
)

// PointLabeler resolves a route point code to its display name.
type PointLabeler interface {
	PointLabel(point domain.RoutePoint, lang i18n.Language) string
}

// Renderer turns lookup results into localized view models. The language is
// passed on every call; the renderer keeps no language state.
type Renderer struct {
	labels     PointLabeler
	bookingURL string
	hotline    string
}

// NewRenderer creates a Renderer. bookingURL is the page trips are booked on and
// hotline is the support number quoted in not-found messages.
func NewRenderer(labels PointLabeler, bookingURL, hotline string) *Renderer {
	return &Renderer{
		labels:     labels,
		bookingURL: bookingURL,
		hotline:    hotline,
	}
}

// RenderRoute renders a RouteFound or RouteNotFound result.
func (r *Renderer) RenderRoute(result domain.LookupResult, lang i18n.Language) (RouteView, error) {
	switch res := result.(type) {
	case domain.RouteFound:
		return r.routeFound(res, lang), nil
	case domain.RouteNotFound:
		return r.routeNotFound(res, lang), nil
	default:
		return RouteView{}, fmt.Errorf("%w: %T is not a route result", ErrUnexpectedResult, result)
	}
}

// RenderShipment renders a ShipmentFound or ShipmentNotFound result.
func (r *Renderer) RenderShipment(result domain.LookupResult, lang i18n.Language) (ShipmentView, error) {
	switch res := result.(type) {
	case domain.ShipmentFound:
		return r.shipmentFound(res, lang), nil
	case domain.ShipmentNotFound:
		return ShipmentView{
			Kind:    res.Kind(),
			Heading: i18n.T(lang, i18n.MsgTrackingNotFound),
			Messages: []string{
				fmt.Sprintf(i18n.T(lang, i18n.MsgTrackingNotFoundDetail), res.Code),
				fmt.Sprintf(i18n.T(lang, i18n.MsgTrackingHotline), r.hotline),
			},
		}, nil
	default:
		return ShipmentView{}, fmt.Errorf("%w: %T is not a shipment result", ErrUnexpectedResult, result)
	}
}

// RenderPoints lists the route points with labels in lang.
func (r *Renderer) RenderPoints(points []domain.RoutePoint, lang i18n.Language) []PointView {
	views := make([]PointView, 0, len(points))
	for _, point := range points {
		views = append(views, PointView{Code: point, Label: r.labels.PointLabel(point, lang)})
	}
	return views
}

// BookingURL returns the booking link for a departure on key. The route and
// time are query-escaped.
func (r *Renderer) BookingURL(key domain.RouteKey, departure string) string {
	query := url.Values{
		"route": {key.String()},
		"time":  {departure},
	}
	return r.bookingURL + "?" + query.Encode()
}

func (r *Renderer) routeFound(res domain.RouteFound, lang i18n.Language) RouteView {
	key := res.Query.Key()
	offering := res.Offering

	departures := make([]DepartureView, 0, len(offering.Departures))
	for _, departure := range offering.Departures {
		departures = append(departures, DepartureView{
			Time:        departure,
			TimeLabel:   i18n.T(lang, i18n.MsgRouteDeparture),
			BusType:     offering.BusType,
			Duration:    offering.Duration,
			Price:       offering.Price,
			ActionLabel: i18n.T(lang, i18n.MsgRouteSelect),
			BookingURL:  r.BookingURL(key, departure),
			Notice:      fmt.Sprintf(i18n.T(lang, i18n.MsgRouteSelected), departure),
		})
	}

	return RouteView{
		Kind: res.Kind(),
		Heading: fmt.Sprintf(i18n.T(lang, i18n.MsgRouteHeading),
			r.labels.PointLabel(key.Origin, lang),
			r.labels.PointLabel(key.Destination, lang),
		),
		Summary:    fmt.Sprintf(i18n.T(lang, i18n.MsgRouteSummary), FormatDate(res.Query.Date), res.Query.Passengers),
		Frequency:  offering.Frequency,
		Departures: departures,
	}
}

func (r *Renderer) routeNotFound(res domain.RouteNotFound, lang i18n.Language) RouteView {
	return RouteView{
		Kind:    res.Kind(),
		Heading: i18n.T(lang, i18n.MsgRouteNotFound),
		Messages: []string{
			fmt.Sprintf(i18n.T(lang, i18n.MsgRouteNotFoundDetail),
				r.labels.PointLabel(res.Query.Origin, lang),
				r.labels.PointLabel(res.Query.Destination, lang),
			),
			fmt.Sprintf(i18n.T(lang, i18n.MsgRouteHotline), r.hotline),
		},
	}
}

func (r *Renderer) shipmentFound(res domain.ShipmentFound, lang i18n.Language) ShipmentView {
	record := res.Record

	timeline := make([]TimelineItemView, 0, len(record.Timeline))
	for _, event := range record.Timeline {
		item := TimelineItemView{
			Time:     event.Time,
			Status:   event.Status,
			Location: event.Location,
			State:    stateCompleted,
		}
		if item.Time == "" {
			item.Time = i18n.T(lang, i18n.MsgTrackingExpected)
		}
		// A pending event has not happened yet, wherever it sits in the timeline.
		if event.Pending {
			item.State = statePending
		}
		timeline = append(timeline, item)
	}

	statusClass := statusInTransit
	if record.Delivered() {
		statusClass = statusDelivered
	}

	return ShipmentView{
		Kind:              res.Kind(),
		Heading:           fmt.Sprintf(i18n.T(lang, i18n.MsgTrackingHeading), record.Code),
		Status:            record.Status,
		StatusClass:       statusClass,
		LocationLabel:     i18n.T(lang, i18n.MsgTrackingLocation),
		Location:          record.Location,
		DeliveryLabel:     i18n.T(lang, i18n.MsgTrackingDelivery),
		EstimatedDelivery: record.EstimatedDelivery,
		TimelineTitle:     i18n.T(lang, i18n.MsgTrackingTimeline),
		Timeline:          timeline,
	}
}

// FormatDate renders an ISO date as day/month/year. Input that is not an ISO
// date is returned unchanged.
func FormatDate(iso string) string {
	t, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format(displayDateLayout)
}
