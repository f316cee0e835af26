package render

import (
	"errors"
	"testing"

	"holo-lookup/internal/core/i18n"
	"holo-lookup/internal/features/lookup/adapters"
	"holo-lookup/internal/features/lookup/domain"
	"holo-lookup/internal/features/lookup/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup() (*Renderer, *service.LookupEngine) {
	catalog := adapters.NewStaticCatalog()
	return NewRenderer(catalog, "booking.html", "1900 1234"), service.NewLookupEngine(catalog, catalog)
}

func TestRenderer_RenderRoute_Found(t *testing.T) {
	renderer, engine := setup()
	result := engine.FindRoute(domain.RouteQuery{Origin: "hcm", Destination: "danang", Date: "2025-06-01", Passengers: "2"})

	view, err := renderer.RenderRoute(result, i18n.Vietnamese)
	require.NoError(t, err)

	assert.Equal(t, domain.KindRouteFound, view.Kind)
	assert.Equal(t, "Tuyến: TP. Hồ Chí Minh → Đà Nẵng", view.Heading)
	assert.Equal(t, "Ngày đi: 01/06/2025 | Số khách: 2", view.Summary)
	require.Len(t, view.Departures, 6)

	first := view.Departures[0]
	assert.Equal(t, "06:00", first.Time)
	assert.Equal(t, "Khởi hành", first.TimeLabel)
	assert.Equal(t, "Giường nằm cao cấp", first.BusType)
	assert.Equal(t, "12-14 giờ", first.Duration)
	assert.Equal(t, "350.000đ", first.Price)
	assert.Equal(t, "Chọn chuyến", first.ActionLabel)
	assert.Equal(t, "booking.html?route=hcm-danang&time=06%3A00", first.BookingURL)
	assert.Equal(t, "Đã chọn chuyến 06:00. Đang chuyển đến trang đặt vé...", first.Notice)
}

func TestRenderer_RenderRoute_FoundEnglish(t *testing.T) {
	renderer, engine := setup()
	result := engine.FindRoute(domain.RouteQuery{Origin: "hanoi", Destination: "hcm", Date: "2025-12-31", Passengers: "1"})

	view, err := renderer.RenderRoute(result, i18n.English)
	require.NoError(t, err)

	assert.Equal(t, "Route: Hanoi → Ho Chi Minh City", view.Heading)
	assert.Equal(t, "Departure date: 31/12/2025 | Passengers: 1", view.Summary)
	assert.Equal(t, "Select trip", view.Departures[0].ActionLabel)
}

func TestRenderer_RenderRoute_NotFound(t *testing.T) {
	renderer, engine := setup()
	result := engine.FindRoute(domain.RouteQuery{Origin: "danang", Destination: "hcm", Date: "2025-06-01", Passengers: "2"})

	view, err := renderer.RenderRoute(result, i18n.Vietnamese)
	require.NoError(t, err)

	assert.Equal(t, domain.KindRouteNotFound, view.Kind)
	assert.Equal(t, "Không tìm thấy tuyến đường", view.Heading)
	assert.Empty(t, view.Departures)
	assert.Equal(t, []string{
		"Hiện tại chúng tôi chưa có tuyến từ Đà Nẵng đến TP. Hồ Chí Minh.",
		"Vui lòng liên hệ hotline 1900 1234 để được hỗ trợ.",
	}, view.Messages)

	view, err = renderer.RenderRoute(result, i18n.English)
	require.NoError(t, err)
	assert.Equal(t, "We do not currently operate a route from Da Nang to Ho Chi Minh City.", view.Messages[0])
}

func TestRenderer_RenderShipment_InTransit(t *testing.T) {
	renderer, engine := setup()

	view, err := renderer.RenderShipment(engine.FindShipment("he001234"), i18n.Vietnamese)
	require.NoError(t, err)

	assert.Equal(t, "Mã vận đơn: HE001234", view.Heading)
	assert.Equal(t, "in-transit", view.StatusClass)
	assert.Equal(t, "Trung tâm phân phối Quận 7, TP.HCM", view.Location)
	assert.Equal(t, "15:30 hôm nay", view.EstimatedDelivery)
	require.Len(t, view.Timeline, 4)
	assert.Equal(t, "completed", view.Timeline[0].State)
	assert.Equal(t, "pending", view.Timeline[3].State)
	assert.Equal(t, "Dự kiến", view.Timeline[3].Time)
}

func TestRenderer_RenderShipment_Delivered(t *testing.T) {
	renderer, engine := setup()

	view, err := renderer.RenderShipment(engine.FindShipment("HE005678"), i18n.English)
	require.NoError(t, err)

	assert.Equal(t, "delivered", view.StatusClass)
	assert.Equal(t, "Shipment timeline", view.TimelineTitle)
	for _, item := range view.Timeline {
		assert.Equal(t, "completed", item.State)
	}
}

// TestRenderer_RenderShipment_PendingAnywhere verifies a pending event renders pending regardless of position.
func TestRenderer_RenderShipment_PendingAnywhere(t *testing.T) {
	renderer, _ := setup()
	result := domain.ShipmentFound{Record: domain.ShipmentRecord{
		Code:   "XX1",
		Status: "Đang vận chuyển",
		Timeline: []domain.TimelineEvent{
			{Time: "", Status: "Chờ lấy hàng", Location: "Kho", Pending: true},
			{Time: "09:00", Status: "Đang vận chuyển", Location: "Trung tâm"},
		},
	}}

	view, err := renderer.RenderShipment(result, i18n.English)
	require.NoError(t, err)

	assert.Equal(t, "pending", view.Timeline[0].State)
	assert.Equal(t, "Expected", view.Timeline[0].Time)
	assert.Equal(t, "completed", view.Timeline[1].State)
}

func TestRenderer_RenderShipment_NotFound(t *testing.T) {
	renderer, engine := setup()

	view, err := renderer.RenderShipment(engine.FindShipment("zz000000"), i18n.Vietnamese)
	require.NoError(t, err)

	assert.Equal(t, domain.KindShipmentNotFound, view.Kind)
	assert.Equal(t, "Không tìm thấy thông tin", view.Heading)
	assert.Contains(t, view.Messages[0], "ZZ000000")
	assert.Contains(t, view.Messages[1], "1900 1234")
}

func TestRenderer_MismatchedResult(t *testing.T) {
	renderer, engine := setup()

	_, err := renderer.RenderRoute(engine.FindShipment("HE001234"), i18n.Vietnamese)
	assert.True(t, errors.Is(err, ErrUnexpectedResult))

	_, err = renderer.RenderShipment(domain.RouteNotFound{}, i18n.Vietnamese)
	assert.ErrorIs(t, err, ErrUnexpectedResult)
}

func TestRenderer_RenderPoints(t *testing.T) {
	renderer, _ := setup()

	views := renderer.RenderPoints([]domain.RoutePoint{"hcm", "unknown"}, i18n.English)
	assert.Equal(t, []PointView{
		{Code: "hcm", Label: "Ho Chi Minh City"},
		{Code: "unknown", Label: "unknown"},
	}, views)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "01/06/2025", FormatDate("2025-06-01"))
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
	assert.Equal(t, "", FormatDate(""))
}

func TestRenderer_BookingURL_Escapes(t *testing.T) {
	renderer := NewRenderer(adapters.NewStaticCatalog(), "https://holo-group.com/booking", "1900 1234")

	got := renderer.BookingURL(domain.RouteKey{Origin: "hcm", Destination: "da nang&x=1"}, "06:00")
	assert.Equal(t, "https://holo-group.com/booking?route=hcm-da+nang%26x%3D1&time=06%3A00", got)
}
