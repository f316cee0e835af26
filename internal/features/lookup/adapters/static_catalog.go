package adapters

import (
	"slices"
	"strings"

	"holo-lookup/internal/core/i18n"
	"holo-lookup/internal/features/lookup/domain"
)

// StaticCatalog serves the demo reference tables. It is built once and never
// written to, so it is safe for concurrent readers.
type StaticCatalog struct {
	points    []domain.RoutePoint
	labels    map[i18n.Language]map[domain.RoutePoint]string
	routes    map[domain.RouteKey]domain.RouteOffering
	shipments map[string]domain.ShipmentRecord
}

// NewStaticCatalog creates a StaticCatalog holding the site's demo data.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{
		points: []domain.RoutePoint{"hcm", "hanoi", "danang", "cantho", "haiphong"},
		labels: map[i18n.Language]map[domain.RoutePoint]string{
			i18n.Vietnamese: {
				"hcm":      "TP. Hồ Chí Minh",
				"hanoi":    "Hà Nội",
				"danang":   "Đà Nẵng",
				"cantho":   "Cần Thơ",
				"haiphong": "Hải Phòng",
			},
			i18n.English: {
				"hcm":      "Ho Chi Minh City",
				"hanoi":    "Hanoi",
				"danang":   "Da Nang",
				"cantho":   "Can Tho",
				"haiphong": "Hai Phong",
			},
		},
		routes: map[domain.RouteKey]domain.RouteOffering{
			{Origin: "hcm", Destination: "danang"}: {
				Price:      "350.000đ",
				Duration:   "12-14 giờ",
				Frequency:  "6 chuyến/ngày",
				Departures: []string{"06:00", "08:30", "14:00", "16:30", "20:00", "22:30"},
				BusType:    "Giường nằm cao cấp",
			},
			{Origin: "hanoi", Destination: "hcm"}: {
				Price:      "450.000đ",
				Duration:   "18-20 giờ",
				Frequency:  "4 chuyến/ngày",
				Departures: []string{"07:00", "14:00", "20:00", "22:00"},
				BusType:    "Giường nằm VIP",
			},
			{Origin: "hcm", Destination: "cantho"}: {
				Price:      "120.000đ",
				Duration:   "3-4 giờ",
				Frequency:  "10 chuyến/ngày",
				Departures: []string{"05:30", "07:00", "09:00", "11:00", "13:00", "15:00", "17:00", "19:00", "21:00", "23:00"},
				BusType:    "Ghế ngồi thường",
			},
		},
		shipments: map[string]domain.ShipmentRecord{
			"HE001234": {
				Code:              "HE001234",
				Status:            "Đang giao hàng",
				Location:          "Trung tâm phân phối Quận 7, TP.HCM",
				EstimatedDelivery: "15:30 hôm nay",
				Timeline: []domain.TimelineEvent{
					{Time: "08:00", Status: "Đã nhận hàng", Location: "Kho Tân Bình"},
					{Time: "10:30", Status: "Đang vận chuyển", Location: "Trung tâm phân loại"},
					{Time: "13:45", Status: "Đang giao hàng", Location: "Trung tâm phân phối Quận 7"},
					{Time: "", Status: "Giao thành công", Location: "Đến người nhận", Pending: true},
				},
			},
			"HE005678": {
				Code:              "HE005678",
				Status:            domain.DeliveredStatus,
				Location:          "Đã giao đến người nhận",
				EstimatedDelivery: "Đã hoàn thành",
				Timeline: []domain.TimelineEvent{
					{Time: "14:00", Status: "Đã nhận hàng", Location: "Kho Hà Nội"},
					{Time: "16:20", Status: "Đang vận chuyển", Location: "Trung tâm phân loại Hà Nội"},
					{Time: "09:15", Status: "Đã đến điểm giao", Location: "Bưu cục Cầu Giấy"},
					{Time: "11:30", Status: domain.DeliveredStatus, Location: "Đến người nhận"},
				},
			},
		},
	}
}

// Offering returns a copy of the offering stored under key.
func (c *StaticCatalog) Offering(key domain.RouteKey) (domain.RouteOffering, bool) {
	offering, ok := c.routes[key]
	if !ok {
		return domain.RouteOffering{}, false
	}
	return offering.Clone(), true
}

// Keys returns all route keys sorted by their serialized form.
func (c *StaticCatalog) Keys() []domain.RouteKey {
	keys := make([]domain.RouteKey, 0, len(c.routes))
	for key := range c.routes {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b domain.RouteKey) int {
		return strings.Compare(a.String(), b.String())
	})
	return keys
}

// Points returns the route points in form display order.
func (c *StaticCatalog) Points() []domain.RoutePoint {
	return slices.Clone(c.points)
}

// PointLabel resolves point in lang, then in Vietnamese, then falls back to the raw code.
func (c *StaticCatalog) PointLabel(point domain.RoutePoint, lang i18n.Language) string {
	if label, ok := c.labels[lang][point]; ok {
		return label
	}
	if label, ok := c.labels[i18n.Vietnamese][point]; ok {
		return label
	}
	return string(point)
}

// Shipment returns a copy of the record stored under code.
func (c *StaticCatalog) Shipment(code string) (domain.ShipmentRecord, bool) {
	record, ok := c.shipments[code]
	if !ok {
		return domain.ShipmentRecord{}, false
	}
	return record.Clone(), true
}

// Codes returns all tracking codes, sorted.
func (c *StaticCatalog) Codes() []string {
	codes := make([]string, 0, len(c.shipments))
	for code := range c.shipments {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}
