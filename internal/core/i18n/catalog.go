package i18n

// Message keys shared by handlers and the result renderer.
const (
	MsgRequiredRouteFields = "route.required"
	MsgSameEndpoints       = "route.same_endpoints"
	MsgInvalidPassengers   = "route.invalid_passengers"
	MsgRouteHeading        = "route.heading"
	MsgRouteSummary        = "route.summary"
	MsgRouteDeparture      = "route.departure"
	MsgRouteSelect         = "route.select"
	MsgRouteNotFound       = "route.not_found"
	MsgRouteNotFoundDetail = "route.not_found_detail"
	MsgRouteHotline        = "route.hotline"
	MsgRouteSelected       = "route.selected"

	MsgTrackingRequired       = "tracking.required"
	MsgTrackingHeading        = "tracking.heading"
	MsgTrackingLocation       = "tracking.location"
	MsgTrackingDelivery       = "tracking.delivery"
	MsgTrackingTimeline       = "tracking.timeline"
	MsgTrackingExpected       = "tracking.expected"
	MsgTrackingNotFound       = "tracking.not_found"
	MsgTrackingNotFoundDetail = "tracking.not_found_detail"
	MsgTrackingHotline        = "tracking.hotline"

	MsgContactRequired = "contact.required"
	MsgContactEmail    = "contact.email"
	MsgContactPhone    = "contact.phone"
	MsgContactThanks   = "contact.thanks"
	MsgContactFailed   = "contact.failed"

	MsgLanguageSwitched    = "language.switched"
	MsgLanguageUnsupported = "language.unsupported"
)

var messages = map[Language]map[string]string{
	Vietnamese: {
		MsgRequiredRouteFields: "Vui lòng điền đầy đủ thông tin",
		MsgSameEndpoints:       "Điểm đi và điểm đến không thể giống nhau",
		MsgInvalidPassengers:   "Số khách không hợp lệ",
		MsgRouteHeading:        "Tuyến: %s → %s",
		MsgRouteSummary:        "Ngày đi: %s | Số khách: %s",
		MsgRouteDeparture:      "Khởi hành",
		MsgRouteSelect:         "Chọn chuyến",
		MsgRouteNotFound:       "Không tìm thấy tuyến đường",
		MsgRouteNotFoundDetail: "Hiện tại chúng tôi chưa có tuyến từ %s đến %s.",
		MsgRouteHotline:        "Vui lòng liên hệ hotline %s để được hỗ trợ.",
		MsgRouteSelected:       "Đã chọn chuyến %s. Đang chuyển đến trang đặt vé...",

		MsgTrackingRequired:       "Vui lòng nhập mã vận đơn",
		MsgTrackingHeading:        "Mã vận đơn: %s",
		MsgTrackingLocation:       "Vị trí hiện tại:",
		MsgTrackingDelivery:       "Thời gian giao hàng:",
		MsgTrackingTimeline:       "Lịch trình vận chuyển",
		MsgTrackingExpected:       "Dự kiến",
		MsgTrackingNotFound:       "Không tìm thấy thông tin",
		MsgTrackingNotFoundDetail: "Mã vận đơn %s không tồn tại hoặc chưa được cập nhật vào hệ thống.",
		MsgTrackingHotline:        "Vui lòng kiểm tra lại mã hoặc liên hệ hotline %s.",

		MsgContactRequired: "Vui lòng điền đầy đủ thông tin bắt buộc",
		MsgContactEmail:    "Email không hợp lệ",
		MsgContactPhone:    "Số điện thoại không hợp lệ",
		MsgContactThanks:   "Cảm ơn bạn đã liên hệ! Chúng tôi sẽ phản hồi trong vòng 24 giờ.",
		MsgContactFailed:   "Không thể gửi yêu cầu, vui lòng thử lại sau",

		MsgLanguageSwitched:    "Đã chuyển sang tiếng Việt",
		MsgLanguageUnsupported: "Ngôn ngữ không được hỗ trợ",
	},
	English: {
		MsgRequiredRouteFields: "Please fill in all required information",
		MsgSameEndpoints:       "Departure and destination cannot be the same",
		MsgInvalidPassengers:   "Invalid number of passengers",
		MsgRouteHeading:        "Route: %s → %s",
		MsgRouteSummary:        "Departure date: %s | Passengers: %s",
		MsgRouteDeparture:      "Departure",
		MsgRouteSelect:         "Select trip",
		MsgRouteNotFound:       "No route found",
		MsgRouteNotFoundDetail: "We do not currently operate a route from %s to %s.",
		MsgRouteHotline:        "Please call our hotline %s for assistance.",
		MsgRouteSelected:       "Trip %s selected. Redirecting to the booking page...",

		MsgTrackingRequired:       "Please enter a tracking code",
		MsgTrackingHeading:        "Tracking code: %s",
		MsgTrackingLocation:       "Current location:",
		MsgTrackingDelivery:       "Delivery time:",
		MsgTrackingTimeline:       "Shipment timeline",
		MsgTrackingExpected:       "Expected",
		MsgTrackingNotFound:       "No information found",
		MsgTrackingNotFoundDetail: "Tracking code %s does not exist or has not been updated in our system yet.",
		MsgTrackingHotline:        "Please check the code or call our hotline %s.",

		MsgContactRequired: "Please fill in all required fields",
		MsgContactEmail:    "Invalid email address",
		MsgContactPhone:    "Invalid phone number",
		MsgContactThanks:   "Thank you for contacting us! We will reply within 24 hours.",
		MsgContactFailed:   "Your request could not be sent, please try again later",

		MsgLanguageSwitched:    "Switched to English",
		MsgLanguageUnsupported: "Unsupported language",
	},
}

// T returns the message for key in lang. Keys missing from lang fall back to
// Vietnamese and then to the key itself.
func T(lang Language, key string) string {
	if msg, ok := messages[lang][key]; ok {
		return msg
	}
	if msg, ok := messages[Vietnamese][key]; ok {
		return msg
	}
	return key
}
