package i18n

// PageContent is the text swapped into the page when the language changes.
type PageContent struct {
	// Language is the language the content is written in.
	Language Language `json:"language"`
	// Title is the document title.
	Title string `json:"title"`
	// SwitchLabel is the caption of the language switcher, naming the other language.
	SwitchLabel string `json:"switch_label"`
	// Texts maps data-lang-key attributes to their markup.
	Texts map[string]string `json:"texts"`
}

var titles = map[Language]string{
	Vietnamese: "HOLO Group - Kết nối hành trình, Tăng tốc tương lai",
	English:    "HOLO Group - Connecting journeys, Accelerating the future",
}

var texts = map[Language]map[string]string{
	Vietnamese: {
		"nav-home":      "Trang chủ",
		"nav-about":     "Về chúng tôi",
		"nav-services":  "Dịch vụ",
		"nav-news":      "Tin tức",
		"nav-careers":   "Tuyển dụng",
		"nav-contact":   "Liên hệ",
		"hero-title":    `Kết nối hành trình<br><span class="highlight">Tăng tốc tương lai</span>`,
		"hero-subtitle": "Tập đoàn HOLO Group - Dẫn đầu trong lĩnh vực vận tải hành khách và logistics tại Việt Nam với cam kết an toàn, đúng giờ và chăm sóc khách hàng tận tâm.",
	},
	English: {
		"nav-home":      "Home",
		"nav-about":     "About Us",
		"nav-services":  "Services",
		"nav-news":      "News",
		"nav-careers":   "Careers",
		"nav-contact":   "Contact",
		"hero-title":    `Connecting journeys<br><span class="highlight">Accelerating the future</span>`,
		"hero-subtitle": "HOLO Group - Leading transportation and logistics company in Vietnam with commitment to safety, punctuality and dedicated customer care.",
	},
}

// Content returns a copy of the page content for lang. Unsupported languages
// get the Vietnamese content.
func Content(lang Language) PageContent {
	if _, ok := texts[lang]; !ok {
		lang = Vietnamese
	}

	copied := make(map[string]string, len(texts[lang]))
	for k, v := range texts[lang] {
		copied[k] = v
	}

	return PageContent{
		Language:    lang,
		Title:       titles[lang],
		SwitchLabel: switchLabel(lang),
		Texts:       copied,
	}
}

func switchLabel(lang Language) string {
	if lang == Vietnamese {
		return "EN"
	}
	return "VI"
}
