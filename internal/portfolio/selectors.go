package portfolio

// Selectors addresses the contract elements of the host document
type Selectors struct {
	Grid         string
	Item         string
	CategoryAttr string
	FilterBtn    string
	FilterAttr   string
	ViewBtn      string
	VideoAttr    string
	Overlay      string
	Player       string
	CloseModal   string
	ContactForm  string
}

// DefaultSelectors matches the embedded page
func DefaultSelectors() Selectors {
	return Selectors{
		Grid:         ".portfolio-grid",
		Item:         ".portfolio-item",
		CategoryAttr: "data-category",
		FilterBtn:    ".filter-btn",
		FilterAttr:   "data-filter",
		ViewBtn:      ".view-btn",
		VideoAttr:    "data-video",
		Overlay:      "#videoModal",
		Player:       "#modalVideo",
		CloseModal:   ".close-modal",
		ContactForm:  "#contactForm",
	}
}
