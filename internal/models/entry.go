package models

// PortfolioEntry is one static portfolio record
type PortfolioEntry struct {
	Title       string   `json:"title" yaml:"title"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	VideoID     string   `json:"video_id" yaml:"video_id"`
}

// Kind returns the parsed category of the entry
func (e PortfolioEntry) Kind() Category {
	return ParseCategory(e.Category)
}

// EntryList wraps the ordered sequence of entries
type EntryList struct {
	Entries []PortfolioEntry `json:"entries" yaml:"entries"`
}

// DefaultEntries returns the built-in showreel
func DefaultEntries() []PortfolioEntry {
	return []PortfolioEntry{
		{
			Title:       "Corporate Essentials",
			Category:    "stock",
			Description: "A polished montage of professional stock footage, edited to highlight corporate themes with seamless transitions and dynamic pacing.",
			Tags:        []string{"Corporate", "Stock Footage", "Business"},
			VideoID:     "1108892671",
		},
		{
			Title:       "From Credit Repair to Business Launch",
			Category:    "ui",
			Description: "Engaging UI animation showcasing a journey from financial recovery to entrepreneurial success, with sleek visuals and intuitive design.",
			Tags:        []string{"UI/UX", "Financial", "Micro-interactions"},
			VideoID:     "1108892715",
		},
		{
			Title:       "Airbnb Growth Simplified",
			Category:    "motion",
			Description: "Vibrant motion graphics illustrating streamlined strategies for scaling Airbnb businesses, with clear visuals and energetic flow.",
			Tags:        []string{"Explainer", "Data Visualization", "After Effects"},
			VideoID:     "1108892817",
		},
		{
			Title:       "30 Minutes to the Top",
			Category:    "motion",
			Description: "Fast-paced motion graphics depicting a rapid rise to success, blending bold visuals with concise storytelling.",
			Tags:        []string{"Business", "Fast-cut", "Kinetic Typography"},
			VideoID:     "1108892839",
		},
		{
			Title:       "Who I Am",
			Category:    "motion",
			Description: "A creative motion graphics piece introducing personal identity and skills through striking visuals and smooth animations.",
			Tags:        []string{"Personal Brand", "Typography", "Storytelling"},
			VideoID:     "1108892883",
		},
		{
			Title:       "Who I Am",
			Category:    "ui",
			Description: "A dynamic UI animation presenting personal branding with interactive elements and a modern, user-friendly aesthetic.",
			Tags:        []string{"Interactive", "Personal Brand", "UI Design"},
			VideoID:     "1108892942",
		},
	}
}
