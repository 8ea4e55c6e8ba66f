package models

// Category is the closed set of portfolio groupings used for filtering and labels
type Category int

const (
	CategoryUnknown Category = iota
	CategoryStock
	CategoryUI
	CategoryMotion
)

// FilterAll is the filter value that matches every card
const FilterAll = "all"

// ParseCategory maps a raw category value to the closed set.
// Anything outside {"stock", "ui", "motion"} is CategoryUnknown.
func ParseCategory(s string) Category {
	switch s {
	case "stock":
		return CategoryStock
	case "ui":
		return CategoryUI
	case "motion":
		return CategoryMotion
	}
	return CategoryUnknown
}

// String returns the wire value of the category
func (c Category) String() string {
	switch c {
	case CategoryStock:
		return "stock"
	case CategoryUI:
		return "ui"
	case CategoryMotion:
		return "motion"
	}
	return "unknown"
}

// Label returns the human-readable card label. Unknown falls back to the stock label.
func (c Category) Label() string {
	switch c {
	case CategoryMotion:
		return "Motion Graphics"
	case CategoryUI:
		return "UI Animations"
	default:
		return "Stock Video Edits"
	}
}

// Categories lists the known categories in filter-bar order
func Categories() []Category {
	return []Category{CategoryStock, CategoryUI, CategoryMotion}
}
