package portfolio

import "dconn.dev/showreel/internal/models"

// Modal is the overlay state. It is open iff VideoID is non-empty.
type Modal struct {
	VideoID string `json:"video_id,omitempty"`
}

// Open reports whether the modal is showing a video
func (m Modal) Open() bool {
	return m.VideoID != ""
}

// State is the complete view-model of the portfolio page
type State struct {
	Filter string `json:"filter"`
	Modal  Modal  `json:"modal"`
}

// InitialState is the state before any interaction
func InitialState() State {
	return State{Filter: models.FilterAll}
}

// Msg is a user interaction handled by Reduce
type Msg interface {
	isMsg()
}

// FilterSelected is sent when a filter control is activated
type FilterSelected struct {
	Category string
}

// ViewRequested is sent when a card's view control is activated
type ViewRequested struct {
	VideoID string
}

// CloseRequested is sent by the explicit close control
type CloseRequested struct{}

// BackdropClicked is sent for pointer interactions inside the overlay.
// OnOverlay is true only when the backdrop itself was the target.
type BackdropClicked struct {
	OnOverlay bool
}

func (FilterSelected) isMsg()  {}
func (ViewRequested) isMsg()   {}
func (CloseRequested) isMsg()  {}
func (BackdropClicked) isMsg() {}

// Reduce returns the state that follows s after msg
func Reduce(s State, msg Msg) State {
	switch m := msg.(type) {
	case FilterSelected:
		s.Filter = m.Category
	case ViewRequested:
		if m.VideoID != "" {
			s.Modal = Modal{VideoID: m.VideoID}
		}
	case CloseRequested:
		s.Modal = Modal{}
	case BackdropClicked:
		if m.OnOverlay {
			s.Modal = Modal{}
		}
	}
	return s
}

// Visible reports whether a card of category is shown under filter
func Visible(filter, category string) bool {
	return filter == models.FilterAll || category == filter
}
