package portfolio

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"dconn.dev/showreel/internal/models"
)

// Controller owns the host document and the portfolio view-model.
// All mutations go through Dispatch, which reduces the state and then
// projects it onto the document.
type Controller struct {
	doc     *goquery.Document
	player  Player
	sel     Selectors
	logger  *zap.Logger
	entries []models.PortfolioEntry
	state   State

	rendered bool
	wired    bool
}

// Option configures a Controller
type Option func(*Controller)

// WithSelectors overrides the host document contract
func WithSelectors(sel Selectors) Option {
	return func(c *Controller) { c.sel = sel }
}

// WithLogger sets the controller logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// NewController creates a Controller over doc
func NewController(doc *goquery.Document, player Player, opts ...Option) *Controller {
	c := &Controller{
		doc:    doc,
		player: player,
		sel:    DefaultSelectors(),
		logger: zap.NewNop(),
		state:  InitialState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Render appends one card per entry to the grid, in order. It may run once.
func (c *Controller) Render(entries []models.PortfolioEntry) error {
	if c.rendered {
		return ErrAlreadyRendered
	}

	grid := c.doc.Find(c.sel.Grid).First()
	if grid.Length() == 0 {
		err := &ElementError{Role: "portfolio grid", Selector: c.sel.Grid}
		c.logger.Error("render failed", zap.Error(err))
		return err
	}

	for _, e := range entries {
		card, err := renderCard(e, c.player)
		if err != nil {
			return fmt.Errorf("render card %q: %w", e.Title, err)
		}
		grid.AppendHtml(card)
	}

	c.entries = append([]models.PortfolioEntry(nil), entries...)
	c.rendered = true
	c.logger.Debug("portfolio rendered", zap.Int("cards", len(entries)))
	return nil
}

// Wire checks that every interactive element exists and projects the initial state
func (c *Controller) Wire() error {
	if !c.rendered {
		return ErrNotRendered
	}

	required := []struct {
		role     string
		selector string
	}{
		{"filter controls", c.sel.FilterBtn},
		{"video overlay", c.sel.Overlay},
		{"modal player", c.sel.Player},
		{"close control", c.sel.CloseModal},
		{"contact form", c.sel.ContactForm},
	}
	for _, r := range required {
		if c.doc.Find(r.selector).Length() == 0 {
			err := &ElementError{Role: r.role, Selector: r.selector}
			c.logger.Error("wire failed", zap.Error(err))
			return err
		}
	}

	c.wired = true
	c.project()
	return nil
}

// Dispatch reduces msg into the state and updates the document
func (c *Controller) Dispatch(msg Msg) error {
	if !c.wired {
		return ErrNotWired
	}
	c.state = Reduce(c.state, msg)
	c.project()
	return nil
}

// ApplyFilter shows only the cards of category, or all cards for "all".
// The category must be carried by one of the filter controls.
func (c *Controller) ApplyFilter(category string) error {
	if !c.hasControl(c.sel.FilterBtn, c.sel.FilterAttr, category) {
		return fmt.Errorf("%w: %q", ErrUnknownFilter, category)
	}
	return c.Dispatch(FilterSelected{Category: category})
}

// OpenModal shows the overlay playing videoID.
// The id must belong to a rendered view control.
func (c *Controller) OpenModal(videoID string) error {
	if err := ValidateVideoID(videoID); err != nil {
		return err
	}
	if !c.hasControl(c.sel.ViewBtn, c.sel.VideoAttr, videoID) {
		return fmt.Errorf("%w: %q", ErrUnknownVideo, videoID)
	}
	return c.Dispatch(ViewRequested{VideoID: videoID})
}

func (c *Controller) hasControl(selector, attr, value string) bool {
	return c.doc.Find(selector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr(attr, "") == value
	}).Length() > 0
}

// CloseModal hides the overlay and stops playback
func (c *Controller) CloseModal() error {
	return c.Dispatch(CloseRequested{})
}

// ClickBackdrop handles a pointer interaction inside the overlay
func (c *Controller) ClickBackdrop(onOverlay bool) error {
	return c.Dispatch(BackdropClicked{OnOverlay: onOverlay})
}

// Click routes a pointer interaction on target to the matching message.
// Targets that are not part of the contract are ignored.
func (c *Controller) Click(target *goquery.Selection) error {
	msg, ok := c.MessageFor(target)
	if !ok {
		return nil
	}
	switch m := msg.(type) {
	case ViewRequested:
		return c.OpenModal(m.VideoID)
	case FilterSelected:
		return c.ApplyFilter(m.Category)
	}
	return c.Dispatch(msg)
}

// MessageFor maps a clicked element to its message
func (c *Controller) MessageFor(target *goquery.Selection) (Msg, bool) {
	switch {
	case target.Length() == 0:
		return nil, false
	case target.Is(c.sel.FilterBtn):
		return FilterSelected{Category: target.AttrOr(c.sel.FilterAttr, "")}, true
	case target.Is(c.sel.ViewBtn):
		return ViewRequested{VideoID: target.AttrOr(c.sel.VideoAttr, "")}, true
	case target.Is(c.sel.CloseModal):
		return CloseRequested{}, true
	case target.Is(c.sel.Overlay):
		return BackdropClicked{OnOverlay: true}, true
	case target.Closest(c.sel.Overlay).Length() > 0:
		return BackdropClicked{OnOverlay: false}, true
	}
	return nil, false
}

// State returns the current view-model
func (c *Controller) State() State {
	return c.state
}

// Entries returns the rendered entries in order
func (c *Controller) Entries() []models.PortfolioEntry {
	return c.entries
}

// Document returns the host document
func (c *Controller) Document() *goquery.Document {
	return c.doc
}

// VisibleVideoIDs lists the video ids of the cards currently shown
func (c *Controller) VisibleVideoIDs() []string {
	var ids []string
	c.doc.Find(c.sel.Grid).Find(c.sel.Item).Each(func(_ int, card *goquery.Selection) {
		if styleProperty(card.AttrOr("style", ""), "display") != "none" {
			ids = append(ids, card.AttrOr(c.sel.VideoAttr, ""))
		}
	})
	return ids
}

// ShowContactStatus places a status message at the end of the contact form
func (c *Controller) ShowContactStatus(class, message string) error {
	form := c.doc.Find(c.sel.ContactForm).First()
	if form.Length() == 0 {
		return &ElementError{Role: "contact form", Selector: c.sel.ContactForm}
	}
	form.AppendHtml(fmt.Sprintf(`<p class="%s" role="status">%s</p>`,
		html.EscapeString(class), html.EscapeString(message)))
	return nil
}

// HTML serializes the document
func (c *Controller) HTML() (string, error) {
	return c.doc.Html()
}

const activeClass = "active"

// setStyleProperty sets one declaration of the style attribute, keeping the others
func setStyleProperty(s *goquery.Selection, prop, value string) {
	s.Each(func(_ int, n *goquery.Selection) {
		var decls []string
		found := false
		for _, d := range strings.Split(n.AttrOr("style", ""), ";") {
			d = strings.TrimSpace(d)
			if d == "" {
				continue
			}
			name, _, _ := strings.Cut(d, ":")
			if strings.EqualFold(strings.TrimSpace(name), prop) {
				if found {
					continue
				}
				d = prop + ":" + value
				found = true
			}
			decls = append(decls, d)
		}
		if !found {
			decls = append(decls, prop+":"+value)
		}
		n.SetAttr("style", strings.Join(decls, ";"))
	})
}

// styleProperty returns the value of prop in a style attribute, or ""
func styleProperty(style, prop string) string {
	for _, d := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(d, ":")
		if ok && strings.EqualFold(strings.TrimSpace(name), prop) {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func (c *Controller) project() {
	s := c.state

	c.doc.Find(c.sel.FilterBtn).Each(func(_ int, btn *goquery.Selection) {
		if btn.AttrOr(c.sel.FilterAttr, "") == s.Filter {
			btn.AddClass(activeClass)
		} else {
			btn.RemoveClass(activeClass)
		}
	})

	c.doc.Find(c.sel.Grid).Find(c.sel.Item).Each(func(_ int, card *goquery.Selection) {
		if Visible(s.Filter, card.AttrOr(c.sel.CategoryAttr, "")) {
			setStyleProperty(card, "display", "block")
		} else {
			setStyleProperty(card, "display", "none")
		}
	})

	overlay := c.doc.Find(c.sel.Overlay)
	player := c.doc.Find(c.sel.Player)
	body := c.doc.Find("body")
	if s.Modal.Open() {
		overlay.AddClass(activeClass)
		player.SetAttr("src", c.player.AutoplayURL(s.Modal.VideoID))
		setStyleProperty(body, "overflow", "hidden")
	} else {
		overlay.RemoveClass(activeClass)
		player.SetAttr("src", "")
		setStyleProperty(body, "overflow", "auto")
	}
}
