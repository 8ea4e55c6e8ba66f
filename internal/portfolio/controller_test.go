package portfolio

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dconn.dev/showreel/internal/models"
)

func scenarioEntries() []models.PortfolioEntry {
	return []models.PortfolioEntry{
		{Title: "First", Category: "motion", Description: "one", Tags: []string{"A", "B", "A"}, VideoID: "111"},
		{Title: "Second", Category: "ui", Description: "two", Tags: []string{"C"}, VideoID: "222"},
	}
}

func newWiredController(t *testing.T, entries []models.PortfolioEntry) *Controller {
	t.Helper()

	doc, err := NewDocument()
	require.NoError(t, err)
	c := NewController(doc, NewPlayer(""))
	require.NoError(t, c.Render(entries))
	require.NoError(t, c.Wire())
	return c
}

func cards(c *Controller) *goquery.Selection {
	return c.Document().Find(".portfolio-grid .portfolio-item")
}

func TestRenderProducesOneCardPerEntryInOrder(t *testing.T) {
	t.Parallel()

	entries := models.DefaultEntries()
	c := newWiredController(t, entries)

	items := cards(c)
	require.Equal(t, len(entries), items.Length())
	items.Each(func(i int, card *goquery.Selection) {
		e := entries[i]
		assert.Equal(t, e.Category, card.AttrOr("data-category", ""))
		assert.Equal(t, e.VideoID, card.AttrOr("data-video", ""))
		assert.Equal(t, e.Title, card.Find("h3").Text())
		assert.Equal(t, e.Description, card.Find(".portfolio-text p").Text())
		assert.Equal(t, e.Kind().Label(), card.Find(".portfolio-category").Text())
		assert.Equal(t, "https://player.vimeo.com/video/"+e.VideoID, card.Find("iframe").AttrOr("src", ""))
		assert.Equal(t, e.VideoID, card.Find(".view-btn").AttrOr("data-video", ""))
	})
}

func TestRenderKeepsTagOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	c := newWiredController(t, scenarioEntries())

	var tags []string
	cards(c).First().Find(".tag").Each(func(_ int, s *goquery.Selection) {
		tags = append(tags, s.Text())
	})
	assert.Equal(t, []string{"A", "B", "A"}, tags)
}

func TestRenderEscapesEntryText(t *testing.T) {
	t.Parallel()

	entries := []models.PortfolioEntry{{Title: "<b>bold</b>", Category: "ui", VideoID: "9"}}
	c := newWiredController(t, entries)

	assert.Equal(t, "<b>bold</b>", cards(c).Find("h3").Text())
	assert.Equal(t, 0, cards(c).Find("h3 b").Length())
}

func TestRenderUnknownCategoryUsesDefaultLabel(t *testing.T) {
	t.Parallel()

	entries := []models.PortfolioEntry{{Title: "Pod", Category: "podcast", VideoID: "5"}}
	c := newWiredController(t, entries)

	assert.Equal(t, "Stock Video Edits", cards(c).Find(".portfolio-category").Text())
	require.NoError(t, c.ApplyFilter("stock"))
	assert.Empty(t, c.VisibleVideoIDs())
	require.NoError(t, c.ApplyFilter("all"))
	assert.Equal(t, []string{"5"}, c.VisibleVideoIDs())
}

func TestRenderFailsWithoutGrid(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument(strings.NewReader(`<html><body><div class="other"></div></body></html>`))
	require.NoError(t, err)

	c := NewController(doc, NewPlayer(""))
	err = c.Render(scenarioEntries())
	require.ErrorIs(t, err, ErrMissingElement)

	var elemErr *ElementError
	require.True(t, errors.As(err, &elemErr))
	assert.Equal(t, ".portfolio-grid", elemErr.Selector)
}

func TestRenderRunsOnce(t *testing.T) {
	t.Parallel()

	c := newWiredController(t, scenarioEntries())
	assert.ErrorIs(t, c.Render(scenarioEntries()), ErrAlreadyRendered)
	assert.Equal(t, 2, cards(c).Length())
}

func TestWireOrdering(t *testing.T) {
	t.Parallel()

	doc, err := NewDocument()
	require.NoError(t, err)
	c := NewController(doc, NewPlayer(""))

	assert.ErrorIs(t, c.Wire(), ErrNotRendered)
	assert.ErrorIs(t, c.ApplyFilter("ui"), ErrNotWired)
}

func TestWireFailsWithoutModal(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<a class="filter-btn" data-filter="all">All</a>
<div class="portfolio-grid"></div>
</body></html>`
	doc, err := ParseDocument(strings.NewReader(page))
	require.NoError(t, err)

	c := NewController(doc, NewPlayer(""))
	require.NoError(t, c.Render(scenarioEntries()))

	err = c.Wire()
	var elemErr *ElementError
	require.ErrorAs(t, err, &elemErr)
	assert.Equal(t, "#videoModal", elemErr.Selector)
}

func TestFilterScenario(t *testing.T) {
	t.Parallel()

	c := newWiredController(t, scenarioEntries())
	assert.Equal(t, []string{"111", "222"}, c.VisibleVideoIDs())

	require.NoError(t, c.ApplyFilter("motion"))
	assert.Equal(t, []string{"111"}, c.VisibleVideoIDs())
	assert.Equal(t, "display:none", cards(c).Eq(1).AttrOr("style", ""))

	active := c.Document().Find(".filter-btn.active")
	require.Equal(t, 1, active.Length())
	assert.Equal(t, "motion", active.AttrOr("data-filter", ""))

	require.NoError(t, c.ApplyFilter("all"))
	assert.Equal(t, []string{"111", "222"}, c.VisibleVideoIDs())
}

func TestFilterCompletenessAndIdempotence(t *testing.T) {
	t.Parallel()

	entries := models.DefaultEntries()
	c := newWiredController(t, entries)

	for _, f := range []string{"all", "stock", "ui", "motion"} {
		require.NoError(t, c.ApplyFilter(f))
		first := c.VisibleVideoIDs()
		require.NoError(t, c.ApplyFilter(f))
		assert.Equal(t, first, c.VisibleVideoIDs(), "filter %s", f)

		var want []string
		for _, e := range entries {
			if f == "all" || e.Category == f {
				want = append(want, e.VideoID)
			}
		}
		assert.Equal(t, want, first, "filter %s", f)
	}
}

func TestFilterWithNoMatchHidesEverything(t *testing.T) {
	t.Parallel()

	c := newWiredController(t, scenarioEntries())
	require.NoError(t, c.ApplyFilter("stock"))
	assert.Empty(t, c.VisibleVideoIDs())
	assert.Equal(t, "stock", c.Document().Find(".filter-btn.active").AttrOr("data-filter", ""))
}

func TestModalScenario(t *testing.T) {
	t.Parallel()

	c := newWiredController(t, scenarioEntries())
	doc := c.Document()

	view := doc.Find(`.view-btn[data-video="222"]`)
	require.NoError(t, c.Click(view))
	assert.Equal(t, Modal{VideoID: "222"}, c.State().Modal)

	src := doc.Find("#modalVideo").AttrOr("src", "")
	assert.True(t, strings.HasSuffix(src, "/video/222?autoplay=1"), src)
	assert.True(t, doc.Find("#videoModal").HasClass("active"))
	assert.Equal(t, "overflow:hidden", doc.Find("body").AttrOr("style", ""))

	require.NoError(t, c.Click(doc.Find("#modalVideo")))
	assert.True(t, c.State().Modal.Open(), "inner content click keeps modal open")

	require.NoError(t, c.Click(doc.Find("#videoModal")))
	assert.False(t, c.State().Modal.Open())
	assert.Equal(t, "", doc.Find("#modalVideo").AttrOr("src", "missing"))
	assert.False(t, doc.Find("#videoModal").HasClass("active"))
	assert.Equal(t, "overflow:auto", doc.Find("body").AttrOr("style", ""))
}

func TestModalRoundTripMatchesInitialState(t *testing.T) {
	t.Parallel()

	c := newWiredController(t, scenarioEntries())
	before, err := c.HTML()
	require.NoError(t, err)

	require.NoError(t, c.OpenModal("111"))
	require.NoError(t, c.Click(c.Document().Find(".close-modal")))

	after, err := c.HTML()
	require.NoError(t, err)
	assert.Equal(t, InitialState(), c.State())
	assert.Equal(t, before, after)
}

func TestOpenModalRejectsInvalidID(t *testing.T) {
	t.Parallel()

	c := newWiredController(t, scenarioEntries())
	assert.ErrorIs(t, c.OpenModal(`1" onload="x`), ErrInvalidVideoID)
	assert.False(t, c.State().Modal.Open())
}

func TestClickIgnoresUnrelatedTargets(t *testing.T) {
	t.Parallel()

	c := newWiredController(t, scenarioEntries())
	require.NoError(t, c.Click(c.Document().Find("h3").First()))
	require.NoError(t, c.Click(c.Document().Find(".does-not-exist")))
	assert.Equal(t, InitialState(), c.State())
}

func TestBuildFromBuiltInPage(t *testing.T) {
	t.Parallel()

	src, err := ReadPage("")
	require.NoError(t, err)

	c, err := Build(src, models.DefaultEntries(), NewPlayer(""))
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 6)
	assert.Equal(t, 1, c.Document().Find(`.filter-btn.active[data-filter="all"]`).Length())
	assert.Equal(t, 1, c.Document().Find("#contactForm").Length())
}

func TestBuildSurfacesMissingGrid(t *testing.T) {
	t.Parallel()

	_, err := Build([]byte(`<html><body></body></html>`), models.DefaultEntries(), NewPlayer(""))
	assert.ErrorIs(t, err, ErrMissingElement)
}

func TestDirectModalMutators(t *testing.T) {
	t.Parallel()

	c := newWiredController(t, scenarioEntries())

	require.NoError(t, c.OpenModal("111"))
	require.NoError(t, c.ClickBackdrop(false))
	assert.Equal(t, "111", c.State().Modal.VideoID)

	require.NoError(t, c.OpenModal("222"))
	assert.Equal(t, "https://player.vimeo.com/video/222?autoplay=1", c.Document().Find("#modalVideo").AttrOr("src", ""))

	require.NoError(t, c.CloseModal())
	assert.False(t, c.State().Modal.Open())

	require.NoError(t, c.OpenModal("111"))
	require.NoError(t, c.ClickBackdrop(true))
	assert.Equal(t, "", c.Document().Find("#modalVideo").AttrOr("src", "missing"))
}

func TestApplyFilterRequiresControl(t *testing.T) {
	t.Parallel()

	c := newWiredController(t, scenarioEntries())
	require.NoError(t, c.ApplyFilter("motion"))

	assert.ErrorIs(t, c.ApplyFilter("podcast"), ErrUnknownFilter)
	assert.Equal(t, "motion", c.State().Filter)

	active := c.Document().Find(".filter-btn.active")
	require.Equal(t, 1, active.Length())
	assert.Equal(t, "motion", active.AttrOr("data-filter", ""))
}

func TestOpenModalRequiresRenderedCard(t *testing.T) {
	t.Parallel()

	c := newWiredController(t, scenarioEntries())

	assert.ErrorIs(t, c.OpenModal("999"), ErrUnknownVideo)
	assert.False(t, c.State().Modal.Open())
	assert.Equal(t, "", c.Document().Find("#modalVideo").AttrOr("src", "missing"))
}

func TestProjectionKeepsExistingStyles(t *testing.T) {
	t.Parallel()

	page := `<html><body style="color:red; overflow:scroll">
<a class="filter-btn" data-filter="all">All</a>
<a class="filter-btn" data-filter="ui">UI</a>
<div class="portfolio-grid"></div>
<div id="videoModal"><a class="close-modal">x</a><iframe id="modalVideo" src=""></iframe></div>
<form id="contactForm"></form>
</body></html>`
	doc, err := ParseDocument(strings.NewReader(page))
	require.NoError(t, err)

	c := NewController(doc, NewPlayer(""))
	require.NoError(t, c.Render(scenarioEntries()))
	require.NoError(t, c.Wire())
	assert.Equal(t, "color:red;overflow:auto", doc.Find("body").AttrOr("style", ""))

	require.NoError(t, c.OpenModal("222"))
	assert.Equal(t, "color:red;overflow:hidden", doc.Find("body").AttrOr("style", ""))

	require.NoError(t, c.ApplyFilter("ui"))
	assert.Equal(t, []string{"222"}, c.VisibleVideoIDs())
}

func TestSetStylePropertyMerges(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument(strings.NewReader(`<div style="opacity: 1; display: none; DISPLAY:flex"></div>`))
	require.NoError(t, err)

	div := doc.Find("div")
	setStyleProperty(div, "display", "block")
	assert.Equal(t, "opacity: 1;display:block", div.AttrOr("style", ""))
	assert.Equal(t, "block", styleProperty(div.AttrOr("style", ""), "display"))
	assert.Equal(t, "", styleProperty(div.AttrOr("style", ""), "overflow"))
}

func TestWireFailsWithoutContactForm(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<a class="filter-btn" data-filter="all">All</a>
<div class="portfolio-grid"></div>
<div id="videoModal"><a class="close-modal">x</a><iframe id="modalVideo"></iframe></div>
</body></html>`
	doc, err := ParseDocument(strings.NewReader(page))
	require.NoError(t, err)

	c := NewController(doc, NewPlayer(""))
	require.NoError(t, c.Render(scenarioEntries()))

	var elemErr *ElementError
	require.ErrorAs(t, c.Wire(), &elemErr)
	assert.Equal(t, "#contactForm", elemErr.Selector)
}

func TestShowContactStatus(t *testing.T) {
	t.Parallel()

	c := newWiredController(t, scenarioEntries())
	require.NoError(t, c.ShowContactStatus("form-success", "Sent! <b>thanks</b>"))

	status := c.Document().Find("#contactForm p.form-success")
	require.Equal(t, 1, status.Length())
	assert.Equal(t, "Sent! <b>thanks</b>", status.Text())
	assert.Equal(t, 0, status.Find("b").Length())
}
