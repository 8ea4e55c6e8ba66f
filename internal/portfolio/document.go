package portfolio

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"

	"dconn.dev/showreel/internal/models"
)

//go:embed templates/*.html
var templates embed.FS

var cardTemplate = template.Must(template.ParseFS(templates, "templates/card.html"))

// NewDocument parses the built-in host page
func NewDocument() (*goquery.Document, error) {
	src, err := ReadPage("")
	if err != nil {
		return nil, err
	}
	return ParseDocument(bytes.NewReader(src))
}

// ReadPage returns the host page source from path, or the built-in page when path is empty
func ReadPage(path string) ([]byte, error) {
	if path == "" {
		src, err := templates.ReadFile("templates/page.html")
		if err != nil {
			return nil, fmt.Errorf("read page: %w", err)
		}
		return src, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", path, err)
	}
	return src, nil
}

// ParseDocument parses a host page from r
func ParseDocument(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return doc, nil
}

type cardData struct {
	Title       string
	Category    string
	Description string
	Label       string
	Tags        []string
	VideoID     string
	PreviewURL  string
}

func renderCard(e models.PortfolioEntry, p Player) (string, error) {
	var buf bytes.Buffer
	err := cardTemplate.Execute(&buf, cardData{
		Title:       e.Title,
		Category:    e.Category,
		Description: e.Description,
		Label:       e.Kind().Label(),
		Tags:        e.Tags,
		VideoID:     e.VideoID,
		PreviewURL:  p.PreviewURL(e.VideoID),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Build parses src, renders entries into it and wires the controls
func Build(src []byte, entries []models.PortfolioEntry, player Player, opts ...Option) (*Controller, error) {
	doc, err := ParseDocument(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	c := NewController(doc, player, opts...)
	if err := c.Render(entries); err != nil {
		return nil, err
	}
	if err := c.Wire(); err != nil {
		return nil, err
	}
	return c, nil
}
