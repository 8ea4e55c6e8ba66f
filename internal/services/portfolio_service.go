package services

import (
	"errors"
	"fmt"

	"dconn.dev/showreel/internal/models"
	"dconn.dev/showreel/internal/portfolio"
)

// ErrEntryNotFound is returned when no entry carries the requested video id
var ErrEntryNotFound = errors.New("entry not found")

// PortfolioService handles read-only access to the portfolio entries
type PortfolioService struct {
	entries []models.PortfolioEntry
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(entries []models.PortfolioEntry) *PortfolioService {
	return &PortfolioService{entries: entries}
}

// GetAll returns all entries in display order
func (s *PortfolioService) GetAll() []models.PortfolioEntry {
	return s.entries
}

// GetByCategory returns the entries shown under filter, keeping order
func (s *PortfolioService) GetByCategory(filter string) []models.PortfolioEntry {
	if filter == "" {
		filter = models.FilterAll
	}
	out := []models.PortfolioEntry{}
	for _, e := range s.entries {
		if portfolio.Visible(filter, e.Category) {
			out = append(out, e)
		}
	}
	return out
}

// GetByVideoID returns the first entry with the given video id
func (s *PortfolioService) GetByVideoID(videoID string) (*models.PortfolioEntry, error) {
	for i := range s.entries {
		if s.entries[i].VideoID == videoID {
			return &s.entries[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, videoID)
}

// Categories returns the distinct raw categories in first-seen order
func (s *PortfolioService) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range s.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}
