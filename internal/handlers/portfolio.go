package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dconn.dev/showreel/internal/models"
	"dconn.dev/showreel/internal/portfolio"
	"dconn.dev/showreel/internal/services"
)

// PortfolioHandler handles portfolio API endpoints
type PortfolioHandler struct {
	portfolioService *services.PortfolioService
	player           portfolio.Player
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(ps *services.PortfolioService, player portfolio.Player) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: ps, player: player}
}

// EntryResponse is an entry with its resolved label and embed URLs
type EntryResponse struct {
	models.PortfolioEntry
	Label string        `json:"label"`
	Embed EmbedResponse `json:"embed"`
}

// EmbedResponse carries the player URLs for one video
type EmbedResponse struct {
	Preview  string `json:"preview"`
	Autoplay string `json:"autoplay"`
}

func (h *PortfolioHandler) embed(videoID string) EmbedResponse {
	return EmbedResponse{
		Preview:  h.player.PreviewURL(videoID),
		Autoplay: h.player.AutoplayURL(videoID),
	}
}

func (h *PortfolioHandler) toResponse(e models.PortfolioEntry) EntryResponse {
	return EntryResponse{
		PortfolioEntry: e,
		Label:          e.Kind().Label(),
		Embed:          h.embed(e.VideoID),
	}
}

// ListEntries handles GET /api/portfolio?category=<category>
func (h *PortfolioHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries := h.portfolioService.GetByCategory(r.URL.Query().Get("category"))
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, h.toResponse(e))
	}
	respondJSON(w, http.StatusOK, out)
}

// GetEntry handles GET /api/portfolio/{videoID}
func (h *PortfolioHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.portfolioService.GetByVideoID(chi.URLParam(r, "videoID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Entry not found")
		return
	}
	respondJSON(w, http.StatusOK, h.toResponse(*entry))
}

// GetEmbed handles GET /api/portfolio/{videoID}/embed
func (h *PortfolioHandler) GetEmbed(w http.ResponseWriter, r *http.Request) {
	entry, err := h.portfolioService.GetByVideoID(chi.URLParam(r, "videoID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Entry not found")
		return
	}
	respondJSON(w, http.StatusOK, h.embed(entry.VideoID))
}

// CategoryResponse is one filterable category with its card label
type CategoryResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ListCategories handles GET /api/categories
func (h *PortfolioHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	raw := h.portfolioService.Categories()
	out := make([]CategoryResponse, 0, len(raw))
	for _, c := range raw {
		out = append(out, CategoryResponse{Value: c, Label: models.ParseCategory(c).Label()})
	}
	respondJSON(w, http.StatusOK, out)
}
