package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"dconn.dev/showreel/internal/config"
	"dconn.dev/showreel/internal/middleware"
	"dconn.dev/showreel/internal/portfolio"
	"dconn.dev/showreel/internal/services"
)

// SetupRoutes configures all routes and returns the router.
// It fails when the host page does not satisfy the portfolio contract.
func SetupRoutes(cfg *config.Config, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMid.RequestID)
	r.Use(chiMid.RealIP)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// Initialize services
	player := portfolio.NewPlayer(cfg.PlayerHost)
	portfolioService := services.NewPortfolioService(cfg.Entries)
	contactService := services.NewContactService(logger)

	// Initialize handlers
	pageHandler, err := NewPageHandler(cfg.PagePath, portfolioService, player, logger)
	if err != nil {
		return nil, err
	}
	portfolioHandler := NewPortfolioHandler(portfolioService, player)
	contactHandler := NewContactHandler(contactService, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/portfolio", portfolioHandler.ListEntries)
		r.Get("/portfolio/{videoID}", portfolioHandler.GetEntry)
		r.Get("/portfolio/{videoID}/embed", portfolioHandler.GetEmbed)
		r.Get("/categories", portfolioHandler.ListCategories)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Post("/contact", contactHandler.Submit)

	// Static files
	if cfg.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(cfg.StaticDir))
		r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	}

	r.Get("/", pageHandler.ServePage)

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("encode json response", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
