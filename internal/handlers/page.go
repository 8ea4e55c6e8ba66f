package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"dconn.dev/showreel/internal/portfolio"
	"dconn.dev/showreel/internal/services"
)

// PageHandler renders the portfolio page
type PageHandler struct {
	page             []byte
	portfolioService *services.PortfolioService
	player           portfolio.Player
	logger           *zap.Logger
}

// NewPageHandler reads the host page and checks that it renders and wires cleanly
func NewPageHandler(pagePath string, ps *services.PortfolioService, player portfolio.Player, logger *zap.Logger) (*PageHandler, error) {
	page, err := portfolio.ReadPage(pagePath)
	if err != nil {
		return nil, err
	}
	h := &PageHandler{
		page:             page,
		portfolioService: ps,
		player:           player,
		logger:           logger,
	}
	if _, err := h.build(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *PageHandler) build() (*portfolio.Controller, error) {
	return portfolio.Build(h.page, h.portfolioService.GetAll(), h.player, portfolio.WithLogger(h.logger))
}

// ServePage handles GET /?filter=<category>&video=<id>
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	c, err := h.build()
	if err != nil {
		h.logger.Error("build page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	if filter := q.Get("filter"); filter != "" {
		if err := c.ApplyFilter(filter); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
	}
	if video := q.Get("video"); video != "" {
		if err := c.OpenModal(video); err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
	}
	if err := h.showContactStatus(c, q.Get("sent"), q.Get("contact_error")); err != nil {
		h.logger.Error("contact status", zap.Error(err))
	}

	html, err := c.HTML()
	if err != nil {
		h.logger.Error("serialize page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// contactFields lists the fields a failed submission may point back to
var contactFields = map[string]bool{"name": true, "email": true, "subject": true, "message": true}

func (h *PageHandler) showContactStatus(c *portfolio.Controller, sent, field string) error {
	switch {
	case sent == "1":
		return c.ShowContactStatus("form-success", services.ContactConfirmation)
	case contactFields[field]:
		return c.ShowContactStatus("form-error", "Please check the "+field+" field and try again.")
	}
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, portfolio.ErrInvalidVideoID), errors.Is(err, portfolio.ErrUnknownFilter):
		return http.StatusBadRequest
	case errors.Is(err, portfolio.ErrUnknownVideo):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
