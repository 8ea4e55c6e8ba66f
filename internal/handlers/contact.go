package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"dconn.dev/showreel/internal/services"
)

// ContactHandler handles the contact form
type ContactHandler struct {
	contactService *services.ContactService
	logger         *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contactService: cs, logger: logger}
}

// Submit handles POST /contact with a form or JSON body
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)

	var form services.ContactForm
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	isJSON := mediaType == "application/json"
	if isJSON {
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid form body")
			return
		}
		form = services.ContactForm{
			Name:    r.PostForm.Get("name"),
			Email:   r.PostForm.Get("email"),
			Subject: r.PostForm.Get("subject"),
			Message: r.PostForm.Get("message"),
		}
	}

	sub, err := h.contactService.Submit(r.Context(), form)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			if !isJSON {
				http.Redirect(w, r, "/?contact_error="+url.QueryEscape(verr.Field)+"#contact", http.StatusSeeOther)
				return
			}
			respondJSON(w, http.StatusBadRequest, map[string]string{
				"error": verr.Error(),
				"field": verr.Field,
			})
			return
		}
		h.logger.Error("contact submit", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Could not submit message")
		return
	}

	// Browser form posts follow post/redirect/get so the page shows the confirmation
	if !isJSON {
		http.Redirect(w, r, "/?sent=1#contact", http.StatusSeeOther)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"id":      sub.ID,
		"message": services.ContactConfirmation,
	})
}
