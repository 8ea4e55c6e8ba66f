package services

import (
	"context"
	"fmt"
	"html"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"dconn.dev/showreel/internal/models"
)

// ContactConfirmation is shown after a successful submission
const ContactConfirmation = "Message sent successfully! I'll get back to you soon."

// ContactForm holds the four contact fields as submitted
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ValidationError reports the first invalid contact field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ContactService captures contact form submissions locally
type ContactService struct {
	logger *zap.Logger
	policy *bluemonday.Policy
	now    func() time.Time
}

// NewContactService creates a new ContactService
func NewContactService(logger *zap.Logger) *ContactService {
	return &ContactService{
		logger: logger,
		policy: bluemonday.StrictPolicy(),
		now:    time.Now,
	}
}

// plainText strips markup and returns the remaining text unescaped
func (s *ContactService) plainText(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}

// Submit validates and records a submission. Nothing is sent over the network.
func (s *ContactService) Submit(ctx context.Context, form ContactForm) (*models.ContactSubmission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fields := []struct {
		name  string
		value *string
	}{
		{"name", &form.Name},
		{"email", &form.Email},
		{"subject", &form.Subject},
		{"message", &form.Message},
	}
	for _, f := range fields {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return nil, &ValidationError{Field: f.name, Reason: "required"}
		}
	}

	addr, err := mail.ParseAddress(form.Email)
	if err != nil {
		return nil, &ValidationError{Field: "email", Reason: "invalid address"}
	}

	sub := &models.ContactSubmission{
		ID:         uuid.NewString(),
		Name:       s.plainText(form.Name),
		Email:      addr.Address,
		Subject:    s.plainText(form.Subject),
		Message:    s.plainText(form.Message),
		ReceivedAt: s.now().UTC(),
	}

	s.logger.Info("contact form submitted",
		zap.String("id", sub.ID),
		zap.String("name", sub.Name),
		zap.String("email", sub.Email),
		zap.String("subject", sub.Subject),
		zap.Int("message_len", len(sub.Message)),
	)

	return sub, nil
}
