package models

import "time"

// ContactSubmission is a captured contact form message
type ContactSubmission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}
