package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxFeedbackLen = 2000

// Feedback is a product feedback message, optionally anonymous.
type Feedback struct {
	ID        int64     `json:"id"`
	Username  *string   `json:"username,omitempty"`
	Name      *string   `json:"name,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateFeedbackRequest represents parameters to submit feedback.
// Name and Email are only meaningful for anonymous submissions.
type CreateFeedbackRequest struct {
	Message string  `json:"message"`
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
}

// Validate validates CreateFeedbackRequest.
func (r *CreateFeedbackRequest) Validate() error {
	msg := strings.TrimSpace(r.Message)
	if msg == "" {
		return errors.New("message is required and cannot be empty")
	}
	if utf8.RuneCountInString(msg) > maxFeedbackLen {
		return errors.New("message cannot exceed 2000 characters")
	}
	r.Message = msg
	if r.Email != nil {
		email := strings.TrimSpace(*r.Email)
		if email != "" && !strings.Contains(email, "@") {
			return errors.New("email is not valid")
		}
		if email == "" {
			r.Email = nil
		} else {
			r.Email = &email
		}
	}
	return nil
}
