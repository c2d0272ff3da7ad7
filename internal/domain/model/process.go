package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxCompanyNameLen = 100
	maxPositionLen    = 200
)

// ProcessStatus is the derived lifecycle state of an application process.
type ProcessStatus string

const (
	ProcessStatusActive    ProcessStatus = "active"
	ProcessStatusCompleted ProcessStatus = "completed"
	ProcessStatusRejected  ProcessStatus = "rejected"
)

// Valid reports whether the status is supported.
func (s ProcessStatus) Valid() bool {
	switch s {
	case ProcessStatusActive, ProcessStatusCompleted, ProcessStatusRejected:
		return true
	default:
		return false
	}
}

// ParseProcessStatus normalizes a status string and reports whether it is supported.
func ParseProcessStatus(value string) (ProcessStatus, bool) {
	s := ProcessStatus(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Process represents one job application at a company. The status field is
// derived server-side from the most recent stage; the copy held here is the
// upstream API's answer, never computed locally except via DeriveStatus.
type Process struct {
	ID        int64         `json:"id"`
	Company   string        `json:"company_name"`
	Position  *string       `json:"position,omitempty"`
	Status    ProcessStatus `json:"status"`
	IsPublic  bool          `json:"is_public"`
	ShareID   *string       `json:"share_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ProcessDetail is a process together with its stages, ordered by `order`.
type ProcessDetail struct {
	Process
	Stages []Stage `json:"stages"`
}

// DeriveStatus computes a process status from its stages the same way the
// upstream API does: the stage with the highest order decides. "Offer" means
// completed, "Reject" means rejected, anything else (or no stages) is active.
func DeriveStatus(stages []Stage) ProcessStatus {
	if len(stages) == 0 {
		return ProcessStatusActive
	}
	last := stages[0]
	for _, s := range stages[1:] {
		if s.Order > last.Order {
			last = s
		}
	}
	switch NormalizeStageName(string(last.Name)) {
	case StageReject:
		return ProcessStatusRejected
	case StageOffer:
		return ProcessStatusCompleted
	default:
		return ProcessStatusActive
	}
}

// CreateProcessRequest represents parameters to create a Process.
type CreateProcessRequest struct {
	Company  string  `json:"company_name"`
	Position *string `json:"position,omitempty"`
}

// UpdateProcessRequest represents parameters to update a Process. Status
// overrides the stage-derived value upstream until the next stage change.
type UpdateProcessRequest struct {
	Company  *string        `json:"company_name,omitempty"`
	Position *string        `json:"position,omitempty"`
	Status   *ProcessStatus `json:"status,omitempty"`
}

// ShareToggleRequest toggles public sharing for a process.
type ShareToggleRequest struct {
	IsPublic bool `json:"is_public"`
}

// Validate validates CreateProcessRequest and normalizes the position:
// empty or whitespace-only positions become nil.
func (r *CreateProcessRequest) Validate() error {
	company := strings.TrimSpace(r.Company)
	if company == "" {
		return errors.New("company_name is required and cannot be empty")
	}
	if utf8.RuneCountInString(company) > maxCompanyNameLen {
		return errors.New("company_name cannot exceed 100 characters")
	}
	r.Company = company
	r.Position = normalizePosition(r.Position)
	if r.Position != nil && utf8.RuneCountInString(*r.Position) > maxPositionLen {
		return errors.New("position cannot exceed 200 characters")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateProcessRequest.
func (r *UpdateProcessRequest) HasUpdates() bool {
	return r.Company != nil || r.Position != nil || r.Status != nil
}

// Validate validates UpdateProcessRequest, ensuring at least one field is set.
func (r *UpdateProcessRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Company != nil {
		c := strings.TrimSpace(*r.Company)
		if c == "" {
			return errors.New("company_name cannot be empty")
		}
		if utf8.RuneCountInString(c) > maxCompanyNameLen {
			return errors.New("company_name cannot exceed 100 characters")
		}
		*r.Company = c
	}
	if r.Position != nil {
		r.Position = normalizePosition(r.Position)
		if r.Position != nil && utf8.RuneCountInString(*r.Position) > maxPositionLen {
			return errors.New("position cannot exceed 200 characters")
		}
	}
	if r.Status != nil {
		parsed, ok := ParseProcessStatus(string(*r.Status))
		if !ok {
			return errors.New("status must be one of active, completed, rejected")
		}
		*r.Status = parsed
	}
	return nil
}

// normalizePosition trims the position and collapses empty values to nil so
// "no job title" compares equal regardless of how the client sent it.
func normalizePosition(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
