package model

import (
	"errors"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

const maxStageNotesLen = 500

// Stage is one step inside a process. Two orderings coexist deliberately:
// the explicit integer Order drives list views and status derivation, while
// Date drives timeline and flow aggregation. The two may diverge; consumers
// must pick one explicitly.
type Stage struct {
	ID        int64     `json:"id"`
	ProcessID int64     `json:"process_id"`
	Name      StageName `json:"stage_name"`
	Date      time.Time `json:"stage_date"`
	Notes     *string   `json:"notes,omitempty"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateStageRequest represents parameters to add a stage to a process.
// Order is optional; when nil the upstream API assigns the next slot.
type CreateStageRequest struct {
	ProcessID int64     `json:"process_id"`
	Name      StageName `json:"stage_name"`
	Date      time.Time `json:"stage_date"`
	Notes     *string   `json:"notes,omitempty"`
	Order     *int      `json:"order,omitempty"`
}

// UpdateStageRequest represents parameters to update a stage.
type UpdateStageRequest struct {
	Name  *StageName `json:"stage_name,omitempty"`
	Date  *time.Time `json:"stage_date,omitempty"`
	Notes *string    `json:"notes,omitempty"`
	Order *int       `json:"order,omitempty"`
}

// Validate validates CreateStageRequest.
func (r *CreateStageRequest) Validate() error {
	if r.ProcessID <= 0 {
		return errors.New("process_id is required")
	}
	name := strings.TrimSpace(string(r.Name))
	if name == "" {
		return errors.New("stage_name is required and cannot be empty")
	}
	r.Name = NormalizeStageName(name)
	if r.Date.IsZero() {
		return errors.New("stage_date is required")
	}
	if r.Notes != nil && utf8.RuneCountInString(*r.Notes) > maxStageNotesLen {
		return errors.New("notes cannot exceed 500 characters")
	}
	if r.Order != nil && *r.Order <= 0 {
		return errors.New("order must be > 0")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateStageRequest.
func (r *UpdateStageRequest) HasUpdates() bool {
	return r.Name != nil || r.Date != nil || r.Notes != nil || r.Order != nil
}

// Validate validates UpdateStageRequest, ensuring at least one field is set.
func (r *UpdateStageRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		n := strings.TrimSpace(string(*r.Name))
		if n == "" {
			return errors.New("stage_name cannot be empty")
		}
		*r.Name = NormalizeStageName(n)
	}
	if r.Date != nil && r.Date.IsZero() {
		return errors.New("stage_date cannot be zero")
	}
	if r.Notes != nil && utf8.RuneCountInString(*r.Notes) > maxStageNotesLen {
		return errors.New("notes cannot exceed 500 characters")
	}
	if r.Order != nil && *r.Order <= 0 {
		return errors.New("order must be > 0")
	}
	return nil
}

// StagesByOrder returns a copy of stages sorted ascending by the explicit
// order field, ties broken by ID for stability.
func StagesByOrder(stages []Stage) []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// StagesByDate returns a copy of stages sorted ascending by stage date.
// Input order is preserved for equal dates.
func StagesByDate(stages []Stage) []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
