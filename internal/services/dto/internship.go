package dto

import (
	"strings"
	"time"
)

// CreateInternshipRequest carries a new record. The owner never appears
// here; it is injected from the authenticated identity.
type CreateInternshipRequest struct {
	CompanyName string `json:"companyName" validate:"required,max=100"`
	Position    string `json:"position" validate:"required,max=100"`
	Location    string `json:"location" validate:"required,max=100"`

	ApplicationType string `json:"applicationType,omitempty" validate:"omitempty,app_type"`
	Status          string `json:"status,omitempty" validate:"omitempty,app_status"`
	Priority        string `json:"priority,omitempty" validate:"omitempty,app_priority"`

	ApplicationDate *time.Time `json:"applicationDate,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`

	Salary         string `json:"salary,omitempty" validate:"omitempty,max=100"`
	Duration       string `json:"duration,omitempty" validate:"omitempty,max=100"`
	JobDescription string `json:"jobDescription,omitempty" validate:"omitempty,max=2000"`
	Notes          string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	WebsiteURL     string `json:"websiteUrl,omitempty" validate:"omitempty,max=500"`
}

// Normalize trims the text fields so a whitespace-only mandatory field is
// empty by the time validation runs.
func (r *CreateInternshipRequest) Normalize() {
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.Position = strings.TrimSpace(r.Position)
	r.Location = strings.TrimSpace(r.Location)
	r.Salary = strings.TrimSpace(r.Salary)
	r.Duration = strings.TrimSpace(r.Duration)
	r.JobDescription = strings.TrimSpace(r.JobDescription)
	r.Notes = strings.TrimSpace(r.Notes)
	r.WebsiteURL = strings.TrimSpace(r.WebsiteURL)
}

// UpdateInternshipRequest is the typed patch for a record. Mandatory columns
// stay non-empty: when provided they re-run the same length rules as on
// create. The mandatory and enum fields use omitnil rather than omitempty,
// so a provided-but-blank value fails instead of being skipped.
type UpdateInternshipRequest struct {
	CompanyName *string `json:"companyName,omitempty" validate:"omitnil,min=1,max=100"`
	Position    *string `json:"position,omitempty" validate:"omitnil,min=1,max=100"`
	Location    *string `json:"location,omitempty" validate:"omitnil,min=1,max=100"`

	ApplicationType *string `json:"applicationType,omitempty" validate:"omitnil,app_type"`
	Status          *string `json:"status,omitempty" validate:"omitnil,app_status"`
	Priority        *string `json:"priority,omitempty" validate:"omitnil,app_priority"`

	ApplicationDate *time.Time `json:"applicationDate,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`

	Salary         *string `json:"salary,omitempty" validate:"omitempty,max=100"`
	Duration       *string `json:"duration,omitempty" validate:"omitempty,max=100"`
	JobDescription *string `json:"jobDescription,omitempty" validate:"omitempty,max=2000"`
	Notes          *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
	WebsiteURL     *string `json:"websiteUrl,omitempty" validate:"omitempty,max=500"`
}

func (r *UpdateInternshipRequest) Normalize() {
	trimPtr(r.CompanyName)
	trimPtr(r.Position)
	trimPtr(r.Location)
	trimPtr(r.ApplicationType)
	trimPtr(r.Status)
	trimPtr(r.Priority)
	trimPtr(r.Salary)
	trimPtr(r.Duration)
	trimPtr(r.JobDescription)
	trimPtr(r.Notes)
	trimPtr(r.WebsiteURL)
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

// ListInternshipsQuery binds the listing query string.
type ListInternshipsQuery struct {
	Status   string `form:"status" validate:"omitempty,app_status"`
	Priority string `form:"priority" validate:"omitempty,app_priority"`
	Search   string `form:"search"`
	SortBy   string `form:"sortBy" validate:"omitempty,oneof=date company status"`
}

// StatisticsResponse reports grouped status counts. Every status key is
// present even at zero, and Total always equals the sum of the buckets.
type StatisticsResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}
