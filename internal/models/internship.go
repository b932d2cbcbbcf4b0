package models

import "time"

// Internship is a single tracked job application. Every row belongs to
// exactly one user; the owner is set at creation and never reassigned.
type Internship struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;index:idx_internships_user_status" json:"userId"`

	CompanyName string `gorm:"size:100;not null" json:"companyName"`
	Position    string `gorm:"size:100;not null" json:"position"`
	Location    string `gorm:"size:100;not null" json:"location"`

	ApplicationType ApplicationType   `gorm:"type:varchar(20);default:'online'" json:"applicationType"`
	Status          ApplicationStatus `gorm:"type:varchar(20);default:'wishlist';index:idx_internships_user_status" json:"status"`
	Priority        Priority          `gorm:"type:varchar(10);default:'medium'" json:"priority"`

	ApplicationDate time.Time  `gorm:"index" json:"applicationDate"`
	Deadline        *time.Time `json:"deadline,omitempty"`

	Salary         string `gorm:"size:100" json:"salary,omitempty"`
	Duration       string `gorm:"size:100" json:"duration,omitempty"`
	JobDescription string `gorm:"size:2000" json:"jobDescription,omitempty"`
	Notes          string `gorm:"size:1000" json:"notes,omitempty"`
	WebsiteURL     string `gorm:"size:500" json:"websiteUrl,omitempty"`
}
