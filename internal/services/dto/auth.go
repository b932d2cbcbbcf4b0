package dto

import (
	"strings"

	"interntrack_backend/internal/models"
)

// RegisterRequest carries the registration payload. The optional profile
// fields mirror what the profile update allows, minus bio.
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`

	Phone          string `json:"phone,omitempty" validate:"omitempty,len=10,numeric"`
	University     string `json:"university,omitempty" validate:"omitempty,max=100"`
	Degree         string `json:"degree,omitempty" validate:"omitempty,max=100"`
	GraduationYear int    `json:"graduationYear,omitempty" validate:"omitempty,min=2020,max=2030"`
}

// Normalize trims the identity fields so whitespace-only input fails the
// presence rules rather than being stored blank.
func (r *RegisterRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.University = strings.TrimSpace(r.University)
	r.Degree = strings.TrimSpace(r.Degree)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

// UpdateProfileRequest is the typed allow-list for profile patches. A field
// left nil is untouched; email and password are deliberately absent, so
// they cannot be changed through this path.
type UpdateProfileRequest struct {
	FullName       *string `json:"fullName,omitempty" validate:"omitnil,min=2,max=50"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,len=10,numeric"`
	University     *string `json:"university,omitempty" validate:"omitempty,max=100"`
	Degree         *string `json:"degree,omitempty" validate:"omitempty,max=100"`
	GraduationYear *int    `json:"graduationYear,omitempty" validate:"omitempty,min=2020,max=2030"`
	Bio            *string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

func (r *UpdateProfileRequest) Normalize() {
	trimPtr(r.FullName)
	trimPtr(r.Phone)
	trimPtr(r.University)
	trimPtr(r.Degree)
	trimPtr(r.Bio)
}

// UserSummary is the trimmed identity view returned alongside a token.
type UserSummary struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// AuthResponse is the payload of a successful register or login.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

func NewUserSummary(user *models.User) UserSummary {
	return UserSummary{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
	}
}
