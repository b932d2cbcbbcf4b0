package validator

import (
	"testing"

	"interntrack_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		FullName: "Ann Lee",
		Email:    "ann@x.com",
		Password: "secret1",
	}
}

func TestValidate_RegisterRequest(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(validRegister()))

	tests := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
		field  string
	}{
		{"missing name", func(r *dto.RegisterRequest) { r.FullName = "" }, "fullName"},
		{"short name", func(r *dto.RegisterRequest) { r.FullName = "A" }, "fullName"},
		{"missing email", func(r *dto.RegisterRequest) { r.Email = "" }, "email"},
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *dto.RegisterRequest) { r.Password = "12345" }, "password"},
		{"short phone", func(r *dto.RegisterRequest) { r.Phone = "12345" }, "phone"},
		{"non-digit phone", func(r *dto.RegisterRequest) { r.Phone = "12345abcde" }, "phone"},
		{"graduation year too early", func(r *dto.RegisterRequest) { r.GraduationYear = 2019 }, "graduationYear"},
		{"graduation year too late", func(r *dto.RegisterRequest) { r.GraduationYear = 2031 }, "graduationYear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)

			err := v.Validate(req)
			require.Error(t, err)

			vErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			assert.Contains(t, vErr.Errors, tt.field)
		})
	}
}

func TestValidate_RegisterRequest_OptionalFields(t *testing.T) {
	v := New()

	req := validRegister()
	req.Phone = "9876543210"
	req.University = "IIT Delhi"
	req.Degree = "B.Tech"
	req.GraduationYear = 2026

	assert.NoError(t, v.Validate(req))
}

func TestValidate_EnumRules(t *testing.T) {
	v := New()

	req := dto.CreateInternshipRequest{
		CompanyName:     "Acme",
		Position:        "Intern",
		Location:        "Remote",
		ApplicationType: "referral",
		Status:          "applied",
		Priority:        "high",
	}
	assert.NoError(t, v.Validate(req))

	req.Status = "daydreaming"
	err := v.Validate(req)
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "status")

	req.Status = "applied"
	req.ApplicationType = "carrier-pigeon"
	err = v.Validate(req)
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "applicationType")

	req.ApplicationType = "walk-in"
	req.Priority = "urgent"
	err = v.Validate(req)
	require.Error(t, err)
	vErr = err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "priority")
}

func TestValidate_UpdatePatchBlankFields(t *testing.T) {
	v := New()

	// An empty patch is a no-op and valid.
	assert.NoError(t, v.Validate(dto.UpdateInternshipRequest{}))

	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name  string
		req   dto.UpdateInternshipRequest
		field string
	}{
		{"blank company", dto.UpdateInternshipRequest{CompanyName: strPtr("")}, "companyName"},
		{"blank position", dto.UpdateInternshipRequest{Position: strPtr("")}, "position"},
		{"blank location", dto.UpdateInternshipRequest{Location: strPtr("")}, "location"},
		{"blank status", dto.UpdateInternshipRequest{Status: strPtr("")}, "status"},
		{"blank type", dto.UpdateInternshipRequest{ApplicationType: strPtr("")}, "applicationType"},
		{"blank priority", dto.UpdateInternshipRequest{Priority: strPtr("")}, "priority"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			require.Error(t, err)

			vErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			assert.Contains(t, vErr.Errors, tt.field)
		})
	}

	profile := dto.UpdateProfileRequest{FullName: strPtr("")}
	err := v.Validate(profile)
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "fullName")
}

func TestValidate_ListQuerySortBy(t *testing.T) {
	v := New()

	for _, sortBy := range []string{"", "date", "company", "status"} {
		assert.NoError(t, v.Validate(dto.ListInternshipsQuery{SortBy: sortBy}))
	}

	err := v.Validate(dto.ListInternshipsQuery{SortBy: "salary"})
	require.Error(t, err)
	vErr := err.(*ValidationError)
	assert.Contains(t, vErr.Errors, "SortBy")
}
