package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateInternshipRequest_Normalize(t *testing.T) {
	req := CreateInternshipRequest{
		CompanyName: "  Acme Corp  ",
		Position:    "\tIntern\n",
		Location:    "   ",
		Notes:       "  keep inner  spacing  ",
	}
	req.Normalize()

	assert.Equal(t, "Acme Corp", req.CompanyName)
	assert.Equal(t, "Intern", req.Position)
	// Whitespace-only collapses to empty so the presence rule catches it.
	assert.Equal(t, "", req.Location)
	assert.Equal(t, "keep inner  spacing", req.Notes)
}

func TestUpdateInternshipRequest_Normalize(t *testing.T) {
	company := "  Acme  "
	status := " applied "
	req := UpdateInternshipRequest{
		CompanyName: &company,
		Status:      &status,
	}
	req.Normalize()

	assert.Equal(t, "Acme", *req.CompanyName)
	assert.Equal(t, "applied", *req.Status)
	// Absent fields stay absent.
	assert.Nil(t, req.Position)
}

func TestRegisterRequest_Normalize(t *testing.T) {
	req := RegisterRequest{
		FullName: "  Jane Doe  ",
		Email:    " jane@x.com ",
	}
	req.Normalize()

	assert.Equal(t, "Jane Doe", req.FullName)
	assert.Equal(t, "jane@x.com", req.Email)
}
