package models

type User struct {
	BaseModel
	FullName     string `gorm:"size:50;not null" json:"fullName"`
	Email        string `gorm:"size:254;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Optional profile fields
	Phone          string `gorm:"size:10" json:"phone,omitempty"`
	University     string `gorm:"size:100" json:"university,omitempty"`
	Degree         string `gorm:"size:100" json:"degree,omitempty"`
	GraduationYear int    `json:"graduationYear,omitempty"`
	Bio            string `gorm:"size:500" json:"bio,omitempty"`
}
