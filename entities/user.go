package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Fullname       string    `gorm:"not null" json:"fullname"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	Contact        string    `json:"contact"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	Country        string    `json:"country"`
	ProfilePicture string    `json:"profilePicture"`
	Admin          bool      `gorm:"default:false" json:"admin"`
	LastLogin      time.Time `json:"lastLogin"`
	IsVerified     bool      `gorm:"default:false" json:"isVerified"`

	VerificationToken           *string    `json:"-"`
	VerificationTokenExpiresAt  *time.Time `json:"-"`
	ResetPasswordToken          *string    `gorm:"index" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`

	Timestamp
}
