package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              string    `gorm:"primaryKey;type:uuid" json:"id"`
	Email           *string   `gorm:"uniqueIndex" json:"email,omitempty"`
	Password        string    `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	FirstName       *string   `json:"first_name,omitempty"`
	LastName        *string   `json:"last_name,omitempty"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	Bio             *string   `gorm:"type:text" json:"bio,omitempty"`
	Location        *string   `json:"location,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	// If the ID is not already set, generate a new one.
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
