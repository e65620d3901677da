// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. The password digest is never
// serialized; the JSON form carries only id, username, image_url and bio.
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Username       string         `gorm:"unique;not null" json:"username"`
	PasswordDigest string         `gorm:"not null" json:"-"`
	ImageURL       string         `json:"image_url"`
	Bio            string         `json:"bio"`
	CreatedAt      time.Time      `json:"-"`
	UpdatedAt      time.Time      `json:"-"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Recipes        []Recipe       `gorm:"foreignKey:UserID" json:"-"`
}

// NewUser builds a User from client-supplied fields. It returns the record
// or a list of field errors so callers can translate the outcome into a
// validation response without unwinding through error chains.
func NewUser(username, imageURL, bio string) (*User, []string) {
	var errs []string
	if username == "" {
		errs = append(errs, "Username is required")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &User{
		Username: username,
		ImageURL: imageURL,
		Bio:      bio,
	}, nil
}
