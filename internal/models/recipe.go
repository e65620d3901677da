package models

import (
	"time"

	"gorm.io/gorm"
)

// Recipe is an entry owned by exactly one user. The owner is always taken
// from the authenticated session, never from client input.
type Recipe struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Title             string         `gorm:"not null" json:"title"`
	Instructions      string         `gorm:"not null" json:"instructions"`
	MinutesToComplete int            `gorm:"not null" json:"minutes_to_complete"`
	UserID            uint           `gorm:"not null" json:"user_id"`
	User              *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt         time.Time      `json:"-"`
	UpdatedAt         time.Time      `json:"-"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// NewRecipe builds a Recipe from client-supplied fields plus the session's
// user ID. minutes is a pointer so an absent field is distinguishable from
// an explicit zero; there is no default when it is missing.
func NewRecipe(title, instructions string, minutes *int, userID uint) (*Recipe, []string) {
	var errs []string
	if title == "" {
		errs = append(errs, "Title is required")
	}
	if instructions == "" {
		errs = append(errs, "Instructions are required")
	}
	if minutes == nil {
		errs = append(errs, "Minutes to complete is required")
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &Recipe{
		Title:             title,
		Instructions:      instructions,
		MinutesToComplete: *minutes,
		UserID:            userID,
	}, nil
}
