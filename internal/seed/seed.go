// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development only.
package seed

import (
	"fmt"

	"recipebook/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the plaintext password assigned to every seeded user.
const DefaultPassword = "password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, seedValue int64) *Factory {
	gofakeit.Seed(seedValue)
	return &Factory{db: db}
}

// CreateUser persists a fake user. Every seeded user shares DefaultPassword
// so seeded accounts can be logged into during development.
func (f *Factory) CreateUser() (*models.User, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       gofakeit.Username(),
		PasswordDigest: string(digest),
		ImageURL:       fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
		Bio:            gofakeit.Sentence(12),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateRecipe persists a fake recipe owned by the given user.
func (f *Factory) CreateRecipe(user *models.User) (*models.Recipe, error) {
	minutes := gofakeit.Number(5, 180)
	recipe := &models.Recipe{
		Title:             gofakeit.Dinner(),
		Instructions:      gofakeit.Paragraph(2, 4, 8, "\n"),
		MinutesToComplete: minutes,
		UserID:            user.ID,
	}
	if err := f.db.Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// Run seeds the given number of users with recipesPerUser recipes each.
func (f *Factory) Run(users, recipesPerUser int) error {
	for i := 0; i < users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seeding user %d: %w", i, err)
		}
		for j := 0; j < recipesPerUser; j++ {
			if _, err := f.CreateRecipe(user); err != nil {
				return fmt.Errorf("seeding recipe %d for user %d: %w", j, user.ID, err)
			}
		}
	}
	return nil
}
