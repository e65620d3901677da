package repository

import (
	"context"
	"testing"

	"recipebook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Recipe{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordDigest: "digest"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestRecipeRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "owner")

	recipe := &models.Recipe{
		Title:             "Miso Soup",
		Instructions:      "Dissolve miso in dashi, add tofu.",
		MinutesToComplete: 15,
		UserID:            user.ID,
	}
	require.NoError(t, repo.Create(ctx, recipe))

	assert.NotZero(t, recipe.ID)
	// The owner is reloaded for the response body
	require.NotNil(t, recipe.User)
	assert.Equal(t, "owner", recipe.User.Username)
}

func TestRecipeRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	t.Run("Empty store returns empty slice", func(t *testing.T) {
		recipes, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, recipes)
		assert.Empty(t, recipes)
	})

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	for _, r := range []*models.Recipe{
		{Title: "Congee", Instructions: "Simmer rice.", MinutesToComplete: 90, UserID: alice.ID},
		{Title: "Toast", Instructions: "Toast bread.", MinutesToComplete: 5, UserID: bob.ID},
	} {
		require.NoError(t, repo.Create(ctx, r))
	}

	t.Run("Returns all recipes across owners", func(t *testing.T) {
		recipes, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, recipes, 2)

		owners := map[string]bool{}
		for _, r := range recipes {
			require.NotNil(t, r.User)
			owners[r.User.Username] = true
		}
		assert.True(t, owners["alice"])
		assert.True(t, owners["bob"])
	})
}

func TestRecipeRepository_Count(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	user := createTestUser(t, db, "owner")
	require.NoError(t, repo.Create(ctx, &models.Recipe{
		Title: "Toast", Instructions: "Toast bread.", MinutesToComplete: 5, UserID: user.ID,
	}))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_CreateDuplicate_SQLite(t *testing.T) {
	// The sqlite driver translates unique violations through
	// gorm.ErrDuplicatedKey, the second detection path.
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Username: "taken", PasswordDigest: "d1"}))

	err := repo.Create(ctx, &models.User{Username: "taken", PasswordDigest: "d2"})
	assert.ErrorIs(t, err, models.ErrDuplicateUsername)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "taken").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
