package server

import (
	"recipebook/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetRecipes handles GET /recipes. Every recipe in the store is returned to
// any authenticated user; listing is intentionally not filtered by owner.
func (s *Server) GetRecipes(c *fiber.Ctx) error {
	recipes, err := s.recipeRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(recipes)
}

// CreateRecipe handles POST /recipes. The owning user is always the
// session subject; a user_id in the request body is ignored.
func (s *Server) CreateRecipe(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)

	var req struct {
		Title             string `json:"title"`
		Instructions      string `json:"instructions"`
		MinutesToComplete *int   `json:"minutes_to_complete"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ValidationErrorResponse{Errors: []string{"Invalid request body"}})
	}

	recipe, fieldErrs := models.NewRecipe(req.Title, req.Instructions, req.MinutesToComplete, userID)
	if fieldErrs != nil {
		return models.RespondValidationErrors(c, fieldErrs...)
	}

	if err := s.recipeRepo.Create(c.Context(), recipe); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.Status(fiber.StatusCreated).JSON(recipe)
}
