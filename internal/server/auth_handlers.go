package server

import (
	"errors"

	"recipebook/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Signup handles POST /signup. On success the new user's ID is written to
// the session cookie; the session is never touched on failure.
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		ImageURL string `json:"image_url"`
		Bio      string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ValidationErrorResponse{Errors: []string{"Invalid request body"}})
	}

	// Validate input
	if req.Username == "" {
		return models.RespondValidationErrors(c, "Username is required")
	}
	if req.Password == "" {
		return models.RespondValidationErrors(c, "Password is required")
	}

	// Hash password
	digest, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user, fieldErrs := models.NewUser(req.Username, req.ImageURL, req.Bio)
	if fieldErrs != nil {
		return models.RespondValidationErrors(c, fieldErrs...)
	}
	user.PasswordDigest = string(digest)

	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		if errors.Is(createErr, models.ErrDuplicateUsername) {
			return models.RespondValidationErrors(c, "Username already exists")
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, createErr)
	}

	// Save user ID in the session only after a successful persist
	if err := s.sessions.Issue(c, user.ID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// CheckSession handles GET /check_session. It resolves the session's user
// ID against the store; a session pointing at a deleted user is rejected.
func (s *Server) CheckSession(c *fiber.Ctx) error {
	userID, ok := s.sessions.UserID(c)
	if !ok {
		return models.RespondUnauthorized(c)
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if user == nil {
		return models.RespondUnauthorized(c)
	}

	return c.JSON(user)
}

// Login handles POST /login. The failure body is identical for an unknown
// username and a wrong password so usernames cannot be enumerated.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ValidationErrorResponse{Errors: []string{"Invalid request body"}})
	}

	user, err := s.userRepo.GetByUsername(c.Context(), req.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if user == nil || bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordDigest), []byte(req.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			models.ErrorResponse{Error: "Invalid username or password"})
	}

	if err := s.sessions.Issue(c, user.ID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(user)
}

// Logout handles DELETE /logout: clears the session if one is present.
func (s *Server) Logout(c *fiber.Ctx) error {
	if !s.sessions.Present(c) {
		return models.RespondUnauthorized(c)
	}

	s.sessions.Clear(c)
	return c.SendStatus(fiber.StatusNoContent)
}
