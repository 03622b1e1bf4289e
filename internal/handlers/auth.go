package handlers

import (
	"errors"
	"strconv"
	"strings"

	"photoshare-backend/internal/apperr"
	"photoshare-backend/internal/services"
	"photoshare-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware verifies the bearer token and stores the acting user id in
// locals. Protected routes reject here, before any entity is touched.
func AuthMiddleware(c *fiber.Ctx) error {
	var token string
	authHeader := c.Get("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		token = authHeader[7:]
	}
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
	}

	userID, err := services.ValidateToken(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
	}

	c.Locals("user_id", userID)
	return c.Next()
}

func actingUserID(c *fiber.Ctx) int64 {
	return c.Locals("user_id").(int64)
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.ErrInvalidInput
	}
	return id, nil
}

// respondError maps the error taxonomy to HTTP statuses. Unknown errors are
// logged and surfaced as a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var status int
	switch {
	case errors.Is(err, apperr.ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, apperr.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, apperr.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, apperr.ErrUnavailable):
		status = fiber.StatusServiceUnavailable
	default:
		utils.LogError(err, c.Method()+" "+c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
