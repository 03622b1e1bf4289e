package handlers

import (
	"net/http"

	"photoshare-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func ListUsersHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := userService.ListUsers(c.Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(users)
	}
}

func GetUserHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := paramID(c, "user_id")
		if err != nil {
			return respondError(c, err)
		}
		user, err := userService.GetUser(c.Context(), userID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(user)
	}
}

func UserPhotosHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := paramID(c, "user_id")
		if err != nil {
			return respondError(c, err)
		}
		photos, err := userService.ListUserPhotos(c.Context(), userID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(photos)
	}
}

// GetMeHandler returns the caller's own profile, email included
func GetMeHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := userService.GetSelf(c.Context(), actingUserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(user)
	}
}

func MyPhotosHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photos, err := userService.ListUserPhotos(c.Context(), actingUserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(photos)
	}
}

func SetProfilePhotoHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photoID, err := paramID(c, "photo_id")
		if err != nil {
			return respondError(c, err)
		}
		if err := photoService.SetProfilePhoto(c.Context(), actingUserID(c), photoID); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(http.StatusNoContent)
	}
}

func DeleteMeHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := userService.DeleteSelf(c.Context(), actingUserID(c)); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(http.StatusNoContent)
	}
}
