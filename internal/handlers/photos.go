package handlers

import (
	"net/http"

	"photoshare-backend/internal/models"
	"photoshare-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ListPhotosHandler returns every photo with its likes and comments
func ListPhotosHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photos, err := photoService.ListPhotos(c.Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(photos)
	}
}

func GetPhotoHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photoID, err := paramID(c, "photo_id")
		if err != nil {
			return respondError(c, err)
		}
		photo, err := photoService.GetPhoto(c.Context(), photoID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(photo)
	}
}

// UploadPhotoHandler handles a multipart upload (file field name: "photo")
// with title and description form fields
func UploadPhotoHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := actingUserID(c)

		fileHeader, err := c.FormFile("photo")
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "photo file is required"})
		}
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "unreadable photo file"})
		}
		defer file.Close()

		photo, err := photoService.Upload(c.Context(), userID,
			c.FormValue("title"), c.FormValue("description"),
			fileHeader.Filename, file, fileHeader.Size,
			fileHeader.Header.Get("Content-Type"))
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(http.StatusCreated).JSON(photo)
	}
}

func DeletePhotoHandler(photoService *services.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photoID, err := paramID(c, "photo_id")
		if err != nil {
			return respondError(c, err)
		}
		if err := photoService.Delete(c.Context(), photoID, actingUserID(c)); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": "photo deleted"})
	}
}

func LikePhotoHandler(interactions *services.InteractionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photoID, err := paramID(c, "photo_id")
		if err != nil {
			return respondError(c, err)
		}
		if err := interactions.Like(c.Context(), photoID, actingUserID(c)); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": "liked"})
	}
}

func UnlikePhotoHandler(interactions *services.InteractionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photoID, err := paramID(c, "photo_id")
		if err != nil {
			return respondError(c, err)
		}
		if err := interactions.Unlike(c.Context(), photoID, actingUserID(c)); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": "unliked"})
	}
}

func AddCommentHandler(interactions *services.InteractionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		photoID, err := paramID(c, "photo_id")
		if err != nil {
			return respondError(c, err)
		}
		var req models.AddCommentRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
		}
		comment, err := interactions.AddComment(c.Context(), photoID, actingUserID(c), req.Content)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(comment)
	}
}

func DeleteCommentHandler(interactions *services.InteractionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		commentID, err := paramID(c, "comment_id")
		if err != nil {
			return respondError(c, err)
		}
		if err := interactions.DeleteComment(c.Context(), commentID, actingUserID(c)); err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": "comment deleted"})
	}
}
