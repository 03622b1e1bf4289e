package app

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"photoshare-backend/internal/apperr"
	"photoshare-backend/internal/db"
	"photoshare-backend/internal/handlers"
	"photoshare-backend/internal/models"
	"photoshare-backend/internal/services"
	"photoshare-backend/internal/storage"
	"photoshare-backend/internal/store"
	"photoshare-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func Run() {
	// Load Env
	if err := utils.LoadEnv(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Init DB
	connString := utils.GetEnv("DATABASE_URL", "")
	if connString == "" {
		// Fallback to individual vars
		connString = "postgres://" + utils.GetEnv("POSTGRES_USER", "postgres") + ":" +
			utils.GetEnv("POSTGRES_PASSWORD", "postgres") + "@" +
			utils.GetEnv("POSTGRES_HOST", "localhost") + ":" +
			utils.GetEnv("POSTGRES_PORT", "5432") + "/" +
			utils.GetEnv("POSTGRES_DB", "photosharedb") + "?sslmode=disable"
	}

	if err := db.InitDB(connString); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.CloseDB()

	if err := db.Migrate(context.Background()); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Object storage
	blobs, err := storage.NewBlobStore(storage.Config{
		Endpoint:      utils.GetEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:     utils.GetEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:     utils.GetEnv("MINIO_SECRET_KEY", "minioadmin"),
		Bucket:        utils.GetEnv("MINIO_BUCKET", "photos"),
		PublicBaseURL: utils.GetEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
		UseSSL:        utils.GetEnvBool("MINIO_USE_SSL", false),
	})
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	// Services
	st := store.NewPostgres(db.Pool)
	userService := services.NewUserService(st, blobs)
	photoService := services.NewPhotoService(st, blobs)
	interactionService := services.NewInteractionService(st)

	// Fiber App
	app := fiber.New(fiber.Config{
		BodyLimit: utils.GetEnvInt("MAX_UPLOAD_BYTES", 25*1024*1024),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Routes
	api := app.Group("/api")

	// Public Routes
	api.Post("/register", func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		user, err := userService.Register(c.Context(), req)
		if err != nil {
			if errors.Is(err, apperr.ErrConflict) {
				return c.Status(409).JSON(fiber.Map{"error": err.Error()})
			}
			if errors.Is(err, apperr.ErrInvalidInput) {
				return c.Status(400).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(user)
	})

	api.Post("/login", func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		res, err := userService.Login(c.Context(), req)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(res)
	})

	// Public read views
	api.Get("/photos", handlers.ListPhotosHandler(photoService))
	api.Get("/photos/:photo_id", handlers.GetPhotoHandler(photoService))
	api.Get("/users", handlers.ListUsersHandler(userService))
	api.Get("/users/:user_id", handlers.GetUserHandler(userService))
	api.Get("/users/:user_id/photos", handlers.UserPhotosHandler(userService))

	// Protected Routes
	protected := api.Group("/")
	protected.Use(handlers.AuthMiddleware)

	protected.Post("/photos", handlers.UploadPhotoHandler(photoService))
	protected.Delete("/photos/:photo_id", handlers.DeletePhotoHandler(photoService))
	protected.Post("/photos/:photo_id/like", handlers.LikePhotoHandler(interactionService))
	protected.Delete("/photos/:photo_id/like", handlers.UnlikePhotoHandler(interactionService))
	protected.Post("/photos/:photo_id/comments", handlers.AddCommentHandler(interactionService))
	protected.Delete("/comments/:comment_id", handlers.DeleteCommentHandler(interactionService))

	protected.Get("/me", handlers.GetMeHandler(userService))
	protected.Get("/me/photos", handlers.MyPhotosHandler(userService))
	protected.Put("/me/profile-photo/:photo_id", handlers.SetProfilePhotoHandler(photoService))
	protected.Delete("/me", handlers.DeleteMeHandler(userService))

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Start Server
	port := utils.GetEnv("PORT", "3001")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	log.Println("Gracefully shutting down...")
	_ = app.Shutdown()
	log.Println("Server shutdown complete")
}
