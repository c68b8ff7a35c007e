package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/zahin42/blog-backend/internal/handlers"
	"github.com/zahin42/blog-backend/internal/middleware"
	"github.com/zahin42/blog-backend/internal/models"
	"github.com/zahin42/blog-backend/internal/repositories"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, log zerolog.Logger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Token{},
	)
	if err != nil {
		return err
	}
	log.Info().Msg("auto-migrations completed")

	e.GET("/health", handlers.HealthCheck)

	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	userRepo := repositories.NewPostgresUserRepository(db)
	tokenRepo := repositories.NewPostgresTokenRepository(db)

	// Required on every route except the two public listings and the
	// token endpoint itself
	auth := middleware.TokenAuth(tokenRepo, userRepo)

	authHandler := handlers.NewAuthHandler(userRepo, tokenRepo)
	authHandler.RegisterAuthRoutes(e)
	log.Info().Msg("auth routes configured")

	postHandler := handlers.NewPostHandler(postRepo, userRepo)
	postHandler.RegisterPostRoutes(e, auth)
	log.Info().Msg("post routes configured")

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(e, auth)
	log.Info().Msg("comment routes configured")

	return nil
}
