package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"darkshield/cmd/fx/auth_fx"
	"darkshield/cmd/fx/db_fx"
	"darkshield/cmd/fx/feedback_fx"
	"darkshield/cmd/fx/file_fx"
	"darkshield/internal/api/controllers"
	"darkshield/internal/config"
	"darkshield/internal/services"
	"darkshield/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		auth_fx.Module,
		feedback_fx.Module,
		file_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	tokens services.TokenServiceInterface,
	verifier services.IdentityVerifierInterface,
	authController *controllers.AuthController,
	feedbackController *controllers.FeedbackController,
	fileController *controllers.FileController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigin))
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.AuthMiddleware(tokens, verifier))

	RegisterRoutes(r, authController, feedbackController, fileController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	feedbackController *controllers.FeedbackController,
	fileController *controllers.FileController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/login", authController.Login)

	feedbackGroup := r.Group("/feedback")
	feedbackGroup.GET("/form", feedbackController.FeedbackForm)
	feedbackGroup.POST("/add", feedbackController.AddFeedback)
	// No role check here; the admin dashboard is the only caller in
	// practice but nothing enforces that.
	feedbackGroup.GET("/admin/get", feedbackController.ListFeedback)

	filesGroup := r.Group("/files")
	filesGroup.GET("/download/:id", fileController.DownloadByID)
	filesGroup.GET("/download/:id/:version", fileController.DownloadByBrowserVersion)

	// The static routes win over :browser for the three first-class
	// browsers; everything else, known or not, goes through the generic
	// lookup and lists whatever is stored (possibly nothing).
	filesGroup.GET("/:browser/versions", fileController.Versions)
	filesGroup.GET("/chrome/versions", fileController.VersionsChrome)
	filesGroup.GET("/firefox/versions", fileController.VersionsFirefox)
	filesGroup.GET("/edge/versions", fileController.VersionsEdge)

	adminGroup := filesGroup.Group("/admin", middleware.RequireRole(services.RoleAdmin))
	adminGroup.POST("/upload/:browser/:version", fileController.Upload)
	adminGroup.GET("/files", fileController.ListFiles)
	adminGroup.DELETE("/delete/:id", fileController.Delete)
}
