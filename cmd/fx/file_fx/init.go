package file_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"darkshield/internal/api/controllers"
	"darkshield/internal/repositories"
	"darkshield/internal/services"
)

var Module = fx.Provide(
	provideFileRepo, provideFileService, provideFileController,
)

func provideFileRepo(db *gorm.DB) repositories.FileRepositoryInterface {
	return repositories.NewFileRepository(db)
}

func provideFileService(fileRepo repositories.FileRepositoryInterface) services.FileServiceInterface {
	return services.NewFileService(fileRepo)
}

func provideFileController(fileService services.FileServiceInterface) *controllers.FileController {
	return controllers.NewFileController(fileService)
}
