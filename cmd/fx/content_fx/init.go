package contentfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"stayrooted/internal/api/controllers"
	"stayrooted/internal/repositories"
	"stayrooted/internal/services"
)

var Module = fx.Provide(
	provideContentRepo, provideContentService, controllers.NewContentController)

func provideContentRepo(db *gorm.DB) repositories.DailyContentRepository {
	return repositories.NewDailyContentRepository(db)
}

func provideContentService(contentRepo repositories.DailyContentRepository) services.ContentServiceInterface {
	return services.NewContentService(contentRepo)
}
