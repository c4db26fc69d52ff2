package authfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"stayrooted/internal/api/controllers"
	"stayrooted/internal/repositories"
	"stayrooted/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAuthService, controllers.NewAuthController)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepository) services.AuthServiceInterface {
	return services.NewAuthService(userRepo)
}
