package prayerfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"stayrooted/internal/api/controllers"
	"stayrooted/internal/repositories"
	"stayrooted/internal/services"
)

var Module = fx.Provide(
	providePrayerRepo, provideFollowerRepo, provideUpdateRepo,
	providePrayerService, controllers.NewPrayerController)

func providePrayerRepo(db *gorm.DB) repositories.PrayerRepository {
	return repositories.NewPrayerRepository(db)
}

func provideFollowerRepo(db *gorm.DB) repositories.PrayerFollowerRepository {
	return repositories.NewPrayerFollowerRepository(db)
}

func provideUpdateRepo(db *gorm.DB) repositories.PrayerUpdateRepository {
	return repositories.NewPrayerUpdateRepository(db)
}

func providePrayerService(
	prayerRepo repositories.PrayerRepository,
	followerRepo repositories.PrayerFollowerRepository,
	updateRepo repositories.PrayerUpdateRepository,
	userRepo repositories.UserRepository) services.PrayerServiceInterface {
	return services.NewPrayerService(prayerRepo, followerRepo, updateRepo, userRepo)
}
