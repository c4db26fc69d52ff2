package eventfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"stayrooted/internal/api/controllers"
	"stayrooted/internal/repositories"
	"stayrooted/internal/services"
)

var Module = fx.Provide(
	provideEventRepo, provideEventService, controllers.NewEventController)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(
	eventRepo repositories.EventRepository,
	orgRepo repositories.OrganizationRepository,
	memberRepo repositories.OrganizationMemberRepository,
	userRepo repositories.UserRepository) services.EventServiceInterface {
	return services.NewEventService(eventRepo, orgRepo, memberRepo, userRepo)
}
