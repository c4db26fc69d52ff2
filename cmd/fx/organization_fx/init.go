package organizationfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"stayrooted/internal/api/controllers"
	"stayrooted/internal/repositories"
	"stayrooted/internal/services"
)

var Module = fx.Provide(
	provideOrganizationRepo, provideMemberRepo,
	provideOrganizationService, controllers.NewOrganizationController)

func provideOrganizationRepo(db *gorm.DB) repositories.OrganizationRepository {
	return repositories.NewOrganizationRepository(db)
}

func provideMemberRepo(db *gorm.DB) repositories.OrganizationMemberRepository {
	return repositories.NewOrganizationMemberRepository(db)
}

func provideOrganizationService(
	orgRepo repositories.OrganizationRepository,
	memberRepo repositories.OrganizationMemberRepository,
	userRepo repositories.UserRepository) services.OrganizationServiceInterface {
	return services.NewOrganizationService(orgRepo, memberRepo, userRepo)
}
