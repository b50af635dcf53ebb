package cafe_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cafeapi/internal/api/controllers"
	"cafeapi/internal/config"
	"cafeapi/internal/repositories"
	"cafeapi/internal/services"
)

var Module = fx.Provide(
	provideCafeRepo, provideCafeService, provideCafeController,
)

func provideCafeRepo(db *gorm.DB) repositories.CafeRepositoryInterface {
	return repositories.NewCafeRepository(db)
}

func provideCafeService(cafeRepo repositories.CafeRepositoryInterface, cfg config.Config) services.CafeServiceInterface {
	return services.NewCafeService(cafeRepo, cfg)
}

func provideCafeController(cafeService services.CafeServiceInterface) *controllers.CafeController {
	return controllers.NewCafeController(cafeService)
}
