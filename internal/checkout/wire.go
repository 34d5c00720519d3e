package checkout

import (
	"database/sql"

	"oldenfyre/internal/catalog"
	"oldenfyre/internal/checkout/controller"
	"oldenfyre/internal/checkout/repository"
	"oldenfyre/internal/checkout/service"
	"oldenfyre/internal/checkout/usecase"
	"oldenfyre/internal/config"
	"oldenfyre/internal/infrastructure/inventory"

	"go.uber.org/zap"
)

func NewModule(db *sql.DB, catalogRepo catalog.Repository, cfg *config.Config, logger *zap.Logger) *controller.CheckoutController {
	validator := service.NewFormValidator()
	pricing := service.NewPriceCalculator(cfg.Checkout.ShippingCost)
	inventoryClient := inventory.NewClient(cfg.Inventory, logger)
	mirrorRepo := repository.NewMySQLConfirmedOrderRepository(db)

	uc := usecase.NewCheckoutUseCase(
		catalogRepo,
		validator,
		pricing,
		inventoryClient,
		mirrorRepo,
		logger,
	)

	return controller.NewCheckoutController(uc, logger)
}
