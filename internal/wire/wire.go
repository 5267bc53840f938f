// internal/wire/wire.go
package wire

import (
	"time"

	"seat-booking/internal/data/repository"
	"seat-booking/internal/payment"
	"seat-booking/internal/pricing"
	"seat-booking/internal/usecase"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

// App holds the assembled dependencies. There is exactly one App per
// process; it owns all in-memory booking state.
type App struct {
	Service *usecase.Service
	Sweeper *usecase.Sweeper
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	pricer := pricing.NewCategoryPricing()
	gateway := payment.NewSimulatedGateway(config.Payment.FailureRate, logger)

	service := usecase.NewService(repo, pricer, gateway, logger)

	var sweeper *usecase.Sweeper
	if config.Sweeper.Enabled {
		interval := time.Duration(config.Sweeper.IntervalSeconds) * time.Second
		sweeper = usecase.NewSweeper(service.Booking, repo.Reservation, interval, logger)
	}

	return &App{
		Service: service,
		Sweeper: sweeper,
	}
}
