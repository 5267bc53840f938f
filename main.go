// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"seat-booking/internal/data/entity"
	"seat-booking/internal/data/repository"
	"seat-booking/internal/dto/request"
	"seat-booking/internal/usecase"
	"seat-booking/internal/wire"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.Bool("debug", config.App.Debug),
	)

	// Initialize all in-memory stores
	repos := repository.NewRepository()

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if app.Sweeper != nil {
		go app.Sweeper.Run(ctx)
	}

	// Seed a demo catalog: one movie, one 90-seat show
	show := seedCatalog(repos, logger)

	// Drive the booking core with a concurrent workload
	runWorkload(ctx, app.Service.Booking, show, logger)
}

func seedCatalog(repos *repository.Repository, logger *zap.Logger) *entity.Show {
	movie := &entity.Movie{
		ID:          utils.GenerateUUIDString(),
		Title:       "Interstellar",
		Language:    "English",
		Genre:       "Sci-Fi",
		DurationMin: 169,
	}

	start := time.Now().Add(2 * time.Hour)
	show := entity.NewShow(
		utils.GenerateUUIDString(),
		movie.ID,
		"Screen 1",
		start,
		start.Add(time.Duration(movie.DurationMin)*time.Minute),
		100,
		9, 10,
	)
	repos.Show.Add(show)

	logger.Info("Catalog seeded",
		zap.String("movie", movie.Title),
		zap.String("show_id", show.ID),
		zap.Int("seats", show.Chart.Count()),
	)

	return show
}

// runWorkload hammers one show with concurrent bookers: every worker tries
// to buy a random pair of adjacent seats, retrying once with another
// payment method when the gateway declines.
func runWorkload(ctx context.Context, svc usecase.BookingService, show *entity.Show, logger *zap.Logger) {
	const workers = 25

	var booked, conflicts, declined atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		worker := i
		g.Go(func() error {
			user := &entity.User{
				ID:    utils.GenerateUUIDString(),
				Name:  fmt.Sprintf("Worker %d", worker),
				Email: fmt.Sprintf("worker%d@example.com", worker),
			}
			row := string(rune('A' + rand.Intn(9)))
			col := 1 + rand.Intn(9)
			seats := []string{
				fmt.Sprintf("%s%d", row, col),
				fmt.Sprintf("%s%d", row, col+1),
			}

			booking, err := svc.BookSeats(ctx, user.ID, &request.BookSeatsRequest{
				ShowID:        show.ID,
				SeatNumbers:   seats,
				PaymentMethod: string(entity.PaymentMethodCreditCard),
			})

			var payErr *usecase.PaymentFailedError
			switch {
			case errors.As(err, &payErr):
				booking, err = svc.RetryPaymentWithReservation(ctx, user.ID, &request.ConfirmBookingRequest{
					ReservationID: payErr.ReservationID,
					PaymentMethod: string(entity.PaymentMethodUPI),
				})
				if err != nil {
					declined.Add(1)
					return nil
				}
			case errors.Is(err, usecase.ErrSeatsUnavailable):
				conflicts.Add(1)
				return nil
			case err != nil:
				return err
			}

			booked.Add(1)
			svc.ConfirmBooking(booking.ID)
			logger.Debug("Worker booked seats",
				zap.Int("worker", worker),
				zap.String("order_id", booking.OrderID),
				zap.Strings("seats", booking.SeatNumbers),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Fatal("Workload failed", zap.Error(err))
	}

	available, err := svc.AvailableSeats(show.ID)
	if err != nil {
		logger.Fatal("Availability query failed", zap.Error(err))
	}

	logger.Info("Workload finished",
		zap.Int64("booked", booked.Load()),
		zap.Int64("seat_conflicts", conflicts.Load()),
		zap.Int64("payments_declined", declined.Load()),
		zap.Int("seats_available", len(available)),
	)
}
