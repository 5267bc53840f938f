package usecase

import (
	"context"
	"time"

	"seat-booking/internal/data/repository"

	"go.uber.org/zap"
)

// Sweeper periodically releases expired reservations so abandoned holds do
// not linger until the next write touches their seats. It is hygiene only:
// lazy expiry on the read and write paths stays authoritative, and nothing
// breaks if the sweeper never runs.
type Sweeper struct {
	service      BookingService
	reservations repository.ReservationRepository
	interval     time.Duration
	log          *zap.Logger
}

func NewSweeper(service BookingService, reservations repository.ReservationRepository, interval time.Duration, log *zap.Logger) *Sweeper {
	return &Sweeper{
		service:      service,
		reservations: reservations,
		interval:     interval,
		log:          log.With(zap.String("service", "sweeper")),
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("Reservation sweeper started", zap.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Reservation sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	expired := s.reservations.FindExpired()
	if len(expired) == 0 {
		return
	}

	for _, reservation := range expired {
		s.service.ReleaseReservation(reservation.ID)
	}

	s.log.Info("Expired reservations swept", zap.Int("count", len(expired)))
}
