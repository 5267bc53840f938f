package usecase

import (
	"seat-booking/internal/data/repository"
	"seat-booking/internal/payment"
	"seat-booking/internal/pricing"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
}

func NewService(repo *repository.Repository, pricer pricing.Provider, gateway payment.Gateway, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo, pricer, gateway, log),
	}
}
