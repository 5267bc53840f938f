package repository

import (
	"sync"

	"seat-booking/internal/data/entity"
)

type BookingRepository interface {
	Create(booking *entity.Booking)
	FindByID(bookingID string) *entity.Booking
	FindByUserID(userID string) []*entity.Booking
}

type bookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*entity.Booking
}

func NewBookingRepository() BookingRepository {
	return &bookingRepository{
		bookings: make(map[string]*entity.Booking),
	}
}

func (r *bookingRepository) Create(booking *entity.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[booking.ID] = booking
}

func (r *bookingRepository) FindByID(bookingID string) *entity.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bookings[bookingID]
}

func (r *bookingRepository) FindByUserID(userID string) []*entity.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bookings []*entity.Booking
	for _, booking := range r.bookings {
		if booking.UserID == userID {
			bookings = append(bookings, booking)
		}
	}
	return bookings
}
