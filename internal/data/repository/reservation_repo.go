package repository

import (
	"sync"

	"seat-booking/internal/data/entity"
)

type ReservationRepository interface {
	Create(reservation *entity.Reservation)
	FindByID(reservationID string) *entity.Reservation
	FindBySeat(showID, seatNumber string) *entity.Reservation
	IsHeld(showID, seatNumber string) bool
	FindExpired() []*entity.Reservation
	Remove(reservationID string)
}

// reservationRepository keeps active reservations in memory together with a
// reverse index (showID -> seatNumber -> reservationID) so seat-hold
// lookups never scan all reservations. The index is updated in lockstep
// with Create and Remove; it never disagrees with the primary map.
type reservationRepository struct {
	mu           sync.RWMutex
	reservations map[string]*entity.Reservation
	seatIndex    map[string]map[string]string
}

func NewReservationRepository() ReservationRepository {
	return &reservationRepository{
		reservations: make(map[string]*entity.Reservation),
		seatIndex:    make(map[string]map[string]string),
	}
}

// Create inserts a reservation and indexes every seat it covers. The
// caller guarantees id uniqueness via the id generator.
func (r *reservationRepository) Create(reservation *entity.Reservation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reservations[reservation.ID] = reservation

	seats, ok := r.seatIndex[reservation.ShowID]
	if !ok {
		seats = make(map[string]string)
		r.seatIndex[reservation.ShowID] = seats
	}
	for _, seatNumber := range reservation.SeatNumbers {
		seats[seatNumber] = reservation.ID
	}
}

func (r *reservationRepository) FindByID(reservationID string) *entity.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reservations[reservationID]
}

// FindBySeat returns the reservation currently indexed for a seat, expired
// or not, or nil when the seat is not held.
func (r *reservationRepository) FindBySeat(showID, seatNumber string) *entity.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seats, ok := r.seatIndex[showID]
	if !ok {
		return nil
	}
	reservationID, ok := seats[seatNumber]
	if !ok {
		return nil
	}
	return r.reservations[reservationID]
}

// IsHeld reports whether a live (non-expired) reservation holds the seat.
// Expiry discovery here is observational only; releasing the seat is the
// booking service's job.
func (r *reservationRepository) IsHeld(showID, seatNumber string) bool {
	reservation := r.FindBySeat(showID, seatNumber)
	return reservation != nil && !reservation.Expired()
}

func (r *reservationRepository) FindExpired() []*entity.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var expired []*entity.Reservation
	for _, reservation := range r.reservations {
		if reservation.Expired() {
			expired = append(expired, reservation)
		}
	}
	return expired
}

// Remove deletes a reservation and scrubs its reverse-index entries.
// Removing an unknown id is a no-op.
func (r *reservationRepository) Remove(reservationID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reservation, ok := r.reservations[reservationID]
	if !ok {
		return
	}
	delete(r.reservations, reservationID)

	if seats, ok := r.seatIndex[reservation.ShowID]; ok {
		for _, seatNumber := range reservation.SeatNumbers {
			if seats[seatNumber] == reservationID {
				delete(seats, seatNumber)
			}
		}
		if len(seats) == 0 {
			delete(r.seatIndex, reservation.ShowID)
		}
	}
}
