package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrShowNotFound is returned when the requested show is not in the catalog.
	ErrShowNotFound = errors.New("show not found")

	// ErrSeatsUnavailable is the expected outcome of losing a seat race: at
	// least one requested seat is booked or held by a live reservation.
	ErrSeatsUnavailable = errors.New("seats unavailable")

	// ErrInvalidReservation covers unknown ids, expired reservations and
	// reservations owned by another user. The three cases share one error
	// so the surface never leaks "this id exists but isn't yours".
	ErrInvalidReservation = errors.New("invalid or expired reservation")
)

// PaymentFailedError reports a declined charge. The reservation is still
// intact when this is returned, so the caller can retry the same
// reservation id with another payment method before it expires.
type PaymentFailedError struct {
	ReservationID string
	PaymentID     string
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("payment %s failed, reservation %s kept for retry", e.PaymentID, e.ReservationID)
}
