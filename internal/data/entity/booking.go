package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is the record of a paid seat purchase. Everything except Status
// is fixed at creation; Status only moves forward
// (pending -> confirmed -> cancelled) under the show's write lock.
type Booking struct {
	ID          string
	OrderID     string
	UserID      string
	ShowID      string
	SeatNumbers []string
	TotalAmount float64
	Payment     *Payment
	Status      BookingStatus
	CreatedAt   time.Time
}
