package entity

import "time"

// ReservationTTL is the fixed window a user has to complete payment before
// the hold becomes eligible for lazy release.
const ReservationTTL = 5 * time.Minute

// Reservation is a time-boxed hold on a seat set. Its identity fields are
// never mutated after creation; a changed seat set means a new reservation.
type Reservation struct {
	ID          string
	ShowID      string
	SeatNumbers []string
	UserID      string
	CreatedAt   time.Time
}

func (r *Reservation) ExpiresAt() time.Time {
	return r.CreatedAt.Add(ReservationTTL)
}

func (r *Reservation) Expired() bool {
	return time.Now().After(r.ExpiresAt())
}

func (r *Reservation) BelongsTo(userID string) bool {
	return r.UserID == userID
}
