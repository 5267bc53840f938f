package repository

// Repository groups the in-memory stores behind the booking service.
type Repository struct {
	Show        ShowRepository
	Reservation ReservationRepository
	Booking     BookingRepository
	Locks       *LockRegistry
}

func NewRepository() *Repository {
	return &Repository{
		Show:        NewShowRepository(),
		Reservation: NewReservationRepository(),
		Booking:     NewBookingRepository(),
		Locks:       NewLockRegistry(),
	}
}
