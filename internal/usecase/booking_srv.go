package usecase

import (
	"context"
	"fmt"
	"time"

	"seat-booking/internal/data/entity"
	"seat-booking/internal/data/repository"
	"seat-booking/internal/dto/request"
	"seat-booking/internal/payment"
	"seat-booking/internal/pricing"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// Two-phase flow
	ReserveSeats(ctx context.Context, userID string, req *request.ReserveSeatsRequest) (*entity.Reservation, error)
	ConfirmBookingWithReservation(ctx context.Context, userID string, req *request.ConfirmBookingRequest) (*entity.Booking, error)
	RetryPaymentWithReservation(ctx context.Context, userID string, req *request.ConfirmBookingRequest) (*entity.Booking, error)

	// One-shot reserve-and-pay
	BookSeats(ctx context.Context, userID string, req *request.BookSeatsRequest) (*entity.Booking, error)

	// Lifecycle
	ReleaseReservation(reservationID string)
	ConfirmBooking(bookingID string)
	CancelBooking(bookingID string)

	// Queries
	AvailableSeats(showID string) (map[string]*entity.Seat, error)
	UserBookings(userID string) []*entity.Booking
}

// bookingService is the only component with booking business rules. Every
// seat or reservation mutation happens while holding the show's write lock
// from the lock registry; availability reads take the read lock.
type bookingService struct {
	repo    *repository.Repository
	pricer  pricing.Provider
	gateway payment.Gateway
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, pricer pricing.Provider, gateway payment.Gateway, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		pricer:  pricer,
		gateway: gateway,
		log:     log.With(zap.String("service", "booking")),
	}
}

// ReserveSeats places a time-boxed hold on the requested seat set. The
// batch is all-or-nothing: if any seat is booked or held by a live
// reservation, nothing changes and ErrSeatsUnavailable is returned. A seat
// held by an expired reservation counts as available; that reservation's
// whole seat set is released first.
func (s *bookingService) ReserveSeats(ctx context.Context, userID string, req *request.ReserveSeatsRequest) (*entity.Reservation, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reserve seats validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	show := s.repo.Show.FindByID(req.ShowID)
	if show == nil {
		return nil, ErrShowNotFound
	}

	lock := s.repo.Locks.LockFor(show.ID)
	lock.Lock()
	defer lock.Unlock()

	if !s.seatsAvailable(show, req.SeatNumbers) {
		return nil, ErrSeatsUnavailable
	}

	show.Chart.MarkReserved(req.SeatNumbers)

	reservation := &entity.Reservation{
		ID:          utils.GenerateUUIDString(),
		ShowID:      show.ID,
		SeatNumbers: append([]string(nil), req.SeatNumbers...),
		UserID:      userID,
		CreatedAt:   time.Now(),
	}
	s.repo.Reservation.Create(reservation)

	s.log.Info("Seats reserved",
		zap.String("reservation_id", reservation.ID),
		zap.String("show_id", show.ID),
		zap.String("user_id", userID),
		zap.Strings("seats", reservation.SeatNumbers),
	)

	return reservation, nil
}

// ConfirmBookingWithReservation charges the user and flips the held seats
// to booked. The charge happens strictly before any seat mutation and
// inside the show's write-locked section, so a seat is never booked
// without a successful payment. A declined charge returns
// *PaymentFailedError and leaves the reservation and seats untouched.
func (s *bookingService) ConfirmBookingWithReservation(ctx context.Context, userID string, req *request.ConfirmBookingRequest) (*entity.Booking, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Confirm booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reservation := s.repo.Reservation.FindByID(req.ReservationID)
	if reservation == nil || reservation.Expired() {
		return nil, ErrInvalidReservation
	}

	if !reservation.BelongsTo(userID) {
		// Authorization failure, reported exactly like an unknown id.
		s.log.Warn("Confirm attempt by non-owner",
			zap.String("reservation_id", reservation.ID),
			zap.String("user_id", userID),
		)
		return nil, ErrInvalidReservation
	}

	show := s.repo.Show.FindByID(reservation.ShowID)
	if show == nil {
		s.log.Error("Reservation references unknown show",
			zap.String("reservation_id", reservation.ID),
			zap.String("show_id", reservation.ShowID),
		)
		return nil, fmt.Errorf("reservation %s references unknown show %s", reservation.ID, reservation.ShowID)
	}

	lock := s.repo.Locks.LockFor(show.ID)
	lock.Lock()
	defer lock.Unlock()

	// The reservation may have expired while waiting for the lock.
	if reservation.Expired() {
		return nil, ErrInvalidReservation
	}

	// Every held seat must still be reserved; a concurrent release means
	// the hold is gone.
	seats := make([]*entity.Seat, 0, len(reservation.SeatNumbers))
	for _, number := range reservation.SeatNumbers {
		seat := show.Chart.Seat(number)
		if seat == nil {
			s.log.Error("Reservation references seat missing from chart",
				zap.String("reservation_id", reservation.ID),
				zap.String("show_id", show.ID),
				zap.String("seat", number),
			)
			return nil, fmt.Errorf("reservation %s references seat %s missing from show %s", reservation.ID, number, show.ID)
		}
		if seat.Status != entity.SeatStatusReserved {
			return nil, ErrInvalidReservation
		}
		seats = append(seats, seat)
	}

	total := s.pricer.Total(show, seats)

	pay, err := s.gateway.Charge(ctx, total, entity.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return nil, fmt.Errorf("charge for reservation %s: %w", reservation.ID, err)
	}

	if pay.Status != entity.PaymentStatusSuccessful {
		s.log.Warn("Payment declined, reservation kept",
			zap.String("reservation_id", reservation.ID),
			zap.String("payment_id", pay.ID),
			zap.Float64("amount", total),
		)
		return nil, &PaymentFailedError{ReservationID: reservation.ID, PaymentID: pay.ID}
	}

	show.Chart.MarkBooked(reservation.SeatNumbers)

	booking := &entity.Booking{
		ID:          utils.GenerateUUIDString(),
		OrderID:     utils.GenerateOrderID(),
		UserID:      userID,
		ShowID:      show.ID,
		SeatNumbers: append([]string(nil), reservation.SeatNumbers...),
		TotalAmount: total,
		Payment:     pay,
		Status:      entity.BookingStatusPending,
		CreatedAt:   time.Now(),
	}
	s.repo.Booking.Create(booking)
	s.repo.Reservation.Remove(reservation.ID)

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("order_id", booking.OrderID),
		zap.String("show_id", show.ID),
		zap.String("user_id", userID),
		zap.Int("seat_count", len(booking.SeatNumbers)),
		zap.Float64("total_amount", total),
	)

	return booking, nil
}

// RetryPaymentWithReservation retries a failed payment. It is confirm all
// over again against the same still-live reservation, with the same
// re-validation.
func (s *bookingService) RetryPaymentWithReservation(ctx context.Context, userID string, req *request.ConfirmBookingRequest) (*entity.Booking, error) {
	return s.ConfirmBookingWithReservation(ctx, userID, req)
}

// BookSeats reserves and immediately confirms in one call. On a declined
// payment the reservation survives inside the returned PaymentFailedError,
// so the caller can still retry.
func (s *bookingService) BookSeats(ctx context.Context, userID string, req *request.BookSeatsRequest) (*entity.Booking, error) {
	reservation, err := s.ReserveSeats(ctx, userID, &request.ReserveSeatsRequest{
		ShowID:      req.ShowID,
		SeatNumbers: req.SeatNumbers,
	})
	if err != nil {
		return nil, err
	}

	return s.ConfirmBookingWithReservation(ctx, userID, &request.ConfirmBookingRequest{
		ReservationID: reservation.ID,
		PaymentMethod: req.PaymentMethod,
	})
}

// ReleaseReservation returns a hold's seats to available and forgets the
// reservation. Unknown ids are treated as already released.
func (s *bookingService) ReleaseReservation(reservationID string) {
	reservation := s.repo.Reservation.FindByID(reservationID)
	if reservation == nil {
		return
	}

	show := s.repo.Show.FindByID(reservation.ShowID)
	if show == nil {
		s.log.Error("Reservation references unknown show",
			zap.String("reservation_id", reservation.ID),
			zap.String("show_id", reservation.ShowID),
		)
		return
	}

	lock := s.repo.Locks.LockFor(show.ID)
	lock.Lock()
	defer lock.Unlock()

	show.Chart.ReleaseReserved(reservation.SeatNumbers)
	s.repo.Reservation.Remove(reservation.ID)

	s.log.Info("Reservation released",
		zap.String("reservation_id", reservation.ID),
		zap.String("show_id", show.ID),
	)
}

// ConfirmBooking advances a pending booking to confirmed. Any other
// starting status is left alone.
func (s *bookingService) ConfirmBooking(bookingID string) {
	booking := s.repo.Booking.FindByID(bookingID)
	if booking == nil {
		return
	}

	lock := s.repo.Locks.LockFor(booking.ShowID)
	lock.Lock()
	defer lock.Unlock()

	if booking.Status != entity.BookingStatusPending {
		return
	}
	booking.Status = entity.BookingStatusConfirmed

	s.log.Info("Booking confirmed",
		zap.String("booking_id", booking.ID),
		zap.String("order_id", booking.OrderID),
	)
}

// CancelBooking cancels a confirmed booking and returns its seats to
// available. Pending or already-cancelled bookings are left untouched.
func (s *bookingService) CancelBooking(bookingID string) {
	booking := s.repo.Booking.FindByID(bookingID)
	if booking == nil || booking.Status != entity.BookingStatusConfirmed {
		return
	}

	show := s.repo.Show.FindByID(booking.ShowID)
	if show == nil {
		s.log.Error("Booking references unknown show",
			zap.String("booking_id", booking.ID),
			zap.String("show_id", booking.ShowID),
		)
		return
	}

	lock := s.repo.Locks.LockFor(show.ID)
	lock.Lock()
	defer lock.Unlock()

	if booking.Status != entity.BookingStatusConfirmed {
		return
	}
	booking.Status = entity.BookingStatusCancelled
	show.Chart.MarkAvailable(booking.SeatNumbers)

	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID),
		zap.String("order_id", booking.OrderID),
		zap.Strings("seats", booking.SeatNumbers),
	)
}

// AvailableSeats reports the seats a new reservation could take: available
// ones plus seats whose hold has expired. It only takes the read lock and
// never mutates the chart, so an expired hold keeps showing up here until
// a write path reaps it.
func (s *bookingService) AvailableSeats(showID string) (map[string]*entity.Seat, error) {
	show := s.repo.Show.FindByID(showID)
	if show == nil {
		return nil, ErrShowNotFound
	}

	lock := s.repo.Locks.LockFor(show.ID)
	lock.RLock()
	defer lock.RUnlock()

	available := make(map[string]*entity.Seat)
	for number, seat := range show.Chart.All() {
		switch seat.Status {
		case entity.SeatStatusAvailable:
			available[number] = seat
		case entity.SeatStatusReserved:
			if !s.repo.Reservation.IsHeld(show.ID, number) {
				available[number] = seat
			}
		}
	}
	return available, nil
}

func (s *bookingService) UserBookings(userID string) []*entity.Booking {
	return s.repo.Booking.FindByUserID(userID)
}

// seatsAvailable checks the whole batch while holding the show's write
// lock. It may release expired holds along the way, which is why the write
// lock is required even though this is nominally a check.
func (s *bookingService) seatsAvailable(show *entity.Show, seatNumbers []string) bool {
	for _, number := range seatNumbers {
		seat := show.Chart.Seat(number)
		if seat == nil {
			return false
		}

		switch seat.Status {
		case entity.SeatStatusAvailable:
			continue
		case entity.SeatStatusReserved:
			if s.repo.Reservation.IsHeld(show.ID, number) {
				return false
			}
			s.releaseExpiredHold(show, number)
		default:
			// booked
			return false
		}
	}
	return true
}

// releaseExpiredHold frees the entire seat set of the expired reservation
// holding the given seat. Caller holds the show's write lock.
func (s *bookingService) releaseExpiredHold(show *entity.Show, seatNumber string) {
	reservation := s.repo.Reservation.FindBySeat(show.ID, seatNumber)
	if reservation == nil || !reservation.Expired() {
		return
	}

	show.Chart.ReleaseReserved(reservation.SeatNumbers)
	s.repo.Reservation.Remove(reservation.ID)

	s.log.Info("Expired reservation released",
		zap.String("reservation_id", reservation.ID),
		zap.String("show_id", show.ID),
		zap.Strings("seats", reservation.SeatNumbers),
	)
}
