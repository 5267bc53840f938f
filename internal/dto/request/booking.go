package request

type ReserveSeatsRequest struct {
	ShowID      string   `json:"show_id" validate:"required,uuid4"`
	SeatNumbers []string `json:"seat_numbers" validate:"required,min=1,dive,required"`
}

type ConfirmBookingRequest struct {
	ReservationID string `json:"reservation_id" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=credit_card debit_card upi net_banking"`
}

type BookSeatsRequest struct {
	ShowID        string   `json:"show_id" validate:"required,uuid4"`
	SeatNumbers   []string `json:"seat_numbers" validate:"required,min=1,dive,required"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=credit_card debit_card upi net_banking"`
}
