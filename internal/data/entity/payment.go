package entity

import "time"

type PaymentStatus string

const (
	PaymentStatusSuccessful PaymentStatus = "successful"
	PaymentStatusFailed     PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetBanking PaymentMethod = "net_banking"
)

// Payment is the outcome of a single gateway charge attempt.
type Payment struct {
	ID        string
	Amount    float64
	Method    PaymentMethod
	Status    PaymentStatus
	CreatedAt time.Time
}
