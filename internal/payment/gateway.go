package payment

import (
	"context"

	"seat-booking/internal/data/entity"
)

// Gateway is the external payment processor. Charge is synchronous and
// performs a single attempt; retrying is the caller's decision. A declined
// charge is reported through Payment.Status, not through the error return,
// which is reserved for the gateway itself misbehaving.
type Gateway interface {
	Charge(ctx context.Context, amount float64, method entity.PaymentMethod) (*entity.Payment, error)
}
