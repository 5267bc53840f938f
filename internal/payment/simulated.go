package payment

import (
	"context"
	"math/rand"
	"time"

	"seat-booking/internal/data/entity"
	"seat-booking/pkg/utils"

	"go.uber.org/zap"
)

// SimulatedGateway approves or declines charges at random, standing in for
// a real processor. failureRate 0 always approves, 1 always declines.
type SimulatedGateway struct {
	failureRate float64
	log         *zap.Logger
}

func NewSimulatedGateway(failureRate float64, log *zap.Logger) *SimulatedGateway {
	return &SimulatedGateway{
		failureRate: failureRate,
		log:         log.With(zap.String("gateway", "simulated")),
	}
}

func (g *SimulatedGateway) Charge(ctx context.Context, amount float64, method entity.PaymentMethod) (*entity.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	status := entity.PaymentStatusSuccessful
	if rand.Float64() < g.failureRate {
		status = entity.PaymentStatusFailed
	}

	p := &entity.Payment{
		ID:        utils.GenerateUUIDString(),
		Amount:    amount,
		Method:    method,
		Status:    status,
		CreatedAt: time.Now(),
	}

	g.log.Debug("Charge processed",
		zap.String("payment_id", p.ID),
		zap.Float64("amount", amount),
		zap.String("method", string(method)),
		zap.String("status", string(status)),
	)

	return p, nil
}
