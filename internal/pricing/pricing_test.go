package pricing_test

import (
	"testing"
	"time"

	"seat-booking/internal/data/entity"
	"seat-booking/internal/pricing"

	"github.com/stretchr/testify/assert"
)

func TestTotalAddsBasePricePerSeat(t *testing.T) {
	pricer := pricing.NewCategoryPricing()

	start := time.Now().Add(time.Hour)
	show := entity.NewShow("show-1", "movie-1", "Screen 1", start, start.Add(2*time.Hour), 100, 9, 10)

	seats := []*entity.Seat{
		{Number: "A1", Category: entity.SeatCategoryRegular},
		{Number: "G1", Category: entity.SeatCategoryPremium},
	}

	// 150 + 250 category prices plus 100 base per seat.
	assert.Equal(t, 600.0, pricer.Total(show, seats))
}

func TestSeatPriceByCategory(t *testing.T) {
	pricer := pricing.NewCategoryPricing()

	regular := pricer.SeatPrice(&entity.Seat{Category: entity.SeatCategoryRegular})
	premium := pricer.SeatPrice(&entity.Seat{Category: entity.SeatCategoryPremium})
	recliner := pricer.SeatPrice(&entity.Seat{Category: entity.SeatCategoryRecliner})

	assert.Less(t, regular, premium)
	assert.Less(t, premium, recliner)
}
