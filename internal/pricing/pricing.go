package pricing

import "seat-booking/internal/data/entity"

// Provider computes ticket prices. Implementations must be pure functions
// of the show and seats: no side effects, safe to call under a show lock.
type Provider interface {
	SeatPrice(seat *entity.Seat) float64
	Total(show *entity.Show, seats []*entity.Seat) float64
}

// CategoryPricing prices a ticket as the seat's category price plus the
// show's base price.
type CategoryPricing struct {
	categoryPrices map[entity.SeatCategory]float64
}

func NewCategoryPricing() *CategoryPricing {
	return &CategoryPricing{
		categoryPrices: map[entity.SeatCategory]float64{
			entity.SeatCategoryRegular:  150,
			entity.SeatCategoryPremium:  250,
			entity.SeatCategoryRecliner: 450,
		},
	}
}

func (p *CategoryPricing) SeatPrice(seat *entity.Seat) float64 {
	return p.categoryPrices[seat.Category]
}

func (p *CategoryPricing) Total(show *entity.Show, seats []*entity.Seat) float64 {
	var total float64
	for _, seat := range seats {
		total += p.SeatPrice(seat)
	}
	return total + show.BasePrice*float64(len(seats))
}
