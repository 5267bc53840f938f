package repository

import (
	"sync"

	"seat-booking/internal/data/entity"
)

type ShowRepository interface {
	Add(show *entity.Show)
	FindByID(showID string) *entity.Show
	FindAll() []*entity.Show
}

// showRepository is the show catalog. Shows are registered at setup time;
// the booking service only ever reads from it.
type showRepository struct {
	mu    sync.RWMutex
	shows map[string]*entity.Show
}

func NewShowRepository() ShowRepository {
	return &showRepository{
		shows: make(map[string]*entity.Show),
	}
}

func (r *showRepository) Add(show *entity.Show) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shows[show.ID] = show
}

func (r *showRepository) FindByID(showID string) *entity.Show {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.shows[showID]
}

func (r *showRepository) FindAll() []*entity.Show {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shows := make([]*entity.Show, 0, len(r.shows))
	for _, show := range r.shows {
		shows = append(shows, show)
	}
	return shows
}
