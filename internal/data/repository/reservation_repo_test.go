package repository_test

import (
	"testing"
	"time"

	"seat-booking/internal/data/entity"
	"seat-booking/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservation(showID string, seats ...string) *entity.Reservation {
	return &entity.Reservation{
		ID:          "res-" + seats[0],
		ShowID:      showID,
		SeatNumbers: seats,
		UserID:      "user-1",
		CreatedAt:   time.Now(),
	}
}

func TestCreateIndexesEverySeat(t *testing.T) {
	repo := repository.NewReservationRepository()
	res := newReservation("show-1", "A1", "A2")

	repo.Create(res)

	assert.Same(t, res, repo.FindByID(res.ID))
	assert.Same(t, res, repo.FindBySeat("show-1", "A1"))
	assert.Same(t, res, repo.FindBySeat("show-1", "A2"))
	assert.True(t, repo.IsHeld("show-1", "A1"))
	assert.True(t, repo.IsHeld("show-1", "A2"))
}

func TestFindBySeatUnknown(t *testing.T) {
	repo := repository.NewReservationRepository()

	assert.Nil(t, repo.FindBySeat("show-1", "A1"))
	assert.False(t, repo.IsHeld("show-1", "A1"))
}

func TestRemoveScrubsReverseIndex(t *testing.T) {
	repo := repository.NewReservationRepository()
	res := newReservation("show-1", "A1", "A2")
	repo.Create(res)

	repo.Remove(res.ID)

	assert.Nil(t, repo.FindByID(res.ID))
	assert.Nil(t, repo.FindBySeat("show-1", "A1"))
	assert.Nil(t, repo.FindBySeat("show-1", "A2"))
}

func TestRemoveUnknownIsNoop(t *testing.T) {
	repo := repository.NewReservationRepository()
	res := newReservation("show-1", "A1")
	repo.Create(res)

	repo.Remove("no-such-id")

	assert.Same(t, res, repo.FindByID(res.ID))
}

func TestIsHeldObservesExpiryWithoutMutating(t *testing.T) {
	repo := repository.NewReservationRepository()
	res := newReservation("show-1", "A1")
	res.CreatedAt = time.Now().Add(-entity.ReservationTTL - time.Minute)
	repo.Create(res)

	assert.False(t, repo.IsHeld("show-1", "A1"))

	// The expired reservation itself is still there; reaping it is the
	// booking service's job.
	require.NotNil(t, repo.FindByID(res.ID))
	assert.Same(t, res, repo.FindBySeat("show-1", "A1"))
}

func TestFindExpired(t *testing.T) {
	repo := repository.NewReservationRepository()

	live := newReservation("show-1", "A1")
	expired := newReservation("show-1", "B1")
	expired.CreatedAt = time.Now().Add(-entity.ReservationTTL - time.Minute)
	repo.Create(live)
	repo.Create(expired)

	found := repo.FindExpired()

	require.Len(t, found, 1)
	assert.Same(t, expired, found[0])
}
