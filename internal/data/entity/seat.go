package entity

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusReserved  SeatStatus = "reserved" // temporarily held, released after the reservation TTL
	SeatStatusBooked    SeatStatus = "booked"   // confirmed and paid
)

type SeatCategory string

const (
	SeatCategoryRegular  SeatCategory = "regular"
	SeatCategoryPremium  SeatCategory = "premium"
	SeatCategoryRecliner SeatCategory = "recliner"
)

type Seat struct {
	Number   string // A1, A2, B1, etc.
	Row      string // A, B, C, etc.
	Column   int    // 1, 2, 3, etc.
	Category SeatCategory
	Status   SeatStatus
}

// SeatLedger is the per-show seat status record. It is plain data: it does
// no locking of its own and must only be read or mutated while holding the
// show's lock from the lock registry.
type SeatLedger struct {
	seats map[string]*Seat
}

func NewSeatLedger(seats []*Seat) *SeatLedger {
	m := make(map[string]*Seat, len(seats))
	for _, seat := range seats {
		m[seat.Number] = seat
	}
	return &SeatLedger{seats: m}
}

// Seat returns the seat with the given number, or nil if the chart has no
// such seat.
func (l *SeatLedger) Seat(number string) *Seat {
	return l.seats[number]
}

// All returns the backing seat map keyed by seat number.
func (l *SeatLedger) All() map[string]*Seat {
	return l.seats
}

func (l *SeatLedger) Count() int {
	return len(l.seats)
}

func (l *SeatLedger) MarkReserved(numbers []string) {
	l.mark(numbers, SeatStatusReserved)
}

func (l *SeatLedger) MarkBooked(numbers []string) {
	l.mark(numbers, SeatStatusBooked)
}

func (l *SeatLedger) MarkAvailable(numbers []string) {
	l.mark(numbers, SeatStatusAvailable)
}

// ReleaseReserved flips only reserved seats back to available, leaving
// booked seats alone.
func (l *SeatLedger) ReleaseReserved(numbers []string) {
	for _, number := range numbers {
		if seat := l.seats[number]; seat != nil && seat.Status == SeatStatusReserved {
			seat.Status = SeatStatusAvailable
		}
	}
}

func (l *SeatLedger) mark(numbers []string, status SeatStatus) {
	for _, number := range numbers {
		if seat := l.seats[number]; seat != nil {
			seat.Status = status
		}
	}
}
