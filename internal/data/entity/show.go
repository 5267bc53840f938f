package entity

import (
	"fmt"
	"time"
)

// Show is a single screening. It owns its seating chart: seat status for
// this show lives in the chart and nowhere else.
type Show struct {
	ID        string
	MovieID   string
	Screen    string
	StartTime time.Time
	EndTime   time.Time
	BasePrice float64
	Chart     *SeatLedger
}

// NewShow builds a show with a rows x columns seating chart. Seats are
// numbered A1..A<cols>, B1.. and so on, all starting out available. Front
// rows are regular, the back third premium and the last row recliner.
func NewShow(id, movieID, screen string, start, end time.Time, basePrice float64, rows, cols int) *Show {
	seats := make([]*Seat, 0, rows*cols)
	for r := 0; r < rows; r++ {
		row := string(rune('A' + r))
		for c := 1; c <= cols; c++ {
			seats = append(seats, &Seat{
				Number:   fmt.Sprintf("%s%d", row, c),
				Row:      row,
				Column:   c,
				Category: categoryForRow(r, rows),
				Status:   SeatStatusAvailable,
			})
		}
	}

	return &Show{
		ID:        id,
		MovieID:   movieID,
		Screen:    screen,
		StartTime: start,
		EndTime:   end,
		BasePrice: basePrice,
		Chart:     NewSeatLedger(seats),
	}
}

func categoryForRow(row, totalRows int) SeatCategory {
	switch {
	case row == totalRows-1 && totalRows > 2:
		return SeatCategoryRecliner
	case row*3 >= totalRows*2: // back third
		return SeatCategoryPremium
	default:
		return SeatCategoryRegular
	}
}
