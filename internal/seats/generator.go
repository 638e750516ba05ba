package seats

import (
	"fmt"

	"bookeasy/pkg/random"
)

const (
	totalRows   = 10
	seatsPerRow = 4 // 2 on each side of the aisle

	// unavailableShare of all seats is marked booked at generation time
	unavailableShare = 0.3
)

var positionLetters = [seatsPerRow]string{"A", "B", "C", "D"}

// Generate builds a coach layout with exactly
// floor(unavailableShare * rows * perRow) seats unavailable, picked by
// sampling without replacement from the injected source. The result is
// stable: callers freeze it in the session.
func Generate(fare float64, src random.Source) Layout {
	totalSeats := totalRows * seatsPerRow
	unavailableCount := int(float64(totalSeats) * unavailableShare)

	unavailable := make(map[string]struct{}, unavailableCount)
	for draws := 0; len(unavailable) < unavailableCount && draws < totalSeats*8; draws++ {
		row := src.Intn(totalRows) + 1
		pos := src.Intn(seatsPerRow) + 1
		unavailable[seatID(row, pos)] = struct{}{}
	}
	// A source that keeps repeating draws runs out of attempts above;
	// the remainder is filled in seat order so the count always holds.
	for row := 1; row <= totalRows && len(unavailable) < unavailableCount; row++ {
		for pos := 1; pos <= seatsPerRow && len(unavailable) < unavailableCount; pos++ {
			unavailable[seatID(row, pos)] = struct{}{}
		}
	}

	rows := make([]Row, 0, totalRows)
	for row := 1; row <= totalRows; row++ {
		rowSeats := make([]Seat, 0, seatsPerRow)
		for pos := 1; pos <= seatsPerRow; pos++ {
			id := seatID(row, pos)
			_, taken := unavailable[id]
			rowSeats = append(rowSeats, Seat{
				ID:        id,
				Number:    fmt.Sprintf("%d%s", row, positionLetters[pos-1]),
				Row:       row,
				Position:  pos,
				Available: !taken,
				Price:     fare,
			})
		}
		rows = append(rows, Row{Row: row, Seats: rowSeats})
	}

	return Layout{Rows: rows}
}

func seatID(row, pos int) string {
	return fmt.Sprintf("%d-%d", row, pos)
}
