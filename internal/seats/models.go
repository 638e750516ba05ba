package seats

// Seat is one position in a coach layout. ID is "row-position", Number
// is the label painted on the seat ("3C"). Price equals the bus fare.
type Seat struct {
	ID        string  `json:"id"`
	Number    string  `json:"number"`
	Row       int     `json:"row"`
	Position  int     `json:"position"`
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
}

// Row groups the seats sharing a row, two per side of the aisle
type Row struct {
	Row   int    `json:"row"`
	Seats []Seat `json:"seats"`
}

// Layout is a full coach grid, generated once per bus selection and
// frozen for the lifetime of the wizard session.
type Layout struct {
	Rows []Row `json:"rows"`
}

// TotalSeats counts every seat in the layout
func (l Layout) TotalSeats() int {
	total := 0
	for _, row := range l.Rows {
		total += len(row.Seats)
	}
	return total
}

// Find returns the seat with the given ID
func (l Layout) Find(id string) (Seat, bool) {
	for _, row := range l.Rows {
		for _, seat := range row.Seats {
			if seat.ID == id {
				return seat, true
			}
		}
	}
	return Seat{}, false
}

// AvailableCount counts the seats open for selection
func (l Layout) AvailableCount() int {
	count := 0
	for _, row := range l.Rows {
		for _, seat := range row.Seats {
			if seat.Available {
				count++
			}
		}
	}
	return count
}

// Resolve maps seat IDs to seats in layout order of the given IDs.
// Unknown IDs are skipped.
func (l Layout) Resolve(ids []string) []Seat {
	resolved := make([]Seat, 0, len(ids))
	for _, id := range ids {
		if seat, ok := l.Find(id); ok {
			resolved = append(resolved, seat)
		}
	}
	return resolved
}

// TotalAmount is the sum of the given seats' prices, always recomputed
func TotalAmount(selected []Seat) float64 {
	total := 0.0
	for _, seat := range selected {
		total += seat.Price
	}
	return total
}
