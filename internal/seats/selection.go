package seats

// ToggleOutcome says what a toggle attempt did to the selection
type ToggleOutcome int

const (
	// ToggleAdded means the seat joined the selection
	ToggleAdded ToggleOutcome = iota
	// ToggleRemoved means the seat left the selection
	ToggleRemoved
	// ToggleRejectedUnavailable means the seat is already booked
	ToggleRejectedUnavailable
	// ToggleRejectedCap means the per-booking cap was hit; the
	// selection is unchanged
	ToggleRejectedCap
)

// Toggle applies the seat-grid click semantics: deselect always wins,
// unavailable seats never join, and the cap rejects the (n+1)-th seat
// without touching the first n.
func Toggle(selection []string, seat Seat, maxSeats int) ([]string, ToggleOutcome) {
	for i, id := range selection {
		if id == seat.ID {
			next := make([]string, 0, len(selection)-1)
			next = append(next, selection[:i]...)
			next = append(next, selection[i+1:]...)
			return next, ToggleRemoved
		}
	}

	if !seat.Available {
		return selection, ToggleRejectedUnavailable
	}

	if len(selection) >= maxSeats {
		return selection, ToggleRejectedCap
	}

	next := make([]string, 0, len(selection)+1)
	next = append(next, selection...)
	next = append(next, seat.ID)
	return next, ToggleAdded
}
