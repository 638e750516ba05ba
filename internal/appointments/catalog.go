package appointments

import (
	"fmt"
	"time"

	"bookeasy/pkg/random"
)

// DateLayout is the wire format for appointment dates
const DateLayout = "2006-01-02"

// dateWindowDays is how far ahead the wizard offers dates
const dateWindowDays = 7

var catalog = []Service{
	{ID: 1, Name: "Haircut & Styling", DurationMinutes: 60, Price: 65},
	{ID: 2, Name: "Manicure & Pedicure", DurationMinutes: 90, Price: 80},
	{ID: 3, Name: "Massage Therapy", DurationMinutes: 60, Price: 75},
	{ID: 4, Name: "Facial Treatment", DurationMinutes: 45, Price: 60},
	{ID: 5, Name: "Personal Training", DurationMinutes: 60, Price: 50},
}

// Catalog returns the bookable services
func Catalog() []Service {
	out := make([]Service, len(catalog))
	copy(out, catalog)
	return out
}

// FindService returns the catalog entry with the given ID
func FindService(id int) (Service, bool) {
	for _, svc := range catalog {
		if svc.ID == id {
			return svc, true
		}
	}
	return Service{}, false
}

// TimeSlots lists the offered labels: every hour and half hour from
// 9:00 through 17:00, with no 17:30.
func TimeSlots() []string {
	var slots []string
	for hour := 9; hour <= 17; hour++ {
		slots = append(slots, fmt.Sprintf("%d:00", hour))
		if hour < 17 {
			slots = append(slots, fmt.Sprintf("%d:30", hour))
		}
	}
	return slots
}

// slotAvailable draws availability for one (date, time) pair. Weekend
// afternoons and the lunch hour are busier; everything else is mostly
// open. Callers freeze the result per session.
func slotAvailable(date time.Time, timeLabel string, src random.Source) bool {
	var hour, minute int
	if _, err := fmt.Sscanf(timeLabel, "%d:%d", &hour, &minute); err != nil {
		return false
	}

	weekday := date.Weekday()
	if (weekday == time.Sunday || weekday == time.Saturday) && hour >= 13 {
		return src.Float64() > 0.7 // 30% chance of being open
	}

	if hour == 12 {
		return src.Float64() > 0.5 // 50% chance of being open
	}

	return src.Float64() > 0.2 // 80% chance of being open
}

// computeSlotTable draws the full availability table for a date
func computeSlotTable(date time.Time, src random.Source) []SlotAvailability {
	labels := TimeSlots()
	table := make([]SlotAvailability, 0, len(labels))
	for _, label := range labels {
		table = append(table, SlotAvailability{
			Time:      label,
			Available: slotAvailable(date, label, src),
		})
	}
	return table
}

// dateWindow lists the next dateWindowDays dates starting today
func dateWindow(today time.Time) []string {
	dates := make([]string, 0, dateWindowDays)
	for i := 0; i < dateWindowDays; i++ {
		dates = append(dates, today.AddDate(0, 0, i).Format(DateLayout))
	}
	return dates
}
