package booking

import (
	"sort"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/court"
)

// TimeSlot is a free, bookable [Start, End) interval within a day.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailableSlots returns the free gaps of a court on the given date: the open
// window of the day's schedule minus every occupying reservation. Returns an
// empty slice when the court is closed that day.
//
// Occupying reservations may overlap each other (the create path has no
// atomic conflict guard), so ranges are merged while sweeping.
func AvailableSlots(schedule court.OperatingSchedule, date time.Time, existing []Reservation) []TimeSlot {
	hours, ok := schedule.For(date)
	if !ok || hours.Closed {
		return []TimeSlot{}
	}

	busy := make([]Reservation, 0, len(existing))
	for _, r := range existing {
		if r.Status.Occupies() {
			busy = append(busy, r)
		}
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].StartTime < busy[j].StartTime })

	slots := []TimeSlot{}
	cursor := hours.Open

	for _, r := range busy {
		if r.EndTime <= cursor || r.StartTime >= hours.Close {
			continue
		}
		if r.StartTime > cursor {
			slots = append(slots, TimeSlot{Start: cursor, End: r.StartTime})
		}
		if r.EndTime > cursor {
			cursor = r.EndTime
		}
	}

	if cursor < hours.Close {
		slots = append(slots, TimeSlot{Start: cursor, End: hours.Close})
	}

	return slots
}
