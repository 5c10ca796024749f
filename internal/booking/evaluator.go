package booking

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/court"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/clock"
)

// BookableReason explains why a requested slot is not bookable.
type BookableReason string

const (
	ReasonClosedDay BookableReason = "closed_day"
	ReasonConflict  BookableReason = "conflict"
)

// BookableResult is the outcome of an availability evaluation.
type BookableResult struct {
	Bookable bool
	Reason   BookableReason
}

// Overlaps reports whether two half-open [start, end) clock intervals on the
// same date intersect. Both intervals use zero-padded "HH:MM" strings, so
// lexical comparison is time comparison. Touching endpoints do not overlap,
// which is what makes back-to-back bookings valid.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && aEnd > bStart
}

// Reservation is the read-only view of an existing booking that the
// evaluator needs: its time range and whether it occupies the slot.
type Reservation struct {
	StartTime string
	EndTime   string
	Status    Status
}

// IsBookable decides whether the [start, end) range on the given date can be
// booked against the court's operating schedule and its existing
// reservations for that date.
//
// Preconditions: start and end are "HH:MM" with start < end; a violation
// returns ErrInvalidTimeRange. Reservations whose status does not occupy the
// slot (cancelled, completed, no-show) are skipped.
func IsBookable(schedule court.OperatingSchedule, date time.Time, start, end string, existing []Reservation) (BookableResult, error) {
	if err := validateRange(start, end); err != nil {
		return BookableResult{}, err
	}

	hours, ok := schedule.For(date)
	if !ok || hours.Closed {
		return BookableResult{Bookable: false, Reason: ReasonClosedDay}, nil
	}

	for _, r := range existing {
		if !r.Status.Occupies() {
			continue
		}
		if Overlaps(start, end, r.StartTime, r.EndTime) {
			return BookableResult{Bookable: false, Reason: ReasonConflict}, nil
		}
	}

	return BookableResult{Bookable: true}, nil
}

func validateRange(start, end string) error {
	if !clock.Valid(start) || !clock.Valid(end) {
		return ErrInvalidTimeRange
	}
	if start >= end {
		return ErrInvalidTimeRange
	}
	return nil
}
