package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/court"
)

// 2026-02-11 is a Wednesday, 2026-02-07 a Saturday, 2026-02-08 a Sunday.
var (
	wednesday = time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)
	saturday  = time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)
	sunday    = time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)
)

func weekdaySchedule() court.OperatingSchedule {
	s := court.OperatingSchedule{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		s[day] = court.DayHours{Open: "06:00", Close: "22:00"}
	}
	s["saturday"] = court.DayHours{Open: "08:00", Close: "20:00"}
	s["sunday"] = court.DayHours{Closed: true}
	return s
}

func TestOverlapsSymmetry(t *testing.T) {
	ranges := []struct{ start, end string }{
		{"08:00", "10:00"},
		{"09:00", "11:00"},
		{"10:00", "12:00"},
		{"07:30", "12:30"},
	}

	for _, a := range ranges {
		for _, b := range ranges {
			assert.Equal(t,
				Overlaps(a.start, a.end, b.start, b.end),
				Overlaps(b.start, b.end, a.start, a.end),
				"overlaps(%v,%v) must equal overlaps(%v,%v)", a, b, b, a,
			)
		}
	}
}

func TestOverlapsTouchingEndpoints(t *testing.T) {
	// Back-to-back slots share an endpoint but do not conflict.
	assert.False(t, Overlaps("18:00", "20:00", "20:00", "22:00"))
	assert.False(t, Overlaps("18:00", "20:00", "16:00", "18:00"))

	assert.True(t, Overlaps("18:00", "20:00", "19:59", "22:00"))
	assert.True(t, Overlaps("18:00", "20:00", "16:00", "18:01"))
	assert.True(t, Overlaps("18:00", "20:00", "18:30", "19:30"))
}

func TestIsBookable(t *testing.T) {
	schedule := weekdaySchedule()

	tests := []struct {
		name     string
		date     time.Time
		start    string
		end      string
		existing []Reservation
		want     BookableResult
	}{
		{
			name:  "empty day is bookable",
			date:  wednesday,
			start: "10:00",
			end:   "12:00",
			want:  BookableResult{Bookable: true},
		},
		{
			name:  "closed day short-circuits even with no reservations",
			date:  sunday,
			start: "10:00",
			end:   "12:00",
			want:  BookableResult{Bookable: false, Reason: ReasonClosedDay},
		},
		{
			name:  "overlapping confirmed reservation conflicts",
			date:  wednesday,
			start: "10:00",
			end:   "12:00",
			existing: []Reservation{
				{StartTime: "11:00", EndTime: "13:00", Status: StatusConfirmed},
			},
			want: BookableResult{Bookable: false, Reason: ReasonConflict},
		},
		{
			name:  "pending reservation also occupies",
			date:  wednesday,
			start: "10:00",
			end:   "12:00",
			existing: []Reservation{
				{StartTime: "09:00", EndTime: "10:30", Status: StatusPending},
			},
			want: BookableResult{Bookable: false, Reason: ReasonConflict},
		},
		{
			name:  "cancelled reservation never blocks",
			date:  wednesday,
			start: "10:00",
			end:   "12:00",
			existing: []Reservation{
				{StartTime: "10:00", EndTime: "12:00", Status: StatusCancelled},
			},
			want: BookableResult{Bookable: true},
		},
		{
			name:  "completed and no-show reservations never block",
			date:  wednesday,
			start: "10:00",
			end:   "12:00",
			existing: []Reservation{
				{StartTime: "10:00", EndTime: "11:00", Status: StatusCompleted},
				{StartTime: "11:00", EndTime: "12:00", Status: StatusNoShow},
			},
			want: BookableResult{Bookable: true},
		},
		{
			name:  "back-to-back with existing reservation is bookable",
			date:  wednesday,
			start: "10:00",
			end:   "12:00",
			existing: []Reservation{
				{StartTime: "08:00", EndTime: "10:00", Status: StatusConfirmed},
				{StartTime: "12:00", EndTime: "14:00", Status: StatusConfirmed},
			},
			want: BookableResult{Bookable: true},
		},
		{
			name:  "saturday uses the saturday window",
			date:  saturday,
			start: "09:00",
			end:   "10:00",
			want:  BookableResult{Bookable: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsBookable(schedule, tt.date, tt.start, tt.end, tt.existing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsBookableInvalidRange(t *testing.T) {
	schedule := weekdaySchedule()

	for _, tc := range []struct{ start, end string }{
		{"12:00", "10:00"}, // reversed
		{"12:00", "12:00"}, // zero length
		{"9:00", "10:00"},  // malformed
		{"10:00", "25:00"}, // out of range
	} {
		_, err := IsBookable(schedule, wednesday, tc.start, tc.end, nil)
		assert.ErrorIs(t, err, ErrInvalidTimeRange, "start=%s end=%s", tc.start, tc.end)
	}
}

func TestIsBookableMissingWeekdayEntryIsClosed(t *testing.T) {
	schedule := court.OperatingSchedule{
		"monday": {Open: "06:00", Close: "22:00"},
	}

	got, err := IsBookable(schedule, wednesday, "10:00", "11:00", nil)
	require.NoError(t, err)
	assert.Equal(t, BookableResult{Bookable: false, Reason: ReasonClosedDay}, got)
}
