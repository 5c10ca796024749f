package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailableSlots(t *testing.T) {
	schedule := weekdaySchedule()

	tests := []struct {
		name     string
		existing []Reservation
		want     []TimeSlot
	}{
		{
			name: "no reservations, full open window",
			want: []TimeSlot{{Start: "06:00", End: "22:00"}},
		},
		{
			name: "one reservation splits the day",
			existing: []Reservation{
				{StartTime: "12:00", EndTime: "13:00", Status: StatusConfirmed},
			},
			want: []TimeSlot{
				{Start: "06:00", End: "12:00"},
				{Start: "13:00", End: "22:00"},
			},
		},
		{
			name: "cancelled reservation is ignored",
			existing: []Reservation{
				{StartTime: "12:00", EndTime: "13:00", Status: StatusCancelled},
			},
			want: []TimeSlot{{Start: "06:00", End: "22:00"}},
		},
		{
			name: "unsorted and overlapping reservations are merged",
			existing: []Reservation{
				{StartTime: "15:00", EndTime: "17:00", Status: StatusPending},
				{StartTime: "08:00", EndTime: "10:00", Status: StatusConfirmed},
				{StartTime: "09:00", EndTime: "11:00", Status: StatusConfirmed},
			},
			want: []TimeSlot{
				{Start: "06:00", End: "08:00"},
				{Start: "11:00", End: "15:00"},
				{Start: "17:00", End: "22:00"},
			},
		},
		{
			name: "reservation covering the whole window leaves nothing",
			existing: []Reservation{
				{StartTime: "06:00", EndTime: "22:00", Status: StatusConfirmed},
			},
			want: []TimeSlot{},
		},
		{
			name: "reservation at the opening edge",
			existing: []Reservation{
				{StartTime: "06:00", EndTime: "08:00", Status: StatusConfirmed},
			},
			want: []TimeSlot{{Start: "08:00", End: "22:00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AvailableSlots(schedule, wednesday, tt.existing)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAvailableSlotsClosedDay(t *testing.T) {
	got := AvailableSlots(weekdaySchedule(), sunday, nil)
	assert.Empty(t, got)
}
