package court

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOperatingScheduleValidate(t *testing.T) {
	tests := []struct {
		name    string
		sched   OperatingSchedule
		wantErr bool
	}{
		{
			name: "valid week",
			sched: OperatingSchedule{
				"monday": {Open: "06:00", Close: "22:00"},
				"sunday": {Closed: true},
			},
		},
		{
			name:    "empty schedule",
			sched:   OperatingSchedule{},
			wantErr: true,
		},
		{
			name: "unknown weekday key",
			sched: OperatingSchedule{
				"funday": {Open: "06:00", Close: "22:00"},
			},
			wantErr: true,
		},
		{
			name: "open not before close",
			sched: OperatingSchedule{
				"monday": {Open: "22:00", Close: "06:00"},
			},
			wantErr: true,
		},
		{
			name: "equal open and close",
			sched: OperatingSchedule{
				"monday": {Open: "10:00", Close: "10:00"},
			},
			wantErr: true,
		},
		{
			name: "malformed clock string",
			sched: OperatingSchedule{
				"monday": {Open: "6:00", Close: "22:00"},
			},
			wantErr: true,
		},
		{
			name: "closed day skips hour validation",
			sched: OperatingSchedule{
				"monday": {Closed: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sched.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSchedule)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleFor(t *testing.T) {
	sched := OperatingSchedule{
		"wednesday": {Open: "08:00", Close: "20:00"},
	}

	// 2026-02-11 is a Wednesday.
	hours, ok := sched.For(time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, "08:00", hours.Open)

	// Thursday has no entry.
	_, ok = sched.For(time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestPricingRulesValidate(t *testing.T) {
	neg := -1.0
	ok := 750.0

	assert.NoError(t, PricingRules{BasePrice: 500, Currency: "INR", PeakHourPrice: &ok}.Validate())
	assert.ErrorIs(t, PricingRules{BasePrice: 0, Currency: "INR"}.Validate(), ErrInvalidPricing)
	assert.ErrorIs(t, PricingRules{BasePrice: 500}.Validate(), ErrInvalidPricing)
	assert.ErrorIs(t, PricingRules{BasePrice: 500, Currency: "INR", WeekendPrice: &neg}.Validate(), ErrInvalidPricing)
}
