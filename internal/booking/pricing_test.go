package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/court"
)

func ptr(v float64) *float64 { return &v }

func testPlatformRates() PlatformRates {
	return PlatformRates{
		CoachingRatePerHour: 300,
		CleaningFlatFee:     200,
		PeakStartHour:       18,
		PeakEndHour:         22,
	}
}

func TestComputePriceTiers(t *testing.T) {
	rules := court.PricingRules{
		BasePrice:     500,
		WeekendPrice:  ptr(900),
		PeakHourPrice: ptr(750),
		Currency:      "INR",
	}

	tests := []struct {
		name     string
		date     time.Time
		start    string
		end      string
		wantTier PriceTier
		wantUnit float64
	}{
		{"weekday off-peak uses base", wednesday, "10:00", "12:00", TierBase, 500},
		{"weekday peak start hour uses peak", wednesday, "18:00", "20:00", TierPeak, 750},
		{"peak window end hour inclusive", wednesday, "22:00", "23:00", TierPeak, 750},
		{"hour before peak window is base", wednesday, "17:00", "19:00", TierBase, 500},
		{"weekend overrides peak", saturday, "19:00", "20:00", TierWeekend, 900},
		{"sunday is weekend", sunday, "10:00", "11:00", TierWeekend, 900},
		{"span into peak billed at start tier", wednesday, "16:00", "20:00", TierBase, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePrice(rules, tt.date, tt.start, tt.end, AddOns{}, testPlatformRates())
			require.NoError(t, err)
			assert.Equal(t, tt.wantTier, got.Tier)
			assert.Equal(t, tt.wantUnit, got.UnitPrice)
			assert.Equal(t, "INR", got.Currency)
		})
	}
}

func TestComputePriceWeekendFallback(t *testing.T) {
	// No weekend price set: a Saturday booking falls back to base, even when
	// its start hour is inside the peak window.
	rules := court.PricingRules{
		BasePrice:     500,
		PeakHourPrice: ptr(750),
		Currency:      "INR",
	}

	got, err := ComputePrice(rules, saturday, "19:00", "20:00", AddOns{}, testPlatformRates())
	require.NoError(t, err)
	assert.Equal(t, TierBase, got.Tier)
	assert.Equal(t, 500.0, got.UnitPrice)
	assert.Equal(t, 500.0, got.TotalAmount)
}

func TestComputePricePeakFallback(t *testing.T) {
	rules := court.PricingRules{BasePrice: 500, Currency: "INR"}

	got, err := ComputePrice(rules, wednesday, "19:00", "20:00", AddOns{}, testPlatformRates())
	require.NoError(t, err)
	assert.Equal(t, TierBase, got.Tier)
	assert.Equal(t, 500.0, got.UnitPrice)
}

func TestComputePriceFractionalHours(t *testing.T) {
	rules := court.PricingRules{BasePrice: 400, Currency: "INR"}

	got, err := ComputePrice(rules, wednesday, "10:00", "11:30", AddOns{}, testPlatformRates())
	require.NoError(t, err)
	assert.Equal(t, 1.5, got.DurationHours)
	assert.Equal(t, 600.0, got.BaseCost)
}

func TestComputePriceAddOns(t *testing.T) {
	rules := court.PricingRules{
		BasePrice:              500,
		Currency:               "INR",
		EquipmentRentalCost:    ptr(50),
		LightingAdditionalCost: ptr(30),
	}

	// 3-hour booking: scaled add-ons multiply by duration, cleaning stays flat.
	got, err := ComputePrice(rules, wednesday, "09:00", "12:00", AddOns{
		Equipment: true,
		Lighting:  true,
		Coaching:  true,
		Cleaning:  true,
	}, testPlatformRates())
	require.NoError(t, err)

	assert.Equal(t, 3.0, got.DurationHours)
	assert.Equal(t, 150.0, got.AddOnCosts.Equipment)
	assert.Equal(t, 90.0, got.AddOnCosts.Lighting)
	assert.Equal(t, 900.0, got.AddOnCosts.Coaching)
	assert.Equal(t, 200.0, got.AddOnCosts.Cleaning)
	assert.Equal(t, 1500.0+150+90+900+200, got.TotalAmount)
}

func TestComputePriceAddOnsUnsetRates(t *testing.T) {
	// Equipment and lighting requested but the court has no rates configured:
	// those line items stay zero. Coaching and cleaning are platform-wide and
	// always apply when requested.
	rules := court.PricingRules{BasePrice: 500, Currency: "INR"}

	got, err := ComputePrice(rules, wednesday, "10:00", "11:00", AddOns{
		Equipment: true,
		Lighting:  true,
		Coaching:  true,
	}, testPlatformRates())
	require.NoError(t, err)

	assert.Zero(t, got.AddOnCosts.Equipment)
	assert.Zero(t, got.AddOnCosts.Lighting)
	assert.Equal(t, 300.0, got.AddOnCosts.Coaching)
	assert.Zero(t, got.AddOnCosts.Cleaning)
	assert.Equal(t, 800.0, got.TotalAmount)
}

func TestComputePriceInvalidRange(t *testing.T) {
	rules := court.PricingRules{BasePrice: 500, Currency: "INR"}

	_, err := ComputePrice(rules, wednesday, "12:00", "10:00", AddOns{}, testPlatformRates())
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = ComputePrice(rules, wednesday, "12:00", "12:00", AddOns{}, testPlatformRates())
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestEndToEndScenario(t *testing.T) {
	// Court open Mon-Fri 06:00-22:00, closed Sunday. Base 500, peak 750, no
	// weekend price. Wednesday 19:00-21:00, no add-ons.
	schedule := court.OperatingSchedule{
		"monday":    {Open: "06:00", Close: "22:00"},
		"tuesday":   {Open: "06:00", Close: "22:00"},
		"wednesday": {Open: "06:00", Close: "22:00"},
		"thursday":  {Open: "06:00", Close: "22:00"},
		"friday":    {Open: "06:00", Close: "22:00"},
		"sunday":    {Closed: true},
	}
	rules := court.PricingRules{
		BasePrice:     500,
		PeakHourPrice: ptr(750),
		Currency:      "INR",
	}

	bookable, err := IsBookable(schedule, wednesday, "19:00", "21:00", nil)
	require.NoError(t, err)
	assert.True(t, bookable.Bookable)

	price, err := ComputePrice(rules, wednesday, "19:00", "21:00", AddOns{}, testPlatformRates())
	require.NoError(t, err)
	assert.Equal(t, 2.0, price.DurationHours)
	assert.Equal(t, TierPeak, price.Tier)
	assert.Equal(t, 750.0, price.UnitPrice)
	assert.Equal(t, 1500.0, price.BaseCost)
	assert.Equal(t, 1500.0, price.TotalAmount)
}
