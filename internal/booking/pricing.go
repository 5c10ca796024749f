package booking

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/court"
	"github.com/quickcourt/quickcourt-backend/internal/pkg/clock"
)

// PriceTier is the pricing bracket applied to a booking.
type PriceTier string

const (
	TierBase    PriceTier = "base"
	TierPeak    PriceTier = "peak"
	TierWeekend PriceTier = "weekend"
)

// PlatformRates carries the platform-wide pricing constants. They are
// configuration, injected by the caller, never read from globals here.
type PlatformRates struct {
	CoachingRatePerHour float64
	CleaningFlatFee     float64

	// Peak window in whole hours; a booking whose start hour is within
	// [PeakStartHour, PeakEndHour] on a non-weekend day is billed at the
	// peak tier.
	PeakStartHour int
	PeakEndHour   int
}

// PriceBreakdown is the result of a price evaluation. Values are exact
// floating-point products; rounding is a presentation concern.
type PriceBreakdown struct {
	Tier          PriceTier
	UnitPrice     float64
	DurationHours float64
	BaseCost      float64
	AddOnCosts    AddOnCosts
	TotalAmount   float64
	Currency      string
}

// ComputePrice evaluates the cost of booking the [start, end) range on the
// given date under the court's pricing rules.
//
// Exactly one tier applies: weekend overrides peak overrides base. Weekend
// is Saturday or Sunday; the peak tier is selected from the start hour only,
// so a booking spanning off-peak into peak is billed entirely at its start
// tier. A nil weekend or peak price falls back to the base price.
func ComputePrice(rules court.PricingRules, date time.Time, start, end string, addOns AddOns, platform PlatformRates) (PriceBreakdown, error) {
	if err := validateRange(start, end); err != nil {
		return PriceBreakdown{}, err
	}

	startMins, err := clock.ParseMinutes(start)
	if err != nil {
		return PriceBreakdown{}, ErrInvalidTimeRange
	}
	endMins, err := clock.ParseMinutes(end)
	if err != nil {
		return PriceBreakdown{}, ErrInvalidTimeRange
	}

	// Fractional hours are valid and preserved (e.g. 1.5 for 90 minutes).
	duration := float64(endMins-startMins) / 60

	tier := TierBase
	unitPrice := rules.BasePrice

	startHour := startMins / 60
	switch {
	case isWeekend(date):
		if rules.WeekendPrice != nil {
			tier = TierWeekend
			unitPrice = *rules.WeekendPrice
		}
	case startHour >= platform.PeakStartHour && startHour <= platform.PeakEndHour:
		if rules.PeakHourPrice != nil {
			tier = TierPeak
			unitPrice = *rules.PeakHourPrice
		}
	}

	baseCost := unitPrice * duration

	var costs AddOnCosts
	if addOns.Equipment && rules.EquipmentRentalCost != nil {
		costs.Equipment = *rules.EquipmentRentalCost * duration
	}
	if addOns.Lighting && rules.LightingAdditionalCost != nil {
		costs.Lighting = *rules.LightingAdditionalCost * duration
	}
	if addOns.Coaching {
		costs.Coaching = platform.CoachingRatePerHour * duration
	}
	if addOns.Cleaning {
		// Flat fee, not scaled by duration.
		costs.Cleaning = platform.CleaningFlatFee
	}

	return PriceBreakdown{
		Tier:          tier,
		UnitPrice:     unitPrice,
		DurationHours: duration,
		BaseCost:      baseCost,
		AddOnCosts:    costs,
		TotalAmount:   baseCost + costs.Sum(),
		Currency:      rules.Currency,
	}, nil
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
