// Package allowance implements the rule engine estimating the federal
// German separation allowance (Trennungsgeld) under the BRKG: tiered meal
// per-diems, overnight reimbursement and kilometre-based travel costs.
//
// The package deliberately covers the standard flat rates only, not every
// special case of the statute. All amounts are Euro values rounded to cents.
package allowance

import "fmt"

// MealRates holds the per-diem and overnight rates in Euro.
type MealRates struct {
	FullDay          float64 // complete 24h absence day
	ArrivalDeparture float64 // travel start/end day
	PartialDay       float64 // additional day with >8h absence
	OvernightFlat    float64 // per night without a receipt
}

// TravelRates holds the kilometre reimbursement rates in Euro per km,
// keyed by vehicle class.
type TravelRates struct {
	CarPerKm        float64
	MotorcyclePerKm float64
	BicyclePerKm    float64
}

// RateTable bundles the statutory rates for one rate year. Tables are
// immutable values passed into the calculator explicitly, so a future rate
// year is a new table rather than mutated process state.
type RateTable struct {
	Year   int
	Meal   MealRates
	Travel TravelRates
}

// Rates2024 is the federal rate table effective 2024.
var Rates2024 = RateTable{
	Year: 2024,
	Meal: MealRates{
		FullDay:          28.00,
		ArrivalDeparture: 14.00,
		PartialDay:       14.00,
		OvernightFlat:    20.00,
	},
	Travel: TravelRates{
		CarPerKm:        0.30,
		MotorcyclePerKm: 0.13,
		BicyclePerKm:    0.05,
	},
}

// DefaultRates returns the latest published rate table.
func DefaultRates() RateTable {
	return Rates2024
}

// RatesForYear returns the rate table for the given year. The second return
// value reports whether the year is published; callers that receive false
// get the latest table as a fallback.
func RatesForYear(year int) (RateTable, bool) {
	switch year {
	case 2024:
		return Rates2024, true
	default:
		return DefaultRates(), false
	}
}

// PerKm returns the mileage rate for the given vehicle. VehicleNone has no
// reimbursable private-vehicle cost and yields zero.
func (t RateTable) PerKm(v Vehicle) (float64, error) {
	switch v {
	case VehicleCar:
		return t.Travel.CarPerKm, nil
	case VehicleMotorcycle:
		return t.Travel.MotorcyclePerKm, nil
	case VehicleBicycle:
		return t.Travel.BicyclePerKm, nil
	case VehicleNone:
		return 0, nil
	default:
		return 0, &ValidationError{Field: "vehicle", Reason: fmt.Sprintf("unsupported vehicle %q", string(v))}
	}
}

// Validate ensures the table is usable: all rates non-negative and the
// vehicle rates ordered car > motorcycle > bicycle as the statute tiers them.
func (t RateTable) Validate() error {
	if t.Meal.FullDay < 0 || t.Meal.ArrivalDeparture < 0 || t.Meal.PartialDay < 0 || t.Meal.OvernightFlat < 0 {
		return fmt.Errorf("meal rates must be non-negative")
	}
	if t.Travel.CarPerKm <= t.Travel.MotorcyclePerKm || t.Travel.MotorcyclePerKm <= t.Travel.BicyclePerKm {
		return fmt.Errorf("vehicle rates must be ordered car > motorcycle > bicycle (got %.2f, %.2f, %.2f)",
			t.Travel.CarPerKm, t.Travel.MotorcyclePerKm, t.Travel.BicyclePerKm)
	}
	if t.Travel.BicyclePerKm < 0 {
		return fmt.Errorf("vehicle rates must be non-negative")
	}
	return nil
}
