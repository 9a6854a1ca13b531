package allowance

import "math"

// Calculator evaluates allowance inputs against one immutable rate table.
// It holds no other state, performs no I/O and is safe for concurrent use.
type Calculator struct {
	rates RateTable
}

// NewCalculator creates a calculator bound to the given rate table.
func NewCalculator(rates RateTable) *Calculator {
	return &Calculator{rates: rates}
}

// Rates returns the rate table the calculator applies.
func (c *Calculator) Rates() RateTable {
	return c.rates
}

// roundCents rounds a Euro amount to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// MealAllowance computes the meal per-diem and the overnight allowance.
// Receipted overnight costs are taken verbatim; unreceipted nights use the
// flat rate. The two are additive because a single assignment may mix
// receipted and unreceipted nights.
func (c *Calculator) MealAllowance(in MealAllowanceInput) (meal, overnight float64, err error) {
	if err := in.Validate(); err != nil {
		return 0, 0, err
	}

	meal = float64(in.FullDays)*c.rates.Meal.FullDay +
		float64(in.ArrivalDepartureDays)*c.rates.Meal.ArrivalDeparture +
		float64(in.PartialDays)*c.rates.Meal.PartialDay

	overnight = in.OvernightCostsTotal +
		float64(in.OvernightStaysWithoutReceipts)*c.rates.Meal.OvernightFlat

	return roundCents(meal), roundCents(overnight), nil
}

// TravelCosts computes the three distance-derived sub-totals plus the
// pass-through additional costs. Stored distances are one-way and doubled
// for the round trip. When actual costs are supplied they replace the
// mileage-derived initial-trip and home-trip amounts entirely; commuting
// stays mileage-based because daily commuting (Pendelfahrten) is reimbursed
// separately from the assignment travel (Reisekosten).
func (c *Calculator) TravelCosts(in TravelCostInput) (initial, home, commuting, additional float64, err error) {
	if err := in.Validate(); err != nil {
		return 0, 0, 0, 0, err
	}
	rate, err := c.rates.PerKm(in.Vehicle)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	if in.ActualCosts != nil {
		initial = *in.ActualCosts
		home = 0
	} else {
		initial = in.InitialTripKm * rate * 2
		home = float64(in.WeeklyHomeTrips) * in.HomeTripKm * rate * 2
	}
	commuting = float64(in.CommutingDays) * in.CommutingKm * rate * 2
	additional = in.AdditionalCosts

	return roundCents(initial), roundCents(home), roundCents(commuting), roundCents(additional), nil
}

// Compute validates both inputs, evaluates the meal and travel components
// and assembles the breakdown. Any validation failure aborts the whole call
// before a sub-total is produced; the grand total is the exact sum of the
// six sub-totals.
func (c *Calculator) Compute(meal MealAllowanceInput, travel TravelCostInput) (Breakdown, error) {
	if err := meal.Validate(); err != nil {
		return Breakdown{}, err
	}
	if err := travel.Validate(); err != nil {
		return Breakdown{}, err
	}

	mealAmount, overnight, err := c.MealAllowance(meal)
	if err != nil {
		return Breakdown{}, err
	}
	initial, home, commuting, additional, err := c.TravelCosts(travel)
	if err != nil {
		return Breakdown{}, err
	}

	b := Breakdown{
		MealAllowance:      mealAmount,
		OvernightAllowance: overnight,
		InitialTripCost:    initial,
		HomeTripCost:       home,
		CommutingCost:      commuting,
		AdditionalCosts:    additional,
	}
	for _, e := range b.Entries() {
		b.Total += e.Amount
	}
	b.Total = roundCents(b.Total)
	return b, nil
}
