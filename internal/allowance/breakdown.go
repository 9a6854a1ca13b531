package allowance

// Breakdown is the result of one calculation: six sub-totals plus the grand
// total, all in Euro rounded to cents. The grand total is the exact sum of
// the six sub-totals. A Breakdown is created once per Compute call and
// never mutated afterwards.
type Breakdown struct {
	MealAllowance      float64 `json:"meal_allowance"`
	OvernightAllowance float64 `json:"overnight_allowance"`
	InitialTripCost    float64 `json:"initial_trip_cost"`
	HomeTripCost       float64 `json:"home_trip_cost"`
	CommutingCost      float64 `json:"commuting_cost"`
	AdditionalCosts    float64 `json:"additional_costs"`
	Total              float64 `json:"total"`
}

// Entry is one labelled sub-total for ordered rendering.
type Entry struct {
	Label  string
	Amount float64
}

// Entries returns the six sub-totals in display order.
func (b Breakdown) Entries() []Entry {
	return []Entry{
		{"meal_allowance", b.MealAllowance},
		{"overnight_allowance", b.OvernightAllowance},
		{"initial_trip_cost", b.InitialTripCost},
		{"home_trip_cost", b.HomeTripCost},
		{"commuting_cost", b.CommutingCost},
		{"additional_costs", b.AdditionalCosts},
	}
}
