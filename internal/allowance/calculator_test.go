package allowance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestMealAllowanceRateFormula(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	tests := []struct {
		name     string
		input    MealAllowanceInput
		expected float64
	}{
		{
			name:     "zero days",
			input:    MealAllowanceInput{},
			expected: 0,
		},
		{
			name:     "full days only",
			input:    MealAllowanceInput{FullDays: 3},
			expected: 84.00,
		},
		{
			name:     "arrival and partial days share the reduced rate",
			input:    MealAllowanceInput{ArrivalDepartureDays: 2, PartialDays: 1},
			expected: 42.00,
		},
		{
			name:     "documented scenario",
			input:    MealAllowanceInput{FullDays: 5, ArrivalDepartureDays: 2, PartialDays: 3},
			expected: 210.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meal, _, err := calc.MealAllowance(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, meal)
		})
	}
}

func TestOvernightAllowanceMixesReceiptedAndFlat(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	tests := []struct {
		name     string
		input    MealAllowanceInput
		expected float64
	}{
		{
			name:     "no overnight stays",
			input:    MealAllowanceInput{},
			expected: 0,
		},
		{
			name:     "flat rate nights only",
			input:    MealAllowanceInput{OvernightStaysWithoutReceipts: 4},
			expected: 80.00,
		},
		{
			name: "receipted costs taken verbatim",
			input: MealAllowanceInput{
				OvernightStaysWithReceipts: 3,
				OvernightCostsTotal:        245.50,
			},
			expected: 245.50,
		},
		{
			name: "receipted and flat nights are additive",
			input: MealAllowanceInput{
				OvernightStaysWithReceipts:    4,
				OvernightCostsTotal:           320,
				OvernightStaysWithoutReceipts: 2,
			},
			expected: 360.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, overnight, err := calc.MealAllowance(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, overnight)
		})
	}
}

func TestTravelCostsMileage(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	t.Run("car round trip", func(t *testing.T) {
		initial, home, commuting, additional, err := calc.TravelCosts(TravelCostInput{
			Vehicle:       VehicleCar,
			InitialTripKm: 500,
		})
		require.NoError(t, err)
		assert.Equal(t, 300.00, initial)
		assert.Zero(t, home)
		assert.Zero(t, commuting)
		assert.Zero(t, additional)
	})

	t.Run("home trips double the one-way distance", func(t *testing.T) {
		_, home, _, _, err := calc.TravelCosts(TravelCostInput{
			Vehicle:         VehicleCar,
			WeeklyHomeTrips: 4,
			HomeTripKm:      120,
		})
		require.NoError(t, err)
		assert.Equal(t, 288.00, home)
	})

	t.Run("commuting uses daily round trips", func(t *testing.T) {
		_, _, commuting, _, err := calc.TravelCosts(TravelCostInput{
			Vehicle:       VehicleMotorcycle,
			CommutingDays: 10,
			CommutingKm:   15,
		})
		require.NoError(t, err)
		assert.Equal(t, 39.00, commuting)
	})

	t.Run("vehicle none yields no mileage reimbursement", func(t *testing.T) {
		initial, home, commuting, additional, err := calc.TravelCosts(TravelCostInput{
			Vehicle:         VehicleNone,
			InitialTripKm:   500,
			WeeklyHomeTrips: 2,
			HomeTripKm:      100,
			CommutingDays:   5,
			CommutingKm:     20,
			AdditionalCosts: 12.50,
		})
		require.NoError(t, err)
		assert.Zero(t, initial)
		assert.Zero(t, home)
		assert.Zero(t, commuting)
		assert.Equal(t, 12.50, additional)
	})
}

func TestActualCostsReplaceTripMileage(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	base := TravelCostInput{
		Vehicle:         VehicleCar,
		InitialTripKm:   500,
		WeeklyHomeTrips: 4,
		HomeTripKm:      120,
		CommutingDays:   10,
		CommutingKm:     15,
		ActualCosts:     floatPtr(275.00),
	}

	initial, home, commuting, _, err := calc.TravelCosts(base)
	require.NoError(t, err)
	assert.Equal(t, 275.00, initial, "actual costs replace the mileage trip amounts")
	assert.Zero(t, home)
	assert.Equal(t, 90.00, commuting, "commuting stays mileage-based")

	t.Run("trip distances become inert", func(t *testing.T) {
		changed := base
		changed.InitialTripKm = 9999
		changed.HomeTripKm = 1
		initial2, home2, commuting2, _, err := calc.TravelCosts(changed)
		require.NoError(t, err)
		assert.Equal(t, initial, initial2)
		assert.Equal(t, home, home2)
		assert.Equal(t, commuting, commuting2)
	})

	t.Run("commuting distance still matters", func(t *testing.T) {
		changed := base
		changed.CommutingKm = 30
		_, _, commuting2, _, err := calc.TravelCosts(changed)
		require.NoError(t, err)
		assert.Equal(t, 180.00, commuting2)
	})

	t.Run("explicit zero actual costs still override", func(t *testing.T) {
		changed := base
		changed.ActualCosts = floatPtr(0)
		initial2, home2, _, _, err := calc.TravelCosts(changed)
		require.NoError(t, err)
		assert.Zero(t, initial2)
		assert.Zero(t, home2)
	})
}

func TestComputeAssemblesBreakdown(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	meal := MealAllowanceInput{
		FullDays:                      5,
		ArrivalDepartureDays:          2,
		PartialDays:                   3,
		OvernightStaysWithoutReceipts: 2,
	}
	travel := TravelCostInput{
		Vehicle:         VehicleCar,
		InitialTripKm:   500,
		WeeklyHomeTrips: 2,
		HomeTripKm:      100,
		CommutingDays:   10,
		CommutingKm:     15,
		AdditionalCosts: 19.90,
	}

	b, err := calc.Compute(meal, travel)
	require.NoError(t, err)

	assert.Equal(t, 210.00, b.MealAllowance)
	assert.Equal(t, 40.00, b.OvernightAllowance)
	assert.Equal(t, 300.00, b.InitialTripCost)
	assert.Equal(t, 120.00, b.HomeTripCost)
	assert.Equal(t, 90.00, b.CommutingCost)
	assert.Equal(t, 19.90, b.AdditionalCosts)
	assert.Equal(t, 779.90, b.Total)
}

func TestComputeGrandTotalMatchesEntries(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	b, err := calc.Compute(
		MealAllowanceInput{FullDays: 7, PartialDays: 1, OvernightStaysWithoutReceipts: 6},
		TravelCostInput{
			Vehicle:         VehicleBicycle,
			InitialTripKm:   12.5,
			CommutingDays:   9,
			CommutingKm:     3.3,
			AdditionalCosts: 4.05,
		},
	)
	require.NoError(t, err)

	var sum float64
	entries := b.Entries()
	require.Len(t, entries, 6)
	for _, e := range entries {
		sum += e.Amount
	}
	assert.Equal(t, b.Total, roundCents(sum))
}

func TestComputeIsIdempotent(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	meal := MealAllowanceInput{FullDays: 3, OvernightStaysWithoutReceipts: 2}
	travel := TravelCostInput{Vehicle: VehicleCar, InitialTripKm: 77.7, CommutingDays: 4, CommutingKm: 11.1}

	first, err := calc.Compute(meal, travel)
	require.NoError(t, err)
	second, err := calc.Compute(meal, travel)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeRejectsInvalidInputBeforeArithmetic(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	tests := []struct {
		name     string
		meal     MealAllowanceInput
		travel   TravelCostInput
		wantWord string
	}{
		{
			name:     "negative full days",
			meal:     MealAllowanceInput{FullDays: -1},
			travel:   TravelCostInput{Vehicle: VehicleCar},
			wantWord: "full_days",
		},
		{
			name:     "receipt cost without receipt count",
			meal:     MealAllowanceInput{OvernightCostsTotal: 150},
			travel:   TravelCostInput{Vehicle: VehicleCar},
			wantWord: "overnight_stays_with_receipts",
		},
		{
			name:     "receipt count without cost",
			meal:     MealAllowanceInput{OvernightStaysWithReceipts: 2},
			travel:   TravelCostInput{Vehicle: VehicleCar},
			wantWord: "overnight_stays_with_receipts",
		},
		{
			name:     "negative distance",
			travel:   TravelCostInput{Vehicle: VehicleCar, InitialTripKm: -3},
			wantWord: "initial_trip_distance_km",
		},
		{
			name:     "negative actual costs",
			travel:   TravelCostInput{Vehicle: VehicleCar, ActualCosts: floatPtr(-1)},
			wantWord: "actual_costs",
		},
		{
			name:     "unknown vehicle",
			travel:   TravelCostInput{Vehicle: Vehicle("horse")},
			wantWord: "vehicle",
		},
		{
			name:     "empty vehicle",
			travel:   TravelCostInput{},
			wantWord: "vehicle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := calc.Compute(tt.meal, tt.travel)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, err.Error(), tt.wantWord)
			assert.Equal(t, Breakdown{}, b, "no partial breakdown on validation failure")
		})
	}
}
