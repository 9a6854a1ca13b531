package allowance

import "fmt"

// Vehicle is the closed set of vehicle classes recognised for mileage
// reimbursement.
type Vehicle string

const (
	VehicleCar        Vehicle = "car"
	VehicleMotorcycle Vehicle = "motorcycle"
	VehicleBicycle    Vehicle = "bicycle"
	VehicleNone       Vehicle = "none"
)

// ParseVehicle converts the wire representation into a Vehicle.
func ParseVehicle(s string) (Vehicle, error) {
	switch Vehicle(s) {
	case VehicleCar, VehicleMotorcycle, VehicleBicycle, VehicleNone:
		return Vehicle(s), nil
	default:
		return "", &ValidationError{
			Field:  "vehicle",
			Reason: fmt.Sprintf("unsupported vehicle %q, choose car, motorcycle, bicycle or none", s),
		}
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so JSON decoding rejects
// unknown vehicle strings at the boundary.
func (v *Vehicle) UnmarshalText(text []byte) error {
	parsed, err := ParseVehicle(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (v Vehicle) MarshalText() ([]byte, error) {
	return []byte(v), nil
}

// MealAllowanceInput carries the absence-day and overnight parameters for
// the per-diem component.
type MealAllowanceInput struct {
	FullDays                      int     `json:"full_days"`
	ArrivalDepartureDays          int     `json:"arrival_departure_days"`
	PartialDays                   int     `json:"partial_days"`
	OvernightStaysWithReceipts    int     `json:"overnight_stays_with_receipts"`
	OvernightCostsTotal           float64 `json:"overnight_costs_total"`
	OvernightStaysWithoutReceipts int     `json:"overnight_stays_without_receipts"`
}

// Validate checks non-negativity of every field and the receipt invariant:
// receipted stay count and receipted cost total are either both zero or
// both positive.
func (in MealAllowanceInput) Validate() error {
	switch {
	case in.FullDays < 0:
		return errNegative("full_days")
	case in.ArrivalDepartureDays < 0:
		return errNegative("arrival_departure_days")
	case in.PartialDays < 0:
		return errNegative("partial_days")
	case in.OvernightStaysWithReceipts < 0:
		return errNegative("overnight_stays_with_receipts")
	case in.OvernightCostsTotal < 0:
		return errNegative("overnight_costs_total")
	case in.OvernightStaysWithoutReceipts < 0:
		return errNegative("overnight_stays_without_receipts")
	}
	if (in.OvernightStaysWithReceipts == 0) != (in.OvernightCostsTotal == 0) {
		return &ValidationError{
			Field:  "overnight_stays_with_receipts",
			Reason: "receipted stay count and receipted cost total must be both zero or both positive",
		}
	}
	return nil
}

// TravelCostInput carries the distance and cost parameters for the travel
// reimbursement component. All distances are one-way kilometres; the
// calculator doubles them for round trips.
//
// ActualCosts, when present, replaces the mileage-derived initial-trip and
// home-trip amounts; a nil pointer means no actual costs were supplied,
// which is distinct from actual costs of zero.
type TravelCostInput struct {
	Vehicle         Vehicle  `json:"vehicle"`
	InitialTripKm   float64  `json:"initial_trip_distance_km"`
	WeeklyHomeTrips int      `json:"weekly_home_trips"`
	HomeTripKm      float64  `json:"home_trip_distance_km"`
	CommutingDays   int      `json:"commuting_days"`
	CommutingKm     float64  `json:"commuting_distance_km"`
	ActualCosts     *float64 `json:"actual_costs,omitempty"`
	AdditionalCosts float64  `json:"additional_costs"`
}

// Validate checks vehicle membership and non-negativity of every distance,
// count and amount.
func (in TravelCostInput) Validate() error {
	if _, err := ParseVehicle(string(in.Vehicle)); err != nil {
		return err
	}
	switch {
	case in.InitialTripKm < 0:
		return errNegative("initial_trip_distance_km")
	case in.WeeklyHomeTrips < 0:
		return errNegative("weekly_home_trips")
	case in.HomeTripKm < 0:
		return errNegative("home_trip_distance_km")
	case in.CommutingDays < 0:
		return errNegative("commuting_days")
	case in.CommutingKm < 0:
		return errNegative("commuting_distance_km")
	case in.AdditionalCosts < 0:
		return errNegative("additional_costs")
	}
	if in.ActualCosts != nil && *in.ActualCosts < 0 {
		return errNegative("actual_costs")
	}
	return nil
}
