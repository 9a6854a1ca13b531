// Package inputfile loads calculation requests from JSON files.
//
// The file format matches the documented exchange representation: a single
// object with top-level meal_allowance and travel_costs objects whose
// snake_case fields mirror the input records. Both objects are optional;
// missing fields default to zero.
package inputfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tmoellner/trennungsgeld/internal/allowance"
)

// Request is the decoded content of an input file.
type Request struct {
	Meal   allowance.MealAllowanceInput `json:"meal_allowance"`
	Travel allowance.TravelCostInput    `json:"travel_costs"`
}

// Load reads and decodes the JSON request at path. Decoding is strict:
// unknown fields are rejected so a typo in a field name cannot silently
// zero an amount. Domain validation stays with the calculator; Load only
// guarantees a well-formed record.
func Load(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return decode(data)
}

func decode(data []byte) (*Request, error) {
	var req Request
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to parse input file: %w", err)
	}
	return &req, nil
}
