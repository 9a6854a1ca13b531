package report

import (
	"encoding/json"
	"fmt"

	"github.com/tmoellner/trennungsgeld/internal/allowance"
)

// jsonReport is the machine-readable result document.
type jsonReport struct {
	Currency  string              `json:"currency"`
	RatesYear int                 `json:"rates_year"`
	Breakdown allowance.Breakdown `json:"breakdown"`
}

// FormatJSON renders the breakdown with rate provenance as indented JSON.
func FormatJSON(b allowance.Breakdown, rates allowance.RateTable, currency string) (string, error) {
	doc := jsonReport{
		Currency:  currency,
		RatesYear: rates.Year,
		Breakdown: b,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	return string(data) + "\n", nil
}
