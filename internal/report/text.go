// Package report renders a computed allowance breakdown in the supported
// output formats: console text, JSON, Excel and PDF.
package report

import (
	"fmt"
	"strings"

	"github.com/tmoellner/trennungsgeld/internal/allowance"
)

// labels maps breakdown entry keys to their display names.
var labels = map[string]string{
	"meal_allowance":      "Verpflegungspauschale",
	"overnight_allowance": "Übernachtungskosten",
	"initial_trip_cost":   "An- und Abreise",
	"home_trip_cost":      "Heimfahrten",
	"commuting_cost":      "Pendelfahrten",
	"additional_costs":    "Weitere Kosten",
}

// FormatText renders the human-readable calculation overview.
func FormatText(b allowance.Breakdown, currency string) string {
	var sb strings.Builder
	sb.WriteString("Berechnungsübersicht:\n")
	fmt.Fprintf(&sb, "  Gesamtsumme: %.2f %s\n", b.Total, currency)
	sb.WriteString("  Detailposten:\n")
	for _, e := range b.Entries() {
		fmt.Fprintf(&sb, "    %-22s %10.2f %s\n", labels[e.Label]+":", e.Amount, currency)
	}
	return sb.String()
}

// FormatRates renders the active rate table for provenance display.
func FormatRates(rates allowance.RateTable, currency string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Pauschalen (Stand %d):\n", rates.Year)
	fmt.Fprintf(&sb, "  Voller Abwesenheitstag:   %6.2f %s\n", rates.Meal.FullDay, currency)
	fmt.Fprintf(&sb, "  An-/Abreisetag:           %6.2f %s\n", rates.Meal.ArrivalDeparture, currency)
	fmt.Fprintf(&sb, "  Teiltag (>8h):            %6.2f %s\n", rates.Meal.PartialDay, currency)
	fmt.Fprintf(&sb, "  Übernachtung ohne Beleg:  %6.2f %s\n", rates.Meal.OvernightFlat, currency)
	fmt.Fprintf(&sb, "  Pkw:                      %6.2f %s/km\n", rates.Travel.CarPerKm, currency)
	fmt.Fprintf(&sb, "  Motorrad:                 %6.2f %s/km\n", rates.Travel.MotorcyclePerKm, currency)
	fmt.Fprintf(&sb, "  Fahrrad:                  %6.2f %s/km\n", rates.Travel.BicyclePerKm, currency)
	return sb.String()
}
