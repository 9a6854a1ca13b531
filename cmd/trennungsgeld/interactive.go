package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tmoellner/trennungsgeld/internal/allowance"
)

// prompter reads interactive answers line by line. Empty answers keep the
// default; invalid answers are asked again.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) ask(message, def string) string {
	fmt.Fprintf(p.out, "%s [%s]: ", message, def)
	if !p.in.Scan() {
		return def
	}
	raw := strings.TrimSpace(p.in.Text())
	if raw == "" {
		return def
	}
	return raw
}

func (p *prompter) askInt(message string) int {
	for {
		raw := p.ask(message, "0")
		v, err := strconv.Atoi(raw)
		if err == nil {
			return v
		}
		fmt.Fprintln(p.out, "Bitte eine ganze Zahl eingeben.")
	}
}

func (p *prompter) askFloat(message string) float64 {
	for {
		raw := strings.ReplaceAll(p.ask(message, "0"), ",", ".")
		v, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return v
		}
		fmt.Fprintln(p.out, "Bitte eine gültige Zahl eingeben.")
	}
}

// askOptionalFloat returns nil when the answer stays empty, so "no actual
// costs" is distinguishable from zero actual costs.
func (p *prompter) askOptionalFloat(message string) *float64 {
	for {
		fmt.Fprintf(p.out, "%s [leer]: ", message)
		if !p.in.Scan() {
			return nil
		}
		raw := strings.TrimSpace(p.in.Text())
		if raw == "" {
			return nil
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err == nil {
			return &v
		}
		fmt.Fprintln(p.out, "Bitte eine gültige Zahl eingeben.")
	}
}

func (p *prompter) askVehicle() allowance.Vehicle {
	for {
		raw := p.ask("Fortbewegungsmittel (car/motorcycle/bicycle/none)", string(allowance.VehicleCar))
		v, err := allowance.ParseVehicle(strings.ToLower(raw))
		if err == nil {
			return v
		}
		fmt.Fprintln(p.out, "Bitte car, motorcycle, bicycle oder none eingeben.")
	}
}

// promptInputs runs the interactive quickstart workflow.
func promptInputs(in io.Reader, out io.Writer) (allowance.MealAllowanceInput, allowance.TravelCostInput, error) {
	p := &prompter{in: bufio.NewScanner(in), out: out}

	fmt.Fprintln(out, "Trennungsgeld Schnelleinstieg")
	fmt.Fprintln(out, "(Eingabe mit Enter übernimmt den Standardwert)")

	meal := allowance.MealAllowanceInput{
		FullDays:                      p.askInt("Anzahl voller Abwesenheitstage"),
		ArrivalDepartureDays:          p.askInt("Anzahl An-/Abreisetage"),
		PartialDays:                   p.askInt("Anzahl weiterer Tage mit >8h Abwesenheit"),
		OvernightStaysWithReceipts:    p.askInt("Übernachtungen mit Beleg"),
		OvernightCostsTotal:           p.askFloat("Summe belegter Übernachtungskosten (EUR)"),
		OvernightStaysWithoutReceipts: p.askInt("Übernachtungen ohne Beleg"),
	}

	travel := allowance.TravelCostInput{
		Vehicle:         p.askVehicle(),
		InitialTripKm:   p.askFloat("Einfache Entfernung der Anreise (km)"),
		WeeklyHomeTrips: p.askInt("Anzahl genehmigter Heimfahrten"),
		HomeTripKm:      p.askFloat("Einfache Entfernung einer Heimfahrt (km)"),
		CommutingDays:   p.askInt("Anzahl Pendeltage"),
		CommutingKm:     p.askFloat("Einfache Pendeldistanz (km)"),
		ActualCosts:     p.askOptionalFloat("Tatsächliche Reisekosten gesamt (EUR)"),
		AdditionalCosts: p.askFloat("Weitere erstattungsfähige Kosten (EUR)"),
	}

	return meal, travel, nil
}
