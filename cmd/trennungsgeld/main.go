package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/tmoellner/trennungsgeld/internal/allowance"
	"github.com/tmoellner/trennungsgeld/internal/config"
	"github.com/tmoellner/trennungsgeld/internal/inputfile"
	"github.com/tmoellner/trennungsgeld/internal/report"
	"github.com/tmoellner/trennungsgeld/pkg/utils"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		var verr *allowance.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "Eingabefehler: %v\n", verr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("trennungsgeld", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Berechnet eine Prognose für den Trennungsgeldanspruch auf Bundesebene inklusive Reisekosten.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage: trennungsgeld [flags]")
		fmt.Fprintln(os.Stderr)
		flags.PrintDefaults()
	}

	var (
		configPath  = flags.String("config", "", "Pfad zur Konfigurationsdatei (YAML)")
		inputPath   = flags.String("input", "", "Optionale JSON-Datei mit meal_allowance und travel_costs Objekten")
		interactive = flags.Bool("interactive", false, "Eingaben interaktiv abfragen")
		showRates   = flags.Bool("show-rates", false, "Aktive Pauschalen anzeigen und beenden")
		format      = flags.String("format", "", "Ausgabeformat: text oder json")
		excelOut    = flags.String("excel", "", "Berechnung zusätzlich als Excel-Datei speichern")
		pdfOut      = flags.String("pdf", "", "Berechnung zusätzlich als PDF-Datei speichern")

		fullDays          = flags.Int("full-days", 0, "Anzahl voller Abwesenheitstage")
		arrivalDays       = flags.Int("arrival-days", 0, "Anzahl von An- oder Abreisetagen")
		partialDays       = flags.Int("partial-days", 0, "Anzahl weiterer Tage mit mehr als 8 Stunden Abwesenheit")
		overnightReceipts = flags.Int("overnight-receipts", 0, "Übernachtungen mit Belegen")
		overnightCosts    = flags.Float64("overnight-costs", 0, "Summe der belegten Übernachtungskosten")
		overnightFlat     = flags.Int("overnight-flat", 0, "Übernachtungen ohne Beleg (Pauschale)")

		vehicle         = flags.String("vehicle", "", "Fortbewegungsmittel: car, motorcycle, bicycle oder none")
		initialTripKm   = flags.Float64("initial-trip-km", 0, "Einfache Entfernung der An-/Rückreise (km)")
		homeTrips       = flags.Int("home-trips", 0, "Anzahl genehmigter Heimfahrten")
		homeTripKm      = flags.Float64("home-trip-km", 0, "Einfache Entfernung einer Heimfahrt (km)")
		commutingDays   = flags.Int("commuting-days", 0, "Anzahl Pendeltage")
		commutingKm     = flags.Float64("commuting-km", 0, "Einfache Pendeldistanz (km)")
		actualCosts     = flags.Float64("actual-costs", 0, "Tatsächliche Reisekosten (ersetzen die Kilometerpauschale für An-/Heimfahrten)")
		additionalCosts = flags.Float64("additional-costs", 0, "Weitere erstattungsfähige Kosten")
	)

	if err := flags.Parse(args); err != nil {
		return err
	}

	// A local .env may carry TRENNUNGSGELD_* overrides.
	_ = gotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	rates, published := allowance.RatesForYear(cfg.Rates.Year)
	if !published {
		logger.Warn("No published rate table for requested year, using latest",
			zap.Int("requested", cfg.Rates.Year),
			zap.Int("applied", rates.Year))
	}

	if *showRates {
		fmt.Print(report.FormatRates(rates, cfg.Report.Currency))
		return nil
	}

	var meal allowance.MealAllowanceInput
	var travel allowance.TravelCostInput

	switch {
	case *interactive:
		meal, travel, err = promptInputs(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
	case *inputPath != "":
		logger.Info("Loading input file", zap.String("path", *inputPath))
		req, err := inputfile.Load(*inputPath)
		if err != nil {
			return err
		}
		meal, travel = req.Meal, req.Travel
	}

	// Explicitly set flags override file values.
	if flags.Changed("full-days") {
		meal.FullDays = *fullDays
	}
	if flags.Changed("arrival-days") {
		meal.ArrivalDepartureDays = *arrivalDays
	}
	if flags.Changed("partial-days") {
		meal.PartialDays = *partialDays
	}
	if flags.Changed("overnight-receipts") {
		meal.OvernightStaysWithReceipts = *overnightReceipts
	}
	if flags.Changed("overnight-costs") {
		meal.OvernightCostsTotal = *overnightCosts
	}
	if flags.Changed("overnight-flat") {
		meal.OvernightStaysWithoutReceipts = *overnightFlat
	}
	if flags.Changed("vehicle") {
		v, err := allowance.ParseVehicle(*vehicle)
		if err != nil {
			return err
		}
		travel.Vehicle = v
	}
	if travel.Vehicle == "" {
		travel.Vehicle = allowance.VehicleNone
	}
	if flags.Changed("initial-trip-km") {
		travel.InitialTripKm = *initialTripKm
	}
	if flags.Changed("home-trips") {
		travel.WeeklyHomeTrips = *homeTrips
	}
	if flags.Changed("home-trip-km") {
		travel.HomeTripKm = *homeTripKm
	}
	if flags.Changed("commuting-days") {
		travel.CommutingDays = *commutingDays
	}
	if flags.Changed("commuting-km") {
		travel.CommutingKm = *commutingKm
	}
	if flags.Changed("actual-costs") {
		travel.ActualCosts = actualCosts
	}
	if flags.Changed("additional-costs") {
		travel.AdditionalCosts = *additionalCosts
	}

	calc := allowance.NewCalculator(rates)
	breakdown, err := calc.Compute(meal, travel)
	if err != nil {
		return err
	}

	outFormat := cfg.Report.Format
	if *format != "" {
		outFormat = *format
	}
	switch outFormat {
	case "text":
		fmt.Print(report.FormatText(breakdown, cfg.Report.Currency))
	case "json":
		out, err := report.FormatJSON(breakdown, rates, cfg.Report.Currency)
		if err != nil {
			return err
		}
		fmt.Print(out)
	default:
		return fmt.Errorf("unsupported output format %q", outFormat)
	}

	excelPath := cfg.Report.ExcelOut
	if *excelOut != "" {
		excelPath = *excelOut
	}
	if excelPath != "" {
		writer := report.NewExcelWriter(cfg.Report.Currency, logger)
		if err := writer.Write(breakdown, rates, excelPath); err != nil {
			return err
		}
	}

	pdfPath := cfg.Report.PDFOut
	if *pdfOut != "" {
		pdfPath = *pdfOut
	}
	if pdfPath != "" {
		writer := report.NewPDFWriter(cfg.Report.Currency, logger)
		if err := writer.Write(breakdown, rates, pdfPath); err != nil {
			return err
		}
	}

	return nil
}
