package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tmoellner/trennungsgeld/internal/allowance"
)

// ExcelWriter exports a breakdown as an .xlsx worksheet.
type ExcelWriter struct {
	currency string
	logger   *zap.Logger
}

// NewExcelWriter creates a new Excel writer.
func NewExcelWriter(currency string, logger *zap.Logger) *ExcelWriter {
	return &ExcelWriter{currency: currency, logger: logger}
}

// Write renders the breakdown into a fresh workbook and saves it to
// outputPath.
func (w *ExcelWriter) Write(b allowance.Breakdown, rates allowance.RateTable, outputPath string) error {
	w.logger.Info("Writing Excel report",
		zap.String("path", outputPath),
		zap.Int("rates_year", rates.Year))

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Trennungsgeld"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	w.setCell(f, sheet, "A1", "Berechnungsübersicht")
	w.setCell(f, sheet, "A2", fmt.Sprintf("Pauschalen Stand %d", rates.Year))

	row := 4
	w.setCell(f, sheet, fmt.Sprintf("A%d", row), "Posten")
	w.setCell(f, sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("Betrag (%s)", w.currency))
	for _, e := range b.Entries() {
		row++
		w.setCell(f, sheet, fmt.Sprintf("A%d", row), labels[e.Label])
		w.setCell(f, sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("%.2f", e.Amount))
	}
	row += 2
	w.setCell(f, sheet, fmt.Sprintf("A%d", row), "Gesamtsumme")
	w.setCell(f, sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("%.2f", b.Total))

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}

	w.logger.Info("Excel report written", zap.String("path", outputPath))
	return nil
}

// setCell sets a cell value, logging failures instead of aborting the fill.
func (w *ExcelWriter) setCell(f *excelize.File, sheet, cell string, value interface{}) {
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		w.logger.Warn("Failed to set cell",
			zap.String("cell", cell),
			zap.Error(err))
	}
}
