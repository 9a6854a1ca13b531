package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/tmoellner/trennungsgeld/internal/allowance"
)

// PDFWriter exports a breakdown as an A4 PDF statement.
type PDFWriter struct {
	currency string
	logger   *zap.Logger
}

// NewPDFWriter creates a new PDF writer.
func NewPDFWriter(currency string, logger *zap.Logger) *PDFWriter {
	return &PDFWriter{currency: currency, logger: logger}
}

// Write renders the breakdown and saves it to outputPath.
func (w *PDFWriter) Write(b allowance.Breakdown, rates allowance.RateTable, outputPath string) error {
	w.logger.Info("Writing PDF report",
		zap.String("path", outputPath),
		zap.Int("rates_year", rates.Year))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, tr("Trennungsgeld Berechnungsübersicht"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Pauschalen Stand %d", rates.Year)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	for _, e := range b.Entries() {
		pdf.Cell(90, 8, tr(labels[e.Label]))
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f %s", e.Amount, w.currency), "", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(90, 8, "Gesamtsumme")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f %s", b.Total, w.currency), "T", 0, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return fmt.Errorf("failed to save PDF file: %w", err)
	}

	w.logger.Info("PDF report written", zap.String("path", outputPath))
	return nil
}
