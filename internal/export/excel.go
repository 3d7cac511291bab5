// Package export writes journaled submissions to Excel workbooks for the
// back office.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tradeport/formengine/internal/form"
	"github.com/tradeport/formengine/internal/ledger"
	"github.com/tradeport/formengine/internal/models"
	"github.com/tradeport/formengine/internal/words"
)

const sheetName = "Submissions"

// Exporter renders submissions into an XLSX workbook.
type Exporter struct {
	companyName  string
	companyGSTIN string
	logger       *zap.Logger
}

// NewExporter creates a new exporter.
func NewExporter(companyName, companyGSTIN string, logger *zap.Logger) *Exporter {
	return &Exporter{
		companyName:  companyName,
		companyGSTIN: companyGSTIN,
		logger:       logger,
	}
}

// Export writes the submissions to outputPath, one summary row per
// submission followed by its line items.
func (e *Exporter) Export(subs []*models.Submission, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	e.setCell(f, "A1", e.companyName)
	if e.companyGSTIN != "" {
		e.setCell(f, "A2", "GSTIN: "+e.companyGSTIN)
	}
	e.setCell(f, "A3", "Exported: "+time.Now().Format("2006-01-02 15:04"))

	row := 5
	for _, sub := range subs {
		row = e.writeSubmission(f, sub, row)
		row++ // blank separator row
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}

	e.logger.Info("Submissions exported",
		zap.Int("count", len(subs)),
		zap.String("output_path", outputPath))
	return nil
}

// writeSubmission renders one submission starting at row and returns the
// next free row.
func (e *Exporter) writeSubmission(f *excelize.File, sub *models.Submission, row int) int {
	e.setCell(f, cell("A", row), fmt.Sprintf("#%d", sub.ID))
	e.setCell(f, cell("B", row), sub.Title)
	e.setCell(f, cell("C", row), sub.Vertical)
	e.setCell(f, cell("D", row), sub.SubmittedAt.Format("2006-01-02 15:04"))
	e.setCell(f, cell("E", row), fmt.Sprintf("%.2f", ledger.Round2(sub.GrandTotal)))
	row++

	var payload form.Payload
	if err := json.Unmarshal([]byte(sub.Payload), &payload); err != nil {
		e.logger.Warn("Skipping line items, payload unreadable",
			zap.Int64("submission_id", sub.ID),
			zap.Error(err))
		return row
	}

	inventory := payload.Mode == ledger.ModeInventory

	if inventory {
		e.setCell(f, cell("B", row), "Item")
		e.setCell(f, cell("C", row), "Current")
		e.setCell(f, cell("D", row), "Adjusted")
		e.setCell(f, cell("E", row), "Difference")
	} else {
		e.setCell(f, cell("B", row), "Item")
		e.setCell(f, cell("C", row), "Qty")
		e.setCell(f, cell("D", row), "Rate")
		e.setCell(f, cell("E", row), "Tax")
		e.setCell(f, cell("F", row), "Line Total")
	}
	row++

	for _, it := range payload.LineItems {
		e.setCell(f, cell("B", row), it.Name)
		if inventory {
			e.setCell(f, cell("C", row), it.CurrentStock)
			e.setCell(f, cell("D", row), it.AdjustedStock)
			e.setCell(f, cell("E", row), fmt.Sprintf("%.2f", ledger.Round2(it.Difference)))
		} else {
			e.setCell(f, cell("C", row), it.Quantity)
			e.setCell(f, cell("D", row), it.Rate)
			e.setCell(f, cell("E", row), fmt.Sprintf("%.2f", ledger.Round2(it.TaxAmount)))
			e.setCell(f, cell("F", row), fmt.Sprintf("%.2f", ledger.Round2(it.LineTotal)))
		}
		row++
	}

	if !inventory {
		e.setCell(f, cell("B", row), "In words")
		inWords := payload.AmountInWords
		if inWords == "" {
			inWords = words.Rupees(ledger.Round2(payload.Aggregates.GrandTotal))
		}
		e.setCell(f, cell("C", row), inWords)
		row++
	}

	return row
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// setCell sets a cell value, logging rather than failing on error.
func (e *Exporter) setCell(f *excelize.File, cellRef, value string) {
	if err := f.SetCellValue(sheetName, cellRef, value); err != nil {
		e.logger.Warn("Failed to set cell value",
			zap.String("cell", cellRef),
			zap.Error(err))
	}
}
