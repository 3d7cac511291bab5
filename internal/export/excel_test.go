package export

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tradeport/formengine/internal/form"
	"github.com/tradeport/formengine/internal/ledger"
	"github.com/tradeport/formengine/internal/models"
)

func quotationSubmission(t *testing.T) *models.Submission {
	t.Helper()

	payload := form.Payload{
		FormID:      "quotation",
		Title:       "Quotation",
		Vertical:    "wholesale",
		Mode:        ledger.ModePricing,
		SubmittedAt: time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
		Header:      map[string]string{"customer_name": "Patel Agro Supplies"},
		LineItems: []*ledger.Item{{
			ID:        "item-1",
			Name:      "Drip Irrigation Kit",
			Quantity:  "10",
			Rate:      "100",
			TaxAmount: 162,
			LineTotal: 1062,
		}},
		Aggregates:    ledger.Totals{GrandTotal: 1062, TotalTax: 162, ItemCount: 1},
		AmountInWords: "One Thousand Sixty Two Rupees Only",
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	return &models.Submission{
		ID:          1,
		FormID:      payload.FormID,
		Title:       payload.Title,
		Vertical:    payload.Vertical,
		ItemCount:   1,
		GrandTotal:  1062,
		Payload:     string(raw),
		SubmittedAt: payload.SubmittedAt,
	}
}

func TestExporter_Export(t *testing.T) {
	exporter := NewExporter("TradePort Brokerage Pvt Ltd", "27ABCDE1234FZ19", zap.NewNop())
	outputPath := filepath.Join(t.TempDir(), "submissions.xlsx")

	require.NoError(t, exporter.Export([]*models.Submission{quotationSubmission(t)}, outputPath))

	f, err := excelize.OpenFile(outputPath)
	require.NoError(t, err)
	defer f.Close()

	company, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "TradePort Brokerage Pvt Ltd", company)

	title, err := f.GetCellValue(sheetName, "B5")
	require.NoError(t, err)
	assert.Equal(t, "Quotation", title)

	total, err := f.GetCellValue(sheetName, "E5")
	require.NoError(t, err)
	assert.Equal(t, "1062.00", total)

	itemName, err := f.GetCellValue(sheetName, "B7")
	require.NoError(t, err)
	assert.Equal(t, "Drip Irrigation Kit", itemName)
}

func TestExporter_ExportInventorySubmission(t *testing.T) {
	payload := form.Payload{
		FormID:   "raw-material-adjustment",
		Title:    "Raw Material Inventory Adjustment",
		Vertical: "raw-materials",
		Mode:     ledger.ModeInventory,
		LineItems: []*ledger.Item{{
			ID:            "item-1",
			Name:          "HDPE Granules",
			CurrentStock:  "500",
			AdjustedStock: "470",
			Difference:    -30,
		}},
		Aggregates:  ledger.Totals{TotalDifference: -30, GrandTotal: -30, ItemCount: 1},
		SubmittedAt: time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	sub := &models.Submission{
		ID: 2, FormID: payload.FormID, Title: payload.Title,
		Vertical: payload.Vertical, ItemCount: 1, GrandTotal: -30,
		Payload: string(raw), SubmittedAt: payload.SubmittedAt,
	}

	exporter := NewExporter("TradePort Brokerage Pvt Ltd", "", zap.NewNop())
	outputPath := filepath.Join(t.TempDir(), "inventory.xlsx")
	require.NoError(t, exporter.Export([]*models.Submission{sub}, outputPath))

	f, err := excelize.OpenFile(outputPath)
	require.NoError(t, err)
	defer f.Close()

	diff, err := f.GetCellValue(sheetName, "E7")
	require.NoError(t, err)
	assert.Equal(t, "-30.00", diff)
}
