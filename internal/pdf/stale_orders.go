// Package pdf renders the stale-order list for download. Availability is
// decided once at startup rather than probed per request; the rest of the
// report never depends on it.
package pdf

import (
	"bytes"
	"errors"
	"fmt"

	"orbiz-dashboard-service/internal/report"

	"github.com/phpdave11/gofpdf"
)

// ErrDisabled is returned when the export capability was switched off.
var ErrDisabled = errors.New("pdf export is disabled")

// Exporter renders stale-order documents when the capability is on.
type Exporter struct {
	enabled bool
}

func NewExporter(enabled bool) *Exporter {
	return &Exporter{enabled: enabled}
}

func (e *Exporter) Available() bool {
	return e.enabled
}

// StaleOrders renders one line per row, in the order given, under a title
// naming the staleness threshold.
func (e *Exporter) StaleOrders(rows []report.StaleOrder, staleAfterDays int) ([]byte, error) {
	if !e.enabled {
		return nil, ErrDisabled
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(12, 12, 12)
	doc.AddPage()

	doc.SetFont("Arial", "B", 12)
	title := fmt.Sprintf("Orders Older Than %d Days & Not Fully Dispatched", staleAfterDays)
	doc.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	doc.Ln(10)

	doc.SetFont("Arial", "", 12)
	for _, row := range rows {
		doc.CellFormat(0, 10, staleOrderLine(row), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func staleOrderLine(row report.StaleOrder) string {
	return fmt.Sprintf("%s | %s | %s | %s | %s",
		row.Reference, row.OrderDate, row.Customer, row.Salesperson, row.DeliveryStatus)
}
