// Package ingest decodes an uploaded sales-order workbook into the order
// records the report engine consumes.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"orbiz-dashboard-service/internal/report"

	"github.com/xuri/excelize/v2"
)

// Required column headers, matched exactly after whitespace trim. Column
// order is free and extra columns are ignored.
var requiredColumns = []string{
	"Order Reference",
	"Order Date",
	"Customer",
	"Salesperson",
	"Total",
	"Paid",
	"Delivery Status",
}

// MissingColumnError reports a required header absent from the uploaded
// sheet. A missing column aborts the whole decode; no partial table comes
// back.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found in the uploaded sheet", e.Column)
}

var (
	ErrNoWorksheet    = errors.New("no worksheet found in the uploaded file")
	ErrEmptyWorksheet = errors.New("the uploaded worksheet is empty")
)

// Textual layouts accepted for Order Date cells on top of Excel date
// serials. Anything else marks the date missing rather than failing the row.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-Jan-06",
	"2-Jan-06",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"01/02/06",
	"1-2-2006",
	"01-02-2006",
}

// DecodeWorkbook reads the first sheet of an xlsx export into order records.
// The first row must be the header row.
func DecodeWorkbook(data []byte) ([]report.Order, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrNoWorksheet
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read worksheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyWorksheet
	}

	columns := make(map[string]int)
	for i, header := range rows[0] {
		name := strings.TrimSpace(header)
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, &MissingColumnError{Column: name}
		}
	}

	orders := make([]report.Order, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		orders = append(orders, report.Order{
			Reference:      cellValue(row, columns["Order Reference"]),
			OrderDate:      parseDateCell(cellValue(row, columns["Order Date"])),
			Customer:       cellValue(row, columns["Customer"]),
			Salesperson:    cellValue(row, columns["Salesperson"]),
			Total:          parseAmountCell(cellValue(row, columns["Total"])),
			Paid:           parseAmountCell(cellValue(row, columns["Paid"])),
			DeliveryStatus: cellValue(row, columns["Delivery Status"]),
		})
	}
	return orders, nil
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseDateCell turns a cell into a UTC calendar date. Unparseable values
// come back as the zero time, which the engine treats as a missing date.
func parseDateCell(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	// Excel date serial, common when the export keeps numeric cell styles.
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial < 1 {
			return time.Time{}
		}
		parsed, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}
		}
		return truncateToDate(parsed)
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return truncateToDate(parsed)
		}
	}
	return time.Time{}
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseAmountCell reads a monetary cell. Blank or unparseable amounts count
// as zero so one bad cell cannot poison every aggregate.
func parseAmountCell(value string) float64 {
	if value == "" {
		return 0
	}
	value = strings.ReplaceAll(value, ",", "")
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}
