package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"orbiz-dashboard-service/internal/ingest"
	"orbiz-dashboard-service/internal/report"
	"orbiz-dashboard-service/pkg/response"

	"go.uber.org/zap"
)

const dateParamLayout = "2006-01-02"

type reportRequest struct {
	orders []report.Order
	start  time.Time
	end    time.Time
	today  time.Time
}

// ReportGenerate ingests the uploaded workbook and answers with the full
// dashboard report. Everything is computed from scratch per request; a new
// upload is a new report.
func (h *Handler) ReportGenerate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeReportRequest(w, r)
	if !ok {
		return
	}

	rep := report.Build(req.orders, report.Params{
		Start:          req.start,
		End:            req.end,
		Today:          req.today,
		StaleAfterDays: h.Config.StaleAfterDays,
		PDFAvailable:   h.PDF.Available(),
	})

	h.Logger.Info("report generated",
		zap.Int("rows", len(req.orders)),
		zap.Int("filteredOrders", rep.Fulfillment.TotalOrders),
		zap.Int("staleOrders", len(rep.StaleOrders)),
	)
	response.Success(w, rep)
}

// decodeReportRequest reads the multipart upload and the optional date
// range, writing the error response itself when anything is off. An inverted
// range is a valid filter that matches nothing, so it passes through.
func (h *Handler) decodeReportRequest(w http.ResponseWriter, r *http.Request) (reportRequest, bool) {
	data, ferr := readWorkbookBytes(r, "file", h.Config.MaxFileSizeBytes)
	if ferr != nil {
		switch ferr.Kind {
		case fileReadErrMissing:
			response.Error(w, http.StatusBadRequest, "FILE_REQUIRED", "Upload the sales-order Excel export in the 'file' field")
		case fileReadErrTooLarge, fileReadErrInvalidType:
			response.Error(w, http.StatusBadRequest, "INVALID_FILE", ferr.Message)
		default:
			h.Logger.Error("workbook read failed", zap.Error(ferr.Err))
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read the uploaded file")
		}
		return reportRequest{}, false
	}

	orders, err := ingest.DecodeWorkbook(data)
	if err != nil {
		var missing *ingest.MissingColumnError
		if errors.As(err, &missing) {
			response.Error(w, http.StatusUnprocessableEntity, "MISSING_COLUMN", missing.Error())
			return reportRequest{}, false
		}
		h.Logger.Warn("workbook decode failed", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "INVALID_FILE", "The uploaded file is not a readable workbook")
		return reportRequest{}, false
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start, end := report.DefaultRange(today)

	if value := strings.TrimSpace(r.FormValue("startDate")); value != "" {
		parsed, err := time.ParseInLocation(dateParamLayout, value, time.UTC)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "startDate must be formatted as YYYY-MM-DD")
			return reportRequest{}, false
		}
		start = parsed
	}
	if value := strings.TrimSpace(r.FormValue("endDate")); value != "" {
		parsed, err := time.ParseInLocation(dateParamLayout, value, time.UTC)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "endDate must be formatted as YYYY-MM-DD")
			return reportRequest{}, false
		}
		end = parsed
	}

	return reportRequest{orders: orders, start: start, end: end, today: today}, true
}
