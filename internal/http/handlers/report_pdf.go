package handlers

import (
	"net/http"

	"orbiz-dashboard-service/internal/report"
	"orbiz-dashboard-service/pkg/response"

	"go.uber.org/zap"
)

// ReportStaleOrdersPDF re-runs the stale-order check on the uploaded workbook
// and streams the PDF. The export is only offered when the capability is on
// and the list is non-empty; either miss leaves the JSON report unaffected.
func (h *Handler) ReportStaleOrdersPDF(w http.ResponseWriter, r *http.Request) {
	if !h.PDF.Available() {
		response.Error(w, http.StatusServiceUnavailable, "PDF_EXPORT_DISABLED",
			"PDF export is disabled on this server. The rest of the report is unaffected.")
		return
	}

	req, ok := h.decodeReportRequest(w, r)
	if !ok {
		return
	}

	filtered := report.FilterByDate(req.orders, req.start, req.end)
	stale := report.FindStaleOrders(filtered, req.today, h.Config.StaleAfterDays)
	if len(stale) == 0 {
		response.Error(w, http.StatusNotFound, "NO_STALE_ORDERS", "No stale orders to export for this date range")
		return
	}

	data, err := h.PDF.StaleOrders(stale, h.Config.StaleAfterDays)
	if err != nil {
		h.Logger.Error("stale-order pdf render failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render the PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="pending_orders.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
