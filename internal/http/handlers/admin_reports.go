package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"bassam-order-service/internal/ledger"
	"bassam-order-service/internal/report"
	"bassam-order-service/pkg/response"

	"go.uber.org/zap"
)

// AdminFinancialReportPDF streams the printable financial summary for an
// inclusive date range. Both bounds are required here: a report without a
// period header is meaningless.
func (h *Handler) AdminFinancialReportPDF(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	startRaw := strings.TrimSpace(query.Get("start"))
	endRaw := strings.TrimSpace(query.Get("end"))
	if startRaw == "" || endRaw == "" {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "start and end are required (YYYY-MM-DD)")
		return
	}

	start, err := ledger.ParseDay(startRaw)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "start must be YYYY-MM-DD")
		return
	}
	end, err := ledger.ParseDay(endRaw)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "end must be YYYY-MM-DD")
		return
	}

	orders := h.Ledger.Orders(r.Context())
	pr := report.BuildPeriodReport(orders, start, end, h.restaurant(), h.Config.DeliveryFee)

	buf, err := pr.RenderPDF()
	if err != nil {
		h.Logger.Error("financial report render failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=\"bilan_%s_%s.pdf\"", pr.Start, pr.End))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
