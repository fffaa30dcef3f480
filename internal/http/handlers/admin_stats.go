package handlers

import (
	"net/http"
	"time"

	"bassam-order-service/internal/ledger"
	"bassam-order-service/pkg/response"
)

// AccountingStats mirrors the figures on the accounting panel plus the
// best-seller breakdown.
type AccountingStats struct {
	GrossTotal  int64              `json:"grossTotal"`
	Paid        int64              `json:"paid"`
	Outstanding int64              `json:"outstanding"`
	TodayCount  int                `json:"todayCount"`
	TopDishes   []ledger.DishSales `json:"topDishes"`
}

// AdminStats computes the accounting aggregates, optionally scoped to an
// inclusive ?start=&end= date range.
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	orders := h.Ledger.Orders(r.Context())

	start, end, err := readDateRange(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must be YYYY-MM-DD")
		return
	}
	inRange := ledger.FilterByDateRange(orders, start, end)

	opts := ledger.RevenueOptions{
		IncludeDeliveryFee: true,
		DeliveryFee:        h.Config.DeliveryFee,
	}

	stats := AccountingStats{
		GrossTotal:  ledger.GrossRevenue(inRange),
		Paid:        ledger.Revenue(inRange, opts),
		Outstanding: ledger.OutstandingRevenue(inRange, opts),
		TodayCount:  ledger.TodayCount(orders, time.Now()),
		TopDishes:   ledger.TopDishes(inRange, 5),
	}

	response.Success(w, stats)
}
