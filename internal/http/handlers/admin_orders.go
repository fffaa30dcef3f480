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

// AdminOrdersList returns the order journal, optionally filtered by
// status ("Nouveau" / "Payé") and by an inclusive date range.
func (h *Handler) AdminOrdersList(w http.ResponseWriter, r *http.Request) {
	orders := h.Ledger.Orders(r.Context())

	start, end, err := readDateRange(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must be YYYY-MM-DD")
		return
	}
	orders = ledger.FilterByDateRange(orders, start, end)

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	if status != "" && status != "Tous" {
		filtered := make([]ledger.Order, 0, len(orders))
		for _, o := range orders {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	response.Success(w, orders)
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) AdminOrderSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := readPathString(r, "orderId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Order ID is required")
		return
	}

	var req orderStatusRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	orders, err := h.Ledger.SetOrderStatus(r.Context(), id, req.Status)
	if err != nil {
		if err == ledger.ErrUnknownStatus {
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be Nouveau or Payé")
			return
		}
		h.Logger.Error("order status update failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update order")
		return
	}

	h.publish("order.status", map[string]string{"id": id, "status": req.Status})
	response.Success(w, orders)
}

func (h *Handler) AdminOrderDelete(w http.ResponseWriter, r *http.Request) {
	id, err := readPathString(r, "orderId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Order ID is required")
		return
	}

	orders, err := h.Ledger.DeleteOrder(r.Context(), id)
	if err != nil {
		h.Logger.Error("order delete failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete order")
		return
	}

	h.publish("order.deleted", map[string]string{"id": id})
	response.Success(w, orders)
}

// AdminOrderReceiptPDF streams the printable receipt for one order.
func (h *Handler) AdminOrderReceiptPDF(w http.ResponseWriter, r *http.Request) {
	id, err := readPathString(r, "orderId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Order ID is required")
		return
	}

	var found *ledger.Order
	for _, o := range h.Ledger.Orders(r.Context()) {
		if o.ID == id {
			found = &o
			break
		}
	}
	if found == nil {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}

	receipt := report.BuildReceipt(*found, h.restaurant(), h.Config.DeliveryFee)
	buf, err := receipt.RenderPDF()
	if err != nil {
		h.Logger.Error("receipt render failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate receipt")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=\"recu_%s.pdf\"", receipt.Number))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
