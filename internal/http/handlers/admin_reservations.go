package handlers

import (
	"net/http"
	"strings"

	"bassam-order-service/internal/ledger"
	"bassam-order-service/pkg/response"

	"go.uber.org/zap"
)

func (h *Handler) AdminReservationsList(w http.ResponseWriter, r *http.Request) {
	reservations := h.Ledger.Reservations(r.Context())

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	if status != "" && status != "Tous" {
		filtered := make([]ledger.Reservation, 0, len(reservations))
		for _, res := range reservations {
			if res.Status == status {
				filtered = append(filtered, res)
			}
		}
		reservations = filtered
	}

	response.Success(w, reservations)
}

type reservationStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) AdminReservationSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := readPathString(r, "reservationId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Reservation ID is required")
		return
	}

	var req reservationStatusRequest
	if err := decodeBody(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	reservations, err := h.Ledger.SetReservationStatus(r.Context(), id, req.Status)
	if err != nil {
		if err == ledger.ErrUnknownStatus {
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be En attente, Confirmé or Terminé")
			return
		}
		h.Logger.Error("reservation status update failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update reservation")
		return
	}

	h.publish("reservation.status", map[string]string{"id": id, "status": req.Status})
	response.Success(w, reservations)
}

func (h *Handler) AdminReservationDelete(w http.ResponseWriter, r *http.Request) {
	id, err := readPathString(r, "reservationId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Reservation ID is required")
		return
	}

	reservations, err := h.Ledger.DeleteReservation(r.Context(), id)
	if err != nil {
		h.Logger.Error("reservation delete failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete reservation")
		return
	}

	h.publish("reservation.deleted", map[string]string{"id": id})
	response.Success(w, reservations)
}
